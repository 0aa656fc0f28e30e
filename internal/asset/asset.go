// Package asset resolves sprite file names to opaque drawable handles.
package asset

//go:generate go tool mockgen -destination=./mocks/resolver_mock.go -package=mocks . Resolver

// Handle identifies a loaded sprite. The zero value means "nothing to draw".
type Handle uint32

// NoHandle is returned for names the resolver does not know.
const NoHandle Handle = 0

// Sprite file names used by the game.
const (
	PlayerSprite   = "player.png"
	AsteroidSprite = "asteroid.png"
	DepotSprite    = "fuel_depot.png"
	BulletSprite   = "bullet.png"
	DebrisSprite   = "debris.png"
)

// Resolver maps a file name to a drawable handle.
type Resolver interface {
	Load(name string) Handle
}

// Shape is how the terminal renderer draws a handle.
type Shape int

const (
	ShapeNone Shape = iota
	ShapeShip       // triangle pointing along the heading
	ShapeRing       // circle outline
	ShapeDisc       // filled circle
	ShapeDot        // single sub-pixel
)

// Catalog is the terminal Resolver. It is immutable after NewCatalog, so
// one instance can be shared by every session.
type Catalog struct {
	byName map[string]Handle
	shapes []Shape
}

// NewCatalog registers the game's sprites.
func NewCatalog() *Catalog {
	c := &Catalog{
		byName: make(map[string]Handle),
		shapes: []Shape{ShapeNone},
	}
	c.register(PlayerSprite, ShapeShip)
	c.register(AsteroidSprite, ShapeRing)
	c.register(DepotSprite, ShapeDisc)
	c.register(BulletSprite, ShapeDot)
	c.register(DebrisSprite, ShapeDot)
	return c
}

func (c *Catalog) register(name string, shape Shape) {
	c.byName[name] = Handle(len(c.shapes))
	c.shapes = append(c.shapes, shape)
}

// Load returns the handle for name, or NoHandle.
func (c *Catalog) Load(name string) Handle {
	return c.byName[name]
}

// Shape returns the drawing shape for h.
func (c *Catalog) Shape(h Handle) Shape {
	if int(h) >= len(c.shapes) {
		return ShapeNone
	}
	return c.shapes[h]
}

var _ Resolver = (*Catalog)(nil)
