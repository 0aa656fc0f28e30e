// Package component declares the data attached to entities in the world store.
package component

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"

	"github.com/tomz197/fuelrun/internal/asset"
)

// TransformData is an entity's position in world units. The map is centered
// at the origin with y pointing up.
type TransformData struct {
	Translation mgl32.Vec3
}

// SpriteData is what the renderer needs to draw an entity.
// CustomSize is the radius in world units; 0 means the shape's natural size.
type SpriteData struct {
	Texture    asset.Handle
	CustomSize float32
}

// PhysicsVarsData is per-frame motion state. Acceleration is consumed by
// the integrator every frame.
type PhysicsVarsData struct {
	Velocity     mgl32.Vec3
	Acceleration mgl32.Vec3
}

// SizeData is a collision radius.
type SizeData struct {
	Size float32
}

// PlayerStatsData holds the two resources that end the game.
type PlayerStatsData struct {
	Health int
	Fuel   float32
}

// HeadingData is the ship's facing in radians, counter-clockwise from +x.
type HeadingData struct {
	Angle float32
}

// LifetimeData is the seconds left before an entity expires.
type LifetimeData struct {
	Remaining float32
}

var (
	Transform   = donburi.NewComponentType[TransformData]()
	Sprite      = donburi.NewComponentType[SpriteData]()
	PhysicsVars = donburi.NewComponentType[PhysicsVarsData]()

	AsteroidSize = donburi.NewComponentType[SizeData]()
	DepotSize    = donburi.NewComponentType[SizeData]()
	PlayerStats  = donburi.NewComponentType[PlayerStatsData]()
	Heading      = donburi.NewComponentType[HeadingData]()
	Lifetime     = donburi.NewComponentType[LifetimeData]()
)

// Tags
var (
	PhysFlag         = donburi.NewTag() // integrated by the physics step
	AsteroidCollider = donburi.NewTag()
	BulletCollider   = donburi.NewTag()
	IsPlayer         = donburi.NewTag() // selects the damped boundary bounce
	Debris           = donburi.NewTag() // cosmetic, never collides
)
