package object

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"

	"github.com/tomz197/fuelrun/internal/asset"
	"github.com/tomz197/fuelrun/internal/component"
	"github.com/tomz197/fuelrun/internal/config"
	"github.com/tomz197/fuelrun/internal/world"
)

// MakeDepot creates a fuel depot at a random position. The caller has
// already despawned the previous one. Depots do not move.
func MakeDepot(store *world.Store, rng Rand, assets asset.Resolver, t config.Tuning) donburi.Entity {
	half := t.MapSize / 2
	radius := uniform(rng, t.DepotMinRadius, t.DepotMaxRadius)
	texture := assets.Load(asset.DepotSprite)
	pos := mgl32.Vec3{uniform(rng, -half, half), uniform(rng, -half, half), 0}

	e := store.Create(component.Transform, component.Sprite, component.DepotSize)
	entry := store.Entry(e)
	component.Transform.SetValue(entry, component.TransformData{Translation: pos})
	component.Sprite.SetValue(entry, component.SpriteData{Texture: texture, CustomSize: radius})
	component.DepotSize.SetValue(entry, component.SizeData{Size: radius})
	return e
}
