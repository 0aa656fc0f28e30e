package object

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"

	"github.com/tomz197/fuelrun/internal/asset"
	"github.com/tomz197/fuelrun/internal/component"
	"github.com/tomz197/fuelrun/internal/config"
	"github.com/tomz197/fuelrun/internal/world"
)

// SpawnAsteroids creates count asteroids at random positions in the map
// square. Overlap with anything already in the store is allowed.
func SpawnAsteroids(store *world.Store, count int, rng Rand, assets asset.Resolver, t config.Tuning) []donburi.Entity {
	spawned := make([]donburi.Entity, 0, count)
	for i := 0; i < count; i++ {
		// Sampled over the full span then halved: [-MapSize/2, MapSize/2).
		pos := mgl32.Vec3{
			uniform(rng, -t.MapSize, t.MapSize) / 2,
			uniform(rng, -t.MapSize, t.MapSize) / 2,
			0,
		}
		texture := assets.Load(asset.AsteroidSprite)
		radius := uniform(rng, t.AsteroidMinRadius, t.AsteroidMaxRadius)
		vel := mgl32.Vec3{
			uniform(rng, -t.AsteroidSpeed, t.AsteroidSpeed),
			uniform(rng, -t.AsteroidSpeed, t.AsteroidSpeed),
			0,
		}

		e := store.Create(
			component.Transform,
			component.Sprite,
			component.PhysicsVars,
			component.PhysFlag,
			component.AsteroidCollider,
			component.AsteroidSize,
		)
		entry := store.Entry(e)
		component.Transform.SetValue(entry, component.TransformData{Translation: pos})
		component.Sprite.SetValue(entry, component.SpriteData{Texture: texture, CustomSize: radius})
		component.PhysicsVars.SetValue(entry, component.PhysicsVarsData{Velocity: vel})
		component.AsteroidSize.SetValue(entry, component.SizeData{Size: radius})
		spawned = append(spawned, e)
	}
	return spawned
}
