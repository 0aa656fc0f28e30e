package object

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"

	"github.com/tomz197/fuelrun/internal/asset"
	"github.com/tomz197/fuelrun/internal/component"
	"github.com/tomz197/fuelrun/internal/config"
	"github.com/tomz197/fuelrun/internal/world"
)

// SpawnDebris bursts DebrisCount dots out of a destroyed asteroid. The
// dots spread evenly from phase, alternate between a slow and a fast ring
// and carry the asteroid's own drift. They take no randomness, so a
// session's gameplay draws are the same with or without debris.
func SpawnDebris(store *world.Store, assets asset.Resolver, t config.Tuning, pos, vel mgl32.Vec3, phase float32) []donburi.Entity {
	if t.DebrisCount <= 0 {
		return nil
	}
	texture := assets.Load(asset.DebrisSprite)
	step := 2 * math.Pi / float32(t.DebrisCount)

	out := make([]donburi.Entity, 0, t.DebrisCount)
	for i := 0; i < t.DebrisCount; i++ {
		spread := float32(0.75)
		if i%2 == 1 {
			spread = 1.25
		}

		e := store.Create(
			component.Transform,
			component.Sprite,
			component.PhysicsVars,
			component.PhysFlag,
			component.Debris,
			component.Lifetime,
		)
		entry := store.Entry(e)
		component.Transform.SetValue(entry, component.TransformData{Translation: pos})
		component.Sprite.SetValue(entry, component.SpriteData{Texture: texture})
		component.PhysicsVars.SetValue(entry, component.PhysicsVarsData{
			Velocity: vel.Add(direction(phase + step*float32(i)).Mul(t.DebrisSpeed * spread)),
		})
		component.Lifetime.SetValue(entry, component.LifetimeData{Remaining: t.DebrisLifetime * spread})
		out = append(out, e)
	}
	return out
}

// ExpireDebris counts down debris lifetimes and despawns the spent dots.
func ExpireDebris(store *world.Store, dt float32) {
	expire(store, component.Debris, dt)
}
