package object

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"

	"github.com/tomz197/fuelrun/internal/asset"
	"github.com/tomz197/fuelrun/internal/component"
	"github.com/tomz197/fuelrun/internal/config"
	"github.com/tomz197/fuelrun/internal/world"
)

// FireBullet creates a bullet at origin travelling along heading. It
// inherits the shooter's velocity and expires after BulletLifetime.
func FireBullet(store *world.Store, assets asset.Resolver, t config.Tuning, origin mgl32.Vec3, heading float32, shooterVel mgl32.Vec3) donburi.Entity {
	e := store.Create(
		component.Transform,
		component.Sprite,
		component.PhysicsVars,
		component.PhysFlag,
		component.BulletCollider,
		component.Lifetime,
	)
	entry := store.Entry(e)
	component.Transform.SetValue(entry, component.TransformData{Translation: origin})
	component.Sprite.SetValue(entry, component.SpriteData{Texture: assets.Load(asset.BulletSprite)})
	component.PhysicsVars.SetValue(entry, component.PhysicsVarsData{
		Velocity: shooterVel.Add(direction(heading).Mul(t.BulletSpeed)),
	})
	component.Lifetime.SetValue(entry, component.LifetimeData{Remaining: t.BulletLifetime})
	return e
}

// ExpireBullets counts down bullet lifetimes and despawns the spent ones.
func ExpireBullets(store *world.Store, dt float32) {
	expire(store, component.BulletCollider, dt)
}

func expire(store *world.Store, tag donburi.IComponentType, dt float32) {
	for _, e := range store.Query(tag, component.Lifetime) {
		life := component.Lifetime.Get(store.Entry(e))
		life.Remaining -= dt
		if life.Remaining <= 0 {
			store.Despawn(e)
		}
	}
}

// Gun limits the player's rate of fire.
type Gun struct {
	cooldown float32
	rate     float32
}

// NewGun creates a gun that fires at most once every rate seconds.
func NewGun(rate float32) *Gun {
	return &Gun{rate: rate}
}

// Update advances the cooldown and reports whether a shot is fired.
func (g *Gun) Update(dt float32, trigger bool) bool {
	g.cooldown -= dt
	if !trigger || g.cooldown > 0 {
		return false
	}
	g.cooldown = g.rate
	return true
}
