package game

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"

	"github.com/tomz197/fuelrun/internal/component"
	"github.com/tomz197/fuelrun/internal/object"
	"github.com/tomz197/fuelrun/internal/physics"
)

// bulletHits destroys every asteroid a bullet is inside of. Bullets pass
// through, so one bullet can score several asteroids in a frame.
func bulletHits(s *Session) {
	bullets := s.Store.Query(component.BulletCollider, component.Transform)
	if len(bullets) == 0 {
		return
	}

	for _, a := range s.Store.Query(component.AsteroidCollider, component.AsteroidSize, component.Transform) {
		entry := s.Store.Entry(a)
		pos := component.Transform.Get(entry).Translation
		radius := component.AsteroidSize.Get(entry).Size

		for _, b := range bullets {
			if !s.Store.Alive(b) {
				continue
			}
			bpos := component.Transform.Get(s.Store.Entry(b)).Translation
			if physics.Distance(bpos, pos) < radius {
				s.shatter(a)
				s.Score++
				break
			}
		}
	}
}

// playerHits costs one health per asteroid touching the ship. The asteroid
// is destroyed by the impact.
func playerHits(s *Session) {
	ppos := component.Transform.Get(s.entry(s.Player, "player")).Translation

	for _, a := range s.Store.Query(component.AsteroidCollider, component.AsteroidSize, component.Transform) {
		entry := s.Store.Entry(a)
		pos := component.Transform.Get(entry).Translation
		if physics.Distance(ppos, pos) >= component.AsteroidSize.Get(entry).Size {
			continue
		}

		s.shatter(a)
		stats := component.PlayerStats.Get(s.entry(s.Player, "player"))
		stats.Health--
		if stats.Health < 1 {
			s.endGame("health")
			return
		}
	}
}

// shatter despawns asteroid a and leaves debris where it was.
func (s *Session) shatter(a donburi.Entity) {
	entry := s.Store.Entry(a)
	pos := component.Transform.Get(entry).Translation
	var vel mgl32.Vec3
	if entry.HasComponent(component.PhysicsVars) {
		vel = component.PhysicsVars.Get(entry).Velocity
	}
	s.Store.Despawn(a)
	object.SpawnDebris(s.Store, s.assets, s.tuning, pos, vel, float32(s.frame))
}
