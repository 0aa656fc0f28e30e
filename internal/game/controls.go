package game

import (
	"github.com/tomz197/fuelrun/internal/component"
	"github.com/tomz197/fuelrun/internal/object"
)

// Input is one frame of player input.
type Input struct {
	object.Controls
	Fire bool
}

func controls(s *Session) {
	entry := s.entry(s.Player, "player")
	object.Steer(entry, s.input.Controls, s.tuning)

	if s.gun.Update(s.dt, s.input.Fire) {
		origin, heading := object.Muzzle(entry)
		vel := component.PhysicsVars.Get(entry).Velocity
		object.FireBullet(s.Store, s.assets, s.tuning, origin, heading, vel)
	}
}

func asteroidWaves(s *Session) {
	n := s.spawner.Update(s.dt)
	if n == 0 {
		return
	}
	object.SpawnAsteroids(s.Store, n, s.rng, s.assets, s.tuning)
	s.logger.Debug("asteroid wave", "count", n, "frame", s.frame)
}
