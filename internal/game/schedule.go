package game

import (
	"github.com/tomz197/fuelrun/internal/object"
	"github.com/tomz197/fuelrun/internal/physics"
)

// System is one named step of a frame. Gated systems only run while the
// session is Playing; the mode is checked again before each of them.
type System struct {
	Name  string
	Gated bool
	Run   func(*Session)
}

// DefaultSchedule returns the systems in the order a frame executes them.
func DefaultSchedule() []System {
	return []System{
		{Name: "controls", Gated: true, Run: controls},
		{Name: "asteroid-waves", Gated: true, Run: asteroidWaves},
		{Name: "bullet-lifetime", Run: bulletLifetime},
		{Name: "debris-lifetime", Run: debrisLifetime},
		{Name: "integrate", Run: integrate},
		{Name: "borders", Run: borders},
		{Name: "bullet-hits", Gated: true, Run: bulletHits},
		{Name: "player-hits", Gated: true, Run: playerHits},
		{Name: "fuel-cycle", Gated: true, Run: fuelCycle},
		{Name: "hud", Gated: true, Run: (*Session).syncHUD},
	}
}

func bulletLifetime(s *Session) {
	object.ExpireBullets(s.Store, s.dt)
}

func debrisLifetime(s *Session) {
	object.ExpireDebris(s.Store, s.dt)
}

func integrate(s *Session) {
	physics.Integrate(s.Store, s.tuning.MaxSpeed)
}

func borders(s *Session) {
	physics.ConfineToMap(s.Store, s.tuning.MapSize, s.tuning.BoundaryBounceMult)
}
