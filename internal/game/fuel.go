package game

import (
	"github.com/tomz197/fuelrun/internal/component"
	"github.com/tomz197/fuelrun/internal/object"
	"github.com/tomz197/fuelrun/internal/physics"
)

// fuelCycle burns fuel for the elapsed time and refills the tank when the
// ship reaches the depot, which then moves somewhere else.
func fuelCycle(s *Session) {
	player := s.entry(s.Player, "player")
	stats := component.PlayerStats.Get(player)
	stats.Fuel -= s.dt
	if stats.Fuel < 0 {
		s.endGame("fuel")
		return
	}

	depot := s.entry(s.Depot, "depot")
	ppos := component.Transform.Get(player).Translation
	dpos := component.Transform.Get(depot).Translation
	if physics.Distance(dpos, ppos) >= component.DepotSize.Get(depot).Size {
		return
	}

	s.Store.Despawn(s.Depot)
	component.PlayerStats.Get(s.entry(s.Player, "player")).Fuel = s.tuning.FuelCapacity
	s.Depot = object.MakeDepot(s.Store, s.rng, s.assets, s.tuning)
	s.logger.Debug("refueled", "frame", s.frame)
}
