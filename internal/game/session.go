package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"

	"github.com/tomz197/fuelrun/internal/asset"
	"github.com/tomz197/fuelrun/internal/component"
	"github.com/tomz197/fuelrun/internal/config"
	"github.com/tomz197/fuelrun/internal/hud"
	"github.com/tomz197/fuelrun/internal/object"
	"github.com/tomz197/fuelrun/internal/world"
)

// Options configures a new session. Zero fields get defaults.
type Options struct {
	Tuning   config.Tuning
	Rand     object.Rand
	Assets   asset.Resolver
	Logger   *log.Logger
	Schedule []System
}

// Session is one game from launch until the player quits or restarts.
// It is not safe for concurrent use.
type Session struct {
	Store  *world.Store
	Player donburi.Entity
	Depot  donburi.Entity
	Score  int

	tuning   config.Tuning
	rng      object.Rand
	assets   asset.Resolver
	logger   *log.Logger
	schedule []System

	state   StateHolder
	hud     *hud.Surface
	spawner *object.AsteroidSpawner
	gun     *object.Gun

	input  Input
	dt     float32
	frame  uint64
	reason string
}

// Stats is a read-only view of the session's numbers.
type Stats struct {
	Health    int
	Fuel      float32
	Score     int
	Mode      Mode
	Asteroids int
	Frame     uint64
}

// NewSession populates a fresh world with the ship, one depot and the
// opening asteroid field.
func NewSession(opts Options) *Session {
	if opts.Tuning == (config.Tuning{}) {
		opts.Tuning = config.Default()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Assets == nil {
		opts.Assets = asset.NewCatalog()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Schedule == nil {
		opts.Schedule = DefaultSchedule()
	}

	t := opts.Tuning
	s := &Session{
		Store:    world.New(),
		tuning:   t,
		rng:      opts.Rand,
		assets:   opts.Assets,
		logger:   opts.Logger,
		schedule: opts.Schedule,
		hud:      hud.NewSurface(),
		spawner:  object.NewAsteroidSpawner(t.AsteroidWaveSeconds, t.AsteroidsPerWave),
		gun:      object.NewGun(t.FireCooldown),
	}

	s.Player = object.SpawnPlayer(s.Store, s.assets, t)
	s.Depot = object.MakeDepot(s.Store, s.rng, s.assets, t)
	object.SpawnAsteroids(s.Store, t.InitialAsteroids, s.rng, s.assets, t)

	if got := s.Store.MustSingle("player", component.IsPlayer); got != s.Player {
		panic("game: player handle does not match the store")
	}
	if got := s.Store.MustSingle("depot", component.DepotSize); got != s.Depot {
		panic("game: depot handle does not match the store")
	}

	s.syncHUD()
	return s
}

// Step advances the session by one frame. dt is the elapsed time in
// seconds; motion itself is per frame.
func (s *Session) Step(dt float32, in Input) {
	s.dt = dt
	s.input = in
	s.frame++

	for _, sys := range s.schedule {
		if sys.Gated && s.state.Get() != ModePlaying {
			continue
		}
		sys.Run(s)
	}
}

// Mode returns the current gameplay state.
func (s *Session) Mode() Mode {
	return s.state.Get()
}

// Reason names what ended the game, or "" while playing.
func (s *Session) Reason() string {
	return s.reason
}

// HUD returns the text surface kept in sync with the session.
func (s *Session) HUD() *hud.Surface {
	return s.hud
}

// Tuning returns the constants the session was created with.
func (s *Session) Tuning() config.Tuning {
	return s.tuning
}

// Stats returns the session's current numbers.
func (s *Session) Stats() Stats {
	ps := component.PlayerStats.Get(s.entry(s.Player, "player"))
	return Stats{
		Health:    ps.Health,
		Fuel:      ps.Fuel,
		Score:     s.Score,
		Mode:      s.state.Get(),
		Asteroids: s.Store.Count(component.AsteroidCollider),
		Frame:     s.frame,
	}
}

func (s *Session) syncHUD() {
	ps := component.PlayerStats.Get(s.entry(s.Player, "player"))
	s.hud.Sync(ps.Health, s.Score, ps.Fuel)
}

func (s *Session) endGame(reason string) {
	if s.state.Get() == ModeGameOver {
		return
	}
	s.mustTransition(ModeGameOver)
	s.reason = reason
	s.syncHUD()
	s.hud.GameOver()
	s.logger.Info("game over", "reason", reason, "score", s.Score, "frame", s.frame)
}

func (s *Session) mustTransition(next Mode) {
	if err := s.state.Set(next); err != nil {
		panic(err)
	}
}

// entry returns the accessor for a singleton that must still exist.
func (s *Session) entry(e donburi.Entity, name string) *donburi.Entry {
	if !s.Store.Alive(e) {
		panic(fmt.Sprintf("game: %s entity is gone", name))
	}
	return s.Store.Entry(e)
}
