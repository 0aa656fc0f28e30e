package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrTuning is returned when a tuning file holds values the game cannot run with.
var ErrTuning = errors.New("invalid tuning")

// Tuning holds every gameplay constant. Velocities and accelerations are in
// world units per frame, durations in seconds.
type Tuning struct {
	MapSize            float32 `yaml:"map_size"`
	MaxSpeed           float32 `yaml:"max_speed"`
	BoundaryBounceMult float32 `yaml:"boundary_bounce_mult"`

	AsteroidSpeed       float32 `yaml:"asteroid_speed"`
	AsteroidMinRadius   float32 `yaml:"asteroid_min_radius"`
	AsteroidMaxRadius   float32 `yaml:"asteroid_max_radius"`
	InitialAsteroids    int     `yaml:"initial_asteroids"`
	AsteroidsPerWave    int     `yaml:"asteroids_per_wave"`
	AsteroidWaveSeconds float32 `yaml:"asteroid_wave_seconds"`

	DepotMinRadius float32 `yaml:"depot_min_radius"`
	DepotMaxRadius float32 `yaml:"depot_max_radius"`

	InitialHealth int     `yaml:"initial_health"`
	FuelCapacity  float32 `yaml:"fuel_capacity"`

	ThrustAccel    float32 `yaml:"thrust_accel"`
	TurnRate       float32 `yaml:"turn_rate"` // radians per frame
	BulletSpeed    float32 `yaml:"bullet_speed"`
	BulletLifetime float32 `yaml:"bullet_lifetime"`
	FireCooldown   float32 `yaml:"fire_cooldown"`

	DebrisCount    int     `yaml:"debris_count"` // dots per destroyed asteroid; 0 disables
	DebrisSpeed    float32 `yaml:"debris_speed"`
	DebrisLifetime float32 `yaml:"debris_lifetime"`
}

// Default returns the stock tuning.
func Default() Tuning {
	return Tuning{
		MapSize:            1500,
		MaxSpeed:           18,
		BoundaryBounceMult: 0.15,

		AsteroidSpeed:       0.5,
		AsteroidMinRadius:   15,
		AsteroidMaxRadius:   30,
		InitialAsteroids:    40,
		AsteroidsPerWave:    6,
		AsteroidWaveSeconds: 10,

		DepotMinRadius: 40,
		DepotMaxRadius: 70,

		InitialHealth: 20,
		FuelCapacity:  20,

		ThrustAccel:    0.35,
		TurnRate:       0.08,
		BulletSpeed:    12,
		BulletLifetime: 1.5,
		FireCooldown:   0.2,

		DebrisCount:    6,
		DebrisSpeed:    2.5,
		DebrisLifetime: 0.6,
	}
}

// LoadTuning reads a YAML tuning file. Keys missing from the file keep
// their default values.
func LoadTuning(path string) (Tuning, error) {
	t := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read tuning: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("parse tuning %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}

// Validate reports the first value that would break the game rules.
func (t Tuning) Validate() error {
	switch {
	case t.MapSize <= 0:
		return fmt.Errorf("%w: map_size must be positive", ErrTuning)
	case t.MaxSpeed <= 0:
		return fmt.Errorf("%w: max_speed must be positive", ErrTuning)
	case t.BoundaryBounceMult < 0 || t.BoundaryBounceMult > 1:
		return fmt.Errorf("%w: boundary_bounce_mult must be within [0, 1]", ErrTuning)
	case t.AsteroidSpeed < 0:
		return fmt.Errorf("%w: asteroid_speed must not be negative", ErrTuning)
	case t.AsteroidMinRadius <= 0 || t.AsteroidMinRadius >= t.AsteroidMaxRadius:
		return fmt.Errorf("%w: asteroid radius range is empty", ErrTuning)
	case t.DepotMinRadius <= 0 || t.DepotMinRadius >= t.DepotMaxRadius:
		return fmt.Errorf("%w: depot radius range is empty", ErrTuning)
	case t.InitialHealth < 1:
		return fmt.Errorf("%w: initial_health must be at least 1", ErrTuning)
	case t.FuelCapacity <= 0:
		return fmt.Errorf("%w: fuel_capacity must be positive", ErrTuning)
	case t.InitialAsteroids < 0 || t.AsteroidsPerWave < 0:
		return fmt.Errorf("%w: asteroid counts must not be negative", ErrTuning)
	case t.AsteroidWaveSeconds < 0:
		return fmt.Errorf("%w: asteroid_wave_seconds must not be negative", ErrTuning)
	case t.ThrustAccel < 0:
		return fmt.Errorf("%w: thrust_accel must not be negative", ErrTuning)
	case t.TurnRate < 0:
		return fmt.Errorf("%w: turn_rate must not be negative", ErrTuning)
	case t.BulletSpeed < 0:
		return fmt.Errorf("%w: bullet_speed must not be negative", ErrTuning)
	case t.BulletLifetime < 0:
		return fmt.Errorf("%w: bullet_lifetime must not be negative", ErrTuning)
	case t.FireCooldown < 0:
		return fmt.Errorf("%w: fire_cooldown must not be negative", ErrTuning)
	case t.DebrisCount < 0 || t.DebrisSpeed < 0 || t.DebrisLifetime < 0:
		return fmt.Errorf("%w: debris settings must not be negative", ErrTuning)
	}
	return nil
}
