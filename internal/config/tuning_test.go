package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default tuning invalid: %v", err)
	}
}

func TestLoadTuningOverridesOnlyGivenKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	data := []byte("max_speed: 9\ninitial_asteroids: 3\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	if got.MaxSpeed != 9 {
		t.Errorf("MaxSpeed = %v, want 9", got.MaxSpeed)
	}
	if got.InitialAsteroids != 3 {
		t.Errorf("InitialAsteroids = %d, want 3", got.InitialAsteroids)
	}
	if got.MapSize != Default().MapSize {
		t.Errorf("MapSize = %v, want default %v", got.MapSize, Default().MapSize)
	}
}

func TestLoadTuningRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero map", "map_size: 0\n"},
		{"bounce above one", "boundary_bounce_mult: 1.5\n"},
		{"empty asteroid range", "asteroid_min_radius: 30\nasteroid_max_radius: 15\n"},
		{"no health", "initial_health: 0\n"},
		{"negative wave interval", "asteroid_wave_seconds: -1\n"},
		{"negative thrust", "thrust_accel: -0.1\n"},
		{"negative turn rate", "turn_rate: -0.08\n"},
		{"negative bullet speed", "bullet_speed: -12\n"},
		{"negative bullet lifetime", "bullet_lifetime: -1\n"},
		{"negative fire cooldown", "fire_cooldown: -0.2\n"},
		{"negative debris count", "debris_count: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tuning.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadTuning(path); !errors.Is(err, ErrTuning) {
				t.Fatalf("err = %v, want ErrTuning", err)
			}
		})
	}
}

func TestValidateAcceptsZeroRates(t *testing.T) {
	tun := Default()
	tun.AsteroidWaveSeconds = 0
	tun.FireCooldown = 0
	tun.TurnRate = 0
	if err := tun.Validate(); err != nil {
		t.Fatalf("zero rates rejected: %v", err)
	}
}

func TestLoadTuningMissingFile(t *testing.T) {
	if _, err := LoadTuning(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadDotEnvIgnoresMissingFile(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
}

func TestLoadDotEnvKeepsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("FUELRUN_TEST_A=file\nFUELRUN_TEST_B=file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FUELRUN_TEST_A", "env")
	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := GetEnv("FUELRUN_TEST_A", ""); got != "env" {
		t.Errorf("FUELRUN_TEST_A = %q, want env", got)
	}
	if got := GetEnv("FUELRUN_TEST_B", ""); got != "file" {
		t.Errorf("FUELRUN_TEST_B = %q, want file", got)
	}
	os.Unsetenv("FUELRUN_TEST_B")
}
