package object

// AsteroidSpawner releases a wave of asteroids at a fixed interval.
type AsteroidSpawner struct {
	interval float32
	perWave  int
	elapsed  float32
}

// NewAsteroidSpawner creates a spawner. A non-positive interval or wave
// size disables it.
func NewAsteroidSpawner(interval float32, perWave int) *AsteroidSpawner {
	if perWave < 0 {
		perWave = 0
	}
	return &AsteroidSpawner{
		interval: interval,
		perWave:  perWave,
	}
}

// Update advances the timer by dt seconds and returns how many asteroids
// are due. Several waves can fall due in one long frame.
func (s *AsteroidSpawner) Update(dt float32) int {
	if s.interval <= 0 || s.perWave == 0 {
		return 0
	}
	s.elapsed += dt
	due := 0
	for s.elapsed >= s.interval {
		s.elapsed -= s.interval
		due += s.perWave
	}
	return due
}
