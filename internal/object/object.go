// Package object creates the game's entities and holds the per-entity
// behaviour that is not a shared system: ship controls and spawn timers.
package object

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Rand is the randomness spawners draw from. *math/rand.Rand satisfies it.
type Rand interface {
	Float32() float32
}

// uniform samples [lo, hi).
func uniform(r Rand, lo, hi float32) float32 {
	v := lo + r.Float32()*(hi-lo)
	if v >= hi {
		v = math.Nextafter32(hi, lo)
	}
	return v
}

// direction returns the unit vector for a heading in radians.
func direction(angle float32) mgl32.Vec3 {
	return mgl32.Vec3{float32(math.Cos(float64(angle))), float32(math.Sin(float64(angle))), 0}
}
