// Package physics integrates motion and keeps bodies inside the map square.
package physics

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/tomz197/fuelrun/internal/component"
	"github.com/tomz197/fuelrun/internal/world"
)

// Distance calculates the Euclidean distance between two points.
func Distance(a, b mgl32.Vec3) float32 {
	return a.Sub(b).Len()
}

// ClampVec clamps each component of v to [lo, hi].
func ClampVec(v mgl32.Vec3, lo, hi float32) mgl32.Vec3 {
	return mgl32.Vec3{
		mgl32.Clamp(v[0], lo, hi),
		mgl32.Clamp(v[1], lo, hi),
		mgl32.Clamp(v[2], lo, hi),
	}
}

// Integrate advances every PhysFlag body by one frame:
// velocity += acceleration, clamped per axis to ±maxSpeed, then
// position += velocity. Acceleration is reset, so forces must be
// re-applied every frame.
func Integrate(store *world.Store, maxSpeed float32) {
	for _, e := range store.Query(component.PhysFlag, component.PhysicsVars, component.Transform) {
		entry := store.Entry(e)
		phys := component.PhysicsVars.Get(entry)
		tf := component.Transform.Get(entry)

		phys.Velocity = ClampVec(phys.Velocity.Add(phys.Acceleration), -maxSpeed, maxSpeed)
		tf.Translation = tf.Translation.Add(phys.Velocity)
		phys.Acceleration = mgl32.Vec3{}
	}
}
