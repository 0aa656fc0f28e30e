package physics

import (
	"github.com/yohamta/donburi"

	"github.com/tomz197/fuelrun/internal/component"
	"github.com/tomz197/fuelrun/internal/world"
)

// ConfineToMap clamps moving bodies to the map square of side mapSize
// centered at the origin. Other bodies bounce elastically; the player's
// velocity on the offending axis is scaled by -playerBounce instead.
func ConfineToMap(store *world.Store, mapSize, playerBounce float32) {
	half := mapSize / 2
	moving := []donburi.IComponentType{component.PhysicsVars, component.Transform}

	for _, e := range store.QueryWithout(moving, component.IsPlayer) {
		confine(store.Entry(e), half, -1)
	}
	for _, e := range store.Query(component.IsPlayer, component.PhysicsVars, component.Transform) {
		confine(store.Entry(e), half, -playerBounce)
	}
}

func confine(entry *donburi.Entry, half, mult float32) {
	phys := component.PhysicsVars.Get(entry)
	tf := component.Transform.Get(entry)
	// x and y are independent; both may bounce in one frame.
	for axis := 0; axis < 2; axis++ {
		switch {
		case tf.Translation[axis] > half:
			tf.Translation[axis] = half
			phys.Velocity[axis] *= mult
		case tf.Translation[axis] < -half:
			tf.Translation[axis] = -half
			phys.Velocity[axis] *= mult
		}
	}
}
