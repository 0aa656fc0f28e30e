package object

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"

	"github.com/tomz197/fuelrun/internal/asset"
	"github.com/tomz197/fuelrun/internal/component"
	"github.com/tomz197/fuelrun/internal/config"
	"github.com/tomz197/fuelrun/internal/world"
)

// shipNose is the distance from the ship's center to its nose.
const shipNose = 18

// ShipRadius is the ship's drawn size in world units.
const ShipRadius = shipNose

// Controls is one frame of pilot input.
type Controls struct {
	Left   bool
	Right  bool
	Thrust bool
}

// SpawnPlayer creates the player's ship at the origin, pointing up, with
// full health and fuel.
func SpawnPlayer(store *world.Store, assets asset.Resolver, t config.Tuning) donburi.Entity {
	e := store.Create(
		component.Transform,
		component.Sprite,
		component.PhysicsVars,
		component.PhysFlag,
		component.IsPlayer,
		component.PlayerStats,
		component.Heading,
	)
	entry := store.Entry(e)
	component.Sprite.SetValue(entry, component.SpriteData{Texture: assets.Load(asset.PlayerSprite), CustomSize: ShipRadius})
	component.PlayerStats.SetValue(entry, component.PlayerStatsData{Health: t.InitialHealth, Fuel: t.FuelCapacity})
	component.Heading.SetValue(entry, component.HeadingData{Angle: math.Pi / 2})
	return e
}

// Steer turns the ship and, while thrusting, adds acceleration along the
// heading. The integrator consumes the acceleration on the same frame.
func Steer(entry *donburi.Entry, c Controls, t config.Tuning) {
	heading := component.Heading.Get(entry)
	if c.Left {
		heading.Angle += t.TurnRate
	}
	if c.Right {
		heading.Angle -= t.TurnRate
	}
	for heading.Angle > math.Pi {
		heading.Angle -= 2 * math.Pi
	}
	for heading.Angle < -math.Pi {
		heading.Angle += 2 * math.Pi
	}

	if c.Thrust {
		phys := component.PhysicsVars.Get(entry)
		phys.Acceleration = phys.Acceleration.Add(direction(heading.Angle).Mul(t.ThrustAccel))
	}
}

// Muzzle returns where a bullet leaves the ship.
func Muzzle(entry *donburi.Entry) (origin mgl32.Vec3, heading float32) {
	heading = component.Heading.Get(entry).Angle
	pos := component.Transform.Get(entry).Translation
	return pos.Add(direction(heading).Mul(shipNose)), heading
}
