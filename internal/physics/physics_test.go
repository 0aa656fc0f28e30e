package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"

	"github.com/tomz197/fuelrun/internal/component"
	"github.com/tomz197/fuelrun/internal/world"
)

const (
	testMapSize  = 1500
	testMaxSpeed = 18
	testBounce   = 0.15
)

func spawnBody(s *world.Store, pos, vel, acc mgl32.Vec3, extra ...donburi.IComponentType) donburi.Entity {
	comps := append([]donburi.IComponentType{component.PhysFlag, component.PhysicsVars, component.Transform}, extra...)
	e := s.Create(comps...)
	entry := s.Entry(e)
	component.Transform.Get(entry).Translation = pos
	phys := component.PhysicsVars.Get(entry)
	phys.Velocity = vel
	phys.Acceleration = acc
	return e
}

func bodyState(s *world.Store, e donburi.Entity) (pos, vel, acc mgl32.Vec3) {
	entry := s.Entry(e)
	phys := component.PhysicsVars.Get(entry)
	return component.Transform.Get(entry).Translation, phys.Velocity, phys.Acceleration
}

func TestDistance(t *testing.T) {
	got := Distance(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{3, 4, 0})
	if got != 5 {
		t.Fatalf("Distance = %v, want 5", got)
	}
}

func TestIntegrateAppliesAndResetsAcceleration(t *testing.T) {
	s := world.New()
	e := spawnBody(s, mgl32.Vec3{10, 10, 0}, mgl32.Vec3{1, -1, 0}, mgl32.Vec3{0.5, 0.5, 0})

	Integrate(s, testMaxSpeed)

	pos, vel, acc := bodyState(s, e)
	if vel != (mgl32.Vec3{1.5, -0.5, 0}) {
		t.Errorf("velocity = %v, want [1.5 -0.5 0]", vel)
	}
	if pos != (mgl32.Vec3{11.5, 9.5, 0}) {
		t.Errorf("position = %v, want [11.5 9.5 0]", pos)
	}
	if acc != (mgl32.Vec3{}) {
		t.Errorf("acceleration = %v, want zero", acc)
	}
}

func TestIntegrateClampsEachAxis(t *testing.T) {
	accels := []mgl32.Vec3{
		{100, 0, 0},
		{-100, 0, 0},
		{0, 1e6, 0},
		{-40, 40, 0},
		{17.9, -18.1, 0},
	}
	for _, a := range accels {
		s := world.New()
		e := spawnBody(s, mgl32.Vec3{}, mgl32.Vec3{}, a)
		Integrate(s, testMaxSpeed)
		_, vel, _ := bodyState(s, e)
		for i := 0; i < 3; i++ {
			if math.Abs(float64(vel[i])) > testMaxSpeed {
				t.Errorf("accel %v: velocity[%d] = %v exceeds %v", a, i, vel[i], testMaxSpeed)
			}
		}
	}
}

func TestIntegrateSkipsBodiesWithoutFlag(t *testing.T) {
	s := world.New()
	e := s.Create(component.PhysicsVars, component.Transform)
	component.PhysicsVars.Get(s.Entry(e)).Velocity = mgl32.Vec3{5, 0, 0}

	Integrate(s, testMaxSpeed)

	if pos, _, _ := bodyState(s, e); pos != (mgl32.Vec3{}) {
		t.Fatalf("unflagged body moved to %v", pos)
	}
}

func TestConfineToMap(t *testing.T) {
	half := float32(testMapSize / 2)
	tests := []struct {
		name    string
		player  bool
		pos     mgl32.Vec3
		vel     mgl32.Vec3
		wantPos mgl32.Vec3
		wantVel mgl32.Vec3
	}{
		{"asteroid right edge", false, mgl32.Vec3{half + 4, 0, 0}, mgl32.Vec3{4, 1, 0}, mgl32.Vec3{half, 0, 0}, mgl32.Vec3{-4, 1, 0}},
		{"asteroid left edge", false, mgl32.Vec3{-half - 1, 0, 0}, mgl32.Vec3{-2, 0, 0}, mgl32.Vec3{-half, 0, 0}, mgl32.Vec3{2, 0, 0}},
		{"asteroid corner", false, mgl32.Vec3{half + 1, -half - 1, 0}, mgl32.Vec3{3, -3, 0}, mgl32.Vec3{half, -half, 0}, mgl32.Vec3{-3, 3, 0}},
		{"asteroid inside", false, mgl32.Vec3{half, 0, 0}, mgl32.Vec3{3, 0, 0}, mgl32.Vec3{half, 0, 0}, mgl32.Vec3{3, 0, 0}},
		{"player right edge", true, mgl32.Vec3{half + 10, 0, 0}, mgl32.Vec3{10, 0, 0}, mgl32.Vec3{half, 0, 0}, mgl32.Vec3{-10 * testBounce, 0, 0}},
		{"player top edge", true, mgl32.Vec3{0, half + 2, 0}, mgl32.Vec3{0, 8, 0}, mgl32.Vec3{0, half, 0}, mgl32.Vec3{0, -8 * testBounce, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := world.New()
			var e donburi.Entity
			if tt.player {
				e = spawnBody(s, tt.pos, tt.vel, mgl32.Vec3{}, component.IsPlayer)
			} else {
				e = spawnBody(s, tt.pos, tt.vel, mgl32.Vec3{})
			}

			ConfineToMap(s, testMapSize, testBounce)

			pos, vel, _ := bodyState(s, e)
			if pos != tt.wantPos {
				t.Errorf("position = %v, want %v", pos, tt.wantPos)
			}
			if !vel.ApproxEqual(tt.wantVel) {
				t.Errorf("velocity = %v, want %v", vel, tt.wantVel)
			}
		})
	}
}

func TestConfineIgnoresStaticBodies(t *testing.T) {
	s := world.New()
	e := s.Create(component.Transform, component.DepotSize)
	component.Transform.Get(s.Entry(e)).Translation = mgl32.Vec3{5000, 0, 0}

	ConfineToMap(s, testMapSize, testBounce)

	if got := component.Transform.Get(s.Entry(e)).Translation; got[0] != 5000 {
		t.Fatalf("static body moved to %v", got)
	}
}

func TestStepMovingRightAtEdge(t *testing.T) {
	half := float32(testMapSize / 2)
	s := world.New()
	rock := spawnBody(s, mgl32.Vec3{half - 1, 0, 0}, mgl32.Vec3{5, 0, 0}, mgl32.Vec3{})
	ship := spawnBody(s, mgl32.Vec3{half - 1, 0, 0}, mgl32.Vec3{5, 0, 0}, mgl32.Vec3{}, component.IsPlayer)

	Integrate(s, testMaxSpeed)
	ConfineToMap(s, testMapSize, testBounce)

	if pos, vel, _ := bodyState(s, rock); pos[0] != half || vel[0] != -5 {
		t.Errorf("asteroid pos.x=%v vel.x=%v, want %v and -5", pos[0], vel[0], half)
	}
	if pos, vel, _ := bodyState(s, ship); pos[0] != half || !mgl32.FloatEqual(vel[0], -0.75) {
		t.Errorf("player pos.x=%v vel.x=%v, want %v and -0.75", pos[0], vel[0], half)
	}
}
