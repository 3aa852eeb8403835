package hair

import (
	"testing"

	"github.com/Faultbox/midgard-avatar/pkg/math"
)

const dt = float32(1.0 / 60)

func yaw(a float32) math.Quat {
	return math.QuatFromAxisAngle(math.UnitY, a)
}

func inf() float32 {
	var zero float32
	return 1 / zero
}

func TestFirstUpdateSeeds(t *testing.T) {
	s := New(DefaultParams())
	u := s.Update(dt, math.V3(3, 1.6, -2), yaw(1), math.V3(4, 0, 0))
	if u.Inertia != math.Zero3 || u.Speed != 0 {
		t.Errorf("first update produced motion: %+v", u)
	}
	if u.Gravity != DefaultParams().Gravity {
		t.Errorf("gravity = %v, want %v", u.Gravity, DefaultParams().Gravity)
	}
}

func TestNonPositiveDtIsNoop(t *testing.T) {
	s := New(DefaultParams())
	s.Update(dt, math.Zero3, math.QuatIdentity(), math.Zero3)
	s.Update(dt, math.V3(0.05, 0, 0), math.QuatIdentity(), math.Zero3)
	before := s.Uniforms()

	for _, d := range []float32{0, -dt} {
		if got := s.Update(d, math.V3(50, 0, 0), yaw(2), math.V3(9, 9, 9)); got != before {
			t.Errorf("dt=%v changed state: %+v -> %+v", d, before, got)
		}
	}
}

func TestRootVelocityMatchesHeadMotion(t *testing.T) {
	vel := math.V3(0.9, 0, 0)
	moved := New(DefaultParams())
	still := New(DefaultParams())
	var a, b Uniforms
	for i := range 30 {
		pos := vel.Scale(float32(i) * dt)
		a = moved.Update(dt, pos, math.QuatIdentity(), math.Zero3)
		b = still.Update(dt, math.Zero3, math.QuatIdentity(), vel)
	}
	if !a.Inertia.ApproxEqual(b.Inertia, 1e-4) {
		t.Errorf("head motion inertia %v, root velocity inertia %v", a.Inertia, b.Inertia)
	}
	if a.Inertia == math.Zero3 {
		t.Error("motion produced no inertia")
	}
}

func TestInertiaClamped(t *testing.T) {
	tests := []struct {
		name string
		vel  math.Vec3
	}{
		{name: "fast run", vel: math.V3(24, 0, 0)},
		{name: "diagonal", vel: math.V3(-15, 10, 15)},
		{name: "teleport speed", vel: math.V3(0, 0, 1e6)},
		{name: "not finite", vel: math.V3(inf(), 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			s := New(p)
			for range 600 {
				u := s.Update(dt, math.Zero3, math.QuatIdentity(), tt.vel)
				if l := u.Inertia.Length(); l > p.MaxInertia+1e-6 {
					t.Fatalf("inertia length %v exceeds clamp %v", l, p.MaxInertia)
				}
				if !u.Inertia.IsFinite() {
					t.Fatalf("inertia is not finite: %v", u.Inertia)
				}
			}
		})
	}
}

func TestFastMotionReachesClamp(t *testing.T) {
	p := DefaultParams()
	s := New(p)
	var u Uniforms
	for range 300 {
		u = s.Update(dt, math.Zero3, math.QuatIdentity(), math.V3(24, 0, 0))
	}
	if l := u.Inertia.Length(); math.Abs(l-p.MaxInertia) > 1e-3 {
		t.Errorf("inertia length = %v, want ~%v", l, p.MaxInertia)
	}
	if u.Inertia.X >= 0 {
		t.Errorf("hair should trail the motion, inertia = %v", u.Inertia)
	}
}

func TestTeleportZeroed(t *testing.T) {
	s := New(DefaultParams())
	s.Update(dt, math.Zero3, math.QuatIdentity(), math.Zero3)

	u := s.Update(dt, math.V3(200, 0, 0), math.QuatIdentity(), math.Zero3)
	if u.Inertia != math.Zero3 || u.Speed != 0 {
		t.Errorf("teleport leaked into the simulation: %+v", u)
	}

	// a snap turn is discarded the same way
	u = s.Update(dt, math.V3(200, 0, 0), yaw(math.Pi*0.9), math.Zero3)
	if u.Inertia != math.Zero3 {
		t.Errorf("snap turn leaked into the simulation: %+v", u)
	}
}

func TestConstantYaw(t *testing.T) {
	const omega = 2 // rad/s
	p := DefaultParams()
	s := New(p)

	var angle float32
	var prev Uniforms
	for i := range 900 {
		angle += omega * dt
		u := s.Update(dt, math.V3(0, 1.6, 0), yaw(angle), math.Zero3)
		if l := u.Inertia.Length(); l > p.MaxInertia+1e-6 {
			t.Fatalf("frame %d: inertia length %v exceeds clamp", i, l)
		}
		prev = u
	}
	next := s.Update(dt, math.V3(0, 1.6, 0), yaw(angle+omega*dt), math.Zero3)

	want := omega * p.CentrifugalGain
	if math.Abs(next.Inertia.X-want) > 1e-3 {
		t.Errorf("swing inertia x = %v, want %v", next.Inertia.X, want)
	}
	if math.Abs(next.Inertia.Y) > 1e-4 || math.Abs(next.Inertia.Z) > 1e-4 {
		t.Errorf("swing should be lateral only, got %v", next.Inertia)
	}
	if !next.Inertia.ApproxEqual(prev.Inertia, 1e-4) {
		t.Errorf("inertia did not settle: %v -> %v", prev.Inertia, next.Inertia)
	}
}

func TestInertiaIsHeadLocal(t *testing.T) {
	s := New(DefaultParams())
	head := yaw(math.Pi / 2) // facing +X
	var u Uniforms
	for range 300 {
		u = s.Update(dt, math.Zero3, head, math.V3(5, 0, 0))
	}
	want := math.V3(0, 0, -5*DefaultParams().LinearGain)
	if !u.Inertia.ApproxEqual(want, 1e-3) {
		t.Errorf("head-local inertia = %v, want %v", u.Inertia, want)
	}
}

func TestSpeedSmoothedSlower(t *testing.T) {
	s := New(DefaultParams())
	s.Update(dt, math.Zero3, math.QuatIdentity(), math.Zero3)
	u := s.Update(dt, math.Zero3, math.QuatIdentity(), math.V3(4, 0, 0))
	if u.Speed <= 0 || u.Speed >= 4 {
		t.Errorf("speed after one frame = %v, want in (0, 4)", u.Speed)
	}
	inertiaFrac := -u.Inertia.X / (4 * DefaultParams().LinearGain)
	speedFrac := u.Speed / 4
	if speedFrac >= inertiaFrac {
		t.Errorf("speed fraction %v should lag inertia fraction %v", speedFrac, inertiaFrac)
	}
}

func TestReset(t *testing.T) {
	s := New(DefaultParams())
	for range 30 {
		s.Update(dt, math.Zero3, math.QuatIdentity(), math.V3(3, 0, 0))
	}
	s.Reset()
	u := s.Update(dt, math.V3(500, 0, 0), math.QuatIdentity(), math.Zero3)
	if u.Inertia != math.Zero3 || u.Speed != 0 {
		t.Errorf("update after reset should seed, got %+v", u)
	}
}
