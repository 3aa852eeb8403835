package math

import (
	"math"
	"testing"
)

func near(a, b float32) bool {
	return Abs(a-b) < 1e-4
}

func TestVec3Cross(t *testing.T) {
	got := UnitX.Cross(UnitY)
	if got != UnitZ {
		t.Errorf("Vec3.Cross() = %v, want %v", got, UnitZ)
	}
}

func TestVec3ClampLength(t *testing.T) {
	v := Vec3{3, 4, 0}
	got := v.ClampLength(1)
	if !near(got.Length(), 1) {
		t.Errorf("ClampLength(1).Length() = %v, want 1", got.Length())
	}
	short := Vec3{0.1, 0, 0}
	if short.ClampLength(1) != short {
		t.Errorf("ClampLength changed a short vector: %v", short.ClampLength(1))
	}
}

func TestSafeDiv(t *testing.T) {
	tests := []struct {
		num, den, want float32
	}{
		{2, 4, 0.5},
		{2, 0, 2},
		{2, 1e-9, 2},
		{-3, -1.5, 2},
	}
	for _, tt := range tests {
		if got := SafeDiv(tt.num, tt.den, 1e-6); !near(got, tt.want) {
			t.Errorf("SafeDiv(%v, %v) = %v, want %v", tt.num, tt.den, got, tt.want)
		}
	}
}

func TestDampFactor(t *testing.T) {
	if got := DampFactor(5, 0); got != 0 {
		t.Errorf("DampFactor(dt=0) = %v, want 0", got)
	}
	if got := DampFactor(5, 100); got > 1 || got < 0.999 {
		t.Errorf("DampFactor(large dt) = %v, want ~1", got)
	}
	// Two half steps equal one full step.
	half := DampFactor(3, 0.05)
	full := DampFactor(3, 0.1)
	combined := 1 - (1-half)*(1-half)
	if !near(combined, full) {
		t.Errorf("DampFactor not framerate independent: %v vs %v", combined, full)
	}
}

func TestQuatRotate(t *testing.T) {
	q := QuatFromAxisAngle(UnitY, Pi/2)
	got := q.Rotate(UnitX)
	if !got.ApproxEqual(Vec3{0, 0, -1}, 1e-5) {
		t.Errorf("Rotate(X) by 90deg yaw = %v, want (0,0,-1)", got)
	}
	back := q.Inverse().Rotate(got)
	if !back.ApproxEqual(UnitX, 1e-5) {
		t.Errorf("inverse rotate = %v, want %v", back, UnitX)
	}
}

func TestQuatMatchesMatrix(t *testing.T) {
	q := QuatFromEuler(Vec3{0.3, -0.7, 1.1})
	m := q.ToMat4()
	v := Vec3{0.2, 1.5, -0.4}
	a := q.Rotate(v)
	b := m.TransformVec3(v)
	if !a.ApproxEqual(b, 1e-4) {
		t.Errorf("quaternion rotate %v != matrix rotate %v", a, b)
	}
}

func TestQuatFromMat4RoundTrip(t *testing.T) {
	for _, e := range []Vec3{{}, {0.1, 0.2, 0.3}, {2.5, 0, 0}, {0, 3, 0}, {0, 0, -2.9}} {
		q := QuatFromEuler(e)
		r := QuatFromMat4(q.ToMat4())
		if Abs(Abs(q.Dot(r))-1) > 1e-4 {
			t.Errorf("QuatFromMat4 round trip for %v: got %v, want %v", e, r, q)
		}
	}
}

func TestYawAngle(t *testing.T) {
	for _, a := range []float32{0, 0.5, -1.2, 3} {
		q := QuatFromAxisAngle(UnitY, a)
		if got := q.YawAngle(); !near(got, a) {
			t.Errorf("YawAngle(%v) = %v", a, got)
		}
	}
}

func TestComposeDecompose(t *testing.T) {
	pos := Vec3{1, 2, 3}
	rot := QuatFromEuler(Vec3{0.4, 0.1, -0.3})
	scale := Vec3{2, 0.5, 1.5}
	m := Compose(pos, rot, scale)

	p, r, s := m.Decompose()
	if !p.ApproxEqual(pos, 1e-5) {
		t.Errorf("position = %v, want %v", p, pos)
	}
	if !s.ApproxEqual(scale, 1e-4) {
		t.Errorf("scale = %v, want %v", s, scale)
	}
	if Abs(Abs(r.Dot(rot))-1) > 1e-4 {
		t.Errorf("rotation = %v, want %v", r, rot)
	}
}

func TestComposeMatchesProduct(t *testing.T) {
	rot := QuatFromAxisAngle(UnitY, float32(math.Pi/3))
	want := Translate(1, 2, 3).Mul(rot.ToMat4()).Mul(Scale(2, 3, 4))
	got := Compose(Vec3{1, 2, 3}, rot, Vec3{2, 3, 4})
	for i := range got {
		if !near(got[i], want[i]) {
			t.Fatalf("element %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestInverse(t *testing.T) {
	m := Compose(Vec3{4, -1, 2}, QuatFromEuler(Vec3{0.2, 0.9, 0}), Vec3{1, 2, 1})
	id := m.Mul(m.Inverse())
	want := Identity()
	for i := range id {
		if Abs(id[i]-want[i]) > 1e-4 {
			t.Fatalf("M * M^-1 element %d = %v, want %v", i, id[i], want[i])
		}
	}
}

func TestSmoothstep(t *testing.T) {
	if Smoothstep(0, 1, -1) != 0 || Smoothstep(0, 1, 2) != 1 {
		t.Error("Smoothstep should clamp outside the edges")
	}
	if !near(Smoothstep(0, 1, 0.5), 0.5) {
		t.Errorf("Smoothstep(0.5) = %v, want 0.5", Smoothstep(0, 1, 0.5))
	}
}
