package model

import "github.com/Faultbox/midgard-avatar/pkg/math"

// Axis selects a coordinate axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Of returns the component of v on the axis.
func (a Axis) Of(v math.Vec3) float32 {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	default:
		return v.Z
	}
}

// With returns v with the axis component replaced by s.
func (a Axis) With(v math.Vec3, s float32) math.Vec3 {
	switch a {
	case AxisX:
		v.X = s
	case AxisY:
		v.Y = s
	default:
		v.Z = s
	}
	return v
}

// Sample is the undeformed state of a vertex handed to every sculpt op.
// Ops are closed-form functions of Sample, so the order of ops only matters
// through the position they are given.
type Sample struct {
	Local  math.Vec3 // position normalized to [-1,1] over the original bounds
	Normal math.Vec3 // original vertex normal
	Center math.Vec3
	Half   math.Vec3 // half extents of the original bounds
}

// Op deforms a single vertex position.
type Op func(p math.Vec3, s Sample) math.Vec3

// Region weights a vertex in [0,1] by its normalized coordinate.
type Region func(local math.Vec3) float32

// Sculpt applies ops in order to every vertex of m, then rebuilds normals and
// bounds. Cost is linear in the vertex count.
func Sculpt(m *Mesh, ops ...Op) {
	if len(m.Vertices) == 0 || len(ops) == 0 {
		return
	}
	b := m.ComputeBounds()
	center := b.Center()
	half := b.Size().Scale(0.5)
	inv := math.Vec3{
		X: math.SafeDiv(1, half.X, 1e-6),
		Y: math.SafeDiv(1, half.Y, 1e-6),
		Z: math.SafeDiv(1, half.Z, 1e-6),
	}
	for i := range m.Vertices {
		v := &m.Vertices[i]
		s := Sample{
			Local:  v.Position.Sub(center).Mul(inv),
			Normal: v.Normal,
			Center: center,
			Half:   half,
		}
		p := v.Position
		for _, op := range ops {
			p = op(p, s)
		}
		v.Position = p
	}
	m.RecomputeNormals()
	m.SmoothNormals()
	m.ComputeBounds()
}

// Spherize blends each vertex toward its projection on the ellipsoid
// inscribed in the original bounds. amount 0 keeps the shape, 1 is fully round.
func Spherize(amount float32) Op {
	return func(p math.Vec3, s Sample) math.Vec3 {
		dir := s.Local.Normalize()
		if dir == (math.Vec3{}) {
			return p
		}
		target := s.Center.Add(dir.Mul(s.Half))
		return p.Lerp(target, amount)
	}
}

// Taper scales the two lateral axes linearly along axis, from bottom at the
// negative end to top at the positive end.
func Taper(axis Axis, bottom, top float32) Op {
	return func(p math.Vec3, s Sample) math.Vec3 {
		t := (axis.Of(s.Local) + 1) / 2
		f := math.Lerp(bottom, top, math.Clamp(t, 0, 1))
		d := p.Sub(s.Center).Scale(f)
		d = axis.With(d, axis.Of(p)-axis.Of(s.Center))
		return s.Center.Add(d)
	}
}

// Hollow pushes vertices along their normal by the sign and magnitude of
// one axis: the positive side sinks in by concave, the negative side swells
// by convex. Amounts are fractions of the axis half extent.
func Hollow(axis Axis, concave, convex float32) Op {
	return func(p math.Vec3, s Sample) math.Vec3 {
		c := axis.Of(s.Local)
		depth := axis.Of(s.Half)
		if c > 0 {
			return p.Sub(s.Normal.Scale(concave * c * depth))
		}
		return p.Add(s.Normal.Scale(convex * -c * depth))
	}
}

// Bulge pushes vertices outward along their normal by amount (world units)
// weighted by region.
func Bulge(amount float32, region Region) Op {
	return func(p math.Vec3, s Sample) math.Vec3 {
		w := weight(region, s.Local)
		if w == 0 {
			return p
		}
		return p.Add(s.Normal.Scale(amount * w))
	}
}

// Stretch scales the offset from the center along axis by factor, weighted
// by region.
func Stretch(axis Axis, factor float32, region Region) Op {
	return func(p math.Vec3, s Sample) math.Vec3 {
		w := weight(region, s.Local)
		if w == 0 {
			return p
		}
		f := 1 + (factor-1)*w
		c := axis.Of(s.Center)
		return axis.With(p, c+(axis.Of(p)-c)*f)
	}
}

// Flatten squashes along axis by amount in [0,1], weighted by region.
func Flatten(axis Axis, amount float32, region Region) Op {
	return Stretch(axis, 1-amount, region)
}

// Shift offsets vertices by a fixed vector weighted by region.
func Shift(offset math.Vec3, region Region) Op {
	return func(p math.Vec3, s Sample) math.Vec3 {
		return p.Add(offset.Scale(weight(region, s.Local)))
	}
}

func weight(r Region, local math.Vec3) float32 {
	if r == nil {
		return 1
	}
	return math.Clamp(r(local), 0, 1)
}

// Everywhere weights every vertex fully.
func Everywhere() Region {
	return func(math.Vec3) float32 { return 1 }
}

// Below selects vertices whose coordinate on axis is under at, fading in
// over soft.
func Below(axis Axis, at, soft float32) Region {
	return func(l math.Vec3) float32 {
		return 1 - math.Smoothstep(at-soft, at, axis.Of(l))
	}
}

// Above selects vertices whose coordinate on axis is over at.
func Above(axis Axis, at, soft float32) Region {
	return func(l math.Vec3) float32 {
		return math.Smoothstep(at, at+soft, axis.Of(l))
	}
}

// Band selects vertices between lo and hi on axis.
func Band(axis Axis, lo, hi, soft float32) Region {
	return func(l math.Vec3) float32 {
		c := axis.Of(l)
		return math.Smoothstep(lo-soft, lo, c) * (1 - math.Smoothstep(hi, hi+soft, c))
	}
}

// Both multiplies two regions.
func Both(a, b Region) Region {
	return func(l math.Vec3) float32 {
		return weight(a, l) * weight(b, l)
	}
}
