package model

import "github.com/Faultbox/midgard-avatar/pkg/math"

// ComputeBounds recalculates the bounding box from the vertex positions.
func (m *Mesh) ComputeBounds() Bounds {
	if len(m.Vertices) == 0 {
		m.Bounds = Bounds{}
		return m.Bounds
	}
	b := Bounds{
		Min: math.Splat(1e10),
		Max: math.Splat(-1e10),
	}
	for i := range m.Vertices {
		updateBounds(&b, m.Vertices[i].Position)
	}
	m.Bounds = b
	return b
}

// RecomputeNormals rebuilds per-vertex normals from the triangle faces.
// Face normals are area weighted; degenerate faces are skipped.
func (m *Mesh) RecomputeNormals() {
	acc := make([]math.Vec3, len(m.Vertices))
	for t := 0; t+2 < len(m.Indices); t += 3 {
		i0, i1, i2 := m.Indices[t], m.Indices[t+1], m.Indices[t+2]
		p0 := m.Vertices[i0].Position
		e1 := m.Vertices[i1].Position.Sub(p0)
		e2 := m.Vertices[i2].Position.Sub(p0)
		n := e1.Cross(e2)
		if n.Length() < 1e-10 {
			continue
		}
		acc[i0] = acc[i0].Add(n)
		acc[i1] = acc[i1].Add(n)
		acc[i2] = acc[i2].Add(n)
	}
	for i := range m.Vertices {
		if acc[i].Length() < 1e-10 {
			continue
		}
		m.Vertices[i].Normal = acc[i].Normalize()
	}
}

// SmoothNormals averages normals at shared vertex positions so seams between
// duplicated vertices (box edges, sphere poles, cylinder wrap) shade as one surface.
func (m *Mesh) SmoothNormals() {
	const epsilon float32 = 0.0005

	// Group vertices by quantized position for O(n) lookup
	posMap := make(map[[3]int32][]int)
	for i := range m.Vertices {
		p := m.Vertices[i].Position
		key := [3]int32{
			int32(p.X / epsilon),
			int32(p.Y / epsilon),
			int32(p.Z / epsilon),
		}
		posMap[key] = append(posMap[key], i)
	}

	for _, idxs := range posMap {
		if len(idxs) < 2 {
			continue
		}
		var sum math.Vec3
		for _, idx := range idxs {
			sum = sum.Add(m.Vertices[idx].Normal)
		}
		avg := sum.Normalize()
		if avg == (math.Vec3{}) {
			continue
		}
		for _, idx := range idxs {
			m.Vertices[idx].Normal = avg
		}
	}
}

// Transform bakes a matrix into positions and normals.
func (m *Mesh) Transform(mat math.Mat4) {
	normalMat := mat.Inverse()
	for i := range m.Vertices {
		v := &m.Vertices[i]
		v.Position = mat.TransformVec3(v.Position)
		// inverse-transpose keeps normals perpendicular under non-uniform scale
		n := v.Normal
		v.Normal = math.Vec3{
			X: normalMat[0]*n.X + normalMat[1]*n.Y + normalMat[2]*n.Z,
			Y: normalMat[4]*n.X + normalMat[5]*n.Y + normalMat[6]*n.Z,
			Z: normalMat[8]*n.X + normalMat[9]*n.Y + normalMat[10]*n.Z,
		}.Normalize()
	}
	m.ComputeBounds()
}

// Translate offsets every vertex.
func (m *Mesh) Translate(offset math.Vec3) {
	for i := range m.Vertices {
		m.Vertices[i].Position = m.Vertices[i].Position.Add(offset)
	}
	m.Bounds.Min = m.Bounds.Min.Add(offset)
	m.Bounds.Max = m.Bounds.Max.Add(offset)
}

// ScaleUV multiplies texture coordinates. Garment builders scale UVs by a
// solid's circumference and height so a square painted pattern tiles at a
// constant world-space density instead of stretching.
func (m *Mesh) ScaleUV(su, sv float32) {
	for i := range m.Vertices {
		m.Vertices[i].TexCoord[0] *= su
		m.Vertices[i].TexCoord[1] *= sv
	}
}

// Append merges other into m, offsetting its indices.
func (m *Mesh) Append(other *Mesh) {
	base := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, other.Vertices...)
	for _, idx := range other.Indices {
		m.Indices = append(m.Indices, base+idx)
	}
	m.ComputeBounds()
}

// FlipWinding reverses triangle order and negates normals, turning a closed
// solid inside out (used for the inner wall of hollow garments).
func (m *Mesh) FlipWinding() {
	for t := 0; t+2 < len(m.Indices); t += 3 {
		m.Indices[t+1], m.Indices[t+2] = m.Indices[t+2], m.Indices[t+1]
	}
	for i := range m.Vertices {
		m.Vertices[i].Normal = m.Vertices[i].Normal.Neg()
	}
}

func updateBounds(b *Bounds, p math.Vec3) {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.Z < b.Min.Z {
		b.Min.Z = p.Z
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
	if p.Z > b.Max.Z {
		b.Max.Z = p.Z
	}
}
