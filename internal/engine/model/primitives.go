package model

import "github.com/Faultbox/midgard-avatar/pkg/math"

// Sphere builds a UV sphere centred at the origin.
func Sphere(radius float32, widthSegments, heightSegments int) *Mesh {
	return SphereSection(radius, widthSegments, heightSegments, 0, math.Pi)
}

// SphereSection builds the band of a UV sphere between polar angles
// phiStart and phiStart+phiLength (0 is the +Y pole). A section from 0 to
// pi/2 is a dome, used for eyelid caps and the hair shell.
func SphereSection(radius float32, widthSegments, heightSegments int, phiStart, phiLength float32) *Mesh {
	if widthSegments < 3 {
		widthSegments = 3
	}
	if heightSegments < 2 {
		heightSegments = 2
	}
	m := &Mesh{}
	for iy := 0; iy <= heightSegments; iy++ {
		v := float32(iy) / float32(heightSegments)
		phi := phiStart + v*phiLength
		sinPhi, cosPhi := math.Sin(phi), math.Cos(phi)
		for ix := 0; ix <= widthSegments; ix++ {
			u := float32(ix) / float32(widthSegments)
			theta := u * 2 * math.Pi
			n := math.Vec3{X: -math.Cos(theta) * sinPhi, Y: cosPhi, Z: math.Sin(theta) * sinPhi}
			m.Vertices = append(m.Vertices, Vertex{
				Position: n.Scale(radius),
				Normal:   n,
				TexCoord: [2]float32{u, 1 - v},
			})
		}
	}
	stride := uint32(widthSegments + 1)
	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := uint32(iy)*stride + uint32(ix) + 1
			b := uint32(iy)*stride + uint32(ix)
			c := uint32(iy+1)*stride + uint32(ix)
			d := uint32(iy+1)*stride + uint32(ix) + 1
			// skip the zero-area triangles at the poles
			if iy != 0 || phiStart > 0 {
				m.Indices = append(m.Indices, a, b, d)
			}
			if iy != heightSegments-1 || phiStart+phiLength < math.Pi {
				m.Indices = append(m.Indices, b, c, d)
			}
		}
	}
	m.ComputeBounds()
	return m
}

// Cylinder builds a cylinder along Y centred at the origin. radiusTop is at
// +height/2. Caps are added unless openEnded is set.
func Cylinder(radiusTop, radiusBottom, height float32, radialSegments, heightSegments int, openEnded bool) *Mesh {
	if radialSegments < 3 {
		radialSegments = 3
	}
	if heightSegments < 1 {
		heightSegments = 1
	}
	m := &Mesh{}
	half := height / 2
	slope := float32(0)
	if height != 0 {
		slope = (radiusBottom - radiusTop) / height
	}
	stride := uint32(radialSegments + 1)
	for y := 0; y <= heightSegments; y++ {
		v := float32(y) / float32(heightSegments)
		radius := v*(radiusBottom-radiusTop) + radiusTop
		for x := 0; x <= radialSegments; x++ {
			u := float32(x) / float32(radialSegments)
			theta := u * 2 * math.Pi
			sin, cos := math.Sin(theta), math.Cos(theta)
			m.Vertices = append(m.Vertices, Vertex{
				Position: math.Vec3{X: radius * sin, Y: half - v*height, Z: radius * cos},
				Normal:   math.Vec3{X: sin, Y: slope, Z: cos}.Normalize(),
				TexCoord: [2]float32{u, 1 - v},
			})
		}
	}
	for y := 0; y < heightSegments; y++ {
		for x := 0; x < radialSegments; x++ {
			a := uint32(y)*stride + uint32(x)
			b := uint32(y+1)*stride + uint32(x)
			c := uint32(y+1)*stride + uint32(x) + 1
			d := uint32(y)*stride + uint32(x) + 1
			m.Indices = append(m.Indices, a, b, d, b, c, d)
		}
	}
	if !openEnded {
		if radiusTop > 0 {
			addCap(m, radiusTop, half, radialSegments, true)
		}
		if radiusBottom > 0 {
			addCap(m, radiusBottom, -half, radialSegments, false)
		}
	}
	m.ComputeBounds()
	return m
}

func addCap(m *Mesh, radius, y float32, segments int, top bool) {
	sign := float32(-1)
	if top {
		sign = 1
	}
	center := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, Vertex{
		Position: math.Vec3{Y: y},
		Normal:   math.Vec3{Y: sign},
		TexCoord: [2]float32{0.5, 0.5},
	})
	first := uint32(len(m.Vertices))
	for x := 0; x <= segments; x++ {
		theta := float32(x) / float32(segments) * 2 * math.Pi
		sin, cos := math.Sin(theta), math.Cos(theta)
		m.Vertices = append(m.Vertices, Vertex{
			Position: math.Vec3{X: radius * sin, Y: y, Z: radius * cos},
			Normal:   math.Vec3{Y: sign},
			TexCoord: [2]float32{cos*0.5 + 0.5, sin*0.5*sign + 0.5},
		})
	}
	for x := uint32(0); x < uint32(segments); x++ {
		if top {
			m.Indices = append(m.Indices, first+x, first+x+1, center)
		} else {
			m.Indices = append(m.Indices, first+x+1, first+x, center)
		}
	}
}

// boxFaces lists each face normal with its in-plane u and v axes, chosen so
// that u x v equals the normal (counter-clockwise front faces).
var boxFaces = [6]struct{ n, u, v math.Vec3 }{
	{n: math.Vec3{X: 1}, u: math.Vec3{Z: -1}, v: math.Vec3{Y: 1}},
	{n: math.Vec3{X: -1}, u: math.Vec3{Z: 1}, v: math.Vec3{Y: 1}},
	{n: math.Vec3{Y: 1}, u: math.Vec3{X: 1}, v: math.Vec3{Z: -1}},
	{n: math.Vec3{Y: -1}, u: math.Vec3{X: 1}, v: math.Vec3{Z: 1}},
	{n: math.Vec3{Z: 1}, u: math.Vec3{X: 1}, v: math.Vec3{Y: 1}},
	{n: math.Vec3{Z: -1}, u: math.Vec3{X: -1}, v: math.Vec3{Y: 1}},
}

// Box builds a subdivided box centred at the origin. Subdivision gives the
// sculpt pipeline enough vertices to round the box toward a sphere.
func Box(width, height, depth float32, segments int) *Mesh {
	if segments < 1 {
		segments = 1
	}
	half := math.Vec3{X: width / 2, Y: height / 2, Z: depth / 2}
	m := &Mesh{}
	stride := uint32(segments + 1)
	for _, f := range boxFaces {
		base := uint32(len(m.Vertices))
		for j := 0; j <= segments; j++ {
			t := float32(j)/float32(segments)*2 - 1
			for i := 0; i <= segments; i++ {
				s := float32(i)/float32(segments)*2 - 1
				p := f.n.Add(f.u.Scale(s)).Add(f.v.Scale(t)).Mul(half)
				m.Vertices = append(m.Vertices, Vertex{
					Position: p,
					Normal:   f.n,
					TexCoord: [2]float32{(s + 1) / 2, (t + 1) / 2},
				})
			}
		}
		for j := uint32(0); j < uint32(segments); j++ {
			for i := uint32(0); i < uint32(segments); i++ {
				a := base + j*stride + i
				b := a + 1
				c := a + stride + 1
				d := a + stride
				m.Indices = append(m.Indices, a, b, c, a, c, d)
			}
		}
	}
	m.ComputeBounds()
	return m
}

// Lathe revolves a profile of (radius, y) points around the Y axis.
func Lathe(profile []math.Vec2, segments int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	m := &Mesh{}
	if len(profile) < 2 {
		return m
	}
	stride := uint32(len(profile))
	for s := 0; s <= segments; s++ {
		u := float32(s) / float32(segments)
		theta := u * 2 * math.Pi
		sin, cos := math.Sin(theta), math.Cos(theta)
		for j, p := range profile {
			v := float32(j) / float32(len(profile)-1)
			m.Vertices = append(m.Vertices, Vertex{
				Position: math.Vec3{X: p.X * sin, Y: p.Y, Z: p.X * cos},
				TexCoord: [2]float32{u, v},
			})
		}
	}
	for s := uint32(0); s < uint32(segments); s++ {
		for j := uint32(0); j+1 < stride; j++ {
			a := s*stride + j
			b := a + stride
			c := b + 1
			d := a + 1
			m.Indices = append(m.Indices, a, b, d, b, c, d)
		}
	}
	m.RecomputeNormals()
	b := m.ComputeBounds()
	center := b.Center()
	for i := range m.Vertices {
		// vertices on the axis only touch degenerate triangles
		if m.Vertices[i].Normal == (math.Vec3{}) {
			m.Vertices[i].Normal = m.Vertices[i].Position.Sub(center).Normalize()
		}
	}
	m.SmoothNormals()
	return m
}

// Capsule builds a Y-aligned capsule: a cylinder of the given length with
// hemispherical ends. Total height is length + 2*radius.
func Capsule(radius, length float32, radialSegments, capSegments int) *Mesh {
	if capSegments < 1 {
		capSegments = 1
	}
	half := length / 2
	profile := make([]math.Vec2, 0, 2*capSegments+2)
	for i := 0; i <= capSegments; i++ {
		a := -math.Pi/2 + float32(i)/float32(capSegments)*math.Pi/2
		profile = append(profile, math.Vec2{X: radius * math.Cos(a), Y: -half + radius*math.Sin(a)})
	}
	for i := 0; i <= capSegments; i++ {
		a := float32(i) / float32(capSegments) * math.Pi / 2
		profile = append(profile, math.Vec2{X: radius * math.Cos(a), Y: half + radius*math.Sin(a)})
	}
	return Lathe(profile, radialSegments)
}

// FitUV rescales texture coordinates so one tile of a painted texture covers
// tile world units around the circumference and along the height.
func (m *Mesh) FitUV(circumference, height, tile float32) {
	if tile <= 0 {
		return
	}
	su := circumference / tile
	sv := height / tile
	if su < 1 {
		su = 1
	}
	if sv < 1 {
		sv = 1
	}
	m.ScaleUV(float32(int(su+0.5)), float32(int(sv+0.5)))
}
