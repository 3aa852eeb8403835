// Package material defines the shaded surface description attached to solids.
package material

import (
	"image"

	"github.com/Faultbox/midgard-avatar/pkg/math"
)

// Material describes how a solid is shaded. The renderer reads it; the
// avatar core only swaps and recolors materials.
type Material struct {
	Name      string
	BaseColor math.Vec3 // linear 0..1 RGB
	Opacity   float32
	Roughness float32
	Texture   *image.RGBA // optional albedo texture
	Unlit     bool        // flat shading, used by diagnostic overlays

	// Version is bumped on every change so renderers can re-upload lazily.
	Version uint64
}

// New creates an opaque lit material.
func New(name string, color math.Vec3, roughness float32) *Material {
	return &Material{
		Name:      name,
		BaseColor: color,
		Opacity:   1,
		Roughness: roughness,
	}
}

// Flat creates an unlit material of a single color.
func Flat(name string, color math.Vec3) *Material {
	return &Material{
		Name:      name,
		BaseColor: color,
		Opacity:   1,
		Roughness: 1,
		Unlit:     true,
	}
}

// SetColor updates the base color. It reports whether anything changed.
func (m *Material) SetColor(c math.Vec3) bool {
	if m.BaseColor == c {
		return false
	}
	m.BaseColor = c
	m.Version++
	return true
}

// SetTexture replaces the albedo texture.
func (m *Material) SetTexture(img *image.RGBA) {
	m.Texture = img
	m.Version++
}

// Transparent reports whether the material needs blending.
func (m *Material) Transparent() bool {
	return m.Opacity < 1
}
