// Package materials owns the fixed material set of one avatar and its
// painted eye texture.
package materials

import (
	"github.com/Faultbox/midgard-avatar/internal/engine/material"
	"github.com/Faultbox/midgard-avatar/internal/engine/texture"
	"github.com/Faultbox/midgard-avatar/internal/game/avatar/appearance"
)

// DefaultEyeSize is the eye texture edge in pixels.
const DefaultEyeSize = 32

// Options tunes texture sizes.
type Options struct {
	EyeSize int
}

// Set is the avatar's shared materials. Solids reference these pointers, so
// recoloring a material recolors every solid using it.
type Set struct {
	Skin      *material.Material
	Cloth     *material.Material
	Boots     *material.Material
	Lips      *material.Material
	Sclera    *material.Material
	Hair      *material.Material
	Underwear *material.Material
	Eye       *material.Material // iris/pupil decal on the eyeball front

	eyeSize  int
	eyeKey   eyeKey
	painted  bool
	repaints int
}

type eyeKey struct {
	iris, sclera appearance.Color
}

// NewSet creates the materials and paints the eye texture.
func NewSet(app appearance.Appearance, opts Options) *Set {
	if opts.EyeSize < 8 {
		opts.EyeSize = DefaultEyeSize
	}
	s := &Set{
		Skin:      material.New("skin", app.Colors.Skin.Float(), 0.65),
		Cloth:     material.New("cloth", app.Colors.Shirt.Float(), 0.9),
		Boots:     material.New("boots", app.Colors.Shoes.Float(), 0.7),
		Lips:      material.New("lips", app.Colors.Lips.Float(), 0.5),
		Sclera:    material.New("sclera", app.Colors.Sclera.Float(), 0.3),
		Hair:      material.New("hair", app.Colors.Hair.Float(), 0.8),
		Underwear: material.New("underwear", app.Colors.Underwear.Float(), 0.9),
		Eye:       material.New("eye", app.Colors.Eyes.Float(), 0.2),
		eyeSize:   opts.EyeSize,
	}
	s.Sync(app)
	return s
}

// Sync recolors every material. The eye texture is repainted only when the
// iris or sclera color changed since the last paint.
func (s *Set) Sync(app appearance.Appearance) {
	c := app.Colors
	s.Skin.SetColor(c.Skin.Float())
	s.Cloth.SetColor(c.Shirt.Float())
	s.Boots.SetColor(c.Shoes.Float())
	s.Lips.SetColor(c.Lips.Float())
	s.Sclera.SetColor(c.Sclera.Float())
	s.Hair.SetColor(c.Hair.Float())
	s.Underwear.SetColor(c.Underwear.Float())
	s.Eye.SetColor(c.Eyes.Float())

	key := eyeKey{iris: c.Eyes, sclera: c.Sclera}
	if s.painted && key == s.eyeKey {
		return
	}
	s.Eye.SetTexture(PaintEye(s.eyeSize, c.Eyes, c.Sclera).Image())
	s.eyeKey = key
	s.painted = true
	s.repaints++
}

// EyeRepaints returns how many times the eye texture was painted.
func (s *Set) EyeRepaints() int {
	return s.repaints
}

// All returns every material in a fixed order.
func (s *Set) All() []*material.Material {
	return []*material.Material{s.Skin, s.Cloth, s.Boots, s.Lips, s.Sclera, s.Hair, s.Underwear, s.Eye}
}

// PaintEye paints an eye decal: sclera background, iris with a darkened
// limbal ring, pupil and a small specular highlight.
func PaintEye(size int, iris, sclera appearance.Color) *texture.Canvas {
	c := texture.NewCanvas(size)
	f := float32(size)
	mid := f / 2

	c.Fill(iris.ToRGBA())
	c.Speckle(uint64(iris.R)<<16|uint64(iris.G)<<8|uint64(iris.B), 0.06)
	c.Ring(mid, mid, f*0.34, f, sclera.ToRGBA())
	c.Darken(mid, mid, f*0.22, f*0.34, 0.55)
	c.Disc(mid, mid, f*0.13, appearance.Color{R: 8, G: 8, B: 10}.ToRGBA())
	c.Disc(mid-f*0.09, mid-f*0.09, f*0.05, appearance.Color{R: 250, G: 250, B: 250}.ToRGBA())
	return c
}
