package clothing

import (
	"image"
	"image/color"

	"github.com/Faultbox/midgard-avatar/internal/engine/texture"
	"github.com/Faultbox/midgard-avatar/internal/game/avatar/appearance"
)

// Pattern names a garment texture style.
type Pattern int

const (
	PatternPlain Pattern = iota
	PatternLinen
	PatternStriped
	PatternTrimmed
	PatternPlated
	PatternChain
	PatternHide
	PatternLeather
)

var patternNames = [...]string{"plain", "linen", "striped", "trimmed", "plated", "chain", "hide", "leather"}

func (p Pattern) String() string {
	if int(p) < len(patternNames) {
		return patternNames[p]
	}
	return "unknown"
}

// outfitPattern picks the cloth pattern of an outfit.
func outfitPattern(o appearance.Outfit) Pattern {
	switch o {
	case appearance.Warrior:
		return PatternPlated
	case appearance.Mage:
		return PatternTrimmed
	case appearance.Noble:
		return PatternStriped
	default:
		return PatternLinen
	}
}

// legPattern picks the pattern of a leg covering.
func legPattern(cov appearance.LegCovering, o appearance.Outfit) Pattern {
	switch cov {
	case appearance.LegsChainLeggings:
		return PatternChain
	case appearance.LegsHideBreeches:
		return PatternHide
	}
	if o == appearance.Warrior {
		return PatternLeather
	}
	return outfitPattern(o)
}

// Paint renders a garment texture of size pixels. The seed makes the noise
// repeatable, so an unchanged garment repaints pixel-identical.
func Paint(p Pattern, base appearance.Color, size int, seed uint64) *texture.Canvas {
	c := texture.NewCanvas(size)
	col := base.ToRGBA()
	dark := texture.Shade(col, 0.62)
	light := texture.Shade(col, 1.3)
	c.Fill(col)

	switch p {
	case PatternLinen:
		c.Speckle(seed, 0.08)
		c.Stitches(true, size-2, 2, 1, dark)
	case PatternStriped:
		c.Speckle(seed, 0.04)
		c.Stripes(false, max(size/4, 2), 1, light)
		c.Stitches(true, 1, 1, 1, dark)
	case PatternTrimmed:
		c.Speckle(seed, 0.05)
		c.Stripes(true, size, 2, gold)
		c.Stitches(true, 3, 1, 2, gold)
	case PatternPlated:
		c.Speckle(seed, 0.1)
		c.Plates(4, 2, dark)
	case PatternChain:
		c.Fill(texture.Shade(steel, 0.55))
		c.Rings(max(size/4, 3), steel)
		c.Speckle(seed, 0.06)
	case PatternHide:
		c.Speckle(seed, 0.22)
		c.Stitches(false, size/2, 3, 2, dark)
	case PatternLeather:
		c.Speckle(seed, 0.12)
		c.Stitches(true, 1, 2, 2, light)
		c.Stitches(true, size-2, 2, 2, light)
	}
	return c
}

var (
	gold  = color.RGBA{R: 201, G: 162, B: 39, A: 255}
	steel = color.RGBA{R: 170, G: 176, B: 184, A: 255}
)

// seedFor derives a stable noise seed from a slot and color.
func seedFor(slot int, c appearance.Color) uint64 {
	return uint64(slot)<<24 | uint64(c.R)<<16 | uint64(c.G)<<8 | uint64(c.B)
}

// paintFor paints and upscales the texture of one garment build.
func (m *Manager) paintFor(slot int, p Pattern, c appearance.Color) *image.RGBA {
	return Paint(p, c, m.opts.PaintSize, seedFor(slot, c)).Upscale(m.opts.Upscale)
}
