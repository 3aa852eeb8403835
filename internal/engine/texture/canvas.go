// Package texture provides a small procedural painting canvas for garment and
// eye textures, plus upscaling and WebP export.
package texture

import (
	"image"
	"image/color"
	"math/rand/v2"

	"github.com/Faultbox/midgard-avatar/pkg/math"
)

// Canvas is a square RGBA image painted with procedural patterns.
type Canvas struct {
	img  *image.RGBA
	size int
}

// NewCanvas creates a transparent canvas of size x size pixels.
func NewCanvas(size int) *Canvas {
	if size < 1 {
		size = 1
	}
	return &Canvas{
		img:  image.NewRGBA(image.Rect(0, 0, size, size)),
		size: size,
	}
}

// Size returns the canvas edge length in pixels.
func (c *Canvas) Size() int { return c.size }

// Image returns the backing image. Callers must not keep it across repaints.
func (c *Canvas) Image() *image.RGBA { return c.img }

// At returns the pixel at x, y.
func (c *Canvas) At(x, y int) color.RGBA {
	return c.img.RGBAAt(x, y)
}

// Set writes a pixel, wrapping coordinates so patterns tile seamlessly.
func (c *Canvas) Set(x, y int, col color.RGBA) {
	c.img.SetRGBA(wrap(x, c.size), wrap(y, c.size), col)
}

// Fill paints every pixel with col.
func (c *Canvas) Fill(col color.RGBA) {
	for i := 0; i < len(c.img.Pix); i += 4 {
		c.img.Pix[i] = col.R
		c.img.Pix[i+1] = col.G
		c.img.Pix[i+2] = col.B
		c.img.Pix[i+3] = col.A
	}
}

// Speckle jitters the brightness of each pixel by up to strength (0..1).
// The same seed always produces the same pattern, so repainting a garment
// with unchanged parameters is pixel-identical.
func (c *Canvas) Speckle(seed uint64, strength float32) {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	for y := 0; y < c.size; y++ {
		for x := 0; x < c.size; x++ {
			f := 1 + (rng.Float32()*2-1)*strength
			c.img.SetRGBA(x, y, Shade(c.img.RGBAAt(x, y), f))
		}
	}
}

// Stripes paints bands width pixels wide every period pixels, horizontal or
// vertical.
func (c *Canvas) Stripes(horizontal bool, period, width int, col color.RGBA) {
	if period < 1 || width < 1 {
		return
	}
	for y := 0; y < c.size; y++ {
		for x := 0; x < c.size; x++ {
			k := x
			if horizontal {
				k = y
			}
			if k%period < width {
				c.img.SetRGBA(x, y, col)
			}
		}
	}
}

// Stitches paints a dashed seam line at the given row or column.
func (c *Canvas) Stitches(horizontal bool, at, dash, gap int, col color.RGBA) {
	if dash < 1 {
		return
	}
	step := dash + gap
	for i := 0; i < c.size; i++ {
		if i%step >= dash {
			continue
		}
		if horizontal {
			c.Set(i, at, col)
		} else {
			c.Set(at, i, col)
		}
	}
}

// Plates divides the canvas into a grid of armor plates: edge lines in col
// and a highlight on the upper half of each plate.
func (c *Canvas) Plates(rows, cols int, col color.RGBA) {
	if rows < 1 || cols < 1 {
		return
	}
	ph := c.size / rows
	pw := c.size / cols
	if ph < 2 || pw < 2 {
		return
	}
	for y := 0; y < c.size; y++ {
		for x := 0; x < c.size; x++ {
			ly, lx := y%ph, x%pw
			switch {
			case ly == ph-1 || lx == pw-1:
				c.img.SetRGBA(x, y, col)
			case ly < ph/2:
				c.img.SetRGBA(x, y, Shade(c.img.RGBAAt(x, y), 1.12))
			}
		}
	}
}

// Rings tiles small interlocking circles, the chain mail pattern.
func (c *Canvas) Rings(period int, col color.RGBA) {
	if period < 3 {
		return
	}
	r := float32(period) / 2
	for y := 0; y < c.size; y++ {
		row := y / period
		off := 0
		if row%2 == 1 {
			off = period / 2
		}
		for x := 0; x < c.size; x++ {
			lx := float32((x+off)%period) + 0.5 - r
			ly := float32(y%period) + 0.5 - r
			d := math.Sqrt(lx*lx + ly*ly)
			if d > r-1.5 && d <= r {
				c.img.SetRGBA(x, y, col)
			}
		}
	}
}

// Disc paints a filled circle centred at cx, cy in pixel units.
func (c *Canvas) Disc(cx, cy, radius float32, col color.RGBA) {
	c.Ring(cx, cy, 0, radius, col)
}

// Ring paints the annulus between inner and outer radius.
func (c *Canvas) Ring(cx, cy, inner, outer float32, col color.RGBA) {
	for y := 0; y < c.size; y++ {
		for x := 0; x < c.size; x++ {
			dx := float32(x) + 0.5 - cx
			dy := float32(y) + 0.5 - cy
			d := math.Sqrt(dx*dx + dy*dy)
			if d >= inner && d <= outer {
				c.img.SetRGBA(x, y, col)
			}
		}
	}
}

// Darken multiplies pixels within the annulus by a factor that ramps from 1
// at inner to f at outer.
func (c *Canvas) Darken(cx, cy, inner, outer, f float32) {
	for y := 0; y < c.size; y++ {
		for x := 0; x < c.size; x++ {
			dx := float32(x) + 0.5 - cx
			dy := float32(y) + 0.5 - cy
			d := math.Sqrt(dx*dx + dy*dy)
			if d < inner || d > outer {
				continue
			}
			t := math.Smoothstep(inner, outer, d)
			c.img.SetRGBA(x, y, Shade(c.img.RGBAAt(x, y), math.Lerp(1, f, t)))
		}
	}
}

// Shade scales the color channels of col by f, clamped to 0..255.
func Shade(col color.RGBA, f float32) color.RGBA {
	return color.RGBA{
		R: clampByte(float32(col.R) * f),
		G: clampByte(float32(col.G) * f),
		B: clampByte(float32(col.B) * f),
		A: col.A,
	}
}

func clampByte(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
