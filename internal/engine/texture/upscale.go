package texture

import (
	"image"

	"golang.org/x/image/draw"
)

// Upscale returns a copy of the canvas enlarged by factor with nearest
// neighbor sampling, keeping painted pixels crisp. A factor below 2 returns a
// plain copy.
func (c *Canvas) Upscale(factor int) *image.RGBA {
	if factor < 1 {
		factor = 1
	}
	src := c.img
	dst := image.NewRGBA(image.Rect(0, 0, c.size*factor, c.size*factor))
	if factor == 1 {
		draw.Draw(dst, dst.Bounds(), src, image.Point{}, draw.Src)
		return dst
	}
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// ToRGBA converts any image to *image.RGBA.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
