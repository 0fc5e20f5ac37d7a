package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-raytracer/pkg/core"
)

// Buffer is a row-major image of packed 0xRRGGBB pixels, row 0 at the top
type Buffer struct {
	Width  int
	Height int
	Pixels []uint32
}

// NewBuffer allocates a black buffer
func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		Width:  width,
		Height: height,
		Pixels: make([]uint32, width*height),
	}
}

// Set stores a packed pixel
func (b *Buffer) Set(x, y int, pixel uint32) {
	b.Pixels[y*b.Width+x] = pixel
}

// RGB returns the 8-bit channels of pixel (x, y)
func (b *Buffer) RGB(x, y int) (r, g, bl uint8) {
	p := b.Pixels[y*b.Width+x]
	return uint8(p >> 16), uint8(p >> 8), uint8(p)
}

// At returns pixel (x, y) as an opaque color
func (b *Buffer) At(x, y int) color.RGBA {
	r, g, bl := b.RGB(x, y)
	return color.RGBA{R: r, G: g, B: bl, A: 255}
}

// ToImage converts the buffer to a standard library image for encoding
func (b *Buffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			img.SetRGBA(x, y, b.At(x, y))
		}
	}
	return img
}

// PackColor converts an averaged linear color to a gamma-2 encoded 0xRRGGBB pixel.
// NaN channels become 0 and out-of-range channels are clamped.
func PackColor(c core.Vec3) uint32 {
	c = c.Sanitize()
	intensity := core.NewInterval(0, 0.999)

	r := uint32(256 * intensity.Clamp(linearToGamma(c.X)))
	g := uint32(256 * intensity.Clamp(linearToGamma(c.Y)))
	b := uint32(256 * intensity.Clamp(linearToGamma(c.Z)))

	return r<<16 | g<<8 | b
}

func linearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}
