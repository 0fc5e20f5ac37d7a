package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/material"
)

// ImageData contains loaded image data as Vec3 color array
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Linear color, row-major, row 0 at the top
}

// LoadImage loads a PNG, JPEG, BMP, TIFF or WebP image and converts it to linear colors.
// Channels are squared to undo the gamma-2 encoding applied on output.
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Format is detected from the file header
	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filename, err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535]
			pixels[y*width+x] = core.NewVec3(
				gammaToLinear(float64(r)/65535.0),
				gammaToLinear(float64(g)/65535.0),
				gammaToLinear(float64(b)/65535.0),
			)
		}
	}

	core.Logger().Debug("image loaded", "file", filename, "format", format, "width", width, "height", height)

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}, nil
}

func gammaToLinear(v float64) float64 {
	return v * v
}

// LoadImageTexture loads an image as a texture. A missing or unreadable file is not fatal:
// the failure is logged and the returned texture renders as cyan.
func LoadImageTexture(filename string) *material.ImageTexture {
	data, err := LoadImage(filename)
	if err != nil {
		core.Logger().Warn("image texture unavailable, using fallback color", "file", filename, "error", err)
		return material.NewImageTexture(0, 0, nil)
	}
	return material.NewImageTexture(data.Width, data.Height, data.Pixels)
}
