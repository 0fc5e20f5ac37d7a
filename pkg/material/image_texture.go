package material

import (
	"github.com/df07/go-raytracer/pkg/core"
)

// missingTextureColor is returned by image textures that have no pixel data
var missingTextureColor = core.NewVec3(0, 1, 1)

// ImageTexture provides color from a 2D image.
// A texture without pixels (for example a failed load) evaluates to cyan.
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x], row 0 at the top
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// IsEmpty reports whether the texture has no usable pixel data
func (t *ImageTexture) IsEmpty() bool {
	return t.Width <= 0 || t.Height <= 0 || len(t.Pixels) < t.Width*t.Height
}

// Evaluate samples the texture at given UV coordinates using nearest-neighbor filtering
func (t *ImageTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	if t.IsEmpty() {
		return missingTextureColor
	}

	unit := core.NewInterval(0, 1)
	u := unit.Clamp(uv.X)
	v := 1.0 - unit.Clamp(uv.Y) // Flip V to image coordinates

	x := min(int(u*float64(t.Width)), t.Width-1)
	y := min(int(v*float64(t.Height)), t.Height-1)

	return t.Pixels[y*t.Width+x]
}
