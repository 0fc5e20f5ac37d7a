package renderer

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-raytracer/pkg/core"
)

// ErrInvalidCamera is returned for camera configurations that cannot produce an image
var ErrInvalidCamera = errors.New("invalid camera configuration")

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Width           int        // Image width in pixels
	AspectRatio     float64    // Width / height
	VFov            float64    // Vertical field of view in degrees
	LookFrom        core.Vec3  // Camera position
	LookAt          core.Vec3  // Point the camera looks at
	VUp             core.Vec3  // World up direction
	DefocusAngle    float64    // Variation angle of rays through each pixel, in degrees (0 = pinhole)
	FocusDistance   float64    // Distance to the plane of perfect focus (0 = distance to LookAt)
	SamplesPerPixel int        // Random samples per pixel
	MaxDepth        int        // Maximum number of ray bounces
	Background      Background // Radiance for rays that escape the scene (nil = black)
}

// Camera generates rays for rendering. Derived values are fixed at construction.
type Camera struct {
	config       CameraConfig
	imageHeight  int
	center       core.Vec3
	pixel00      core.Vec3 // Center of pixel (0, 0), the upper-left pixel
	pixelDeltaU  core.Vec3 // Offset to the pixel on the right
	pixelDeltaV  core.Vec3 // Offset to the pixel below
	defocusDiskU core.Vec3 // Defocus disk horizontal radius
	defocusDiskV core.Vec3 // Defocus disk vertical radius
	background   Background
}

// NewCamera validates the configuration and computes the viewport
func NewCamera(config CameraConfig) (*Camera, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}

	imageHeight := max(1, int(float64(config.Width)/config.AspectRatio))

	focusDistance := config.FocusDistance
	if focusDistance == 0 {
		focusDistance = config.LookFrom.Subtract(config.LookAt).Length()
	}

	theta := degreesToRadians(config.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * focusDistance
	// Use the realized pixel ratio rather than AspectRatio so pixels stay square
	viewportWidth := viewportHeight * float64(config.Width) / float64(imageHeight)

	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.VUp.Cross(w).Normalize()
	v := w.Cross(u)

	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Divide(float64(config.Width))
	pixelDeltaV := viewportV.Divide(float64(imageHeight))

	upperLeft := config.LookFrom.
		Subtract(w.Multiply(focusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00 := upperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := focusDistance * math.Tan(degreesToRadians(config.DefocusAngle/2))

	background := config.Background
	if background == nil {
		background = SolidBackground(core.Vec3{})
	}

	return &Camera{
		config:       config,
		imageHeight:  imageHeight,
		center:       config.LookFrom,
		pixel00:      pixel00,
		pixelDeltaU:  pixelDeltaU,
		pixelDeltaV:  pixelDeltaV,
		defocusDiskU: u.Multiply(defocusRadius),
		defocusDiskV: v.Multiply(defocusRadius),
		background:   background,
	}, nil
}

func (c CameraConfig) validate() error {
	switch {
	case c.Width <= 0:
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalidCamera, c.Width)
	case !(c.AspectRatio > 0) || math.IsInf(c.AspectRatio, 0):
		return fmt.Errorf("%w: aspect ratio must be positive and finite, got %g", ErrInvalidCamera, c.AspectRatio)
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: samples per pixel must be positive, got %d", ErrInvalidCamera, c.SamplesPerPixel)
	case c.MaxDepth < 0:
		return fmt.Errorf("%w: max depth must not be negative, got %d", ErrInvalidCamera, c.MaxDepth)
	case !(c.VFov > 0 && c.VFov < 180):
		return fmt.Errorf("%w: vertical field of view must be in (0, 180), got %g", ErrInvalidCamera, c.VFov)
	case c.DefocusAngle < 0:
		return fmt.Errorf("%w: defocus angle must not be negative, got %g", ErrInvalidCamera, c.DefocusAngle)
	case c.FocusDistance < 0:
		return fmt.Errorf("%w: focus distance must not be negative, got %g", ErrInvalidCamera, c.FocusDistance)
	case c.LookFrom.Subtract(c.LookAt).NearZero():
		return fmt.Errorf("%w: look-from and look-at coincide at %v", ErrInvalidCamera, c.LookFrom)
	case c.VUp.Cross(c.LookFrom.Subtract(c.LookAt)).NearZero():
		return fmt.Errorf("%w: view-up %v is parallel to the view direction", ErrInvalidCamera, c.VUp)
	}
	return nil
}

// Width returns the image width in pixels
func (c *Camera) Width() int {
	return c.config.Width
}

// Height returns the image height in pixels
func (c *Camera) Height() int {
	return c.imageHeight
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// GetRay returns a ray toward a random point in pixel (i, j), originating on the defocus disk,
// at a random shutter time. Row j=0 is the top of the image.
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	offset := sampler.Get2D()
	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + offset.X - 0.5)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offset.Y - 0.5))

	origin := c.center
	if c.config.DefocusAngle > 0 {
		origin = c.defocusDiskSample(sampler)
	}

	return core.NewRayAtTime(origin, pixelSample.Subtract(origin), sampler.Get1D())
}

// defocusDiskSample returns a random point on the camera's defocus disk
func (c *Camera) defocusDiskSample(sampler core.Sampler) core.Vec3 {
	p := core.RandomInUnitDisk(sampler)
	return c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
