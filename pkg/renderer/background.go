package renderer

import (
	"github.com/df07/go-raytracer/pkg/core"
)

// Background provides the radiance of rays that leave the scene
type Background interface {
	Color(ray core.Ray) core.Vec3
}

// SolidBackground is a constant sky color; black gives light-only scenes
type SolidBackground core.Vec3

// Color returns the constant color
func (s SolidBackground) Color(ray core.Ray) core.Vec3 {
	return core.Vec3(s)
}

// GradientBackground blends from Bottom to Top by the ray's vertical direction
type GradientBackground struct {
	Top    core.Vec3
	Bottom core.Vec3
}

// NewGradientBackground creates a vertical gradient sky
func NewGradientBackground(top, bottom core.Vec3) GradientBackground {
	return GradientBackground{Top: top, Bottom: bottom}
}

// Color lerps on the unit direction's y component, mapped from [-1, 1] to [0, 1]
func (g GradientBackground) Color(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return g.Bottom.Lerp(g.Top, t)
}
