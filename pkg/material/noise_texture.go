package material

import (
	"math"

	"github.com/df07/go-raytracer/pkg/core"
)

const turbulenceDepth = 7

// NoiseTexture is a marble-like procedural texture driven by Perlin turbulence
type NoiseTexture struct {
	noise *Perlin
	Scale float64
	Base  core.Vec3
}

// NewNoiseTexture creates a white marble texture at the given frequency
func NewNoiseTexture(scale float64, sampler core.Sampler) *NoiseTexture {
	return &NoiseTexture{
		noise: NewPerlin(sampler),
		Scale: scale,
		Base:  core.NewVec3(1, 1, 1),
	}
}

// Evaluate returns Base * 0.5 * (1 + sin(scale*z + 10*turbulence(p)))
func (n *NoiseTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	phase := n.Scale*point.Z + 10*n.noise.Turbulence(point, turbulenceDepth)
	return n.Base.Multiply(0.5 * (1 + math.Sin(phase)))
}
