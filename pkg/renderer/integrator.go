package renderer

import (
	"math"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/material"
)

// shadowAcneEpsilon excludes hits at the ray origin caused by floating-point error
const shadowAcneEpsilon = 0.001

// RayColor estimates the radiance along ray, following at most depth scattering events.
// Paths that exhaust depth contribute black.
func RayColor(ray core.Ray, world geometry.Hittable, depth int, background Background, sampler core.Sampler) core.Vec3 {
	radiance := core.Vec3{}
	throughput := core.NewVec3(1, 1, 1)
	rayT := core.NewInterval(shadowAcneEpsilon, math.Inf(1))

	for ; depth > 0; depth-- {
		hit, isHit := world.Hit(ray, rayT, sampler)
		if !isHit {
			return radiance.Add(throughput.MultiplyVec(background.Color(ray)))
		}
		if hit.Material == nil {
			return radiance
		}

		radiance = radiance.Add(throughput.MultiplyVec(material.Emitted(hit.Material, hit)))

		scatter, scattered := hit.Material.Scatter(ray, hit, sampler)
		if !scattered {
			return radiance
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	return radiance
}
