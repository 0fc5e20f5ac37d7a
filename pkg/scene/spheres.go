package scene

import (
	"path/filepath"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/loaders"
	"github.com/df07/go-raytracer/pkg/material"
)

// EarthTextureFile is the image wrapped around the earth spheres, relative to Options.TextureDir
const EarthTextureFile = "earthmap.jpg"

// NewRandomSpheresScene creates the field of small random spheres around three large ones
func NewRandomSpheresScene(opts Options) *Scene {
	sampler := samplerOf(opts)
	world := geometry.NewHittableList()

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	clearance := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := sampler.Get1D()
			center := core.NewVec3(
				float64(a)+0.9*sampler.Get1D(),
				0.2,
				float64(b)+0.9*sampler.Get1D(),
			)
			if center.Subtract(clearance).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				// Diffuse spheres bounce upward during the shutter interval
				albedo := core.RandomVec3(sampler, 0, 1).MultiplyVec(core.RandomVec3(sampler, 0, 1))
				center2 := center.Add(core.NewVec3(0, core.RandomFloat(sampler, 0, 0.25), 0))
				world.Add(geometry.NewMovingSphere(center, center2, 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := core.RandomVec3(sampler, 0.5, 1)
				fuzz := core.RandomFloat(sampler, 0, 0.5)
				world.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				world.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	world.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	world.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)))

	camera := cameraConfig(opts, 16.0/9.0, 20, core.NewVec3(13, 2, 3), core.NewVec3(0, 0, 0), daylight)
	camera.DefocusAngle = 0.6
	camera.FocusDistance = 10.0

	return &Scene{Name: "random-spheres", World: geometry.NewBVHFromList(world), Camera: camera}
}

// NewCheckerSpheresScene creates two large checkered spheres touching at the origin
func NewCheckerSpheresScene(opts Options) *Scene {
	checker := material.NewCheckerTextureFromColors(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	surface := material.NewTexturedLambertian(checker)

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, surface),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, surface),
	)

	camera := cameraConfig(opts, 16.0/9.0, 20, core.NewVec3(13, 2, 3), core.NewVec3(0, 0, 0), daylight)
	camera.FocusDistance = 10.0

	return &Scene{Name: "checker-spheres", World: world, Camera: camera}
}

// NewEarthScene creates a single globe wrapped in the earth image texture.
// A missing texture file renders the globe cyan instead of failing.
func NewEarthScene(opts Options) *Scene {
	earthTexture := loaders.LoadImageTexture(filepath.Join(opts.TextureDir, EarthTextureFile))
	globe := geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(earthTexture))

	camera := cameraConfig(opts, 16.0/9.0, 20, core.NewVec3(0, 0, 12), core.NewVec3(0, 0, 0), daylight)

	return &Scene{Name: "earth", World: geometry.NewHittableList(globe), Camera: camera}
}

// NewPerlinSpheresScene creates a marbled ground and sphere from Perlin turbulence
func NewPerlinSpheresScene(opts Options) *Scene {
	marble := material.NewTexturedLambertian(material.NewNoiseTexture(4, samplerOf(opts)))

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	)

	camera := cameraConfig(opts, 16.0/9.0, 20, core.NewVec3(13, 2, 3), core.NewVec3(0, 0, 0), daylight)

	return &Scene{Name: "perlin-spheres", World: world, Camera: camera}
}
