package scene

import (
	"path/filepath"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/loaders"
	"github.com/df07/go-raytracer/pkg/material"
)

// cornellSize is the edge length of the Cornell box
const cornellSize = 555.0

// cornellWalls adds the five walls plus floor and ceiling of the standard 555 unit box.
// The ceiling light is left to the caller.
func cornellWalls(world *geometry.HittableList, white material.Material) {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	s := cornellSize

	world.Add(geometry.NewQuad(core.NewVec3(s, 0, 0), core.NewVec3(0, s, 0), core.NewVec3(0, 0, s), green))
	world.Add(geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, s, 0), core.NewVec3(0, 0, s), red))
	world.Add(geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(s, 0, 0), core.NewVec3(0, 0, s), white))   // floor
	world.Add(geometry.NewQuad(core.NewVec3(s, s, s), core.NewVec3(-s, 0, 0), core.NewVec3(0, 0, -s), white)) // ceiling
	world.Add(geometry.NewQuad(core.NewVec3(0, 0, s), core.NewVec3(s, 0, 0), core.NewVec3(0, s, 0), white))   // back
}

// cornellBlocks returns the tall and short boxes, rotated and placed inside the room
func cornellBlocks(mat material.Material) (tall, short geometry.Hittable) {
	tallBox := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), mat)
	tall = geometry.NewTranslate(geometry.NewRotateY(tallBox, 15), core.NewVec3(265, 0, 295))

	shortBox := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), mat)
	short = geometry.NewTranslate(geometry.NewRotateY(shortBox, -18), core.NewVec3(130, 0, 65))
	return tall, short
}

// NewCornellScene creates the classic Cornell box with two white blocks and a ceiling light
func NewCornellScene(opts Options) *Scene {
	world := geometry.NewHittableList()
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	cornellWalls(world, white)
	world.Add(geometry.NewQuad(core.NewVec3(343, 554, 332), core.NewVec3(-130, 0, 0), core.NewVec3(0, 0, -105), light))

	tall, short := cornellBlocks(white)
	world.Add(tall)
	world.Add(short)

	camera := cameraConfig(opts, 1.0, 40, core.NewVec3(278, 278, -800), core.NewVec3(278, 278, 0), black)

	return &Scene{Name: "cornell", World: world, Camera: camera}
}

// NewCornellSmokeScene replaces the Cornell blocks with black and white smoke under a wider, dimmer light
func NewCornellSmokeScene(opts Options) *Scene {
	world := geometry.NewHittableList()
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))

	cornellWalls(world, white)
	world.Add(geometry.NewQuad(core.NewVec3(113, 554, 127), core.NewVec3(330, 0, 0), core.NewVec3(0, 0, 305), light))

	tall, short := cornellBlocks(white)
	world.Add(geometry.NewConstantMediumFromColor(tall, 0.01, core.NewVec3(0, 0, 0)))
	world.Add(geometry.NewConstantMediumFromColor(short, 0.01, core.NewVec3(1, 1, 1)))

	camera := cameraConfig(opts, 1.0, 40, core.NewVec3(278, 278, -800), core.NewVec3(278, 278, 0), black)

	return &Scene{Name: "cornell-smoke", World: world, Camera: camera}
}

// NewFinalScene creates the showcase scene combining every primitive, material and texture
func NewFinalScene(opts Options) *Scene {
	sampler := samplerOf(opts)

	// Ground of boxes with random heights
	ground := geometry.NewHittableList()
	groundMat := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	const boxesPerSide = 20
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			w := 100.0
			x0 := -1000.0 + float64(i)*w
			z0 := -1000.0 + float64(j)*w
			y1 := core.RandomFloat(sampler, 1, 101)
			ground.Add(geometry.NewBox(core.NewVec3(x0, 0, z0), core.NewVec3(x0+w, y1, z0+w), groundMat))
		}
	}

	world := geometry.NewHittableList()
	world.Add(geometry.NewBVHFromList(ground))

	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	world.Add(geometry.NewQuad(core.NewVec3(123, 554, 147), core.NewVec3(300, 0, 0), core.NewVec3(0, 0, 265), light))

	center1 := core.NewVec3(400, 400, 200)
	center2 := center1.Add(core.NewVec3(30, 0, 0))
	world.Add(geometry.NewMovingSphere(center1, center2, 50, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))))

	world.Add(geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)))

	// Glass ball filled with blue subsurface haze
	boundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	world.Add(boundary)
	world.Add(geometry.NewConstantMediumFromColor(boundary, 0.2, core.NewVec3(0.2, 0.4, 0.9)))

	// Thin mist over the whole scene
	mist := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	world.Add(geometry.NewConstantMediumFromColor(mist, 0.0001, core.NewVec3(1, 1, 1)))

	earthTexture := loaders.LoadImageTexture(filepath.Join(opts.TextureDir, EarthTextureFile))
	world.Add(geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(earthTexture)))

	marble := material.NewTexturedLambertian(material.NewNoiseTexture(0.1, sampler))
	world.Add(geometry.NewSphere(core.NewVec3(220, 280, 300), 80, marble))

	// Cube of small spheres
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	spheres := make([]geometry.Hittable, 0, 1000)
	for i := 0; i < 1000; i++ {
		spheres = append(spheres, geometry.NewSphere(core.RandomVec3(sampler, 0, 165), 10, white))
	}
	world.Add(geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBVH(spheres), 15),
		core.NewVec3(-100, 270, 395),
	))

	camera := cameraConfig(opts, 1.0, 40, core.NewVec3(478, 278, -600), core.NewVec3(278, 278, 0), black)

	return &Scene{Name: "final", World: world, Camera: camera}
}
