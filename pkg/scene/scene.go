package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/renderer"
)

// defaultSeed seeds scene construction when Options carries no sampler
const defaultSeed = 1

// Options controls the render settings and resources shared by every scene builder
type Options struct {
	Width      int          // Image width in pixels
	Samples    int          // Samples per pixel
	Depth      int          // Maximum bounce depth
	TextureDir string       // Directory holding image textures such as earthmap.jpg
	Sampler    core.Sampler // Random source for scene layout and noise tables (nil = fixed seed)
}

// Scene is a finished world plus the camera that should view it
type Scene struct {
	Name   string
	World  geometry.Hittable
	Camera renderer.CameraConfig
}

// Builder constructs a scene from options
type Builder func(opts Options) *Scene

var builders = map[string]Builder{
	"random-spheres":  NewRandomSpheresScene,
	"checker-spheres": NewCheckerSpheresScene,
	"earth":           NewEarthScene,
	"perlin-spheres":  NewPerlinSpheresScene,
	"quads":           NewQuadsScene,
	"simple-light":    NewSimpleLightScene,
	"cornell":         NewCornellScene,
	"cornell-smoke":   NewCornellSmokeScene,
	"final":           NewFinalScene,
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build constructs the named scene
func Build(name string, opts Options) (*Scene, error) {
	builder, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
	}

	if opts.Sampler == nil {
		opts.Sampler = core.NewSeededSampler(defaultSeed)
	}

	s := builder(opts)
	core.Logger().Debug("scene built", "scene", name, "bounds", s.World.BoundingBox())
	return s, nil
}

// daylight is the sky used by scenes without their own light sources
var daylight = renderer.NewGradientBackground(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1, 1, 1))

// black is the background for scenes lit only by emitters
var black = renderer.SolidBackground(core.Vec3{})

// cameraConfig fills in the fields shared by every scene
func cameraConfig(opts Options, aspectRatio, vfov float64, lookFrom, lookAt core.Vec3, background renderer.Background) renderer.CameraConfig {
	return renderer.CameraConfig{
		Width:           opts.Width,
		AspectRatio:     aspectRatio,
		VFov:            vfov,
		LookFrom:        lookFrom,
		LookAt:          lookAt,
		VUp:             core.NewVec3(0, 1, 0),
		SamplesPerPixel: opts.Samples,
		MaxDepth:        opts.Depth,
		Background:      background,
	}
}

func samplerOf(opts Options) core.Sampler {
	if opts.Sampler == nil {
		return core.NewSeededSampler(defaultSeed)
	}
	return opts.Sampler
}
