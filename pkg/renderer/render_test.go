package renderer

import (
	"testing"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/material"
	"github.com/google/go-cmp/cmp"
)

func TestRender_DepthOneSphereIsDarkerThanSky(t *testing.T) {
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(1, 1, 1))),
	)

	config := testCameraConfig()
	config.Width = 40
	config.MaxDepth = 1
	config.Background = NewGradientBackground(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1, 1, 1))

	camera, err := NewCamera(config)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	buffer, _, err := camera.Render(world, RenderOptions{Workers: 2, Seed: 42})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	// The sphere subtends 30 degrees of a 45 degree half-fov: about 11.5 pixels from the center.
	// Stay well inside and well outside the silhouette.
	brightestSphere := uint8(0)
	darkestSky := uint8(255)
	for y := 0; y < buffer.Height; y++ {
		for x := 0; x < buffer.Width; x++ {
			dx, dy := float64(x)-19.5, float64(y)-19.5
			r2 := dx*dx + dy*dy
			_, g, _ := buffer.RGB(x, y)
			switch {
			case r2 < 8*8:
				brightestSphere = max(brightestSphere, g)
			case r2 > 16*16:
				darkestSky = min(darkestSky, g)
			}
		}
	}

	if brightestSphere >= darkestSky {
		t.Errorf("Sphere pixels (max %d) should be strictly darker than sky pixels (min %d)", brightestSphere, darkestSky)
	}
	if brightestSphere != 0 {
		t.Errorf("With depth 1 the sphere receives no light, got %d", brightestSphere)
	}
}

func TestRender_DeterministicAcrossWorkerCounts(t *testing.T) {
	sampler := core.NewSeededSampler(9)
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.8, 0.8, 0))),
		geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.5, material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)),
		geometry.NewConstantMedium(
			geometry.NewSphere(core.NewVec3(0, 1, -2), 0.5, nil), 2,
			material.NewNoiseTexture(4, sampler)),
	)
	bvh := geometry.NewBVHFromList(world)

	config := testCameraConfig()
	config.Width = 24
	config.AspectRatio = 1.5
	config.SamplesPerPixel = 4
	config.DefocusAngle = 2
	config.Background = NewGradientBackground(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1, 1, 1))

	camera, err := NewCamera(config)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	reference, _, err := camera.Render(bvh, RenderOptions{Workers: 1, Seed: 7, BandHeight: 3})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	for _, workers := range []int{1, 3, 8} {
		buffer, _, err := camera.Render(bvh, RenderOptions{Workers: workers, Seed: 7, BandHeight: 3})
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		if diff := cmp.Diff(reference.Pixels, buffer.Pixels); diff != "" {
			t.Errorf("Render with %d workers differs from the single-worker render:\n%s", workers, diff)
		}
	}

	other, _, _ := camera.Render(bvh, RenderOptions{Workers: 2, Seed: 8, BandHeight: 3})
	if cmp.Equal(reference.Pixels, other.Pixels) {
		t.Error("Different seeds should produce different noise")
	}
}

// cornellBox builds a small closed box lit by a ceiling quad with the given emission
func cornellBox(emission core.Vec3) *geometry.HittableList {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(emission)

	world := geometry.NewHittableList()
	world.Add(geometry.NewQuad(core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), core.NewVec3(0, 0, 1), green))
	world.Add(geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), core.NewVec3(0, 0, 1), red))
	world.Add(geometry.NewQuad(core.NewVec3(0.35, 0.999, 0.35), core.NewVec3(0.3, 0, 0), core.NewVec3(0, 0, 0.3), light))
	world.Add(geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), white))
	world.Add(geometry.NewQuad(core.NewVec3(1, 1, 1), core.NewVec3(-1, 0, 0), core.NewVec3(0, 0, -1), white))
	world.Add(geometry.NewQuad(core.NewVec3(0, 0, 1), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), white))
	world.Add(geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.Vec3{}, core.NewVec3(0.3, 0.6, 0.3), white), 15),
		core.NewVec3(0.25, 0, 0.55)))
	return world
}

func cornellCamera(t *testing.T) *Camera {
	t.Helper()
	camera, err := NewCamera(CameraConfig{
		Width:           20,
		AspectRatio:     1,
		VFov:            40,
		LookFrom:        core.NewVec3(0.5, 0.5, -1.4),
		LookAt:          core.NewVec3(0.5, 0.5, 0),
		VUp:             core.NewVec3(0, 1, 0),
		SamplesPerPixel: 8,
		MaxDepth:        6,
		Background:      SolidBackground(core.Vec3{}),
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return camera
}

func TestRender_CornellWithDarkLightIsBlack(t *testing.T) {
	buffer, _, err := cornellCamera(t).Render(cornellBox(core.Vec3{}), RenderOptions{Workers: 4, Seed: 1})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	for i, pixel := range buffer.Pixels {
		if pixel != 0 {
			t.Fatalf("Pixel %d is 0x%06X, expected black with no light source", i, pixel)
		}
	}
}

func TestRender_CornellWithLightIsLit(t *testing.T) {
	buffer, _, err := cornellCamera(t).Render(cornellBox(core.NewVec3(15, 15, 15)), RenderOptions{Workers: 4, Seed: 1})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	lit := 0
	for _, pixel := range buffer.Pixels {
		if pixel != 0 {
			lit++
		}
	}
	if lit < len(buffer.Pixels)/4 {
		t.Errorf("Expected a good share of pixels to receive light, only %d of %d did", lit, len(buffer.Pixels))
	}
}

func TestRender_Stats(t *testing.T) {
	config := testCameraConfig()
	config.Width = 10
	config.AspectRatio = 10.0 / 7.0
	config.SamplesPerPixel = 3

	camera, err := NewCamera(config)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	world := geometry.NewHittableList(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(1, 1, 1))))

	buffer, stats, err := camera.Render(world, RenderOptions{Workers: 2, BandHeight: 3})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	expected := RenderStats{
		TotalPixels:  buffer.Width * buffer.Height,
		TotalSamples: buffer.Width * buffer.Height * 3,
		Bands:        (buffer.Height + 2) / 3,
		Workers:      2,
	}
	stats.Elapsed = 0
	if diff := cmp.Diff(expected, stats); diff != "" {
		t.Errorf("Unexpected stats (-want +got):\n%s", diff)
	}
}

func TestRender_NilWorld(t *testing.T) {
	camera, err := NewCamera(testCameraConfig())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, _, err := camera.Render(nil, RenderOptions{}); err == nil {
		t.Error("Expected an error for a nil world")
	}
}

func TestSplitBands(t *testing.T) {
	tests := []struct {
		name       string
		height     int
		bandHeight int
		expected   []Band
	}{
		{"Exact", 4, 2, []Band{{0, 0, 2}, {1, 2, 4}}},
		{"Remainder", 5, 2, []Band{{0, 0, 2}, {1, 2, 4}, {2, 4, 5}}},
		{"Single", 3, 8, []Band{{0, 0, 3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.expected, splitBands(tt.height, tt.bandHeight)); diff != "" {
				t.Errorf("Unexpected bands (-want +got):\n%s", diff)
			}
		})
	}
}
