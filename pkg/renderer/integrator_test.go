package renderer

import (
	"testing"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/material"
)

func TestRayColor(t *testing.T) {
	sky := SolidBackground(core.NewVec3(0.5, 0.7, 1.0))
	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))
	mirror := material.NewMetal(core.NewVec3(0.5, 0.5, 0.5), 0)

	lightWorld := geometry.NewHittableList(geometry.NewSphere(core.NewVec3(0, 0, -5), 1, light))
	mirrorWorld := geometry.NewHittableList(geometry.NewSphere(core.NewVec3(0, 0, -5), 1, mirror))

	forward := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))
	up := core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0))

	tests := []struct {
		name     string
		ray      core.Ray
		world    geometry.Hittable
		depth    int
		expected core.Vec3
	}{
		{"Zero depth is black", forward, lightWorld, 0, core.Vec3{}},
		{"Miss returns background", up, lightWorld, 5, core.NewVec3(0.5, 0.7, 1.0)},
		{"Light terminates path", forward, lightWorld, 5, core.NewVec3(4, 4, 4)},
		{"Mirror reflects background", forward, mirrorWorld, 5, core.NewVec3(0.25, 0.35, 0.5)},
		{"Mirror at depth one is black", forward, mirrorWorld, 1, core.Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RayColor(tt.ray, tt.world, tt.depth, sky, core.NewSeededSampler(1))
			if got.Subtract(tt.expected).Length() > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestGradientBackground(t *testing.T) {
	sky := NewGradientBackground(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1, 1, 1))

	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Vec3
	}{
		{"Straight up", core.NewVec3(0, 3, 0), core.NewVec3(0.5, 0.7, 1.0)},
		{"Straight down", core.NewVec3(0, -1, 0), core.NewVec3(1, 1, 1)},
		{"Horizon", core.NewVec3(1, 0, 0), core.NewVec3(0.75, 0.85, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sky.Color(core.NewRay(core.Vec3{}, tt.direction))
			if got.Subtract(tt.expected).Length() > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
