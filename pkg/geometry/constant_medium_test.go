package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/material"
)

// fixedSampler returns the same value on every call
type fixedSampler float64

func (f fixedSampler) Get1D() float64 { return float64(f) }
func (f fixedSampler) Get2D() core.Vec2 {
	return core.NewVec2(float64(f), float64(f))
}
func (f fixedSampler) Get3D() core.Vec3 {
	return core.NewVec3(float64(f), float64(f), float64(f))
}

func TestConstantMedium_Density(t *testing.T) {
	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))

	t.Run("Zero density never scatters", func(t *testing.T) {
		fog := NewConstantMediumFromColor(NewSphere(core.Vec3{}, 1, nil), 0, core.NewVec3(1, 1, 1))
		sampler := core.NewSeededSampler(42)
		for i := 0; i < 1000; i++ {
			if _, isHit := fog.Hit(ray, forward, sampler); isHit {
				t.Fatal("A zero-density medium should never be hit")
			}
		}
		if _, isHit := fog.Hit(ray, forward, fixedSampler(0)); isHit {
			t.Error("A zero-density medium should not be hit even for a zero sample")
		}
	})

	t.Run("Infinite density scatters at entry", func(t *testing.T) {
		solid := NewConstantMediumFromColor(NewSphere(core.Vec3{}, 1, nil), math.Inf(1), core.NewVec3(1, 1, 1))
		sampler := core.NewSeededSampler(42)
		for i := 0; i < 100; i++ {
			hit, isHit := solid.Hit(ray, forward, sampler)
			if !isHit {
				t.Fatal("An infinitely dense medium should always be hit")
			}
			if math.Abs(hit.T-4) > 1e-9 {
				t.Fatalf("Expected hit at the boundary t=4, got %f", hit.T)
			}
		}
	})
}

func TestConstantMedium_SampledDistance(t *testing.T) {
	albedo := core.NewVec3(0.2, 0.4, 0.6)
	fog := NewConstantMediumFromColor(NewSphere(core.Vec3{}, 1, nil), 1, albedo)
	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))

	// -ln(1 - 0.5) = ln 2 lies inside the 2-unit chord
	hit, isHit := fog.Hit(ray, forward, fixedSampler(0.5))
	if !isHit {
		t.Fatal("Expected a scattering event inside the medium")
	}
	if math.Abs(hit.T-(4+math.Ln2)) > 1e-9 {
		t.Errorf("Expected t=%f, got %f", 4+math.Ln2, hit.T)
	}
	if hit.Normal != core.NewVec3(1, 0, 0) || !hit.FrontFace {
		t.Errorf("Expected the fixed normal (1,0,0) with front face, got %v %v", hit.Normal, hit.FrontFace)
	}
	if _, ok := hit.Material.(*material.Isotropic); !ok {
		t.Errorf("Expected an isotropic phase function, got %T", hit.Material)
	}

	// -ln(0.01) ~ 4.6 is longer than the chord: the ray passes through
	if _, isHit := fog.Hit(ray, forward, fixedSampler(0.99)); isHit {
		t.Error("Sampled distance beyond the exit should not scatter")
	}

	// Distances are measured in world units, not in ray parameter
	scaled := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 2))
	hit, _ = fog.Hit(scaled, forward, fixedSampler(0.5))
	if math.Abs(hit.T-(2+math.Ln2/2)) > 1e-9 {
		t.Errorf("Expected t=%f for a doubled direction, got %f", 2+math.Ln2/2, hit.T)
	}
}

func TestConstantMedium_IntervalClamping(t *testing.T) {
	solid := NewConstantMediumFromColor(NewSphere(core.Vec3{}, 1, nil), math.Inf(1), core.NewVec3(1, 1, 1))

	// Ray starting inside the boundary scatters immediately
	inside := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1))
	hit, isHit := solid.Hit(inside, forward, fixedSampler(0.5))
	if !isHit || math.Abs(hit.T-forward.Min) > 1e-12 {
		t.Errorf("Expected a hit at the interval start, got hit=%v", isHit)
	}

	// Interval ending before the entry point
	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))
	if _, isHit := solid.Hit(ray, core.NewInterval(0.001, 3), fixedSampler(0.5)); isHit {
		t.Error("Expected no interaction when the interval ends before the medium")
	}

	// Ray that misses the boundary entirely
	miss := core.NewRay(core.NewVec3(0, 5, -5), core.NewVec3(0, 0, 1))
	if _, isHit := solid.Hit(miss, forward, fixedSampler(0.5)); isHit {
		t.Error("Expected no interaction for a ray that misses the boundary")
	}
}
