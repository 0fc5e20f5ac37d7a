package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-raytracer/pkg/core"
)

func TestQuad_Hit(t *testing.T) {
	quad := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), nil)

	tests := []struct {
		name      string
		ray       core.Ray
		expectHit bool
		expectUV  core.Vec2
		frontFace bool
	}{
		{"Inside from front", core.NewRay(core.NewVec3(0.25, 0.75, 1), core.NewVec3(0, 0, -1)), true, core.NewVec2(0.25, 0.75), true},
		{"Inside from back", core.NewRay(core.NewVec3(0.5, 0.5, -1), core.NewVec3(0, 0, 1)), true, core.NewVec2(0.5, 0.5), false},
		{"Outside alpha", core.NewRay(core.NewVec3(1.5, 0.5, 1), core.NewVec3(0, 0, -1)), false, core.Vec2{}, false},
		{"Outside beta", core.NewRay(core.NewVec3(0.5, -0.1, 1), core.NewVec3(0, 0, -1)), false, core.Vec2{}, false},
		{"Parallel", core.NewRay(core.NewVec3(0.5, 0.5, 1), core.NewVec3(1, 0, 0)), false, core.Vec2{}, false},
		{"Behind origin", core.NewRay(core.NewVec3(0.5, 0.5, 1), core.NewVec3(0, 0, 1)), false, core.Vec2{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := quad.Hit(tt.ray, forward, nil)
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%v, got %v", tt.expectHit, isHit)
			}
			if !isHit {
				return
			}
			if math.Abs(hit.UV.X-tt.expectUV.X) > 1e-9 || math.Abs(hit.UV.Y-tt.expectUV.Y) > 1e-9 {
				t.Errorf("Expected UV %v, got %v", tt.expectUV, hit.UV)
			}
			if hit.FrontFace != tt.frontFace {
				t.Errorf("Expected front face %v, got %v", tt.frontFace, hit.FrontFace)
			}
			if math.Abs(hit.T-1) > 1e-9 {
				t.Errorf("Expected t=1, got %f", hit.T)
			}
		})
	}
}

func TestQuad_BoundingBoxIsPadded(t *testing.T) {
	quad := NewQuad(core.NewVec3(0, 2, 0), core.NewVec3(3, 0, 0), core.NewVec3(0, 0, 4), nil)
	box := quad.BoundingBox()

	if box.Y.Size() <= 0 {
		t.Errorf("Planar quad box should have non-zero thickness, got %v", box.Y)
	}
	if box.X.Min != 0 || box.X.Max != 3 || box.Z.Min != 0 || box.Z.Max != 4 {
		t.Errorf("Unexpected extent %v", box)
	}
}

func TestBox_SixOutwardFaces(t *testing.T) {
	box := NewBox(core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0), nil)
	if box.Len() != 6 {
		t.Fatalf("Expected 6 faces, got %d", box.Len())
	}

	// Each face box is padded, so the union may exceed the corners slightly
	bounds := box.BoundingBox()
	if bounds.Min().Subtract(core.NewVec3(0, 0, 0)).Length() > 1e-3 ||
		bounds.Max().Subtract(core.NewVec3(1, 1, 1)).Length() > 1e-3 {
		t.Errorf("Unexpected bounds %v", bounds)
	}

	directions := []core.Vec3{
		core.NewVec3(1, 0, 0), core.NewVec3(-1, 0, 0),
		core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0),
		core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1),
	}
	center := core.NewVec3(0.5, 0.5, 0.5)

	for _, dir := range directions {
		// From outside, every face is hit on its front side with an outward normal
		outside := core.NewRay(center.Add(dir.Multiply(5)), dir.Negate())
		hit, isHit := box.Hit(outside, forward, nil)
		if !isHit {
			t.Fatalf("Ray along %v missed the box", dir.Negate())
		}
		if !hit.FrontFace || hit.Normal != dir {
			t.Errorf("Face %v: expected front face with normal %v, got front=%v normal=%v", dir, dir, hit.FrontFace, hit.Normal)
		}
		if math.Abs(hit.T-4.5) > 1e-9 {
			t.Errorf("Face %v: expected t=4.5, got %f", dir, hit.T)
		}

		// From inside, the same face is hit on its back side
		inside := core.NewRay(center, dir)
		hit, isHit = box.Hit(inside, forward, nil)
		if !isHit || hit.FrontFace {
			t.Errorf("Face %v: expected back face hit from inside", dir)
		}
	}
}
