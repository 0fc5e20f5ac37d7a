package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/google/go-cmp/cmp"
)

func TestPackColor(t *testing.T) {
	tests := []struct {
		name     string
		color    core.Vec3
		expected uint32
	}{
		{"Black", core.NewVec3(0, 0, 0), 0x000000},
		{"White", core.NewVec3(1, 1, 1), 0xFFFFFF},
		{"Gamma quarter", core.NewVec3(0.25, 0.25, 0.25), 0x808080},
		{"Channel order", core.NewVec3(1, 0, 0.25), 0xFF0080},
		{"Overexposed clamps", core.NewVec3(7, 100, math.Inf(1)), 0xFFFFFF},
		{"Negative clamps", core.NewVec3(-1, -0.5, 0), 0x000000},
		{"NaN becomes zero", core.NewVec3(math.NaN(), 1, math.NaN()), 0x00FF00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PackColor(tt.color); got != tt.expected {
				t.Errorf("Expected 0x%06X, got 0x%06X", tt.expected, got)
			}
		})
	}
}

func TestBuffer_RowMajorAccess(t *testing.T) {
	buffer := NewBuffer(3, 2)
	buffer.Set(2, 1, 0x102030)

	if buffer.Pixels[5] != 0x102030 {
		t.Errorf("Pixel (2,1) should be stored at index 5, got %v", buffer.Pixels)
	}

	r, g, b := buffer.RGB(2, 1)
	if r != 0x10 || g != 0x20 || b != 0x30 {
		t.Errorf("Unexpected channels %d %d %d", r, g, b)
	}

	img := buffer.ToImage()
	if diff := cmp.Diff(buffer.At(2, 1), img.RGBAAt(2, 1)); diff != "" {
		t.Errorf("Image pixel differs from buffer (-buffer +image):\n%s", diff)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Errorf("Unexpected image bounds %v", img.Bounds())
	}
}

func TestPixelStats_Average(t *testing.T) {
	var ps PixelStats
	if ps.GetColor() != (core.Vec3{}) {
		t.Error("Empty pixel should be black")
	}
	ps.AddSample(core.NewVec3(1, 0, 0))
	ps.AddSample(core.NewVec3(0, 1, 0))
	if ps.GetColor() != core.NewVec3(0.5, 0.5, 0) || ps.SampleCount != 2 {
		t.Errorf("Unexpected average %v over %d samples", ps.GetColor(), ps.SampleCount)
	}
}
