package material

import (
	"github.com/df07/go-raytracer/pkg/core"
)

// DiffuseLight is an emitter that never scatters
type DiffuseLight struct {
	Emit Texture
}

// NewDiffuseLight creates a light emitting a constant color
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates a light whose emission varies over the surface
func NewTexturedDiffuseLight(emit Texture) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

// Scatter always absorbs; lights terminate paths
func (d *DiffuseLight) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Emitted implements the Emitter interface
func (d *DiffuseLight) Emitted(uv core.Vec2, point core.Vec3) core.Vec3 {
	return d.Emit.Evaluate(uv, point)
}
