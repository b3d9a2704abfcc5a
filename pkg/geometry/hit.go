package geometry

import (
	"github.com/df07/trevi-kernel/pkg/core"
	"github.com/df07/trevi-kernel/pkg/material"
)

// Hit is the result of a ray striking a triangle. It only exists for actual
// hits; Triangle.Test reports a miss as (nil, false).
type Hit struct {
	t        float64
	position core.Vector
	normal   core.Vector
	triangle *Triangle
	weights  [3]float64
}

// T returns the ray parameter of the hit
func (h *Hit) T() float64 {
	return h.t
}

// Position returns the hit point
func (h *Hit) Position() core.Vector {
	return h.position
}

// Normal returns the unit shading normal: the face normal, or the
// interpolated vertex normal on smooth surfaces.
func (h *Hit) Normal() core.Vector {
	return h.normal
}

// Triangle returns the triangle that was hit
func (h *Hit) Triangle() *Triangle {
	return h.triangle
}

// Surface returns the surface of the triangle that was hit
func (h *Hit) Surface() *material.Surface {
	return h.triangle.surface
}

// Weights returns the barycentric weights of vertex 0, 1 and 2. They sum to
// 1 and each lies in [0, 1].
func (h *Hit) Weights() [3]float64 {
	return h.weights
}

// UV returns the texture coordinates at the hit, interpolated from the
// triangle's vertices
func (h *Hit) UV() (u, v float64) {
	for i, w := range h.weights {
		u += w * h.triangle.vertices[i].U
		v += w * h.triangle.vertices[i].V
	}
	return u, v
}

// Reflect returns ray reflected about the hit normal
func (h *Hit) Reflect(ray core.Ray) core.Ray {
	return ray.Reflect(h)
}

// Refract returns ray transmitted from a medium of index n1 into one of n2
func (h *Hit) Refract(ray core.Ray, n1, n2 float64) core.Ray {
	return ray.Refract(h, n1, n2)
}
