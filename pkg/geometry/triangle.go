package geometry

import (
	"github.com/df07/trevi-kernel/pkg/core"
	"github.com/df07/trevi-kernel/pkg/material"
)

// Triangle is a single triangle with its normal and intersection
// coefficients cached at construction. It is never modified afterwards, so
// one Triangle can be tested against many rays concurrently.
type Triangle struct {
	vertices [3]Vertex
	surface  *material.Surface // not owned; outlives the triangle
	normal   core.Vector       // Cached unit face normal

	// vertex0 − vertex1 (a, b, c) and vertex0 − vertex2 (d, e, f)
	a, b, c, d, e, f float64
}

// NewTriangle creates a new triangle from three vertices. The face normal is
// (v1 − v0) × (v2 − v0), so rays only hit the side that sees the vertices
// counter-clockwise. A degenerate triangle gets a NaN normal.
func NewTriangle(v0, v1, v2 Vertex, surface *material.Surface) *Triangle {
	t := &Triangle{
		vertices: [3]Vertex{v0, v1, v2},
		surface:  surface,
	}

	// Precompute normal and Cramer's rule coefficients
	t.computeNormal()
	t.computeCoefficients()

	return t
}

// computeNormal calculates and caches the triangle's normal vector
func (t *Triangle) computeNormal() {
	p0, p1, p2 := t.vertices[0].Position, t.vertices[1].Position, t.vertices[2].Position

	// Calculate two edge vectors
	edge1 := p1.Subtract(p0)
	edge2 := p2.Subtract(p0)

	// Normal is the cross product of the two edges
	t.normal = edge1.Cross(edge2).Unit()
}

func (t *Triangle) computeCoefficients() {
	p0, p1, p2 := t.vertices[0].Position, t.vertices[1].Position, t.vertices[2].Position

	t.a = p0.I - p1.I
	t.b = p0.J - p1.J
	t.c = p0.K - p1.K
	t.d = p0.I - p2.I
	t.e = p0.J - p2.J
	t.f = p0.K - p2.K
}

// Test intersects the ray with the front face of the triangle, returning
// (nil, false) on a miss.
//
// The test is one-sided: a ray travelling along the normal, or parallel to
// the plane, never hits. Shadow rays rely on this.
func (t *Triangle) Test(ray core.Ray) (*Hit, bool) {
	if ray.Direction.Dot(t.normal) >= 0 {
		return nil, false
	}

	// Solve [a d dirI; b e dirJ; c f dirK]·[β γ t] = v0 − origin by Cramer's rule
	g, h, i := ray.Direction.I, ray.Direction.J, ray.Direction.K
	p0 := t.vertices[0].Position
	j := p0.I - ray.Origin.I
	k := p0.J - ray.Origin.J
	l := p0.K - ray.Origin.K

	eihf := t.e*i - h*t.f
	gfdi := g*t.f - t.d*i
	dheg := t.d*h - t.e*g
	denom := t.a*eihf + t.b*gfdi + t.c*dheg

	beta := (j*eihf + k*gfdi + l*dheg) / denom
	if beta < 0 || beta > 1 {
		return nil, false
	}

	akjb := t.a*k - j*t.b
	jcal := j*t.c - t.a*l
	blkc := t.b*l - k*t.c

	gamma := (i*akjb + h*jcal + g*blkc) / denom
	if gamma < 0 || beta+gamma > 1 {
		return nil, false
	}

	tVal := -(t.f*akjb + t.e*jcal + t.d*blkc) / denom
	// NaN from a degenerate triangle fails this too
	if !(tVal >= 0) {
		return nil, false
	}

	alpha := 1.0 - beta - gamma
	normal := t.normal
	if t.surface != nil && t.surface.Smooth {
		normal = t.vertices[0].Normal.Multiply(alpha).
			Add(t.vertices[1].Normal.Multiply(beta)).
			Add(t.vertices[2].Normal.Multiply(gamma)).
			Unit()
	}

	return &Hit{
		t:        tVal,
		position: ray.At(tVal),
		normal:   normal,
		triangle: t,
		weights:  [3]float64{alpha, beta, gamma},
	}, true
}

// Vertex returns vertex i (0, 1 or 2)
func (t *Triangle) Vertex(i int) Vertex {
	return t.vertices[i]
}

// Normal returns the triangle's unit face normal
func (t *Triangle) Normal() core.Vector {
	return t.normal
}

// Surface returns the surface the triangle was built with
func (t *Triangle) Surface() *material.Surface {
	return t.surface
}

// Transform returns a new triangle with every vertex transformed by m
func (t *Triangle) Transform(m core.Mat4) *Triangle {
	return NewTriangle(
		t.vertices[0].Transform(m),
		t.vertices[1].Transform(m),
		t.vertices[2].Transform(m),
		t.surface,
	)
}
