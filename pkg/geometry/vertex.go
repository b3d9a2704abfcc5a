package geometry

import "github.com/df07/trevi-kernel/pkg/core"

// Vertex is a triangle corner: a position, a shading normal and texture
// coordinates. Vertices are values; "moving" one means building a new one
// and a new Triangle from it.
type Vertex struct {
	Position core.Vector
	Normal   core.Vector
	U, V     float64
}

// NewVertex creates a new Vertex
func NewVertex(position, normal core.Vector, u, v float64) Vertex {
	return Vertex{Position: position, Normal: normal, U: u, V: v}
}

// WithUV returns a copy of the vertex with new texture coordinates
func (v Vertex) WithUV(u, tv float64) Vertex {
	v.U, v.V = u, tv
	return v
}

// WithPosition returns a copy of the vertex at a new position
func (v Vertex) WithPosition(position core.Vector) Vertex {
	v.Position = position
	return v
}

// Transform returns the vertex with its position and normal transformed by m.
// The normal is renormalized; m should not contain non-uniform scaling.
func (v Vertex) Transform(m core.Mat4) Vertex {
	v.Position = v.Position.Transform(m)
	v.Normal = v.Normal.Transform(m).Unit()
	return v
}
