package material

// Surface describes how light interacts with a triangle
type Surface struct {
	Smooth          bool    // Interpolate vertex normals across the face
	RefractiveIndex float64 // Index of refraction (e.g., 1.5 for glass)
	Opacity         float64
	Reflectivity    float64
	Material        Material
}

// NewSurface creates a new Surface
func NewSurface(smooth bool, refractiveIndex, opacity, reflectivity float64, material Material) *Surface {
	return &Surface{
		Smooth:          smooth,
		RefractiveIndex: refractiveIndex,
		Opacity:         opacity,
		Reflectivity:    reflectivity,
		Material:        material,
	}
}

// DefaultSurface returns a flat, opaque, slightly reflective grey surface
func DefaultSurface() *Surface {
	return NewSurface(false, 1.00, 1.00, 0.05, NewMaterial(
		NewColour(0.75, 0.75, 0.75, 0),
		NewColour(0.25, 0.25, 0.25, 0),
		NewColour(1, 1, 1, 0),
		NewColour(0, 0, 0, 0),
		0.75,
	))
}
