package material

// Material holds the Phong shading terms of a surface
type Material struct {
	Diffuse   Colour
	Ambient   Colour
	Specular  Colour
	Emit      Colour
	Shininess float64
}

// NewMaterial creates a new Material
func NewMaterial(diffuse, ambient, specular, emit Colour, shininess float64) Material {
	return Material{
		Diffuse:   diffuse,
		Ambient:   ambient,
		Specular:  specular,
		Emit:      emit,
		Shininess: shininess,
	}
}

// DefaultMaterial returns a black, non-emissive material with shininess 1
func DefaultMaterial() Material {
	return Material{Shininess: 1.0}
}
