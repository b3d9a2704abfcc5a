package core

// Interaction is the part of a ray/surface hit needed to spawn a secondary
// ray: where the hit happened and the unit shading normal there.
type Interaction interface {
	Position() Vector
	Normal() Vector
}
