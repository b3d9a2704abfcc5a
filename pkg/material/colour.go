package material

// Colour is an RGBA colour. Alpha takes part in every operator exactly like
// the colour channels.
type Colour struct {
	R, G, B, A float64
}

// NewColour creates a new Colour
func NewColour(r, g, b, a float64) Colour {
	return Colour{R: r, G: g, B: b, A: a}
}

// Add returns the channel-wise sum
func (c Colour) Add(other Colour) Colour {
	return Colour{c.R + other.R, c.G + other.G, c.B + other.B, c.A + other.A}
}

// Subtract returns the channel-wise difference
func (c Colour) Subtract(other Colour) Colour {
	return Colour{c.R - other.R, c.G - other.G, c.B - other.B, c.A - other.A}
}

// MultiplyColour returns the channel-wise product
func (c Colour) MultiplyColour(other Colour) Colour {
	return Colour{c.R * other.R, c.G * other.G, c.B * other.B, c.A * other.A}
}

// DivideColour returns the channel-wise quotient
func (c Colour) DivideColour(other Colour) Colour {
	return Colour{c.R / other.R, c.G / other.G, c.B / other.B, c.A / other.A}
}

// Multiply returns every channel scaled by s
func (c Colour) Multiply(s float64) Colour {
	return Colour{c.R * s, c.G * s, c.B * s, c.A * s}
}

// Divide returns every channel divided by s
func (c Colour) Divide(s float64) Colour {
	return Colour{c.R / s, c.G / s, c.B / s, c.A / s}
}

// Clamp returns a colour with every channel clamped to [minVal, maxVal]
func (c Colour) Clamp(minVal, maxVal float64) Colour {
	return Colour{
		R: max(minVal, min(maxVal, c.R)),
		G: max(minVal, min(maxVal, c.G)),
		B: max(minVal, min(maxVal, c.B)),
		A: max(minVal, min(maxVal, c.A)),
	}
}

// Luminance returns the perceptual luminance of the RGB channels
// Uses standard luminance weights: 0.299*R + 0.587*G + 0.114*B
func (c Colour) Luminance() float64 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}
