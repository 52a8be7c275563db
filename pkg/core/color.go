package core

import "fmt"

// Color is a linear RGBA color with components nominally in [0, 1]
type Color struct {
	R float64 `json:"r" yaml:"r" toml:"r"`
	G float64 `json:"g" yaml:"g" toml:"g"`
	B float64 `json:"b" yaml:"b" toml:"b"`
	A float64 `json:"a" yaml:"a" toml:"a"`
}

// NewColor creates a color from all four components
func NewColor(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB creates an opaque color
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Vec3 drops the alpha channel
func (c Color) Vec3() Vec3 {
	return Vec3{c.R, c.G, c.B}
}

// Validate reports a component outside [0, 1]. Colors above one are legal for
// emission but never for the artistic palette entries that are validated here.
func (c Color) Validate() error {
	for i, v := range [4]float64{c.R, c.G, c.B, c.A} {
		if v < 0 || v > 1 {
			return fmt.Errorf("component %d is %g, must be within [0, 1]", i, v)
		}
	}
	return nil
}

// String formats the color as rgba(r, g, b, a)
func (c Color) String() string {
	return fmt.Sprintf("rgba(%g, %g, %g, %g)", c.R, c.G, c.B, c.A)
}
