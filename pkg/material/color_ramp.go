package material

import (
	"github.com/df07/go-scene-builder/pkg/core"
)

// RampStop is one element of a colour ramp
type RampStop struct {
	Position float64    `json:"position" yaml:"position"`
	Color    core.Color `json:"color" yaml:"color"`
}

// TwoStopRamp returns a ramp from a at position 0 to b at position 1
func TwoStopRamp(a, b core.Color) []RampStop {
	return []RampStop{
		{Position: 0, Color: a},
		{Position: 1, Color: b},
	}
}

// addRamp adds a colour ramp node between two colours
func (g *Graph) addRamp(name string, a, b core.Color, x, y float64) string {
	g.AddNode(name, NodeColorRamp, x, y)
	g.Node(name).Ramp = TwoStopRamp(a, b)
	return name
}
