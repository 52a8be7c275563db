package lights

import (
	"github.com/df07/go-scene-builder/pkg/core"
)

// NewAreaLight creates a square area light with the given edge length
func NewAreaLight(name string, position, rotation core.Vec3, energy, size float64) Light {
	return Light{
		Name:        name,
		Type:        LightTypeArea,
		Position:    position,
		Rotation:    rotation,
		Energy:      energy,
		Color:       white,
		Size:        size,
		CastShadows: true,
	}
}

// WithColor returns a copy of the light with a tinted colour
func (l Light) WithColor(c core.Color) Light {
	l.Color = c
	return l
}

// WithShadowSoftSize returns a copy of the light with a shadow soft size
func (l Light) WithShadowSoftSize(s float64) Light {
	l.ShadowSoftSize = s
	return l
}
