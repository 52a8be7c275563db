package lights

import (
	"github.com/df07/go-scene-builder/pkg/core"
)

// NewSpotLight creates a spot light with cone angle spotSize (radians) and
// edge blend in [0, 1]
func NewSpotLight(name string, position, rotation core.Vec3, energy, spotSize, blend float64) Light {
	return Light{
		Name:        name,
		Type:        LightTypeSpot,
		Position:    position,
		Rotation:    rotation,
		Energy:      energy,
		Color:       white,
		SpotSize:    spotSize,
		SpotBlend:   blend,
		CastShadows: true,
	}
}
