// Package lights builds the lighting rig of a scene as light descriptors
package lights

import "github.com/df07/go-scene-builder/pkg/core"

type LightType string

const (
	LightTypeSun  LightType = "sun" // directional
	LightTypeArea LightType = "area"
	LightTypeSpot LightType = "spot"
)

// Light describes one light object. Rotation is XYZ Euler in radians.
type Light struct {
	Name           string     `json:"name" yaml:"name"`
	Type           LightType  `json:"type" yaml:"type"`
	Position       core.Vec3  `json:"position" yaml:"position"`
	Rotation       core.Vec3  `json:"rotation" yaml:"rotation"`
	Energy         float64    `json:"energy" yaml:"energy"`
	Color          core.Color `json:"color" yaml:"color"`
	Angle          float64    `json:"angle,omitempty" yaml:"angle,omitempty"` // sun disc angle
	ShadowSoftSize float64    `json:"shadow_soft_size,omitempty" yaml:"shadow_soft_size,omitempty"`
	Size           float64    `json:"size,omitempty" yaml:"size,omitempty"`           // area edge length
	SpotSize       float64    `json:"spot_size,omitempty" yaml:"spot_size,omitempty"` // cone angle in radians
	SpotBlend      float64    `json:"spot_blend,omitempty" yaml:"spot_blend,omitempty"`
	CastShadows    bool       `json:"cast_shadows" yaml:"cast_shadows"`
}

var white = core.RGB(1, 1, 1)

// NewSunLight creates a directional light. Softness drives both the sun
// angle and the shadow soft size.
func NewSunLight(name string, position, rotation core.Vec3, energy, softness float64) Light {
	return Light{
		Name:           name,
		Type:           LightTypeSun,
		Position:       position,
		Rotation:       rotation,
		Energy:         energy,
		Color:          white,
		Angle:          softness,
		ShadowSoftSize: softness,
		CastShadows:    true,
	}
}
