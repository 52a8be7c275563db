package lights

import (
	"github.com/df07/go-scene-builder/pkg/config"
	"github.com/df07/go-scene-builder/pkg/core"
)

const areaShadowSoftSize = 0.5

// degrees builds an Euler rotation from angles in degrees
func degrees(x, y, z float64) core.Vec3 {
	return core.NewVec3(core.Radians(x), core.Radians(y), core.Radians(z))
}

// FourPoint is the studio rig: warm key, cool fill, spot rim and blue back
// light, with energies taken from the studio configuration
func FourPoint(studio config.StudioConfig) []Light {
	return []Light{
		NewAreaLight("Key_Light", core.NewVec3(8, -4, 6), degrees(45, -30, 0), studio.KeyIntensity, 2).
			WithColor(core.RGB(1.0, 0.95, 0.9)).
			WithShadowSoftSize(areaShadowSoftSize),
		NewAreaLight("Fill_Light", core.NewVec3(-6, -2, 4), degrees(30, 45, 0), studio.FillIntensity, 3).
			WithColor(core.RGB(0.9, 0.95, 1.0)).
			WithShadowSoftSize(areaShadowSoftSize),
		NewSpotLight("Rim_Light", core.NewVec3(0, 8, 5), degrees(-60, 0, 0), studio.RimIntensity, core.Radians(30), 0).
			WithColor(core.RGB(1.0, 1.0, 0.9)),
		NewAreaLight("Back_Light", core.NewVec3(0, -8, 3), degrees(15, 0, 0), studio.BackIntensity, 4).
			WithColor(core.RGB(0.8, 0.8, 1.0)).
			WithShadowSoftSize(areaShadowSoftSize),
	}
}
