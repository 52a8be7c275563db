package lights

import (
	"github.com/df07/go-scene-builder/pkg/config"
	"github.com/df07/go-scene-builder/pkg/core"
)

// Rig builds the lights for a lighting style. An unrecognised style falls back
// to dramatic. The extra rim light is appended whenever its intensity is
// positive, whatever the style.
func Rig(cfg config.LightingConfig, studio config.StudioConfig, logger core.Logger) []Light {
	logger = core.OrNop(logger)

	var lights []Light
	switch cfg.Style {
	case config.StyleStudio:
		lights = Studio(cfg.Intensity, cfg.ShadowSoftness)
	case config.StyleCinematic:
		lights = Cinematic(cfg.Intensity, cfg.ShadowSoftness)
	case config.StyleDramatic:
		lights = Dramatic(cfg.Intensity, cfg.ShadowSoftness)
	case config.StyleFourPoint:
		lights = FourPoint(studio)
	default:
		logger.Printf("Unknown lighting style %q, using %s\n", cfg.Style, config.StyleDramatic)
		lights = Dramatic(cfg.Intensity, cfg.ShadowSoftness)
	}

	if rim, ok := RimLight(cfg.RimIntensity); ok {
		lights = append(lights, rim)
	}
	return lights
}

// Studio is a key sun with a soft area fill
func Studio(intensity, softness float64) []Light {
	return []Light{
		NewSunLight("MainLight", core.NewVec3(5, -3, 8), core.NewVec3(0.8, 0.3, -0.5), intensity, softness),
		NewAreaLight("FillLight", core.NewVec3(-4, 2, 5), core.NewVec3(-0.4, -0.2, 0.8), intensity*0.4, 10),
	}
}

// Cinematic is a key sun, a spot rim behind the subject and a broad fill
func Cinematic(intensity, softness float64) []Light {
	return []Light{
		NewSunLight("KeyLight", core.NewVec3(4, -2, 6), core.NewVec3(0.8, 0.2, -0.1), intensity, softness),
		NewSpotLight("RimLight", core.NewVec3(-3, 1, 4), core.NewVec3(0.6, -0.1, 2.5), intensity*1.2, 1.0, 0.5),
		NewAreaLight("FillLight", core.NewVec3(0, 2, 8), core.NewVec3(-0.5, 0, 0), intensity*0.6, 15),
	}
}

// Dramatic is a single hard sun
func Dramatic(intensity, softness float64) []Light {
	return []Light{
		NewSunLight("DramaticLight", core.NewVec3(10, -5, 12), core.NewVec3(0.5, 0.5, -0.2), intensity*1.5, softness),
	}
}

// RimLight returns the extra rim spot, present only for a positive intensity
func RimLight(intensity float64) (Light, bool) {
	if intensity <= 0 {
		return Light{}, false
	}
	return NewSpotLight("ExtraRimLight", core.NewVec3(-3, 1, 4), core.NewVec3(0.6, -0.1, 2.5), intensity, 1.2, 0.8), true
}
