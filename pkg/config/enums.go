package config

import "strings"

// ParseEngine accepts an engine name in any case
func ParseEngine(name string) (Engine, error) {
	switch Engine(strings.ToUpper(strings.TrimSpace(name))) {
	case EngineCycles:
		return EngineCycles, nil
	case EngineEevee:
		return EngineEevee, nil
	}
	return "", unknownEnum("render.engine", name, []string{string(EngineCycles), string(EngineEevee)})
}

// ParsePreset accepts a preset name, also tolerating underscores and case
func ParsePreset(name string) (Preset, error) {
	normalized := Preset(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-"))
	for _, p := range Presets {
		if p == normalized {
			return p, nil
		}
	}
	return "", unknownEnum("preset", name, presetNames())
}

// CameraAngles lists the recognised single-camera angles
var CameraAngles = []CameraAngle{AngleDramatic, AngleLowAngle, AngleHighAngle, AngleSide, AngleCinematic, AngleHero}

// LightingStyles lists the recognised rigs
var LightingStyles = []LightingStyle{StyleStudio, StyleCinematic, StyleDramatic, StyleFourPoint}

// Known reports whether the angle has its own position formula
func (a CameraAngle) Known() bool {
	for _, known := range CameraAngles {
		if a == known {
			return true
		}
	}
	return false
}

// Known reports whether the style has its own rig
func (s LightingStyle) Known() bool {
	for _, known := range LightingStyles {
		if s == known {
			return true
		}
	}
	return false
}
