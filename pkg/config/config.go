// Package config holds the artistic parameters that drive a scene build.
//
// A SceneConfig is created once, from the defaults of a preset optionally
// overlaid by a TOML, YAML or JSON file, validated, and then passed by value
// to the generators. Nothing downstream mutates it.
package config

import (
	"fmt"

	"github.com/df07/go-scene-builder/pkg/core"
)

// Preset names a built-in scene layout
type Preset string

const (
	PresetFuzzySphere  Preset = "fuzzy-sphere"
	PresetStudioShapes Preset = "studio-shapes"
)

// Presets lists every built-in preset in display order
var Presets = []Preset{PresetFuzzySphere, PresetStudioShapes}

// Engine selects the render settings surface
type Engine string

const (
	EngineCycles Engine = "CYCLES"
	EngineEevee  Engine = "EEVEE"
)

// CameraAngle names a single-camera position formula
type CameraAngle string

const (
	AngleDramatic  CameraAngle = "dramatic"
	AngleLowAngle  CameraAngle = "low_angle"
	AngleHighAngle CameraAngle = "high_angle"
	AngleSide      CameraAngle = "side"
	AngleCinematic CameraAngle = "cinematic"
	AngleHero      CameraAngle = "hero"
)

// LightingStyle names a lighting rig
type LightingStyle string

const (
	StyleStudio    LightingStyle = "studio"
	StyleCinematic LightingStyle = "cinematic"
	StyleDramatic  LightingStyle = "dramatic"
	StyleFourPoint LightingStyle = "four-point"
)

// SceneConfig is the complete set of artistic parameters for one build
type SceneConfig struct {
	Preset     Preset           `json:"preset" yaml:"preset" toml:"preset"`
	Seed       int64            `json:"seed" yaml:"seed" toml:"seed"` // particle scattering seed
	Render     RenderConfig     `json:"render" yaml:"render" toml:"render"`
	Camera     CameraConfig     `json:"camera" yaml:"camera" toml:"camera"`
	Lighting   LightingConfig   `json:"lighting" yaml:"lighting" toml:"lighting"`
	Sphere     SphereConfig     `json:"sphere" yaml:"sphere" toml:"sphere"`
	Background BackgroundConfig `json:"background" yaml:"background" toml:"background"`
	Atmosphere AtmosphereConfig `json:"atmosphere" yaml:"atmosphere" toml:"atmosphere"`
	Animation  AnimationConfig  `json:"animation" yaml:"animation" toml:"animation"`
	Studio     StudioConfig     `json:"studio" yaml:"studio" toml:"studio"`
}

// RenderConfig controls the render settings resolver
type RenderConfig struct {
	Engine               Engine  `json:"engine" yaml:"engine" toml:"engine"`
	Samples              int     `json:"samples" yaml:"samples" toml:"samples"`
	ResolutionX          int     `json:"resolution_x" yaml:"resolution_x" toml:"resolution_x"`
	ResolutionY          int     `json:"resolution_y" yaml:"resolution_y" toml:"resolution_y"`
	ResolutionPercentage int     `json:"resolution_percentage" yaml:"resolution_percentage" toml:"resolution_percentage"`
	Denoise              bool    `json:"denoise" yaml:"denoise" toml:"denoise"`
	ViewTransform        string  `json:"view_transform" yaml:"view_transform" toml:"view_transform"`
	Look                 string  `json:"look" yaml:"look" toml:"look"`
	MotionBlur           bool    `json:"motion_blur" yaml:"motion_blur" toml:"motion_blur"`
	MotionBlurShutter    float64 `json:"motion_blur_shutter" yaml:"motion_blur_shutter" toml:"motion_blur_shutter"`
	HostVersion          string  `json:"host_version" yaml:"host_version" toml:"host_version"` // semver of the consuming host
}

// CameraConfig controls the camera rig builder. An empty Rig selects the
// single named-angle mode; a non-empty Rig selects the multi-camera table.
type CameraConfig struct {
	Angle          CameraAngle   `json:"angle" yaml:"angle" toml:"angle"`
	Distance       float64       `json:"distance" yaml:"distance" toml:"distance"`
	Height         float64       `json:"height" yaml:"height" toml:"height"`
	ElevationBoost float64       `json:"elevation_boost" yaml:"elevation_boost" toml:"elevation_boost"`
	Lens           float64       `json:"lens" yaml:"lens" toml:"lens"`
	FStop          float64       `json:"fstop" yaml:"fstop" toml:"fstop"`
	Target         string        `json:"target" yaml:"target" toml:"target"` // shape to track; empty tracks the world origin
	Active         string        `json:"active" yaml:"active" toml:"active"`
	Rig            []CameraEntry `json:"rig" yaml:"rig" toml:"rig"`
}

// CameraEntry is one row of the multi-camera table
type CameraEntry struct {
	Enabled     bool       `json:"enabled" yaml:"enabled" toml:"enabled"`
	Name        string     `json:"name" yaml:"name" toml:"name"`
	Lens        float64    `json:"lens" yaml:"lens" toml:"lens"`
	FStop       float64    `json:"fstop" yaml:"fstop" toml:"fstop"`
	Multipliers [3]float64 `json:"multipliers" yaml:"multipliers" toml:"multipliers"` // distance, distance, height
}

// LightingConfig controls the lighting rig builder
type LightingConfig struct {
	Style          LightingStyle `json:"style" yaml:"style" toml:"style"`
	Intensity      float64       `json:"intensity" yaml:"intensity" toml:"intensity"`
	ShadowSoftness float64       `json:"shadow_softness" yaml:"shadow_softness" toml:"shadow_softness"`
	RimIntensity   float64       `json:"rim_intensity" yaml:"rim_intensity" toml:"rim_intensity"` // 0 disables the extra rim light
}

// FuzzBumpNoiseScale is the fixed scale of the fuzzy material's bump noise.
// The colour noise must stay coarser so the two patterns do not line up.
const FuzzBumpNoiseScale = 80.0

// SphereConfig controls the displaced hero sphere and its fuzzy material
type SphereConfig struct {
	Radius          float64    `json:"radius" yaml:"radius" toml:"radius"`
	FuzzDensity     float64    `json:"fuzz_density" yaml:"fuzz_density" toml:"fuzz_density"`
	FuzzLength      float64    `json:"fuzz_length" yaml:"fuzz_length" toml:"fuzz_length"`
	Color1          core.Color `json:"color1" yaml:"color1" toml:"color1"`
	Color2          core.Color `json:"color2" yaml:"color2" toml:"color2"`
	ColorNoiseScale float64    `json:"color_noise_scale" yaml:"color_noise_scale" toml:"color_noise_scale"`
}

// BackgroundConfig controls the world gradient
type BackgroundConfig struct {
	Bottom     core.Color `json:"bottom" yaml:"bottom" toml:"bottom"`
	Top        core.Color `json:"top" yaml:"top" toml:"top"`
	NoiseScale float64    `json:"noise_scale" yaml:"noise_scale" toml:"noise_scale"` // 0 disables the overlay
}

// AtmosphereConfig controls fog and glow particles
type AtmosphereConfig struct {
	FogDensity     float64 `json:"fog_density" yaml:"fog_density" toml:"fog_density"` // 0 omits the fog volume
	Particles      bool    `json:"particles" yaml:"particles" toml:"particles"`
	ParticleCount  int     `json:"particle_count" yaml:"particle_count" toml:"particle_count"` // ignored unless Particles is set
	ParticleRadius float64 `json:"particle_radius" yaml:"particle_radius" toml:"particle_radius"`
	ParticleBound  float64 `json:"particle_bound" yaml:"particle_bound" toml:"particle_bound"` // half-extent of the scatter cube
}

// AnimationConfig controls the optional spin clip
type AnimationConfig struct {
	Rotate bool `json:"rotate" yaml:"rotate" toml:"rotate"`
	Frames int  `json:"frames" yaml:"frames" toml:"frames"`
}

// StudioConfig controls the three-shape studio layout and its four-point rig
type StudioConfig struct {
	ShapeScale       float64    `json:"shape_scale" yaml:"shape_scale" toml:"shape_scale"`
	ShapeSpacing     float64    `json:"shape_spacing" yaml:"shape_spacing" toml:"shape_spacing"`
	FloorHeight      float64    `json:"floor_height" yaml:"floor_height" toml:"floor_height"`
	CubeColor        core.Color `json:"cube_color" yaml:"cube_color" toml:"cube_color"`
	TetrahedronColor core.Color `json:"tetrahedron_color" yaml:"tetrahedron_color" toml:"tetrahedron_color"`
	SphereColor      core.Color `json:"sphere_color" yaml:"sphere_color" toml:"sphere_color"`
	KeyIntensity     float64    `json:"key_intensity" yaml:"key_intensity" toml:"key_intensity"`
	FillIntensity    float64    `json:"fill_intensity" yaml:"fill_intensity" toml:"fill_intensity"`
	RimIntensity     float64    `json:"rim_intensity" yaml:"rim_intensity" toml:"rim_intensity"`
	BackIntensity    float64    `json:"back_intensity" yaml:"back_intensity" toml:"back_intensity"`
}

// DefaultHostVersion is the host version assumed when none is configured
const DefaultHostVersion = "4.2.0"

// DefaultCameraRig returns the Main/Wide/Close/Top table used by the studio preset.
// Top's height multiplier of 4.8 puts it at 1.2x the distance with the default
// 12/3 distance/height pair.
func DefaultCameraRig() []CameraEntry {
	return []CameraEntry{
		{Enabled: true, Name: "Studio_Camera_Main", Lens: 50, FStop: 2.8, Multipliers: [3]float64{1, -1, 1}},
		{Enabled: true, Name: "Studio_Camera_Wide", Lens: 28, FStop: 4.0, Multipliers: [3]float64{1.6, -1.2, 0.4}},
		{Enabled: true, Name: "Studio_Camera_Close", Lens: 85, FStop: 1.8, Multipliers: [3]float64{0.75, -0.5, 0.9}},
		{Enabled: true, Name: "Studio_Camera_Top", Lens: 50, FStop: 4.0, Multipliers: [3]float64{0, -1.2, 4.8}},
	}
}

// DefaultFuzzySphere returns the parameters of the fuzzy sphere scene
func DefaultFuzzySphere() SceneConfig {
	return SceneConfig{
		Preset: PresetFuzzySphere,
		Seed:   1,
		Render: RenderConfig{
			Engine:               EngineCycles,
			Samples:              750,
			ResolutionX:          1920,
			ResolutionY:          1080,
			ResolutionPercentage: 100,
			Denoise:              true,
			ViewTransform:        "Filmic",
			Look:                 "High Contrast",
			HostVersion:          DefaultHostVersion,
		},
		Camera: CameraConfig{
			Angle:    AngleSide,
			Distance: 12,
			Lens:     35,
			FStop:    2.8,
		},
		Lighting: LightingConfig{
			Style:          StyleStudio,
			Intensity:      15,
			ShadowSoftness: 0.07,
			RimIntensity:   5,
		},
		Sphere: SphereConfig{
			Radius:          2.0,
			FuzzDensity:     2.0,
			FuzzLength:      0.5,
			Color1:          core.RGB(0.9, 0.3, 0.2),
			Color2:          core.RGB(0.2, 0.3, 0.9),
			ColorNoiseScale: 2.5,
		},
		Background: BackgroundConfig{
			Bottom:     core.RGB(0.05, 0.02, 0.08),
			Top:        core.RGB(0.15, 0.25, 0.35),
			NoiseScale: 5.0,
		},
		Atmosphere: AtmosphereConfig{
			FogDensity:     0.03,
			Particles:      true,
			ParticleCount:  150,
			ParticleRadius: 0.05,
			ParticleBound:  3,
		},
		Animation: AnimationConfig{
			Rotate: true,
			Frames: 120,
		},
		Studio: defaultStudio(),
	}
}

// DefaultStudioShapes returns the parameters of the studio geometric shapes scene
func DefaultStudioShapes() SceneConfig {
	cfg := DefaultFuzzySphere()
	cfg.Preset = PresetStudioShapes
	cfg.Render.Samples = 1000
	cfg.Render.ViewTransform = "Standard"
	cfg.Render.Look = "None"
	cfg.Render.MotionBlur = true
	cfg.Render.MotionBlurShutter = 0.5
	cfg.Camera = CameraConfig{
		Angle:    AngleDramatic,
		Distance: 12,
		Height:   3,
		Lens:     50,
		FStop:    2.8,
		Active:   "Studio_Camera_Main",
		Rig:      DefaultCameraRig(),
	}
	cfg.Lighting = LightingConfig{
		Style:          StyleFourPoint,
		Intensity:      0,
		ShadowSoftness: 0.5,
	}
	cfg.Atmosphere.FogDensity = 0
	cfg.Atmosphere.Particles = false
	cfg.Animation.Rotate = false
	return cfg
}

func defaultStudio() StudioConfig {
	return StudioConfig{
		ShapeScale:       1.5,
		ShapeSpacing:     4.0,
		FloorHeight:      -2.0,
		CubeColor:        core.RGB(0.8, 0.2, 0.3),
		TetrahedronColor: core.RGB(0.2, 0.6, 0.8),
		SphereColor:      core.RGB(0.3, 0.8, 0.4),
		KeyIntensity:     1500,
		FillIntensity:    800,
		RimIntensity:     1200,
		BackIntensity:    600,
	}
}

// Default returns the defaults of the named preset
func Default(preset Preset) (SceneConfig, error) {
	switch preset {
	case PresetFuzzySphere:
		return DefaultFuzzySphere(), nil
	case PresetStudioShapes:
		return DefaultStudioShapes(), nil
	}
	return SceneConfig{}, unknownEnum("preset", string(preset), presetNames())
}

func presetNames() []string {
	names := make([]string, len(Presets))
	for i, p := range Presets {
		names[i] = string(p)
	}
	return names
}

// String summarises the config for log lines
func (c SceneConfig) String() string {
	return fmt.Sprintf("%s (engine %s, %d samples, camera %s, lighting %s)",
		c.Preset, c.Render.Engine, c.Render.Samples, c.cameraMode(), c.Lighting.Style)
}

func (c SceneConfig) cameraMode() string {
	if len(c.Camera.Rig) > 0 {
		return fmt.Sprintf("rig of %d", len(c.Camera.Rig))
	}
	return string(c.Camera.Angle)
}
