package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// configErrorFor returns the ConfigError reported for field, or nil
func configErrorFor(err error, field string) *ConfigError {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		for _, e := range joined.Unwrap() {
			if ce := configErrorFor(e, field); ce != nil {
				return ce
			}
		}
		return nil
	}
	var ce *ConfigError
	if errors.As(err, &ce) && ce.Field == field {
		return ce
	}
	return nil
}

func TestDefaultsAreValid(t *testing.T) {
	for _, preset := range Presets {
		t.Run(string(preset), func(t *testing.T) {
			cfg, err := Default(preset)
			require.NoError(t, err)
			assert.NoError(t, cfg.Validate())
			assert.Equal(t, preset, cfg.Preset)
		})
	}
}

func TestDefaultUnknownPreset(t *testing.T) {
	_, err := Default("fuzzy-spere")
	require.Error(t, err)

	ce := configErrorFor(err, "preset")
	require.NotNil(t, ce)
	assert.Equal(t, "fuzzy-sphere", ce.Suggestion)
}

func TestValidateRejectsNegativeValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SceneConfig)
		field  string
	}{
		{"negative radius", func(c *SceneConfig) { c.Sphere.Radius = -1 }, "sphere.radius"},
		{"zero radius", func(c *SceneConfig) { c.Sphere.Radius = 0 }, "sphere.radius"},
		{"negative fuzz density", func(c *SceneConfig) { c.Sphere.FuzzDensity = -0.5 }, "sphere.fuzz_density"},
		{"negative fuzz length", func(c *SceneConfig) { c.Sphere.FuzzLength = -0.5 }, "sphere.fuzz_length"},
		{"negative particle count", func(c *SceneConfig) { c.Atmosphere.ParticleCount = -3 }, "atmosphere.particle_count"},
		{"negative fog", func(c *SceneConfig) { c.Atmosphere.FogDensity = -0.1 }, "atmosphere.fog_density"},
		{"zero samples", func(c *SceneConfig) { c.Render.Samples = 0 }, "render.samples"},
		{"negative rim", func(c *SceneConfig) { c.Lighting.RimIntensity = -1 }, "lighting.rim_intensity"},
		{"negative camera distance", func(c *SceneConfig) { c.Camera.Distance = -12 }, "camera.distance"},
		{"color out of range", func(c *SceneConfig) { c.Sphere.Color1.R = 1.5 }, "sphere.color1"},
		{"bad host version", func(c *SceneConfig) { c.Render.HostVersion = "four" }, "render.host_version"},
		{"colour noise as fine as bump", func(c *SceneConfig) { c.Sphere.ColorNoiseScale = 200 }, "sphere.color_noise_scale"},
		{"one frame spin", func(c *SceneConfig) { c.Animation.Frames = 1 }, "animation.frames"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultFuzzySphere()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.NotNil(t, configErrorFor(err, tt.field), "expected error for %s, got %v", tt.field, err)
		})
	}
}

func TestValidateReportsEveryField(t *testing.T) {
	cfg := DefaultFuzzySphere()
	cfg.Sphere.Radius = -2
	cfg.Atmosphere.ParticleCount = -1

	err := cfg.Validate()
	require.Error(t, err)
	assert.NotNil(t, configErrorFor(err, "sphere.radius"))
	assert.NotNil(t, configErrorFor(err, "atmosphere.particle_count"))
}

func TestValidateParticleToggle(t *testing.T) {
	cfg := DefaultFuzzySphere()
	cfg.Atmosphere.Particles = false
	cfg.Atmosphere.ParticleCount = 500
	assert.NoError(t, cfg.Validate(), "a configured count with particles disabled is valid")

	cfg.Atmosphere.ParticleCount = -1
	assert.Error(t, cfg.Validate(), "a negative count is rejected even when disabled")
}

func TestValidateFallbackEnums(t *testing.T) {
	cfg := DefaultFuzzySphere()
	cfg.Camera.Angle = "worms_eye"
	cfg.Lighting.Style = "noir"
	assert.NoError(t, cfg.Validate())
	assert.False(t, cfg.Camera.Angle.Known())
	assert.False(t, cfg.Lighting.Style.Known())
}

func TestValidateUnknownEngine(t *testing.T) {
	cfg := DefaultFuzzySphere()
	cfg.Render.Engine = "cycle"

	err := cfg.Validate()
	require.Error(t, err)
	ce := configErrorFor(err, "render.engine")
	require.NotNil(t, ce)
	assert.Equal(t, "CYCLES", ce.Suggestion)
	assert.Contains(t, ce.Error(), `did you mean "CYCLES"?`)
}

func TestValidateCameraRig(t *testing.T) {
	cfg := DefaultStudioShapes()
	for i := range cfg.Camera.Rig {
		cfg.Camera.Rig[i].Enabled = false
	}
	assert.NotNil(t, configErrorFor(cfg.Validate(), "camera.rig"))

	cfg = DefaultStudioShapes()
	cfg.Camera.Rig[1].Name = cfg.Camera.Rig[0].Name
	assert.NotNil(t, configErrorFor(cfg.Validate(), "camera.rig[1].name"))
}

func TestParseEngine(t *testing.T) {
	engine, err := ParseEngine("eevee")
	require.NoError(t, err)
	assert.Equal(t, EngineEevee, engine)

	_, err = ParseEngine("luxcore")
	assert.Error(t, err)
}

func TestParsePreset(t *testing.T) {
	p, err := ParsePreset("Studio_Shapes")
	require.NoError(t, err)
	assert.Equal(t, PresetStudioShapes, p)
}

func TestParseTOML(t *testing.T) {
	data := []byte(`
preset = "fuzzy-sphere"
seed = 7

[sphere]
radius = 3.0
fuzz_density = 1.5

[camera]
angle = "hero"

[render]
engine = "eevee"
samples = 64
`)
	cfg, err := Parse(data, FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 3.0, cfg.Sphere.Radius)
	assert.Equal(t, 1.5, cfg.Sphere.FuzzDensity)
	assert.Equal(t, 0.5, cfg.Sphere.FuzzLength, "unset keys keep their defaults")
	assert.Equal(t, AngleHero, cfg.Camera.Angle)
	assert.Equal(t, EngineEevee, cfg.Render.Engine, "engine names are normalised")
	assert.Equal(t, 64, cfg.Render.Samples)
}

func TestParseYAMLStudioRig(t *testing.T) {
	data := []byte(`
preset: studio-shapes
camera:
  active: Hero
  rig:
    - enabled: true
      name: Hero
      lens: 70
      fstop: 2.0
      multipliers: [0.5, -1.0, 1.0]
`)
	cfg, err := Parse(data, FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, PresetStudioShapes, cfg.Preset)
	require.Len(t, cfg.Camera.Rig, 1, "a rig in the file replaces the default table")
	assert.Equal(t, "Hero", cfg.Camera.Rig[0].Name)
	assert.Equal(t, 3.0, cfg.Camera.Height, "studio defaults are the base")
}

func TestParseKeepsDefaultRig(t *testing.T) {
	cfg, err := Parse([]byte("preset: studio-shapes\n"), FormatYAML)
	require.NoError(t, err)
	assert.Len(t, cfg.Camera.Rig, 4)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("[sphere]\nradios = 2.0\n"), FormatTOML)
	assert.Error(t, err)

	_, err = Parse([]byte("sphere:\n  radios: 2.0\n"), FormatYAML)
	assert.Error(t, err)

	_, err = Parse([]byte(`{"sphere": {"radios": 2.0}}`), FormatJSON)
	assert.Error(t, err)
}

func TestParseRejectsInvalidValues(t *testing.T) {
	_, err := Parse([]byte("[sphere]\nradius = -2.0\n"), FormatTOML)
	require.Error(t, err)
	assert.NotNil(t, configErrorFor(err, "sphere.radius"))
}

func TestLoadAndMarshalRoundTrip(t *testing.T) {
	dir := t.TempDir()
	for _, format := range []Format{FormatTOML, FormatYAML, FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			want := DefaultStudioShapes()
			want.Studio.ShapeSpacing = 5

			data, err := Marshal(want, format)
			require.NoError(t, err)

			path := filepath.Join(dir, "scene."+string(format))
			require.NoError(t, os.WriteFile(path, data, 0o644))

			got, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("scenes/hero.yml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = FormatFromPath("scenes/hero.ini")
	assert.Error(t, err)
}
