package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/df07/go-scene-builder/pkg/core"
)

// validator accumulates every rejected field so one run reports them all
type validator struct {
	errs []error
}

func (v *validator) fail(field string, value interface{}, reason string) {
	v.errs = append(v.errs, &ConfigError{Field: field, Value: value, Reason: reason})
}

func (v *validator) positive(field string, value float64) {
	if value <= 0 {
		v.fail(field, value, "must be positive")
	}
}

func (v *validator) nonNegative(field string, value float64) {
	if value < 0 {
		v.fail(field, value, "must not be negative")
	}
}

func (v *validator) color(field string, c core.Color) {
	if err := c.Validate(); err != nil {
		v.fail(field, c, err.Error())
	}
}

// Validate checks every parameter and returns all problems joined together.
// Camera angle and lighting style are not checked: unknown names fall back to
// the dramatic formula and rig respectively.
func (c SceneConfig) Validate() error {
	v := &validator{}

	if _, err := Default(c.Preset); err != nil {
		v.errs = append(v.errs, err)
	}
	if c.Seed < 0 {
		v.fail("seed", c.Seed, "must not be negative")
	}

	c.Render.validate(v)
	c.Camera.validate(v)
	c.Lighting.validate(v)
	c.Sphere.validate(v)
	c.Background.validate(v)
	c.Atmosphere.validate(v)
	c.Animation.validate(v)
	c.Studio.validate(v)

	return errors.Join(v.errs...)
}

func (r RenderConfig) validate(v *validator) {
	if _, err := ParseEngine(string(r.Engine)); err != nil {
		v.errs = append(v.errs, err)
	}
	if r.Samples <= 0 {
		v.fail("render.samples", r.Samples, "must be positive")
	}
	if r.ResolutionX <= 0 {
		v.fail("render.resolution_x", r.ResolutionX, "must be positive")
	}
	if r.ResolutionY <= 0 {
		v.fail("render.resolution_y", r.ResolutionY, "must be positive")
	}
	if r.ResolutionPercentage <= 0 {
		v.fail("render.resolution_percentage", r.ResolutionPercentage, "must be positive")
	}
	v.nonNegative("render.motion_blur_shutter", r.MotionBlurShutter)
	if _, err := semver.NewVersion(r.HostVersion); err != nil {
		v.fail("render.host_version", r.HostVersion, fmt.Sprintf("not a semantic version: %v", err))
	}
}

func (cam CameraConfig) validate(v *validator) {
	v.positive("camera.distance", cam.Distance)
	v.nonNegative("camera.height", cam.Height)
	v.positive("camera.lens", cam.Lens)
	v.positive("camera.fstop", cam.FStop)

	seen := make(map[string]bool, len(cam.Rig))
	enabled := 0
	for i, e := range cam.Rig {
		field := fmt.Sprintf("camera.rig[%d]", i)
		if strings.TrimSpace(e.Name) == "" {
			v.fail(field+".name", e.Name, "must not be empty")
		} else if seen[e.Name] {
			v.fail(field+".name", e.Name, "duplicate camera name")
		}
		seen[e.Name] = true
		v.positive(field+".lens", e.Lens)
		v.positive(field+".fstop", e.FStop)
		if e.Enabled {
			enabled++
		}
	}
	if len(cam.Rig) > 0 && enabled == 0 {
		v.fail("camera.rig", len(cam.Rig), "no camera is enabled")
	}
}

func (l LightingConfig) validate(v *validator) {
	v.nonNegative("lighting.intensity", l.Intensity)
	v.nonNegative("lighting.shadow_softness", l.ShadowSoftness)
	v.nonNegative("lighting.rim_intensity", l.RimIntensity)
}

func (s SphereConfig) validate(v *validator) {
	v.positive("sphere.radius", s.Radius)
	v.nonNegative("sphere.fuzz_density", s.FuzzDensity)
	v.nonNegative("sphere.fuzz_length", s.FuzzLength)
	v.color("sphere.color1", s.Color1)
	v.color("sphere.color2", s.Color2)
	v.positive("sphere.color_noise_scale", s.ColorNoiseScale)
	if s.ColorNoiseScale >= FuzzBumpNoiseScale {
		v.fail("sphere.color_noise_scale", s.ColorNoiseScale,
			fmt.Sprintf("must be below the bump noise scale %g", FuzzBumpNoiseScale))
	}
}

func (b BackgroundConfig) validate(v *validator) {
	v.color("background.bottom", b.Bottom)
	v.color("background.top", b.Top)
	v.nonNegative("background.noise_scale", b.NoiseScale)
}

func (a AtmosphereConfig) validate(v *validator) {
	v.nonNegative("atmosphere.fog_density", a.FogDensity)
	// A negative count is rejected even with particles off; a positive one is
	// kept and ignored.
	if a.ParticleCount < 0 {
		v.fail("atmosphere.particle_count", a.ParticleCount, "must not be negative")
	}
	v.positive("atmosphere.particle_radius", a.ParticleRadius)
	v.positive("atmosphere.particle_bound", a.ParticleBound)
}

func (a AnimationConfig) validate(v *validator) {
	if a.Frames < 0 {
		v.fail("animation.frames", a.Frames, "must not be negative")
	} else if a.Rotate && a.Frames < 2 {
		v.fail("animation.frames", a.Frames, "a rotation needs at least 2 frames")
	}
}

func (s StudioConfig) validate(v *validator) {
	v.positive("studio.shape_scale", s.ShapeScale)
	v.nonNegative("studio.shape_spacing", s.ShapeSpacing)
	v.color("studio.cube_color", s.CubeColor)
	v.color("studio.tetrahedron_color", s.TetrahedronColor)
	v.color("studio.sphere_color", s.SphereColor)
	v.nonNegative("studio.key_intensity", s.KeyIntensity)
	v.nonNegative("studio.fill_intensity", s.FillIntensity)
	v.nonNegative("studio.rim_intensity", s.RimIntensity)
	v.nonNegative("studio.back_intensity", s.BackIntensity)
}
