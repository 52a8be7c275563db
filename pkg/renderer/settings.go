// Package renderer resolves the engine-specific render settings a backend
// applies before rendering a scene.
package renderer

import (
	"fmt"

	"github.com/df07/go-scene-builder/pkg/config"
	"github.com/df07/go-scene-builder/pkg/core"
	"github.com/df07/go-scene-builder/pkg/material"
)

// Denoiser preference, best first
var denoiserPreference = []string{"OPENIMAGEDENOISE", "OPTIX"}

// CyclesSettings are the path tracer sampling settings
type CyclesSettings struct {
	Samples      int    `json:"samples" yaml:"samples"`
	UseDenoising bool   `json:"use_denoising" yaml:"use_denoising"`
	Denoiser     string `json:"denoiser,omitempty" yaml:"denoiser,omitempty"`
}

// EeveeSettings are the rasteriser sampling settings
type EeveeSettings struct {
	TAARenderSamples int  `json:"taa_render_samples" yaml:"taa_render_samples"`
	UseSoftShadows   bool `json:"use_soft_shadows" yaml:"use_soft_shadows"`
}

// Settings are the resolved render settings. Exactly one of Cycles and Eevee
// is set, matching Engine.
type Settings struct {
	Engine               config.Engine   `json:"engine" yaml:"engine"`
	ResolutionX          int             `json:"resolution_x" yaml:"resolution_x"`
	ResolutionY          int             `json:"resolution_y" yaml:"resolution_y"`
	ResolutionPercentage int             `json:"resolution_percentage" yaml:"resolution_percentage"`
	Cycles               *CyclesSettings `json:"cycles,omitempty" yaml:"cycles,omitempty"`
	Eevee                *EeveeSettings  `json:"eevee,omitempty" yaml:"eevee,omitempty"`
	ViewTransform        string          `json:"view_transform" yaml:"view_transform"`
	Look                 string          `json:"look" yaml:"look"`
	MotionBlur           bool            `json:"motion_blur" yaml:"motion_blur"`
	MotionBlurShutter    float64         `json:"motion_blur_shutter,omitempty" yaml:"motion_blur_shutter,omitempty"`
	FrameStart           int             `json:"frame_start" yaml:"frame_start"`
	FrameEnd             int             `json:"frame_end" yaml:"frame_end"`
}

// Resolve maps the render configuration to engine-specific settings. frameEnd
// is the last frame of the animation, or 1 for a still.
func Resolve(cfg config.RenderConfig, sockets *material.SocketTable, frameEnd int, logger core.Logger) (Settings, error) {
	logger = core.OrNop(logger)

	engine, err := config.ParseEngine(string(cfg.Engine))
	if err != nil {
		return Settings{}, err
	}
	cfg.Engine = engine

	if frameEnd < 1 {
		frameEnd = 1
	}

	s := Settings{
		Engine:               cfg.Engine,
		ResolutionX:          cfg.ResolutionX,
		ResolutionY:          cfg.ResolutionY,
		ResolutionPercentage: cfg.ResolutionPercentage,
		ViewTransform:        cfg.ViewTransform,
		Look:                 cfg.Look,
		MotionBlur:           cfg.MotionBlur,
		FrameStart:           1,
		FrameEnd:             frameEnd,
	}
	if cfg.MotionBlur {
		s.MotionBlurShutter = cfg.MotionBlurShutter
	}

	switch cfg.Engine {
	case config.EngineCycles:
		cycles := &CyclesSettings{Samples: cfg.Samples, UseDenoising: cfg.Denoise}
		if cfg.Denoise {
			cycles.Denoiser = ChooseDenoiser(sockets.Denoisers)
			if cycles.Denoiser == "" {
				logger.Printf("No denoiser available for host %s, denoising disabled\n", sockets.Version)
				cycles.UseDenoising = false
			}
		}
		s.Cycles = cycles
	case config.EngineEevee:
		s.Eevee = &EeveeSettings{TAARenderSamples: cfg.Samples, UseSoftShadows: true}
	default:
		return Settings{}, fmt.Errorf("unknown render engine %q", cfg.Engine)
	}

	return s, nil
}

// ChooseDenoiser picks OpenImageDenoise, then OptiX, then whatever the host
// offers first. It returns "" when nothing is available.
func ChooseDenoiser(available []string) string {
	for _, preferred := range denoiserPreference {
		for _, d := range available {
			if d == preferred {
				return d
			}
		}
	}
	if len(available) > 0 {
		return available[0]
	}
	return ""
}

// Samples returns the sample count of whichever engine is configured
func (s Settings) Samples() int {
	if s.Cycles != nil {
		return s.Cycles.Samples
	}
	if s.Eevee != nil {
		return s.Eevee.TAARenderSamples
	}
	return 0
}
