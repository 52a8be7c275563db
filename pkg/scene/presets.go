package scene

import (
	"fmt"

	"github.com/df07/go-scene-builder/pkg/animation"
	"github.com/df07/go-scene-builder/pkg/camera"
	"github.com/df07/go-scene-builder/pkg/config"
	"github.com/df07/go-scene-builder/pkg/core"
	"github.com/df07/go-scene-builder/pkg/lights"
	"github.com/df07/go-scene-builder/pkg/material"
	"github.com/df07/go-scene-builder/pkg/renderer"
)

// Build validates cfg and builds the scene of its preset
func Build(cfg config.SceneConfig, logger core.Logger) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Preset {
	case config.PresetFuzzySphere:
		return NewFuzzySphereScene(cfg, logger)
	case config.PresetStudioShapes:
		return NewStudioShapesScene(cfg, logger)
	default:
		return nil, fmt.Errorf("unknown preset %q", cfg.Preset)
	}
}

// assembly carries what every preset needs while it fills a builder
type assembly struct {
	cfg     config.SceneConfig
	b       *Builder
	sockets *material.SocketTable
	mats    *material.Generator
	logger  core.Logger
}

func newAssembly(name string, cfg config.SceneConfig, logger core.Logger) (*assembly, error) {
	logger = core.OrNop(logger)
	sockets, err := material.ResolveSockets(cfg.Render.HostVersion)
	if err != nil {
		return nil, err
	}
	logger.Printf("Building %s for host %s\n", cfg, sockets.Version)
	return &assembly{
		cfg:     cfg,
		b:       NewBuilder(name, logger),
		sockets: sockets,
		mats:    material.NewGenerator(sockets, logger),
		logger:  logger,
	}, nil
}

// finish adds the parts shared by every preset, in build order: world,
// lights, cameras tracking target, animation of hero and render settings
func (a *assembly) finish(target, hero string) (*Scene, error) {
	if err := a.b.SetWorld(material.NewWorld(a.cfg.Background)); err != nil {
		return nil, err
	}

	for _, l := range lights.Rig(a.cfg.Lighting, a.cfg.Studio, a.logger) {
		if err := a.b.AddLight(l); err != nil {
			return nil, err
		}
	}

	if a.cfg.Camera.Target != "" {
		target = a.cfg.Camera.Target
	}
	cams, err := camera.Rig(a.cfg.Camera, target, a.b, a.logger)
	if err != nil {
		return nil, err
	}
	for _, c := range cams {
		if err := a.b.AddCamera(c); err != nil {
			return nil, err
		}
	}

	clip := animation.SpinClip(hero, a.cfg.Animation)
	if err := a.b.SetAnimation(clip); err != nil {
		return nil, err
	}

	settings, err := renderer.Resolve(a.cfg.Render, a.sockets, clip.FrameEnd(), a.logger)
	if err != nil {
		return nil, err
	}
	if err := a.b.SetRender(a.cfg.Preset, a.cfg.Render.HostVersion, settings); err != nil {
		return nil, err
	}

	return a.b.Freeze()
}
