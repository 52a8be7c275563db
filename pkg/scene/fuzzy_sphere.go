package scene

import (
	"math/rand"

	"github.com/df07/go-scene-builder/pkg/config"
	"github.com/df07/go-scene-builder/pkg/core"
	"github.com/df07/go-scene-builder/pkg/geometry"
)

const (
	FuzzySphereSceneName = "Fuzzy_Sphere"
	FuzzyTargetName      = "CameraTarget"
)

var groundColor = core.RGB(0.08, 0.08, 0.12)

// NewFuzzySphereScene creates a displaced fuzzy sphere over a dark ground,
// with optional fog, glowing particles, rim light and spin
func NewFuzzySphereScene(cfg config.SceneConfig, logger core.Logger) (*Scene, error) {
	a, err := newAssembly(FuzzySphereSceneName, cfg, logger)
	if err != nil {
		return nil, err
	}
	b := a.b

	// Target first so cameras can resolve it
	if err := b.AddShape(geometry.Target(FuzzyTargetName, core.NewVec3(0, 0, 0))); err != nil {
		return nil, err
	}

	fuzzy := a.mats.Fuzzy("FuzzyMaterial", cfg.Sphere.Color1, cfg.Sphere.Color2, cfg.Sphere.ColorNoiseScale)
	if err := b.AddMaterial(fuzzy); err != nil {
		return nil, err
	}
	if err := b.AddShape(geometry.FuzzySphere(cfg.Sphere, fuzzy.Name)); err != nil {
		return nil, err
	}

	ground := a.mats.Diffuse("GroundMaterial", groundColor, 0.8, 0.05)
	if err := b.AddMaterial(ground); err != nil {
		return nil, err
	}
	if err := b.AddShape(geometry.GroundPlane(cfg.Sphere.Radius, ground.Name)); err != nil {
		return nil, err
	}

	if cfg.Atmosphere.FogDensity > 0 {
		fogMaterial := a.mats.Volume("FogMaterial", cfg.Atmosphere.FogDensity)
		if err := b.AddMaterial(fogMaterial); err != nil {
			return nil, err
		}
		fog, _ := geometry.FogVolume(cfg.Atmosphere.FogDensity, fogMaterial.Name)
		if err := b.AddShape(fog); err != nil {
			return nil, err
		}
	}

	if cfg.Atmosphere.Particles && cfg.Atmosphere.ParticleCount > 0 {
		glow := a.mats.Emissive("ParticleMaterial")
		if err := b.AddMaterial(glow); err != nil {
			return nil, err
		}
		random := rand.New(rand.NewSource(cfg.Seed))
		if err := b.AddShapes(geometry.Particles(cfg.Atmosphere, random, glow.Name)); err != nil {
			return nil, err
		}
	} else if cfg.Atmosphere.ParticleCount > 0 {
		a.logger.Printf("Particles disabled, ignoring particle_count %d\n", cfg.Atmosphere.ParticleCount)
	}

	return a.finish(FuzzyTargetName, geometry.FuzzySphereName)
}

