package geometry

import (
	"github.com/df07/go-scene-builder/pkg/config"
	"github.com/df07/go-scene-builder/pkg/core"
)

const (
	FuzzySphereName = "FuzzySphere"

	sphereSegments = 64
	sphereRings    = 32
)

// fuzzNoise drives the displacement only; material noise is configured separately
var fuzzNoise = NoiseTexture{Name: "FuzzyNoise", Type: "CLOUDS", Scale: 0.3, Depth: 8}

// DisplacementStrength is the displacement applied to the fuzzy sphere
func DisplacementStrength(cfg config.SphereConfig) float64 {
	return cfg.FuzzLength * cfg.FuzzDensity
}

// FuzzySphere creates the hero sphere: a UV sphere at the origin, smoothed by
// subdivision and then displaced by cloud noise
func FuzzySphere(cfg config.SphereConfig, material string) Shape {
	return Shape{
		Name:      FuzzySphereName,
		Kind:      KindSphere,
		Role:      RoleHero,
		Transform: At(core.NewVec3(0, 0, 0)),
		Radius:    cfg.Radius,
		Segments:  sphereSegments,
		Rings:     sphereRings,
		Modifiers: []Modifier{
			Subdivision(2, 3),
			Displacement(DisplacementStrength(cfg), fuzzNoise),
		},
		Material: material,
	}
}

// UVSphere creates an unmodified UV sphere
func UVSphere(name string, radius float64, transform Transform, material string) Shape {
	return Shape{
		Name:      name,
		Kind:      KindSphere,
		Role:      RoleProp,
		Transform: transform,
		Radius:    radius,
		Segments:  32,
		Rings:     16,
		Material:  material,
	}
}
