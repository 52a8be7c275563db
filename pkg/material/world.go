package material

import (
	"github.com/df07/go-scene-builder/pkg/config"
	"github.com/df07/go-scene-builder/pkg/core"
)

const backgroundNoiseMix = 0.1

// World describes the background shader
type World struct {
	Bottom     core.Color `json:"bottom" yaml:"bottom"`
	Top        core.Color `json:"top" yaml:"top"`
	NoiseScale float64    `json:"noise_scale" yaml:"noise_scale"`
	Strength   float64    `json:"strength" yaml:"strength"`
	Graph      Graph      `json:"graph" yaml:"graph"`
}

// NewWorld creates a gradient background mixed with a faint noise overlay.
// A zero noise scale disables the overlay.
func NewWorld(cfg config.BackgroundConfig) World {
	w := World{
		Bottom:     cfg.Bottom,
		Top:        cfg.Top,
		NoiseScale: cfg.NoiseScale,
		Strength:   1.0,
	}

	g := &w.Graph
	coords := g.AddNode("Texture Coordinate", NodeTexCoord, -200, 0)
	ramp := g.addRamp("Color Ramp", cfg.Bottom, cfg.Top, 200, 0)
	noise := g.addNoise("Noise Texture", Noise{Scale: cfg.NoiseScale}, 0, -200)
	mix := g.AddNode("Mix", NodeMixRGB, 400, 0)
	background := g.AddNode("Background", NodeBackground, 600, 0)
	g.AddNode("World Output", NodeOutputWorld, 800, 0)

	g.Connect(coords, "Generated", ramp, "Fac")
	g.Connect(coords, "Generated", noise, "Vector")
	g.Connect(ramp, "Color", mix, "Color1")
	g.Connect(noise, "Color", mix, "Color2")
	g.Connect(mix, "Color", background, "Color")
	g.Connect(background, "Background", "World Output", "Surface")

	fac := 0.0
	if cfg.NoiseScale > 0 {
		fac = backgroundNoiseMix
	}
	g.Set(mix, "Fac", fac)
	g.Set(background, "Strength", w.Strength)

	return w
}

// MixFactor returns the weight of the noise overlay
func (w World) MixFactor() float64 {
	if n := w.Graph.Node("Mix"); n != nil {
		if f, ok := n.Inputs["Fac"].(float64); ok {
			return f
		}
	}
	return 0
}
