package material

import (
	"github.com/df07/go-scene-builder/pkg/config"
	"github.com/df07/go-scene-builder/pkg/core"
)

var (
	fuzzyBumpNoise       = Noise{Scale: config.FuzzBumpNoiseScale, Detail: 12, Roughness: 0.9}
	fuzzySubsurfaceRadii = core.NewVec3(1.0, 0.4, 0.3)
)

// Fuzzy creates the fuzzy sphere material: a noise-driven two colour ramp for
// the base colour plus a fine bump noise on the normal
func (g *Generator) Fuzzy(name string, c1, c2 core.Color, colorNoiseScale float64) Material {
	m := Material{
		Name:      name,
		Kind:      KindFuzzy,
		Colors:    []core.Color{c1, c2},
		BlendMode: BlendOpaque,
		Params: Params{
			BaseColor:        c1,
			Roughness:        0.95,
			Specular:         0.05,
			Metallic:         0,
			Alpha:            1,
			SubsurfaceWeight: 0.4,
			SubsurfaceRadius: fuzzySubsurfaceRadii,
			NoiseScale:       colorNoiseScale,
		},
	}

	bsdf := g.newSurface(name, &m.Graph)
	g.applySurface(bsdf, m.Params)

	colorNoise := m.Graph.addNoise("Color Noise", Noise{Scale: colorNoiseScale, Detail: 2}, -400, 150)
	ramp := m.Graph.addRamp("Color Ramp", c1, c2, -200, 150)
	m.Graph.Connect(colorNoise, "Fac", ramp, "Fac")
	bsdf.link(ramp, "Color", ParamBaseColor)

	bumpNoise := m.Graph.addNoise("Bump Noise", fuzzyBumpNoise, -400, -200)
	bump := m.Graph.AddNode("Bump", NodeBump, -200, -200)
	m.Graph.Connect(bumpNoise, "Color", bump, "Height")
	bsdf.link(bump, "Normal", ParamNormal)

	return m
}

// applySurface writes the non-zero principled parameters to the BSDF node
func (g *Generator) applySurface(bsdf principled, p Params) {
	bsdf.set(ParamBaseColor, p.BaseColor)
	bsdf.set(ParamRoughness, p.Roughness)
	bsdf.set(ParamMetallic, p.Metallic)
	if p.Specular > 0 {
		bsdf.set(ParamSpecular, p.Specular)
	}
	if p.Transmission > 0 {
		bsdf.set(ParamTransmission, p.Transmission)
	}
	if p.IOR > 0 {
		bsdf.set(ParamIOR, p.IOR)
	}
	if p.Alpha < 1 {
		bsdf.set(ParamAlpha, p.Alpha)
	}
	if p.SubsurfaceWeight > 0 {
		bsdf.set(ParamSubsurfaceWeight, p.SubsurfaceWeight)
	}
	if !p.SubsurfaceRadius.IsZero() {
		bsdf.set(ParamSubsurfaceRadius, p.SubsurfaceRadius)
	}
	if p.SubsurfaceColor != (core.Color{}) {
		bsdf.set(ParamSubsurfaceColor, p.SubsurfaceColor)
	}
}
