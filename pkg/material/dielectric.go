package material

import (
	"github.com/df07/go-scene-builder/pkg/core"
)

// Crystalline creates a glass-like material with partial transmission and
// alpha blending
func (g *Generator) Crystalline(name string, color core.Color) Material {
	m := Material{
		Name:      name,
		Kind:      KindCrystalline,
		Colors:    []core.Color{color},
		BlendMode: BlendAlpha,
		Params: Params{
			BaseColor:    color,
			Transmission: 0.8,
			IOR:          1.45,
			Roughness:    0,
			Alpha:        0.9,
		},
	}
	g.applySurface(g.newSurface(name, &m.Graph), m.Params)
	return m
}

// Organic creates a soft subsurface material
func (g *Generator) Organic(name string, color core.Color) Material {
	m := Material{
		Name:      name,
		Kind:      KindOrganic,
		Colors:    []core.Color{color},
		BlendMode: BlendOpaque,
		Params: Params{
			BaseColor:        color,
			SubsurfaceWeight: 0.1,
			SubsurfaceColor:  core.RGB(0.8, 0.9, 0.7),
			Roughness:        0.3,
			Alpha:            1,
		},
	}
	g.applySurface(g.newSurface(name, &m.Graph), m.Params)
	return m
}
