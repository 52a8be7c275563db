package material

import (
	"github.com/df07/go-scene-builder/pkg/core"
)

// Metallic creates a fully metallic, slightly rough material
func (g *Generator) Metallic(name string, color core.Color) Material {
	m := Material{
		Name:      name,
		Kind:      KindMetallic,
		Colors:    []core.Color{color},
		BlendMode: BlendOpaque,
		Params: Params{
			BaseColor: color,
			Metallic:  1.0,
			Roughness: 0.1,
			Alpha:     1,
		},
	}
	g.applySurface(g.newSurface(name, &m.Graph), m.Params)
	return m
}
