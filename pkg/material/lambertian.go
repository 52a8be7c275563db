package material

import (
	"github.com/df07/go-scene-builder/pkg/core"
)

// Diffuse creates a plain non-metallic surface, used for grounds and floors
func (g *Generator) Diffuse(name string, color core.Color, roughness, specular float64) Material {
	m := Material{
		Name:      name,
		Kind:      KindDiffuse,
		Colors:    []core.Color{color},
		BlendMode: BlendOpaque,
		Params: Params{
			BaseColor: color,
			Roughness: roughness,
			Specular:  specular,
			Alpha:     1,
		},
	}
	g.applySurface(g.newSurface(name, &m.Graph), m.Params)
	return m
}
