package material

import (
	"github.com/df07/go-scene-builder/pkg/core"
)

const particleEmissionStrength = 5.0

// ParticleColor is the warm glow shared by all particles
var ParticleColor = core.RGB(1.0, 0.8, 0.2)

// Emissive creates the light-emitting material shared by all particles
func (g *Generator) Emissive(name string) Material {
	m := Material{
		Name:      name,
		Kind:      KindEmissive,
		Colors:    []core.Color{ParticleColor},
		BlendMode: BlendOpaque,
		Params: Params{
			BaseColor:        ParticleColor,
			EmissionStrength: particleEmissionStrength,
			Alpha:            1,
		},
	}

	m.Graph.AddNode("Material Output", NodeOutputMaterial, 200, 0)
	emission := m.Graph.AddNode("Emission", NodeEmission, 0, 0)
	m.Graph.Set(emission, "Color", ParticleColor)
	m.Graph.Set(emission, "Strength", particleEmissionStrength)
	m.Graph.Connect(emission, "Emission", "Material Output", "Surface")
	return m
}

// Volume creates a volume-only scattering material with no surface shader
func (g *Generator) Volume(name string, density float64) Material {
	m := Material{
		Name:      name,
		Kind:      KindVolume,
		BlendMode: BlendOpaque,
		Params: Params{
			Density: density,
			Alpha:   1,
		},
	}

	m.Graph.AddNode("Material Output", NodeOutputMaterial, 200, 0)
	scatter := m.Graph.AddNode("Volume Scatter", NodeVolumeScatter, 0, 0)
	m.Graph.Set(scatter, "Density", density)
	m.Graph.Connect(scatter, "Volume", "Material Output", "Volume")
	return m
}
