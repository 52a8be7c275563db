// Package material generates material descriptors. Each material carries its
// typed parameters and the shader graph a backend needs to reproduce it.
package material

import (
	"github.com/df07/go-scene-builder/pkg/core"
)

// Kind identifies a material preset
type Kind string

const (
	KindFuzzy       Kind = "fuzzy"
	KindMetallic    Kind = "metallic"
	KindCrystalline Kind = "crystalline"
	KindOrganic     Kind = "organic"
	KindEmissive    Kind = "emissive"
	KindVolume      Kind = "volume"
	KindDiffuse     Kind = "diffuse"
)

// BlendMode controls viewport transparency
type BlendMode string

const (
	BlendOpaque BlendMode = "OPAQUE"
	BlendAlpha  BlendMode = "BLEND"
)

// Params are the typed values of a material. Values the host has no socket
// for stay here even when they are dropped from the graph.
type Params struct {
	BaseColor        core.Color `json:"base_color" yaml:"base_color"`
	Roughness        float64    `json:"roughness" yaml:"roughness"`
	Metallic         float64    `json:"metallic" yaml:"metallic"`
	Specular         float64    `json:"specular,omitempty" yaml:"specular,omitempty"`
	Transmission     float64    `json:"transmission,omitempty" yaml:"transmission,omitempty"`
	IOR              float64    `json:"ior,omitempty" yaml:"ior,omitempty"`
	Alpha            float64    `json:"alpha" yaml:"alpha"`
	SubsurfaceWeight float64    `json:"subsurface_weight,omitempty" yaml:"subsurface_weight,omitempty"`
	SubsurfaceRadius core.Vec3  `json:"subsurface_radius,omitempty" yaml:"subsurface_radius,omitempty"`
	SubsurfaceColor  core.Color `json:"subsurface_color,omitempty" yaml:"subsurface_color,omitempty"`
	EmissionStrength float64    `json:"emission_strength,omitempty" yaml:"emission_strength,omitempty"`
	NoiseScale       float64    `json:"noise_scale,omitempty" yaml:"noise_scale,omitempty"`
	Density          float64    `json:"density,omitempty" yaml:"density,omitempty"`
}

// Material describes one named material
type Material struct {
	Name      string       `json:"name" yaml:"name"`
	Kind      Kind         `json:"kind" yaml:"kind"`
	Colors    []core.Color `json:"colors,omitempty" yaml:"colors,omitempty"`
	Params    Params       `json:"params" yaml:"params"`
	BlendMode BlendMode    `json:"blend_mode" yaml:"blend_mode"`
	Graph     Graph        `json:"graph" yaml:"graph"`
}

// IsVolumeOnly reports whether the material has a volume shader and no surface
func (m *Material) IsVolumeOnly() bool {
	return m.Kind == KindVolume
}

// Validate checks the shader graph of the material
func (m *Material) Validate() error {
	return m.Graph.Validate()
}

// Generator creates materials for one host. Parameters the host cannot
// represent are dropped from the graph and logged.
type Generator struct {
	Sockets *SocketTable
	Logger  core.Logger
}

// NewGenerator creates a material generator; a nil logger discards messages
func NewGenerator(sockets *SocketTable, logger core.Logger) *Generator {
	return &Generator{Sockets: sockets, Logger: core.OrNop(logger)}
}

// principled is a principled BSDF node under construction
type principled struct {
	gen      *Generator
	graph    *Graph
	node     string
	material string
}

// newSurface starts a graph with a principled BSDF feeding the material output
func (g *Generator) newSurface(material string, graph *Graph) principled {
	graph.AddNode("Material Output", NodeOutputMaterial, 300, 0)
	graph.AddNode("Principled BSDF", NodePrincipled, 0, 0)
	graph.Connect("Principled BSDF", "BSDF", "Material Output", "Surface")
	return principled{gen: g, graph: graph, node: "Principled BSDF", material: material}
}

// set assigns a logical parameter through the socket table
func (p principled) set(param Param, value interface{}) {
	socket, ok := p.gen.Sockets.Socket(param)
	if !ok {
		p.gen.Logger.Printf("material %s: host %s has no socket for %s, dropped\n",
			p.material, p.gen.Sockets.Version, param)
		return
	}
	p.graph.Set(p.node, socket, value)
}

// link connects a node output to a logical parameter through the socket table
func (p principled) link(fromNode, fromSocket string, param Param) {
	socket, ok := p.gen.Sockets.Socket(param)
	if !ok {
		p.gen.Logger.Printf("material %s: host %s has no socket for %s, link dropped\n",
			p.material, p.gen.Sockets.Version, param)
		return
	}
	p.graph.Connect(fromNode, fromSocket, p.node, socket)
}
