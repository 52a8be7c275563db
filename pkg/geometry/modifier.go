package geometry

// ModifierKind names a modifier the backend evaluates
type ModifierKind string

const (
	ModifierSubdivision  ModifierKind = "SUBSURF"
	ModifierDisplacement ModifierKind = "DISPLACE"
)

// Modifier is one entry of a shape's modifier stack, evaluated in order
type Modifier struct {
	Name         string        `json:"name" yaml:"name"`
	Kind         ModifierKind  `json:"kind" yaml:"kind"`
	Levels       int           `json:"levels,omitempty" yaml:"levels,omitempty"`
	RenderLevels int           `json:"render_levels,omitempty" yaml:"render_levels,omitempty"`
	Strength     float64       `json:"strength,omitempty" yaml:"strength,omitempty"`
	Texture      *NoiseTexture `json:"texture,omitempty" yaml:"texture,omitempty"`
}

// NoiseTexture is a procedural texture owned by a modifier. It is never
// shared with a material graph.
type NoiseTexture struct {
	Name  string  `json:"name" yaml:"name"`
	Type  string  `json:"type" yaml:"type"`
	Scale float64 `json:"scale" yaml:"scale"`
	Depth int     `json:"depth" yaml:"depth"`
}

// Subdivision returns a subdivision surface modifier
func Subdivision(levels, renderLevels int) Modifier {
	return Modifier{
		Name:         "Subdivision",
		Kind:         ModifierSubdivision,
		Levels:       levels,
		RenderLevels: renderLevels,
	}
}

// Displacement returns a displacement modifier driven by its own noise texture
func Displacement(strength float64, texture NoiseTexture) Modifier {
	return Modifier{
		Name:     "Displacement",
		Kind:     ModifierDisplacement,
		Strength: strength,
		Texture:  &texture,
	}
}

// Modifier returns the first modifier of the given kind
func (s Shape) Modifier(kind ModifierKind) (Modifier, bool) {
	for _, m := range s.Modifiers {
		if m.Kind == kind {
			return m, true
		}
	}
	return Modifier{}, false
}
