package material

// Noise holds the parameters of a procedural noise texture node
type Noise struct {
	Scale     float64
	Detail    float64
	Roughness float64 // zero leaves the backend default
}

// addNoise adds a noise texture node
func (g *Graph) addNoise(name string, noise Noise, x, y float64) string {
	g.AddNode(name, NodeNoise, x, y)
	g.Set(name, "Scale", noise.Scale)
	if noise.Detail > 0 {
		g.Set(name, "Detail", noise.Detail)
	}
	if noise.Roughness > 0 {
		g.Set(name, "Roughness", noise.Roughness)
	}
	return name
}
