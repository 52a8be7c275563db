package scene

import (
	"fmt"

	"github.com/df07/go-scene-builder/pkg/geometry"
)

// Stats counts the parts of a scene
type Stats struct {
	Shapes    int  `json:"shapes"` // including particles and targets
	Particles int  `json:"particles"`
	Materials int  `json:"materials"`
	Nodes     int  `json:"nodes"` // shader nodes across materials and world
	Links     int  `json:"links"`
	Lights    int  `json:"lights"`
	Cameras   int  `json:"cameras"`
	Animated  bool `json:"animated"`
}

// Stats summarises the scene
func (s *Scene) Stats() Stats {
	st := Stats{
		Shapes:    len(s.Shapes),
		Materials: len(s.Materials),
		Lights:    len(s.Lights),
		Cameras:   len(s.Cameras),
		Nodes:     len(s.World.Graph.Nodes),
		Links:     len(s.World.Graph.Links),
		Animated:  s.Animation != nil,
	}
	for _, shape := range s.Shapes {
		if shape.Role == geometry.RoleParticle {
			st.Particles++
		}
	}
	for _, m := range s.Materials {
		st.Nodes += len(m.Graph.Nodes)
		st.Links += len(m.Graph.Links)
	}
	return st
}

func (st Stats) String() string {
	return fmt.Sprintf("%d shapes (%d particles), %d materials, %d nodes, %d lights, %d cameras, animated=%v",
		st.Shapes, st.Particles, st.Materials, st.Nodes, st.Lights, st.Cameras, st.Animated)
}
