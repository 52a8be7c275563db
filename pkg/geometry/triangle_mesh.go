package geometry

import (
	"fmt"

	"github.com/df07/go-scene-builder/pkg/core"
)

// Mesh is an explicit polygon mesh for shapes with no backend primitive
type Mesh struct {
	Vertices []core.Vec3 `json:"vertices" yaml:"vertices"`
	Faces    [][3]int    `json:"faces" yaml:"faces"` // triangle vertex indices
}

// GetTriangleCount returns the number of triangles in the mesh
func (m *Mesh) GetTriangleCount() int {
	return len(m.Faces)
}

// Validate checks that every face references existing vertices
func (m *Mesh) Validate() error {
	for i, f := range m.Faces {
		for _, idx := range f {
			if idx < 0 || idx >= len(m.Vertices) {
				return fmt.Errorf("face %d references vertex %d of %d", i, idx, len(m.Vertices))
			}
		}
	}
	return nil
}

// TetrahedronMesh returns a regular tetrahedron inscribed in the cube [-1, 1]^3
func TetrahedronMesh() *Mesh {
	return &Mesh{
		Vertices: []core.Vec3{
			core.NewVec3(1, 1, 1),
			core.NewVec3(-1, -1, 1),
			core.NewVec3(-1, 1, -1),
			core.NewVec3(1, -1, -1),
		},
		Faces: [][3]int{
			{0, 1, 2},
			{0, 2, 3},
			{0, 3, 1},
			{1, 3, 2},
		},
	}
}

// Tetrahedron creates a tetrahedron shape with an explicit mesh
func Tetrahedron(name string, transform Transform, material string) Shape {
	return Shape{
		Name:      name,
		Kind:      KindTetrahedron,
		Role:      RoleProp,
		Transform: transform,
		Mesh:      TetrahedronMesh(),
		Material:  material,
	}
}
