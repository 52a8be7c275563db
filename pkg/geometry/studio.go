package geometry

import (
	"github.com/df07/go-scene-builder/pkg/config"
	"github.com/df07/go-scene-builder/pkg/core"
)

const (
	StudioCubeName        = "Studio_Cube"
	StudioTetrahedronName = "Tetrahedron"
	StudioSphereName      = "Studio_Sphere"
)

// StudioMaterials names the material of each studio shape
type StudioMaterials struct {
	Cube, Tetrahedron, Sphere string
}

// StudioShapes lays out cube, tetrahedron and sphere along X, spaced by
// ShapeSpacing and uniformly scaled by ShapeScale
func StudioShapes(cfg config.StudioConfig, materials StudioMaterials) []Shape {
	return []Shape{
		Cube(StudioCubeName, 2,
			At(core.NewVec3(-cfg.ShapeSpacing, 0, 0)).Scaled(cfg.ShapeScale),
			materials.Cube),
		Tetrahedron(StudioTetrahedronName,
			At(core.NewVec3(0, 0, 0)).Scaled(cfg.ShapeScale),
			materials.Tetrahedron),
		UVSphere(StudioSphereName, 1,
			At(core.NewVec3(cfg.ShapeSpacing, 0, 0)).Scaled(cfg.ShapeScale),
			materials.Sphere),
	}
}
