package scene

import (
	"github.com/df07/go-scene-builder/pkg/config"
	"github.com/df07/go-scene-builder/pkg/core"
	"github.com/df07/go-scene-builder/pkg/geometry"
	"github.com/df07/go-scene-builder/pkg/material"
)

const (
	StudioSceneName  = "Studio_Geometric_Shapes"
	StudioTargetName = "Studio_Camera_Target"
)

var floorColor = core.RGB(0.1, 0.1, 0.1)

// NewStudioShapesScene creates a metallic cube, a crystalline tetrahedron and
// an organic sphere on a floor, lit by a four-point rig and filmed by a
// table of cameras
func NewStudioShapesScene(cfg config.SceneConfig, logger core.Logger) (*Scene, error) {
	a, err := newAssembly(StudioSceneName, cfg, logger)
	if err != nil {
		return nil, err
	}
	b := a.b

	if err := b.AddShape(geometry.Target(StudioTargetName, core.NewVec3(0, 0, 0))); err != nil {
		return nil, err
	}

	mats := []material.Material{
		a.mats.Metallic("Cube_Material", cfg.Studio.CubeColor),
		a.mats.Crystalline("Tetrahedron_Material", cfg.Studio.TetrahedronColor),
		a.mats.Organic("Sphere_Material", cfg.Studio.SphereColor),
		a.mats.Diffuse("Floor_Material", floorColor, 0.2, 0),
	}
	for _, m := range mats {
		if err := b.AddMaterial(m); err != nil {
			return nil, err
		}
	}

	shapes := geometry.StudioShapes(cfg.Studio, geometry.StudioMaterials{
		Cube:        mats[0].Name,
		Tetrahedron: mats[1].Name,
		Sphere:      mats[2].Name,
	})
	if err := b.AddShapes(shapes); err != nil {
		return nil, err
	}
	if err := b.AddShape(geometry.StudioFloor(cfg.Studio, mats[3].Name)); err != nil {
		return nil, err
	}

	return a.finish(StudioTargetName, geometry.StudioTetrahedronName)
}
