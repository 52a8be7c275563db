package geometry

import (
	"github.com/df07/go-scene-builder/pkg/core"
)

const (
	FogName = "VolumetricFog"

	fogSize = 100.0
)

// Cube creates a cube with the given edge length
func Cube(name string, size float64, transform Transform, material string) Shape {
	return Shape{
		Name:      name,
		Kind:      KindCube,
		Role:      RoleProp,
		Transform: transform,
		Size:      size,
		Material:  material,
	}
}

// FogVolume creates the cube that carries the volumetric fog. No fog is
// produced for a zero density.
func FogVolume(density float64, material string) (Shape, bool) {
	if density <= 0 {
		return Shape{}, false
	}
	fog := Cube(FogName, fogSize, At(core.NewVec3(0, 0, 0)), material)
	fog.Role = RoleFog
	return fog, true
}
