package geometry

import (
	"math"

	"github.com/df07/go-scene-builder/pkg/config"
	"github.com/df07/go-scene-builder/pkg/core"
)

const (
	GroundName      = "Ground"
	StudioFloorName = "Studio_Floor"

	// GroundOffset keeps the ground just below the sphere's lowest point
	GroundOffset = 0.1

	minGroundSize     = 50.0
	groundRadiusRatio = 25.0
	studioFloorSize   = 20.0
)

// GroundSize is the edge length of the ground plane for a sphere of the given radius
func GroundSize(radius float64) float64 {
	return math.Max(minGroundSize, groundRadiusRatio*radius)
}

// GroundPlane creates a large plane tangent beneath a sphere of the given radius
func GroundPlane(radius float64, material string) Shape {
	return Shape{
		Name:      GroundName,
		Kind:      KindPlane,
		Role:      RoleGround,
		Transform: At(core.NewVec3(0, 0, -radius-GroundOffset)),
		Size:      GroundSize(radius),
		Material:  material,
	}
}

// StudioFloor creates the floor of the studio layout
func StudioFloor(cfg config.StudioConfig, material string) Shape {
	return Shape{
		Name:      StudioFloorName,
		Kind:      KindPlane,
		Role:      RoleGround,
		Transform: At(core.NewVec3(0, 0, cfg.FloorHeight)),
		Size:      studioFloorSize,
		Material:  material,
	}
}
