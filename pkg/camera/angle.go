package camera

import (
	"github.com/df07/go-scene-builder/pkg/config"
	"github.com/df07/go-scene-builder/pkg/core"
)

// AnglePosition returns the camera position for a named angle at distance d.
// Unknown angles use the dramatic position.
func AnglePosition(angle config.CameraAngle, d float64) core.Vec3 {
	switch angle {
	case config.AngleLowAngle:
		return core.NewVec3(0, -d*0.7, 0.5)
	case config.AngleHighAngle:
		return core.NewVec3(0, -d*0.7, 6)
	case config.AngleSide:
		return core.NewVec3(d*0.8, 0, 2)
	case config.AngleCinematic:
		return core.NewVec3(6, -d*0.6, 0.5)
	case config.AngleHero:
		return core.NewVec3(8, -d*0.5, 1)
	default:
		return core.NewVec3(4, -d*0.8, 1)
	}
}
