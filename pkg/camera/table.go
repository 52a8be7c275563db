package camera

import (
	"github.com/df07/go-scene-builder/pkg/config"
	"github.com/df07/go-scene-builder/pkg/core"
)

// TablePosition places a table entry relative to the rig's distance, height
// and elevation boost
func TablePosition(entry config.CameraEntry, cfg config.CameraConfig) core.Vec3 {
	m := entry.Multipliers
	return core.NewVec3(
		cfg.Distance*m[0],
		cfg.Distance*m[1],
		cfg.Height*m[2]+cfg.ElevationBoost,
	)
}

// Table creates one camera per enabled entry of the rig, in table order
func Table(cfg config.CameraConfig, target string, targetPosition core.Vec3) []Camera {
	var cams []Camera
	for _, entry := range cfg.Rig {
		if !entry.Enabled {
			continue
		}
		cams = append(cams, NewCamera(entry.Name, TablePosition(entry, cfg),
			entry.Lens, entry.FStop, target, targetPosition))
	}
	return cams
}
