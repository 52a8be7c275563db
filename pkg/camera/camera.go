// Package camera builds camera descriptors: a single camera placed by a named
// angle, or a table of cameras around a tracked target.
package camera

import (
	"errors"
	"fmt"

	"github.com/df07/go-scene-builder/pkg/config"
	"github.com/df07/go-scene-builder/pkg/core"
)

// Cameras closer than this to their target have no usable view direction
const minTargetDistance = 1e-6

// ErrNoEnabledCamera is returned when a rig has no camera that can be active
var ErrNoEnabledCamera = errors.New("no enabled camera")

const (
	// SingleCameraName names the camera of the single-angle mode
	SingleCameraName = "Camera"

	trackAxis = "TRACK_NEGATIVE_Z"
	upAxis    = "UP_Y"
)

// Camera describes one camera tracking a target
type Camera struct {
	Name           string    `json:"name" yaml:"name"`
	Position       core.Vec3 `json:"position" yaml:"position"`
	Lens           float64   `json:"lens" yaml:"lens"` // focal length in mm
	FStop          float64   `json:"fstop" yaml:"fstop"`
	FocusDistance  float64   `json:"focus_distance" yaml:"focus_distance"`
	Target         string    `json:"target" yaml:"target"`
	TargetPosition core.Vec3 `json:"target_position" yaml:"target_position"`
	TrackAxis      string    `json:"track_axis" yaml:"track_axis"`
	UpAxis         string    `json:"up_axis" yaml:"up_axis"`
	Active         bool      `json:"active" yaml:"active"`
}

// TargetResolver resolves the name of an already created shape to its position
type TargetResolver interface {
	ResolveTarget(name string) (core.Vec3, error)
}

// NewCamera creates a camera at position tracking target. Focus distance is
// the distance from the camera to the target.
func NewCamera(name string, position core.Vec3, lens, fstop float64, target string, targetPosition core.Vec3) Camera {
	return Camera{
		Name:           name,
		Position:       position,
		Lens:           lens,
		FStop:          fstop,
		FocusDistance:  position.Distance(targetPosition),
		Target:         target,
		TargetPosition: targetPosition,
		TrackAxis:      trackAxis,
		UpAxis:         upAxis,
	}
}

// Rig builds the cameras for cfg, all tracking target, and marks exactly one
// of them active. The target must already exist in resolver.
func Rig(cfg config.CameraConfig, target string, resolver TargetResolver, logger core.Logger) ([]Camera, error) {
	logger = core.OrNop(logger)

	targetPosition, err := resolver.ResolveTarget(target)
	if err != nil {
		return nil, fmt.Errorf("camera target: %w", err)
	}

	var cams []Camera
	if len(cfg.Rig) == 0 {
		if !cfg.Angle.Known() {
			logger.Printf("Unknown camera angle %q, using %s\n", cfg.Angle, config.AngleDramatic)
		}
		cams = []Camera{NewCamera(SingleCameraName, AnglePosition(cfg.Angle, cfg.Distance),
			cfg.Lens, cfg.FStop, target, targetPosition)}
	} else {
		cams = Table(cfg, target, targetPosition)
	}

	for _, c := range cams {
		if c.FocusDistance < minTargetDistance {
			return nil, &config.ConfigError{Field: "camera", Value: c.Name, Reason: fmt.Sprintf("camera sits on its target %s", target)}
		}
	}

	active, err := SelectActive(cams, cfg.Active)
	if err != nil {
		return nil, err
	}
	if cfg.Active != "" && cams[active].Name != cfg.Active {
		logger.Printf("Camera %q is not enabled, using %s\n", cfg.Active, cams[active].Name)
	}
	return cams, nil
}

// SelectActive marks one camera active: the named camera if present, otherwise
// the first one. It returns the index of the active camera.
func SelectActive(cams []Camera, name string) (int, error) {
	if len(cams) == 0 {
		return -1, ErrNoEnabledCamera
	}

	active := 0
	for i, c := range cams {
		if name != "" && c.Name == name {
			active = i
			break
		}
	}
	for i := range cams {
		cams[i].Active = i == active
	}
	return active, nil
}
