// Package animation describes the optional spin of the hero shape
package animation

import (
	"math"

	"github.com/df07/go-scene-builder/pkg/config"
	"github.com/df07/go-scene-builder/pkg/core"
)

// Interpolation between keyframes
type Interpolation string

const InterpolationLinear Interpolation = "LINEAR"

// Keyframe is the value of the animated property at one frame
type Keyframe struct {
	Frame         int           `json:"frame" yaml:"frame"`
	Rotation      core.Vec3     `json:"rotation" yaml:"rotation"` // radians
	Interpolation Interpolation `json:"interpolation" yaml:"interpolation"`
}

// Clip animates one property of one shape
type Clip struct {
	Target    string     `json:"target" yaml:"target"`
	DataPath  string     `json:"data_path" yaml:"data_path"`
	Keyframes []Keyframe `json:"keyframes" yaml:"keyframes"`
}

// SpinClip returns one full turn about Z over frames 1..cfg.Frames, or nil
// when rotation is disabled
func SpinClip(target string, cfg config.AnimationConfig) *Clip {
	if !cfg.Rotate {
		return nil
	}
	return &Clip{
		Target:   target,
		DataPath: "rotation_euler",
		Keyframes: []Keyframe{
			{Frame: 1, Rotation: core.Vec3{}, Interpolation: InterpolationLinear},
			{Frame: cfg.Frames, Rotation: core.NewVec3(0, 0, 2*math.Pi), Interpolation: InterpolationLinear},
		},
	}
}

// FrameEnd returns the last keyframe, or 1 for a nil clip
func (c *Clip) FrameEnd() int {
	if c == nil || len(c.Keyframes) == 0 {
		return 1
	}
	return c.Keyframes[len(c.Keyframes)-1].Frame
}

// RotationAt returns the linearly interpolated rotation at frame
func (c *Clip) RotationAt(frame float64) core.Vec3 {
	if c == nil || len(c.Keyframes) == 0 {
		return core.Vec3{}
	}
	first, last := c.Keyframes[0], c.Keyframes[len(c.Keyframes)-1]
	if frame <= float64(first.Frame) {
		return first.Rotation
	}
	if frame >= float64(last.Frame) {
		return last.Rotation
	}
	t := (frame - float64(first.Frame)) / float64(last.Frame-first.Frame)
	return first.Rotation.Add(last.Rotation.Subtract(first.Rotation).Multiply(t))
}
