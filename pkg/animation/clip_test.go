package animation

import (
	"math"
	"testing"

	"github.com/df07/go-scene-builder/pkg/config"
)

func TestSpinClip_Disabled(t *testing.T) {
	if clip := SpinClip("FuzzySphere", config.AnimationConfig{Rotate: false, Frames: 120}); clip != nil {
		t.Errorf("Expected no clip when rotation is disabled, got %+v", clip)
	}
	var none *Clip
	if none.FrameEnd() != 1 {
		t.Errorf("Expected nil clip to end at frame 1, got %d", none.FrameEnd())
	}
}

func TestSpinClip_Keyframes(t *testing.T) {
	clip := SpinClip("FuzzySphere", config.AnimationConfig{Rotate: true, Frames: 120})
	if clip == nil {
		t.Fatal("Expected a clip")
	}
	if clip.Target != "FuzzySphere" {
		t.Errorf("Expected target FuzzySphere, got %s", clip.Target)
	}
	if len(clip.Keyframes) != 2 {
		t.Fatalf("Expected 2 keyframes, got %d", len(clip.Keyframes))
	}

	first, last := clip.Keyframes[0], clip.Keyframes[1]
	if first.Frame != 1 || !first.Rotation.IsZero() {
		t.Errorf("Expected frame 1 at zero rotation, got %d %v", first.Frame, first.Rotation)
	}
	if last.Frame != 120 || math.Abs(last.Rotation.Z-2*math.Pi) > 1e-12 {
		t.Errorf("Expected frame 120 at 2pi, got %d %v", last.Frame, last.Rotation)
	}
	for _, k := range clip.Keyframes {
		if k.Interpolation != InterpolationLinear {
			t.Errorf("Expected linear interpolation, got %s", k.Interpolation)
		}
	}
	if clip.FrameEnd() != 120 {
		t.Errorf("Expected frame end 120, got %d", clip.FrameEnd())
	}
}

func TestClip_RotationAt(t *testing.T) {
	clip := SpinClip("s", config.AnimationConfig{Rotate: true, Frames: 101})

	tests := []struct {
		frame float64
		want  float64
	}{
		{0, 0},
		{1, 0},
		{51, math.Pi},
		{101, 2 * math.Pi},
		{200, 2 * math.Pi},
	}
	for _, tt := range tests {
		if got := clip.RotationAt(tt.frame).Z; math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("RotationAt(%v) = %f, want %f", tt.frame, got, tt.want)
		}
	}
}
