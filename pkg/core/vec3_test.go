package core

import (
	"math"
	"testing"
)

func TestVec3_Distance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		expected float64
	}{
		{"Same point", NewVec3(1, 2, 3), NewVec3(1, 2, 3), 0},
		{"Unit X", NewVec3(0, 0, 0), NewVec3(1, 0, 0), 1},
		{"Pythagorean", NewVec3(0, 0, 0), NewVec3(3, 4, 0), 5},
		{"Symmetric", NewVec3(3, 4, 12), NewVec3(0, 0, 0), 13},
		{"Negative coordinates", NewVec3(-1, -2, -2), NewVec3(0, 0, 0), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const tolerance = 1e-9
			if got := tt.a.Distance(tt.b); math.Abs(got-tt.expected) > tolerance {
				t.Errorf("Distance(%v, %v) = %v, expected %v", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestRadiansDegrees(t *testing.T) {
	if got := Radians(360); math.Abs(got-2*math.Pi) > 1e-12 {
		t.Errorf("Radians(360) = %v, expected 2pi", got)
	}
	if got := Degrees(math.Pi / 2); math.Abs(got-90) > 1e-12 {
		t.Errorf("Degrees(pi/2) = %v, expected 90", got)
	}
}

func TestColor_Validate(t *testing.T) {
	if err := RGB(0.9, 0.3, 0.2).Validate(); err != nil {
		t.Errorf("Expected valid color, got %v", err)
	}
	if err := NewColor(1.2, 0, 0, 1).Validate(); err == nil {
		t.Error("Expected error for red above 1")
	}
	if err := NewColor(0, 0, -0.1, 1).Validate(); err == nil {
		t.Error("Expected error for negative blue")
	}
}
