package geometry

import "testing"

func TestFogVolume(t *testing.T) {
	fog, ok := FogVolume(0.03, "Fog")
	if !ok {
		t.Fatal("Expected fog for positive density")
	}
	if fog.Kind != KindCube || fog.Size != 100 {
		t.Errorf("Expected 100 unit cube, got %s size %f", fog.Kind, fog.Size)
	}
	if fog.Role != RoleFog {
		t.Errorf("Expected fog role, got %s", fog.Role)
	}

	if _, ok := FogVolume(0, "Fog"); ok {
		t.Error("Expected no fog for zero density")
	}
}
