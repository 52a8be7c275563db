package geometry

import (
	"testing"

	"github.com/df07/go-scene-builder/pkg/config"
	"github.com/df07/go-scene-builder/pkg/core"
)

func TestStudioShapes_Layout(t *testing.T) {
	cfg := config.StudioConfig{ShapeScale: 1.5, ShapeSpacing: 4}
	shapes := StudioShapes(cfg, StudioMaterials{Cube: "C", Tetrahedron: "T", Sphere: "S"})

	if len(shapes) != 3 {
		t.Fatalf("Expected 3 shapes, got %d", len(shapes))
	}

	tests := []struct {
		name     string
		kind     Kind
		location core.Vec3
		material string
	}{
		{StudioCubeName, KindCube, core.NewVec3(-4, 0, 0), "C"},
		{StudioTetrahedronName, KindTetrahedron, core.NewVec3(0, 0, 0), "T"},
		{StudioSphereName, KindSphere, core.NewVec3(4, 0, 0), "S"},
	}
	for i, tt := range tests {
		s := shapes[i]
		if s.Name != tt.name || s.Kind != tt.kind {
			t.Errorf("Shape %d: expected %s/%s, got %s/%s", i, tt.name, tt.kind, s.Name, s.Kind)
		}
		if s.Origin() != tt.location {
			t.Errorf("%s: expected location %v, got %v", tt.name, tt.location, s.Origin())
		}
		if s.Transform.Scale != core.Splat(1.5) {
			t.Errorf("%s: expected scale 1.5, got %v", tt.name, s.Transform.Scale)
		}
		if s.Material != tt.material {
			t.Errorf("%s: expected material %s, got %s", tt.name, tt.material, s.Material)
		}
	}

	if shapes[1].Mesh == nil {
		t.Error("Expected tetrahedron to carry an explicit mesh")
	}
}

func TestTarget_HasNoMaterial(t *testing.T) {
	target := Target("CameraTarget", core.NewVec3(0, 0, 0))
	if target.NeedsMaterial() {
		t.Error("Expected target empty to need no material")
	}
	if target.Kind != KindEmpty {
		t.Errorf("Expected empty, got %s", target.Kind)
	}
}
