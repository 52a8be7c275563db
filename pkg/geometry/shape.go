// Package geometry generates shape descriptors: primitives with a transform,
// an optional modifier stack and a reference to exactly one material.
package geometry

import (
	"github.com/df07/go-scene-builder/pkg/core"
)

// Kind is the primitive a backend should create
type Kind string

const (
	KindSphere      Kind = "sphere" // UV sphere
	KindCube        Kind = "cube"
	KindTetrahedron Kind = "tetrahedron" // explicit mesh
	KindPlane       Kind = "plane"
	KindIcosphere   Kind = "icosphere"
	KindEmpty       Kind = "empty" // transform only, used as a tracking target
)

// Role tells scene validation which material rules apply to a shape
type Role string

const (
	RoleHero     Role = "hero"
	RoleProp     Role = "prop"
	RoleGround   Role = "ground"
	RoleFog      Role = "fog"      // volume-only material
	RoleParticle Role = "particle" // shares one emissive material
	RoleTarget   Role = "target"   // no material
)

// Transform places a shape in world space. Rotation is XYZ Euler in radians.
type Transform struct {
	Location core.Vec3 `json:"location" yaml:"location"`
	Rotation core.Vec3 `json:"rotation" yaml:"rotation"`
	Scale    core.Vec3 `json:"scale" yaml:"scale"`
}

// At returns an unrotated, unit-scale transform at location
func At(location core.Vec3) Transform {
	return Transform{Location: location, Scale: core.Splat(1)}
}

// Scaled returns a copy of t with a uniform scale
func (t Transform) Scaled(s float64) Transform {
	t.Scale = core.Splat(s)
	return t
}

// Shape describes one object of the scene
type Shape struct {
	Name      string     `json:"name" yaml:"name"`
	Kind      Kind       `json:"kind" yaml:"kind"`
	Role      Role       `json:"role" yaml:"role"`
	Transform Transform  `json:"transform" yaml:"transform"`
	Radius    float64    `json:"radius,omitempty" yaml:"radius,omitempty"`
	Size      float64    `json:"size,omitempty" yaml:"size,omitempty"`
	Segments  int        `json:"segments,omitempty" yaml:"segments,omitempty"`
	Rings     int        `json:"rings,omitempty" yaml:"rings,omitempty"`
	Subdivide int        `json:"subdivisions,omitempty" yaml:"subdivisions,omitempty"` // icosphere refinement
	Mesh      *Mesh      `json:"mesh,omitempty" yaml:"mesh,omitempty"`
	Modifiers []Modifier `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
	Material  string     `json:"material,omitempty" yaml:"material,omitempty"`
}

// Origin returns the world-space origin of the shape
func (s Shape) Origin() core.Vec3 {
	return s.Transform.Location
}

// NeedsMaterial reports whether the shape must reference a material
func (s Shape) NeedsMaterial() bool {
	return s.Role != RoleTarget
}

// Target creates an empty used as a camera tracking target
func Target(name string, location core.Vec3) Shape {
	return Shape{
		Name:      name,
		Kind:      KindEmpty,
		Role:      RoleTarget,
		Transform: At(location),
	}
}
