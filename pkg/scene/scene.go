// Package scene assembles shapes, materials, lights, cameras, render settings
// and animation into a frozen scene descriptor.
package scene

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"

	"github.com/df07/go-scene-builder/pkg/animation"
	"github.com/df07/go-scene-builder/pkg/camera"
	"github.com/df07/go-scene-builder/pkg/config"
	"github.com/df07/go-scene-builder/pkg/core"
	"github.com/df07/go-scene-builder/pkg/geometry"
	"github.com/df07/go-scene-builder/pkg/lights"
	"github.com/df07/go-scene-builder/pkg/material"
	"github.com/df07/go-scene-builder/pkg/renderer"
)

var (
	ErrUnknownTarget   = errors.New("unknown target")
	ErrFrozen          = errors.New("scene builder is frozen")
	ErrMissingMaterial = errors.New("missing material")
	ErrDuplicateName   = errors.New("duplicate name")
)

// Scene is a complete, immutable scene descriptor
type Scene struct {
	Name        string              `json:"name" yaml:"name"`
	Preset      config.Preset       `json:"preset" yaml:"preset"`
	HostVersion string              `json:"host_version" yaml:"host_version"`
	Shapes      []geometry.Shape    `json:"shapes" yaml:"shapes"`
	Materials   []material.Material `json:"materials" yaml:"materials"`
	World       material.World      `json:"world" yaml:"world"`
	Lights      []lights.Light      `json:"lights" yaml:"lights"`
	Cameras     []camera.Camera     `json:"cameras" yaml:"cameras"`
	Render      renderer.Settings   `json:"render" yaml:"render"`
	Animation   *animation.Clip     `json:"animation,omitempty" yaml:"animation,omitempty"`
}

// Shape returns the named shape
func (s *Scene) Shape(name string) (geometry.Shape, bool) {
	for _, shape := range s.Shapes {
		if shape.Name == name {
			return shape, true
		}
	}
	return geometry.Shape{}, false
}

// Material returns the named material
func (s *Scene) Material(name string) (material.Material, bool) {
	for _, m := range s.Materials {
		if m.Name == name {
			return m, true
		}
	}
	return material.Material{}, false
}

// ActiveCamera returns the camera marked active
func (s *Scene) ActiveCamera() (camera.Camera, bool) {
	for _, c := range s.Cameras {
		if c.Active {
			return c, true
		}
	}
	return camera.Camera{}, false
}

// Builder accumulates the parts of one scene. It is not safe for concurrent
// use; each build owns its builder.
type Builder struct {
	scene     Scene
	shapes    map[string]int
	materials map[string]int
	lights    map[string]bool
	cameras   map[string]bool
	frozen    bool
	Logger    core.Logger
}

// NewBuilder creates an empty builder for a scene called name
func NewBuilder(name string, logger core.Logger) *Builder {
	return &Builder{
		scene:     Scene{Name: name},
		shapes:    make(map[string]int),
		materials: make(map[string]int),
		lights:    make(map[string]bool),
		cameras:   make(map[string]bool),
		Logger:    core.OrNop(logger),
	}
}

// AddMaterial registers a material under its name
func (b *Builder) AddMaterial(m material.Material) error {
	if b.frozen {
		return ErrFrozen
	}
	if _, ok := b.materials[m.Name]; ok {
		return fmt.Errorf("material %q: %w", m.Name, ErrDuplicateName)
	}
	b.materials[m.Name] = len(b.scene.Materials)
	b.scene.Materials = append(b.scene.Materials, m)
	return nil
}

// AddShape adds a shape. Its material must already be registered.
func (b *Builder) AddShape(s geometry.Shape) error {
	if b.frozen {
		return ErrFrozen
	}
	if _, ok := b.shapes[s.Name]; ok {
		return fmt.Errorf("shape %q: %w", s.Name, ErrDuplicateName)
	}
	if s.NeedsMaterial() {
		if _, ok := b.materials[s.Material]; !ok {
			return fmt.Errorf("shape %q uses material %q: %w", s.Name, s.Material, ErrMissingMaterial)
		}
	}
	b.shapes[s.Name] = len(b.scene.Shapes)
	b.scene.Shapes = append(b.scene.Shapes, s)
	return nil
}

// AddShapes adds shapes in order, stopping at the first error
func (b *Builder) AddShapes(shapes []geometry.Shape) error {
	for _, s := range shapes {
		if err := b.AddShape(s); err != nil {
			return err
		}
	}
	return nil
}

// AddLight adds a light
func (b *Builder) AddLight(l lights.Light) error {
	if b.frozen {
		return ErrFrozen
	}
	if b.lights[l.Name] {
		return fmt.Errorf("light %q: %w", l.Name, ErrDuplicateName)
	}
	b.lights[l.Name] = true
	b.scene.Lights = append(b.scene.Lights, l)
	return nil
}

// AddCamera adds a camera. Its tracked target must already exist.
func (b *Builder) AddCamera(c camera.Camera) error {
	if b.frozen {
		return ErrFrozen
	}
	if b.cameras[c.Name] {
		return fmt.Errorf("camera %q: %w", c.Name, ErrDuplicateName)
	}
	if _, err := b.ResolveTarget(c.Target); err != nil {
		return fmt.Errorf("camera %q: %w", c.Name, err)
	}
	b.cameras[c.Name] = true
	b.scene.Cameras = append(b.scene.Cameras, c)
	return nil
}

// ResolveTarget returns the origin of an already added shape
func (b *Builder) ResolveTarget(name string) (core.Vec3, error) {
	i, ok := b.shapes[name]
	if !ok {
		return core.Vec3{}, fmt.Errorf("%q: %w", name, ErrUnknownTarget)
	}
	return b.scene.Shapes[i].Origin(), nil
}

// SetWorld sets the background shader
func (b *Builder) SetWorld(w material.World) error {
	if b.frozen {
		return ErrFrozen
	}
	b.scene.World = w
	return nil
}

// SetRender sets the render settings
func (b *Builder) SetRender(preset config.Preset, hostVersion string, s renderer.Settings) error {
	if b.frozen {
		return ErrFrozen
	}
	b.scene.Preset = preset
	b.scene.HostVersion = hostVersion
	b.scene.Render = s
	return nil
}

// SetAnimation sets the optional animation clip; nil clears it
func (b *Builder) SetAnimation(clip *animation.Clip) error {
	if b.frozen {
		return ErrFrozen
	}
	b.scene.Animation = clip
	return nil
}

// Freeze validates the accumulated scene and returns an independent copy of
// it. The builder rejects every further change.
func (b *Builder) Freeze() (*Scene, error) {
	if b.frozen {
		return nil, ErrFrozen
	}
	if err := b.validate(); err != nil {
		return nil, err
	}

	frozen := &Scene{}
	if err := copier.CopyWithOption(frozen, &b.scene, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("copy scene: %w", err)
	}
	b.frozen = true
	b.Logger.Printf("Scene %s: %s\n", frozen.Name, frozen.Stats())
	return frozen, nil
}

// validate checks every cross-reference of the scene
func (b *Builder) validate() error {
	var errs []error
	s := &b.scene

	particleMaterial := ""
	for _, shape := range s.Shapes {
		if !shape.NeedsMaterial() {
			if shape.Material != "" {
				errs = append(errs, fmt.Errorf("target %q must not have a material", shape.Name))
			}
			continue
		}
		i, ok := b.materials[shape.Material]
		if !ok {
			errs = append(errs, fmt.Errorf("shape %q uses material %q: %w", shape.Name, shape.Material, ErrMissingMaterial))
			continue
		}
		m := s.Materials[i]
		switch shape.Role {
		case geometry.RoleFog:
			if !m.IsVolumeOnly() {
				errs = append(errs, fmt.Errorf("fog %q needs a volume material, got %s", shape.Name, m.Kind))
			}
		case geometry.RoleParticle:
			if m.Kind != material.KindEmissive {
				errs = append(errs, fmt.Errorf("particle %q needs an emissive material, got %s", shape.Name, m.Kind))
			}
			if particleMaterial == "" {
				particleMaterial = shape.Material
			} else if particleMaterial != shape.Material {
				errs = append(errs, fmt.Errorf("particle %q does not share material %q", shape.Name, particleMaterial))
			}
		}
		if shape.Mesh != nil {
			if err := shape.Mesh.Validate(); err != nil {
				errs = append(errs, fmt.Errorf("shape %q: %w", shape.Name, err))
			}
		}
	}

	for _, m := range s.Materials {
		if err := m.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("material %q: %w", m.Name, err))
		}
	}
	if err := s.World.Graph.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("world: %w", err))
	}

	active := 0
	for _, c := range s.Cameras {
		if _, ok := b.shapes[c.Target]; !ok {
			errs = append(errs, fmt.Errorf("camera %q tracks %q: %w", c.Name, c.Target, ErrUnknownTarget))
		}
		if c.Active {
			active++
		}
	}
	if len(s.Cameras) == 0 {
		errs = append(errs, camera.ErrNoEnabledCamera)
	} else if active != 1 {
		errs = append(errs, fmt.Errorf("expected one active camera, got %d", active))
	}

	if s.Animation != nil {
		if _, ok := b.shapes[s.Animation.Target]; !ok {
			errs = append(errs, fmt.Errorf("animation of %q: %w", s.Animation.Target, ErrUnknownTarget))
		}
	}

	return errors.Join(errs...)
}
