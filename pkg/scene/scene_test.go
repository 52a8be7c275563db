package scene

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-scene-builder/pkg/camera"
	"github.com/df07/go-scene-builder/pkg/config"
	"github.com/df07/go-scene-builder/pkg/core"
	"github.com/df07/go-scene-builder/pkg/geometry"
	"github.com/df07/go-scene-builder/pkg/lights"
	"github.com/df07/go-scene-builder/pkg/material"
)

func countRole(s *Scene, role geometry.Role) int {
	n := 0
	for _, shape := range s.Shapes {
		if shape.Role == role {
			n++
		}
	}
	return n
}

func hasLight(s *Scene, name string) bool {
	for _, l := range s.Lights {
		if l.Name == name {
			return true
		}
	}
	return false
}

func TestBuild_FuzzySphereDefaults(t *testing.T) {
	s, err := Build(config.DefaultFuzzySphere(), nil)
	require.NoError(t, err)

	sphere, ok := s.Shape(geometry.FuzzySphereName)
	require.True(t, ok)
	displace, ok := sphere.Modifier(geometry.ModifierDisplacement)
	require.True(t, ok)
	assert.InDelta(t, 1.0, displace.Strength, 1e-9)

	ground, ok := s.Shape(geometry.GroundName)
	require.True(t, ok)
	assert.InDelta(t, -2.1, ground.Origin().Z, 1e-9)

	assert.Equal(t, 150, countRole(s, geometry.RoleParticle))
	assert.Equal(t, 1, countRole(s, geometry.RoleFog))
	assert.Equal(t, 1, countRole(s, geometry.RoleTarget))

	for _, shape := range s.Shapes {
		if shape.Role == geometry.RoleParticle {
			assert.Equal(t, "ParticleMaterial", shape.Material)
		}
	}
	fog, _ := s.Shape(geometry.FogName)
	fogMaterial, ok := s.Material(fog.Material)
	require.True(t, ok)
	assert.True(t, fogMaterial.IsVolumeOnly())

	cam, ok := s.ActiveCamera()
	require.True(t, ok)
	assert.Equal(t, FuzzyTargetName, cam.Target)

	assert.True(t, hasLight(s, "MainLight"))
	assert.True(t, hasLight(s, "ExtraRimLight"))

	require.NotNil(t, s.Animation)
	assert.Equal(t, geometry.FuzzySphereName, s.Animation.Target)
	require.NotNil(t, s.Render.Cycles)
	assert.Equal(t, 120, s.Render.FrameEnd)
	assert.Equal(t, "OPENIMAGEDENOISE", s.Render.Cycles.Denoiser)
}

func TestBuild_ParticlesToggleWins(t *testing.T) {
	cfg := config.DefaultFuzzySphere()
	cfg.Atmosphere.Particles = false
	cfg.Atmosphere.ParticleCount = 500

	s, err := Build(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, countRole(s, geometry.RoleParticle))
	_, ok := s.Material("ParticleMaterial")
	assert.False(t, ok, "no emissive material without particles")
}

func TestBuild_NoFogWithoutDensity(t *testing.T) {
	cfg := config.DefaultFuzzySphere()
	cfg.Atmosphere.FogDensity = 0

	s, err := Build(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, countRole(s, geometry.RoleFog))
	_, ok := s.Material("FogMaterial")
	assert.False(t, ok)
}

func TestBuild_RimLightPresence(t *testing.T) {
	cfg := config.DefaultFuzzySphere()
	cfg.Lighting.RimIntensity = 0
	s, err := Build(cfg, nil)
	require.NoError(t, err)
	assert.False(t, hasLight(s, "ExtraRimLight"))
}

func TestBuild_NoAnimation(t *testing.T) {
	cfg := config.DefaultFuzzySphere()
	cfg.Animation.Rotate = false
	s, err := Build(cfg, nil)
	require.NoError(t, err)
	assert.Nil(t, s.Animation)
	assert.Equal(t, 1, s.Render.FrameEnd)
}

func TestBuild_Deterministic(t *testing.T) {
	a, err := Build(config.DefaultFuzzySphere(), nil)
	require.NoError(t, err)
	b, err := Build(config.DefaultFuzzySphere(), nil)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	cfg := config.DefaultFuzzySphere()
	cfg.Seed = 2
	c, err := Build(cfg, nil)
	require.NoError(t, err)
	assert.NotEqual(t, a.Shapes, c.Shapes)
}

func TestBuild_StudioShapes(t *testing.T) {
	s, err := Build(config.DefaultStudioShapes(), nil)
	require.NoError(t, err)

	assert.Equal(t, StudioSceneName, s.Name)
	assert.Len(t, s.Shapes, 5)
	assert.Len(t, s.Lights, 4)
	assert.Len(t, s.Cameras, 4)
	assert.Nil(t, s.Animation)

	active := 0
	for _, c := range s.Cameras {
		assert.Equal(t, StudioTargetName, c.Target)
		if c.Active {
			active++
			assert.Equal(t, "Studio_Camera_Main", c.Name)
		}
	}
	assert.Equal(t, 1, active)

	tetra, ok := s.Material("Tetrahedron_Material")
	require.True(t, ok)
	assert.Equal(t, material.BlendAlpha, tetra.BlendMode)

	floor, ok := s.Shape(geometry.StudioFloorName)
	require.True(t, ok)
	assert.Equal(t, -2.0, floor.Origin().Z)
	assert.True(t, s.Render.MotionBlur)
}

func TestBuild_InvalidConfig(t *testing.T) {
	cfg := config.DefaultFuzzySphere()
	cfg.Sphere.Radius = -1
	_, err := Build(cfg, nil)
	require.Error(t, err)

	var cfgErr *config.ConfigError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestBuild_LowerCaseEngine(t *testing.T) {
	cfg := config.DefaultFuzzySphere()
	cfg.Render.Engine = "cycles"
	require.NoError(t, cfg.Validate())

	s, err := Build(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, config.EngineCycles, s.Render.Engine)
	require.NotNil(t, s.Render.Cycles)
}

func TestBuild_CameraOnTarget(t *testing.T) {
	cfg := config.DefaultStudioShapes()
	cfg.Camera.ElevationBoost = 0
	cfg.Camera.Rig[0].Multipliers = [3]float64{0, 0, 0}
	_, err := Build(cfg, nil)
	require.Error(t, err)

	var cfgErr *config.ConfigError
	assert.True(t, errors.As(err, &cfgErr), "got %v", err)
}

func TestBuild_CameraTargetOverride(t *testing.T) {
	cfg := config.DefaultFuzzySphere()
	cfg.Camera.Target = geometry.FuzzySphereName
	s, err := Build(cfg, nil)
	require.NoError(t, err)
	cam, _ := s.ActiveCamera()
	assert.Equal(t, geometry.FuzzySphereName, cam.Target)

	cfg.Camera.Target = "Nowhere"
	_, err = Build(cfg, nil)
	assert.True(t, errors.Is(err, ErrUnknownTarget), "got %v", err)
}

func TestBuild_LogsDroppedSockets(t *testing.T) {
	logger := &recordingLogger{}
	_, err := Build(config.DefaultStudioShapes(), logger)
	require.NoError(t, err)
	assert.True(t, logger.contains("subsurface_color"), "expected a dropped socket message, got %v", logger.lines)
}

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) contains(s string) bool {
	for _, line := range l.lines {
		if strings.Contains(line, s) {
			return true
		}
	}
	return false
}

func newTestBuilder(t *testing.T) (*Builder, *material.Generator) {
	t.Helper()
	sockets, err := material.ResolveSockets("4.2.0")
	require.NoError(t, err)
	return NewBuilder("Test", nil), material.NewGenerator(sockets, nil)
}

func TestBuilder_Errors(t *testing.T) {
	b, gen := newTestBuilder(t)

	err := b.AddShape(geometry.GroundPlane(1, "Missing"))
	assert.True(t, errors.Is(err, ErrMissingMaterial), "got %v", err)

	require.NoError(t, b.AddMaterial(gen.Diffuse("Ground", core.RGB(0.1, 0.1, 0.1), 0.5, 0)))
	assert.True(t, errors.Is(b.AddMaterial(gen.Diffuse("Ground", core.RGB(0, 0, 0), 0.5, 0)), ErrDuplicateName))

	require.NoError(t, b.AddShape(geometry.GroundPlane(1, "Ground")))
	assert.True(t, errors.Is(b.AddShape(geometry.GroundPlane(1, "Ground")), ErrDuplicateName))

	cam := camera.NewCamera("Cam", core.NewVec3(0, -10, 2), 50, 2.8, "Target", core.Vec3{})
	assert.True(t, errors.Is(b.AddCamera(cam), ErrUnknownTarget))

	_, err = b.ResolveTarget("Target")
	assert.True(t, errors.Is(err, ErrUnknownTarget))
}

func TestBuilder_FreezeRequiresActiveCamera(t *testing.T) {
	b, gen := newTestBuilder(t)
	require.NoError(t, b.AddShape(geometry.Target("T", core.Vec3{})))
	require.NoError(t, b.AddMaterial(gen.Metallic("M", core.RGB(1, 1, 1))))
	require.NoError(t, b.AddShape(geometry.Cube("C", 2, geometry.At(core.Vec3{}), "M")))
	require.NoError(t, b.SetWorld(material.NewWorld(config.DefaultFuzzySphere().Background)))

	_, err := b.Freeze()
	assert.True(t, errors.Is(err, camera.ErrNoEnabledCamera), "got %v", err)

	require.NoError(t, b.AddCamera(camera.NewCamera("Cam", core.NewVec3(0, -10, 2), 50, 2.8, "T", core.Vec3{})))
	_, err = b.Freeze()
	assert.Error(t, err, "camera not marked active")
}

func TestBuilder_FreezeRejectsSurfaceFog(t *testing.T) {
	b, gen := newTestBuilder(t)
	require.NoError(t, b.AddShape(geometry.Target("T", core.Vec3{})))
	require.NoError(t, b.AddMaterial(gen.Metallic("Shiny", core.RGB(1, 1, 1))))
	fog, ok := geometry.FogVolume(0.1, "Shiny")
	require.True(t, ok)
	require.NoError(t, b.AddShape(fog))
	require.NoError(t, b.SetWorld(material.NewWorld(config.DefaultFuzzySphere().Background)))
	c := camera.NewCamera("Cam", core.NewVec3(0, -10, 2), 50, 2.8, "T", core.Vec3{})
	c.Active = true
	require.NoError(t, b.AddCamera(c))

	_, err := b.Freeze()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "volume material")
}

func TestBuilder_FrozenIsIndependent(t *testing.T) {
	b, gen := newTestBuilder(t)
	require.NoError(t, b.AddShape(geometry.Target("T", core.Vec3{})))
	require.NoError(t, b.AddMaterial(gen.Fuzzy("F", core.RGB(1, 0, 0), core.RGB(0, 0, 1), 2)))
	require.NoError(t, b.AddShape(geometry.FuzzySphere(config.DefaultFuzzySphere().Sphere, "F")))
	require.NoError(t, b.SetWorld(material.NewWorld(config.DefaultFuzzySphere().Background)))
	require.NoError(t, b.AddLight(lights.Dramatic(10, 0.1)[0]))
	c := camera.NewCamera("Cam", core.NewVec3(0, -10, 2), 50, 2.8, "T", core.Vec3{})
	c.Active = true
	require.NoError(t, b.AddCamera(c))

	s, err := b.Freeze()
	require.NoError(t, err)

	s.Materials[0].Graph.Nodes[0].Inputs["tampered"] = true
	s.Shapes[1].Modifiers[1].Texture.Scale = 42
	assert.NotContains(t, b.scene.Materials[0].Graph.Nodes[0].Inputs, "tampered")
	assert.Equal(t, 0.3, b.scene.Shapes[1].Modifiers[1].Texture.Scale)

	assert.True(t, errors.Is(b.AddLight(lights.Dramatic(1, 0.1)[0]), ErrFrozen))
	assert.True(t, errors.Is(b.SetAnimation(nil), ErrFrozen))
	_, err = b.Freeze()
	assert.True(t, errors.Is(err, ErrFrozen))
}

func TestBuildAll_PreservesOrder(t *testing.T) {
	tasks := []BuildTask{
		{Name: "studio", Config: config.DefaultStudioShapes()},
		{Name: "fuzzy", Config: config.DefaultFuzzySphere()},
		{Name: "broken", Config: func() config.SceneConfig {
			c := config.DefaultFuzzySphere()
			c.Render.Samples = 0
			return c
		}()},
	}

	results := BuildAll(tasks, 2, nil)
	require.Len(t, results, 3)
	assert.Equal(t, "studio", results[0].Name)
	assert.Equal(t, StudioSceneName, results[0].Scene.Name)
	assert.Equal(t, FuzzySphereSceneName, results[1].Scene.Name)
	assert.Error(t, results[2].Error)
	assert.Nil(t, results[2].Scene)
}
