package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-scene-builder/pkg/config"
	"github.com/df07/go-scene-builder/pkg/material"
)

func sockets(t *testing.T, version string) *material.SocketTable {
	t.Helper()
	table, err := material.ResolveSockets(version)
	require.NoError(t, err)
	return table
}

func TestResolve_Cycles(t *testing.T) {
	cfg := config.DefaultFuzzySphere().Render
	s, err := Resolve(cfg, sockets(t, "4.2.0"), 120, nil)
	require.NoError(t, err)

	require.NotNil(t, s.Cycles)
	assert.Nil(t, s.Eevee)
	assert.Equal(t, 750, s.Cycles.Samples)
	assert.True(t, s.Cycles.UseDenoising)
	assert.Equal(t, "OPENIMAGEDENOISE", s.Cycles.Denoiser)
	assert.Equal(t, 1920, s.ResolutionX)
	assert.Equal(t, 1080, s.ResolutionY)
	assert.Equal(t, 100, s.ResolutionPercentage)
	assert.Equal(t, 1, s.FrameStart)
	assert.Equal(t, 120, s.FrameEnd)
	assert.Equal(t, 750, s.Samples())
}

func TestResolve_Eevee(t *testing.T) {
	cfg := config.DefaultFuzzySphere().Render
	cfg.Engine = config.EngineEevee
	cfg.Samples = 64
	s, err := Resolve(cfg, sockets(t, "4.2.0"), 0, nil)
	require.NoError(t, err)

	assert.Nil(t, s.Cycles)
	require.NotNil(t, s.Eevee)
	assert.Equal(t, 64, s.Eevee.TAARenderSamples)
	assert.True(t, s.Eevee.UseSoftShadows)
	assert.Equal(t, 1, s.FrameEnd)
}

func TestResolve_UnknownEngine(t *testing.T) {
	cfg := config.DefaultFuzzySphere().Render
	cfg.Engine = "WORKBENCH"
	_, err := Resolve(cfg, sockets(t, "4.2.0"), 1, nil)
	assert.Error(t, err)
}

func TestResolve_NormalizesEngineCase(t *testing.T) {
	cfg := config.DefaultFuzzySphere().Render
	cfg.Engine = "eevee"
	s, err := Resolve(cfg, sockets(t, "4.2.0"), 1, nil)
	require.NoError(t, err)
	assert.Equal(t, config.EngineEevee, s.Engine)
	assert.NotNil(t, s.Eevee)
}

func TestResolve_MotionBlur(t *testing.T) {
	cfg := config.DefaultStudioShapes().Render
	s, err := Resolve(cfg, sockets(t, "4.2.0"), 1, nil)
	require.NoError(t, err)
	assert.True(t, s.MotionBlur)
	assert.Equal(t, 0.5, s.MotionBlurShutter)
	assert.Equal(t, "Standard", s.ViewTransform)
}

func TestChooseDenoiser(t *testing.T) {
	tests := []struct {
		name      string
		available []string
		want      string
	}{
		{"prefers oidn", []string{"OPTIX", "OPENIMAGEDENOISE"}, "OPENIMAGEDENOISE"},
		{"optix second", []string{"NLM", "OPTIX"}, "OPTIX"},
		{"first available", []string{"NLM"}, "NLM"},
		{"none", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ChooseDenoiser(tt.available))
		})
	}
}
