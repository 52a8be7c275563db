package export

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/df07/go-scene-builder/pkg/config"
	"github.com/df07/go-scene-builder/pkg/core"
	"github.com/df07/go-scene-builder/pkg/scene"
)

func buildScene(t *testing.T, cfg config.SceneConfig) *scene.Scene {
	t.Helper()
	s, err := scene.Build(cfg, nil)
	require.NoError(t, err)
	return s
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"YAML", FormatYAML, false},
		{"yml", FormatYAML, false},
		{" pbrt ", FormatPBRT, false},
		{"obj", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteJSON(t *testing.T) {
	s := buildScene(t, config.DefaultFuzzySphere())

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, s, FormatJSON))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Fuzzy_Sphere", decoded["name"])
	assert.Len(t, decoded["shapes"], len(s.Shapes))
	assert.Len(t, decoded["materials"], len(s.Materials))
	assert.Contains(t, decoded, "animation")

	render, ok := decoded["render"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, render, "cycles")
	assert.NotContains(t, render, "eevee")
}

func TestWriteYAML(t *testing.T) {
	s := buildScene(t, config.DefaultStudioShapes())

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, s, FormatYAML))

	var decoded struct {
		Name    string `yaml:"name"`
		Cameras []struct {
			Name   string `yaml:"name"`
			Active bool   `yaml:"active"`
		} `yaml:"cameras"`
		Animation interface{} `yaml:"animation"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Studio_Geometric_Shapes", decoded.Name)
	require.Len(t, decoded.Cameras, 4)
	assert.True(t, decoded.Cameras[0].Active)
	assert.Nil(t, decoded.Animation)
}

func TestWritePBRT_FuzzySphere(t *testing.T) {
	s := buildScene(t, config.DefaultFuzzySphere())

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, s, FormatPBRT))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "# Scene: Fuzzy_Sphere\n"))
	assert.Contains(t, out, "WorldBegin")
	assert.Contains(t, out, `Shape "sphere" "float radius" [ 2 ]`)
	assert.Contains(t, out, "Translate 0 0 -2.1")
	assert.Contains(t, out, `MakeNamedMedium "FogMaterial"`)
	assert.Contains(t, out, `MediumInterface "FogMaterial" ""`)
	assert.Contains(t, out, `Sampler "zsobol" "integer pixelsamples" [ 750 ]`)
	assert.Contains(t, out, `"integer xresolution" [ 1920 ]`)
	assert.Contains(t, out, "# modifier DISPLACE")
	assert.Equal(t, 150, strings.Count(out, `AreaLightSource "diffuse" "rgb L" [ 1 0.8 0.2 ]`))
	assert.Equal(t, strings.Count(out, "AttributeBegin"), strings.Count(out, "AttributeEnd"))
}

func TestWritePBRT_Studio(t *testing.T) {
	s := buildScene(t, config.DefaultStudioShapes())

	var buf bytes.Buffer
	require.NoError(t, WritePBRT(&buf, s))
	out := buf.String()

	assert.Contains(t, out, "LookAt 12 -12 3  0 0 0  0 0 1")
	assert.Contains(t, out, `"string type" [ "conductor" ]`)
	assert.Contains(t, out, `"string type" [ "dielectric" ] "float eta" [ 1.45 ]`)
	assert.Contains(t, out, `Shape "trianglemesh"`)
	assert.Contains(t, out, `LightSource "spotlight"`)
	assert.Equal(t, 3, strings.Count(out, "ReverseOrientation"), "one per area light")
}

func TestPBRTStatement_String(t *testing.T) {
	stmt := PBRTStatement{Type: "Shape", Subtype: "sphere", Parameters: []PBRTParam{
		floatParam("radius", 0.5),
		stringParam("name", "ball"),
	}}
	assert.Equal(t, `Shape "sphere" "float radius" [ 0.5 ] "string name" [ "ball" ]`, stmt.String())
}

func TestFieldOfView(t *testing.T) {
	want := 2 * math.Atan(18*1080.0/1920.0/50) * 180 / math.Pi
	assert.InDelta(t, want, FieldOfView(50, 1920, 1080), 1e-9)
	assert.InDelta(t, FieldOfView(50, 1920, 1080), FieldOfView(50, 1080, 1920), 1e-9)
}

func TestDirection(t *testing.T) {
	tests := []struct {
		name string
		rot  core.Vec3
		want core.Vec3
	}{
		{"rest", core.Vec3{}, core.NewVec3(0, 0, -1)},
		{"tilt x", core.NewVec3(math.Pi/2, 0, 0), core.NewVec3(0, 1, 0)},
		{"tilt y", core.NewVec3(0, math.Pi/2, 0), core.NewVec3(-1, 0, 0)},
		{"tilt x then z", core.NewVec3(math.Pi/2, 0, math.Pi/2), core.NewVec3(-1, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Direction(tt.rot)
			assert.InDelta(t, 0, got.Distance(tt.want), 1e-9, "got %v", got)
		})
	}
}
