package export

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-scene-builder/pkg/config"
)

func TestTokenizePBRT(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{`WorldBegin`, []string{"WorldBegin"}},
		{`Translate 0 0 -2.1`, []string{"Translate", "0", "0", "-2.1"}},
		{`Shape "sphere" "float radius" [ 2 ]`, []string{"Shape", `"sphere"`, `"float radius"`, "[ 2 ]"}},
		{`NamedMaterial "Fog Material"`, []string{"NamedMaterial", `"Fog Material"`}},
		{`Film "rgb" "string filename" [ "a b.exr" ]`, []string{"Film", `"rgb"`, `"string filename"`, `[ "a b.exr" ]`}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, tokenizePBRT(tt.line))
		})
	}
}

func TestParseStatement(t *testing.T) {
	stmt, err := parseStatement(`LightSource "spotlight" "point3 from" [ 0 8 5 ] "float coneangle" [ 15 ] "float power" 1200`)
	require.NoError(t, err)
	assert.Equal(t, "LightSource", stmt.Type)
	assert.Equal(t, "spotlight", stmt.Subtype)

	from, ok := stmt.Param("from")
	require.True(t, ok)
	pos, err := from.Floats()
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 8, 5}, pos)

	power, ok := stmt.Param("power")
	require.True(t, ok)
	assert.Equal(t, []string{"1200"}, power.Values)

	_, err = parseStatement(`Shape "sphere" "float radius"`)
	assert.Error(t, err)
}

func TestReadPBRT_RoundTrip(t *testing.T) {
	for _, cfg := range []config.SceneConfig{config.DefaultFuzzySphere(), config.DefaultStudioShapes()} {
		t.Run(string(cfg.Preset), func(t *testing.T) {
			s := buildScene(t, cfg)
			var buf bytes.Buffer
			require.NoError(t, WritePBRT(&buf, s))

			stmts, err := ReadPBRT(bytes.NewReader(buf.Bytes()))
			require.NoError(t, err)

			// Every typed statement is reproduced by String
			var written []string
			scanner := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if strings.Contains(line, `" "`) || strings.HasPrefix(line, "Texture") || strings.HasPrefix(line, "MediumInterface") {
					written = append(written, line)
				}
			}
			var reproduced []string
			for _, stmt := range stmts {
				if stmt.Subtype != "" && len(stmt.Parameters) > 0 && stmt.Type != "Texture" {
					reproduced = append(reproduced, stmt.String())
				}
			}
			for _, line := range reproduced {
				assert.Contains(t, written, line)
			}

			var depth, shapes int
			for _, stmt := range stmts {
				switch stmt.Type {
				case "AttributeBegin":
					depth++
				case "AttributeEnd":
					depth--
					require.GreaterOrEqual(t, depth, 0)
				case "Shape":
					shapes++
				}
			}
			assert.Equal(t, 0, depth)
			assert.NotZero(t, shapes)
		})
	}
}

func TestCheckPBRT(t *testing.T) {
	s := buildScene(t, config.DefaultStudioShapes())
	var buf bytes.Buffer
	require.NoError(t, WritePBRT(&buf, s))

	sum, err := CheckPBRT(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.NotZero(t, sum.Shapes)
	assert.NotZero(t, sum.Lights)
	assert.Greater(t, sum.Statements, sum.Shapes+sum.Lights)

	tests := []struct {
		name  string
		input string
	}{
		{"no world", "Film \"rgb\"\n"},
		{"unbalanced end", "WorldBegin\nAttributeEnd\n"},
		{"unclosed begin", "WorldBegin\nAttributeBegin\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CheckPBRT(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestReadPBRT_FuzzySphereValues(t *testing.T) {
	s := buildScene(t, config.DefaultFuzzySphere())
	var buf bytes.Buffer
	require.NoError(t, WritePBRT(&buf, s))

	stmts, err := ReadPBRT(&buf)
	require.NoError(t, err)

	var lookAt []float64
	var radii []float64
	for _, stmt := range stmts {
		switch {
		case stmt.Type == "LookAt":
			require.Len(t, stmt.Parameters, 1)
			lookAt, err = stmt.Parameters[0].Floats()
			require.NoError(t, err)
		case stmt.Type == "Shape" && stmt.Subtype == "sphere":
			p, ok := stmt.Param("radius")
			require.True(t, ok)
			r, err := p.Floats()
			require.NoError(t, err)
			radii = append(radii, r[0])
		}
	}

	require.Len(t, lookAt, 9)
	assert.Equal(t, []float64{0, 0, 1}, lookAt[6:])
	require.Len(t, radii, 151, "the fuzzy sphere plus 150 particles")
	assert.Equal(t, 2.0, radii[0])
	assert.Equal(t, 0.05, radii[1])
}
