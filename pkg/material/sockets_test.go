package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSockets(t *testing.T) {
	tests := []struct {
		version string
		param   Param
		want    string
		ok      bool
	}{
		{"4.2.0", ParamSpecular, "Specular IOR Level", true},
		{"3.6.5", ParamSpecular, "Specular", true},
		{"4.0.0", ParamTransmission, "Transmission Weight", true},
		{"3.6.0", ParamTransmission, "Transmission", true},
		{"4.1.0", ParamEmissionColor, "Emission Color", true},
		{"2.93.0", ParamEmissionColor, "Emission", true},
		{"4.2.0", ParamSubsurfaceColor, "", false},
		{"3.0.0", ParamSubsurfaceColor, "Subsurface Color", true},
		{"2.80.0", ParamEmissionStrength, "", false},
		{"4.2.0", ParamBaseColor, "Base Color", true},
	}

	for _, tt := range tests {
		t.Run(tt.version+"/"+string(tt.param), func(t *testing.T) {
			table, err := ResolveSockets(tt.version)
			require.NoError(t, err)
			got, ok := table.Socket(tt.param)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveSockets_Denoisers(t *testing.T) {
	modern, err := ResolveSockets("4.2.0")
	require.NoError(t, err)
	assert.Equal(t, []string{"OPENIMAGEDENOISE", "OPTIX"}, modern.Denoisers)
	assert.False(t, modern.HasDenoiser("NLM"))

	legacy, err := ResolveSockets("2.80.0")
	require.NoError(t, err)
	assert.Equal(t, []string{"NLM"}, legacy.Denoisers)
}

func TestResolveSockets_InvalidVersion(t *testing.T) {
	_, err := ResolveSockets("not-a-version")
	assert.Error(t, err)
}

func TestSocketTable_Unsupported(t *testing.T) {
	table, err := ResolveSockets("4.2.0")
	require.NoError(t, err)
	assert.Equal(t, []Param{ParamSubsurfaceColor}, table.Unsupported())
}
