package material

import (
	"fmt"
	"sort"

	"github.com/Masterminds/semver/v3"
)

// Param is a logical shader parameter, independent of the host's socket naming
type Param string

const (
	ParamBaseColor        Param = "base_color"
	ParamRoughness        Param = "roughness"
	ParamMetallic         Param = "metallic"
	ParamSpecular         Param = "specular"
	ParamTransmission     Param = "transmission"
	ParamIOR              Param = "ior"
	ParamAlpha            Param = "alpha"
	ParamSubsurfaceWeight Param = "subsurface_weight"
	ParamSubsurfaceRadius Param = "subsurface_radius"
	ParamSubsurfaceColor  Param = "subsurface_color"
	ParamEmissionColor    Param = "emission_color"
	ParamEmissionStrength Param = "emission_strength"
	ParamNormal           Param = "normal"
)

// candidate is a concrete socket name and the host versions that provide it
type candidate struct {
	socket     string
	constraint string
}

// principledSockets maps each logical parameter to its candidate sockets on the
// principled BSDF, most recent naming first
var principledSockets = map[Param][]candidate{
	ParamBaseColor: {{"Base Color", "*"}},
	ParamRoughness: {{"Roughness", "*"}},
	ParamMetallic:  {{"Metallic", "*"}},
	ParamSpecular: {
		{"Specular IOR Level", ">= 4.0"},
		{"Specular", "< 4.0"},
	},
	ParamTransmission: {
		{"Transmission Weight", ">= 4.0"},
		{"Transmission", "< 4.0"},
	},
	ParamIOR:   {{"IOR", "*"}},
	ParamAlpha: {{"Alpha", ">= 2.81"}},
	ParamSubsurfaceWeight: {
		{"Subsurface Weight", ">= 4.0"},
		{"Subsurface", "< 4.0"},
	},
	ParamSubsurfaceRadius: {{"Subsurface Radius", "*"}},
	// removed in 4.0, subsurface takes the base colour
	ParamSubsurfaceColor: {{"Subsurface Color", "< 4.0"}},
	ParamEmissionColor: {
		{"Emission Color", ">= 4.0"},
		{"Emission", "< 4.0"},
	},
	ParamEmissionStrength: {{"Emission Strength", ">= 2.91"}},
	ParamNormal:           {{"Normal", "*"}},
}

// denoiserCandidates lists Cycles denoisers and the versions that ship them
var denoiserCandidates = []candidate{
	{"OPENIMAGEDENOISE", ">= 2.81"},
	{"OPTIX", ">= 2.90"},
	{"NLM", "< 3.0"},
}

// SocketTable is the capability table for one host version: the concrete
// socket name of every logical parameter the host supports, and its denoisers.
// It is resolved once and read-only afterwards.
type SocketTable struct {
	Version   *semver.Version
	sockets   map[Param]string
	Denoisers []string
}

// ResolveSockets builds the capability table for the given host version
func ResolveSockets(version string) (*SocketTable, error) {
	v, err := semver.NewVersion(version)
	if err != nil {
		return nil, fmt.Errorf("invalid host version %q: %w", version, err)
	}

	table := &SocketTable{
		Version: v,
		sockets: make(map[Param]string, len(principledSockets)),
	}

	for param, candidates := range principledSockets {
		socket, ok, err := firstMatch(v, candidates)
		if err != nil {
			return nil, fmt.Errorf("socket %s: %w", param, err)
		}
		if ok {
			table.sockets[param] = socket
		}
	}

	for _, c := range denoiserCandidates {
		ok, err := matches(v, c.constraint)
		if err != nil {
			return nil, fmt.Errorf("denoiser %s: %w", c.socket, err)
		}
		if ok {
			table.Denoisers = append(table.Denoisers, c.socket)
		}
	}

	return table, nil
}

// Socket returns the concrete socket name for a logical parameter, or false if
// the host has no equivalent input
func (t *SocketTable) Socket(p Param) (string, bool) {
	s, ok := t.sockets[p]
	return s, ok
}

// HasDenoiser reports whether the host provides the named denoiser
func (t *SocketTable) HasDenoiser(name string) bool {
	for _, d := range t.Denoisers {
		if d == name {
			return true
		}
	}
	return false
}

// Unsupported returns the logical parameters the host has no socket for, sorted
func (t *SocketTable) Unsupported() []Param {
	var missing []Param
	for p := range principledSockets {
		if _, ok := t.sockets[p]; !ok {
			missing = append(missing, p)
		}
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
	return missing
}

func firstMatch(v *semver.Version, candidates []candidate) (string, bool, error) {
	for _, c := range candidates {
		ok, err := matches(v, c.constraint)
		if err != nil {
			return "", false, err
		}
		if ok {
			return c.socket, true, nil
		}
	}
	return "", false, nil
}

func matches(v *semver.Version, constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, err
	}
	return c.Check(v), nil
}
