package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a config file encoding
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the encoding from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("config: unsupported file extension %q (want .toml, .yaml, .yml or .json)", filepath.Ext(path))
}

// Load reads a config file, overlays it on the defaults of the preset it
// names (fuzzy-sphere when it names none) and validates the result
func Load(path string) (SceneConfig, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return SceneConfig{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return SceneConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data, format)
	if err != nil {
		return SceneConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes config data in the given format. Unknown keys are rejected.
func Parse(data []byte, format Format) (SceneConfig, error) {
	// First pass: only the preset, to pick the defaults to overlay on
	var head struct {
		Preset string `json:"preset" yaml:"preset" toml:"preset"`
	}
	if err := decode(data, format, &head, false); err != nil {
		return SceneConfig{}, err
	}

	preset := PresetFuzzySphere
	if head.Preset != "" {
		p, err := ParsePreset(head.Preset)
		if err != nil {
			return SceneConfig{}, err
		}
		preset = p
	}

	base, err := Default(preset)
	if err != nil {
		return SceneConfig{}, err
	}

	// A rig given in the file replaces the default table instead of merging
	// into it row by row.
	cfg := base
	cfg.Camera.Rig = nil
	if err := decode(data, format, &cfg, true); err != nil {
		return SceneConfig{}, err
	}
	if cfg.Camera.Rig == nil {
		cfg.Camera.Rig = base.Camera.Rig
	}
	cfg.Preset = preset

	if engine, err := ParseEngine(string(cfg.Render.Engine)); err == nil {
		cfg.Render.Engine = engine
	}

	if err := cfg.Validate(); err != nil {
		return SceneConfig{}, err
	}
	return cfg, nil
}

func decode(data []byte, format Format, out interface{}, strict bool) error {
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		if strict {
			dec.DisallowUnknownFields()
		}
		if err := dec.Decode(out); err != nil {
			return fmt.Errorf("config: invalid TOML: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(strict)
		if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("config: invalid YAML: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		if strict {
			dec.DisallowUnknownFields()
		}
		if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("config: invalid JSON: %w", err)
		}
	default:
		return fmt.Errorf("config: unsupported format %q", format)
	}
	return nil
}

// Marshal encodes a config in the given format
func Marshal(cfg SceneConfig, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		return toml.Marshal(cfg)
	case FormatYAML:
		return yaml.Marshal(cfg)
	case FormatJSON:
		return json.MarshalIndent(cfg, "", "  ")
	}
	return nil, fmt.Errorf("config: unsupported format %q", format)
}
