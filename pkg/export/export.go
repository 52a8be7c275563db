// Package export writes frozen scenes as JSON, YAML or PBRT-v4 scene files
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/df07/go-scene-builder/pkg/scene"
)

// Format is an output encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatPBRT Format = "pbrt"
)

// Formats lists every supported encoding
var Formats = []Format{FormatJSON, FormatYAML, FormatPBRT}

// ParseFormat accepts a format name in any case; "yml" is an alias of yaml
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatJSON, FormatYAML, FormatPBRT:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown export format %q (want json, yaml or pbrt)", name)
}

// Extension returns the file extension of the format, without the dot
func (f Format) Extension() string {
	return string(f)
}

// ContentType returns the HTTP content type of the format
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatYAML:
		return "application/yaml"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Write encodes s to w
func Write(w io.Writer, s *scene.Scene, format Format) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, s)
	case FormatYAML:
		return WriteYAML(w, s)
	case FormatPBRT:
		return WritePBRT(w, s)
	}
	return fmt.Errorf("unknown export format %q", format)
}

// WriteJSON writes s as indented JSON
func WriteJSON(w io.Writer, s *scene.Scene) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// WriteYAML writes s as YAML
func WriteYAML(w io.Writer, s *scene.Scene) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
