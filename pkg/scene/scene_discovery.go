package scene

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/df07/go-scene-builder/pkg/config"
)

const builtInGroup = "Built-in Scenes"

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Scene name
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
	Type        string `json:"type"`        // "builtin" or "config"
	FilePath    string `json:"filePath"`    // Path to config file (config type only)
	Variant     string `json:"variant"`     // Variant name (optional)
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// ScenesResponse represents the complete response for /api/scenes
type ScenesResponse struct {
	Groups []SceneGroup `json:"groups"`
}

var presetDescriptions = map[config.Preset]string{
	config.PresetFuzzySphere:  "Displaced fuzzy sphere with fog, glowing particles and spin",
	config.PresetStudioShapes: "Cube, tetrahedron and sphere under four-point studio lighting",
}

// BuiltInScenes lists the presets
func BuiltInScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(config.Presets))
	for _, p := range config.Presets {
		name := titleCase(string(p))
		scenes = append(scenes, SceneInfo{
			ID:          string(p),
			Name:        name,
			DisplayName: name,
			Description: presetDescriptions[p],
			Group:       builtInGroup,
			Type:        "builtin",
		})
	}
	return scenes
}

// ListConfigScenes scans dir for scene config files. A missing directory
// yields no scenes.
func ListConfigScenes(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); err != nil {
		return []SceneInfo{}, nil
	}

	var files []string
	for _, ext := range []string{"*.toml", "*.yaml", "*.yml", "*.json"} {
		matches, err := filepath.Glob(filepath.Join(dir, ext))
		if err != nil {
			return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
		}
		files = append(files, matches...)
	}

	var scenes []SceneInfo
	for _, filePath := range files {
		sceneInfo, err := ParseConfigMetadata(filePath)
		if err != nil {
			fmt.Printf("Warning: failed to parse metadata for %s: %v\n", filePath, err)
			continue
		}
		scenes = append(scenes, sceneInfo)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})

	return scenes, nil
}

// ParseConfigMetadata extracts metadata from the header comments of a config file
func ParseConfigMetadata(filePath string) (SceneInfo, error) {
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	sceneInfo := SceneInfo{
		ID:          "config:" + nameWithoutExt,
		Name:        titleCase(nameWithoutExt),
		DisplayName: titleCase(nameWithoutExt),
		Group:       "Config Scenes",
		Type:        "config",
		FilePath:    filePath,
	}

	file, err := os.Open(filePath)
	if err != nil {
		// Unreadable files keep their fallback values
		return sceneInfo, nil
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Metadata lives in the leading comment block
		if !strings.HasPrefix(line, "#") {
			break
		}
		content := strings.TrimSpace(strings.TrimPrefix(line, "#"))

		switch {
		case strings.HasPrefix(content, "Scene:"):
			sceneInfo.Name = strings.TrimSpace(strings.TrimPrefix(content, "Scene:"))
		case strings.HasPrefix(content, "Variant:"):
			sceneInfo.Variant = strings.TrimSpace(strings.TrimPrefix(content, "Variant:"))
		case strings.HasPrefix(content, "Description:"):
			sceneInfo.Description = strings.TrimSpace(strings.TrimPrefix(content, "Description:"))
		case strings.HasPrefix(content, "Group:"):
			sceneInfo.Group = strings.TrimSpace(strings.TrimPrefix(content, "Group:"))
		}
	}

	if sceneInfo.Variant != "" {
		sceneInfo.DisplayName = fmt.Sprintf("%s - %s", sceneInfo.Name, sceneInfo.Variant)
	} else {
		sceneInfo.DisplayName = sceneInfo.Name
	}

	return sceneInfo, scanner.Err()
}

// ListAllScenes returns built-in and config scenes, grouped by category
func ListAllScenes(dir string) (ScenesResponse, error) {
	var response ScenesResponse

	configScenes, err := ListConfigScenes(dir)
	if err != nil {
		return response, fmt.Errorf("failed to list config scenes: %w", err)
	}

	groupMap := make(map[string][]SceneInfo)
	for _, scene := range append(BuiltInScenes(), configScenes...) {
		groupMap[scene.Group] = append(groupMap[scene.Group], scene)
	}

	// Built-in first, then alphabetical
	var groupNames []string
	for groupName := range groupMap {
		if groupName != builtInGroup {
			groupNames = append(groupNames, groupName)
		}
	}
	sort.Strings(groupNames)

	if builtIn, exists := groupMap[builtInGroup]; exists {
		response.Groups = append(response.Groups, SceneGroup{Name: builtInGroup, Scenes: builtIn})
	}
	for _, groupName := range groupNames {
		response.Groups = append(response.Groups, SceneGroup{Name: groupName, Scenes: groupMap[groupName]})
	}

	return response, nil
}

// FindScene looks a scene up by ID among the presets and the config files in dir
func FindScene(id, dir string) (SceneInfo, error) {
	all, err := ListAllScenes(dir)
	if err != nil {
		return SceneInfo{}, err
	}
	for _, g := range all.Groups {
		for _, s := range g.Scenes {
			if s.ID == id {
				return s, nil
			}
		}
	}
	if strings.HasPrefix(id, "config:") {
		return SceneInfo{}, fmt.Errorf("scene %q not found in %s", id, dir)
	}
	// Accept preset aliases such as "fuzzy_sphere"
	p, err := config.ParsePreset(id)
	if err != nil {
		return SceneInfo{}, err
	}
	return FindScene(string(p), dir)
}

// Config returns the configuration the scene is built from
func (s SceneInfo) Config() (config.SceneConfig, error) {
	if s.Type == "config" {
		return config.Load(s.FilePath)
	}
	return config.Default(config.Preset(s.ID))
}

var titleCaser = cases.Title(language.English)

// titleCase converts a filename-style string to title case
// e.g., "fuzzy-sphere" -> "Fuzzy Sphere"
func titleCase(s string) string {
	s = strings.NewReplacer("-", " ", "_", " ").Replace(s)
	return titleCaser.String(strings.Join(strings.Fields(s), " "))
}
