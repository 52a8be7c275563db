package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/muesli/termenv"

	"github.com/df07/go-scene-builder/pkg/config"
	"github.com/df07/go-scene-builder/pkg/core"
	"github.com/df07/go-scene-builder/pkg/export"
	"github.com/df07/go-scene-builder/pkg/scene"
)

const (
	scenesDir     = "scenes"
	formatSummary = "summary"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", string(config.PresetFuzzySphere), "Scene: a preset name, a config file path, or 'all'")
	configPath := flag.String("config", "", "Config file (TOML or YAML) to build instead of -scene")
	format := flag.String("format", "json", "Output format: json, yaml, pbrt or summary")
	outputRoot := flag.String("output", "output", "Root directory for written descriptors")
	watch := flag.Bool("watch", false, "Rebuild whenever the config file changes")
	initPath := flag.String("init", "", "Write a starter config for -scene's preset to this path and exit")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		printHelp(os.Stdout)
		return
	}

	if *format != formatSummary {
		if _, err := export.ParseFormat(*format); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(2)
		}
	}

	logger := log.Default()
	out := termenv.NewOutput(os.Stdout)

	if *initPath != "" {
		if err := writeStarter(*initPath, *sceneType); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(out, "%s %s\n", out.String("Starter config written to").Foreground(out.Color("2")), *initPath)
		return
	}

	if *sceneType == "all" && *configPath == "" {
		if err := buildAll(out, *format, *outputRoot, logger); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	source := *sceneType
	if *configPath != "" {
		source = *configPath
	}

	if err := run(out, source, *format, *outputRoot, logger); err != nil {
		fmt.Printf("Error: %v\n", err)
		if !*watch {
			os.Exit(1)
		}
	}

	if *watch {
		if !isConfigFile(source) {
			fmt.Printf("Error: -watch needs a config file, got %q\n", source)
			os.Exit(2)
		}
		if err := watchConfig(source, func() {
			if err := run(out, source, *format, *outputRoot, logger); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
		}, logger); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "Scene Builder")
	fmt.Fprintln(w, "Usage: scene-builder [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	flag.CommandLine.SetOutput(w)
	flag.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.BuiltInScenes() {
		fmt.Fprintf(w, "  %-14s - %s\n", info.ID, info.Description)
	}
	if configs, err := scene.ListConfigScenes(scenesDir); err == nil {
		for _, info := range configs {
			fmt.Fprintf(w, "  %-14s - %s\n", info.FilePath, info.Description)
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output will be saved to output/<scene>/scene_<timestamp>.<format>")
}

// run builds one scene and writes it in the requested format
func run(out *termenv.Output, source, format, outputRoot string, logger core.Logger) error {
	cfg, err := loadConfig(source)
	if err != nil {
		return err
	}
	start := time.Now()
	s, err := scene.Build(cfg, logger)
	if err != nil {
		return err
	}
	return emit(out, s, sceneBaseName(source), format, outputRoot, time.Since(start))
}

func emit(out *termenv.Output, s *scene.Scene, name, format, outputRoot string, elapsed time.Duration) error {
	if format == formatSummary {
		printSummary(out, s, elapsed)
		return nil
	}
	f, err := export.ParseFormat(format)
	if err != nil {
		return err
	}
	filename, err := writeScene(s, f, createOutputDir(outputRoot, name))
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s %s in %v\n", out.String("Scene saved as").Foreground(out.Color("2")), filename, elapsed)
	if f == export.FormatPBRT {
		sum, err := verifyPBRT(filename)
		if err != nil {
			return fmt.Errorf("written file %s does not read back: %w", filename, err)
		}
		fmt.Fprintf(out, "  %d statements, %d shapes, %d lights\n", sum.Statements, sum.Shapes, sum.Lights)
	}
	return nil
}

// verifyPBRT reads a written PBRT file back through the statement parser
func verifyPBRT(filename string) (export.PBRTSummary, error) {
	file, err := os.Open(filename)
	if err != nil {
		return export.PBRTSummary{}, err
	}
	defer file.Close()
	return export.CheckPBRT(file)
}

// writeStarter writes the defaults of a preset to path, encoded by the path's
// extension. An existing file is never overwritten.
func writeStarter(path, presetName string) error {
	format, err := config.FormatFromPath(path)
	if err != nil {
		return err
	}
	preset, err := config.ParsePreset(presetName)
	if err != nil {
		return err
	}
	cfg, err := config.Default(preset)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg, format)
	if err != nil {
		return err
	}

	// JSON has no comments, so only TOML and YAML carry the discovery header
	if format != config.FormatJSON {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		header := fmt.Sprintf("# Scene: %s\n# Description: Starter config for the %s preset\n\n", name, preset)
		data = append([]byte(header), data...)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("error creating starter config: %w", err)
	}
	defer file.Close()
	if _, err := file.Write(data); err != nil {
		return err
	}
	return file.Close()
}

// buildAll builds every preset and config scene in parallel
func buildAll(out *termenv.Output, format, outputRoot string, logger core.Logger) error {
	all, err := scene.ListAllScenes(scenesDir)
	if err != nil {
		return err
	}
	var tasks []scene.BuildTask
	for _, g := range all.Groups {
		for _, info := range g.Scenes {
			cfg, err := info.Config()
			if err != nil {
				fmt.Fprintf(out, "%s %s: %v\n", out.String("Skipping").Foreground(out.Color("3")), info.ID, err)
				continue
			}
			name := info.ID
			if info.Type == "config" {
				name = sceneBaseName(info.FilePath)
			}
			tasks = append(tasks, scene.BuildTask{Name: name, Config: cfg})
		}
	}

	start := time.Now()
	results := scene.BuildAll(tasks, 0, logger)
	elapsed := time.Since(start)

	var failed int
	for _, r := range results {
		if r.Error != nil {
			failed++
			fmt.Fprintf(out, "%s %s: %v\n", out.String("Failed").Foreground(out.Color("1")), r.Name, r.Error)
			continue
		}
		if err := emit(out, r.Scene, r.Name, format, outputRoot, elapsed); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d scenes failed to build", failed, len(results))
	}
	return nil
}

// loadConfig resolves a preset name, a scene ID or a config file path
func loadConfig(source string) (config.SceneConfig, error) {
	if source == "" {
		return config.SceneConfig{}, fmt.Errorf("no scene given")
	}
	if isConfigFile(source) {
		return config.Load(source)
	}
	info, err := scene.FindScene(source, scenesDir)
	if err != nil {
		return config.SceneConfig{}, fmt.Errorf("unknown scene %q: %w", source, err)
	}
	return info.Config()
}

func isConfigFile(source string) bool {
	_, err := config.FormatFromPath(source)
	return err == nil
}

// sceneBaseName returns the output directory name for a scene source
func sceneBaseName(source string) string {
	if isConfigFile(source) {
		base := filepath.Base(source)
		return strings.TrimSuffix(base, filepath.Ext(base))
	}
	if p, err := config.ParsePreset(source); err == nil {
		return string(p)
	}
	return strings.TrimPrefix(source, "config:")
}

// createOutputDir returns output/<scene>
func createOutputDir(root, name string) string {
	return filepath.Join(root, name)
}

// writeScene writes s into dir as scene_<timestamp>.<ext>
func writeScene(s *scene.Scene, format export.Format, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(dir, fmt.Sprintf("scene_%s.%s", timestamp, format.Extension()))

	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("error creating file: %w", err)
	}
	defer file.Close()

	if err := export.Write(file, s, format); err != nil {
		return "", err
	}
	return filename, file.Close()
}

func printSummary(out *termenv.Output, s *scene.Scene, elapsed time.Duration) {
	heading := out.String(s.Name).Bold().Foreground(out.Color("6"))
	label := func(l string) termenv.Style { return out.String(fmt.Sprintf("  %-10s", l)).Faint() }

	st := s.Stats()
	fmt.Fprintf(out, "%s (%s, host %s, built in %v)\n", heading, s.Preset, s.HostVersion, elapsed)
	fmt.Fprintf(out, "%s %d (%d particles)\n", label("shapes"), st.Shapes, st.Particles)
	fmt.Fprintf(out, "%s %d (%d nodes, %d links)\n", label("materials"), st.Materials, st.Nodes, st.Links)
	fmt.Fprintf(out, "%s %d\n", label("lights"), st.Lights)
	if cam, ok := s.ActiveCamera(); ok {
		fmt.Fprintf(out, "%s %d, active %s (%.0fmm f/%.1f)\n", label("cameras"), st.Cameras, cam.Name, cam.Lens, cam.FStop)
	}
	fmt.Fprintf(out, "%s %s, %d samples, %dx%d\n", label("render"),
		s.Render.Engine, s.Render.Samples(), s.Render.ResolutionX, s.Render.ResolutionY)
	if s.Animation != nil {
		fmt.Fprintf(out, "%s %s frames 1-%d\n", label("animation"), s.Animation.Target, s.Animation.FrameEnd())
	}
}

// watchConfig calls rebuild every time path is written. The parent directory
// is watched so editors that replace the file on save are still seen.
func watchConfig(path string, rebuild func(), logger core.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	target := filepath.Clean(path)
	logger.Printf("Watching %s for changes", target)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}
			logger.Printf("%s changed, rebuilding", target)
			rebuild()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Printf("watch error: %v", err)
		}
	}
}
