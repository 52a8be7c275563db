package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/df07/go-scene-builder/pkg/config"
	"github.com/df07/go-scene-builder/pkg/core"
	"github.com/df07/go-scene-builder/pkg/export"
	"github.com/df07/go-scene-builder/pkg/scene"
)

// Server serves scene descriptors over HTTP
type Server struct {
	port      int
	scenesDir string
}

// NewServer creates a new web server reading config scenes from scenes/
func NewServer(port int) *Server {
	return &Server{port: port, scenesDir: "scenes"}
}

// SceneRequest is a build request from the client. Override fields are nil
// when the query leaves them out.
type SceneRequest struct {
	Scene         string        `json:"scene"`
	Format        export.Format `json:"format"`
	Radius        *float64      `json:"radius,omitempty"`
	FuzzDensity   *float64      `json:"fuzzDensity,omitempty"`
	FuzzLength    *float64      `json:"fuzzLength,omitempty"`
	Samples       *int          `json:"samples,omitempty"`
	CameraAngle   string        `json:"cameraAngle,omitempty"`
	LightingStyle string        `json:"lightingStyle,omitempty"`
	Particles     *bool         `json:"particles,omitempty"`
	ParticleCount *int          `json:"particleCount,omitempty"`
	Seed          *int64        `json:"seed,omitempty"`
}

// SceneResponse is the JSON body of /api/scene
type SceneResponse struct {
	Scene     *scene.Scene     `json:"scene"`
	Stats     scene.Stats      `json:"stats"`
	Console   []ConsoleMessage `json:"console"`
	ElapsedMs int64            `json:"elapsedMs"`
}

type intLimit struct{ min, max int }
type floatLimit struct{ min, max float64 }

var (
	radiusLimit        = floatLimit{0.1, 50}
	fuzzDensityLimit   = floatLimit{0, 20}
	fuzzLengthLimit    = floatLimit{0, 5}
	samplesLimit       = intLimit{1, 10000}
	particleCountLimit = intLimit{0, 5000}
)

// Handler returns the API routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Serve static files
	mux.Handle("/", http.FileServer(http.Dir("static/")))

	// API endpoints
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/scene", s.handleScene)
	mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	mux.HandleFunc("/api/build", s.handleBuild)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleScenes lists the built-in presets and the config scenes on disk
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	scenes, err := scene.ListAllScenes(s.scenesDir)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(scenes)
}

// handleScene builds one scene and returns its descriptor. JSON responses wrap
// the descriptor with stats and build messages; YAML and PBRT return the
// encoded descriptor and carry the messages in X-Build-Log headers.
func (s *Server) handleScene(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	req, err := s.parseSceneRequest(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	consoleChan, webLogger := s.setupConsoleLogging()
	startTime := time.Now()
	sceneObj, err := s.buildScene(req, webLogger)
	messages := drainConsole(consoleChan)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Format == export.FormatJSON {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SceneResponse{
			Scene:     sceneObj,
			Stats:     sceneObj.Stats(),
			Console:   messages,
			ElapsedMs: time.Since(startTime).Milliseconds(),
		})
		return
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, sceneObj, req.Format); err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	for _, msg := range messages {
		w.Header().Add("X-Build-Log", strings.Join(strings.Fields(msg.Message), " "))
	}
	w.Header().Set("Content-Type", req.Format.ContentType())
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// parseSceneRequest parses request parameters
func (s *Server) parseSceneRequest(r *http.Request) (*SceneRequest, error) {
	query := r.URL.Query()
	req := &SceneRequest{Scene: string(config.PresetFuzzySphere), Format: export.FormatJSON}

	if name := query.Get("scene"); name != "" {
		req.Scene = name
	}
	if format := query.Get("format"); format != "" {
		f, err := export.ParseFormat(format)
		if err != nil {
			return nil, err
		}
		req.Format = f
	}

	var err error
	if req.Radius, err = parseFloatParam(query, "radius", radiusLimit); err != nil {
		return nil, err
	}
	if req.FuzzDensity, err = parseFloatParam(query, "fuzzDensity", fuzzDensityLimit); err != nil {
		return nil, err
	}
	if req.FuzzLength, err = parseFloatParam(query, "fuzzLength", fuzzLengthLimit); err != nil {
		return nil, err
	}
	if req.Samples, err = parseIntParam(query, "samples", samplesLimit); err != nil {
		return nil, err
	}
	if req.ParticleCount, err = parseIntParam(query, "particleCount", particleCountLimit); err != nil {
		return nil, err
	}
	if req.Particles, err = parseBoolParam(query, "particles"); err != nil {
		return nil, err
	}
	if value := query.Get("seed"); value != "" {
		seed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid seed: %s", value)
		}
		req.Seed = &seed
	}
	req.CameraAngle = query.Get("cameraAngle")
	req.LightingStyle = query.Get("lightingStyle")
	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, limit intLimit) (*int, error) {
	value := values.Get(key)
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %s", key, value)
	}
	if parsed < limit.min || parsed > limit.max {
		return nil, fmt.Errorf("%s must be between %d and %d, got: %d", key, limit.min, limit.max, parsed)
	}
	return &parsed, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, limit floatLimit) (*float64, error) {
	value := values.Get(key)
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %s", key, value)
	}
	if parsed < limit.min || parsed > limit.max {
		return nil, fmt.Errorf("%s must be between %g and %g, got: %g", key, limit.min, limit.max, parsed)
	}
	return &parsed, nil
}

func parseBoolParam(values url.Values, key string) (*bool, error) {
	value := values.Get(key)
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %s", key, value)
	}
	return &parsed, nil
}

// sceneConfig resolves the request's scene and applies its overrides
func (s *Server) sceneConfig(req *SceneRequest) (config.SceneConfig, error) {
	info, err := scene.FindScene(req.Scene, s.scenesDir)
	if err != nil {
		return config.SceneConfig{}, fmt.Errorf("Unknown scene: %s", req.Scene)
	}
	cfg, err := info.Config()
	if err != nil {
		return config.SceneConfig{}, err
	}

	if req.Radius != nil {
		cfg.Sphere.Radius = *req.Radius
	}
	if req.FuzzDensity != nil {
		cfg.Sphere.FuzzDensity = *req.FuzzDensity
	}
	if req.FuzzLength != nil {
		cfg.Sphere.FuzzLength = *req.FuzzLength
	}
	if req.Samples != nil {
		cfg.Render.Samples = *req.Samples
	}
	if req.Particles != nil {
		cfg.Atmosphere.Particles = *req.Particles
	}
	if req.ParticleCount != nil {
		cfg.Atmosphere.ParticleCount = *req.ParticleCount
	}
	if req.Seed != nil {
		cfg.Seed = *req.Seed
	}
	if req.CameraAngle != "" {
		cfg.Camera.Angle = config.CameraAngle(req.CameraAngle)
	}
	if req.LightingStyle != "" {
		cfg.Lighting.Style = config.LightingStyle(req.LightingStyle)
	}
	return cfg, cfg.Validate()
}

// buildScene builds the requested scene, logging through logger
func (s *Server) buildScene(req *SceneRequest, logger core.Logger) (*scene.Scene, error) {
	cfg, err := s.sceneConfig(req)
	if err != nil {
		return nil, err
	}
	return scene.Build(cfg, logger)
}

// handleSceneConfig returns the default configuration of a scene with the
// override limits the API accepts
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = string(config.PresetFuzzySphere)
	}

	cfg, err := s.sceneConfig(&SceneRequest{Scene: sceneName})
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	response := map[string]interface{}{
		"scene":    sceneName,
		"defaults": cfg,
		"limits": map[string]interface{}{
			"radius":        map[string]float64{"min": radiusLimit.min, "max": radiusLimit.max},
			"fuzzDensity":   map[string]float64{"min": fuzzDensityLimit.min, "max": fuzzDensityLimit.max},
			"fuzzLength":    map[string]float64{"min": fuzzLengthLimit.min, "max": fuzzLengthLimit.max},
			"samples":       map[string]int{"min": samplesLimit.min, "max": samplesLimit.max},
			"particleCount": map[string]int{"min": particleCountLimit.min, "max": particleCountLimit.max},
		},
		"cameraAngles":   config.CameraAngles,
		"lightingStyles": config.LightingStyles,
		"formats":        export.Formats,
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
