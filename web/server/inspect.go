package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/df07/go-scene-builder/pkg/camera"
	"github.com/df07/go-scene-builder/pkg/core"
	"github.com/df07/go-scene-builder/pkg/geometry"
	"github.com/df07/go-scene-builder/pkg/lights"
	"github.com/df07/go-scene-builder/pkg/material"
	"github.com/df07/go-scene-builder/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Found        bool                   `json:"found"`
	Object       string                 `json:"object"`
	ObjectType   string                 `json:"objectType"` // "shape", "light" or "camera"
	GeometryType string                 `json:"geometryType,omitempty"`
	MaterialType string                 `json:"materialType,omitempty"`
	Properties   map[string]interface{} `json:"properties"`
}

func vec(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func hexColor(c core.Color) string {
	channel := func(v float64) int {
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 255
		}
		return int(v * 255)
	}
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

// extractMaterialInfo extracts the typed parameters of a material
func (s *Server) extractMaterialInfo(mat material.Material) (string, map[string]interface{}) {
	p := mat.Params
	properties := map[string]interface{}{
		"name":      mat.Name,
		"blendMode": mat.BlendMode,
		"nodes":     len(mat.Graph.Nodes),
		"links":     len(mat.Graph.Links),
	}

	switch mat.Kind {
	case material.KindFuzzy:
		colors := make([]string, len(mat.Colors))
		for i, c := range mat.Colors {
			colors[i] = hexColor(c)
		}
		properties["colors"] = colors
		properties["noiseScale"] = p.NoiseScale
	case material.KindMetallic:
		properties["color"] = hexColor(p.BaseColor)
		properties["metallic"] = p.Metallic
		properties["roughness"] = p.Roughness
	case material.KindCrystalline:
		properties["color"] = hexColor(p.BaseColor)
		properties["transmission"] = p.Transmission
		properties["ior"] = p.IOR
	case material.KindOrganic:
		properties["color"] = hexColor(p.BaseColor)
		properties["subsurfaceWeight"] = p.SubsurfaceWeight
		properties["subsurfaceRadius"] = vec(p.SubsurfaceRadius)
	case material.KindEmissive:
		properties["emission"] = hexColor(p.BaseColor)
		properties["strength"] = p.EmissionStrength
	case material.KindVolume:
		properties["density"] = p.Density
	default:
		properties["color"] = hexColor(p.BaseColor)
		properties["roughness"] = p.Roughness
		properties["specular"] = p.Specular
	}
	return string(mat.Kind), properties
}

// extractGeometryInfo extracts detailed geometry information
func (s *Server) extractGeometryInfo(shape geometry.Shape) (string, map[string]interface{}) {
	t := shape.Transform
	properties := map[string]interface{}{
		"role":     shape.Role,
		"location": vec(t.Location),
		"rotation": vec(t.Rotation),
		"scale":    vec(t.Scale),
	}

	switch shape.Kind {
	case geometry.KindSphere:
		properties["radius"] = shape.Radius
		properties["segments"] = shape.Segments
		properties["rings"] = shape.Rings
	case geometry.KindIcosphere:
		properties["radius"] = shape.Radius
		properties["subdivisions"] = shape.Subdivide
	case geometry.KindCube, geometry.KindPlane:
		properties["size"] = shape.Size
	case geometry.KindTetrahedron:
		if shape.Mesh != nil {
			properties["triangleCount"] = shape.Mesh.GetTriangleCount()
		}
	}

	if len(shape.Modifiers) > 0 {
		mods := make([]map[string]interface{}, len(shape.Modifiers))
		for i, m := range shape.Modifiers {
			mods[i] = map[string]interface{}{"name": m.Name, "kind": m.Kind}
			switch m.Kind {
			case geometry.ModifierSubdivision:
				mods[i]["levels"] = m.Levels
				mods[i]["renderLevels"] = m.RenderLevels
			case geometry.ModifierDisplacement:
				mods[i]["strength"] = m.Strength
			}
		}
		properties["modifiers"] = mods
	}
	return string(shape.Kind), properties
}

func extractLightInfo(l lights.Light) map[string]interface{} {
	properties := map[string]interface{}{
		"type":        l.Type,
		"position":    vec(l.Position),
		"rotation":    vec(l.Rotation),
		"energy":      l.Energy,
		"color":       hexColor(l.Color),
		"castShadows": l.CastShadows,
	}
	switch l.Type {
	case lights.LightTypeSun:
		properties["angle"] = l.Angle
	case lights.LightTypeArea:
		properties["size"] = l.Size
	case lights.LightTypeSpot:
		properties["spotSize"] = l.SpotSize
		properties["spotBlend"] = l.SpotBlend
	}
	return properties
}

func extractCameraInfo(c camera.Camera) map[string]interface{} {
	return map[string]interface{}{
		"position":      vec(c.Position),
		"lens":          c.Lens,
		"fstop":         c.FStop,
		"focusDistance": c.FocusDistance,
		"target":        c.Target,
		"active":        c.Active,
	}
}

// inspectObject looks an object up by name among shapes, lights and cameras
func (s *Server) inspectObject(sceneObj *scene.Scene, name string) InspectResponse {
	response := InspectResponse{Object: name, Properties: map[string]interface{}{}}

	if shape, ok := sceneObj.Shape(name); ok {
		geometryType, geometryProps := s.extractGeometryInfo(shape)
		response.Found = true
		response.ObjectType = "shape"
		response.GeometryType = geometryType
		response.Properties["geometry"] = geometryProps
		if mat, ok := sceneObj.Material(shape.Material); ok {
			materialType, materialProps := s.extractMaterialInfo(mat)
			response.MaterialType = materialType
			response.Properties["material"] = materialProps
		}
		return response
	}

	for _, l := range sceneObj.Lights {
		if l.Name == name {
			response.Found = true
			response.ObjectType = "light"
			response.Properties = extractLightInfo(l)
			return response
		}
	}

	for _, c := range sceneObj.Cameras {
		if c.Name == name {
			response.Found = true
			response.ObjectType = "camera"
			response.Properties = extractCameraInfo(c)
			return response
		}
	}
	return response
}

// handleInspect reports the properties of one named object of a built scene
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	req, err := s.parseSceneRequest(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	object := r.URL.Query().Get("object")
	if object == "" {
		writeJSONError(w, http.StatusBadRequest, "Missing object name")
		return
	}

	sceneObj, err := s.buildScene(req, nil)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	response := s.inspectObject(sceneObj, object)
	status := http.StatusOK
	if !response.Found {
		status = http.StatusNotFound
	}
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}
