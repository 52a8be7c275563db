package export

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/df07/go-scene-builder/pkg/camera"
	"github.com/df07/go-scene-builder/pkg/core"
	"github.com/df07/go-scene-builder/pkg/geometry"
	"github.com/df07/go-scene-builder/pkg/lights"
	"github.com/df07/go-scene-builder/pkg/material"
	"github.com/df07/go-scene-builder/pkg/scene"
)

// sensorWidth is the horizontal film back in mm used to turn focal length into fov
const sensorWidth = 36.0

// PBRTParam is one typed parameter of a statement
type PBRTParam struct {
	Type   string   // float, rgb, point3, integer, string, texture, bool
	Name   string
	Values []string
}

// PBRTStatement is one directive with its parameter list, e.g.
// Shape "sphere" "float radius" [ 2 ]
type PBRTStatement struct {
	Type       string
	Subtype    string
	Parameters []PBRTParam
}

func (stmt PBRTStatement) String() string {
	var sb strings.Builder
	sb.WriteString(stmt.Type)
	if stmt.Subtype != "" {
		fmt.Fprintf(&sb, " %q", stmt.Subtype)
	}
	for _, p := range stmt.Parameters {
		sb.WriteString(" ")
		sb.WriteString(paramString(p))
	}
	return sb.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func floats(values ...float64) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = formatFloat(v)
	}
	return out
}

func floatParam(name string, v ...float64) PBRTParam {
	return PBRTParam{Type: "float", Name: name, Values: floats(v...)}
}

func intParam(name string, v ...int) PBRTParam {
	out := make([]string, len(v))
	for i, x := range v {
		out[i] = strconv.Itoa(x)
	}
	return PBRTParam{Type: "integer", Name: name, Values: out}
}

func rgbParam(name string, c core.Color) PBRTParam {
	return PBRTParam{Type: "rgb", Name: name, Values: floats(c.R, c.G, c.B)}
}

func point3Param(name string, points ...core.Vec3) PBRTParam {
	var values []float64
	for _, p := range points {
		values = append(values, p.X, p.Y, p.Z)
	}
	return PBRTParam{Type: "point3", Name: name, Values: floats(values...)}
}

func stringParam(name, v string) PBRTParam {
	return PBRTParam{Type: "string", Name: name, Values: []string{strconv.Quote(v)}}
}

func textureParam(name, texture string) PBRTParam {
	return PBRTParam{Type: "texture", Name: name, Values: []string{strconv.Quote(texture)}}
}

// pbrtWriter writes indented lines and keeps the first error
type pbrtWriter struct {
	w      *bufio.Writer
	indent int
	err    error
}

func (pw *pbrtWriter) line(format string, args ...interface{}) {
	if pw.err != nil {
		return
	}
	_, pw.err = fmt.Fprintf(pw.w, "%s%s\n", strings.Repeat("    ", pw.indent), fmt.Sprintf(format, args...))
}

func (pw *pbrtWriter) stmt(s PBRTStatement) {
	pw.line("%s", s.String())
}

func (pw *pbrtWriter) begin(comment string) {
	pw.line("AttributeBegin")
	pw.indent++
	if comment != "" {
		pw.line("# %s", comment)
	}
}

func (pw *pbrtWriter) end() {
	pw.indent--
	pw.line("AttributeEnd")
}

// transform emits a Blender style transform: scale, then X, Y and Z
// rotations, then translation
func (pw *pbrtWriter) transform(location, rotation, scale core.Vec3) {
	pw.line("Translate %s %s %s", formatFloat(location.X), formatFloat(location.Y), formatFloat(location.Z))
	for _, r := range []struct {
		angle float64
		axis  string
	}{{rotation.Z, "0 0 1"}, {rotation.Y, "0 1 0"}, {rotation.X, "1 0 0"}} {
		if r.angle != 0 {
			pw.line("Rotate %s %s", formatFloat(core.Degrees(r.angle)), r.axis)
		}
	}
	if !scale.IsZero() && scale != core.Splat(1) {
		pw.line("Scale %s %s %s", formatFloat(scale.X), formatFloat(scale.Y), formatFloat(scale.Z))
	}
}

// WritePBRT writes s as a PBRT-v4 scene. Node graphs and modifiers have no
// PBRT equivalent; materials are approximated from their typed parameters.
func WritePBRT(w io.Writer, s *scene.Scene) error {
	pw := &pbrtWriter{w: bufio.NewWriter(w)}

	pw.line("# Scene: %s", s.Name)
	pw.line("# Description: exported %s preset for host %s", s.Preset, s.HostVersion)
	pw.line("# Group: Exported Scenes")
	pw.line("")

	if cam, ok := s.ActiveCamera(); ok {
		writeCamera(pw, cam, s)
	}
	pw.stmt(PBRTStatement{Type: "Sampler", Subtype: "zsobol", Parameters: []PBRTParam{
		intParam("pixelsamples", s.Render.Samples()),
	}})
	pw.stmt(PBRTStatement{Type: "Integrator", Subtype: "volpath", Parameters: []PBRTParam{
		intParam("maxdepth", 12),
	}})
	pw.line("")
	pw.line("WorldBegin")
	pw.line("")

	writeWorld(pw, s.World)
	for _, l := range s.Lights {
		writeLight(pw, l)
	}

	materials := make(map[string]material.Material, len(s.Materials))
	for _, m := range s.Materials {
		materials[m.Name] = m
		writeMaterial(pw, m)
	}
	for _, shape := range s.Shapes {
		writeShape(pw, shape, materials[shape.Material])
	}

	if pw.err != nil {
		return fmt.Errorf("write pbrt: %w", pw.err)
	}
	return pw.w.Flush()
}

func writeCamera(pw *pbrtWriter, cam camera.Camera, s *scene.Scene) {
	x, y := s.Render.ResolutionX, s.Render.ResolutionY
	if pct := s.Render.ResolutionPercentage; pct > 0 {
		x, y = x*pct/100, y*pct/100
	}

	pw.line("LookAt %s %s %s  %s %s %s  0 0 1",
		formatFloat(cam.Position.X), formatFloat(cam.Position.Y), formatFloat(cam.Position.Z),
		formatFloat(cam.TargetPosition.X), formatFloat(cam.TargetPosition.Y), formatFloat(cam.TargetPosition.Z))
	pw.stmt(PBRTStatement{Type: "Camera", Subtype: "perspective", Parameters: []PBRTParam{
		floatParam("fov", FieldOfView(cam.Lens, x, y)),
		floatParam("lensradius", cam.Lens/(2*cam.FStop)/1000),
		floatParam("focaldistance", cam.FocusDistance),
	}})
	pw.stmt(PBRTStatement{Type: "Film", Subtype: "rgb", Parameters: []PBRTParam{
		intParam("xresolution", x),
		intParam("yresolution", y),
		stringParam("filename", s.Name+".exr"),
	}})
}

// FieldOfView converts a focal length to the fov of the shorter image axis,
// in degrees
func FieldOfView(lens float64, x, y int) float64 {
	short, long := float64(y), float64(x)
	if short > long {
		short, long = long, short
	}
	return core.Degrees(2 * math.Atan(sensorWidth/2*short/long/lens))
}

func writeWorld(pw *pbrtWriter, world material.World) {
	avg := core.RGB(
		(world.Bottom.R+world.Top.R)/2,
		(world.Bottom.G+world.Top.G)/2,
		(world.Bottom.B+world.Top.B)/2,
	)
	pw.stmt(PBRTStatement{Type: "LightSource", Subtype: "infinite", Parameters: []PBRTParam{
		rgbParam("L", avg),
		floatParam("scale", world.Strength),
	}})
	pw.line("")
}

// Direction returns where an object with Euler rotation rot points, taking
// -Z as the rest direction of lights and cameras
func Direction(rot core.Vec3) core.Vec3 {
	d := core.NewVec3(0, 0, -1)
	// X, then Y, then Z
	sx, cx := math.Sincos(rot.X)
	d = core.NewVec3(d.X, d.Y*cx-d.Z*sx, d.Y*sx+d.Z*cx)
	sy, cy := math.Sincos(rot.Y)
	d = core.NewVec3(d.X*cy+d.Z*sy, d.Y, -d.X*sy+d.Z*cy)
	sz, cz := math.Sincos(rot.Z)
	d = core.NewVec3(d.X*cz-d.Y*sz, d.X*sz+d.Y*cz, d.Z)
	return d
}

func writeLight(pw *pbrtWriter, l lights.Light) {
	switch l.Type {
	case lights.LightTypeSun:
		pw.line("# %s", l.Name)
		pw.stmt(PBRTStatement{Type: "LightSource", Subtype: "distant", Parameters: []PBRTParam{
			point3Param("from", core.Vec3{}),
			point3Param("to", Direction(l.Rotation)),
			rgbParam("L", l.Color),
			floatParam("scale", l.Energy),
		}})
	case lights.LightTypeSpot:
		half := core.Degrees(l.SpotSize / 2)
		pw.line("# %s", l.Name)
		pw.stmt(PBRTStatement{Type: "LightSource", Subtype: "spotlight", Parameters: []PBRTParam{
			point3Param("from", l.Position),
			point3Param("to", l.Position.Add(Direction(l.Rotation))),
			floatParam("coneangle", half),
			floatParam("conedelta", half*l.SpotBlend),
			rgbParam("I", l.Color),
			floatParam("power", l.Energy),
		}})
	case lights.LightTypeArea:
		pw.begin(l.Name)
		pw.transform(l.Position, l.Rotation, core.Splat(1))
		pw.line("ReverseOrientation")
		pw.stmt(PBRTStatement{Type: "AreaLightSource", Subtype: "diffuse", Parameters: []PBRTParam{
			rgbParam("L", l.Color),
			floatParam("power", l.Energy),
		}})
		pw.stmt(square(l.Size))
		pw.end()
	}
	pw.line("")
}

func writeMaterial(pw *pbrtWriter, m material.Material) {
	p := m.Params
	var params []PBRTParam

	switch m.Kind {
	case material.KindFuzzy:
		noise := m.Name + ":noise"
		color := m.Name + ":color"
		pw.line("Texture %q \"float\" \"fbm\" \"integer octaves\" [ 2 ]", noise)
		c1, c2 := p.BaseColor, p.BaseColor
		if len(m.Colors) == 2 {
			c1, c2 = m.Colors[0], m.Colors[1]
		}
		pw.line("Texture %q \"spectrum\" \"mix\" %s %s %s", color,
			paramString(rgbParam("tex1", c1)), paramString(rgbParam("tex2", c2)),
			paramString(textureParam("amount", noise)))
		params = append(params, stringParam("type", "diffuse"), textureParam("reflectance", color))
	case material.KindMetallic:
		params = append(params, stringParam("type", "conductor"),
			rgbParam("reflectance", p.BaseColor), floatParam("roughness", p.Roughness))
	case material.KindCrystalline:
		params = append(params, stringParam("type", "dielectric"),
			floatParam("eta", p.IOR), floatParam("roughness", p.Roughness))
	case material.KindOrganic:
		params = append(params, stringParam("type", "coateddiffuse"),
			rgbParam("reflectance", p.BaseColor), floatParam("roughness", p.Roughness))
	case material.KindEmissive:
		params = append(params, stringParam("type", "diffuse"), rgbParam("reflectance", core.RGB(0, 0, 0)))
	case material.KindVolume:
		pw.stmt(PBRTStatement{Type: "MakeNamedMedium", Subtype: m.Name, Parameters: []PBRTParam{
			stringParam("type", "homogeneous"),
			rgbParam("sigma_a", core.RGB(0, 0, 0)),
			rgbParam("sigma_s", core.RGB(1, 1, 1)),
			floatParam("scale", p.Density),
		}})
		params = append(params, stringParam("type", "interface"))
	default:
		params = append(params, stringParam("type", "diffuse"), rgbParam("reflectance", p.BaseColor))
	}

	pw.stmt(PBRTStatement{Type: "MakeNamedMaterial", Subtype: m.Name, Parameters: params})
	pw.line("")
}

func paramString(p PBRTParam) string {
	return fmt.Sprintf("\"%s %s\" [ %s ]", p.Type, p.Name, strings.Join(p.Values, " "))
}

func writeShape(pw *pbrtWriter, shape geometry.Shape, m material.Material) {
	if shape.Kind == geometry.KindEmpty {
		p := shape.Origin()
		pw.line("# target %s at %s %s %s", shape.Name, formatFloat(p.X), formatFloat(p.Y), formatFloat(p.Z))
		pw.line("")
		return
	}

	pw.begin(shape.Name)
	for _, mod := range shape.Modifiers {
		pw.line("# modifier %s levels=%d strength=%s", mod.Kind, mod.RenderLevels, formatFloat(mod.Strength))
	}
	pw.transform(shape.Transform.Location, shape.Transform.Rotation, shape.Transform.Scale)
	pw.line("NamedMaterial %q", shape.Material)

	switch m.Kind {
	case material.KindEmissive:
		pw.stmt(PBRTStatement{Type: "AreaLightSource", Subtype: "diffuse", Parameters: []PBRTParam{
			rgbParam("L", m.Params.BaseColor),
			floatParam("scale", m.Params.EmissionStrength),
		}})
	case material.KindVolume:
		pw.line("MediumInterface %q \"\"", m.Name)
	}

	switch shape.Kind {
	case geometry.KindSphere, geometry.KindIcosphere:
		pw.stmt(PBRTStatement{Type: "Shape", Subtype: "sphere", Parameters: []PBRTParam{
			floatParam("radius", shape.Radius),
		}})
	case geometry.KindPlane:
		pw.stmt(square(shape.Size))
	case geometry.KindCube:
		pw.stmt(triangleMesh(cubeMesh(shape.Size)))
	case geometry.KindTetrahedron:
		if shape.Mesh != nil {
			pw.stmt(triangleMesh(shape.Mesh))
		}
	}
	pw.end()
	pw.line("")
}

// square is a bilinear patch of edge size in the XY plane, facing +Z
func square(size float64) PBRTStatement {
	h := size / 2
	return PBRTStatement{Type: "Shape", Subtype: "bilinearmesh", Parameters: []PBRTParam{
		point3Param("P",
			core.NewVec3(-h, -h, 0), core.NewVec3(h, -h, 0),
			core.NewVec3(-h, h, 0), core.NewVec3(h, h, 0)),
	}}
}

func triangleMesh(mesh *geometry.Mesh) PBRTStatement {
	var indices []int
	for _, f := range mesh.Faces {
		indices = append(indices, f[0], f[1], f[2])
	}
	return PBRTStatement{Type: "Shape", Subtype: "trianglemesh", Parameters: []PBRTParam{
		intParam("indices", indices...),
		point3Param("P", mesh.Vertices...),
	}}
}

// cubeMesh returns an axis aligned cube of edge size centred on the origin
func cubeMesh(size float64) *geometry.Mesh {
	h := size / 2
	verts := make([]core.Vec3, 0, 8)
	for _, z := range []float64{-h, h} {
		for _, y := range []float64{-h, h} {
			for _, x := range []float64{-h, h} {
				verts = append(verts, core.NewVec3(x, y, z))
			}
		}
	}
	return &geometry.Mesh{
		Vertices: verts,
		Faces: [][3]int{
			{0, 2, 1}, {1, 2, 3}, // -Z
			{4, 5, 6}, {5, 7, 6}, // +Z
			{0, 1, 4}, {1, 5, 4}, // -Y
			{2, 6, 3}, {3, 6, 7}, // +Y
			{0, 4, 2}, {2, 4, 6}, // -X
			{1, 3, 5}, {3, 7, 5}, // +X
		},
	}
}
