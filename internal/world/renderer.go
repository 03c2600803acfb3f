package world

import (
	"fmt"
	"path/filepath"
	"slices"

	"labescape/internal/assets"
	"labescape/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// raylib cull face modes
const (
	cullFront int32 = 0
	cullBack  int32 = 1
)

// Light is the single point light of the room.
type Light struct {
	Position rl.Vector3
	Color    rl.Color
	Enabled  bool
}

func (l Light) colorFloat() []float32 {
	return []float32{
		float32(l.Color.R) / 255.0,
		float32(l.Color.G) / 255.0,
		float32(l.Color.B) / 255.0,
	}
}

// Renderer owns the lighting shader and the unit cubes used for props and
// debug wireframes. Without a valid shader it falls back to raylib's default
// shader and plain tints.
type Renderer struct {
	Shader       rl.Shader
	Light        Light
	Shininess    float32
	InvertColors bool

	lit  bool
	locs map[string]int32
	cube rl.Model
	wire rl.Model
}

var uniformNames = []string{
	"useTexture", "objectColor", "uOpacity",
	"lightPos", "lightColor", "lightEnabled",
	"shininess", "invertColors", "viewPos",
}

func NewRenderer() *Renderer {
	return &Renderer{
		Light: Light{
			Position: LightPos,
			Color:    rl.White,
			Enabled:  true,
		},
		Shininess: 32,
		locs:      make(map[string]int32),
	}
}

// Initialize loads the lighting shader from shaderDir and builds the cube
// models. The cubes are always created, so the error only means the scene
// will be drawn unlit.
func (r *Renderer) Initialize(shaderDir string) error {
	r.cube = rl.LoadModelFromMesh(rl.GenMeshCube(1, 1, 1))
	r.wire = rl.LoadModelFromMesh(rl.GenMeshCube(1, 1, 1))

	vs := filepath.Join(shaderDir, "lighting.vs")
	fs := filepath.Join(shaderDir, "lighting.fs")
	for _, p := range []string{vs, fs} {
		if err := assets.Exists(p); err != nil {
			return fmt.Errorf("lighting shader: %w", err)
		}
	}

	shader := rl.LoadShader(vs, fs)
	if !rl.IsShaderValid(shader) {
		return fmt.Errorf("lighting shader %s: compile failed", shaderDir)
	}

	r.Shader = shader
	r.lit = true
	for _, name := range uniformNames {
		r.locs[name] = rl.GetShaderLocation(r.Shader, name)
	}
	assets.SetShader(&r.cube, r.Shader)
	return nil
}

// Lit reports whether the lighting shader is in use.
func (r *Renderer) Lit() bool { return r.lit }

func (r *Renderer) set(name string, v ...float32) {
	if !r.lit {
		return
	}
	loc, ok := r.locs[name]
	if !ok || loc < 0 {
		return
	}

	var kind rl.ShaderUniformDataType
	switch len(v) {
	case 1:
		kind = rl.ShaderUniformFloat
	case 3:
		kind = rl.ShaderUniformVec3
	default:
		kind = rl.ShaderUniformVec4
	}
	rl.SetShaderValue(r.Shader, loc, v, kind)
}

func boolf(b bool) float32 {
	if b {
		return 1
	}
	return 0
}

// BeginFrame pushes the per-frame uniforms.
func (r *Renderer) BeginFrame(viewPos rl.Vector3) {
	r.set("viewPos", viewPos.X, viewPos.Y, viewPos.Z)
	r.set("lightPos", r.Light.Position.X, r.Light.Position.Y, r.Light.Position.Z)
	r.set("lightColor", r.Light.colorFloat()...)
	r.set("lightEnabled", boolf(r.Light.Enabled))
	r.set("shininess", r.Shininess)
	r.set("invertColors", boolf(r.InvertColors))
}

// BindMaterial implements components.MaterialBinder.
func (r *Renderer) BindMaterial(textured bool, color rl.Color, opacity float32) {
	r.set("useTexture", boolf(textured))
	r.set("objectColor", float32(color.R)/255.0, float32(color.G)/255.0, float32(color.B)/255.0)
	r.set("uOpacity", opacity)
}

// DrawProps draws the blockout geometry, skipping what the frustum rejects.
func (r *Renderer) DrawProps(props []Prop, frustum *Frustum) {
	for _, p := range props {
		if frustum != nil && !frustum.ContainsAABB(p.Bounds) {
			continue
		}
		r.DrawBox(p.Transform, p.Color)
	}
}

// DrawBox draws the unit cube through transform.
func (r *Renderer) DrawBox(transform rl.Matrix, color rl.Color) {
	r.BindMaterial(false, color, 1)
	tint := color
	if r.lit {
		tint = rl.White
	}
	r.cube.Transform = transform
	rl.DrawModel(r.cube, rl.Vector3Zero(), 1.0, tint)
}

// DrawWireBox implements physics.DebugDrawer.
func (r *Renderer) DrawWireBox(transform rl.Matrix, color rl.Color) {
	r.wire.Transform = transform
	rl.DrawModelWires(r.wire, rl.Vector3Zero(), 1.0, color)
}

// DrawOpaque draws every opaque drawable in scene order.
func (r *Renderer) DrawOpaque(objects []*engine.GameObject) {
	for _, g := range objects {
		for _, c := range g.Components() {
			if d, ok := c.(engine.Drawable); ok && !d.Transparent() {
				d.Draw()
			}
		}
	}
}

// DrawTransparent draws transparent drawables furthest first, each twice:
// back faces, then front faces.
func (r *Renderer) DrawTransparent(eye rl.Vector3, objects []*engine.GameObject) {
	for _, g := range SortBackToFront(TransparentObjects(objects), eye) {
		for _, c := range g.Components() {
			d, ok := c.(engine.Drawable)
			if !ok || !d.Transparent() {
				continue
			}
			rl.SetCullFace(cullFront)
			d.Draw()
			rl.SetCullFace(cullBack)
			d.Draw()
		}
	}
}

// TransparentObjects filters objects down to those with a transparent drawable.
func TransparentObjects(objects []*engine.GameObject) []*engine.GameObject {
	var out []*engine.GameObject
	for _, g := range objects {
		for _, c := range g.Components() {
			if d, ok := c.(engine.Drawable); ok && d.Transparent() {
				out = append(out, g)
				break
			}
		}
	}
	return out
}

// SortBackToFront returns objects ordered by decreasing distance from eye.
// Equal distances keep their input order.
func SortBackToFront(objects []*engine.GameObject, eye rl.Vector3) []*engine.GameObject {
	sorted := slices.Clone(objects)
	slices.SortStableFunc(sorted, func(a, b *engine.GameObject) int {
		da := rl.Vector3DistanceSqr(eye, a.Transform.Position)
		db := rl.Vector3DistanceSqr(eye, b.Transform.Position)
		switch {
		case da > db:
			return -1
		case da < db:
			return 1
		}
		return 0
	})
	return sorted
}

func (r *Renderer) Unload() {
	if r.lit {
		rl.UnloadShader(r.Shader)
	}
	rl.UnloadModel(r.cube)
	rl.UnloadModel(r.wire)
}
