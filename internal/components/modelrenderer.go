package components

import (
	"labescape/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MaterialBinder pushes per-object material uniforms before a draw.
type MaterialBinder interface {
	BindMaterial(textured bool, color rl.Color, opacity float32)
}

// FlatGray is used for untextured meshes.
var FlatGray = rl.Color{R: 204, G: 204, B: 204, A: 255}

type ModelRenderer struct {
	engine.BaseComponent
	Model    rl.Model
	Color    rl.Color
	Textured bool
	Opacity  float32
	Binder   MaterialBinder

	// Visible gates drawing without deactivating the object, e.g. a pickup that was taken.
	Visible func() bool
}

func NewModelRenderer(model rl.Model, color rl.Color) *ModelRenderer {
	return &ModelRenderer{
		Model:   model,
		Color:   color,
		Opacity: 1,
	}
}

// Transparent models are drawn after the opaque pass.
func (m *ModelRenderer) Transparent() bool {
	return m.Opacity < 1
}

func (m *ModelRenderer) Shown() bool {
	g := m.GetGameObject()
	if g == nil || !g.Active || m.Model.MeshCount == 0 {
		return false
	}
	return m.Visible == nil || m.Visible()
}

func (m *ModelRenderer) Draw() {
	if !m.Shown() {
		return
	}
	if m.Binder != nil {
		m.Binder.BindMaterial(m.Textured, m.Color, m.Opacity)
	}

	m.Model.Transform = m.GetGameObject().Transform.Matrix()
	rl.DrawModel(m.Model, rl.Vector3Zero(), 1.0, rl.White)
}
