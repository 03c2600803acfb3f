// Package world holds the fixed lab scene: its layout tables, static props,
// loaded models and the renderer that draws them.
package world

import (
	"log/slog"
	"path/filepath"

	"labescape/internal/assets"
	"labescape/internal/components"
	"labescape/internal/engine"
	"labescape/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type World struct {
	Scene    *engine.Scene
	Props    []Prop
	Room     Room
	Renderer *Renderer
}

func New(playerRadius float32) *World {
	return &World{
		Scene:    engine.NewScene("Lab"),
		Props:    BuildProps(),
		Room:     NewRoom(playerRadius),
		Renderer: NewRenderer(),
	}
}

// LoadModels loads every placement under dir. Models that fail to load are
// logged and left out of the scene; the rest of the scene is unaffected.
func (w *World) LoadModels(dir string) int {
	slog.Info("loading models", "dir", dir)

	loaded := 0
	for _, p := range Placements {
		obj, err := w.loadPlacement(dir, p)
		if err != nil {
			slog.Warn("model not loaded", "model", p.Name, "path", p.Path, "err", err)
			continue
		}
		w.Scene.AddGameObject(obj)
		loaded++
	}

	slog.Info("models loaded", "count", loaded, "total", len(Placements))
	return loaded
}

func (w *World) loadPlacement(dir string, p Placement) (*engine.GameObject, error) {
	model, err := assets.LoadModel(filepath.Join(dir, p.Path))
	if err != nil {
		return nil, err
	}

	textured := 0
	if p.TextureDir != "" {
		textured, err = assets.LoadTexturesFromFolder(&model, filepath.Join(dir, p.TextureDir))
		if err != nil {
			slog.Warn("textures not loaded", "model", p.Name, "err", err)
		}
	}
	if w.Renderer.Lit() {
		assets.SetShader(&model, w.Renderer.Shader)
	}

	obj := engine.NewGameObject(p.Name)
	obj.Transform = engine.NewTransform(p.Position, p.Rotation, p.Scale)

	r := components.NewModelRenderer(model, components.FlatGray)
	r.Textured = textured > 0
	if p.Opacity > 0 {
		r.Opacity = p.Opacity
	}
	r.Binder = w.Renderer
	obj.AddComponent(r)

	return obj, nil
}

// Object returns the loaded model by name, or nil if it is absent.
func (w *World) Object(name string) *engine.GameObject {
	return w.Scene.FindByName(name)
}

// NamedModels pairs every collidable model name with its object, nil when the
// model did not load.
func (w *World) NamedModels() []physics.NamedModel {
	models := make([]physics.NamedModel, 0, len(CollidableModels))
	for _, name := range CollidableModels {
		models = append(models, physics.NamedModel{Name: name, Object: w.Object(name)})
	}
	return models
}

// SolidProps returns the props that need colliders.
func (w *World) SolidProps() []Prop {
	var out []Prop
	for _, p := range w.Props {
		if p.Solid {
			out = append(out, p)
		}
	}
	return out
}

// ResetPlacements puts every loaded model back where the layout table has it.
func (w *World) ResetPlacements() {
	for _, p := range Placements {
		if obj := w.Object(p.Name); obj != nil {
			obj.Transform = engine.NewTransform(p.Position, p.Rotation, p.Scale)
		}
	}
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}

// Draw renders props, then opaque models, then glass back to front.
// Call between BeginMode3D and EndMode3D.
func (w *World) Draw(cam rl.Camera3D, aspect float32) {
	frustum := ExtractFrustum(cam, aspect, 0.1, 100)

	w.Renderer.BeginFrame(cam.Position)
	w.Renderer.DrawProps(w.Props, &frustum)
	w.Renderer.DrawOpaque(w.Scene.GameObjects)
	w.Renderer.DrawTransparent(cam.Position, w.Scene.GameObjects)
}

func (w *World) Unload() {
	w.Scene.Clear()
	assets.Unload()
	w.Renderer.Unload()
}
