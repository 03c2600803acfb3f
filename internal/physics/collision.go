package physics

import (
	"log/slog"
	"slices"

	"labescape/internal/engine"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// minColliderHeight keeps flat models from producing zero-height boxes.
const minColliderHeight = 0.01

// ColliderPart is one box of a compound collider, in the model's local units
// before scaling.
type ColliderPart struct {
	Offset rl.Vector3
	Size   rl.Vector3
}

// ColliderTable maps a model name to the boxes that approximate its silhouette.
type ColliderTable map[string][]ColliderPart

// NamedModel pairs a placed object with the table entry describing it.
// Object may be nil when the model failed to load.
type NamedModel struct {
	Name   string
	Object *engine.GameObject
}

// DebugDrawer draws a unit cube wireframe through the given transform.
type DebugDrawer interface {
	DrawWireBox(transform rl.Matrix, color rl.Color)
}

// CollisionManager owns the static OBB colliders of the scene and resolves the
// player circle against them.
type CollisionManager struct {
	table     ColliderTable
	colliders []OBB2D
}

func NewCollisionManager(table ColliderTable) *CollisionManager {
	return &CollisionManager{table: table}
}

// Clear removes every collider.
func (c *CollisionManager) Clear() {
	c.colliders = c.colliders[:0]
}

// Colliders returns a copy of the registry in insertion order.
func (c *CollisionManager) Colliders() []OBB2D {
	return slices.Clone(c.colliders)
}

func (c *CollisionManager) Len() int {
	return len(c.colliders)
}

// SetupModelCollisions rebuilds the registry from scratch for the given
// models. Nil objects and names missing from the table are skipped.
func (c *CollisionManager) SetupModelCollisions(models ...NamedModel) {
	c.Clear()
	for _, m := range models {
		if m.Object == nil {
			continue
		}
		parts, ok := c.table[m.Name]
		if !ok {
			slog.Debug("no collider parts for model", "model", m.Name)
			continue
		}
		c.AddCompoundModelCollider(m.Object, parts)
	}
	slog.Debug("model colliders built", "count", len(c.colliders))
}

// AddCompoundModelCollider appends one OBB per part. Offsets and sizes are
// scaled by the object's scale and the offsets rotated by its yaw, so the
// boxes follow the model regardless of how it was placed.
func (c *CollisionManager) AddCompoundModelCollider(obj *engine.GameObject, parts []ColliderPart) {
	if obj == nil {
		return
	}

	t := obj.Transform
	yaw := t.Rotation.Y * rl.Deg2rad

	for _, part := range parts {
		offset := rl.Vector3Multiply(part.Offset, t.Scale)
		rotated := rotate2(rl.Vector2{X: offset.X, Y: offset.Z}, yaw)
		center := rl.Vector2{X: t.Position.X + rotated.X, Y: t.Position.Z + rotated.Y}

		size := rl.Vector3{
			X: part.Size.X * math32.Abs(t.Scale.X),
			Y: part.Size.Y * math32.Abs(t.Scale.Y),
			Z: part.Size.Z * math32.Abs(t.Scale.Z),
		}

		obb := NewOBB2D(
			center,
			rl.Vector2{X: size.X * 0.5, Y: size.Z * 0.5},
			yaw,
			0,
			math32.Max(minColliderHeight, size.Y),
		)
		c.colliders = append(c.colliders, obb)

		slog.Debug("collider added",
			"model", obj.Name,
			"center", center,
			"size", rl.Vector2{X: size.X, Y: size.Z},
			"maxY", obb.MaxY)
	}
}

// AddModelOBBCollider adds a single box of visualSize centered on the model.
func (c *CollisionManager) AddModelOBBCollider(obj *engine.GameObject, visualSize rl.Vector3) {
	c.AddCompoundModelCollider(obj, []ColliderPart{{Size: visualSize}})
}

// ResolveCircleVsScene pushes the circle out of each collider in turn,
// feeding every correction into the next test. Overlapping colliders can
// therefore give order-dependent results.
func (c *CollisionManager) ResolveCircleVsScene(pos rl.Vector2, radius float32) rl.Vector2 {
	for _, obb := range c.colliders {
		if hit, push := CircleOverlapsOBB(pos, radius, obb); hit {
			pos = rl.Vector2Add(pos, push)
		}
	}
	return pos
}

// DrawCollisionDebug hands a wireframe transform per collider to d.
func (c *CollisionManager) DrawCollisionDebug(d DebugDrawer) {
	if d == nil {
		return
	}
	for _, obb := range c.colliders {
		d.DrawWireBox(DebugTransform(obb), rl.Green)
	}
}

// DebugTransform maps a unit cube centered on the origin onto the volume of o.
func DebugTransform(o OBB2D) rl.Matrix {
	sin, cos := math32.Sincos(o.Yaw)
	sx := o.HalfExtents.X * 2
	sy := o.Height()
	sz := o.HalfExtents.Y * 2

	// Columns are the scaled local axes, matching rotate2's convention.
	return rl.Matrix{
		M0: cos * sx, M4: 0, M8: -sin * sz, M12: o.Center.X,
		M1: 0, M5: sy, M9: 0, M13: (o.MinY + o.MaxY) * 0.5,
		M2: sin * sx, M6: 0, M10: cos * sz, M14: o.Center.Y,
		M3: 0, M7: 0, M11: 0, M15: 1,
	}
}
