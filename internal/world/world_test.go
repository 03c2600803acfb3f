package world

import (
	"testing"

	"labescape/internal/components"
	"labescape/internal/engine"
	"labescape/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-4

func TestRoomClampSlidesAlongWall(t *testing.T) {
	room := NewRoom(0.35)
	prev := rl.Vector3{X: 4.5, Y: 1.7, Z: 3}
	next := rl.Vector3{X: 5.5, Y: 1.7, Z: 3.2}

	got := room.Clamp(prev, next)
	assert.InDelta(t, 4.65, got.X, tolerance)
	assert.InDelta(t, 3.2, got.Z, tolerance)
}

func TestRoomClampAllowsDoorway(t *testing.T) {
	room := NewRoom(0.35)
	prev := rl.Vector3{X: 4.6, Y: 1.7, Z: 0}
	next := rl.Vector3{X: 5.2, Y: 1.7, Z: 0.1}

	assert.Equal(t, next, room.Clamp(prev, next))

	// Inside the corridor the side walls hold.
	prev = rl.Vector3{X: 6, Y: 1.7, Z: 0}
	got := room.Clamp(prev, rl.Vector3{X: 6.2, Y: 1.7, Z: 1})
	assert.InDelta(t, 0.25, got.Z, tolerance)
	assert.InDelta(t, 6.2, got.X, tolerance)
}

func TestRoomClampInsidePassesThrough(t *testing.T) {
	room := NewRoom(0.35)
	p := rl.Vector3{X: 1, Y: 1.7, Z: -2}
	assert.Equal(t, p, room.Clamp(rl.Vector3{}, p))
	assert.Equal(t, p, Room{}.Clamp(rl.Vector3{}, p))
}

func TestNewPropBounds(t *testing.T) {
	p := Panel("wall", rl.Vector3{X: 5, Y: 1}, rl.Vector2{X: 4, Y: 2}, 0.1, 90, wallColor)

	// Rotated a quarter turn the panel's length runs along Z.
	size := p.Bounds.Size()
	assert.InDelta(t, 0.1, size.X, tolerance)
	assert.InDelta(t, 2, size.Y, tolerance)
	assert.InDelta(t, 4, size.Z, tolerance)
	assert.InDelta(t, 5, p.Bounds.Center().X, tolerance)
}

func TestTableLegStandsOnFoot(t *testing.T) {
	leg := TableLeg("leg", rl.Vector3{X: 1, Z: 1}, 0.7, 0.06, crateColor)
	assert.InDelta(t, 0, leg.Bounds.Min.Y, tolerance)
	assert.InDelta(t, 0.7, leg.Bounds.Max.Y, tolerance)
}

func TestBuildPropsDoorwayIsOpen(t *testing.T) {
	props := BuildProps()
	require.NotEmpty(t, props)

	doorway := rl.Vector3{X: RoomHalfSize, Y: 1.0, Z: 0}
	for _, p := range props {
		assert.False(t, p.Bounds.Contains(doorway), "%s blocks the doorway", p.Name)
	}
}

func TestSolidPropsCollide(t *testing.T) {
	cm := physics.NewCollisionManager(nil)
	for _, p := range BuildProps() {
		if p.Solid {
			cm.AddModelOBBCollider(p.Object(), p.Size)
		}
	}
	require.Equal(t, 2, cm.Len())

	crate := cm.Colliders()[0]
	assert.InDelta(t, -4.3, crate.Center.X, tolerance)
	assert.InDelta(t, 0.3, crate.HalfExtents.X, tolerance)
}

func TestCollidersMatchPlacements(t *testing.T) {
	for _, name := range CollidableModels {
		_, ok := PlacementByName(name)
		assert.True(t, ok, "collider %s has no placement", name)
		assert.Contains(t, Colliders, name)
	}
	assert.Len(t, Colliders, len(CollidableModels))

	for _, f := range FlaskEffects {
		p, ok := PlacementByName(f.Name)
		require.True(t, ok)
		assert.Equal(t, GlassOpacity, p.Opacity)
	}
}

func TestSpawnIsWalkable(t *testing.T) {
	room := NewRoom(0.35)
	assert.Equal(t, SpawnPoint, room.Clamp(SpawnPoint, SpawnPoint))
	assert.True(t, room.Areas[1].Contains(rl.Vector3{X: ExitPos.X, Y: 1.7, Z: ExitPos.Z}))
}

func glass(name string, pos rl.Vector3, opacity float32) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Transform.Position = pos
	r := components.NewModelRenderer(rl.Model{MeshCount: 1}, components.FlatGray)
	r.Opacity = opacity
	g.AddComponent(r)
	return g
}

func TestSortBackToFront(t *testing.T) {
	near := glass("near", rl.Vector3{Z: -1}, GlassOpacity)
	far := glass("far", rl.Vector3{Z: -5}, GlassOpacity)
	mid := glass("mid", rl.Vector3{X: 3}, GlassOpacity)
	solidObj := glass("bench", rl.Vector3{Z: -10}, 1)

	objs := []*engine.GameObject{near, solidObj, far, mid}
	transparent := TransparentObjects(objs)
	assert.Equal(t, []*engine.GameObject{near, far, mid}, transparent)

	sorted := SortBackToFront(transparent, rl.Vector3{})
	assert.Equal(t, []string{"far", "mid", "near"}, names(sorted))

	// Input is left alone.
	assert.Equal(t, []*engine.GameObject{near, far, mid}, transparent)
}

func TestSortBackToFrontStableOnTies(t *testing.T) {
	a := glass("a", rl.Vector3{X: 2}, GlassOpacity)
	b := glass("b", rl.Vector3{X: -2}, GlassOpacity)
	assert.Equal(t, []string{"a", "b"}, names(SortBackToFront([]*engine.GameObject{a, b}, rl.Vector3{})))
}

func TestNamedModelsKeepsMissingAsNil(t *testing.T) {
	w := &World{Scene: engine.NewScene("test")}
	bench := engine.NewGameObject(ModelLabBench)
	w.Scene.AddGameObject(bench)

	models := w.NamedModels()
	require.Len(t, models, len(CollidableModels))
	assert.Same(t, bench, models[0].Object)
	for _, m := range models[1:] {
		assert.Nil(t, m.Object, m.Name)
	}

	cm := physics.NewCollisionManager(Colliders)
	cm.SetupModelCollisions(models...)
	assert.Equal(t, 1, cm.Len())
}

func TestResetPlacements(t *testing.T) {
	w := &World{Scene: engine.NewScene("test")}
	door := engine.NewGameObject(ModelDoor)
	door.Transform.Rotation.Y = 0
	w.Scene.AddGameObject(door)

	w.ResetPlacements()
	assert.Equal(t, float32(-90), door.Transform.Rotation.Y)
	assert.Equal(t, DoorClosedPos, door.Transform.Position)
}

func names(objs []*engine.GameObject) []string {
	out := make([]string, len(objs))
	for i, g := range objs {
		out[i] = g.Name
	}
	return out
}
