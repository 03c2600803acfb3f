package game

import (
	"testing"

	"labescape/internal/config"
	"labescape/internal/effects"
	"labescape/internal/engine"
	"labescape/internal/input"
	"labescape/internal/interact"
	"labescape/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-3

var idle = input.State{}

func newGame(t *testing.T) *Game {
	t.Helper()
	g := New(config.Default())
	require.NotNil(t, g)
	return g
}

// place moves the player on the ground.
func place(g *Game, x, z float32) {
	g.State.Camera.Position = rl.Vector3{X: x, Y: g.Config.Player.EyeHeight, Z: z}
}

// press taps a key for one frame and releases it on the next.
func press(g *Game, key int32) {
	g.Step(0.016, input.Keys(key))
	g.Step(0.016, idle)
}

func TestNewStartsAtSpawn(t *testing.T) {
	g := newGame(t)
	s := g.State

	assert.Equal(t, world.SpawnPoint, s.Camera.Position)
	assert.InDelta(t, -90, s.Camera.Yaw, tolerance)
	assert.True(t, s.Collision)
	assert.False(t, s.FreeFly)
	assert.True(t, s.Door.Locked())
	assert.Len(t, s.Flasks, 3)
	assert.Equal(t, "Find the keycard", s.Hint)
	// Without loaded models only the solid props collide.
	assert.Equal(t, 2, g.Collisions.Len())
}

func TestToggleFiresOncePerPress(t *testing.T) {
	g := newGame(t)

	for range 3 {
		g.Step(0.016, input.Keys(rl.KeyF))
	}
	assert.True(t, g.State.FreeFly)

	g.Step(0.016, idle)
	press(g, rl.KeyF)
	assert.False(t, g.State.FreeFly)

	press(g, rl.KeyL)
	assert.False(t, g.World.Renderer.Light.Enabled)
}

func TestRoomClampsPlayer(t *testing.T) {
	g := newGame(t)
	place(g, -4.6, 0)
	g.State.Camera.Yaw = 180

	g.Step(0.1, input.Keys(rl.KeyW))
	assert.InDelta(t, -4.65, g.State.Camera.Position.X, tolerance)
}

func TestInvertedControls(t *testing.T) {
	g := newGame(t)
	g.State.Effects.Trigger(effects.InvertControls, effects.Duration)

	g.Step(0.1, input.Keys(rl.KeyW))
	assert.InDelta(t, 3.3, g.State.Camera.Position.Z, tolerance)
}

func TestEffectsExpire(t *testing.T) {
	g := newGame(t)
	place(g, 1.6, -1.0)

	press(g, rl.KeyE)
	require.True(t, g.State.Effects.Active(effects.FlipRoll))
	assert.InDelta(t, 180, g.State.Camera.Roll, tolerance)
	assert.False(t, g.State.Flasks[2].Available())
	// Flasks out of reach are untouched.
	assert.True(t, g.State.Flasks[1].Available())

	g.Step(effects.Duration, idle)
	assert.False(t, g.State.Effects.Active(effects.FlipRoll))
	assert.Zero(t, g.State.Camera.Roll)
}

func TestInvertColorsReachesRenderer(t *testing.T) {
	g := newGame(t)
	g.State.Effects.Trigger(effects.InvertColors, effects.Duration)

	g.Step(0.016, idle)
	assert.True(t, g.World.Renderer.InvertColors)
}

func TestLockedDoorBlocksPlayer(t *testing.T) {
	g := newGame(t)
	place(g, 4.6, 0)
	g.State.Camera.Yaw = 0

	g.Step(0.12, input.Keys(rl.KeyW))
	assert.InDelta(t, 4.6, g.State.Camera.Position.X, tolerance)
}

func TestLockedDoorStopsLongStep(t *testing.T) {
	g := newGame(t)
	place(g, 4.6, 0)
	g.State.Camera.Yaw = 0

	// One step lands at X 5.2, beyond the slab.
	g.Step(0.2, input.Keys(rl.KeyW))
	assert.InDelta(t, 4.6, g.State.Camera.Position.X, tolerance)
}

func TestLockedDoorStopsFlyingOverIt(t *testing.T) {
	g := newGame(t)
	press(g, rl.KeyF)
	require.True(t, g.State.FreeFly)

	g.State.Camera.Position = rl.Vector3{X: 4.6, Y: 2.35, Z: 0}
	g.State.Camera.Yaw = 0
	g.Step(0.2, input.Keys(rl.KeyW))
	assert.InDelta(t, 4.6, g.State.Camera.Position.X, tolerance)
	assert.InDelta(t, 2.35, g.State.Camera.Position.Y, tolerance)
}

func TestEscapeSequence(t *testing.T) {
	g := newGame(t)
	s := g.State

	var completed []string
	g.LevelComplete.AddListener(func(hint string) { completed = append(completed, hint) })

	// Door does not open without the keycard.
	place(g, 4.3, 0)
	press(g, rl.KeyE)
	assert.True(t, s.Door.Locked())

	place(g, 4.0, 2.8)
	assert.Equal(t, "Press E to pick up the keycard", s.CurrentHint())
	press(g, rl.KeyE)
	require.True(t, s.HasKeycard())
	assert.False(t, s.ReaderUsed())

	place(g, 4.3, -2.2)
	press(g, rl.KeyE)
	require.True(t, s.ReaderUsed())
	assert.True(t, s.Door.Locked())

	place(g, 4.3, 0)
	assert.Equal(t, "Press E to unlock the door", s.CurrentHint())
	press(g, rl.KeyE)
	require.Equal(t, interact.DoorOpen, s.Door.State())

	// Walk through the doorway.
	place(g, 4.6, 0)
	s.Camera.Yaw = 0
	g.Step(0.12, input.Keys(rl.KeyW))
	assert.InDelta(t, 4.96, s.Camera.Position.X, tolerance)
	assert.Empty(t, completed)

	place(g, 8.0, 0)
	g.Step(0.016, idle)
	assert.Equal(t, []string{interact.CompleteHint}, completed)
	assert.Equal(t, interact.CompleteHint, s.Hint)

	// Completion fires once.
	g.Step(0.016, idle)
	assert.Len(t, completed, 1)
}

func TestReaderAndDoorShareOnePress(t *testing.T) {
	g := newGame(t)
	s := g.State
	s.Keycard.Interact(&fakeNear{pos: s.Keycard.Position})

	place(g, 4.3, -1.5)
	press(g, rl.KeyE)
	assert.True(t, s.ReaderUsed())
	assert.Equal(t, interact.DoorOpen, s.Door.State())
}

func TestResetRestoresScene(t *testing.T) {
	g := newGame(t)
	s := g.State

	resets := 0
	g.OnReset.AddListener(func() { resets++ })

	place(g, 4.0, 2.8)
	press(g, rl.KeyE)
	press(g, rl.KeyC)
	s.Effects.Trigger(effects.InvertControls, effects.Duration)
	s.Camera.Pitch = 30
	s.Camera.Fov = 40

	for range 3 {
		g.Step(0.016, input.Keys(rl.KeyR))
	}
	assert.Equal(t, 1, resets)

	assert.Equal(t, world.SpawnPoint, s.Camera.Position)
	assert.Zero(t, s.Camera.Pitch)
	assert.InDelta(t, 60, s.Camera.Fov, tolerance)
	assert.False(t, s.HasKeycard())
	assert.True(t, s.Collision)
	assert.Empty(t, s.Effects.ActiveKinds())
	assert.Equal(t, "Find the keycard", s.Hint)
}

func TestLookAndZoom(t *testing.T) {
	g := newGame(t)

	g.Step(0.016, input.State{Delta: rl.Vector2{X: 100, Y: -2000}, Wheel: 1})
	assert.InDelta(t, -80, g.State.Camera.Yaw, tolerance)
	assert.InDelta(t, 89, g.State.Camera.Pitch, tolerance)
	assert.InDelta(t, 58, g.State.Camera.Fov, tolerance)
}

func TestDebugModeFreezesLook(t *testing.T) {
	g := newGame(t)
	press(g, rl.KeyF1)
	require.True(t, g.State.Debug)

	g.Step(0.016, input.State{Delta: rl.Vector2{X: 100}})
	assert.InDelta(t, -90, g.State.Camera.Yaw, tolerance)
}

func TestModelColliderPushesPlayer(t *testing.T) {
	g := newGame(t)

	p, ok := world.PlacementByName(world.ModelLabBench)
	require.True(t, ok)
	bench := engine.NewGameObject(p.Name)
	bench.Transform = engine.NewTransform(p.Position, p.Rotation, p.Scale)
	g.World.Scene.AddGameObject(bench)
	g.Reset()
	require.Equal(t, 3, g.Collisions.Len())

	place(g, 0, 1.2)
	g.Step(0.1, input.Keys(rl.KeyW))
	assert.InDelta(t, 0.95, g.State.Camera.Position.Z, tolerance)

	// Collision off walks straight in.
	press(g, rl.KeyC)
	place(g, 0, 1.2)
	g.Step(0.1, input.Keys(rl.KeyW))
	assert.InDelta(t, 0.9, g.State.Camera.Position.Z, tolerance)
}

func TestFreeFlyLeavesGround(t *testing.T) {
	g := newGame(t)
	press(g, rl.KeyF)

	g.Step(0.1, input.Keys(rl.KeySpace))
	assert.InDelta(t, 2.2, g.State.Camera.Position.Y, tolerance)
}

func TestHUDActionsApplyNextStep(t *testing.T) {
	g := newGame(t)
	g.pending = hudActions{collision: true, freeFly: true}

	g.Step(0.016, idle)
	assert.False(t, g.State.Collision)
	assert.True(t, g.State.FreeFly)

	g.Step(0.016, idle)
	assert.False(t, g.State.Collision)
}

func TestHUDResetMatchesResetKey(t *testing.T) {
	g := newGame(t)
	resets := 0
	g.OnReset.AddListener(func() { resets++ })

	place(g, 2, 2)
	g.pending = hudActions{reset: true}
	g.Step(0.1, input.Keys(rl.KeyW, rl.KeyF))

	assert.Equal(t, 1, resets)
	assert.Equal(t, world.SpawnPoint, g.State.Camera.Position)
	assert.False(t, g.State.FreeFly)

	// Keys held through the reset do not fire afterwards.
	g.Step(0.1, input.Keys(rl.KeyF))
	assert.False(t, g.State.FreeFly)
	assert.Equal(t, 1, resets)
}

func TestBarFill(t *testing.T) {
	assert.InDelta(t, 100, barFill(5, 10, 200), tolerance)
	assert.InDelta(t, 200, barFill(12, 10, 200), tolerance)
	assert.Zero(t, barFill(-1, 10, 200))
	assert.Zero(t, barFill(5, 0, 200))
}

type fakeNear struct{ pos rl.Vector3 }

func (f *fakeNear) Position() rl.Vector3                { return f.pos }
func (f *fakeNear) HasKeycard() bool                    { return false }
func (f *fakeNear) ReaderUsed() bool                    { return false }
func (f *fakeNear) TriggerEffect(effects.Kind, float32) {}
