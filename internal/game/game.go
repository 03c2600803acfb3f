package game

import (
	"fmt"
	"log/slog"

	"labescape/internal/assets"
	"labescape/internal/audio"
	"labescape/internal/camera"
	"labescape/internal/components"
	"labescape/internal/config"
	"labescape/internal/effects"
	"labescape/internal/engine"
	"labescape/internal/input"
	"labescape/internal/interact"
	"labescape/internal/physics"
	"labescape/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	doorSwingSpeed float32 = 3
	spinSpeed      float32 = 45

	// maxFrameTime caps a single step after a stall.
	maxFrameTime float32 = 0.1
)

var watchedKeys = []int32{
	rl.KeyF, rl.KeyC, rl.KeyF1, rl.KeyL, rl.KeyE, rl.KeyR,
}

type Game struct {
	Config     config.Config
	State      *SceneState
	World      *world.World
	Collisions *physics.CollisionManager

	// LevelComplete fires once with the completion hint.
	LevelComplete engine.EventWithArg[string]
	// OnReset fires after every scene rebuild.
	OnReset engine.Event

	edges      *input.Edges
	pending    hudActions
	title      string
	cursorFree bool
}

// New builds the scene state without touching the window, so the frame step
// can run headless.
func New(cfg config.Config) *Game {
	cam := camera.New(world.SpawnPoint)
	cam.MoveSpeed = cfg.Player.MoveSpeed
	cam.FlySpeed = cfg.Player.FlySpeed
	cam.LookSpeed = cfg.Player.LookSpeed
	cam.EyeHeight = cfg.Player.EyeHeight
	cam.Position.Y = cfg.Player.EyeHeight

	state := &SceneState{
		Camera:    cam,
		Collision: true,
		Keycard:   interact.NewKeycard(world.KeycardSpawn),
		Reader:    interact.NewCardReader(world.ReaderPos),
		Door:      interact.NewSecurityDoor(world.DoorClosedPos),
		Exit:      interact.NewExitTrigger(world.ExitPos),
	}
	state.Door.Ceiling = world.RoomHeight
	for _, f := range world.FlaskEffects {
		p, _ := world.PlacementByName(f.Name)
		state.Flasks = append(state.Flasks, interact.NewFlask(f.Name, p.Position, f.Effect))
	}

	g := &Game{
		Config:     cfg,
		State:      state,
		World:      world.New(cfg.Player.Radius),
		Collisions: physics.NewCollisionManager(world.Colliders),
		edges:      input.NewEdges(watchedKeys...),
	}
	g.Reset()
	return g
}

// Run opens the window and drives the loop until the window closes.
func (g *Game) Run() error {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(g.Config.Window.Width, g.Config.Window.Height, g.Config.Window.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(g.Config.Window.TargetFPS)
	rl.DisableCursor()

	assets.Init()
	audio.Init(g.Config.Paths.Sounds)
	defer audio.Close()

	// Initialize world after OpenGL context is created
	if err := g.World.Renderer.Initialize(g.Config.Paths.Shaders); err != nil {
		slog.Warn("drawing unlit", "err", err)
	}
	g.World.LoadModels(g.Config.Paths.Assets)
	defer g.World.Unload()

	g.attachModels()
	g.World.Scene.Start()
	g.Reset()

	initHUDStyle()

	src := input.Raylib{}
	for !rl.WindowShouldClose() {
		g.Step(min(rl.GetFrameTime(), maxFrameTime), src)
		g.syncTitle()
		g.Draw()
	}
	return nil
}

// attachModels ties loaded models to the entity that owns them.
func (g *Game) attachModels() {
	s := g.State

	if obj := g.World.Object(world.ModelKeycard); obj != nil {
		if r := engine.GetComponent[*components.ModelRenderer](obj); r != nil {
			r.Visible = s.Keycard.Available
		}
		obj.AddComponent(components.NewSpinner(spinSpeed))
	}

	for _, f := range s.Flasks {
		obj := g.World.Object(f.Name)
		if obj == nil {
			continue
		}
		if r := engine.GetComponent[*components.ModelRenderer](obj); r != nil {
			r.Visible = f.Available
		}
	}

	if obj := g.World.Object(world.ModelDoor); obj != nil {
		obj.AddComponent(components.NewDoorAnimator(s.Door.TargetYaw, doorSwingSpeed))
	}
}

// Reset rebuilds the scene to its initial state: entities, camera, timers,
// model placements and the collider registry.
func (g *Game) Reset() {
	s := g.State

	s.Effects.Reset()
	s.Keycard.Reset()
	for _, f := range s.Flasks {
		f.Reset()
	}
	s.Reader.Reset()
	s.Door.Reset()
	s.Exit.Reset()

	cfg := g.Config.Player
	cam := s.Camera
	cam.Position = world.SpawnPoint
	cam.Position.Y = cfg.EyeHeight
	cam.Yaw, cam.Pitch, cam.Roll = -90, 0, 0
	cam.Fov = 60

	s.FreeFly = false
	s.Collision = true

	g.World.ResetPlacements()
	for _, obj := range g.World.Scene.GameObjects {
		if anim := engine.GetComponent[*components.DoorAnimator](obj); anim != nil {
			anim.Snap()
		}
		if spin := engine.GetComponent[*components.Spinner](obj); spin != nil {
			spin.Reset()
		}
	}
	g.World.Renderer.InvertColors = false

	g.rebuildColliders()
	s.Hint = s.CurrentHint()
	g.pending = hudActions{}

	slog.Info("scene reset", "colliders", g.Collisions.Len())
	g.OnReset.Invoke()
}

func (g *Game) rebuildColliders() {
	g.Collisions.SetupModelCollisions(g.World.NamedModels()...)
	for _, p := range g.World.SolidProps() {
		g.Collisions.AddModelOBBCollider(p.Object(), p.Size)
	}
}

// Step advances the simulation by dt seconds using one frame of input.
func (g *Game) Step(dt float32, src input.Source) {
	s := g.State
	cam := s.Camera

	// Timed effects
	s.Effects.Tick(dt)

	// Mode toggles
	g.edges.Update(src)
	if g.edges.Pressed(rl.KeyR) || g.pending.reset {
		g.Reset()
		g.edges.Reset(src)
		return
	}
	if g.edges.Pressed(rl.KeyF) {
		s.FreeFly = !s.FreeFly
		slog.Debug("free-fly", "on", s.FreeFly)
	}
	if g.edges.Pressed(rl.KeyC) {
		s.Collision = !s.Collision
		slog.Debug("collision", "on", s.Collision)
	}
	if g.edges.Pressed(rl.KeyF1) {
		s.Debug = !s.Debug
	}
	if g.edges.Pressed(rl.KeyL) {
		g.World.Renderer.Light.Enabled = !g.World.Renderer.Light.Enabled
	}
	g.applyHUD()

	// Candidate movement
	move := camera.Movement{
		Forward: input.Axis(src, rl.KeyW, rl.KeyS),
		Right:   input.Axis(src, rl.KeyD, rl.KeyA),
		Up:      input.Axis(src, rl.KeySpace, rl.KeyLeftControl),
	}
	prev := cam.Position
	next := cam.Candidate(move, dt, s.FreeFly, s.Effects.Active(effects.InvertControls))

	// Look
	if !s.Debug {
		cam.Look(src.MouseDelta())
	}
	cam.Zoom(src.WheelMove())

	// Collision
	if s.Collision {
		next = g.World.Room.Clamp(prev, next)
		if s.Door.BlocksMove(prev, next) {
			next = prev
		}
		resolved := g.Collisions.ResolveCircleVsScene(rl.Vector2{X: next.X, Y: next.Z}, g.Config.Player.Radius)
		next.X, next.Z = resolved.X, resolved.Y
	}
	cam.Position = next

	// Interaction
	if g.edges.Pressed(rl.KeyE) {
		g.interact()
	}

	// Passive triggers
	if s.Exit.Update(s) {
		audio.Play(audio.CueComplete, s.Exit.Position)
		g.LevelComplete.Invoke(interact.CompleteHint)
	}

	// Cosmetics
	cam.Roll = 0
	if s.Effects.Active(effects.FlipRoll) {
		cam.Roll = 180
	}
	g.World.Renderer.InvertColors = s.Effects.Active(effects.InvertColors)
	g.World.Update(dt)

	audio.SetListener(cam.Position, cam.LookDirection(), rl.Vector3{Y: 1})
	audio.Update()

	s.Hint = s.CurrentHint()
}

// interact gives each category one chance per key press.
func (g *Game) interact() {
	s := g.State

	if s.Keycard.Interact(s) {
		audio.Play(audio.CuePickup, s.Keycard.Position)
	}
	if f, ok := interact.FirstAvailable(s, s.Flasks...); ok && f.Interact(s) {
		audio.Play(audio.CueDrink, f.Position)
		if k, ok := f.Effect(); ok {
			slog.Info("effect started", "effect", k, "seconds", s.Effects.Remaining(k))
		}
	}
	if s.Reader.Interact(s) {
		audio.Play(audio.CueSwipe, s.Reader.Position)
	}

	wasLocked := s.Door.Locked()
	if s.Door.Interact(s) {
		cue := audio.CueDoor
		if wasLocked {
			cue = audio.CueUnlock
		}
		audio.Play(cue, s.Door.Position)
	}
}

// syncTitle mirrors the hint into the window title when it changes.
func (g *Game) syncTitle() {
	title := fmt.Sprintf("%s - %s", g.Config.Window.Title, g.State.Hint)
	if title == g.title {
		return
	}
	g.title = title
	rl.SetWindowTitle(title)
}

// Draw only reads state.
func (g *Game) Draw() {
	s := g.State
	cam := s.Camera.Camera3D()
	aspect := float32(rl.GetScreenWidth()) / float32(rl.GetScreenHeight())

	if s.Debug != g.cursorFree {
		g.cursorFree = s.Debug
		if s.Debug {
			rl.EnableCursor()
		} else {
			rl.DisableCursor()
		}
	}

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	rl.BeginMode3D(cam)
	g.World.Draw(cam, aspect)
	g.drawFallbacks()
	if s.Debug {
		g.drawDebug()
	}
	rl.EndMode3D()

	g.pending = g.drawHUD()
	rl.EndDrawing()
}

// drawFallbacks stands in for interactables whose model did not load so the
// level stays playable without assets.
func (g *Game) drawFallbacks() {
	s := g.State
	r := g.World.Renderer

	marker := func(name string, pos rl.Vector3, size float32, color rl.Color) {
		if g.World.Object(name) != nil {
			return
		}
		m := rl.MatrixMultiply(rl.MatrixScale(size, size, size), rl.MatrixTranslate(pos.X, pos.Y, pos.Z))
		r.DrawBox(m, color)
	}

	if s.Keycard.Available() {
		marker(world.ModelKeycard, s.Keycard.Position, 0.1, rl.SkyBlue)
	}
	for _, f := range s.Flasks {
		if f.Available() {
			marker(f.Name, f.Position, 0.12, rl.Lime)
		}
	}
	marker(world.ModelCardReader, s.Reader.Position, 0.15, rl.DarkGray)

	if g.World.Object(world.ModelDoor) == nil {
		r.DrawBox(s.Door.Model(), rl.Maroon)
	}
}

func (g *Game) drawDebug() {
	s := g.State
	g.Collisions.DrawCollisionDebug(g.World.Renderer)

	if b := s.Door.Blocking(); !b.IsZero() {
		rl.DrawBoundingBox(rl.BoundingBox{Min: b.Min, Max: b.Max}, rl.Red)
	}
	for _, a := range g.World.Room.Areas {
		rl.DrawBoundingBox(rl.BoundingBox{Min: a.Min, Max: a.Max}, rl.Yellow)
	}
	rl.DrawCircle3D(s.Exit.Position, s.Exit.Radius, rl.Vector3{X: 1}, 90, rl.Gold)
}
