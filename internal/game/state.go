package game

import (
	"labescape/internal/camera"
	"labescape/internal/effects"
	"labescape/internal/interact"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SceneState is everything the frame step mutates. Entities see it only
// through interact.Actor.
type SceneState struct {
	Camera  *camera.FPSCamera
	Effects effects.Timers

	FreeFly   bool
	Collision bool
	Debug     bool

	Hint string

	Keycard *interact.Pickup
	Flasks  []*interact.Pickup
	Reader  *interact.CardReader
	Door    *interact.SecurityDoor
	Exit    *interact.ExitTrigger
}

var _ interact.Actor = (*SceneState)(nil)

func (s *SceneState) Position() rl.Vector3 { return s.Camera.Position }

func (s *SceneState) HasKeycard() bool { return s.Keycard.Taken() }

func (s *SceneState) ReaderUsed() bool { return s.Reader.Used() }

func (s *SceneState) TriggerEffect(k effects.Kind, duration float32) {
	s.Effects.Trigger(k, duration)
}

// Objective is the hint shown when nothing is in reach.
func (s *SceneState) Objective() string {
	switch {
	case s.Exit.Completed():
		return interact.CompleteHint
	case !s.HasKeycard():
		return "Find the keycard"
	case !s.ReaderUsed():
		return "Swipe the keycard at the reader"
	case !s.Door.IsOpen():
		return "Open the security door"
	}
	return "Reach the exit"
}

// CurrentHint prefers the prompt of whatever the player can act on right now.
func (s *SceneState) CurrentHint() string {
	if s.Exit.Completed() {
		return interact.CompleteHint
	}
	if s.Keycard.CanInteract(s) {
		return s.Keycard.Prompt()
	}
	if f, ok := interact.FirstAvailable(s, s.Flasks...); ok {
		return f.Prompt()
	}
	if s.Reader.CanInteract(s) {
		return s.Reader.Prompt()
	}
	if s.Door.CanInteract(s) {
		return s.Door.Prompt()
	}
	return s.Objective()
}
