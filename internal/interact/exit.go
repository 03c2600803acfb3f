package interact

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	ExitRadius float32 = 1.0

	CompleteHint = "Level Complete! Press R to restart."
)

// ExitTrigger completes the level when the player walks into it after using
// the card reader. It fires without a key press; see Update.
type ExitTrigger struct {
	Position rl.Vector3
	Radius   float32

	completed bool
}

func NewExitTrigger(pos rl.Vector3) *ExitTrigger {
	return &ExitTrigger{Position: pos, Radius: ExitRadius}
}

func (e *ExitTrigger) Completed() bool { return e.completed }

func (e *ExitTrigger) Reset() { e.completed = false }

func (e *ExitTrigger) Prompt() string {
	if e.completed {
		return CompleteHint
	}
	return "Find the exit"
}

func (e *ExitTrigger) CanInteract(a Actor) bool {
	return !e.completed && a.ReaderUsed() && within(a, e.Position, e.Radius)
}

func (e *ExitTrigger) Interact(a Actor) bool {
	if !e.CanInteract(a) {
		return false
	}
	e.completed = true
	slog.Info("level complete")
	return true
}

// Update is the per-frame check; it reports true only on the frame the level completes.
func (e *ExitTrigger) Update(a Actor) bool {
	return e.Interact(a)
}
