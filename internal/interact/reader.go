package interact

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const ReaderRadius float32 = 1.5

// CardReader must be swiped with the keycard before the exit will accept the player.
type CardReader struct {
	Position rl.Vector3
	Radius   float32

	used bool
}

func NewCardReader(pos rl.Vector3) *CardReader {
	return &CardReader{Position: pos, Radius: ReaderRadius}
}

func (r *CardReader) Used() bool { return r.used }

func (r *CardReader) Reset() { r.used = false }

func (r *CardReader) Prompt() string { return "Press E to swipe the keycard" }

func (r *CardReader) CanInteract(a Actor) bool {
	return !r.used && a.HasKeycard() && within(a, r.Position, r.Radius)
}

func (r *CardReader) Interact(a Actor) bool {
	if !r.CanInteract(a) {
		return false
	}
	r.used = true
	slog.Info("card reader accepted keycard")
	return true
}
