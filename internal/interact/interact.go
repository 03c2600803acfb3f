// Package interact holds the scene entities the player can act on. Each one
// owns its own state and decides for itself whether an interaction applies.
package interact

import (
	"labescape/internal/effects"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Actor is the read side of the player that entities query, plus the one
// write they are allowed to make.
type Actor interface {
	Position() rl.Vector3
	HasKeycard() bool
	ReaderUsed() bool
	TriggerEffect(k effects.Kind, duration float32)
}

// Interactable is anything the interact key can act on.
// Interact reports whether anything changed and is a no-op when CanInteract is false.
type Interactable interface {
	Prompt() string
	CanInteract(a Actor) bool
	Interact(a Actor) bool
}

// FirstAvailable returns the first item a can interact with, or nil.
func FirstAvailable[T Interactable](a Actor, items ...T) (T, bool) {
	for _, it := range items {
		if it.CanInteract(a) {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// PlanarDistance measures along the floor, ignoring eye height.
func PlanarDistance(a, b rl.Vector3) float32 {
	dx := a.X - b.X
	dz := a.Z - b.Z
	return math32.Sqrt(dx*dx + dz*dz)
}

func within(a Actor, pos rl.Vector3, radius float32) bool {
	return PlanarDistance(a.Position(), pos) < radius
}
