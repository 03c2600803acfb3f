package interact

import (
	"log/slog"

	"labescape/internal/effects"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const PickupRadius float32 = 1.5

// Pickup is a one-shot item. Once taken it stays taken until Reset.
type Pickup struct {
	Name     string
	Position rl.Vector3
	Radius   float32

	prompt    string
	effect    effects.Kind
	hasEffect bool
	duration  float32
	taken     bool
}

func NewKeycard(pos rl.Vector3) *Pickup {
	return &Pickup{
		Name:     "keycard",
		Position: pos,
		Radius:   PickupRadius,
		prompt:   "Press E to pick up the keycard",
	}
}

// NewFlask makes a potion that starts effect k for effects.Duration when drunk.
func NewFlask(name string, pos rl.Vector3, k effects.Kind) *Pickup {
	return &Pickup{
		Name:      name,
		Position:  pos,
		Radius:    PickupRadius,
		prompt:    "Press E to drink the potion",
		effect:    k,
		hasEffect: true,
		duration:  effects.Duration,
	}
}

func (p *Pickup) Taken() bool { return p.taken }

// Available is the inverse of Taken, used to decide whether to draw the item.
func (p *Pickup) Available() bool { return !p.taken }

// Effect returns the timed effect the pickup starts, if any.
func (p *Pickup) Effect() (effects.Kind, bool) {
	return p.effect, p.hasEffect
}

func (p *Pickup) Reset() { p.taken = false }

func (p *Pickup) Prompt() string { return p.prompt }

func (p *Pickup) CanInteract(a Actor) bool {
	return !p.taken && within(a, p.Position, p.Radius)
}

func (p *Pickup) Interact(a Actor) bool {
	if !p.CanInteract(a) {
		return false
	}
	p.taken = true
	if p.hasEffect {
		a.TriggerEffect(p.effect, p.duration)
	}
	slog.Info("picked up", "item", p.Name)
	return true
}
