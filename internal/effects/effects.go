// Package effects tracks timed gameplay modifiers started by potion pickups.
package effects

import "fmt"

type Kind int

const (
	InvertControls Kind = iota
	InvertColors
	FlipRoll
	kindCount
)

// Duration is the full countdown, in seconds, a trigger starts from.
const Duration float32 = 10

func (k Kind) String() string {
	switch k {
	case InvertControls:
		return "inverted controls"
	case InvertColors:
		return "inverted colors"
	case FlipRoll:
		return "flipped view"
	}
	return fmt.Sprintf("effect(%d)", int(k))
}

func (k Kind) valid() bool {
	return k >= 0 && k < kindCount
}

// Timers holds one countdown per effect kind. The zero value has nothing active.
type Timers struct {
	remaining [kindCount]float32
}

// Trigger starts k at duration seconds, replacing whatever was left.
func (t *Timers) Trigger(k Kind, duration float32) {
	if !k.valid() {
		return
	}
	if duration < 0 {
		duration = 0
	}
	t.remaining[k] = duration
}

// Tick counts every effect down by dt, stopping at zero.
func (t *Timers) Tick(dt float32) {
	if dt <= 0 {
		return
	}
	for i := range t.remaining {
		t.remaining[i] -= dt
		if t.remaining[i] < 0 {
			t.remaining[i] = 0
		}
	}
}

func (t *Timers) Active(k Kind) bool {
	return t.Remaining(k) > 0
}

func (t *Timers) Remaining(k Kind) float32 {
	if !k.valid() {
		return 0
	}
	return t.remaining[k]
}

// ActiveKinds lists running effects in Kind order.
func (t *Timers) ActiveKinds() []Kind {
	var kinds []Kind
	for k := Kind(0); k < kindCount; k++ {
		if t.Active(k) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

func (t *Timers) Reset() {
	t.remaining = [kindCount]float32{}
}
