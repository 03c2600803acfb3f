package interact

import (
	"log/slog"

	"labescape/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type DoorState int

const (
	DoorLockedClosed DoorState = iota
	DoorUnlockedClosed
	DoorOpen
)

func (s DoorState) String() string {
	switch s {
	case DoorLockedClosed:
		return "locked"
	case DoorUnlockedClosed:
		return "closed"
	case DoorOpen:
		return "open"
	}
	return "unknown"
}

const (
	DoorInteractRadius float32 = 2.0
	doorSlide          float32 = 1.6

	// Yaw of the visual door model, in degrees.
	DoorClosedYaw float32 = -90
	DoorOpenYaw   float32 = 0
)

var (
	doorSize = rl.Vector3{X: 1.2, Y: 2.2, Z: 0.2}
	// Slab local bounds before the quarter turn.
	doorLocal = physics.NewAABBFromCenter(rl.Vector3{}, doorSize)
)

// SecurityDoor blocks the exit corridor until opened with the keycard.
// The blocking volume collapses to a zero box while open.
type SecurityDoor struct {
	Position rl.Vector3
	Radius   float32
	// Ceiling raises the top of the blocking volume to close the gap
	// above the slab. Ignored when below the slab top.
	Ceiling float32

	locked bool
	open   bool
	closed physics.AABB
}

func NewSecurityDoor(pos rl.Vector3) *SecurityDoor {
	d := &SecurityDoor{Position: pos, Radius: DoorInteractRadius}
	d.closed = doorLocal.Transform(d.slabTransform(pos))
	d.Reset()
	return d
}

// Reset returns the door to locked and closed.
func (d *SecurityDoor) Reset() {
	d.locked = true
	d.open = false
}

func (d *SecurityDoor) State() DoorState {
	switch {
	case d.open:
		return DoorOpen
	case d.locked:
		return DoorLockedClosed
	}
	return DoorUnlockedClosed
}

func (d *SecurityDoor) Locked() bool { return d.locked }

func (d *SecurityDoor) IsOpen() bool { return d.open }

// Blocking is the world volume the door currently occupies.
func (d *SecurityDoor) Blocking() physics.AABB {
	if d.open {
		return physics.AABB{}
	}
	b := d.closed
	b.Max.Y = max(b.Max.Y, d.Ceiling)
	return b
}

// BlocksMove reports whether a step from prev to next crosses the closed
// door. A player already inside the volume may only step out of it.
func (d *SecurityDoor) BlocksMove(prev, next rl.Vector3) bool {
	if d.open {
		return false
	}
	b := d.Blocking()
	if b.Contains(prev) {
		return b.Contains(next)
	}
	return b.SegmentHits(prev, next)
}

// ClosedModel places the unit-cube slab in the doorway.
func (d *SecurityDoor) ClosedModel() rl.Matrix {
	return d.slabMatrix(d.Position)
}

// OpenModel slides the slab out of the doorway.
func (d *SecurityDoor) OpenModel() rl.Matrix {
	return d.slabMatrix(rl.Vector3Add(d.Position, rl.Vector3{Z: doorSlide}))
}

// Model is the slab transform for the current state.
func (d *SecurityDoor) Model() rl.Matrix {
	if d.open {
		return d.OpenModel()
	}
	return d.ClosedModel()
}

// TargetYaw is where the visual door model should swing to.
func (d *SecurityDoor) TargetYaw() float32 {
	if d.open {
		return DoorOpenYaw
	}
	return DoorClosedYaw
}

func (d *SecurityDoor) Prompt() string {
	switch d.State() {
	case DoorLockedClosed:
		return "Press E to unlock the door"
	case DoorOpen:
		return "Press E to close the door"
	}
	return "Press E to open the door"
}

func (d *SecurityDoor) CanInteract(a Actor) bool {
	if !within(a, d.Position, d.Radius) {
		return false
	}
	return !d.locked || a.HasKeycard()
}

// Interact unlocks and opens in one step when locked, otherwise toggles.
func (d *SecurityDoor) Interact(a Actor) bool {
	if !d.CanInteract(a) {
		return false
	}
	if d.locked {
		d.locked = false
		d.open = true
		slog.Info("door unlocked")
		return true
	}
	d.open = !d.open
	slog.Info("door toggled", "state", d.State())
	return true
}

// slabMatrix scales the unit cube up to the slab size.
func (d *SecurityDoor) slabMatrix(pos rl.Vector3) rl.Matrix {
	return rl.MatrixMultiply(rl.MatrixScale(doorSize.X, doorSize.Y, doorSize.Z), d.slabTransform(pos))
}

// slabTransform is the quarter turn plus translation shared by the slab and its bounds.
func (d *SecurityDoor) slabTransform(pos rl.Vector3) rl.Matrix {
	return rl.MatrixMultiply(rl.MatrixRotateY(rl.Pi/2), rl.MatrixTranslate(pos.X, pos.Y, pos.Z))
}
