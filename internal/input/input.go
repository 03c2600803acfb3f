// Package input decouples the frame step from raylib's global input state.
package input

import rl "github.com/gen2brain/raylib-go/raylib"

// Source is polled once per frame.
type Source interface {
	IsKeyDown(key int32) bool
	MouseDelta() rl.Vector2
	WheelMove() float32
}

// Raylib reads the live window input.
type Raylib struct{}

func (Raylib) IsKeyDown(key int32) bool { return rl.IsKeyDown(key) }

func (Raylib) MouseDelta() rl.Vector2 { return rl.GetMouseDelta() }

func (Raylib) WheelMove() float32 { return rl.GetMouseWheelMove() }

// State is a fixed snapshot of input, used for scripted frames.
type State struct {
	Down  map[int32]bool
	Delta rl.Vector2
	Wheel float32
}

func (s State) IsKeyDown(key int32) bool { return s.Down[key] }

func (s State) MouseDelta() rl.Vector2 { return s.Delta }

func (s State) WheelMove() float32 { return s.Wheel }

// Keys returns a State with the given keys held.
func Keys(keys ...int32) State {
	s := State{Down: make(map[int32]bool, len(keys))}
	for _, k := range keys {
		s.Down[k] = true
	}
	return s
}

// Axis maps a pair of keys to -1, 0 or 1.
func Axis(src Source, positive, negative int32) float32 {
	var v float32
	if src.IsKeyDown(positive) {
		v++
	}
	if src.IsKeyDown(negative) {
		v--
	}
	return v
}
