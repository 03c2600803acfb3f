package components

import (
	"labescape/internal/engine"

	"github.com/chewxy/math32"
)

// Spinner turns an item slowly about Y and bobs it so it reads as collectable.
type Spinner struct {
	engine.BaseComponent
	DegreesPerSecond float32
	BobHeight        float32
	BobSpeed         float32

	baseY float32
	time  float32
}

func NewSpinner(degreesPerSecond float32) *Spinner {
	return &Spinner{
		DegreesPerSecond: degreesPerSecond,
		BobHeight:        0.02,
		BobSpeed:         2,
	}
}

func (s *Spinner) Start() {
	if g := s.GetGameObject(); g != nil {
		s.baseY = g.Transform.Position.Y
	}
}

func (s *Spinner) Update(deltaTime float32) {
	g := s.GetGameObject()
	if g == nil {
		return
	}

	s.time += deltaTime
	g.Transform.Rotation.Y = math32.Mod(g.Transform.Rotation.Y+s.DegreesPerSecond*deltaTime, 360)
	g.Transform.Position.Y = s.baseY + math32.Sin(s.time*s.BobSpeed)*s.BobHeight
}

// Reset puts the item back at its resting height.
func (s *Spinner) Reset() {
	s.time = 0
	if g := s.GetGameObject(); g != nil {
		g.Transform.Position.Y = s.baseY
	}
}
