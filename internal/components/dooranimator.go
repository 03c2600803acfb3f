package components

import (
	"labescape/internal/engine"

	"github.com/chewxy/math32"
)

// DoorAnimator eases the object's yaw toward Target. The target can change
// at any time; the swing just follows.
type DoorAnimator struct {
	engine.BaseComponent
	Target func() float32
	Speed  float32
	Yaw    float32
}

func NewDoorAnimator(target func() float32, speed float32) *DoorAnimator {
	return &DoorAnimator{Target: target, Speed: speed}
}

func (d *DoorAnimator) Start() {
	g := d.GetGameObject()
	if g == nil {
		return
	}
	d.Yaw = g.Transform.Rotation.Y
}

// Snap jumps straight to the current target.
func (d *DoorAnimator) Snap() {
	if d.Target == nil {
		return
	}
	d.Yaw = d.Target()
	if g := d.GetGameObject(); g != nil {
		g.Transform.Rotation.Y = d.Yaw
	}
}

func (d *DoorAnimator) Update(deltaTime float32) {
	g := d.GetGameObject()
	if g == nil || d.Target == nil {
		return
	}

	t := math32.Min(1, deltaTime*d.Speed)
	d.Yaw += (d.Target() - d.Yaw) * t
	g.Transform.Rotation.Y = d.Yaw
}
