package camera

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	MinFov    float32 = 30
	MaxFov    float32 = 90
	zoomStep  float32 = 2
	pitchStop float32 = 89
)

// Movement is the per-frame movement intent, each axis in [-1, 1].
type Movement struct {
	Forward float32
	Right   float32
	Up      float32
}

func (m Movement) IsZero() bool {
	return m == Movement{}
}

type FPSCamera struct {
	Position rl.Vector3
	Yaw      float32 // degrees, -90 looks down -Z
	Pitch    float32
	Roll     float32
	Fov      float32

	MoveSpeed float32 // units per second
	FlySpeed  float32
	LookSpeed float32 // degrees per pixel
	EyeHeight float32
	Near, Far float32
}

func New(pos rl.Vector3) *FPSCamera {
	return &FPSCamera{
		Position:  pos,
		Yaw:       -90.0,
		Pitch:     0,
		Fov:       60,
		MoveSpeed: 3.0,
		FlySpeed:  5.0,
		LookSpeed: 0.1,
		EyeHeight: pos.Y,
		Near:      0.1,
		Far:       100,
	}
}

// Look applies a mouse delta. Pitch is clamped so the view never flips.
func (c *FPSCamera) Look(delta rl.Vector2) {
	c.Yaw += delta.X * c.LookSpeed
	c.Pitch -= delta.Y * c.LookSpeed

	if c.Pitch > pitchStop {
		c.Pitch = pitchStop
	}
	if c.Pitch < -pitchStop {
		c.Pitch = -pitchStop
	}
}

// Zoom narrows the field of view on scroll up.
func (c *FPSCamera) Zoom(wheel float32) {
	if wheel == 0 {
		return
	}
	c.Fov = clampf(c.Fov-wheel*zoomStep, MinFov, MaxFov)
}

// Directions returns the horizontal forward and right vectors.
func (c *FPSCamera) Directions() (forward, right rl.Vector3) {
	sin, cos := math32.Sincos(c.Yaw * rl.Deg2rad)
	forward = rl.Vector3{X: cos, Y: 0, Z: sin}
	right = rl.Vector3{X: -sin, Y: 0, Z: cos}
	return
}

// LookDirection is the unit view vector including pitch.
func (c *FPSCamera) LookDirection() rl.Vector3 {
	ys, yc := math32.Sincos(c.Yaw * rl.Deg2rad)
	ps, pc := math32.Sincos(c.Pitch * rl.Deg2rad)
	return rl.Vector3{X: yc * pc, Y: ps, Z: ys * pc}
}

// Candidate computes where the camera wants to be after dt without moving it.
// On the ground the eye stays at EyeHeight; free-fly follows the view pitch
// and the Up axis. Inverted flips every axis.
func (c *FPSCamera) Candidate(m Movement, dt float32, freeFly, inverted bool) rl.Vector3 {
	if inverted {
		m = Movement{Forward: -m.Forward, Right: -m.Right, Up: -m.Up}
	}

	forward, right := c.Directions()
	speed := c.MoveSpeed
	if freeFly {
		forward = c.LookDirection()
		speed = c.FlySpeed
	}

	dir := rl.Vector3Add(rl.Vector3Scale(forward, m.Forward), rl.Vector3Scale(right, m.Right))
	if freeFly {
		dir.Y += m.Up
	}

	// Normalize diagonal movement so you don't go faster diagonally
	if l := rl.Vector3Length(dir); l > 0 {
		dir = rl.Vector3Scale(dir, 1/l)
	}

	next := rl.Vector3Add(c.Position, rl.Vector3Scale(dir, speed*dt))
	if !freeFly {
		next.Y = c.EyeHeight
	}
	return next
}

func (c *FPSCamera) Camera3D() rl.Camera3D {
	look := c.LookDirection()
	up := rl.Vector3{X: 0, Y: 1, Z: 0}
	if c.Roll != 0 {
		up = rl.Vector3RotateByAxisAngle(up, look, c.Roll*rl.Deg2rad)
	}

	return rl.Camera3D{
		Position:   c.Position,
		Target:     rl.Vector3Add(c.Position, look),
		Up:         up,
		Fovy:       c.Fov,
		Projection: rl.CameraPerspective,
	}
}

func clampf(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
