package camera

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

const tolerance = 1e-4

func TestLookClampsPitch(t *testing.T) {
	c := New(rl.Vector3{Y: 1.7})
	c.Look(rl.Vector2{Y: -10000})
	assert.Equal(t, float32(89), c.Pitch)

	c.Look(rl.Vector2{Y: 20000})
	assert.Equal(t, float32(-89), c.Pitch)

	c.Look(rl.Vector2{X: 100})
	assert.InDelta(t, -80, c.Yaw, tolerance)
}

func TestDefaultLooksDownNegativeZ(t *testing.T) {
	c := New(rl.Vector3{Y: 1.7})
	forward, right := c.Directions()

	assert.InDelta(t, 0, forward.X, tolerance)
	assert.InDelta(t, -1, forward.Z, tolerance)
	assert.InDelta(t, 1, right.X, tolerance)
	assert.InDelta(t, 0, right.Z, tolerance)
}

func TestCandidateGroundLocked(t *testing.T) {
	c := New(rl.Vector3{Y: 1.7})
	c.Pitch = 45

	next := c.Candidate(Movement{Forward: 1, Up: 1}, 1, false, false)
	assert.InDelta(t, 0, next.X, tolerance)
	assert.InDelta(t, 1.7, next.Y, tolerance)
	assert.InDelta(t, -c.MoveSpeed, next.Z, tolerance)

	// Candidate never mutates the camera.
	assert.Equal(t, rl.Vector3{Y: 1.7}, c.Position)
}

func TestCandidateDiagonalIsNormalized(t *testing.T) {
	c := New(rl.Vector3{})
	next := c.Candidate(Movement{Forward: 1, Right: 1}, 1, false, false)
	assert.InDelta(t, c.MoveSpeed, rl.Vector3Length(next), tolerance)
}

func TestCandidateInverted(t *testing.T) {
	c := New(rl.Vector3{Y: 1.7})
	next := c.Candidate(Movement{Forward: 1}, 1, false, true)
	assert.InDelta(t, c.MoveSpeed, next.Z, tolerance)

	next = c.Candidate(Movement{Right: 1}, 1, false, true)
	assert.InDelta(t, -c.MoveSpeed, next.X, tolerance)
}

func TestCandidateFreeFly(t *testing.T) {
	c := New(rl.Vector3{Y: 1.7})
	next := c.Candidate(Movement{Up: 1}, 0.5, true, false)
	assert.InDelta(t, 1.7+c.FlySpeed*0.5, next.Y, tolerance)

	c.Pitch = 89
	next = c.Candidate(Movement{Forward: 1}, 1, true, false)
	assert.Greater(t, next.Y, float32(1.7+c.FlySpeed*0.9))
}

func TestZoomClamps(t *testing.T) {
	c := New(rl.Vector3{})
	c.Zoom(1)
	assert.Equal(t, float32(58), c.Fov)

	c.Zoom(100)
	assert.Equal(t, MinFov, c.Fov)

	c.Zoom(-100)
	assert.Equal(t, MaxFov, c.Fov)
}

func TestCamera3DRoll(t *testing.T) {
	c := New(rl.Vector3{Y: 1.7})
	cam := c.Camera3D()
	assert.InDelta(t, 1, cam.Up.Y, tolerance)
	assert.InDelta(t, -1, cam.Target.Z, tolerance)

	c.Roll = 180
	cam = c.Camera3D()
	assert.InDelta(t, -1, cam.Up.Y, tolerance)
	assert.Equal(t, c.Fov, cam.Fovy)
}
