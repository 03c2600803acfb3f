package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	// minDistSq keeps the square root away from zero.
	minDistSq = 1e-8
	// insideEpsilon is the distance under which the circle center is treated as on or inside the box.
	insideEpsilon = 1e-5
)

// OBB2D is a box in the horizontal (X/Z) plane rotated about the Y axis.
// Center.X/HalfExtents.X map to world X, Center.Y/HalfExtents.Y map to world Z.
// MinY/MaxY are kept for drawing; resolution ignores them.
type OBB2D struct {
	Center      rl.Vector2
	HalfExtents rl.Vector2
	Yaw         float32 // radians
	MinY        float32
	MaxY        float32
}

func NewOBB2D(center, halfExtents rl.Vector2, yaw, minY, maxY float32) OBB2D {
	return OBB2D{
		Center:      center,
		HalfExtents: halfExtents,
		Yaw:         yaw,
		MinY:        minY,
		MaxY:        maxY,
	}
}

// Height returns the vertical span of the box.
func (o OBB2D) Height() float32 {
	return o.MaxY - o.MinY
}

// CircleOverlapsOBB tests a circle against o and returns the world-space
// vector that pushes the circle out until it just touches the box.
// The push is zero when there is no overlap.
//
// When the center sits on or inside the box the push snaps to the local axis
// with the smaller remaining margin and has length radius, which can carry a
// circle past the far face of a thin box.
func CircleOverlapsOBB(center rl.Vector2, radius float32, o OBB2D) (bool, rl.Vector2) {
	// Into the box's local frame
	local := rotate2(rl.Vector2Subtract(center, o.Center), -o.Yaw)

	closest := rl.Vector2{
		X: clampf(local.X, -o.HalfExtents.X, o.HalfExtents.X),
		Y: clampf(local.Y, -o.HalfExtents.Y, o.HalfExtents.Y),
	}

	diff := rl.Vector2Subtract(local, closest)
	distSq := diff.X*diff.X + diff.Y*diff.Y
	if distSq >= radius*radius {
		return false, rl.Vector2{}
	}

	dist := math32.Sqrt(math32.Max(distSq, minDistSq))

	var normal rl.Vector2
	var penetration float32
	if dist > insideEpsilon {
		normal = rl.Vector2{X: diff.X / dist, Y: diff.Y / dist}
		penetration = radius - dist
	} else {
		dx := o.HalfExtents.X - math32.Abs(local.X)
		dz := o.HalfExtents.Y - math32.Abs(local.Y)
		if dx < dz {
			normal = rl.Vector2{X: sign(local.X)}
		} else {
			normal = rl.Vector2{Y: sign(local.Y)}
		}
		penetration = radius
	}

	push := rl.Vector2{X: normal.X * penetration, Y: normal.Y * penetration}
	return true, rotate2(push, o.Yaw)
}

// rotate2 rotates v counter-clockwise by angle radians in the X/Z plane.
func rotate2(v rl.Vector2, angle float32) rl.Vector2 {
	sin, cos := math32.Sincos(angle)
	return rl.Vector2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// sign treats 0 as positive so a circle centered exactly on the box center
// still gets a full-length push.
func sign(v float32) float32 {
	if v < 0 {
		return -1
	}
	return 1
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
