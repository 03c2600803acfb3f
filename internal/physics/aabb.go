package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// AABB is an axis-aligned box in whatever space its corners were given in.
type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// UnitAABB is the local bounds of a unit cube centered on the origin.
var UnitAABB = AABB{
	Min: rl.Vector3{X: -0.5, Y: -0.5, Z: -0.5},
	Max: rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5},
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

// Contains reports whether p lies inside the box, faces included.
func (a AABB) Contains(p rl.Vector3) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y &&
		p.Z >= a.Min.Z && p.Z <= a.Max.Z
}

// SegmentHits reports whether any point of the segment from p to q lies
// inside the box, faces included. Slab test clipped to t in [0, 1].
func (a AABB) SegmentHits(p, q rl.Vector3) bool {
	origin := [3]float32{p.X, p.Y, p.Z}
	dir := [3]float32{q.X - p.X, q.Y - p.Y, q.Z - p.Z}
	lo := [3]float32{a.Min.X, a.Min.Y, a.Min.Z}
	hi := [3]float32{a.Max.X, a.Max.Y, a.Max.Z}

	tmin, tmax := float32(0), float32(1)
	for i := range 3 {
		if dir[i] == 0 {
			if origin[i] < lo[i] || origin[i] > hi[i] {
				return false
			}
			continue
		}
		t1 := (lo[i] - origin[i]) / dir[i]
		t2 := (hi[i] - origin[i]) / dir[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
		if tmin > tmax {
			return false
		}
	}
	return true
}

// IsZero reports whether the box has collapsed to a single point at the origin.
func (a AABB) IsZero() bool {
	return a == AABB{}
}

func (a AABB) Size() rl.Vector3 {
	return rl.Vector3Subtract(a.Max, a.Min)
}

func (a AABB) Center() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(a.Min, a.Max), 0.5)
}

// Transform moves all 8 corners through m and returns the axis-aligned box
// enclosing them. Rotated boxes come back larger than a true OBB would be.
func (a AABB) Transform(m rl.Matrix) AABB {
	corners := [8]rl.Vector3{
		{X: a.Min.X, Y: a.Min.Y, Z: a.Min.Z}, {X: a.Max.X, Y: a.Min.Y, Z: a.Min.Z},
		{X: a.Min.X, Y: a.Max.Y, Z: a.Min.Z}, {X: a.Max.X, Y: a.Max.Y, Z: a.Min.Z},
		{X: a.Min.X, Y: a.Min.Y, Z: a.Max.Z}, {X: a.Max.X, Y: a.Min.Y, Z: a.Max.Z},
		{X: a.Min.X, Y: a.Max.Y, Z: a.Max.Z}, {X: a.Max.X, Y: a.Max.Y, Z: a.Max.Z},
	}

	inf := float32(math.Inf(1))
	out := AABB{
		Min: rl.Vector3{X: inf, Y: inf, Z: inf},
		Max: rl.Vector3{X: -inf, Y: -inf, Z: -inf},
	}
	for _, c := range corners {
		v := rl.Vector3Transform(c, m)
		out.Min = rl.Vector3Min(out.Min, v)
		out.Max = rl.Vector3Max(out.Max, v)
	}
	return out
}
