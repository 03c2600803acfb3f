package world

import (
	"labescape/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Frustum holds the 6 clip planes of a camera, normals pointing inward.
type Frustum struct {
	planes [6]Plane // left, right, bottom, top, near, far
}

// Plane represents a plane in 3D space (ax + by + cz + d = 0)
type Plane struct {
	normal   rl.Vector3
	distance float32
}

// ExtractFrustum pulls the planes out of the camera's view-projection matrix
// (Gribb/Hartmann).
func ExtractFrustum(camera rl.Camera3D, aspect, near, far float32) Frustum {
	view := rl.MatrixLookAt(camera.Position, camera.Target, camera.Up)
	proj := rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, near, far)
	vp := rl.MatrixMultiply(view, proj)

	rows := [4][4]float32{
		{vp.M0, vp.M4, vp.M8, vp.M12},
		{vp.M1, vp.M5, vp.M9, vp.M13},
		{vp.M2, vp.M6, vp.M10, vp.M14},
		{vp.M3, vp.M7, vp.M11, vp.M15},
	}

	var f Frustum
	for i := range 3 {
		f.planes[2*i] = planeFromRows(rows[3], rows[i], 1)
		f.planes[2*i+1] = planeFromRows(rows[3], rows[i], -1)
	}
	return f
}

// planeFromRows builds row4 + sign*row and normalizes it.
func planeFromRows(w, r [4]float32, sign float32) Plane {
	p := Plane{
		normal: rl.Vector3{
			X: w[0] + sign*r[0],
			Y: w[1] + sign*r[1],
			Z: w[2] + sign*r[2],
		},
		distance: w[3] + sign*r[3],
	}
	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	p.normal = rl.Vector3Scale(p.normal, 1.0/length)
	p.distance /= length
	return p
}

func (p Plane) signedDistance(v rl.Vector3) float32 {
	return rl.Vector3DotProduct(p.normal, v) + p.distance
}

// ContainsSphere tests if a sphere is inside or intersects the frustum
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for _, p := range f.planes {
		if p.signedDistance(center) < -radius {
			return false
		}
	}
	return true
}

// ContainsAABB is conservative: boxes straddling a frustum corner may pass.
func (f *Frustum) ContainsAABB(b physics.AABB) bool {
	for _, p := range f.planes {
		// Corner furthest along the plane normal
		v := b.Min
		if p.normal.X >= 0 {
			v.X = b.Max.X
		}
		if p.normal.Y >= 0 {
			v.Y = b.Max.Y
		}
		if p.normal.Z >= 0 {
			v.Z = b.Max.Z
		}
		if p.signedDistance(v) < 0 {
			return false
		}
	}
	return true
}
