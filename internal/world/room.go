package world

import (
	"labescape/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Room is the walkable space as a union of boxes, already shrunk by the
// player radius.
type Room struct {
	Areas []physics.AABB
}

// NewRoom builds the lab plus the corridor behind the east doorway.
func NewRoom(radius float32) Room {
	const margin = 0.1
	h := RoomHalfSize - radius
	lane := DoorwayWidth*0.5 - radius

	return Room{Areas: []physics.AABB{
		{
			Min: rl.Vector3{X: -h, Y: margin, Z: -h},
			Max: rl.Vector3{X: h, Y: RoomHeight - margin, Z: h},
		},
		{
			Min: rl.Vector3{X: h - radius, Y: margin, Z: -lane},
			Max: rl.Vector3{X: RoomHalfSize + CorridorLength - radius, Y: RoomHeight - margin, Z: lane},
		},
	}}
}

// Clamp keeps next inside the room. A point already inside any area passes
// through; otherwise it is clamped into the area prev was in, which slides
// the player along the wall.
func (r Room) Clamp(prev, next rl.Vector3) rl.Vector3 {
	if len(r.Areas) == 0 {
		return next
	}
	for _, a := range r.Areas {
		if a.Contains(next) {
			return next
		}
	}

	area := r.Areas[0]
	for _, a := range r.Areas {
		if a.Contains(prev) {
			area = a
			break
		}
	}
	return rl.Vector3Clamp(next, area.Min, area.Max)
}
