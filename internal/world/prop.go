package world

import (
	"labescape/internal/engine"
	"labescape/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Prop is a static unit-cube instance: walls, floors and other blockout geometry.
type Prop struct {
	Name      string
	Position  rl.Vector3
	Size      rl.Vector3
	RotationY float32
	Transform rl.Matrix
	Bounds    physics.AABB // world space
	Color     rl.Color

	// Solid props get an OBB collider; walls are handled by the room bounds.
	Solid bool
}

// NewProp scales a unit cube to size, turns it rotationY degrees and moves it to pos.
func NewProp(name string, pos, size rl.Vector3, rotationY float32, color rl.Color) Prop {
	m := rl.MatrixMultiply(
		rl.MatrixMultiply(rl.MatrixScale(size.X, size.Y, size.Z), rl.MatrixRotateY(rotationY*rl.Deg2rad)),
		rl.MatrixTranslate(pos.X, pos.Y, pos.Z),
	)
	return Prop{
		Name:      name,
		Position:  pos,
		Size:      size,
		RotationY: rotationY,
		Transform: m,
		Bounds:    physics.UnitAABB.Transform(m),
		Color:     color,
	}
}

func Box(name string, pos, size rl.Vector3, color rl.Color) Prop {
	return NewProp(name, pos, size, 0, color)
}

// Panel is a thin wall piece, depth along local Z.
func Panel(name string, pos rl.Vector3, sizeXY rl.Vector2, depth, rotationY float32, color rl.Color) Prop {
	return NewProp(name, pos, rl.Vector3{X: sizeXY.X, Y: sizeXY.Y, Z: depth}, rotationY, color)
}

func Crate(name string, pos rl.Vector3, size float32, color rl.Color) Prop {
	return NewProp(name, pos, rl.Vector3{X: size, Y: size, Z: size}, 0, color)
}

func TableTop(name string, pos rl.Vector3, sizeXZ rl.Vector2, thickness float32, color rl.Color) Prop {
	return NewProp(name, pos, rl.Vector3{X: sizeXZ.X, Y: thickness, Z: sizeXZ.Y}, 0, color)
}

// TableLeg stands on pos, so pos is the foot rather than the center.
func TableLeg(name string, pos rl.Vector3, height, leg float32, color rl.Color) Prop {
	center := rl.Vector3{X: pos.X, Y: pos.Y + height*0.5, Z: pos.Z}
	return NewProp(name, center, rl.Vector3{X: leg, Y: height, Z: leg}, 0, color)
}

// Object places a bare game object on the prop's footprint so it can be fed
// to the collision manager.
func (p Prop) Object() *engine.GameObject {
	g := engine.NewGameObject(p.Name)
	g.Transform.Position = rl.Vector3{X: p.Position.X, Z: p.Position.Z}
	g.Transform.Rotation.Y = p.RotationY
	return g
}

func solid(p Prop) Prop {
	p.Solid = true
	return p
}

var (
	wallColor    = rl.Color{R: 200, G: 205, B: 210, A: 255}
	floorColor   = rl.Color{R: 120, G: 125, B: 130, A: 255}
	ceilingColor = rl.Color{R: 230, G: 230, B: 230, A: 255}
	crateColor   = rl.Color{R: 150, G: 110, B: 70, A: 255}
)

// BuildProps lays out the lab room, the east doorway and the exit corridor.
func BuildProps() []Prop {
	h := RoomHalfSize
	span := h * 2
	midY := RoomHeight * 0.5
	gap := DoorwayWidth * 0.5
	doorTop := float32(2.2)
	sideLen := h - gap
	corridorMid := h + CorridorLength*0.5

	props := []Prop{
		Box("floor", rl.Vector3{Y: -WallDepth * 0.5}, rl.Vector3{X: span, Y: WallDepth, Z: span}, floorColor),
		Box("ceiling", rl.Vector3{Y: RoomHeight + WallDepth*0.5}, rl.Vector3{X: span, Y: WallDepth, Z: span}, ceilingColor),

		Panel("wall_north", rl.Vector3{Y: midY, Z: -h}, rl.Vector2{X: span, Y: RoomHeight}, WallDepth, 0, wallColor),
		Panel("wall_south", rl.Vector3{Y: midY, Z: h}, rl.Vector2{X: span, Y: RoomHeight}, WallDepth, 0, wallColor),
		Panel("wall_west", rl.Vector3{X: -h, Y: midY}, rl.Vector2{X: span, Y: RoomHeight}, WallDepth, 90, wallColor),

		// East wall is split around the doorway.
		Panel("wall_east_n", rl.Vector3{X: h, Y: midY, Z: -(gap + sideLen*0.5)}, rl.Vector2{X: sideLen, Y: RoomHeight}, WallDepth, 90, wallColor),
		Panel("wall_east_s", rl.Vector3{X: h, Y: midY, Z: gap + sideLen*0.5}, rl.Vector2{X: sideLen, Y: RoomHeight}, WallDepth, 90, wallColor),
		Panel("door_lintel", rl.Vector3{X: h, Y: (doorTop + RoomHeight) * 0.5, Z: 0}, rl.Vector2{X: DoorwayWidth, Y: RoomHeight - doorTop}, WallDepth, 90, wallColor),

		Box("corridor_floor", rl.Vector3{X: corridorMid, Y: -WallDepth * 0.5}, rl.Vector3{X: CorridorLength, Y: WallDepth, Z: DoorwayWidth}, floorColor),
		Box("corridor_ceiling", rl.Vector3{X: corridorMid, Y: RoomHeight + WallDepth*0.5}, rl.Vector3{X: CorridorLength, Y: WallDepth, Z: DoorwayWidth}, ceilingColor),
		Panel("corridor_n", rl.Vector3{X: corridorMid, Y: midY, Z: -gap}, rl.Vector2{X: CorridorLength, Y: RoomHeight}, WallDepth, 0, wallColor),
		Panel("corridor_s", rl.Vector3{X: corridorMid, Y: midY, Z: gap}, rl.Vector2{X: CorridorLength, Y: RoomHeight}, WallDepth, 0, wallColor),
		Panel("corridor_end", rl.Vector3{X: h + CorridorLength, Y: midY}, rl.Vector2{X: DoorwayWidth, Y: RoomHeight}, WallDepth, 90, wallColor),

		solid(Crate("crate_a", rl.Vector3{X: -4.3, Y: 0.3, Z: 1.5}, 0.6, crateColor)),
		Crate("crate_b", rl.Vector3{X: -4.3, Y: 0.9, Z: 1.5}, 0.6, crateColor),
	}

	// Small side table by the fridge.
	top := rl.Vector3{X: -2.4, Y: 0.7, Z: -4.4}
	props = append(props, solid(TableTop("side_table_top", top, rl.Vector2{X: 1.0, Y: 0.5}, 0.08, crateColor)))
	for i, off := range []rl.Vector2{{X: -0.45, Y: -0.2}, {X: 0.45, Y: -0.2}, {X: -0.45, Y: 0.2}, {X: 0.45, Y: 0.2}} {
		foot := rl.Vector3{X: top.X + off.X, Y: 0, Z: top.Z + off.Y}
		props = append(props, TableLeg(legName(i), foot, 0.66, 0.06, crateColor))
	}
	return props
}

func legName(i int) string {
	return "side_table_leg_" + string(rune('a'+i))
}
