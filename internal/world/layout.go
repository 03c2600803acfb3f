package world

import (
	"labescape/internal/effects"
	"labescape/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Model names shared by the placement and collider tables.
const (
	ModelStool       = "stool"
	ModelLabChair    = "lab_chair"
	ModelComputer    = "computer_desk"
	ModelTubeRack    = "test_tube_rack"
	ModelWaterBath   = "water_bath"
	ModelLabBench    = "lab_bench"
	ModelGlassFlask  = "conical_flask"
	ModelTimer       = "timer"
	ModelOfficeDesk  = "office_desk"
	ModelMicroscope  = "microscope"
	ModelExtinguish  = "fire_extinguisher"
	ModelGoggles     = "safety_goggles"
	ModelFridge      = "fridge"
	ModelPCR         = "pcr_machine"
	ModelCeilingLamp = "ceiling_light"
	ModelKeycard     = "keycard"
	ModelCardReader  = "card_reader"
	ModelDoor        = "door"
	ModelFlask1      = "flask1"
	ModelFlask2      = "flask2"
	ModelFlask3      = "flask3"
)

const (
	RoomHalfSize float32 = 5
	RoomHeight   float32 = 2.5
	WallDepth    float32 = 0.1

	CorridorLength float32 = 4
	DoorwayWidth   float32 = 1.2

	GlassOpacity float32 = 0.35
)

var (
	SpawnPoint    = rl.Vector3{X: 0, Y: 1.7, Z: 3}
	KeycardSpawn  = rl.Vector3{X: 4.0, Y: 0.82, Z: 3.4}
	DoorClosedPos = rl.Vector3{X: 5.0, Y: 1.1, Z: 0}
	ReaderPos     = rl.Vector3{X: 4.9, Y: 1.2, Z: -1.5}
	ExitPos       = rl.Vector3{X: 8.2, Y: 0, Z: 0}
	LightPos      = rl.Vector3{X: 0, Y: 2.4, Z: 0}
)

// Placement is one model of the fixed scene.
type Placement struct {
	Name       string
	Path       string
	TextureDir string
	Position   rl.Vector3
	Rotation   rl.Vector3 // degrees
	Scale      rl.Vector3
	Opacity    float32 // 0 means opaque
}

func uniform(s float32) rl.Vector3 { return rl.Vector3{X: s, Y: s, Z: s} }

// Placements lists every model in draw order. Paths are relative to the assets folder.
var Placements = []Placement{
	{Name: ModelStool, Path: "bar-stool/bar_stool_01.glb", TextureDir: "bar-stool/textures",
		Position: rl.Vector3{X: 0, Y: 0, Z: 1}, Rotation: rl.Vector3{Y: -90}, Scale: uniform(0.017)},
	{Name: ModelLabChair, Path: "lab-chair/chair_low_triangulated.glb", TextureDir: "lab-chair/textures",
		Position: rl.Vector3{X: -3.5, Y: 0.1, Z: 3.7}, Rotation: rl.Vector3{Y: -90}, Scale: uniform(0.025)},
	{Name: ModelComputer, Path: "desk-low-poly/Desk.glb",
		Position: rl.Vector3{X: -3.5, Y: 0, Z: 4.3}, Rotation: rl.Vector3{X: 270, Y: 90}, Scale: uniform(0.4)},
	{Name: ModelTubeRack, Path: "test-tube-mutations/Phials_Collection.glb",
		Position: rl.Vector3{X: -1.2, Y: 1, Z: 1.2}, Rotation: rl.Vector3{X: 270, Y: 90}, Scale: uniform(0.2)},
	{Name: ModelWaterBath, Path: "water-bath/Water_Bath.glb",
		Position: rl.Vector3{X: 0.7, Y: 1, Z: 0}, Scale: uniform(0.06)},
	{Name: ModelLabBench, Path: "chemistry-lab-table/Table_02.glb",
		Position: rl.Vector3{}, Rotation: rl.Vector3{X: 270}, Scale: uniform(0.8)},
	{Name: ModelGlassFlask, Path: "conical-flask/SM_Conical_flask.glb", TextureDir: "conical-flask/textures",
		Position: rl.Vector3{X: -1, Y: 0.87, Z: 0}, Rotation: rl.Vector3{X: -90, Y: 90}, Scale: uniform(0.1), Opacity: GlassOpacity},
	{Name: ModelTimer, Path: "digital-timer-programmer/Temporizador.glb", TextureDir: "digital-timer-programmer/textures",
		Position: rl.Vector3{X: -1.4, Y: 0.9, Z: -1.4}, Rotation: rl.Vector3{X: -90, Y: -40}, Scale: uniform(0.05)},
	{Name: ModelOfficeDesk, Path: "office_desk/office_desk.glb", TextureDir: "office_desk/textures",
		Position: rl.Vector3{X: 4.2, Y: 0, Z: 3.7}, Rotation: rl.Vector3{X: 270}, Scale: uniform(0.8)},
	{Name: ModelMicroscope, Path: "microscope/microscope.glb", TextureDir: "microscope/textures",
		Position: rl.Vector3{X: -1.2, Y: 0.87, Z: 2}, Rotation: rl.Vector3{X: -90, Y: -90}, Scale: uniform(0.013)},
	{Name: ModelExtinguish, Path: "fire-extinguisher/fire_extinguisher.glb", TextureDir: "fire-extinguisher/textures",
		Position: rl.Vector3{X: 3.8, Y: 1, Z: -4.8}, Rotation: rl.Vector3{Y: 180}, Scale: uniform(0.0004)},
	{Name: ModelGoggles, Path: "safety-goggles/safety_goggles.glb",
		Position: rl.Vector3{X: 1, Y: 0.92, Z: -1}, Rotation: rl.Vector3{Y: 67}, Scale: uniform(0.01)},
	{Name: ModelFridge, Path: "not-too-modern-fridge/fridge.glb", TextureDir: "not-too-modern-fridge/textures",
		Position: rl.Vector3{X: -3.8, Y: 0, Z: -4.1}, Rotation: rl.Vector3{Y: -180}, Scale: uniform(0.009)},
	{Name: ModelPCR, Path: "pcr-machine/PCR012.glb", TextureDir: "pcr-machine/textures",
		Position: rl.Vector3{X: 0.4, Y: 0.9, Z: -1.4}, Rotation: rl.Vector3{X: -90, Y: -100}, Scale: uniform(0.02)},
	{Name: ModelCeilingLamp, Path: "light-fixture-ceiling-recessed/LightFixtureRecessed.glb", TextureDir: "light-fixture-ceiling-recessed/textures",
		Position: rl.Vector3{X: 0, Y: 2.45, Z: 0}, Rotation: rl.Vector3{X: -90}, Scale: uniform(1)},
	{Name: ModelKeycard, Path: "keycard-model/Keycard_Model.glb", TextureDir: "keycard-model/textures",
		Position: KeycardSpawn, Rotation: rl.Vector3{Y: 280}, Scale: uniform(0.02)},
	{Name: ModelCardReader, Path: "card-security-reader/LeitorFASE1.glb", TextureDir: "card-security-reader/textures",
		Position: ReaderPos, Rotation: rl.Vector3{Y: 90}, Scale: uniform(0.2)},
	{Name: ModelDoor, Path: "prison-hallway-door/Jail_Door.glb", TextureDir: "prison-hallway-door/textures",
		Position: DoorClosedPos, Rotation: rl.Vector3{X: 90, Y: -90}, Scale: rl.Vector3{X: 1.3, Y: 1.5, Z: 1}},
	{Name: ModelFlask1, Path: "magic-flask/Kolba.glb",
		Position: rl.Vector3{X: -1.4, Y: 0.83, Z: -0.3}, Rotation: rl.Vector3{Y: 60}, Scale: uniform(0.1), Opacity: GlassOpacity},
	{Name: ModelFlask2, Path: "magic-flask/flask.glb",
		Position: rl.Vector3{X: 0, Y: 0.87, Z: -1.5}, Rotation: rl.Vector3{X: -90, Y: 150}, Scale: uniform(0.05), Opacity: GlassOpacity},
	{Name: ModelFlask3, Path: "magic-flask/potion.glb",
		Position: rl.Vector3{X: 1.3, Y: 0.87, Z: -1.4}, Rotation: rl.Vector3{Y: -40}, Scale: uniform(0.03), Opacity: GlassOpacity},
}

// FlaskEffects maps each drinkable flask to the effect it starts.
var FlaskEffects = []struct {
	Name   string
	Effect effects.Kind
}{
	{ModelFlask1, effects.InvertControls},
	{ModelFlask2, effects.InvertColors},
	{ModelFlask3, effects.FlipRoll},
}

// Colliders holds each model's footprint in its own unscaled units: the
// observed visual size divided by the placement scale.
var Colliders = physics.ColliderTable{
	ModelLabBench:   {{Size: rl.Vector3{X: 3.0, Y: 1.125, Z: 1.5}}},
	ModelOfficeDesk: {{Size: rl.Vector3{X: 2.0, Y: 1.0, Z: 1.0}}},
	ModelComputer:   {{Size: rl.Vector3{X: 3.0, Y: 2.0, Z: 1.5}}},
	ModelFridge:     {{Size: rl.Vector3{X: 89, Y: 200, Z: 78}}},
	ModelLabChair:   {{Size: rl.Vector3{X: 20, Y: 36, Z: 20}}},
	ModelStool:      {{Size: rl.Vector3{X: 24, Y: 41, Z: 24}}},
	ModelExtinguish: {{Size: rl.Vector3{X: 500, Y: 1500, Z: 500}}},
}

// CollidableModels lists the collider table keys in registry order.
var CollidableModels = []string{
	ModelLabBench,
	ModelOfficeDesk,
	ModelComputer,
	ModelFridge,
	ModelLabChair,
	ModelStool,
	ModelExtinguish,
}

// PlacementByName finds a placement, or false.
func PlacementByName(name string) (Placement, bool) {
	for _, p := range Placements {
		if p.Name == name {
			return p, true
		}
	}
	return Placement{}, false
}
