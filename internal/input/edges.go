package input

// Edges turns held keys into single-frame presses for a fixed set of keys.
// Call Update exactly once per frame before querying Pressed.
type Edges struct {
	keys    []int32
	prev    map[int32]bool
	pressed map[int32]bool
}

func NewEdges(keys ...int32) *Edges {
	return &Edges{
		keys:    keys,
		prev:    make(map[int32]bool, len(keys)),
		pressed: make(map[int32]bool, len(keys)),
	}
}

func (e *Edges) Update(src Source) {
	for _, k := range e.keys {
		down := src.IsKeyDown(k)
		e.pressed[k] = down && !e.prev[k]
		e.prev[k] = down
	}
}

// Pressed reports whether key went down this frame. Unwatched keys never press.
func (e *Edges) Pressed(key int32) bool {
	return e.pressed[key]
}

// Reset forgets held state so a key held across a reset does not fire again.
func (e *Edges) Reset(src Source) {
	for _, k := range e.keys {
		e.prev[k] = src.IsKeyDown(k)
		e.pressed[k] = false
	}
}
