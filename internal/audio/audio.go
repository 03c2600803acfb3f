// Package audio plays short positional cues for scene interactions.
// Every call is a no-op until Init succeeds, and a cue whose file is missing
// stays silent.
package audio

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"labescape/internal/assets"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type Cue int

const (
	CuePickup Cue = iota
	CueDrink
	CueSwipe
	CueUnlock
	CueDoor
	CueComplete
	cueCount
)

var cueFiles = [cueCount]string{
	CuePickup:   "pickup.wav",
	CueDrink:    "drink.wav",
	CueSwipe:    "swipe.wav",
	CueUnlock:   "unlock.wav",
	CueDoor:     "door.wav",
	CueComplete: "complete.wav",
}

func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return fmt.Sprintf("Cue(%d)", int(c))
	}
	return cueFiles[c]
}

// Listener represents the audio listener position and orientation
type Listener struct {
	Position rl.Vector3
	Forward  rl.Vector3
	Right    rl.Vector3
}

// Source is a loaded cue and where it was last played from.
type Source struct {
	Position    rl.Vector3
	Sound       rl.Sound
	Volume      float32
	MaxDistance float32
	playing     bool
}

// Manager handles audio playback
type Manager struct {
	listener Listener
	sources  [cueCount]*Source
}

var globalManager *Manager

// Init opens the audio device and loads whichever cue files exist in dir.
func Init(dir string) {
	rl.InitAudioDevice()
	globalManager = &Manager{
		listener: Listener{Forward: rl.Vector3{Z: -1}, Right: rl.Vector3{X: 1}},
	}

	for c, name := range cueFiles {
		path := filepath.Join(dir, name)
		if err := assets.Exists(path); err != nil {
			slog.Debug("cue sound missing", "cue", Cue(c), "err", err)
			continue
		}
		sound := rl.LoadSound(path)
		if !rl.IsSoundValid(sound) {
			slog.Warn("cue sound failed to load", "path", path)
			continue
		}
		globalManager.sources[c] = &Source{Sound: sound, Volume: 1.0, MaxDistance: 15.0}
	}
}

// Close shuts down the audio system
func Close() {
	if globalManager == nil {
		return
	}
	for _, src := range globalManager.sources {
		if src != nil {
			rl.UnloadSound(src.Sound)
		}
	}
	globalManager = nil
	rl.CloseAudioDevice()
}

// SetListener updates the listener position and orientation
func SetListener(pos, forward, up rl.Vector3) {
	if globalManager == nil {
		return
	}
	globalManager.listener = NewListener(pos, forward, up)
}

// NewListener normalizes forward and derives the right vector from up.
func NewListener(pos, forward, up rl.Vector3) Listener {
	l := Listener{Position: pos}

	// Normalize forward, default to -Z if zero
	fwdLen := rl.Vector3Length(forward)
	if fwdLen > 0.001 {
		l.Forward = rl.Vector3Scale(forward, 1.0/fwdLen)
	} else {
		l.Forward = rl.Vector3{X: 0, Y: 0, Z: -1}
	}

	right := rl.Vector3CrossProduct(l.Forward, up)
	rightLen := rl.Vector3Length(right)
	if rightLen > 0.001 {
		l.Right = rl.Vector3Scale(right, 1.0/rightLen)
	} else {
		l.Right = rl.Vector3{X: 1, Y: 0, Z: 0}
	}
	return l
}

// Play starts cue c as if emitted at pos.
func Play(c Cue, pos rl.Vector3) {
	if globalManager == nil || c < 0 || c >= cueCount {
		return
	}
	src := globalManager.sources[c]
	if src == nil {
		return
	}
	src.Position = pos
	src.playing = true
	applySpatial(globalManager.listener, src)
	rl.PlaySound(src.Sound)
}

// Update re-pans playing cues as the listener moves.
func Update() {
	if globalManager == nil {
		return
	}
	for _, src := range globalManager.sources {
		if src == nil || !src.playing {
			continue
		}
		if !rl.IsSoundPlaying(src.Sound) {
			src.playing = false
			continue
		}
		applySpatial(globalManager.listener, src)
	}
}

func applySpatial(l Listener, src *Source) {
	volume, pan := Spatialize(l, src.Position, src.Volume, src.MaxDistance)
	rl.SetSoundVolume(src.Sound, volume)
	rl.SetSoundPan(src.Sound, pan)
}

// Spatialize returns volume and raylib pan for a source at pos.
// Volume falls off linearly to zero at maxDistance and sounds behind the
// listener are slightly quieter.
func Spatialize(l Listener, pos rl.Vector3, baseVolume, maxDistance float32) (volume, pan float32) {
	toSource := rl.Vector3Subtract(pos, l.Position)
	distance := rl.Vector3Length(toSource)

	if distance < maxDistance {
		volume = baseVolume * (1.0 - distance/maxDistance)
	}

	pan = 0.5
	if distance <= 0.001 {
		return volume, pan
	}

	direction := rl.Vector3Scale(toSource, 1.0/distance)
	rightDot := rl.Vector3DotProduct(direction, l.Right)

	// pan: 0 = full left, 0.5 = center, 1 = full right
	pan = 0.5 + rightDot*0.5
	if pan < 0.0 {
		pan = 0.0
	} else if pan > 1.0 {
		pan = 1.0
	}

	frontDot := rl.Vector3DotProduct(direction, l.Forward)
	if frontDot < 0 {
		volume *= 0.7 + 0.3*math32.Abs(frontDot)
	}
	return volume, pan
}
