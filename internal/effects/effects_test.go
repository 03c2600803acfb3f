package effects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimersCountDown(t *testing.T) {
	var timers Timers
	timers.Trigger(InvertControls, 5)

	timers.Tick(1.5)
	assert.InDelta(t, 3.5, timers.Remaining(InvertControls), 1e-6)
	assert.True(t, timers.Active(InvertControls))
	assert.False(t, timers.Active(InvertColors))

	timers.Tick(3.5)
	assert.Equal(t, float32(0), timers.Remaining(InvertControls))
	assert.False(t, timers.Active(InvertControls))

	timers.Tick(10)
	assert.Equal(t, float32(0), timers.Remaining(InvertControls))
}

func TestTimersRetriggerResets(t *testing.T) {
	var timers Timers
	timers.Trigger(FlipRoll, Duration)
	timers.Tick(7)

	timers.Trigger(FlipRoll, Duration)
	assert.Equal(t, Duration, timers.Remaining(FlipRoll))
}

func TestTimersIndependentKinds(t *testing.T) {
	var timers Timers
	timers.Trigger(InvertColors, 2)
	timers.Trigger(FlipRoll, 4)

	timers.Tick(3)

	assert.Equal(t, []Kind{FlipRoll}, timers.ActiveKinds())
	assert.InDelta(t, 1, timers.Remaining(FlipRoll), 1e-6)
}

func TestTimersIgnoresInvalidInput(t *testing.T) {
	var timers Timers
	timers.Trigger(Kind(42), 5)
	timers.Trigger(InvertControls, -1)
	timers.Tick(-1)

	assert.Empty(t, timers.ActiveKinds())
	assert.Equal(t, float32(0), timers.Remaining(Kind(-1)))
	assert.Equal(t, "effect(42)", Kind(42).String())
}

func TestTimersReset(t *testing.T) {
	var timers Timers
	timers.Trigger(InvertControls, 5)
	timers.Trigger(InvertColors, 5)

	timers.Reset()

	assert.Empty(t, timers.ActiveKinds())
}
