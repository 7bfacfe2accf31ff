package button

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chase3718/lou-jukebox/internal/hal/sim"
)

type rig struct {
	clock *sim.Clock
	pins  *sim.Pins
	btn   *Button
}

func newRig(t *testing.T, debounce uint32) *rig {
	t.Helper()
	clock := sim.NewClock(1000)
	pins := sim.NewPins()
	b, err := New(Config{ID: 0, DebounceMs: debounce, Pin: pins, Clock: clock})
	require.NoError(t, err)
	return &rig{clock: clock, pins: pins, btn: b}
}

// run steps the button once per millisecond for ms milliseconds.
func (r *rig) run(ms int) {
	for i := 0; i < ms; i++ {
		r.btn.Step()
		r.clock.Advance(1)
	}
}

func TestNew_RequiresCollaborators(t *testing.T) {
	_, err := New(Config{})
	assert.ErrorIs(t, err, ErrNilCollaborator)
}

func TestButton_MeasuresPressDuration(t *testing.T) {
	r := newRig(t, DefaultDebounceMs)

	r.pins.Press(0)
	r.run(1200)
	r.pins.Release(0)
	r.run(1)

	assert.Equal(t, ReleasedWait, r.btn.State())
	assert.Equal(t, uint32(1200), r.btn.Duration())

	r.run(DefaultDebounceMs + 1)
	assert.Equal(t, Released, r.btn.State())
	assert.Equal(t, uint32(1200), r.btn.Duration(), "duration survives the debounce")
}

func TestButton_ZeroUntilFirstCycle(t *testing.T) {
	r := newRig(t, DefaultDebounceMs)
	assert.Zero(t, r.btn.Duration())

	r.pins.Press(0)
	r.run(400)
	assert.Equal(t, Pressed, r.btn.State())
	assert.Zero(t, r.btn.Duration())
}

func TestButton_ShortPressMeasuredAfterDebounce(t *testing.T) {
	r := newRig(t, 150)

	pressedAt := r.clock.Millis()
	r.pins.Press(0)
	r.run(50)
	r.pins.Release(0)

	// The release is only observed one cycle after the press debounce
	// deadline passes.
	r.run(400)
	assert.Equal(t, Released, r.btn.State())
	assert.Equal(t, uint32(152), r.btn.Duration())
	assert.Equal(t, uint32(1000), pressedAt)
}

func TestButton_DebounceIgnoresBounces(t *testing.T) {
	r := newRig(t, 150)

	r.pins.Press(0)
	r.btn.Step()
	require.Equal(t, PressedWait, r.btn.State())

	// Contact bounce inside the window does not change state.
	for i := 0; i < 100; i++ {
		if i%2 == 0 {
			r.pins.Release(0)
		} else {
			r.pins.Press(0)
		}
		r.clock.Advance(1)
		r.btn.Step()
	}
	assert.Equal(t, PressedWait, r.btn.State())
}

func TestButton_DeadlineToleratesSparsePolling(t *testing.T) {
	r := newRig(t, 150)

	r.pins.Press(0)
	r.btn.Step()
	r.clock.Advance(700)
	r.btn.Step()
	assert.Equal(t, Pressed, r.btn.State())

	r.clock.Advance(300)
	r.pins.Release(0)
	r.btn.Step()
	assert.Equal(t, uint32(1000), r.btn.Duration())
}

func TestButton_ResetDuration(t *testing.T) {
	r := newRig(t, 10)
	r.pins.Press(0)
	r.run(100)
	r.pins.Release(0)
	r.run(20)
	require.NotZero(t, r.btn.Duration())

	r.btn.ResetDuration()
	assert.Zero(t, r.btn.Duration())
}

func TestButton_CheckActivity(t *testing.T) {
	r := newRig(t, 10)
	assert.False(t, r.btn.CheckActivity())

	r.pins.Press(0)
	r.run(1)
	assert.True(t, r.btn.CheckActivity())

	state := r.btn.State()
	for i := 0; i < 3; i++ {
		r.btn.CheckActivity()
	}
	assert.Equal(t, state, r.btn.State(), "CheckActivity does not mutate")

	r.pins.Release(0)
	r.run(50)
	assert.False(t, r.btn.CheckActivity())
}
