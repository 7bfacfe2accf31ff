// Package button implements a debounced push-button state machine that
// measures how long each press lasted.
//
//	Released --pressed--> PressedWait --debounce--> Pressed
//	    ^                                              |
//	    +---debounce--- ReleasedWait <---released------+
package button

import (
	"errors"
	"log/slog"

	"github.com/chase3718/lou-jukebox/internal/fsm"
	"github.com/chase3718/lou-jukebox/internal/hal"
)

// Button states.
const (
	Released fsm.State = iota
	PressedWait
	Pressed
	ReleasedWait
)

// DefaultDebounceMs is the debounce interval of the user button.
const DefaultDebounceMs = 150

var ErrNilCollaborator = errors.New("button: nil pin or clock")

// Config configures a Button.
type Config struct {
	ID         hal.ID
	DebounceMs uint32
	Pin        hal.Button
	Clock      hal.Clock
	Logger     *slog.Logger
}

// Button is the button state machine.
type Button struct {
	m *fsm.FSM

	id          hal.ID
	debounceMs  uint32
	nextTimeout uint32
	pressedAt   uint32
	duration    uint32

	pin    hal.Button
	clock  hal.Clock
	logger *slog.Logger
}

// New builds a button in the Released state.
func New(cfg Config) (*Button, error) {
	if cfg.Pin == nil || cfg.Clock == nil {
		return nil, ErrNilCollaborator
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	b := &Button{
		id:         cfg.ID,
		debounceMs: cfg.DebounceMs,
		pin:        cfg.Pin,
		clock:      cfg.Clock,
		logger:     cfg.Logger.With("component", "button", "button_id", cfg.ID),
	}
	m, err := fsm.New(Released, []fsm.Transition{
		{From: Released, Guard: b.isPressed, To: PressedWait, Action: b.storePressTick},
		{From: PressedWait, Guard: b.debounced, To: Pressed},
		{From: Pressed, Guard: b.isReleased, To: ReleasedWait, Action: b.storeDuration},
		{From: ReleasedWait, Guard: b.debounced, To: Released},
	})
	if err != nil {
		return nil, err
	}
	b.m = m
	return b, nil
}

func (b *Button) isPressed() bool  { return b.pin.IsPressed(b.id) }
func (b *Button) isReleased() bool { return !b.pin.IsPressed(b.id) }

func (b *Button) debounced() bool {
	return b.clock.Millis() > b.nextTimeout
}

func (b *Button) storePressTick() {
	now := b.clock.Millis()
	b.pressedAt = now
	b.nextTimeout = now + b.debounceMs
}

func (b *Button) storeDuration() {
	now := b.clock.Millis()
	b.duration = now - b.pressedAt
	b.nextTimeout = now + b.debounceMs
	b.logger.Debug("button: released", "duration_ms", b.duration)
}

// Step implements fsm.Steppable.
func (b *Button) Step() bool { return b.m.Step() }

// State returns the current state.
func (b *Button) State() fsm.State { return b.m.Current() }

// Duration returns the last measured press duration in ms, 0 before the
// first complete press.
func (b *Button) Duration() uint32 { return b.duration }

// ResetDuration zeroes the measured duration.
func (b *Button) ResetDuration() { b.duration = 0 }

// CheckActivity reports whether a press is in progress.
func (b *Button) CheckActivity() bool { return b.m.Current() != Released }
