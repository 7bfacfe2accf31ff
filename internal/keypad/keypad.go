// Package keypad implements a single-key keypad state machine.
package keypad

import (
	"errors"
	"log/slog"

	"github.com/chase3718/lou-jukebox/internal/fsm"
	"github.com/chase3718/lou-jukebox/internal/hal"
)

// Keypad states.
const (
	WaitKey fsm.State = iota
	KeyPressed
)

// NoKey is what the keypad reads when nothing is held.
const NoKey byte = 0

var ErrNilCollaborator = errors.New("keypad: nil keypad port")

// Config configures a Keypad.
type Config struct {
	ID     hal.ID
	Port   hal.Keypad
	Logger *slog.Logger
}

// Keypad is the keypad state machine.
type Keypad struct {
	m *fsm.FSM

	id       hal.ID
	lastKey  byte
	received bool

	port   hal.Keypad
	logger *slog.Logger
}

// New builds a keypad waiting for a key.
func New(cfg Config) (*Keypad, error) {
	if cfg.Port == nil {
		return nil, ErrNilCollaborator
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	k := &Keypad{
		id:     cfg.ID,
		port:   cfg.Port,
		logger: cfg.Logger.With("component", "keypad", "keypad_id", cfg.ID),
	}
	m, err := fsm.New(WaitKey, []fsm.Transition{
		{From: WaitKey, Guard: k.keyDown, To: KeyPressed, Action: k.processKey},
		{From: KeyPressed, Guard: k.keyUp, To: WaitKey, Action: k.deleteKey},
	})
	if err != nil {
		return nil, err
	}
	k.m = m
	return k, nil
}

func (k *Keypad) keyDown() bool { return k.port.ReadKey(k.id) != NoKey }
func (k *Keypad) keyUp() bool   { return k.port.ReadKey(k.id) == NoKey }

func (k *Keypad) processKey() {
	k.received = true
	k.lastKey = k.port.ReadKey(k.id)
	k.logger.Info("keypad: key pressed", "key", string(k.lastKey))
}

func (k *Keypad) deleteKey() {
	k.received = false
	k.lastKey = k.port.ReadKey(k.id)
	k.logger.Debug("keypad: key released")
}

// Step implements fsm.Steppable.
func (k *Keypad) Step() bool { return k.m.Step() }

// State returns the current state.
func (k *Keypad) State() fsm.State { return k.m.Current() }

// CheckKeyReceived reports an unconsumed key press.
func (k *Keypad) CheckKeyReceived() bool { return k.received }

// ResetKeyReceived consumes the pending key press. The key stays readable
// through Key until it is released.
func (k *Keypad) ResetKeyReceived() { k.received = false }

// Key returns the last key read, NoKey after release.
func (k *Keypad) Key() byte { return k.lastKey }

// CheckActivity reports true while the keypad is waiting for a key.
//
// The polarity is the inverse of the other components: an idle keypad
// counts as active, so the jukebox never sleeps while no key is held.
func (k *Keypad) CheckActivity() bool { return k.m.Current() == WaitKey }
