// Package host provides real collaborators for running the jukebox on a
// workstation: a wall clock, an event-driven power sleep, a serial or
// console line, tone generators and a MIDI keyboard standing in for the
// button and keypad.
//
// Each collaborator serves a single hal.ID and ignores the id argument.
package host

import (
	"strings"
	"sync"
	"time"

	"github.com/chase3718/lou-jukebox/internal/hal"
)

// DefaultMaxSleep caps a single SleepUntilNextEvent call.
const DefaultMaxSleep = 50 * time.Millisecond

// WallClock counts milliseconds since it was created.
type WallClock struct {
	start time.Time
}

func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

func (c *WallClock) Millis() uint32 {
	return uint32(time.Since(c.start).Milliseconds())
}

// Power blocks the main loop until some collaborator calls Wake or the
// sleep cap elapses.
type Power struct {
	wake     chan struct{}
	maxSleep time.Duration

	mu     sync.Mutex
	sleeps uint64
}

// NewPower returns a power collaborator. A non-positive maxSleep uses
// DefaultMaxSleep.
func NewPower(maxSleep time.Duration) *Power {
	if maxSleep <= 0 {
		maxSleep = DefaultMaxSleep
	}
	return &Power{wake: make(chan struct{}, 1), maxSleep: maxSleep}
}

// Wake ends the current or next sleep. It never blocks.
func (p *Power) Wake() {
	select {
	case p.wake <- struct{}{}:
	default:
	}
}

func (p *Power) SleepUntilNextEvent() {
	p.mu.Lock()
	p.sleeps++
	p.mu.Unlock()

	t := time.NewTimer(p.maxSleep)
	defer t.Stop()
	select {
	case <-p.wake:
	case <-t.C:
	}
}

// Sleeps returns the number of sleeps so far.
func (p *Power) Sleeps() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sleeps
}

// Inputs is a virtual button and keypad. The console and the MIDI keyboard
// both drive it.
type Inputs struct {
	mu      sync.Mutex
	pressed map[hal.ID]bool
	keys    map[hal.ID]byte
	wake    func()
}

// NewInputs returns released inputs. wake, if non-nil, runs after every
// change.
func NewInputs(wake func()) *Inputs {
	return &Inputs{
		pressed: make(map[hal.ID]bool),
		keys:    make(map[hal.ID]byte),
		wake:    wake,
	}
}

func (in *Inputs) IsPressed(id hal.ID) bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.pressed[id]
}

func (in *Inputs) ReadKey(id hal.ID) byte {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.keys[id]
}

func (in *Inputs) Press(id hal.ID)   { in.setPressed(id, true) }
func (in *Inputs) Release(id hal.ID) { in.setPressed(id, false) }

// PressFor holds the button down for d.
func (in *Inputs) PressFor(id hal.ID, d time.Duration) {
	in.Press(id)
	time.AfterFunc(d, func() { in.Release(id) })
}

func (in *Inputs) HoldKey(id hal.ID, key byte) { in.setKey(id, key) }
func (in *Inputs) ReleaseKey(id hal.ID)        { in.setKey(id, 0) }

// TapKey holds key for d.
func (in *Inputs) TapKey(id hal.ID, key byte, d time.Duration) {
	in.HoldKey(id, key)
	time.AfterFunc(d, func() { in.ReleaseKey(id) })
}

// ReleaseAll lets go of every button and key.
func (in *Inputs) ReleaseAll() {
	in.mu.Lock()
	clear(in.pressed)
	clear(in.keys)
	in.mu.Unlock()
	in.notify()
}

func (in *Inputs) setPressed(id hal.ID, v bool) {
	in.mu.Lock()
	in.pressed[id] = v
	in.mu.Unlock()
	in.notify()
}

func (in *Inputs) setKey(id hal.ID, k byte) {
	in.mu.Lock()
	in.keys[id] = k
	in.mu.Unlock()
	in.notify()
}

func (in *Inputs) notify() {
	if in.wake != nil {
		in.wake()
	}
}

func containsCI(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

var (
	_ hal.Clock  = (*WallClock)(nil)
	_ hal.Power  = (*Power)(nil)
	_ hal.Button = (*Inputs)(nil)
	_ hal.Keypad = (*Inputs)(nil)
)
