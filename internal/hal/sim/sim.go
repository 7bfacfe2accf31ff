// Package sim provides deterministic hal collaborators for the state
// machine tests.
package sim

import (
	"bytes"
	"strings"
	"sync"

	"github.com/chase3718/lou-jukebox/internal/hal"
)

// Clock is a manually advanced millisecond clock.
type Clock struct {
	mu  sync.Mutex
	now uint32
}

// NewClock returns a clock starting at start.
func NewClock(start uint32) *Clock {
	return &Clock{now: start}
}

func (c *Clock) Millis() uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by ms.
func (c *Clock) Advance(ms uint32) {
	c.mu.Lock()
	c.now += ms
	c.mu.Unlock()
}

// Pins is a set of button levels.
type Pins struct {
	mu      sync.Mutex
	pressed map[hal.ID]bool
}

func NewPins() *Pins {
	return &Pins{pressed: make(map[hal.ID]bool)}
}

func (p *Pins) IsPressed(id hal.ID) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pressed[id]
}

// Press holds the button down.
func (p *Pins) Press(id hal.ID) { p.set(id, true) }

// Release lets the button go.
func (p *Pins) Release(id hal.ID) { p.set(id, false) }

func (p *Pins) set(id hal.ID, v bool) {
	p.mu.Lock()
	p.pressed[id] = v
	p.mu.Unlock()
}

// Keys is a set of held keypad keys.
type Keys struct {
	mu   sync.Mutex
	held map[hal.ID]byte
}

func NewKeys() *Keys {
	return &Keys{held: make(map[hal.ID]byte)}
}

func (k *Keys) ReadKey(id hal.ID) byte {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.held[id]
}

// Hold makes ReadKey return key until Release.
func (k *Keys) Hold(id hal.ID, key byte) {
	k.mu.Lock()
	k.held[id] = key
	k.mu.Unlock()
}

// Release clears the held key.
func (k *Keys) Release(id hal.ID) {
	k.Hold(id, 0)
}

// ToneCall records one tone generator call.
type ToneCall struct {
	Op        string // "freq", "dur", "stop"
	Frequency float64
	Duration  uint32
	At        uint32
}

// Tone is a tone generator whose note timer follows a Clock.
type Tone struct {
	mu       sync.Mutex
	clock    hal.Clock
	deadline map[hal.ID]uint32
	armed    map[hal.ID]bool
	ended    map[hal.ID]bool
	playing  map[hal.ID]float64
	calls    []ToneCall
}

func NewTone(clock hal.Clock) *Tone {
	return &Tone{
		clock:    clock,
		deadline: make(map[hal.ID]uint32),
		armed:    make(map[hal.ID]bool),
		ended:    make(map[hal.ID]bool),
		playing:  make(map[hal.ID]float64),
	}
}

func (t *Tone) SetFrequency(id hal.ID, hz float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.playing[id] = hz
	t.calls = append(t.calls, ToneCall{Op: "freq", Frequency: hz, At: t.clock.Millis()})
}

func (t *Tone) SetDuration(id hal.ID, ms uint32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.clock.Millis()
	t.deadline[id] = now + ms
	t.armed[id] = true
	t.ended[id] = false
	t.calls = append(t.calls, ToneCall{Op: "dur", Duration: ms, At: now})
}

// NoteTimeout latches once the armed deadline passes, like a timer update
// interrupt. Stop disarms the timer but keeps the latch.
func (t *Tone) NoteTimeout(id hal.ID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.armed[id] && t.clock.Millis() >= t.deadline[id] {
		t.ended[id] = true
		t.armed[id] = false
	}
	return t.ended[id]
}

func (t *Tone) Stop(id hal.ID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.armed[id] && t.clock.Millis() >= t.deadline[id] {
		t.ended[id] = true
	}
	t.armed[id] = false
	t.playing[id] = 0
	t.calls = append(t.calls, ToneCall{Op: "stop", At: t.clock.Millis()})
}

// Playing returns the frequency currently sounding, 0 when silent.
func (t *Tone) Playing(id hal.ID) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.playing[id]
}

// Calls returns a copy of the recorded calls.
func (t *Tone) Calls() []ToneCall {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]ToneCall, len(t.calls))
	copy(out, t.calls)
	return out
}

// CallsOf filters recorded calls by op.
func (t *Tone) CallsOf(op string) []ToneCall {
	var out []ToneCall
	for _, c := range t.Calls() {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Reset forgets recorded calls.
func (t *Tone) Reset() {
	t.mu.Lock()
	t.calls = nil
	t.mu.Unlock()
}

// Power counts sleeps and optionally advances a clock per sleep.
type Power struct {
	mu     sync.Mutex
	clock  *Clock
	step   uint32
	sleeps int
}

// NewPower returns a power collaborator. Each sleep advances clock by step
// when clock is non-nil.
func NewPower(clock *Clock, step uint32) *Power {
	return &Power{clock: clock, step: step}
}

func (p *Power) SleepUntilNextEvent() {
	p.mu.Lock()
	p.sleeps++
	p.mu.Unlock()
	if p.clock != nil && p.step > 0 {
		p.clock.Advance(p.step)
	}
}

// Sleeps returns the number of sleep calls so far.
func (p *Power) Sleeps() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sleeps
}

// Sink captures transmitted bytes. Ready defaults to true.
type Sink struct {
	mu      sync.Mutex
	buf     bytes.Buffer
	blocked bool
}

func (s *Sink) WriteByte(c byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.WriteByte(c)
}

func (s *Sink) TxReady() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.blocked
}

// Block makes TxReady report false until Unblock.
func (s *Sink) Block() {
	s.mu.Lock()
	s.blocked = true
	s.mu.Unlock()
}

func (s *Sink) Unblock() {
	s.mu.Lock()
	s.blocked = false
	s.mu.Unlock()
}

// String returns everything written so far.
func (s *Sink) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

// Lines splits the captured output into newline-terminated lines.
func (s *Sink) Lines() []string {
	raw := s.String()
	var out []string
	for len(raw) > 0 {
		i := strings.IndexByte(raw, '\n')
		if i < 0 {
			out = append(out, raw)
			break
		}
		out = append(out, raw[:i])
		raw = raw[i+1:]
	}
	return out
}

// Reset drops captured output.
func (s *Sink) Reset() {
	s.mu.Lock()
	s.buf.Reset()
	s.mu.Unlock()
}

var (
	_ hal.Clock  = (*Clock)(nil)
	_ hal.Button = (*Pins)(nil)
	_ hal.Keypad = (*Keys)(nil)
	_ hal.Buzzer = (*Tone)(nil)
	_ hal.Power  = (*Power)(nil)
)
