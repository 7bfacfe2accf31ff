package host

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"github.com/chase3718/lou-jukebox/internal/hal"
)

const midiRescanInterval = 1000 * time.Millisecond

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

func pitchName(pitch int) string {
	if pitch < 0 {
		return fmt.Sprintf("?\"%d\"", pitch)
	}
	return fmt.Sprintf("%s%d", noteNames[pitch%12], (pitch/12)-1)
}

// hzToPitch returns the nearest MIDI pitch for a frequency, clamped to
// 0-127. A4 is 440 Hz and pitch 69.
func hzToPitch(hz float64) uint8 {
	if hz <= 0 {
		return 0
	}
	p := math.Round(69 + 12*math.Log2(hz/440))
	return uint8(min(max(p, 0), 127))
}

// -------------------- MIDITone --------------------

// MIDITone plays notes as NoteOn/NoteOff on a MIDI output.
type MIDITone struct {
	mu       sync.Mutex
	send     func(midi.Message) error
	channel  uint8
	sounding int

	timer  *noteTimer
	close  func()
	logger *slog.Logger
}

// OpenMIDITone opens the first output whose name contains pattern, or the
// first output when pattern is empty.
func OpenMIDITone(pattern string, channel uint8, wake func(), logger *slog.Logger) (*MIDITone, error) {
	if logger == nil {
		logger = slog.Default()
	}
	drv, err := rtmididrv.New()
	if err != nil {
		return nil, fmt.Errorf("rtmididrv: %w", err)
	}
	outs, err := drv.Outs()
	if err != nil {
		drv.Close()
		return nil, fmt.Errorf("midi: list outputs: %w", err)
	}
	var found drivers.Out
	for _, out := range outs {
		if pattern == "" || containsCI(out.String(), pattern) {
			found = out
			break
		}
	}
	if found == nil {
		drv.Close()
		return nil, fmt.Errorf("midi: no output matching %q", pattern)
	}
	if err := found.Open(); err != nil {
		drv.Close()
		return nil, fmt.Errorf("midi: open %q: %w", found.String(), err)
	}
	send, err := midi.SendTo(found)
	if err != nil {
		_ = found.Close()
		drv.Close()
		return nil, fmt.Errorf("midi: send to %q: %w", found.String(), err)
	}
	t := newMIDITone(send, channel, wake, logger)
	t.close = func() {
		_ = found.Close()
		drv.Close()
	}
	t.logger.Info("midi: output connected", "device", found.String(), "channel", channel)
	return t, nil
}

func newMIDITone(send func(midi.Message) error, channel uint8, wake func(), logger *slog.Logger) *MIDITone {
	return &MIDITone{
		send:     send,
		channel:  channel,
		sounding: -1,
		timer:    newNoteTimer(wake),
		logger:   logger.With("component", "tone"),
	}
}

func (t *MIDITone) SetFrequency(_ hal.ID, hz float64) {
	if hz <= 0 {
		return
	}
	p := hzToPitch(hz)
	t.mu.Lock()
	defer t.mu.Unlock()
	t.noteOffLocked()
	t.write(midi.NoteOn(t.channel, p, 100))
	t.sounding = int(p)
	t.logger.Debug("midi: note on", "pitch", pitchName(int(p)), "hz", hz)
}

func (t *MIDITone) SetDuration(_ hal.ID, ms uint32) {
	t.timer.arm(time.Duration(ms) * time.Millisecond)
}

func (t *MIDITone) NoteTimeout(hal.ID) bool { return t.timer.expired() }

func (t *MIDITone) Stop(hal.ID) {
	t.mu.Lock()
	t.noteOffLocked()
	t.mu.Unlock()
	t.timer.disarm()
}

// Close silences the output and releases the driver.
func (t *MIDITone) Close() {
	t.Stop(0)
	if t.close != nil {
		t.close()
	}
}

func (t *MIDITone) noteOffLocked() {
	if t.sounding < 0 {
		return
	}
	t.write(midi.NoteOff(t.channel, uint8(t.sounding)))
	t.sounding = -1
}

func (t *MIDITone) write(msg midi.Message) {
	if err := t.send(msg); err != nil {
		t.logger.Error("midi: write error", "err", err)
	}
}

// -------------------- MIDIInput --------------------

// NoteMap routes keyboard notes to the virtual inputs: one note is the user
// button and ten consecutive notes are keypad digits 0-9.
type NoteMap struct {
	ButtonNote     uint8
	KeypadBaseNote uint8
}

// route applies a note event and reports whether the note was mapped.
func (m NoteMap) route(in *Inputs, on bool, key uint8) bool {
	if key == m.ButtonNote {
		if on {
			in.Press(0)
		} else {
			in.Release(0)
		}
		return true
	}
	if key >= m.KeypadBaseNote && int(key) < int(m.KeypadBaseNote)+10 {
		if on {
			in.HoldKey(0, '0'+key-m.KeypadBaseNote)
		} else {
			in.ReleaseKey(0)
		}
		return true
	}
	return false
}

// MIDIInputConfig configures a MIDIInput.
type MIDIInputConfig struct {
	// Preferred devices are picked first; Excluded ones are never opened.
	Preferred []string
	Excluded  []string
	Notes     NoteMap
	Inputs    *Inputs
	Logger    *slog.Logger
}

// MIDIInput keeps a connection to the preferred MIDI keyboard and feeds
// its notes into Inputs. It handles the device appearing and disappearing.
// All inputs are released when the device is lost.
type MIDIInput struct {
	mu           sync.Mutex
	drv          *rtmididrv.Driver
	inPort       drivers.In
	stopFn       func()
	connected    bool
	selectedName string
	lastRescanAt time.Time

	cfg    MIDIInputConfig
	logger *slog.Logger
}

// NewMIDIInput initialises the rtmidi driver. Call Close when done.
func NewMIDIInput(cfg MIDIInputConfig) (*MIDIInput, error) {
	if cfg.Inputs == nil {
		return nil, fmt.Errorf("midi: nil inputs")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	drv, err := rtmididrv.New()
	if err != nil {
		return nil, fmt.Errorf("rtmididrv: %w", err)
	}
	return &MIDIInput{
		drv:    drv,
		cfg:    cfg,
		logger: cfg.Logger.With("component", "midi"),
	}, nil
}

// Run rescans for devices on every ticker period until ctx is done.
func (m *MIDIInput) Run(ctx context.Context) {
	m.rescan(time.Now())
	ticker := time.NewTicker(midiRescanInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case t := <-ticker.C:
			m.rescan(t)
		}
	}
}

// Close shuts down the active connection and the driver.
func (m *MIDIInput) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closeConn()
	m.drv.Close()
}

// Tick is for callers polling faster than the rescan interval. It scans at
// most once per interval.
func (m *MIDIInput) Tick() {
	now := time.Now()
	m.mu.Lock()
	due := m.dueLocked(now)
	m.mu.Unlock()
	if due {
		m.rescan(now)
	}
}

func (m *MIDIInput) dueLocked(now time.Time) bool {
	return m.lastRescanAt.IsZero() || now.Sub(m.lastRescanAt) >= midiRescanInterval
}

// rescan connects to a preferred device and detects disappearance.
func (m *MIDIInput) rescan(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastRescanAt = now

	inputs := m.listInputs()

	if m.connected {
		for _, n := range inputs {
			if n == m.selectedName {
				return
			}
		}
		m.logger.Warn("midi: device disappeared", "device", m.selectedName)
		m.closeConn()
		m.lastRescanAt = time.Time{}
		m.cfg.Inputs.ReleaseAll()
		return
	}

	if len(inputs) == 0 {
		return
	}
	cand, ok := pickPreferred(inputs, m.cfg.Preferred)
	if !ok {
		return
	}
	if err := m.openByName(cand); err != nil {
		m.logger.Error("midi: connect failed", "device", cand, "err", err)
	}
}

func (m *MIDIInput) listInputs() []string {
	ins, err := m.drv.Ins()
	if err != nil {
		m.logger.Error("midi: list inputs failed", "err", err)
		return nil
	}
	names := make([]string, 0, len(ins))
	for _, in := range ins {
		names = append(names, in.String())
	}
	names = excludeNames(names, m.cfg.Excluded)
	m.logger.Debug("midi: inputs found", "count", len(names), "devices", strings.Join(names, ", "))
	return names
}

func excludeNames(names, patterns []string) []string {
	var out []string
	for _, name := range names {
		excluded := false
		for _, pat := range patterns {
			if containsCI(name, pat) {
				excluded = true
				break
			}
		}
		if !excluded {
			out = append(out, name)
		}
	}
	return out
}

func pickPreferred(inputs, preferred []string) (string, bool) {
	for _, pat := range preferred {
		for _, name := range inputs {
			if containsCI(name, pat) {
				return name, true
			}
		}
	}
	if len(inputs) == 1 {
		return inputs[0], true
	}
	return "", false
}

func (m *MIDIInput) closeConn() {
	if m.stopFn != nil {
		m.stopFn()
		m.stopFn = nil
	}
	if m.inPort != nil {
		_ = m.inPort.Close()
		m.inPort = nil
	}
	m.connected = false
	m.selectedName = ""
}

func (m *MIDIInput) openByName(name string) error {
	ins, err := m.drv.Ins()
	if err != nil {
		return err
	}
	var found drivers.In
	for _, in := range ins {
		if in.String() == name {
			found = in
			break
		}
	}
	if found == nil {
		return fmt.Errorf("input %q not found", name)
	}
	if err := found.Open(); err != nil {
		return fmt.Errorf("open %q: %w", name, err)
	}

	stop, err := midi.ListenTo(found, func(msg midi.Message, _ int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			m.onNote(true, key)
		case msg.GetNoteEnd(&ch, &key):
			m.onNote(false, key)
		default:
			m.logger.Debug("midi: unhandled message", "msg", msg.String())
		}
	}, midi.HandleError(func(listenErr error) {
		m.logger.Warn("midi: listener error", "device", name, "err", listenErr)
		// closeConn must not run on the listener goroutine.
		go func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			if m.connected && m.selectedName == name {
				m.closeConn()
				m.lastRescanAt = time.Time{}
				m.cfg.Inputs.ReleaseAll()
			}
		}()
	}))
	if err != nil {
		_ = found.Close()
		return fmt.Errorf("listen %q: %w", name, err)
	}

	m.inPort = found
	m.stopFn = stop
	m.connected = true
	m.selectedName = name
	m.logger.Info("midi: connected", "device", name)
	return nil
}

func (m *MIDIInput) onNote(on bool, key uint8) {
	if m.cfg.Notes.route(m.cfg.Inputs, on, key) {
		m.logger.Debug("midi: note routed", "pitch", pitchName(int(key)), "on", on)
		return
	}
	m.logger.Debug("midi: note ignored", "pitch", pitchName(int(key)))
}

var _ hal.Buzzer = (*MIDITone)(nil)
