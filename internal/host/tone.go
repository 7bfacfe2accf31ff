package host

import (
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/chase3718/lou-jukebox/internal/hal"
)

// noteTimer is a one-shot note deadline. Once the deadline passes the
// timeout latches until the next arm, like a timer update flag.
type noteTimer struct {
	mu       sync.Mutex
	deadline time.Time
	armed    bool
	ended    bool
	t        *time.Timer

	wake func()
	now  func() time.Time
}

func newNoteTimer(wake func()) *noteTimer {
	return &noteTimer{wake: wake, now: time.Now}
}

func (n *noteTimer) arm(d time.Duration) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.deadline = n.now().Add(d)
	n.armed = true
	n.ended = false
	if n.t != nil {
		n.t.Stop()
	}
	if n.wake != nil {
		n.t = time.AfterFunc(d, n.wake)
	}
}

func (n *noteTimer) expired() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.latchLocked()
	return n.ended
}

func (n *noteTimer) disarm() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.latchLocked()
	n.armed = false
	if n.t != nil {
		n.t.Stop()
		n.t = nil
	}
}

func (n *noteTimer) latchLocked() {
	if n.armed && !n.now().Before(n.deadline) {
		n.ended = true
		n.armed = false
	}
}

// squareWave is a mono square oscillator. Frequency 0 is silence.
type squareWave struct {
	rate   float64
	freq   float64
	volume float64
	phase  float64
}

func (s *squareWave) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		v := 0.0
		if s.freq > 0 {
			if s.phase < 0.5 {
				v = s.volume
			} else {
				v = -s.volume
			}
			s.phase += s.freq / s.rate
			s.phase -= math.Floor(s.phase)
		}
		samples[i][0], samples[i][1] = v, v
	}
	return len(samples), true
}

func (s *squareWave) Err() error { return nil }

// BeepTone plays notes on the default audio device.
type BeepTone struct {
	osc    *squareWave
	timer  *noteTimer
	logger *slog.Logger
}

// NewBeepTone initializes the speaker and starts a silent oscillator.
func NewBeepTone(sampleRate int, volume float64, wake func(), logger *slog.Logger) (*BeepTone, error) {
	if logger == nil {
		logger = slog.Default()
	}
	sr := beep.SampleRate(sampleRate)
	if err := speaker.Init(sr, sr.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("speaker: init: %w", err)
	}
	t := &BeepTone{
		osc:    &squareWave{rate: float64(sr), volume: volume},
		timer:  newNoteTimer(wake),
		logger: logger.With("component", "tone"),
	}
	speaker.Play(t.osc)
	t.logger.Info("tone: speaker ready", "sample_rate", sampleRate)
	return t, nil
}

func (t *BeepTone) SetFrequency(_ hal.ID, hz float64) {
	if hz <= 0 {
		return
	}
	speaker.Lock()
	t.osc.freq = hz
	speaker.Unlock()
}

func (t *BeepTone) SetDuration(_ hal.ID, ms uint32) {
	t.timer.arm(time.Duration(ms) * time.Millisecond)
}

func (t *BeepTone) NoteTimeout(hal.ID) bool { return t.timer.expired() }

func (t *BeepTone) Stop(hal.ID) {
	speaker.Lock()
	t.osc.freq = 0
	speaker.Unlock()
	t.timer.disarm()
}

// Close silences the speaker.
func (t *BeepTone) Close() {
	t.timer.disarm()
	speaker.Clear()
}

// SilentTone keeps note timing without producing sound.
type SilentTone struct {
	timer *noteTimer
}

func NewSilentTone(wake func()) *SilentTone {
	return &SilentTone{timer: newNoteTimer(wake)}
}

func (t *SilentTone) SetFrequency(hal.ID, float64) {}

func (t *SilentTone) SetDuration(_ hal.ID, ms uint32) {
	t.timer.arm(time.Duration(ms) * time.Millisecond)
}

func (t *SilentTone) NoteTimeout(hal.ID) bool { return t.timer.expired() }
func (t *SilentTone) Stop(hal.ID)             { t.timer.disarm() }

var (
	_ hal.Buzzer    = (*BeepTone)(nil)
	_ hal.Buzzer    = (*SilentTone)(nil)
	_ beep.Streamer = (*squareWave)(nil)
)
