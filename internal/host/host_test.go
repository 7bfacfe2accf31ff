package host

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2"

	"github.com/chase3718/lou-jukebox/internal/hal/uart"
)

func TestPower_WakeEndsSleep(t *testing.T) {
	p := NewPower(time.Hour)
	p.Wake()

	done := make(chan struct{})
	go func() {
		p.SleepUntilNextEvent()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sleep did not end on wake")
	}
	assert.Equal(t, uint64(1), p.Sleeps())
}

func TestPower_SleepIsCapped(t *testing.T) {
	p := NewPower(5 * time.Millisecond)
	start := time.Now()
	p.SleepUntilNextEvent()
	assert.Less(t, time.Since(start), time.Second)
}

func TestPower_WakeNeverBlocks(t *testing.T) {
	p := NewPower(0)
	for i := 0; i < 10; i++ {
		p.Wake()
	}
	assert.Equal(t, DefaultMaxSleep, p.maxSleep)
}

func TestInputs_ButtonAndKeys(t *testing.T) {
	var wakes atomic.Int32
	in := NewInputs(func() { wakes.Add(1) })

	assert.False(t, in.IsPressed(0))
	in.Press(0)
	assert.True(t, in.IsPressed(0))
	assert.False(t, in.IsPressed(1), "ids are independent")

	in.HoldKey(0, '4')
	assert.Equal(t, byte('4'), in.ReadKey(0))

	in.ReleaseAll()
	assert.False(t, in.IsPressed(0))
	assert.Zero(t, in.ReadKey(0))
	assert.Equal(t, int32(3), wakes.Load())
}

func TestInputs_TimedPress(t *testing.T) {
	in := NewInputs(nil)
	in.PressFor(0, 20*time.Millisecond)
	in.TapKey(0, '9', 20*time.Millisecond)
	assert.True(t, in.IsPressed(0))
	assert.Equal(t, byte('9'), in.ReadKey(0))

	assert.Eventually(t, func() bool {
		return !in.IsPressed(0) && in.ReadKey(0) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestWallClock_Advances(t *testing.T) {
	c := NewWallClock()
	first := c.Millis()
	assert.Eventually(t, func() bool { return c.Millis() > first }, time.Second, time.Millisecond)
}

type fakeNow struct{ t time.Time }

func (f *fakeNow) now() time.Time { return f.t }

func TestNoteTimer_Latches(t *testing.T) {
	clock := &fakeNow{t: time.Unix(0, 0)}
	n := newNoteTimer(nil)
	n.now = clock.now

	assert.False(t, n.expired(), "never armed")

	n.arm(100 * time.Millisecond)
	clock.t = clock.t.Add(99 * time.Millisecond)
	assert.False(t, n.expired())

	clock.t = clock.t.Add(time.Millisecond)
	assert.True(t, n.expired())

	n.disarm()
	assert.True(t, n.expired(), "stop keeps the latch")

	n.arm(50 * time.Millisecond)
	assert.False(t, n.expired(), "arm clears the latch")
}

func TestNoteTimer_DisarmBeforeDeadline(t *testing.T) {
	clock := &fakeNow{t: time.Unix(0, 0)}
	n := newNoteTimer(nil)
	n.now = clock.now

	n.arm(100 * time.Millisecond)
	n.disarm()
	clock.t = clock.t.Add(time.Second)
	assert.False(t, n.expired())
}

func TestNoteTimer_WakesOnDeadline(t *testing.T) {
	woke := make(chan struct{}, 1)
	n := newNoteTimer(func() { woke <- struct{}{} })
	n.arm(5 * time.Millisecond)
	select {
	case <-woke:
	case <-time.After(time.Second):
		t.Fatal("no wake at deadline")
	}
	assert.True(t, n.expired())
}

func TestSquareWave(t *testing.T) {
	s := &squareWave{rate: 8, freq: 2, volume: 0.5}
	buf := make([][2]float64, 8)
	n, ok := s.Stream(buf)
	require.True(t, ok)
	require.Equal(t, 8, n)

	want := []float64{0.5, 0.5, -0.5, -0.5, 0.5, 0.5, -0.5, -0.5}
	for i, smp := range buf {
		assert.Equal(t, want[i], smp[0], "sample %d", i)
		assert.Equal(t, smp[0], smp[1])
	}

	s.freq = 0
	s.Stream(buf)
	for _, smp := range buf {
		assert.Zero(t, smp[0])
	}
	assert.NoError(t, s.Err())
}

func TestSilentTone(t *testing.T) {
	tone := NewSilentTone(nil)
	tone.SetFrequency(0, 440)
	tone.SetDuration(0, 1)
	assert.Eventually(t, func() bool { return tone.NoteTimeout(0) }, time.Second, time.Millisecond)
	tone.Stop(0)
}

func TestHzToPitch(t *testing.T) {
	tests := []struct {
		hz   float64
		want uint8
	}{
		{440, 69},
		{261.6256, 60},
		{466.1638, 70},
		{195.9977, 55},
		{1174.659, 86},
		{0, 0},
		{-5, 0},
		{1e6, 127},
		{1, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, hzToPitch(tt.hz), "hz=%v", tt.hz)
	}
}

func TestPitchName(t *testing.T) {
	assert.Equal(t, "C4", pitchName(60))
	assert.Equal(t, "A4", pitchName(69))
	assert.Equal(t, "C#3", pitchName(49))
	assert.Equal(t, "?\"-1\"", pitchName(-1))
}

type sentMessages struct {
	mu   sync.Mutex
	msgs []midi.Message
}

func (s *sentMessages) send(m midi.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs = append(s.msgs, m)
	return nil
}

func TestMIDITone_NoteOnOff(t *testing.T) {
	sent := &sentMessages{}
	tone := newMIDITone(sent.send, 2, nil, slog.Default())

	tone.SetFrequency(0, 440)
	tone.SetFrequency(0, 0)
	tone.SetFrequency(0, 261.6256)
	tone.Stop(0)
	tone.Stop(0)

	require.Len(t, sent.msgs, 4)
	assert.Equal(t, midi.NoteOn(2, 69, 100), sent.msgs[0])
	assert.Equal(t, midi.NoteOff(2, 69), sent.msgs[1])
	assert.Equal(t, midi.NoteOn(2, 60, 100), sent.msgs[2])
	assert.Equal(t, midi.NoteOff(2, 60), sent.msgs[3])
}

func TestNoteMap_Route(t *testing.T) {
	in := NewInputs(nil)
	nm := NoteMap{ButtonNote: 48, KeypadBaseNote: 60}

	assert.True(t, nm.route(in, true, 48))
	assert.True(t, in.IsPressed(0))
	assert.True(t, nm.route(in, false, 48))
	assert.False(t, in.IsPressed(0))

	assert.True(t, nm.route(in, true, 63))
	assert.Equal(t, byte('3'), in.ReadKey(0))
	assert.True(t, nm.route(in, false, 63))
	assert.Zero(t, in.ReadKey(0))

	assert.True(t, nm.route(in, true, 69))
	assert.Equal(t, byte('9'), in.ReadKey(0))

	assert.False(t, nm.route(in, true, 70))
	assert.False(t, nm.route(in, true, 59))
}

func TestPickPreferred(t *testing.T) {
	inputs := []string{"USB MIDI", "Launchkey Mini MK3"}

	name, ok := pickPreferred(inputs, []string{"launchkey"})
	assert.True(t, ok)
	assert.Equal(t, "Launchkey Mini MK3", name)

	_, ok = pickPreferred(inputs, nil)
	assert.False(t, ok, "ambiguous without a preference")

	name, ok = pickPreferred([]string{"USB MIDI"}, nil)
	assert.True(t, ok)
	assert.Equal(t, "USB MIDI", name)
}

func TestExcludeNames(t *testing.T) {
	got := excludeNames([]string{"Midi Through Port-0", "Keystation 49", "Dummy"}, []string{"midi through", "dummy"})
	assert.Equal(t, []string{"Keystation 49"}, got)
}

func TestParseDirective(t *testing.T) {
	d, err := parseDirective("!press 1200")
	require.NoError(t, err)
	assert.Equal(t, 1200*time.Millisecond, d.press)

	d, err = parseDirective("!key 5")
	require.NoError(t, err)
	assert.Equal(t, byte('5'), d.key)

	for _, bad := range []string{"!press", "!press 0", "!press soon", "!key 12", "!jump 3", "!"} {
		_, err := parseDirective(bad)
		assert.ErrorIs(t, err, ErrBadDirective, bad)
	}
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func inboundLine(ch *uart.Channel) string {
	buf := make([]byte, uart.InputLen)
	ch.GetInbound(0, buf)
	return string(bytes.TrimRight(buf, "\x00"))
}

func TestConsole_FeedsChannel(t *testing.T) {
	out := &syncBuffer{}
	in := NewInputs(nil)
	c := newConsole(out, in, nil, slog.Default())
	ch := c.Channel()
	ch.EnableRx(0)

	c.handleLine("select 2")
	assert.True(t, ch.RxDone(0))
	assert.Equal(t, "select 2", inboundLine(ch))
}

func TestConsole_Directives(t *testing.T) {
	in := NewInputs(nil)
	c := newConsole(&syncBuffer{}, in, nil, slog.Default())
	c.Channel().EnableRx(0)

	c.handleLine("!press 30")
	assert.True(t, in.IsPressed(0))
	assert.False(t, c.Channel().RxDone(0), "directives bypass the channel")
	assert.Eventually(t, func() bool { return !in.IsPressed(0) }, time.Second, 5*time.Millisecond)

	c.handleLine("!key 7")
	assert.Equal(t, byte('7'), in.ReadKey(0))

	c.handleLine("!key")
	assert.False(t, c.Channel().RxDone(0))
}

func TestConsole_PrintsWholeLines(t *testing.T) {
	out := &syncBuffer{}
	c := newConsole(out, nil, nil, slog.Default())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go c.pump.run(ctx, c.ch)

	ch := c.Channel()
	ch.SetOutbound(0, []byte("Playing: Tetris\n"))
	ch.WriteData(0)
	ch.EnableTx(0)

	assert.Eventually(t, func() bool { return out.String() == "Playing: Tetris\n" }, time.Second, time.Millisecond)
	assert.True(t, ch.TxDone(0))
}

type pipePort struct {
	r *io.PipeReader
	syncBuffer
}

func (p *pipePort) Read(b []byte) (int, error) { return p.r.Read(b) }
func (p *pipePort) Close() error               { return p.r.Close() }

func TestSerialLink_ReceiveAndTransmit(t *testing.T) {
	r, w := io.Pipe()
	port := &pipePort{r: r}

	var wakes atomic.Int32
	link := NewSerialLink(port, func() { wakes.Add(1) }, nil)
	ch := link.Channel()
	ch.EnableRx(0)

	ctx, cancel := context.WithCancel(context.Background())
	link.Start(ctx)

	_, err := w.Write([]byte("next\r\n"))
	require.NoError(t, err)
	assert.Eventually(t, func() bool { return ch.RxDone(0) }, time.Second, time.Millisecond)
	assert.Equal(t, "next", inboundLine(ch))

	ch.SetOutbound(0, []byte("Playing: Tetris\n"))
	ch.WriteData(0)
	ch.EnableTx(0)
	assert.Eventually(t, func() bool { return port.String() == "Playing: Tetris\n" }, time.Second, time.Millisecond)
	assert.Positive(t, wakes.Load())

	cancel()
	assert.NoError(t, link.Close())
}

func TestMIDIInput_TickThrottle(t *testing.T) {
	m := &MIDIInput{}
	start := time.Unix(100, 0)
	assert.True(t, m.dueLocked(start), "first scan is always due")

	m.lastRescanAt = start
	assert.False(t, m.dueLocked(start.Add(midiRescanInterval-time.Millisecond)))
	assert.True(t, m.dueLocked(start.Add(midiRescanInterval)))

	m.lastRescanAt = time.Time{}
	assert.True(t, m.dueLocked(start), "a lost device rescans immediately")
}
