package uart

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type byteSink struct {
	bytes.Buffer
	blocked bool
}

func (s *byteSink) TxReady() bool { return !s.blocked }

func feed(c *Channel, s string) {
	for i := 0; i < len(s); i++ {
		c.Receive(s[i])
	}
}

func inbound(c *Channel) string {
	buf := make([]byte, InputLen)
	c.GetInbound(0, buf)
	return string(bytes.TrimRight(buf, "\x00"))
}

func TestChannel_ReceiveLine(t *testing.T) {
	var events []Event
	c := NewChannel(Config{Notify: func(e Event) { events = append(events, e) }})
	c.EnableRx(0)

	feed(c, "play")
	assert.False(t, c.RxDone(0))
	feed(c, "\r\n")

	assert.True(t, c.RxDone(0))
	assert.Equal(t, "play", inbound(c))
	assert.Equal(t, []Event{EventRxLine}, events)

	c.ResetInbound(0)
	assert.False(t, c.RxDone(0))
	assert.Empty(t, inbound(c))
}

func TestChannel_ReceiveIgnoredWhileDisabled(t *testing.T) {
	c := NewChannel(Config{})
	feed(c, "next\n")
	assert.False(t, c.RxDone(0))

	c.EnableRx(0)
	c.DisableRx(0)
	feed(c, "next\n")
	assert.False(t, c.RxDone(0))
}

func TestChannel_ReceiveTruncatesLongLine(t *testing.T) {
	c := NewChannel(Config{})
	c.EnableRx(0)

	long := strings.Repeat("x", InputLen+10)
	feed(c, long+"\n")

	require.True(t, c.RxDone(0))
	assert.Equal(t, strings.Repeat("x", InputLen), inbound(c))

	c.ResetInbound(0)
	feed(c, "stop\n")
	assert.Equal(t, "stop", inbound(c))
}

func TestChannel_PendingLineSurvivesFollowingBytes(t *testing.T) {
	var events []Event
	c := NewChannel(Config{Notify: func(e Event) { events = append(events, e) }})
	c.EnableRx(0)

	feed(c, "select 2\nnext\n")
	require.True(t, c.RxDone(0))
	assert.Equal(t, "select 2", inbound(c))
	assert.Equal(t, []Event{EventRxLine}, events)

	c.ResetInbound(0)
	require.True(t, c.RxDone(0), "held line replayed on reset")
	assert.Equal(t, "next", inbound(c))
	assert.Equal(t, []Event{EventRxLine, EventRxLine}, events)

	c.ResetInbound(0)
	assert.False(t, c.RxDone(0))
	assert.Empty(t, inbound(c))
}

func TestChannel_PartialLineHeldUntilReset(t *testing.T) {
	c := NewChannel(Config{})
	c.EnableRx(0)

	feed(c, "play\nst")
	assert.Equal(t, "play", inbound(c))

	c.ResetInbound(0)
	assert.False(t, c.RxDone(0))
	feed(c, "op\n")
	require.True(t, c.RxDone(0))
	assert.Equal(t, "stop", inbound(c))
}

func TestChannel_BacklogBounded(t *testing.T) {
	c := NewChannel(Config{})
	c.EnableRx(0)

	feed(c, "info\n")
	feed(c, strings.Repeat("y", BacklogLen+20))
	assert.Len(t, c.backlog, BacklogLen)
	assert.Equal(t, "info", inbound(c))
}

func TestChannel_DisableRxDiscardsBacklog(t *testing.T) {
	c := NewChannel(Config{})
	c.EnableRx(0)

	feed(c, "play\nnext\n")
	c.DisableRx(0)
	c.ResetInbound(0)
	assert.False(t, c.RxDone(0))

	c.EnableRx(0)
	feed(c, "stop\n")
	assert.Equal(t, "stop", inbound(c))
}

func TestChannel_TransmitMessage(t *testing.T) {
	sink := &byteSink{}
	var events []Event
	c := NewChannel(Config{Sink: sink, Notify: func(e Event) { events = append(events, e) }})

	c.SetOutbound(0, []byte("Stopped\n"))
	c.WriteData(0)
	c.EnableTx(0)
	assert.False(t, c.TxDone(0))

	c.Flush()
	assert.True(t, c.TxDone(0))
	assert.Equal(t, "Stopped\n", sink.String())
	assert.Equal(t, []Event{EventTxStart, EventTxDone}, events)
	assert.False(t, c.Transmit(), "transmit notifications are off once done")
}

func TestChannel_TransmitStopsAtEmptyByte(t *testing.T) {
	sink := &byteSink{}
	c := NewChannel(Config{Sink: sink})

	c.SetOutbound(0, []byte("abc"))
	c.WriteData(0)
	c.EnableTx(0)
	c.Flush()

	assert.True(t, c.TxDone(0))
	assert.Equal(t, "abc", sink.String())
}

func TestChannel_TransmitFullBuffer(t *testing.T) {
	sink := &byteSink{}
	c := NewChannel(Config{Sink: sink})

	c.SetOutbound(0, bytes.Repeat([]byte{'y'}, OutputLen+5))
	c.WriteData(0)
	c.EnableTx(0)
	c.Flush()

	assert.True(t, c.TxDone(0))
	assert.Equal(t, OutputLen, sink.Len())
}

func TestChannel_SingleByteMessageCompletesImmediately(t *testing.T) {
	sink := &byteSink{}
	c := NewChannel(Config{Sink: sink})

	c.SetOutbound(0, []byte("\n"))
	c.WriteData(0)
	assert.True(t, c.TxDone(0))

	c.EnableTx(0)
	assert.False(t, c.Transmit())
	assert.Equal(t, "\n", sink.String())
}

func TestChannel_ResetOutbound(t *testing.T) {
	sink := &byteSink{}
	c := NewChannel(Config{Sink: sink})

	c.SetOutbound(0, []byte("a\n"))
	c.WriteData(0)
	c.EnableTx(0)
	c.Flush()
	require.True(t, c.TxDone(0))

	c.ResetOutbound(0)
	assert.False(t, c.TxDone(0))
}

func TestChannel_TxReadyFollowsSink(t *testing.T) {
	sink := &byteSink{blocked: true}
	c := NewChannel(Config{Sink: sink})
	assert.False(t, c.TxReady(0))

	sink.blocked = false
	assert.True(t, c.TxReady(0))

	plain := NewChannel(Config{})
	assert.True(t, plain.TxReady(0))
}
