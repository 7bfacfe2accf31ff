package uart

import (
	"log/slog"
	"sync"

	"github.com/chase3718/lou-jukebox/internal/hal"
)

const (
	// InputLen is the inbound line capacity in bytes.
	InputLen = 32
	// OutputLen is the outbound message capacity in bytes.
	OutputLen = 256
	// Empty marks an unused buffer byte.
	Empty byte = 0x00
	// EndOfLine terminates inbound lines and outbound messages.
	EndOfLine byte = '\n'
	// BacklogLen bounds the bytes held while a completed line is pending.
	BacklogLen = 4 * InputLen
)

// Event is a notification raised by the channel.
type Event uint8

const (
	// EventRxLine fires when an inbound line completes.
	EventRxLine Event = iota
	// EventTxStart fires when transmit notifications are enabled.
	EventTxStart
	// EventTxDone fires when the outbound message has been fully written.
	EventTxDone
)

// Sink receives transmitted bytes.
type Sink interface {
	WriteByte(c byte) error
}

// ReadySink is a Sink that can refuse the first byte of a message.
type ReadySink interface {
	Sink
	TxReady() bool
}

// Config configures a Channel.
type Config struct {
	Sink Sink
	// Notify is called outside the channel lock. It may be nil.
	Notify func(Event)
	Logger *slog.Logger
}

// Channel is a byte-level serial line with fixed inbound and outbound
// buffers. Receive and Transmit are the notification handlers; everything
// else is the hal.USART surface used by the USART state machine.
type Channel struct {
	mu sync.Mutex

	in        [InputLen]byte
	iIdx      int
	overflow  bool
	readDone  bool
	backlog   []byte
	rxEnabled bool

	out       [OutputLen]byte
	oIdx      int
	writeDone bool
	txEnabled bool

	sink   Sink
	notify func(Event)
	logger *slog.Logger
}

// NewChannel returns an idle channel with both notifications disabled.
func NewChannel(cfg Config) *Channel {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Channel{
		sink:   cfg.Sink,
		notify: cfg.Notify,
		logger: cfg.Logger.With("component", "uart"),
	}
}

func (c *Channel) emit(ev Event) {
	if c.notify != nil {
		c.notify(ev)
	}
}

// Receive handles one inbound byte. '\r' is discarded, bytes past the
// buffer capacity are dropped, and '\n' completes the line. Bytes arriving
// while a completed line is pending are held in a backlog and replayed by
// ResetInbound.
func (c *Channel) Receive(b byte) {
	c.mu.Lock()
	if !c.rxEnabled || b == '\r' {
		c.mu.Unlock()
		return
	}
	if c.readDone {
		if len(c.backlog) < BacklogLen {
			c.backlog = append(c.backlog, b)
		} else {
			c.logger.Warn("uart: inbound backlog full, byte dropped", "capacity", BacklogLen)
		}
		c.mu.Unlock()
		return
	}
	done := c.receiveLocked(b)
	c.mu.Unlock()
	if done {
		c.emit(EventRxLine)
	}
}

// receiveLocked stores b and reports whether it completed the line.
func (c *Channel) receiveLocked(b byte) bool {
	switch {
	case b == EndOfLine:
		c.readDone = true
		c.iIdx = 0
		if c.overflow {
			c.logger.Debug("uart: inbound line truncated", "capacity", InputLen)
			c.overflow = false
		}
		return true
	case c.iIdx >= InputLen:
		c.overflow = true
	default:
		c.in[c.iIdx] = b
		c.iIdx++
	}
	return false
}

// replayLocked moves backlog bytes into the empty inbound buffer until a
// line completes or the backlog runs out.
func (c *Channel) replayLocked() bool {
	for i, b := range c.backlog {
		if c.receiveLocked(b) {
			c.backlog = append(c.backlog[:0], c.backlog[i+1:]...)
			return true
		}
	}
	c.backlog = c.backlog[:0]
	return false
}

// Transmit is the transmit-ready continuation. It writes at most one byte
// and reports whether more bytes remain.
func (c *Channel) Transmit() bool {
	c.mu.Lock()
	if !c.txEnabled {
		c.mu.Unlock()
		return false
	}
	done := c.writeNextLocked()
	more := c.txEnabled
	c.mu.Unlock()
	if done {
		c.emit(EventTxDone)
	}
	return more
}

// Flush drives Transmit until the message completes or stalls.
func (c *Channel) Flush() int {
	n := 0
	for c.Transmit() {
		n++
		if n > OutputLen {
			break
		}
	}
	return n
}

// writeNextLocked sends the byte at the cursor. A newline, the last buffer
// slot or an empty byte ends the message.
func (c *Channel) writeNextLocked() bool {
	b := c.out[c.oIdx]
	last := c.oIdx == OutputLen-1 || b == EndOfLine || b == Empty
	if b != Empty {
		c.put(b)
	}
	if last {
		c.txEnabled = false
		c.oIdx = 0
		c.writeDone = true
		return true
	}
	c.oIdx++
	return false
}

func (c *Channel) put(b byte) {
	if c.sink == nil {
		return
	}
	if err := c.sink.WriteByte(b); err != nil {
		c.logger.Error("uart: write error", "err", err)
	}
}

// RxDone implements hal.USART.
func (c *Channel) RxDone(hal.ID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.readDone
}

// GetInbound implements hal.USART.
func (c *Channel) GetInbound(_ hal.ID, dst []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	copy(dst, c.in[:])
}

// ResetInbound implements hal.USART.
func (c *Channel) ResetInbound(hal.ID) {
	c.mu.Lock()
	c.in = [InputLen]byte{}
	c.iIdx = 0
	c.readDone = false
	done := c.replayLocked()
	c.mu.Unlock()
	if done {
		c.emit(EventRxLine)
	}
}

// TxReady implements hal.USART.
func (c *Channel) TxReady(hal.ID) bool {
	if rs, ok := c.sink.(ReadySink); ok {
		return rs.TxReady()
	}
	return true
}

// TxDone implements hal.USART.
func (c *Channel) TxDone(hal.ID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.writeDone
}

// SetOutbound implements hal.USART.
func (c *Channel) SetOutbound(_ hal.ID, src []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.out = [OutputLen]byte{}
	copy(c.out[:], src)
}

// ResetOutbound implements hal.USART.
func (c *Channel) ResetOutbound(hal.ID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.out = [OutputLen]byte{}
	c.oIdx = 0
	c.writeDone = false
}

// WriteData implements hal.USART.
func (c *Channel) WriteData(hal.ID) {
	c.mu.Lock()
	done := c.writeNextLocked()
	c.mu.Unlock()
	if done {
		c.emit(EventTxDone)
	}
}

// EnableRx implements hal.USART.
func (c *Channel) EnableRx(hal.ID) {
	c.mu.Lock()
	c.rxEnabled = true
	c.mu.Unlock()
}

// DisableRx implements hal.USART.
func (c *Channel) DisableRx(hal.ID) {
	c.mu.Lock()
	c.rxEnabled = false
	c.backlog = c.backlog[:0]
	c.mu.Unlock()
}

// EnableTx implements hal.USART.
func (c *Channel) EnableTx(hal.ID) {
	c.mu.Lock()
	pending := !c.writeDone
	c.txEnabled = pending
	c.mu.Unlock()
	if pending {
		c.emit(EventTxStart)
	}
}

// DisableTx implements hal.USART.
func (c *Channel) DisableTx(hal.ID) {
	c.mu.Lock()
	c.txEnabled = false
	c.mu.Unlock()
}

var _ hal.USART = (*Channel)(nil)
