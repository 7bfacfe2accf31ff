// Package usart implements the line-buffered serial state machine.
//
//	          +--line received--+
//	          v                 |
//	      WaitData -------------+
//	        |   ^
//	 out set|   |tx complete
//	 & ready|   |
//	        v   |
//	      SendData
package usart

import (
	"bytes"
	"errors"
	"log/slog"

	"github.com/chase3718/lou-jukebox/internal/fsm"
	"github.com/chase3718/lou-jukebox/internal/hal"
	"github.com/chase3718/lou-jukebox/internal/hal/uart"
)

// USART states.
const (
	WaitData fsm.State = iota
	SendData
)

const (
	// InputLen is the size of the inbound line buffer.
	InputLen = uart.InputLen
	// OutputLen is the size of the outbound message buffer.
	OutputLen = uart.OutputLen
)

var ErrNilCollaborator = errors.New("usart: nil serial port")

// Config configures a USART.
type Config struct {
	ID     hal.ID
	Port   hal.USART
	Logger *slog.Logger
}

// USART is the serial state machine.
type USART struct {
	m *fsm.FSM

	id       hal.ID
	received bool
	in       [InputLen]byte
	out      [OutputLen]byte

	port   hal.USART
	logger *slog.Logger
}

// New builds a USART waiting for data, with both buffers empty.
func New(cfg Config) (*USART, error) {
	if cfg.Port == nil {
		return nil, ErrNilCollaborator
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	u := &USART{
		id:     cfg.ID,
		port:   cfg.Port,
		logger: cfg.Logger.With("component", "usart", "usart_id", cfg.ID),
	}
	m, err := fsm.New(WaitData, []fsm.Transition{
		{From: WaitData, Guard: u.lineReceived, To: WaitData, Action: u.takeLine},
		{From: WaitData, Guard: u.readyToSend, To: SendData, Action: u.beginSend},
		{From: SendData, Guard: u.sendDone, To: WaitData, Action: u.endSend},
	})
	if err != nil {
		return nil, err
	}
	u.m = m
	return u, nil
}

func (u *USART) lineReceived() bool { return u.port.RxDone(u.id) }

// readyToSend gates the first byte on the channel being ready instead of
// spinning inside the action.
func (u *USART) readyToSend() bool {
	return u.out[0] != uart.Empty && u.port.TxReady(u.id)
}

func (u *USART) sendDone() bool { return u.port.TxDone(u.id) }

func (u *USART) takeLine() {
	u.port.GetInbound(u.id, u.in[:])
	u.port.ResetInbound(u.id)
	u.received = true
	u.logger.Debug("usart: line received", "line", string(trimEmpty(u.in[:])))
}

// beginSend hands the message to the port and empties the local buffer, so
// a message set while sending waits for the next WaitData cycle.
func (u *USART) beginSend() {
	u.port.ResetOutbound(u.id)
	u.port.SetOutbound(u.id, u.out[:])
	u.out = [OutputLen]byte{}
	u.port.WriteData(u.id)
	u.port.EnableTx(u.id)
}

func (u *USART) endSend() {
	u.port.ResetOutbound(u.id)
}

// Step implements fsm.Steppable.
func (u *USART) Step() bool { return u.m.Step() }

// State returns the current state.
func (u *USART) State() fsm.State { return u.m.Current() }

// CheckDataReceived reports an unconsumed inbound line.
func (u *USART) CheckDataReceived() bool { return u.received }

// InData copies the whole inbound buffer into dst.
func (u *USART) InData(dst []byte) {
	copy(dst, u.in[:])
}

// Line returns the inbound line without trailing empty bytes.
func (u *USART) Line() string {
	return string(trimEmpty(u.in[:]))
}

// SetOutData replaces the outbound message. The buffer is zero padded.
// Messages longer than OutputLen are cut to OutputLen-1 bytes and end with
// a newline so the channel always sees a terminated message.
func (u *USART) SetOutData(msg []byte) {
	if u.out[0] != uart.Empty {
		u.logger.Debug("usart: pending message replaced", "pending", string(trimEmpty(u.out[:])))
	}
	u.out = [OutputLen]byte{}
	if len(msg) > OutputLen {
		copy(u.out[:OutputLen-1], msg)
		u.out[OutputLen-1] = uart.EndOfLine
		u.logger.Warn("usart: outbound message truncated", "len", len(msg), "capacity", OutputLen)
		return
	}
	copy(u.out[:], msg)
}

// OutData copies the pending outbound buffer into dst.
func (u *USART) OutData(dst []byte) {
	copy(dst, u.out[:])
}

// ResetInputData clears the inbound buffer and the received flag.
func (u *USART) ResetInputData() {
	u.in = [InputLen]byte{}
	u.received = false
}

func (u *USART) EnableRxInterrupt()  { u.port.EnableRx(u.id) }
func (u *USART) DisableRxInterrupt() { u.port.DisableRx(u.id) }
func (u *USART) EnableTxInterrupt()  { u.port.EnableTx(u.id) }
func (u *USART) DisableTxInterrupt() { u.port.DisableTx(u.id) }

// CheckActivity reports a transmission in progress or an unconsumed line.
func (u *USART) CheckActivity() bool {
	return u.m.Current() == SendData || u.received
}

func trimEmpty(b []byte) []byte {
	if i := bytes.IndexByte(b, uart.Empty); i >= 0 {
		return b[:i]
	}
	return b
}
