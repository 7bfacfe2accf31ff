// Package hal declares the hardware collaborators the state machines call.
//
// The FSM packages never touch registers, globals or OS devices. Each
// peripheral is addressed through an opaque ID so one implementation can
// serve several instances, and tests can swap in the doubles from hal/sim.
package hal

// ID is an opaque peripheral handle.
type ID uint32

// Clock is a monotonic millisecond tick source.
type Clock interface {
	Millis() uint32
}

// Button reads a push button's debounced-by-software level.
type Button interface {
	IsPressed(id ID) bool
}

// Keypad reads the key currently held, or 0 when none is.
type Keypad interface {
	ReadKey(id ID) byte
}

// USART is a line-oriented serial channel with notification driven transmit.
type USART interface {
	// RxDone reports a complete inbound line.
	RxDone(id ID) bool
	// GetInbound copies the inbound buffer into dst.
	GetInbound(id ID, dst []byte)
	// ResetInbound clears the inbound buffer and the line flag.
	ResetInbound(id ID)

	// TxReady reports whether the channel can take the first byte.
	TxReady(id ID) bool
	// TxDone reports that the whole outbound message has been sent.
	TxDone(id ID) bool
	// SetOutbound replaces the outbound buffer with src.
	SetOutbound(id ID, src []byte)
	// ResetOutbound clears the outbound buffer and the done flag.
	ResetOutbound(id ID)
	// WriteData pushes the next outbound byte. Later bytes are driven by
	// the channel's own transmit notifications.
	WriteData(id ID)

	EnableRx(id ID)
	DisableRx(id ID)
	EnableTx(id ID)
	DisableTx(id ID)
}

// Buzzer is a PWM tone generator with a one-shot note timer.
type Buzzer interface {
	// SetFrequency starts a tone. Callers never pass hz <= 0.
	SetFrequency(id ID, hz float64)
	// SetDuration arms the note timer.
	SetDuration(id ID, ms uint32)
	// NoteTimeout reports that the armed note timer elapsed.
	NoteTimeout(id ID) bool
	// Stop silences the tone and the timer.
	Stop(id ID)
}

// Power yields to the platform until the next asynchronous event.
type Power interface {
	SleepUntilNextEvent()
}
