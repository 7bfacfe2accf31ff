// Package fsm is the polled state machine engine behind every jukebox
// component.
//
// A machine is a current state plus an ordered transition table:
//
//	{From, Guard, To, Action}
//
// Step scans the rows top to bottom. The first row whose From equals the
// current state and whose Guard returns true fires: its Action runs while the
// machine is still in From, then the machine moves to To. Later rows are not
// evaluated that call, even if their guards would also hold. No match means
// no side effects.
//
// # Scheduling
//
// The Scheduler steps each registered machine once per cycle in a fixed
// order. The jukebox is registered last so its guards see the button, USART,
// buzzer and keypad as they are after this cycle's step:
//
//	button -> usart -> buzzer -> keypad -> jukebox
//
// Nothing blocks inside a step except an action that deliberately yields to
// the hardware (low-power sleep).
package fsm
