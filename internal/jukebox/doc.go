// Package jukebox implements the orchestrating state machine. It owns no
// hardware: every guard reads the button, serial, player and keypad
// machines, which must be stepped before the jukebox in each cycle.
//
// A press longer than the on/off threshold turns the jukebox on and plays
// the startup scale. Once that finishes the jukebox waits for commands from
// the serial line, the keypad or a medium press, which skips to the next
// song. Another long press plays the outro and turns it off. With nothing
// active it sleeps through the hal.Power collaborator.
//
// Serial commands are case sensitive, one per line:
//
//	play            resume or start the current melody
//	stop            stop and rewind
//	pause           pause at the next note boundary
//	speed <float>   set playback speed, at least 0.1
//	next            play the next non-empty slot
//	select <int>    play the given slot
//	info [int]      name of the given or current melody
//	list            every slot with its name
//	help [page|cmd] help pages 1-3 or per command
package jukebox
