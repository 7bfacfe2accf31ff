package jukebox

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/chase3718/lou-jukebox/internal/buzzer"
	"github.com/chase3718/lou-jukebox/internal/fsm"
	"github.com/chase3718/lou-jukebox/internal/hal"
	"github.com/chase3718/lou-jukebox/internal/melodies"
)

// Jukebox states.
const (
	Off fsm.State = iota
	StartUp
	WaitCommand
	SleepWhileOff
	SleepWhileOn
)

const (
	DefaultOnOffPressMs    = 1000
	DefaultNextSongPressMs = 500
)

// MinSpeed is the lowest playback speed accepted from the command line.
const MinSpeed = 0.1

var ErrNilCollaborator = errors.New("jukebox: nil collaborator")

// Button is the part of the button machine the jukebox reads.
type Button interface {
	Duration() uint32
	ResetDuration()
	CheckActivity() bool
}

// Serial is the part of the USART machine the jukebox drives.
type Serial interface {
	CheckDataReceived() bool
	Line() string
	ResetInputData()
	SetOutData(msg []byte)
	EnableRxInterrupt()
	DisableRxInterrupt()
	DisableTxInterrupt()
	CheckActivity() bool
}

// Player is the part of the melody player the jukebox drives.
type Player interface {
	SetMelody(m *melodies.Melody)
	SetAction(a buzzer.Action)
	Action() buzzer.Action
	SetSpeed(s float64)
	Speed() float64
	CheckActivity() bool
}

// Keys is the part of the keypad machine the jukebox reads.
type Keys interface {
	CheckKeyReceived() bool
	ResetKeyReceived()
	Key() byte
	CheckActivity() bool
}

// Config configures a Jukebox. The sub machines are owned by the caller,
// which also steps them.
type Config struct {
	Button Button
	Serial Serial
	Player Player
	Keys   Keys
	Power  hal.Power

	OnOffPressMs    uint32
	NextSongPressMs uint32

	// Library replaces the default melody table when non-nil.
	Library *[melodies.LibrarySize]*melodies.Melody

	Logger *slog.Logger
}

// Jukebox is the orchestrating state machine.
type Jukebox struct {
	m *fsm.FSM

	onOffMs    uint32
	nextSongMs uint32
	library    [melodies.LibrarySize]*melodies.Melody
	idx        int
	name       string

	button Button
	serial Serial
	player Player
	keys   Keys
	power  hal.Power
	logger *slog.Logger
}

// New builds a jukebox in the Off state. Zero thresholds take the defaults.
func New(cfg Config) (*Jukebox, error) {
	if cfg.Button == nil || cfg.Serial == nil || cfg.Player == nil || cfg.Keys == nil || cfg.Power == nil {
		return nil, ErrNilCollaborator
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.OnOffPressMs == 0 {
		cfg.OnOffPressMs = DefaultOnOffPressMs
	}
	if cfg.NextSongPressMs == 0 {
		cfg.NextSongPressMs = DefaultNextSongPressMs
	}
	j := &Jukebox{
		onOffMs:    cfg.OnOffPressMs,
		nextSongMs: cfg.NextSongPressMs,
		library:    melodies.Library(),
		button:     cfg.Button,
		serial:     cfg.Serial,
		player:     cfg.Player,
		keys:       cfg.Keys,
		power:      cfg.Power,
		logger:     cfg.Logger.With("component", "jukebox"),
	}
	if cfg.Library != nil {
		j.library = *cfg.Library
	}
	m, err := fsm.New(Off, []fsm.Transition{
		{From: Off, Guard: j.idle, To: SleepWhileOff, Action: j.sleep},
		{From: SleepWhileOff, Guard: j.idle, To: SleepWhileOff, Action: j.sleep},
		{From: SleepWhileOff, Guard: j.active, To: Off},
		{From: Off, Guard: j.onOffPress, To: StartUp, Action: j.startUp},
		{From: StartUp, Guard: j.melodyFinished, To: WaitCommand, Action: j.startJukebox},
		{From: WaitCommand, Guard: j.nextSongPress, To: WaitCommand, Action: j.loadNextSong},
		{From: WaitCommand, Guard: j.serial.CheckDataReceived, To: WaitCommand, Action: j.readCommand},
		{From: WaitCommand, Guard: j.keys.CheckKeyReceived, To: WaitCommand, Action: j.readKey},
		{From: WaitCommand, Guard: j.idle, To: SleepWhileOn, Action: j.sleep},
		{From: SleepWhileOn, Guard: j.idle, To: SleepWhileOn, Action: j.sleep},
		{From: SleepWhileOn, Guard: j.active, To: WaitCommand},
		{From: WaitCommand, Guard: j.onOffPress, To: Off, Action: j.shutDown},
	})
	if err != nil {
		return nil, err
	}
	j.m = m
	return j, nil
}

// Step implements fsm.Steppable.
func (j *Jukebox) Step() bool { return j.m.Step() }

// State returns the current state.
func (j *Jukebox) State() fsm.State { return j.m.Current() }

// MelodyIndex returns the library slot of the current melody.
func (j *Jukebox) MelodyIndex() int { return j.idx }

// MelodyName returns the name of the current melody, empty before start up.
func (j *Jukebox) MelodyName() string { return j.name }

func (j *Jukebox) active() bool {
	return j.button.CheckActivity() ||
		j.serial.CheckActivity() ||
		j.player.CheckActivity() ||
		j.keys.CheckActivity()
}

func (j *Jukebox) idle() bool { return !j.active() }

func (j *Jukebox) onOffPress() bool {
	d := j.button.Duration()
	return d > 0 && d > j.onOffMs
}

func (j *Jukebox) nextSongPress() bool {
	d := j.button.Duration()
	return d > 0 && d > j.nextSongMs && d < j.onOffMs
}

func (j *Jukebox) melodyFinished() bool { return j.player.Action() == buzzer.Stop }

func (j *Jukebox) sleep() { j.power.SleepUntilNextEvent() }

func (j *Jukebox) startUp() {
	j.button.ResetDuration()
	j.serial.EnableRxInterrupt()
	j.logger.Info("jukebox: on")
	j.player.SetSpeed(buzzer.DefaultSpeed)
	j.player.SetMelody(j.library[0])
	j.player.SetAction(buzzer.Play)
}

func (j *Jukebox) startJukebox() {
	j.idx = 0
	j.name = j.nameOf(0)
}

func (j *Jukebox) shutDown() {
	j.button.ResetDuration()
	j.serial.DisableRxInterrupt()
	j.serial.DisableTxInterrupt()
	j.logger.Info("jukebox: off")
	j.player.SetAction(buzzer.Stop)
	j.player.SetMelody(j.library[melodies.LibrarySize-1])
	j.player.SetAction(buzzer.Play)
}

func (j *Jukebox) loadNextSong() {
	j.nextSong()
	j.button.ResetDuration()
}

func (j *Jukebox) readCommand() {
	line := j.serial.Line()
	j.serial.ResetInputData()
	j.execute(line)
}

func (j *Jukebox) readKey() {
	key := j.keys.Key()
	j.keys.ResetKeyReceived()
	idx, ok := j.slot(string(key))
	if !ok {
		j.logger.Debug("jukebox: no melody for key", "key", string(key))
		j.report(msgMelodyNotFound)
		return
	}
	j.selectMelody(idx)
}

// nextSong advances to the following slot. Empty slots and the end of the
// table both wrap to slot 0.
func (j *Jukebox) nextSong() {
	j.player.SetAction(buzzer.Stop)
	j.idx++
	if j.idx >= melodies.LibrarySize || j.library[j.idx].Empty() {
		j.idx = 0
	}
	j.play()
}

func (j *Jukebox) selectMelody(idx int) {
	j.player.SetAction(buzzer.Stop)
	j.idx = idx
	j.play()
}

func (j *Jukebox) play() {
	j.name = j.nameOf(j.idx)
	j.player.SetMelody(j.library[j.idx])
	j.player.SetAction(buzzer.Play)
	j.logger.Info("jukebox: playing", "melody", j.name, "index", j.idx)
	j.reportf("Playing: %s", j.name)
}

func (j *Jukebox) nameOf(idx int) string {
	if m := j.library[idx]; m != nil {
		return m.Name
	}
	return ""
}

func (j *Jukebox) report(msg string) {
	j.serial.SetOutData([]byte(msg + "\n"))
}

func (j *Jukebox) reportf(format string, args ...any) {
	j.report(fmt.Sprintf(format, args...))
}
