// Package buzzer implements the melody player state machine. It walks a
// melody note by note through a hal.Buzzer, scaling every note duration by
// the playback speed.
//
// A note plays in WaitNote until the tone timer expires. PlayNote then
// decides what comes next: the following note, a stop back to WaitStart, a
// pause in PauseNote, or the end of the melody in WaitMelody. Stop and
// pause requests are only seen at note boundaries.
package buzzer

import (
	"errors"
	"log/slog"

	"github.com/chase3718/lou-jukebox/internal/fsm"
	"github.com/chase3718/lou-jukebox/internal/hal"
	"github.com/chase3718/lou-jukebox/internal/melodies"
)

// Buzzer states.
const (
	WaitStart fsm.State = iota
	PlayNote
	PauseNote
	WaitNote
	WaitMelody
)

// Action is the playback command set by the jukebox.
type Action int

const (
	Stop Action = iota
	Play
	Pause
)

func (a Action) String() string {
	switch a {
	case Stop:
		return "stop"
	case Play:
		return "play"
	case Pause:
		return "pause"
	default:
		return "unknown"
	}
}

// DefaultSpeed is the playback speed of a new player.
const DefaultSpeed = 1.0

var ErrNilCollaborator = errors.New("buzzer: nil tone generator")

// Config configures a Player.
type Config struct {
	ID     hal.ID
	Tone   hal.Buzzer
	Logger *slog.Logger
}

// Player is the melody player state machine.
type Player struct {
	m *fsm.FSM

	id     hal.ID
	melody *melodies.Melody
	cursor int
	speed  float64
	action Action

	tone   hal.Buzzer
	logger *slog.Logger
}

// New builds a stopped player with no melody at speed 1.
func New(cfg Config) (*Player, error) {
	if cfg.Tone == nil {
		return nil, ErrNilCollaborator
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	p := &Player{
		id:     cfg.ID,
		speed:  DefaultSpeed,
		action: Stop,
		tone:   cfg.Tone,
		logger: cfg.Logger.With("component", "buzzer", "buzzer_id", cfg.ID),
	}
	m, err := fsm.New(WaitStart, []fsm.Transition{
		{From: WaitStart, Guard: p.canStart, To: WaitNote, Action: p.startMelody},
		{From: WaitNote, Guard: p.noteEnded, To: PlayNote, Action: p.silence},
		{From: PlayNote, Guard: p.hasNextNote, To: WaitNote, Action: p.playNextNote},
		{From: PlayNote, Guard: p.stopRequested, To: WaitStart, Action: p.stopMelody},
		{From: PlayNote, Guard: p.pauseRequested, To: PauseNote, Action: p.silence},
		{From: PlayNote, Guard: p.melodyEnded, To: WaitMelody, Action: p.endMelody},
		{From: PauseNote, Guard: p.playRequested, To: PlayNote},
		{From: WaitMelody, Guard: p.canStart, To: WaitNote, Action: p.startMelody},
	})
	if err != nil {
		return nil, err
	}
	p.m = m
	return p, nil
}

func (p *Player) canStart() bool       { return !p.melody.Empty() && p.action == Play }
func (p *Player) noteEnded() bool      { return p.tone.NoteTimeout(p.id) }
func (p *Player) playRequested() bool  { return p.action == Play }
func (p *Player) stopRequested() bool  { return p.action == Stop }
func (p *Player) pauseRequested() bool { return p.action == Pause }
func (p *Player) melodyEnded() bool    { return p.cursor >= p.melody.Len() }

func (p *Player) hasNextNote() bool {
	return p.action == Play && p.cursor < p.melody.Len()
}

// playNote starts the note at the cursor and advances past it. A note
// without a positive frequency only arms the timer.
func (p *Player) playNote() {
	n := p.melody.Notes[p.cursor]
	if n.Frequency > 0 {
		p.tone.SetFrequency(p.id, n.Frequency)
	}
	p.tone.SetDuration(p.id, uint32(float64(n.Duration)/p.speed))
	p.cursor++
}

func (p *Player) startMelody() {
	p.cursor = 0
	p.logger.Debug("buzzer: melody started", "melody", p.melody.Name, "notes", p.melody.Len(), "speed", p.speed)
	p.playNote()
}

func (p *Player) playNextNote() { p.playNote() }

func (p *Player) silence() { p.tone.Stop(p.id) }

func (p *Player) stopMelody() {
	p.tone.Stop(p.id)
	p.cursor = 0
}

func (p *Player) endMelody() {
	p.tone.Stop(p.id)
	p.cursor = 0
	p.action = Stop
	p.logger.Debug("buzzer: melody ended")
}

// Step implements fsm.Steppable.
func (p *Player) Step() bool { return p.m.Step() }

// State returns the current state.
func (p *Player) State() fsm.State { return p.m.Current() }

// SetMelody selects the melody to play. It does not touch the cursor.
func (p *Player) SetMelody(m *melodies.Melody) { p.melody = m }

// Melody returns the selected melody, nil if none.
func (p *Player) Melody() *melodies.Melody { return p.melody }

// SetAction sets the playback command. Stop also rewinds the cursor.
func (p *Player) SetAction(a Action) {
	p.action = a
	if a == Stop {
		p.cursor = 0
	}
}

// Action returns the current playback command.
func (p *Player) Action() Action { return p.action }

// SetSpeed sets the duration divisor applied to new notes.
func (p *Player) SetSpeed(s float64) { p.speed = s }

// Speed returns the playback speed.
func (p *Player) Speed() float64 { return p.speed }

// Cursor returns the index of the next note to play.
func (p *Player) Cursor() int { return p.cursor }

// CheckActivity reports whether the player is playing.
func (p *Player) CheckActivity() bool { return p.action == Play }
