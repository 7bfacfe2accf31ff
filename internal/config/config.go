// Package config holds the jukebox runtime configuration: defaults, an
// optional TOML file and validation.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Tone backends.
const (
	ToneBeep = "beep"
	ToneMIDI = "midi"
	ToneNone = "none"
)

var (
	ErrInvalidDebounce  = errors.New("config: debounce must be positive")
	ErrInvalidThreshold = errors.New("config: next song press must be shorter than on/off press")
	ErrInvalidBackend   = errors.New("config: unknown tone backend")
	ErrInvalidBaud      = errors.New("config: baud rate must be positive")
	ErrUnknownKey       = errors.New("config: unknown key")
)

// Config is the top-level configuration.
type Config struct {
	Debug  bool         `toml:"debug"`
	Button ButtonConfig `toml:"button"`
	Loop   LoopConfig   `toml:"loop"`
	Serial SerialConfig `toml:"serial"`
	Tone   ToneConfig   `toml:"tone"`
	MIDI   MIDIConfig   `toml:"midi"`
}

type ButtonConfig struct {
	DebounceMs      uint32 `toml:"debounce_ms"`
	OnOffPressMs    uint32 `toml:"on_off_press_ms"`
	NextSongPressMs uint32 `toml:"next_song_press_ms"`
}

type LoopConfig struct {
	TickMs uint32 `toml:"tick_ms"`
}

// SerialConfig selects the command line transport. An empty device uses
// the interactive console.
type SerialConfig struct {
	Device string `toml:"device"`
	Baud   int    `toml:"baud"`
}

type ToneConfig struct {
	Backend    string  `toml:"backend"`
	SampleRate int     `toml:"sample_rate"`
	Volume     float64 `toml:"volume"`

	// MIDIOutput is a case-insensitive name pattern of the output port used
	// by the midi backend.
	MIDIOutput  string `toml:"midi_output"`
	MIDIChannel uint8  `toml:"midi_channel"`
}

// MIDIConfig configures the MIDI keyboard used as button and keypad.
type MIDIConfig struct {
	Enabled   bool     `toml:"enabled"`
	Preferred []string `toml:"preferred"`
	Excluded  []string `toml:"excluded"`

	// ButtonNote is the key that acts as the user button.
	ButtonNote     uint8 `toml:"button_note"`
	// KeypadBaseNote is the key for digit 0; the next nine keys are 1-9.
	KeypadBaseNote uint8 `toml:"keypad_base_note"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Button: ButtonConfig{
			DebounceMs:      150,
			OnOffPressMs:    1000,
			NextSongPressMs: 500,
		},
		Loop:   LoopConfig{TickMs: 1},
		Serial: SerialConfig{Baud: 9600},
		Tone: ToneConfig{
			Backend:     ToneBeep,
			SampleRate:  44100,
			Volume:      0.2,
			MIDIChannel: 0,
		},
		MIDI: MIDIConfig{
			Enabled:        true,
			Preferred:      []string{"Launchkey", "Novation"},
			Excluded:       []string{"Midi Through", "Through Port", "Dummy"},
			ButtonNote:     48,
			KeypadBaseNote: 60,
		},
	}
}

// Load decodes the TOML file at path over the defaults. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// Parse decodes TOML text over the defaults.
func Parse(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(names, ", "))
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Button.DebounceMs == 0 {
		return ErrInvalidDebounce
	}
	if c.Button.NextSongPressMs >= c.Button.OnOffPressMs {
		return fmt.Errorf("%w: next_song_press_ms=%d on_off_press_ms=%d",
			ErrInvalidThreshold, c.Button.NextSongPressMs, c.Button.OnOffPressMs)
	}
	switch c.Tone.Backend {
	case ToneBeep, ToneMIDI, ToneNone:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidBackend, c.Tone.Backend)
	}
	if c.Serial.Device != "" && c.Serial.Baud <= 0 {
		return ErrInvalidBaud
	}
	return nil
}

// Tick returns the scheduler period.
func (c Config) Tick() time.Duration {
	return time.Duration(c.Loop.TickMs) * time.Millisecond
}
