package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, uint32(150), cfg.Button.DebounceMs)
	assert.Equal(t, uint32(1000), cfg.Button.OnOffPressMs)
	assert.Equal(t, uint32(500), cfg.Button.NextSongPressMs)
	assert.Equal(t, ToneBeep, cfg.Tone.Backend)
	assert.Empty(t, cfg.Serial.Device)
	assert.Equal(t, time.Millisecond, cfg.Tick())
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jukebox.toml")
	data := `
debug = true

[button]
on_off_press_ms = 1500

[serial]
device = "/dev/ttyUSB0"
baud = 115200

[tone]
backend = "midi"
midi_output = "FluidSynth"

[midi]
preferred = ["Keystation"]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Debug)
	assert.Equal(t, uint32(1500), cfg.Button.OnOffPressMs)
	assert.Equal(t, uint32(150), cfg.Button.DebounceMs, "unset keys keep defaults")
	assert.Equal(t, "/dev/ttyUSB0", cfg.Serial.Device)
	assert.Equal(t, 115200, cfg.Serial.Baud)
	assert.Equal(t, ToneMIDI, cfg.Tone.Backend)
	assert.Equal(t, "FluidSynth", cfg.Tone.MIDIOutput)
	assert.Equal(t, []string{"Keystation"}, cfg.MIDI.Preferred)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := Parse("[button]\ndebounce = 10\n")
	assert.ErrorIs(t, err, ErrUnknownKey)
	assert.Contains(t, err.Error(), "button.debounce")
}

func TestParse_Syntax(t *testing.T) {
	_, err := Parse("[button\n")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero debounce", func(c *Config) { c.Button.DebounceMs = 0 }, ErrInvalidDebounce},
		{"next equals on off", func(c *Config) { c.Button.NextSongPressMs = 1000 }, ErrInvalidThreshold},
		{"next above on off", func(c *Config) { c.Button.NextSongPressMs = 2000 }, ErrInvalidThreshold},
		{"unknown backend", func(c *Config) { c.Tone.Backend = "piezo" }, ErrInvalidBackend},
		{"bad baud", func(c *Config) { c.Serial.Device = "/dev/ttyS0"; c.Serial.Baud = 0 }, ErrInvalidBaud},
		{"console ignores baud", func(c *Config) { c.Serial.Baud = 0 }, nil},
		{"silent backend", func(c *Config) { c.Tone.Backend = ToneNone }, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
