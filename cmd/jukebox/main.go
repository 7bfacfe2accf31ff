package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/chase3718/lou-jukebox/internal/button"
	"github.com/chase3718/lou-jukebox/internal/buzzer"
	"github.com/chase3718/lou-jukebox/internal/config"
	"github.com/chase3718/lou-jukebox/internal/fsm"
	"github.com/chase3718/lou-jukebox/internal/hal"
	"github.com/chase3718/lou-jukebox/internal/hal/uart"
	"github.com/chase3718/lou-jukebox/internal/host"
	"github.com/chase3718/lou-jukebox/internal/jukebox"
	"github.com/chase3718/lou-jukebox/internal/keypad"
	"github.com/chase3718/lou-jukebox/internal/usart"
)

// -------------------- Logger --------------------

// logger is the package-wide structured logger. Safe to use before initLogger
// is called; defaults to slog.Default().
var logger = slog.Default()

// initLogger configures the shared slog logger and makes it the default.
func initLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	})
	logger = slog.New(h)
	slog.SetDefault(logger)
}

func fatal(msg string, args ...any) {
	logger.Error(msg, args...)
	os.Exit(1)
}

// -------------------- Backends --------------------

// line is the command transport: a serial device or the console.
type line interface {
	Channel() *uart.Channel
	Close() error
}

func openTone(cfg config.ToneConfig, wake func()) (hal.Buzzer, func()) {
	switch cfg.Backend {
	case config.ToneMIDI:
		t, err := host.OpenMIDITone(cfg.MIDIOutput, cfg.MIDIChannel, wake, logger)
		if err != nil {
			logger.Warn("tone: midi output unavailable, playing silently", "err", err)
			return host.NewSilentTone(wake), func() {}
		}
		return t, t.Close
	case config.ToneNone:
		return host.NewSilentTone(wake), func() {}
	default:
		t, err := host.NewBeepTone(cfg.SampleRate, cfg.Volume, wake, logger)
		if err != nil {
			logger.Warn("tone: speaker unavailable, playing silently", "err", err)
			return host.NewSilentTone(wake), func() {}
		}
		return t, t.Close
	}
}

// -------------------- Main --------------------

func main() {
	configPath := flag.String("config", "", "TOML configuration file")
	debug := flag.Bool("debug", false, "enable debug logging (adds source location)")
	serialDev := flag.String("serial", "", "serial port device (empty uses the console)")
	baud := flag.Int("baud", 0, "serial baud rate (0 keeps the configured value)")
	tone := flag.String("tone", "", "tone backend: beep, midi or none")
	tickMs := flag.Uint("tick", 0, "scheduler tick in ms (0 keeps the configured value)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		initLogger(*debug)
		fatal("config load failed", "path", *configPath, "err", err)
	}
	cfg.Debug = cfg.Debug || *debug
	if *serialDev != "" {
		cfg.Serial.Device = *serialDev
	}
	if *baud > 0 {
		cfg.Serial.Baud = *baud
	}
	if *tone != "" {
		cfg.Tone.Backend = *tone
	}
	if *tickMs > 0 {
		cfg.Loop.TickMs = uint32(*tickMs)
	}
	initLogger(cfg.Debug)
	if err := cfg.Validate(); err != nil {
		fatal("invalid configuration", "err", err)
	}

	logger.Info("lou-jukebox starting",
		"serial", cfg.Serial.Device,
		"baud", cfg.Serial.Baud,
		"tone", cfg.Tone.Backend,
		"debug", cfg.Debug,
		"debounce_ms", cfg.Button.DebounceMs,
		"on_off_press_ms", cfg.Button.OnOffPressMs,
		"next_song_press_ms", cfg.Button.NextSongPressMs,
		"tick", cfg.Tick(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	power := host.NewPower(host.DefaultMaxSleep)
	clock := host.NewWallClock()
	inputs := host.NewInputs(power.Wake)

	var link line
	if cfg.Serial.Device != "" {
		sl, err := host.OpenSerial(cfg.Serial.Device, cfg.Serial.Baud, power.Wake, logger)
		if err != nil {
			fatal("serial open failed", "err", err)
		}
		sl.Start(ctx)
		link = sl
	} else {
		con, err := host.NewConsole(inputs, power.Wake, logger)
		if err != nil {
			fatal("console open failed", "err", err)
		}
		con.Start(ctx, stop)
		link = con
	}
	defer func() {
		if err := link.Close(); err != nil {
			logger.Warn("line close failed", "err", err)
		}
	}()

	toneOut, closeTone := openTone(cfg.Tone, power.Wake)
	defer closeTone()

	if cfg.MIDI.Enabled {
		mi, err := host.NewMIDIInput(host.MIDIInputConfig{
			Preferred: cfg.MIDI.Preferred,
			Excluded:  cfg.MIDI.Excluded,
			Notes:     host.NoteMap{ButtonNote: cfg.MIDI.ButtonNote, KeypadBaseNote: cfg.MIDI.KeypadBaseNote},
			Inputs:    inputs,
			Logger:    logger,
		})
		if err != nil {
			logger.Warn("midi keyboard unavailable", "err", err)
		} else {
			defer mi.Close()
			go mi.Run(ctx)
		}
	}

	btn, err := button.New(button.Config{DebounceMs: cfg.Button.DebounceMs, Pin: inputs, Clock: clock, Logger: logger})
	if err != nil {
		fatal("button init failed", "err", err)
	}
	ser, err := usart.New(usart.Config{Port: link.Channel(), Logger: logger})
	if err != nil {
		fatal("usart init failed", "err", err)
	}
	player, err := buzzer.New(buzzer.Config{Tone: toneOut, Logger: logger})
	if err != nil {
		fatal("buzzer init failed", "err", err)
	}
	keys, err := keypad.New(keypad.Config{Port: inputs, Logger: logger})
	if err != nil {
		fatal("keypad init failed", "err", err)
	}
	box, err := jukebox.New(jukebox.Config{
		Button:          btn,
		Serial:          ser,
		Player:          player,
		Keys:            keys,
		Power:           power,
		OnOffPressMs:    cfg.Button.OnOffPressMs,
		NextSongPressMs: cfg.Button.NextSongPressMs,
		Logger:          logger,
	})
	if err != nil {
		fatal("jukebox init failed", "err", err)
	}

	logger.Info("running – hold the button to switch on")

	sched := fsm.NewScheduler(logger, btn, ser, player, keys, box)
	if err := sched.Run(ctx, cfg.Tick()); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("scheduler stopped", "err", err)
	}
	logger.Info("lou-jukebox stopped", "cycles", sched.Cycles(), "sleeps", power.Sleeps())
}
