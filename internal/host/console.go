package host

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/chzyer/readline"

	"github.com/chase3718/lou-jukebox/internal/hal"
	"github.com/chase3718/lou-jukebox/internal/hal/uart"
)

// KeyTapDuration is how long a console "!key" holds the key.
const KeyTapDuration = 100 * time.Millisecond

var ErrBadDirective = errors.New("console: bad directive")

// directive is a console line starting with '!' that drives the virtual
// inputs instead of reaching the serial channel.
type directive struct {
	press time.Duration
	key   byte
}

// parseDirective parses "!press <ms>" and "!key <c>".
func parseDirective(line string) (directive, error) {
	fields := strings.Fields(strings.TrimPrefix(line, "!"))
	if len(fields) != 2 {
		return directive{}, fmt.Errorf("%w: %q", ErrBadDirective, line)
	}
	switch fields[0] {
	case "press":
		ms, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil || ms == 0 {
			return directive{}, fmt.Errorf("%w: press needs a positive duration in ms", ErrBadDirective)
		}
		return directive{press: time.Duration(ms) * time.Millisecond}, nil
	case "key":
		if len(fields[1]) != 1 {
			return directive{}, fmt.Errorf("%w: key needs one character", ErrBadDirective)
		}
		return directive{key: fields[1][0]}, nil
	default:
		return directive{}, fmt.Errorf("%w: unknown %q", ErrBadDirective, fields[0])
	}
}

// Console is an interactive command line. Typed lines are fed into a
// uart.Channel byte by byte and transmitted lines are printed.
type Console struct {
	rl     *readline.Instance
	ch     *uart.Channel
	pump   txPump
	inputs *Inputs
	logger *slog.Logger

	mu  sync.Mutex
	out []byte

	wg sync.WaitGroup
}

// NewConsole opens the terminal. inputs receives "!press" and "!key"
// directives and may be nil.
func NewConsole(inputs *Inputs, wake func(), logger *slog.Logger) (*Console, error) {
	if logger == nil {
		logger = slog.Default()
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "jukebox> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete: readline.NewPrefixCompleter(
			readline.PcItem("play"),
			readline.PcItem("stop"),
			readline.PcItem("pause"),
			readline.PcItem("speed"),
			readline.PcItem("next"),
			readline.PcItem("select"),
			readline.PcItem("info"),
			readline.PcItem("list"),
			readline.PcItem("help",
				readline.PcItem("1"), readline.PcItem("2"), readline.PcItem("3"),
			),
			readline.PcItem("!press"),
			readline.PcItem("!key"),
		),
	})
	if err != nil {
		return nil, fmt.Errorf("console: %w", err)
	}
	c := newConsole(rl.Stdout(), inputs, wake, logger)
	c.rl = rl
	return c, nil
}

func newConsole(w io.Writer, inputs *Inputs, wake func(), logger *slog.Logger) *Console {
	c := &Console{
		pump:   newTxPump(wake),
		inputs: inputs,
		logger: logger.With("component", "console"),
	}
	c.ch = uart.NewChannel(uart.Config{Sink: &lineWriter{c: c, w: w}, Notify: c.pump.notify, Logger: logger})
	return c
}

// Channel returns the channel to hand to the USART machine.
func (c *Console) Channel() *uart.Channel { return c.ch }

// Start reads lines until EOF or interrupt, then calls onExit.
func (c *Console) Start(ctx context.Context, onExit func()) {
	c.wg.Add(2)
	go func() {
		defer c.wg.Done()
		c.pump.run(ctx, c.ch)
	}()
	go func() {
		defer c.wg.Done()
		defer onExit()
		for {
			line, err := c.rl.Readline()
			if err != nil {
				if !errors.Is(err, readline.ErrInterrupt) && !errors.Is(err, io.EOF) {
					c.logger.Error("console: read error", "err", err)
				}
				return
			}
			c.handleLine(line)
		}
	}()
}

func (c *Console) handleLine(line string) {
	if strings.HasPrefix(line, "!") {
		d, err := parseDirective(line)
		if err != nil {
			c.logger.Warn("console: directive rejected", "err", err)
			return
		}
		if c.inputs == nil {
			return
		}
		if d.press > 0 {
			c.logger.Debug("console: press", "duration_ms", d.press.Milliseconds())
			c.inputs.PressFor(hal.ID(0), d.press)
		} else {
			c.logger.Debug("console: key", "key", string(d.key))
			c.inputs.TapKey(hal.ID(0), d.key, KeyTapDuration)
		}
		return
	}
	for i := 0; i < len(line); i++ {
		c.ch.Receive(line[i])
	}
	c.ch.Receive(uart.EndOfLine)
}

// Close closes the terminal and waits for the reader. Cancel the Start
// context first to stop the transmit goroutine.
func (c *Console) Close() error {
	var err error
	if c.rl != nil {
		err = c.rl.Close()
	}
	c.wg.Wait()
	return err
}

// lineWriter buffers transmitted bytes and prints whole lines so the prompt
// is redrawn once per message.
type lineWriter struct {
	c *Console
	w io.Writer
}

func (lw *lineWriter) WriteByte(b byte) error {
	lw.c.mu.Lock()
	defer lw.c.mu.Unlock()
	lw.c.out = append(lw.c.out, b)
	if b != uart.EndOfLine {
		return nil
	}
	_, err := lw.w.Write(lw.c.out)
	lw.c.out = lw.c.out[:0]
	return err
}
