package host

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"go.bug.st/serial"

	"github.com/chase3718/lou-jukebox/internal/hal/uart"
)

// txPump drains a uart.Channel on its own goroutine whenever transmission
// starts, standing in for the transmit-ready interrupt.
type txPump struct {
	kick chan struct{}
	wake func()
}

func newTxPump(wake func()) txPump {
	return txPump{kick: make(chan struct{}, 1), wake: wake}
}

func (p txPump) notify(e uart.Event) {
	if e == uart.EventTxStart {
		select {
		case p.kick <- struct{}{}:
		default:
		}
	}
	if p.wake != nil {
		p.wake()
	}
}

func (p txPump) run(ctx context.Context, ch *uart.Channel) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-p.kick:
			ch.Flush()
		}
	}
}

// SerialLink connects a uart.Channel to a serial device.
type SerialLink struct {
	port   io.ReadWriteCloser
	ch     *uart.Channel
	pump   txPump
	logger *slog.Logger

	wg        sync.WaitGroup
	closeOnce sync.Once
	closed    chan struct{}
}

// OpenSerial opens the named serial device at the given baud rate.
func OpenSerial(device string, baud int, wake func(), logger *slog.Logger) (*SerialLink, error) {
	if logger == nil {
		logger = slog.Default()
	}
	p, err := serial.Open(device, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, fmt.Errorf("serial: open %s: %w", device, err)
	}
	logger.Info("serial: port opened", "device", device, "baud", baud)
	return NewSerialLink(p, wake, logger), nil
}

// NewSerialLink wraps an already open port.
func NewSerialLink(port io.ReadWriteCloser, wake func(), logger *slog.Logger) *SerialLink {
	if logger == nil {
		logger = slog.Default()
	}
	l := &SerialLink{
		port:   port,
		pump:   newTxPump(wake),
		logger: logger.With("component", "serial"),
		closed: make(chan struct{}),
	}
	l.ch = uart.NewChannel(uart.Config{Sink: l, Notify: l.pump.notify, Logger: logger})
	return l
}

// Channel returns the channel to hand to the USART machine.
func (l *SerialLink) Channel() *uart.Channel { return l.ch }

// WriteByte implements uart.Sink.
func (l *SerialLink) WriteByte(b byte) error {
	_, err := l.port.Write([]byte{b})
	return err
}

// Start runs the receive and transmit goroutines until ctx is done or the
// port is closed.
func (l *SerialLink) Start(ctx context.Context) {
	l.wg.Add(2)
	go func() {
		defer l.wg.Done()
		l.pump.run(ctx, l.ch)
	}()
	go func() {
		defer l.wg.Done()
		l.readLoop()
	}()
}

func (l *SerialLink) readLoop() {
	buf := make([]byte, 64)
	for {
		n, err := l.port.Read(buf)
		for _, b := range buf[:n] {
			l.ch.Receive(b)
		}
		if n > 0 && l.pump.wake != nil {
			l.pump.wake()
		}
		if err != nil {
			select {
			case <-l.closed:
			default:
				if !errors.Is(err, io.EOF) {
					l.logger.Error("serial: read error", "err", err)
				}
			}
			return
		}
	}
}

// Close closes the port and waits for the reader. Cancel the Start context
// first to stop the transmit goroutine.
func (l *SerialLink) Close() error {
	var err error
	l.closeOnce.Do(func() {
		l.logger.Info("serial: closing port")
		close(l.closed)
		err = l.port.Close()
	})
	l.wg.Wait()
	return err
}
