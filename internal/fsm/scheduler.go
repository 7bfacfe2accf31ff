package fsm

import (
	"context"
	"log/slog"
	"time"
)

// Scheduler steps a fixed, ordered set of machines once per cycle.
//
// Order matters: a machine registered later observes the post-step state of
// every machine registered before it within the same cycle.
type Scheduler struct {
	machines []Steppable
	cycles   uint64
	logger   *slog.Logger
}

// NewScheduler returns a scheduler that steps machines in the given order.
func NewScheduler(logger *slog.Logger, machines ...Steppable) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		machines: machines,
		logger:   logger.With("component", "scheduler"),
	}
}

// Cycle steps every machine exactly once and returns how many fired.
func (s *Scheduler) Cycle() int {
	fired := 0
	for _, m := range s.machines {
		if m.Step() {
			fired++
		}
	}
	s.cycles++
	return fired
}

// Cycles returns the number of completed cycles.
func (s *Scheduler) Cycles() uint64 {
	return s.cycles
}

// Run cycles until ctx is done. A positive tick paces the loop with a
// ticker; zero runs cycles back to back.
func (s *Scheduler) Run(ctx context.Context, tick time.Duration) error {
	s.logger.Info("scheduler: running", "machines", len(s.machines), "tick", tick)

	if tick <= 0 {
		for {
			select {
			case <-ctx.Done():
				s.logger.Info("scheduler: stopped", "cycles", s.cycles)
				return ctx.Err()
			default:
				s.Cycle()
			}
		}
	}

	ticker := time.NewTicker(tick)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler: stopped", "cycles", s.cycles)
			return ctx.Err()
		case <-ticker.C:
			s.Cycle()
		}
	}
}
