package steps

import (
	"context"
	"log/slog"
	"time"

	"github.com/BrandonKowalski/navstep/pkg/navstep/constants"
	"github.com/BrandonKowalski/navstep/pkg/navstep/internal"
	"github.com/BrandonKowalski/navstep/pkg/navstep/internal/clock"
)

// Store is the externally owned stack state a Scheduler writes through.
//
// Begin and WriteIf must be atomic with respect to each other: once Begin
// has returned a new generation, no WriteIf carrying an older generation may
// change the stack.
type Store[S comparable] interface {
	// Load returns a snapshot of the current stack.
	Load() []S
	// Generation returns the current write generation.
	Generation() uint64
	// Begin starts a new generation, writes first and returns the generation.
	Begin(first []S) uint64
	// WriteIf writes step only if gen is still the current generation.
	WriteIf(gen uint64, step []S) bool
}

// Clock is the time source used between steps.
type Clock = clock.Clock

// Outcome is how a schedule ended.
type Outcome int

const (
	OutcomeCompleted   Outcome = iota // Every step was written
	OutcomeSuperseded                 // A newer write took over the store
	OutcomeInterrupted                // The context ended while waiting
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCompleted:
		return "completed"
	case OutcomeSuperseded:
		return "superseded"
	case OutcomeInterrupted:
		return "interrupted"
	default:
		return "unknown"
	}
}

// SchedulerOptions configures a Scheduler. Zero values select the defaults.
type SchedulerOptions struct {
	Delay  time.Duration // Wait before each step after the first; defaults to constants.DefaultStepDelay
	Clock  Clock         // Defaults to the system clock
	Logger *slog.Logger  // Defaults to the internal library logger
}

// Scheduler writes planned steps into a Store, one every Delay.
type Scheduler[S comparable] struct {
	delay  time.Duration
	clock  Clock
	logger *slog.Logger
}

// NewScheduler creates a Scheduler from options.
func NewScheduler[S comparable](opts SchedulerOptions) *Scheduler[S] {
	s := &Scheduler[S]{
		delay:  opts.Delay,
		clock:  opts.Clock,
		logger: opts.Logger,
	}
	if s.delay <= 0 {
		s.delay = constants.DefaultStepDelay
	}
	if s.clock == nil {
		s.clock = &clock.RealClock{}
	}
	if s.logger == nil {
		s.logger = internal.GetInternalLogger()
	}
	return s
}

// Delay returns the wait between consecutive steps.
func (s *Scheduler[S]) Delay() time.Duration {
	return s.delay
}

// Run writes steps[0] immediately and the remaining steps after a delay
// each, blocking until the schedule ends.
func (s *Scheduler[S]) Run(ctx context.Context, store Store[S], plan [][]S) Outcome {
	if len(plan) == 0 {
		return OutcomeCompleted
	}
	gen := store.Begin(plan[0])
	return s.Follow(ctx, store, gen, plan[1:])
}

// Start writes steps[0] before returning and plays the remaining steps on a
// new goroutine. onComplete, if set, is called once after the last step is
// written; it is never called for a superseded or interrupted schedule.
// The returned channel receives the outcome and is then closed.
func (s *Scheduler[S]) Start(ctx context.Context, store Store[S], plan [][]S, onComplete func()) <-chan Outcome {
	if len(plan) == 0 {
		return s.FollowAsync(ctx, store, store.Generation(), nil, onComplete)
	}
	gen := store.Begin(plan[0])
	return s.FollowAsync(ctx, store, gen, plan[1:], onComplete)
}

// Follow plays remaining onto store for a schedule whose first step was
// already written under gen.
func (s *Scheduler[S]) Follow(ctx context.Context, store Store[S], gen uint64, remaining [][]S) Outcome {
	s.logger.Debug("navigation schedule started", "generation", gen, "pending", len(remaining))

	for i, step := range remaining {
		if store.Generation() != gen {
			return OutcomeSuperseded
		}

		select {
		case <-ctx.Done():
			return OutcomeInterrupted
		case <-s.clock.After(s.delay):
		}

		if !store.WriteIf(gen, step) {
			return OutcomeSuperseded
		}
		s.logger.Debug("navigation step applied", "generation", gen, "step", i+1, "depth", len(step))
	}

	s.logger.Debug("navigation schedule completed", "generation", gen)
	return OutcomeCompleted
}

// FollowAsync is Follow on a new goroutine, with the completion semantics of Start.
func (s *Scheduler[S]) FollowAsync(ctx context.Context, store Store[S], gen uint64, remaining [][]S, onComplete func()) <-chan Outcome {
	done := make(chan Outcome, 1)
	go func() {
		defer close(done)
		outcome := s.Follow(ctx, store, gen, remaining)
		if outcome == OutcomeCompleted && onComplete != nil {
			onComplete()
		}
		done <- outcome
	}()
	return done
}
