package application

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Sleeper blocks for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// Pauser reports whether polling is currently suspended.
type Pauser interface {
	Paused() bool
}

type Scheduler struct {
	log   *zap.Logger
	use   *PollUseCase
	every time.Duration
	pause Pauser
	sleep Sleeper
}

type SchedulerOption func(*Scheduler)

func WithSleeper(fn Sleeper) SchedulerOption {
	return func(s *Scheduler) { s.sleep = fn }
}

func WithPauser(p Pauser) SchedulerOption {
	return func(s *Scheduler) { s.pause = p }
}

func NewScheduler(l *zap.Logger, u *PollUseCase, every time.Duration, opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{log: l, use: u, every: every, sleep: SleepContext}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Run polls, then sleeps a fixed interval, until ctx is cancelled. The first
// cycle starts immediately.
func (s *Scheduler) Run(ctx context.Context) {
	for ctx.Err() == nil {
		s.tick(ctx)

		if err := s.sleep(ctx, s.every); err != nil {
			s.log.Info("scheduler stopped", zap.Error(err))
			return
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	if s.pause != nil && s.pause.Paused() {
		s.log.Debug("paused: skipping poll")
		return
	}

	o := s.use.PollOnce(ctx)
	s.log.Debug("cycle done",
		zap.String("kind", string(o.Kind)),
		zap.Bool("notified", o.Notified),
		zap.Int64("watermark", o.Watermark),
	)
}

func SleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
