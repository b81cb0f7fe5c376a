// Package rollover reopens every market on a cron schedule.
package rollover

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rollover.go -destination=mock_rollover.go -package=rollover

const runTimeout = time.Minute

type Resetter interface {
	ResetAll(ctx context.Context) error
}

type Service struct {
	spec     string
	loc      *time.Location
	resetter Resetter
	timeout  time.Duration
	stopped  chan struct{}
}

// New validates spec (standard five-field cron or a descriptor such as
// "@daily"); the schedule is evaluated in loc.
func New(spec string, loc *time.Location, resetter Resetter) (*Service, error) {
	if _, err := cron.ParseStandard(spec); err != nil {
		return nil, fmt.Errorf("invalid daily reset schedule %q: %w", spec, err)
	}
	return &Service{
		spec:     spec,
		loc:      loc,
		resetter: resetter,
		timeout:  runTimeout,
		stopped:  make(chan struct{}),
	}, nil
}

// Start schedules the reset and returns; the scheduler stops when ctx is done
// and Stopped is closed once a reset in progress has finished.
func (s *Service) Start(ctx context.Context) error {
	logger := cronLogger{}
	c := cron.New(
		cron.WithLocation(s.loc),
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)
	if _, err := c.AddFunc(s.spec, func() { s.run(ctx) }); err != nil {
		return fmt.Errorf("schedule daily reset: %w", err)
	}

	c.Start()
	zap.L().Info("Daily reset scheduled", zap.String("spec", s.spec), zap.String("tz", s.loc.String()))

	go func() {
		defer close(s.stopped)
		<-ctx.Done()
		<-c.Stop().Done()
		zap.L().Info("Daily reset scheduler stopped")
	}()
	return nil
}

func (s *Service) Stopped() <-chan struct{} {
	return s.stopped
}

func (s *Service) run(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	if err := s.resetter.ResetAll(ctx); err != nil {
		zap.L().Error("Daily reset failed", zap.Error(err))
		return
	}
	zap.L().Info("Daily reset completed", zap.Duration("took", time.Since(start)))
}

type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	zap.L().Sugar().Debugw(msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	zap.L().Sugar().Errorw(msg, append(keysAndValues, "error", err)...)
}
