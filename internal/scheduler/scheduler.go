package scheduler

import (
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
)

// DefaultInterval is used when no positive interval is configured.
const DefaultInterval = time.Minute

// Sweeper drops expired cache entries and reports how many it removed.
type Sweeper interface {
	Sweep() int
}

// Scheduler periodically sweeps expired entries out of an in-process cache.
type Scheduler struct {
	scheduler *gocron.Scheduler
	sweeper   Sweeper
	interval  time.Duration
	logger    *slog.Logger
}

// New creates a new Scheduler.
func New(sweeper Sweeper, interval time.Duration, logger *slog.Logger) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()
	return &Scheduler{
		scheduler: s,
		sweeper:   sweeper,
		interval:  interval,
		logger:    logger,
	}
}

// Start schedules the sweep job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if s.sweeper == nil {
		s.logger.Info("scheduler: no sweeper configured; nothing to schedule")
		return nil
	}

	_, err := s.scheduler.Every(s.interval).WaitForSchedule().Do(s.sweep)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	s.logger.Info("scheduler: cache sweep started", "interval", s.interval)
	return nil
}

func (s *Scheduler) sweep() {
	start := time.Now()
	removed := s.sweeper.Sweep()
	s.logger.Debug("scheduler: cache sweep completed", "removed", removed, "duration", time.Since(start))
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
