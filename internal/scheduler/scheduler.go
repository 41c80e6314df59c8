package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"
)

const refreshTimeout = 30 * time.Second

// Refresher re-runs the lookup for whatever is currently displayed.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Scheduler periodically refreshes the displayed weather.
type Scheduler struct {
	scheduler *gocron.Scheduler
	refresher Refresher
	interval  time.Duration
}

// New creates a new Scheduler. A non-positive interval disables it.
func New(interval time.Duration, refresher Refresher) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		refresher: refresher,
		interval:  interval,
	}
}

// Start schedules the periodic job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		log.Println("scheduler: refresh disabled; nothing to schedule")
		return nil
	}

	seconds := int(s.interval.Seconds())
	if seconds <= 0 {
		seconds = 1
	}

	_, err := s.scheduler.Every(seconds).Seconds().Do(s.refresh)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

func (s *Scheduler) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	if err := s.refresher.Refresh(ctx); err != nil {
		log.Printf("scheduler: refresh failed: %v", err)
	}
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
