package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/poop4ik/weather-service/internal/domain/ports"
	"github.com/poop4ik/weather-service/internal/pkg/logger"
)

// CronScheduler runs periodic maintenance tasks (upstream and store
// health checks). Each run is bounded by the configured timeout.
type CronScheduler struct {
	cron    *cron.Cron
	timeout time.Duration
	logger  logger.Logger
}

func NewCronScheduler(timeout time.Duration) ports.Scheduler {
	return &CronScheduler{
		cron:    cron.New(cron.WithSeconds()),
		timeout: timeout,
		logger:  logger.New("info", "development").WithField("component", "cron_scheduler"),
	}
}

func (s *CronScheduler) Schedule(ctx context.Context, interval time.Duration, task ports.Task) error {
	expr := intervalToCron(interval)
	s.logger.Infof("Scheduling task every %v (cron %q)", interval, expr)

	entryID, err := s.cron.AddFunc(expr, s.wrapTask(ctx, task))
	if err != nil {
		return fmt.Errorf("failed to schedule task: %w", err)
	}
	s.logger.Debugf("Task scheduled with entry ID: %d", entryID)

	if len(s.cron.Entries()) == 1 {
		s.cron.Start()
		s.logger.Info("Cron scheduler started")
	}
	return nil
}

func (s *CronScheduler) wrapTask(ctx context.Context, task ports.Task) func() {
	return func() {
		taskCtx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		start := time.Now()
		if err := task(taskCtx); err != nil {
			s.logger.Errorf("Scheduled task failed: %v", err)
			return
		}
		s.logger.Debugf("Scheduled task completed in %v", time.Since(start))
	}
}

func (s *CronScheduler) Stop() {
	s.logger.Info("Stopping cron scheduler")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Cron scheduler stopped")
}

func intervalToCron(interval time.Duration) string {
	seconds := int(interval.Seconds())
	if seconds < 1 {
		seconds = 60
	}
	return fmt.Sprintf("@every %ds", seconds)
}
