package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mamadbah2/finca/internal/config"
	"github.com/mamadbah2/finca/internal/domain/models"
)

const digestTimeout = 2 * time.Minute

// DigestRunner builds and publishes the dashboard digest.
type DigestRunner interface {
	Run(ctx context.Context, now time.Time) (models.DashboardDigest, error)
}

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron     *cron.Cron
	runner   DigestRunner
	schedule string
	location *time.Location
	logger   *zap.Logger
}

// NewScheduler creates a scheduler that runs the digest in the configured timezone.
func NewScheduler(cfg config.ReportingConfig, runner DigestRunner, logger *zap.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	return &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		runner:   runner,
		schedule: cfg.CronSchedule,
		location: loc,
		logger:   logger,
	}, nil
}

// Start registers the digest job and starts the scheduler.
func (s *Scheduler) Start() error {
	s.logger.Info("starting scheduler", zap.String("schedule", s.schedule), zap.String("timezone", s.location.String()))

	if _, err := s.cron.AddFunc(s.schedule, s.runDigest); err != nil {
		return fmt.Errorf("schedule dashboard digest %q: %w", s.schedule, err)
	}

	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) runDigest() {
	s.logger.Info("generating dashboard digest")
	ctx, cancel := context.WithTimeout(context.Background(), digestTimeout)
	defer cancel()

	digest, err := s.runner.Run(ctx, time.Now().In(s.location))
	if err != nil {
		s.logger.Error("failed to publish dashboard digest", zap.Error(err))
		return
	}
	s.logger.Info("dashboard digest sent successfully", zap.String("date", digest.Date.Format(models.DateLayout)))
}
