package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
)

const sweepTimeout = 30 * time.Second

// AppointmentRepository is the appointment repository interface.
type AppointmentRepository interface {
	CompletePast(ctx context.Context, now time.Time) (int64, error)
}

// TimeProvider supplies the current time (swappable in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface.
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time { return time.Now() }

// CompletionSweeper periodically moves approved appointments whose window
// has fully elapsed to completed. Completion is a background fact, not a
// user action, so it runs on a schedule rather than on request.
type CompletionSweeper struct {
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	cron            *cron.Cron
	schedule        string
	logger          Logger
}

// NewCompletionSweeper creates the sweeper with a cron schedule
// (e.g. "*/10 * * * *" for every ten minutes).
func NewCompletionSweeper(appointmentRepo AppointmentRepository, schedule string, logger Logger) *CompletionSweeper {
	return &CompletionSweeper{
		appointmentRepo: appointmentRepo,
		timeProvider:    realTimeProvider{},
		cron:            cron.New(),
		schedule:        schedule,
		logger:          logger,
	}
}

// Start registers the job and starts the scheduler. One sweep runs
// immediately so a restart does not wait a full interval to catch up.
func (s *CompletionSweeper) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.Sweep); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("CompletionSweeper: started with schedule %q", s.schedule)

	go s.Sweep()
	return nil
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (s *CompletionSweeper) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	s.logger.Info("CompletionSweeper: stopped")
}

// Sweep runs one completion pass.
func (s *CompletionSweeper) Sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	now := s.timeProvider.Now()
	completed, err := s.appointmentRepo.CompletePast(ctx, now)
	if err != nil {
		s.logger.Error("CompletionSweeper: sweep failed: %v", err)
		return
	}
	if completed > 0 {
		s.logger.Info("CompletionSweeper: %d appointments completed", completed)
	}
}
