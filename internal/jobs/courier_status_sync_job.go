package jobs

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

const DefaultCourierSyncSchedule = "@every 1m"

type courierSyncHandler interface {
	Handle(ctx context.Context, cmd commands.SyncCourierStatusesCommand) error
}

// CourierStatusSyncJob periodically mirrors courier statuses onto orders.
// A run that is still going when the next one is due makes that one skip.
type CourierStatusSyncJob struct {
	handler  courierSyncHandler
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewCourierStatusSyncJob creates the job. An empty schedule means
// DefaultCourierSyncSchedule; each run is bounded by timeout.
func NewCourierStatusSyncJob(
	handler courierSyncHandler,
	schedule string,
	timeout time.Duration,
	logger *slog.Logger,
) *CourierStatusSyncJob {
	if schedule == "" {
		schedule = DefaultCourierSyncSchedule
	}
	if timeout <= 0 {
		timeout = time.Minute
	}

	return &CourierStatusSyncJob{
		handler:  handler,
		schedule: schedule,
		timeout:  timeout,
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "courier_status_sync_job"),
	}
}

// Start registers the job on its schedule and starts the scheduler.
func (j *CourierStatusSyncJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Courier status sync job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running sync to finish.
func (j *CourierStatusSyncJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Courier status sync job stopped")
}

func (j *CourierStatusSyncJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	if err := j.handler.Handle(ctx, commands.NewSyncCourierStatusesCommand()); err != nil {
		j.logger.ErrorContext(ctx, "Courier status sync failed", "error", err)
	}
}
