package jobs

import (
	"fmt"
)

// JobManager coordinates all background jobs in the application.
type JobManager struct {
	courierDispatcher    *CourierDispatcher
	courierStatusSyncJob *CourierStatusSyncJob
}

func NewJobManager(dispatcher *CourierDispatcher, syncJob *CourierStatusSyncJob) *JobManager {
	return &JobManager{
		courierDispatcher:    dispatcher,
		courierStatusSyncJob: syncJob,
	}
}

// StartAll starts all background jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	jm.courierDispatcher.Start()

	if err := jm.courierStatusSyncJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.courierDispatcher.Stop()
		return fmt.Errorf("failed to start courier status sync job: %w", err)
	}

	return nil
}

// StopAll stops the sync job first, then drains the dispatch queue.
func (jm *JobManager) StopAll() {
	jm.courierStatusSyncJob.Stop()
	jm.courierDispatcher.Stop()
}
