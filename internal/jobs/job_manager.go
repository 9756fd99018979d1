package jobs

import (
	"fmt"
	"log/slog"

	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/tariff"
	"courier/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	geocodeBackfillJob *GeocodeBackfillJob
	lateOrderWatchJob  *LateOrderWatchJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	uowFactory ports.UnitOfWorkFactory,
	geocoder ports.Geocoder,
	table *tariff.Table,
	lateOrdersHandler queries.GetLateOrdersQueryHandler,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		geocodeBackfillJob: NewGeocodeBackfillJob(uowFactory, geocoder, table, logger),
		lateOrderWatchJob:  NewLateOrderWatchJob(lateOrdersHandler, publisher, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.geocodeBackfillJob.Start(); err != nil {
		return fmt.Errorf("failed to start geocode backfill job: %w", err)
	}

	if err := jm.lateOrderWatchJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.geocodeBackfillJob.Stop()
		return fmt.Errorf("failed to start late order watch job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.lateOrderWatchJob.Stop()
	jm.geocodeBackfillJob.Stop()
}
