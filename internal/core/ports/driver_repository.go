// Package ports defines repository and gateway interfaces for the dispatch domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"courier/internal/core/domain/model/driver"
	"courier/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver aggregate to storage.
	// The driver must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver aggregate.
	// The driver must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetAllOnline retrieves every driver currently flagged online.
	// Online-ness is a snapshot pushed from driver devices: a driver returned
	// here may have gone offline since the last heartbeat. Dispatch re-checks
	// the flag inside its own transaction, so staleness here is tolerated.
	GetAllOnline(ctx context.Context) ([]*driver.Driver, error)
}
