package ports

import (
	"context"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and assignment state.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateWithExpectedStatus persists changes to an existing order only if
	// its stored status still equals expected. The write is a single
	// conditional UPDATE: when another operator moved the order first, zero
	// rows match and the call returns errs.NewVersionIsInvalidError so the
	// caller can re-fetch and re-decide instead of silently clobbering the
	// concurrent transition.
	UpdateWithExpectedStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its current status and assignment.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllActive retrieves all orders in a non-terminal status
	// (pending, assigned, picked_up), oldest first.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// GetAllInPickedUpStatus retrieves all orders currently out for delivery.
	// Used by the late-order watch to evaluate deadlines.
	GetAllInPickedUpStatus(ctx context.Context) ([]*order.Order, error)

	// GetAllNeedingGeocoding retrieves active orders with at least one address
	// missing coordinates. Used by the geocode backfill job.
	GetAllNeedingGeocoding(ctx context.Context) ([]*order.Order, error)
}
