package queries

import (
	"errors"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrGetLateOrdersQueryIsNotConstructed = errors.New(
	"GetLateOrdersQuery must be created via NewGetLateOrdersQuery constructor",
)

// GetLateOrdersQuery retrieves orders whose parcel is out for delivery past
// its deadline. Lateness is purely derived: nothing in the write model is
// mutated when an order becomes late.
type GetLateOrdersQuery struct {
	now time.Time

	guard guard.ConstructorGuard
}

// NewGetLateOrdersQuery creates a query evaluating lateness at the given instant.
func NewGetLateOrdersQuery(now time.Time) GetLateOrdersQuery {
	return GetLateOrdersQuery{now: now, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetLateOrdersQueryIsNotConstructed if validation fails.
func (q GetLateOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetLateOrdersQueryIsNotConstructed)
}

// Now returns the instant lateness is evaluated at.
func (q GetLateOrdersQuery) Now() time.Time {
	return q.now
}

// GetLateOrdersQueryResponse represents one late order in the read model.
type GetLateOrdersQueryResponse struct {
	ID        kernel.UUID
	Reference string
	DriverID  *kernel.UUID
	Deadline  time.Time
	LateBy    time.Duration
}
