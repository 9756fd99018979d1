// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves every order still in flight: pending,
// assigned, or out for delivery. This is the dispatch board's main feed.
//
// Example:
//
//	query := NewGetActiveOrdersQuery()
//	handler := NewGetActiveOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve active orders: %w", err)
//	}
//	for _, o := range orders {
//	    fmt.Printf("%s [%s] %s -> %s\n", o.Reference, o.Status, o.PickupText, o.DeliveryText)
//	}
type GetActiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query to retrieve all in-flight orders.
func NewGetActiveOrdersQuery() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveOrdersQueryIsNotConstructed if validation fails.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// GetActiveOrdersQueryResponse represents one in-flight order in the read model.
// Optional fields are nil when the order has not reached that stage yet.
type GetActiveOrdersQueryResponse struct {
	ID           kernel.UUID
	Reference    string
	Status       string
	DriverID     *kernel.UUID
	PickupText   string
	DeliveryText string
	Vehicle      string
	Formula      *string
	PriceHTCents *int64

	// DriverPayoutCents is the assigned driver's share of the price,
	// set only when the order is both priced and held by a driver.
	DriverPayoutCents *int64

	Deadline  *time.Time
	CreatedAt time.Time
}
