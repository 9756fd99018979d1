package queries

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrGetOnlineDriversQueryIsNotConstructed = errors.New(
	"GetOnlineDriversQuery must be created via NewGetOnlineDriversQuery constructor",
)

// GetOnlineDriversQuery retrieves every driver currently flagged online.
// The flag is a device-pushed snapshot; the list is advisory for operators
// picking a driver and re-checked by the dispatch command.
type GetOnlineDriversQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOnlineDriversQuery creates a query to retrieve all online drivers.
func NewGetOnlineDriversQuery() GetOnlineDriversQuery {
	return GetOnlineDriversQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOnlineDriversQueryIsNotConstructed if validation fails.
func (q GetOnlineDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetOnlineDriversQueryIsNotConstructed)
}

// GetOnlineDriversQueryResponse represents one online driver in the read model.
type GetOnlineDriversQueryResponse struct {
	ID        kernel.UUID
	FirstName string
	LastName  string
	Phone     string
	Vehicle   string
}
