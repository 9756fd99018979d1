package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/order"
)

// GetLateOrdersQueryHandler retrieves orders out for delivery past their
// deadline. Feeds the late-order watch and the dispatch board's alert strip.
type GetLateOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetLateOrdersQueryHandler creates a handler for late order queries.
// Requires a GORM database connection for query execution.
func NewGetLateOrdersQueryHandler(db *gorm.DB) GetLateOrdersQueryHandler {
	return GetLateOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve late orders, most overdue first.
// Only picked_up orders with a deadline strictly before the query instant
// qualify; an order delivered exactly at its deadline is on time.
func (h GetLateOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetLateOrdersQuery,
) ([]GetLateOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetLateOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			reference,
			driver_id,
			deadline
		FROM orders
		WHERE status = ?
		  AND deadline IS NOT NULL
		  AND deadline < ?
		ORDER BY deadline
	`, order.StatusPickedUp.String(), query.Now()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetLateOrdersQueryResponse
		var id uuid.UUID
		var driverID uuid.NullUUID

		err = rows.Scan(&id, &resp.Reference, &driverID, &resp.Deadline)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromString(id.String())
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		if driverID.Valid {
			parsed, parseErr := kernel.UUIDFromString(driverID.UUID.String())
			if parseErr != nil {
				return nil, parseErr
			}
			resp.DriverID = &parsed
		}

		resp.LateBy = query.Now().Sub(resp.Deadline)
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
