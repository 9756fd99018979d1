package queries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/order"
	"courier/internal/core/domain/services"
)

// GetActiveOrdersQueryHandler retrieves in-flight orders from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetActiveOrdersQueryHandler struct {
	db     *gorm.DB
	payout services.PayoutPolicy
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
// Requires a GORM database connection for query execution. A nil payout
// policy falls back to services.DefaultPayoutPolicy.
func NewGetActiveOrdersQueryHandler(db *gorm.DB, payout services.PayoutPolicy) GetActiveOrdersQueryHandler {
	if payout == nil {
		payout = services.DefaultPayoutPolicy
	}
	return GetActiveOrdersQueryHandler{db: db, payout: payout}
}

// Handle executes the query to retrieve all active orders.
// Returns orders in pending, assigned, or picked_up status, oldest first.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			reference,
			status,
			driver_id,
			pickup_text,
			delivery_text,
			vehicle,
			formula,
			price_ht_cents,
			deadline,
			created_at
		FROM orders
		WHERE status IN (?, ?, ?)
		ORDER BY created_at
	`, order.StatusPending.String(), order.StatusAssigned.String(), order.StatusPickedUp.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetActiveOrdersQueryResponse
		var id uuid.UUID
		var driverID uuid.NullUUID
		var formula sql.NullString
		var priceHTCents sql.NullInt64
		var deadline sql.NullTime

		err = rows.Scan(
			&id,
			&resp.Reference,
			&resp.Status,
			&driverID,
			&resp.PickupText,
			&resp.DeliveryText,
			&resp.Vehicle,
			&formula,
			&priceHTCents,
			&deadline,
			&resp.CreatedAt,
		)
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
		if formula.Valid {
			resp.Formula = &formula.String
		}
		if priceHTCents.Valid {
			resp.PriceHTCents = &priceHTCents.Int64
		}
		// The driver share only makes sense once a mission is priced and held.
		if priceHTCents.Valid && driverID.Valid {
			share := h.payout(priceHTCents.Int64)
			resp.DriverPayoutCents = &share
		}
		if deadline.Valid {
			resp.Deadline = &deadline.Time
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
