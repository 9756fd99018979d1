package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"courier/internal/core/domain/model/kernel"
)

// GetOnlineDriversQueryHandler retrieves online drivers from the database.
type GetOnlineDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetOnlineDriversQueryHandler creates a handler for online driver queries.
// Requires a GORM database connection for query execution.
func NewGetOnlineDriversQueryHandler(db *gorm.DB) GetOnlineDriversQueryHandler {
	return GetOnlineDriversQueryHandler{db: db}
}

// Handle executes the query to retrieve all online drivers, sorted by last name.
func (h GetOnlineDriversQueryHandler) Handle(
	ctx context.Context,
	query GetOnlineDriversQuery,
) ([]GetOnlineDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drivers := make([]GetOnlineDriversQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			first_name,
			last_name,
			phone,
			vehicle
		FROM drivers
		WHERE is_online
		ORDER BY last_name, first_name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOnlineDriversQueryResponse
		var id uuid.UUID

		err = rows.Scan(&id, &resp.FirstName, &resp.LastName, &resp.Phone, &resp.Vehicle)
		if err != nil {
			return nil, err
		}

		driverID, idErr := kernel.UUIDFromString(id.String())
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = driverID

		drivers = append(drivers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
