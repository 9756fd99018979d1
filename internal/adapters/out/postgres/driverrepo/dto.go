// Package driverrepo provides data transfer objects and mapping functions
// for driver persistence.
package driverrepo

import (
	"time"

	"github.com/google/uuid"

	"courier/internal/core/domain/model/driver"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/order"
)

// DriverDTO represents the database structure for persisting driver aggregates.
type DriverDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string
	LastName  string
	Phone     string
	Vehicle   string
	IsOnline  bool `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver domain aggregate to its database representation.
func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:        aggregate.ID().Bytes(),
		FirstName: aggregate.FirstName(),
		LastName:  aggregate.LastName(),
		Phone:     aggregate.Phone(),
		Vehicle:   aggregate.Vehicle().String(),
		IsOnline:  aggregate.IsOnline(),
	}
}

// toDomain converts a database DTO to a driver domain aggregate.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromString(dto.ID.String())
	if err != nil {
		return nil, err
	}

	vehicle, err := order.VehicleTypeFromCode(dto.Vehicle)
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(id, dto.FirstName, dto.LastName, dto.Phone, vehicle, dto.IsOnline)
}
