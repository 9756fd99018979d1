// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper
// indexing for efficient querying by status and geocoding backlog.
type OrderDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Reference string     `gorm:"uniqueIndex"`
	Status    string     `gorm:"index"`
	DriverID  *uuid.UUID `gorm:"type:uuid;index"`

	Pickup   AddressDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	Delivery AddressDTO `gorm:"embedded;embeddedPrefix:delivery_"`

	PickupContact   ContactDTO `gorm:"embedded;embeddedPrefix:pickup_contact_"`
	DeliveryContact ContactDTO `gorm:"embedded;embeddedPrefix:delivery_contact_"`

	ScheduleType string
	PickupAt     *time.Time
	Deadline     *time.Time

	Vehicle      string
	Formula      *string
	PriceHTCents *int64

	CancelReason string

	NeedsGeocoding bool `gorm:"index"`

	CreatedAt    time.Time
	DispatchedAt *time.Time
	PickedUpAt   *time.Time
	DeliveredAt  *time.Time
	CancelledAt  *time.Time
	UpdatedAt    time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents an embedded address within the order table.
// Latitude and longitude are nil while the address awaits geocoding.
type AddressDTO struct {
	Text       string
	City       string
	PostalCode string
	Latitude   *float64
	Longitude  *float64
}

// ContactDTO represents embedded contact details within the order table.
type ContactDTO struct {
	Name         string
	Phone        string
	AccessCode   string
	Instructions string
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	var formula *string
	if f := aggregate.Formula(); f != nil {
		code := f.String()
		formula = &code
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		Reference:       aggregate.Reference(),
		Status:          aggregate.Status().String(),
		DriverID:        driverID,
		Pickup:          addressFromDomain(aggregate.PickupAddress()),
		Delivery:        addressFromDomain(aggregate.DeliveryAddress()),
		PickupContact:   contactFromDomain(aggregate.PickupContact()),
		DeliveryContact: contactFromDomain(aggregate.DeliveryContact()),
		ScheduleType:    aggregate.Schedule().Type().String(),
		PickupAt:        aggregate.Schedule().PickupAt(),
		Deadline:        aggregate.Schedule().Deadline(),
		Vehicle:         aggregate.Vehicle().String(),
		Formula:         formula,
		PriceHTCents:    aggregate.PriceHTCents(),
		CancelReason:    aggregate.CancelReason(),
		NeedsGeocoding:  aggregate.NeedsGeocoding(),
		CreatedAt:       aggregate.CreatedAt(),
		DispatchedAt:    aggregate.DispatchedAt(),
		PickedUpAt:      aggregate.PickedUpAt(),
		DeliveredAt:     aggregate.DeliveredAt(),
		CancelledAt:     aggregate.CancelledAt(),
	}
}

func addressFromDomain(address order.Address) AddressDTO {
	dto := AddressDTO{
		Text:       address.Text(),
		City:       address.City(),
		PostalCode: address.PostalCode(),
	}
	if point := address.Point(); point != nil {
		lat := point.Latitude()
		lng := point.Longitude()
		dto.Latitude = &lat
		dto.Longitude = &lng
	}
	return dto
}

func contactFromDomain(contact order.Contact) ContactDTO {
	return ContactDTO{
		Name:         contact.Name,
		Phone:        contact.Phone,
		AccessCode:   contact.AccessCode,
		Instructions: contact.Instructions,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate through RestoreOrder, which re-checks
// the status/driver consistency rules.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromString(dto.ID.String())
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		parsed, driverErr := kernel.UUIDFromString(dto.DriverID.String())
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &parsed
	}

	status, err := order.StatusFromCode(dto.Status)
	if err != nil {
		return nil, err
	}

	pickup, err := addressToDomain(dto.Pickup)
	if err != nil {
		return nil, err
	}
	delivery, err := addressToDomain(dto.Delivery)
	if err != nil {
		return nil, err
	}

	scheduleType, err := order.ScheduleTypeFromCode(dto.ScheduleType)
	if err != nil {
		return nil, err
	}
	schedule, err := order.NewSchedule(scheduleType, dto.PickupAt, dto.Deadline)
	if err != nil {
		return nil, err
	}

	vehicle, err := order.VehicleTypeFromCode(dto.Vehicle)
	if err != nil {
		return nil, err
	}

	var formula *order.Formula
	if dto.Formula != nil {
		parsed, formulaErr := order.FormulaFromCode(*dto.Formula)
		if formulaErr != nil {
			return nil, formulaErr
		}
		formula = &parsed
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:              id,
		Reference:       dto.Reference,
		Status:          status,
		DriverID:        driverID,
		PickupAddress:   pickup,
		DeliveryAddress: delivery,
		PickupContact:   contactToDomain(dto.PickupContact),
		DeliveryContact: contactToDomain(dto.DeliveryContact),
		Schedule:        schedule,
		Vehicle:         vehicle,
		Formula:         formula,
		PriceHTCents:    dto.PriceHTCents,
		CancelReason:    dto.CancelReason,
		CreatedAt:       dto.CreatedAt,
		DispatchedAt:    dto.DispatchedAt,
		PickedUpAt:      dto.PickedUpAt,
		DeliveredAt:     dto.DeliveredAt,
		CancelledAt:     dto.CancelledAt,
	})
}

func addressToDomain(dto AddressDTO) (order.Address, error) {
	if dto.Latitude == nil || dto.Longitude == nil {
		return order.NewAddress(dto.Text)
	}

	point, err := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
	if err != nil {
		return order.Address{}, err
	}
	return order.NewResolvedAddress(dto.Text, dto.City, dto.PostalCode, point)
}

func contactToDomain(dto ContactDTO) order.Contact {
	return order.Contact{
		Name:         dto.Name,
		Phone:        dto.Phone,
		AccessCode:   dto.AccessCode,
		Instructions: dto.Instructions,
	}
}
