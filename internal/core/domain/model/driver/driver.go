package driver

import (
	"errors"
	"fmt"
	"strings"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/order"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

// Domain errors for driver operations.
var (
	// ErrLastNameIsRequired is returned when attempting to create a driver
	// without a last name.
	ErrLastNameIsRequired = errs.NewValueIsRequiredError("lastName")
	// ErrDriverIsNotConstructed is returned when using an improperly
	// initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
)

// Driver represents a courier driver available for dispatch.
//
// Online-ness is a snapshot, not a live fact: a driver may go offline between
// the moment a dispatcher reads the roster and the moment the dispatch
// commits. That staleness is accepted and re-validated by the dispatch guard
// rather than prevented with locking.
type Driver struct {
	id        kernel.UUID
	firstName string
	lastName  string
	phone     string
	vehicle   order.VehicleType
	isOnline  bool
	guard     guard.ConstructorGuard
}

// NewDriver creates a Driver. Last name and a valid vehicle type are
// required; first name and phone are optional. New drivers start offline.
func NewDriver(id kernel.UUID, firstName string, lastName string, phone string, vehicle order.VehicleType) (*Driver, error) {
	d := &Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setLastName(lastName),
		d.setVehicle(vehicle),
	); err != nil {
		return nil, err
	}

	d.firstName = firstName
	d.phone = phone
	return d, nil
}

// RestoreDriver reconstructs a Driver from persistent storage, including its
// online flag.
func RestoreDriver(id kernel.UUID, firstName string, lastName string, phone string, vehicle order.VehicleType, isOnline bool) (*Driver, error) {
	d, err := NewDriver(id, firstName, lastName, phone, vehicle)
	if err != nil {
		return nil, err
	}

	d.isOnline = isOnline
	return d, nil
}

// Validate ensures the Driver was created through a constructor.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	if err := d.guard.Validate(ErrDriverIsNotConstructed); err != nil {
		return ErrDriverIsNotConstructed
	}
	return nil
}

// IsEqual compares two drivers by identifier.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// FirstName returns the driver's first name, possibly empty.
func (d *Driver) FirstName() string {
	return d.firstName
}

// LastName returns the driver's last name.
func (d *Driver) LastName() string {
	return d.lastName
}

// FullName returns "First Last", or just the last name when no first name is
// recorded.
func (d *Driver) FullName() string {
	if d.firstName == "" {
		return d.lastName
	}
	return fmt.Sprintf("%s %s", d.firstName, d.lastName)
}

// Phone returns the driver's phone number, possibly empty.
func (d *Driver) Phone() string {
	return d.phone
}

// Vehicle returns the driver's vehicle type.
func (d *Driver) Vehicle() order.VehicleType {
	return d.vehicle
}

// IsOnline reports the driver's availability snapshot.
func (d *Driver) IsOnline() bool {
	return d.isOnline
}

// GoOnline marks the driver as available for dispatch.
func (d *Driver) GoOnline() {
	d.isOnline = true
}

// GoOffline marks the driver as unavailable. Orders already assigned to the
// driver remain valid until explicitly reassigned.
func (d *Driver) GoOffline() {
	d.isOnline = false
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setLastName(lastName string) error {
	if strings.TrimSpace(lastName) == "" {
		return ErrLastNameIsRequired
	}
	d.lastName = lastName
	return nil
}

func (d *Driver) setVehicle(vehicle order.VehicleType) error {
	if err := vehicle.Validate(); err != nil {
		return err
	}
	d.vehicle = vehicle
	return nil
}
