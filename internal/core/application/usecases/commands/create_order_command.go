package commands

import (
	"errors"
	"strings"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/order"
	"courier/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrReferenceIsRequired = errors.New("reference is required")
	ErrPriceIsInvalid      = errors.New("price must be greater than 0")
)

// CreateOrderCommand represents a request to commit a completed order draft.
// The formula and price are frozen at this point: the pricing session has
// already quoted the route and the operator confirmed the result. Addresses
// may still lack coordinates; such orders are flagged for background
// geocoding rather than rejected.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    kernel.NewUUID(), "CMD-0042",
//	    pickup, delivery, pickupContact, deliveryContact,
//	    schedule, order.VehicleMoto, order.FormulaExpress, 4400,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	reference       string
	pickupAddress   order.Address
	deliveryAddress order.Address
	pickupContact   order.Contact
	deliveryContact order.Contact
	schedule        order.Schedule
	vehicle         order.VehicleType
	formula         order.Formula
	priceHTCents    int64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to commit a new dispatch order.
// Validates identifiers, both addresses, the schedule (with its strict commit
// rules) and the frozen formula/price pair. Returns an error if any
// validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	reference string,
	pickupAddress order.Address,
	deliveryAddress order.Address,
	pickupContact order.Contact,
	deliveryContact order.Contact,
	schedule order.Schedule,
	vehicle order.VehicleType,
	formula order.Formula,
	priceHTCents int64,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setReference(reference),
		command.setAddresses(pickupAddress, deliveryAddress),
		command.setSchedule(schedule),
		command.setVehicle(vehicle),
		command.setPrice(formula, priceHTCents),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	command.pickupContact = pickupContact
	command.deliveryContact = deliveryContact

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Reference returns the human-facing order reference.
func (c CreateOrderCommand) Reference() string {
	return c.reference
}

// PickupAddress returns the collection address.
func (c CreateOrderCommand) PickupAddress() order.Address {
	return c.pickupAddress
}

// DeliveryAddress returns the drop-off address.
func (c CreateOrderCommand) DeliveryAddress() order.Address {
	return c.deliveryAddress
}

// PickupContact returns the contact details at the collection point.
func (c CreateOrderCommand) PickupContact() order.Contact {
	return c.pickupContact
}

// DeliveryContact returns the contact details at the drop-off point.
func (c CreateOrderCommand) DeliveryContact() order.Contact {
	return c.deliveryContact
}

// Schedule returns the pickup schedule.
func (c CreateOrderCommand) Schedule() order.Schedule {
	return c.schedule
}

// Vehicle returns the requested vehicle type.
func (c CreateOrderCommand) Vehicle() order.VehicleType {
	return c.vehicle
}

// Formula returns the frozen service formula.
func (c CreateOrderCommand) Formula() order.Formula {
	return c.formula
}

// PriceHTCents returns the frozen price excluding tax, in euro cents.
func (c CreateOrderCommand) PriceHTCents() int64 {
	return c.priceHTCents
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setReference(reference string) error {
	if strings.TrimSpace(reference) == "" {
		return ErrReferenceIsRequired
	}

	c.reference = reference
	return nil
}

func (c *CreateOrderCommand) setAddresses(pickup order.Address, delivery order.Address) error {
	if err := errors.Join(pickup.Validate(), delivery.Validate()); err != nil {
		return err
	}

	c.pickupAddress = pickup
	c.deliveryAddress = delivery
	return nil
}

func (c *CreateOrderCommand) setSchedule(schedule order.Schedule) error {
	if err := schedule.ValidateForCommit(); err != nil {
		return err
	}

	c.schedule = schedule
	return nil
}

func (c *CreateOrderCommand) setVehicle(vehicle order.VehicleType) error {
	if err := vehicle.Validate(); err != nil {
		return err
	}

	c.vehicle = vehicle
	return nil
}

func (c *CreateOrderCommand) setPrice(formula order.Formula, priceHTCents int64) error {
	if err := formula.Validate(); err != nil {
		return err
	}
	if priceHTCents <= 0 {
		return ErrPriceIsInvalid
	}

	c.formula = formula
	c.priceHTCents = priceHTCents
	return nil
}
