package commands

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrDispatchOrderCommandIsNotConstructed = errors.New(
	"DispatchOrderCommand must be created via NewDispatchOrderCommand constructor",
)

// DispatchOrderCommand represents a request to hand an order to a specific
// driver. Override skips the driver-online guard (the operator reached the
// driver by phone); ConfirmReassign acknowledges taking the order away from
// a previously assigned driver.
//
// Example:
//
//	cmd, err := NewDispatchOrderCommand(orderID, driverID, false, false)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
//	var reassign *order.ReassignmentError
//	if errors.As(err, &reassign) {
//	    // surface a confirm dialog, then retry with confirmReassign=true
//	}
type DispatchOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	driverID        kernel.UUID
	override        bool
	confirmReassign bool

	guard guard.ConstructorGuard
}

// NewDispatchOrderCommand creates a command to dispatch an order to a driver.
// Validates both identifiers. Returns an error if any validation fails.
func NewDispatchOrderCommand(
	orderID kernel.UUID,
	driverID kernel.UUID,
	override bool,
	confirmReassign bool,
) (DispatchOrderCommand, error) {
	command := DispatchOrderCommand{
		override:        override,
		confirmReassign: confirmReassign,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setDriverID(driverID),
	); err != nil {
		return DispatchOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDispatchOrderCommandIsNotConstructed if validation fails.
func (c DispatchOrderCommand) Validate() error {
	return c.guard.Validate(ErrDispatchOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to dispatch.
func (c DispatchOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the identifier of the receiving driver.
func (c DispatchOrderCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Override reports whether the driver-online guard is skipped.
func (c DispatchOrderCommand) Override() bool {
	return c.override
}

// ConfirmReassign reports whether taking the order from a previously
// assigned driver has been acknowledged.
func (c DispatchOrderCommand) ConfirmReassign() bool {
	return c.confirmReassign
}

func (c *DispatchOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *DispatchOrderCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
