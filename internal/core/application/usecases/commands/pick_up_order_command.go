package commands

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrPickUpOrderCommandIsNotConstructed = errors.New(
	"PickUpOrderCommand must be created via NewPickUpOrderCommand constructor",
)

// PickUpOrderCommand marks an assigned order's parcel as collected by its driver.
type PickUpOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPickUpOrderCommand creates a command to record a parcel collection.
func NewPickUpOrderCommand(orderID kernel.UUID) (PickUpOrderCommand, error) {
	command := PickUpOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return PickUpOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPickUpOrderCommandIsNotConstructed if validation fails.
func (c PickUpOrderCommand) Validate() error {
	return c.guard.Validate(ErrPickUpOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the collected order.
func (c PickUpOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *PickUpOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
