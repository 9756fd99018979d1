package commands

import (
	"context"
	"time"

	"courier/internal/core/ports"
)

// PickUpOrderCommandHandler records the parcel collection on an assigned
// order. The order must have a driver; the conditional status write protects
// against a concurrent cancellation.
type PickUpOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewPickUpOrderCommandHandler creates a handler for pickup operations.
func NewPickUpOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) PickUpOrderCommandHandler {
	return PickUpOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the pickup command.
func (h PickUpOrderCommandHandler) Handle(ctx context.Context, cmd PickUpOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	now := time.Now()
	expected := aggregate.Status()
	if err = aggregate.PickUp(now); err != nil {
		return err
	}

	if err = orderRepo.UpdateWithExpectedStatus(ctx, aggregate, expected); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.Publish(ctx, ports.NewOrderEvent(
		ports.OrderPickedUpEvent,
		aggregate.ID(),
		aggregate.Reference(),
		aggregate.Status().String(),
		aggregate.Driver(),
		nil,
		now,
	))

	return nil
}
