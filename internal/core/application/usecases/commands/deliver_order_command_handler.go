package commands

import (
	"context"
	"time"

	"courier/internal/core/ports"
)

// DeliverOrderCommandHandler closes an order that is out for delivery,
// stamping the delivery time. Delivered is terminal.
type DeliverOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewDeliverOrderCommandHandler creates a handler for delivery completion.
func NewDeliverOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the delivery command.
func (h DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) error {
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
	if err = aggregate.Deliver(now); err != nil {
		return err
	}

	if err = orderRepo.UpdateWithExpectedStatus(ctx, aggregate, expected); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.Publish(ctx, ports.NewOrderEvent(
		ports.OrderDeliveredEvent,
		aggregate.ID(),
		aggregate.Reference(),
		aggregate.Status().String(),
		aggregate.Driver(),
		nil,
		now,
	))

	return nil
}
