package commands

import (
	"context"
	"time"

	"courier/internal/core/ports"
)

// CancelOrderCommandHandler abandons a pending or assigned order.
// Cancelling releases any assigned driver; cancelled is terminal.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the cancel command.
// An order whose parcel is already collected cannot be cancelled; the
// aggregate rejects the transition.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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
	if err = aggregate.Cancel(cmd.Reason(), now); err != nil {
		return err
	}

	if err = orderRepo.UpdateWithExpectedStatus(ctx, aggregate, expected); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.Publish(ctx, ports.NewOrderEvent(
		ports.OrderCancelledEvent,
		aggregate.ID(),
		aggregate.Reference(),
		aggregate.Status().String(),
		nil,
		nil,
		now,
	))

	return nil
}
