package commands

import (
	"context"
	"time"

	"courier/internal/core/ports"
)

// AcceptOrderCommandHandler moves a pending order to assigned status without
// a driver. The transition is persisted with a conditional write keyed on
// the pending status: if another operator moved the order first the write
// reports a stale-write conflict instead of clobbering it.
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the accept command.
// Returns errs.ErrObjectNotFound when the order does not exist and
// errs.ErrVersionIsInvalid when a concurrent transition won the race.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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

	expected := aggregate.Status()
	if err = aggregate.Accept(); err != nil {
		return err
	}

	if err = orderRepo.UpdateWithExpectedStatus(ctx, aggregate, expected); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.Publish(ctx, ports.NewOrderEvent(
		ports.OrderAcceptedEvent,
		aggregate.ID(),
		aggregate.Reference(),
		aggregate.Status().String(),
		aggregate.Driver(),
		nil,
		time.Now(),
	))

	return nil
}
