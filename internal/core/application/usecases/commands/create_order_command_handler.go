package commands

import (
	"context"
	"errors"
	"slices"
	"time"

	"courier/internal/core/domain/model/order"
	"courier/internal/core/domain/services"
	"courier/internal/core/ports"
)

// ErrFormulaIsNotEligible signals that the frozen formula is no longer
// allowed for the order's schedule at commit time. The draft sat open long
// enough for the lead-time window to close; the operator must re-quote.
var ErrFormulaIsNotEligible = errors.New("formula is not eligible for the schedule")

// CreateOrderCommandHandler handles the business logic for order creation.
// Re-checks formula eligibility at commit time, persists the order in
// pending status with its frozen price, and emits the order-created event.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now pending and visible on the dispatch board.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence and a publisher
// for change notifications.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order creation command.
// The frozen formula must still be eligible for the schedule: a stale draft
// whose lead-time window closed is rejected with ErrFormulaIsNotEligible.
// Uses a transaction to ensure the order is properly persisted or rolled
// back on error; the creation event is published only after commit.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now()

	eligible := services.EligibleFormulas(cmd.Schedule(), now)
	if !slices.Contains(eligible, cmd.Formula()) {
		return ErrFormulaIsNotEligible
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.Reference(),
		cmd.PickupAddress(),
		cmd.DeliveryAddress(),
		cmd.PickupContact(),
		cmd.DeliveryContact(),
		cmd.Schedule(),
		cmd.Vehicle(),
		now,
	)
	if err != nil {
		return err
	}

	if err = newOrder.FreezePrice(cmd.Formula(), cmd.PriceHTCents()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Publish failures are logged by the adapter, never rolled back.
	_ = h.publisher.Publish(ctx, ports.NewOrderEvent(
		ports.OrderCreatedEvent,
		newOrder.ID(),
		newOrder.Reference(),
		newOrder.Status().String(),
		nil,
		nil,
		now,
	))

	return nil
}
