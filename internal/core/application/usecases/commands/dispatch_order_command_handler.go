package commands

import (
	"context"
	"errors"
	"time"

	"courier/internal/core/domain/model/order"
	"courier/internal/core/ports"
)

// ErrDriverIsOffline signals that the target driver is not online and the
// operator did not override the guard.
var ErrDriverIsOffline = errors.New("driver is offline")

// DispatchOrderCommandHandler hands an order to a driver.
// Guards: the driver must exist, and must be online unless the operator
// overrides. Reassignment to a different driver requires explicit
// confirmation and reports the previous driver exactly once through the
// reassignment warning event.
//
// Example:
//
//	handler := NewDispatchOrderCommandHandler(uowFactory, publisher)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown order or driver
//	case errors.Is(err, ErrDriverIsOffline):
//	    // retry with override after reaching the driver by phone
//	case errors.Is(err, order.ErrReassignmentNeedsConfirmation):
//	    // confirm, retry with confirmReassign
//	case errors.Is(err, errs.ErrVersionIsInvalid):
//	    // another operator moved the order first: re-fetch and re-decide
//	}
type DispatchOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.OrderEventPublisher
}

// NewDispatchOrderCommandHandler creates a handler for dispatch operations.
// Requires a UoWFactory covering both order and driver repositories.
func NewDispatchOrderCommandHandler(
	uowFactory UoWFactory,
	publisher ports.OrderEventPublisher,
) DispatchOrderCommandHandler {
	return DispatchOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the dispatch command.
// The driver-online check runs inside the transaction so the snapshot is as
// fresh as it can be; the status write is conditional on the status the
// order had when read, so two operators racing on the same order produce
// one winner and one errs.ErrVersionIsInvalid.
func (h DispatchOrderCommandHandler) Handle(ctx context.Context, cmd DispatchOrderCommand) error {
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
	driverRepo := uow.DriverRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	assignee, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}
	if !assignee.IsOnline() && !cmd.Override() {
		return ErrDriverIsOffline
	}

	now := time.Now()
	expected := aggregate.Status()

	previousDriver, err := aggregate.Dispatch(cmd.DriverID(), order.DispatchOptions{
		ConfirmReassign: cmd.ConfirmReassign(),
	}, now)
	if err != nil {
		return err
	}

	if err = orderRepo.UpdateWithExpectedStatus(ctx, aggregate, expected); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.Publish(ctx, ports.NewOrderEvent(
		ports.OrderDispatchedEvent,
		aggregate.ID(),
		aggregate.Reference(),
		aggregate.Status().String(),
		aggregate.Driver(),
		nil,
		now,
	))

	if previousDriver != nil {
		_ = h.publisher.Publish(ctx, ports.NewOrderEvent(
			ports.OrderReassignedEvent,
			aggregate.ID(),
			aggregate.Reference(),
			aggregate.Status().String(),
			aggregate.Driver(),
			previousDriver,
			now,
		))
	}

	return nil
}
