package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/order"
	"courier/internal/core/ports"
	"courier/internal/pkg/errs"
)

func dispatchFixtures(t *testing.T) (*MockOrderRepository, *MockDriverRepository, *MockUoW, *MockUoWFactory) {
	t.Helper()
	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	return orderRepo, driverRepo, uow, factory
}

func TestDispatchOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	pending := newPendingOrder(t)
	assignee := newOnlineDriver(t)
	cmd, err := commands.NewDispatchOrderCommand(pending.ID(), assignee.ID(), false, false)
	require.NoError(t, err)

	orderRepo, driverRepo, uow, factory := dispatchFixtures(t)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("DriverRepository").Return(driverRepo).Once()
	orderRepo.On("Get", mock.Anything, pending.ID()).Return(pending, nil).Once()
	driverRepo.On("Get", mock.Anything, assignee.ID()).Return(assignee, nil).Once()
	orderRepo.On("UpdateWithExpectedStatus", mock.Anything, pending, order.StatusPending).
		Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e ports.OrderEvent) bool {
		return e.Type == ports.OrderDispatchedEvent
	})).Return(nil).Once()

	h := commands.NewDispatchOrderCommandHandler(factory, publisher)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, order.StatusAssigned, pending.Status())
	require.NotNil(t, pending.Driver())
	require.True(t, pending.Driver().IsEqual(assignee.ID()))
	orderRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestDispatchOrderCommandHandler_Handle_DriverOffline(t *testing.T) {
	ctx := t.Context()
	pending := newPendingOrder(t)
	assignee := newOfflineDriver(t)
	cmd, err := commands.NewDispatchOrderCommand(pending.ID(), assignee.ID(), false, false)
	require.NoError(t, err)

	orderRepo, driverRepo, uow, factory := dispatchFixtures(t)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("DriverRepository").Return(driverRepo).Once()
	orderRepo.On("Get", mock.Anything, pending.ID()).Return(pending, nil).Once()
	driverRepo.On("Get", mock.Anything, assignee.ID()).Return(assignee, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	publisher := new(MockEventPublisher)

	h := commands.NewDispatchOrderCommandHandler(factory, publisher)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrDriverIsOffline)
	require.Equal(t, order.StatusPending, pending.Status())
	publisher.AssertNotCalled(t, "Publish")
}

func TestDispatchOrderCommandHandler_Handle_OfflineWithOverride(t *testing.T) {
	ctx := t.Context()
	pending := newPendingOrder(t)
	assignee := newOfflineDriver(t)
	cmd, err := commands.NewDispatchOrderCommand(pending.ID(), assignee.ID(), true, false)
	require.NoError(t, err)

	orderRepo, driverRepo, uow, factory := dispatchFixtures(t)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("DriverRepository").Return(driverRepo).Once()
	orderRepo.On("Get", mock.Anything, pending.ID()).Return(pending, nil).Once()
	driverRepo.On("Get", mock.Anything, assignee.ID()).Return(assignee, nil).Once()
	orderRepo.On("UpdateWithExpectedStatus", mock.Anything, pending, order.StatusPending).
		Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()

	h := commands.NewDispatchOrderCommandHandler(factory, publisher)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, order.StatusAssigned, pending.Status())
}

func TestDispatchOrderCommandHandler_Handle_ReassignmentNeedsConfirmation(t *testing.T) {
	ctx := t.Context()
	previous := newOnlineDriver(t)
	assigned := newAssignedOrder(t, previous.ID())
	assignee := newOnlineDriver(t)
	cmd, err := commands.NewDispatchOrderCommand(assigned.ID(), assignee.ID(), false, false)
	require.NoError(t, err)

	orderRepo, driverRepo, uow, factory := dispatchFixtures(t)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("DriverRepository").Return(driverRepo).Once()
	orderRepo.On("Get", mock.Anything, assigned.ID()).Return(assigned, nil).Once()
	driverRepo.On("Get", mock.Anything, assignee.ID()).Return(assignee, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	publisher := new(MockEventPublisher)

	h := commands.NewDispatchOrderCommandHandler(factory, publisher)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrReassignmentNeedsConfirmation)

	var reassign *order.ReassignmentError
	require.ErrorAs(t, err, &reassign)
	require.True(t, reassign.PreviousDriverID.IsEqual(previous.ID()))

	// Nothing was mutated or published.
	require.True(t, assigned.Driver().IsEqual(previous.ID()))
	publisher.AssertNotCalled(t, "Publish")
}

func TestDispatchOrderCommandHandler_Handle_ConfirmedReassignmentWarnsOnce(t *testing.T) {
	ctx := t.Context()
	previous := newOnlineDriver(t)
	assigned := newAssignedOrder(t, previous.ID())
	assignee := newOnlineDriver(t)
	cmd, err := commands.NewDispatchOrderCommand(assigned.ID(), assignee.ID(), false, true)
	require.NoError(t, err)

	orderRepo, driverRepo, uow, factory := dispatchFixtures(t)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("DriverRepository").Return(driverRepo).Once()
	orderRepo.On("Get", mock.Anything, assigned.ID()).Return(assigned, nil).Once()
	driverRepo.On("Get", mock.Anything, assignee.ID()).Return(assignee, nil).Once()
	orderRepo.On("UpdateWithExpectedStatus", mock.Anything, assigned, order.StatusAssigned).
		Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e ports.OrderEvent) bool {
		return e.Type == ports.OrderDispatchedEvent
	})).Return(nil).Once()
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e ports.OrderEvent) bool {
		return e.Type == ports.OrderReassignedEvent &&
			e.PreviousDriverID != nil && *e.PreviousDriverID == previous.ID().String()
	})).Return(nil).Once()

	h := commands.NewDispatchOrderCommandHandler(factory, publisher)
	require.NoError(t, h.Handle(ctx, cmd))
	require.True(t, assigned.Driver().IsEqual(assignee.ID()))
	publisher.AssertExpectations(t)
	publisher.AssertNumberOfCalls(t, "Publish", 2)
}

func TestDispatchOrderCommandHandler_Handle_StaleWrite(t *testing.T) {
	ctx := t.Context()
	pending := newPendingOrder(t)
	assignee := newOnlineDriver(t)
	cmd, err := commands.NewDispatchOrderCommand(pending.ID(), assignee.ID(), false, false)
	require.NoError(t, err)

	orderRepo, driverRepo, uow, factory := dispatchFixtures(t)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("DriverRepository").Return(driverRepo).Once()
	orderRepo.On("Get", mock.Anything, pending.ID()).Return(pending, nil).Once()
	driverRepo.On("Get", mock.Anything, assignee.ID()).Return(assignee, nil).Once()
	orderRepo.On("UpdateWithExpectedStatus", mock.Anything, pending, order.StatusPending).
		Return(errs.NewVersionIsInvalidError("status")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	publisher := new(MockEventPublisher)

	h := commands.NewDispatchOrderCommandHandler(factory, publisher)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	publisher.AssertNotCalled(t, "Publish")
	uow.AssertNotCalled(t, "Commit")
}

func TestDispatchOrderCommandHandler_Handle_UnknownDriver(t *testing.T) {
	ctx := t.Context()
	pending := newPendingOrder(t)
	assignee := newOnlineDriver(t)
	cmd, err := commands.NewDispatchOrderCommand(pending.ID(), assignee.ID(), false, false)
	require.NoError(t, err)

	orderRepo, driverRepo, uow, factory := dispatchFixtures(t)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("DriverRepository").Return(driverRepo).Once()
	orderRepo.On("Get", mock.Anything, pending.ID()).Return(pending, nil).Once()
	driverRepo.On("Get", mock.Anything, assignee.ID()).
		Return(nil, errs.NewObjectNotFoundError("driver", assignee.ID())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewDispatchOrderCommandHandler(factory, new(MockEventPublisher))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestDispatchOrderCommand_ZeroValue(t *testing.T) {
	var cmd commands.DispatchOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrDispatchOrderCommandIsNotConstructed)

	h := commands.NewDispatchOrderCommandHandler(new(MockUoWFactory), new(MockEventPublisher))
	require.Error(t, h.Handle(t.Context(), cmd))
}
