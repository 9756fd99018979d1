package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/order"
	"courier/internal/core/ports"
)

func TestNewCancelOrderCommand_RequiresReason(t *testing.T) {
	_, err := commands.NewCancelOrderCommand(newPendingOrder(t).ID(), "  ")
	require.ErrorIs(t, err, commands.ErrCancelReasonIsRequired)
}

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	assigned := newAssignedOrder(t, newOnlineDriver(t).ID())
	cmd, err := commands.NewCancelOrderCommand(assigned.ID(), "client no-show")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", mock.Anything, assigned.ID()).Return(assigned, nil).Once()
	repo.On("UpdateWithExpectedStatus", mock.Anything, assigned, order.StatusAssigned).
		Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e ports.OrderEvent) bool {
		return e.Type == ports.OrderCancelledEvent
	})).Return(nil).Once()

	h := commands.NewCancelOrderCommandHandler(factory, publisher)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, order.StatusCancelled, assigned.Status())
	require.Nil(t, assigned.Driver())
	require.Equal(t, "client no-show", assigned.CancelReason())
}

func TestCancelOrderCommandHandler_Handle_AfterPickupRejected(t *testing.T) {
	ctx := t.Context()
	collected := newAssignedOrder(t, newOnlineDriver(t).ID())
	require.NoError(t, collected.PickUp(time.Now()))

	cmd, err := commands.NewCancelOrderCommand(collected.ID(), "changed mind")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", mock.Anything, collected.ID()).Return(collected, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, new(MockEventPublisher))
	require.Error(t, h.Handle(ctx, cmd))
	require.Equal(t, order.StatusPickedUp, collected.Status())
	uow.AssertNotCalled(t, "Commit")
}
