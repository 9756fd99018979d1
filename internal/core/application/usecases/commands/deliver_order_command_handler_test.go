package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/order"
	"courier/internal/core/ports"
	"courier/internal/pkg/errs"
)

func TestDeliverOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	driverID := newOnlineDriver(t).ID()
	pickedUp := newAssignedOrder(t, driverID)
	require.NoError(t, pickedUp.PickUp(time.Now().UTC()))
	cmd, err := commands.NewDeliverOrderCommand(pickedUp.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", mock.Anything, pickedUp.ID()).Return(pickedUp, nil).Once()
	repo.On("UpdateWithExpectedStatus", mock.Anything, pickedUp, order.StatusPickedUp).
		Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e ports.OrderEvent) bool {
		return e.Type == ports.OrderDeliveredEvent && e.Status == order.StatusDelivered.String()
	})).Return(nil).Once()

	h := commands.NewDeliverOrderCommandHandler(factory, publisher)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, order.StatusDelivered, pickedUp.Status())
	require.NotNil(t, pickedUp.DeliveredAt())
	publisher.AssertExpectations(t)
}

func TestDeliverOrderCommandHandler_Handle_NotPickedUpRejected(t *testing.T) {
	ctx := t.Context()
	assigned := newAssignedOrder(t, newOnlineDriver(t).ID())
	cmd, err := commands.NewDeliverOrderCommand(assigned.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", mock.Anything, assigned.ID()).Return(assigned, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	h := commands.NewDeliverOrderCommandHandler(factory, publisher)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrValueIsInvalid)
	uow.AssertNotCalled(t, "Commit")
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}
