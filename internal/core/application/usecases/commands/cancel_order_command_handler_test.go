package commands_test

import (
	"testing"

	"shoplist/internal/core/application/usecases/commands"
	"shoplist/internal/core/domain/model/actor"
	"shoplist/internal/core/domain/model/kernel"
	"shoplist/internal/core/domain/model/order"
	"shoplist/internal/core/domain/services"
	"shoplist/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_OwnerCancels(t *testing.T) {
	ctx := t.Context()
	customer := newTestActor(t, actor.Customer)
	owned := buildPendingOrder(t, customer.ID(), "Bread")
	cmd, err := commands.NewCancelOrderCommand(owned.ID(), customer)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Twice(),
		repo.On("Get", mock.Anything, owned.ID()).Return(owned, nil).Once(),
		repo.On("Update", mock.Anything, owned).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, services.NewAccessGate())
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, updated.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_StrangerForbidden(t *testing.T) {
	ctx := t.Context()
	stranger := newTestActor(t, actor.Customer)
	owned := buildPendingOrder(t, kernel.NewUUID(), "Bread")
	cmd, err := commands.NewCancelOrderCommand(owned.ID(), stranger)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, owned.ID()).Return(owned, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, services.NewAccessGate())
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, order.Pending, owned.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_AdminCancelsAnyOrder(t *testing.T) {
	ctx := t.Context()
	admin := newTestActor(t, actor.Admin)
	owned := buildPendingOrder(t, kernel.NewUUID(), "Bread")
	cmd, err := commands.NewCancelOrderCommand(owned.ID(), admin)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Twice(),
		repo.On("Get", mock.Anything, owned.ID()).Return(owned, nil).Once(),
		repo.On("Update", mock.Anything, owned).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, services.NewAccessGate())
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, updated.Status())
}

func TestCancelOrderCommandHandler_Handle_CompletedOrder(t *testing.T) {
	ctx := t.Context()
	customer := newTestActor(t, actor.Customer)
	executorID := kernel.NewUUID()

	completed := buildPendingOrder(t, customer.ID(), "Bread")
	for _, item := range completed.Items() {
		require.NoError(t, completed.SetItemPurchased(item.ID(), true, executorID))
	}
	require.Equal(t, order.Completed, completed.Status())

	cmd, err := commands.NewCancelOrderCommand(completed.ID(), customer)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, completed.ID()).Return(completed, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, services.NewAccessGate())
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
}
