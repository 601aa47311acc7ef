package order_test

import (
	"testing"
	"time"

	"shoplist/internal/core/domain/model/kernel"
	"shoplist/internal/core/domain/model/order"
	"shoplist/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	itemID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	t.Run("creates unpurchased item", func(t *testing.T) {
		item, err := order.NewItem(itemID, orderID, "Bread", 2, "whole grain")

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.True(t, item.ID().IsEqual(itemID))
		assert.True(t, item.OrderID().IsEqual(orderID))
		assert.Equal(t, "Bread", item.Name())
		assert.Equal(t, 2, item.Quantity())
		assert.Equal(t, "whole grain", item.Note())
		assert.False(t, item.IsPurchased())
		assert.Nil(t, item.PurchasedAt())
		assert.Nil(t, item.PurchasedBy())
	})

	t.Run("allows empty note", func(t *testing.T) {
		item, err := order.NewItem(itemID, orderID, "Milk", 1, "")

		require.NoError(t, err)
		assert.Empty(t, item.Note())
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := order.NewItem(itemID, orderID, "", 1, "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("fails with zero quantity", func(t *testing.T) {
		_, err := order.NewItem(itemID, orderID, "Bread", 0, "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("fails with negative quantity", func(t *testing.T) {
		_, err := order.NewItem(itemID, orderID, "Bread", -3, "")
		require.Error(t, err)
	})

	t.Run("fails with invalid ids", func(t *testing.T) {
		var zero kernel.UUID

		_, err := order.NewItem(zero, orderID, "Bread", 1, "")
		require.Error(t, err)

		_, err = order.NewItem(itemID, zero, "Bread", 1, "")
		require.Error(t, err)
	})
}

func TestRestoreItem(t *testing.T) {
	itemID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	executorID := kernel.NewUUID()
	now := time.Now().UTC()

	t.Run("restores purchased item", func(t *testing.T) {
		item, err := order.RestoreItem(itemID, orderID, "Milk", 1, "", true, &now, &executorID)

		require.NoError(t, err)
		assert.True(t, item.IsPurchased())
		require.NotNil(t, item.PurchasedAt())
		assert.Equal(t, now, *item.PurchasedAt())
		require.NotNil(t, item.PurchasedBy())
		assert.True(t, item.PurchasedBy().IsEqual(executorID))
	})

	t.Run("restores unpurchased item", func(t *testing.T) {
		item, err := order.RestoreItem(itemID, orderID, "Milk", 1, "", false, nil, nil)

		require.NoError(t, err)
		assert.False(t, item.IsPurchased())
	})

	t.Run("rejects purchased flag without timestamp", func(t *testing.T) {
		_, err := order.RestoreItem(itemID, orderID, "Milk", 1, "", true, nil, &executorID)

		require.Error(t, err)
		assert.Equal(t, order.ErrItemPurchaseStateCorrupted, err)
	})

	t.Run("rejects purchased flag without purchaser", func(t *testing.T) {
		_, err := order.RestoreItem(itemID, orderID, "Milk", 1, "", true, &now, nil)
		require.Error(t, err)
	})

	t.Run("rejects timestamp on unpurchased item", func(t *testing.T) {
		_, err := order.RestoreItem(itemID, orderID, "Milk", 1, "", false, &now, &executorID)
		require.Error(t, err)
	})
}

func TestItem_Validate(t *testing.T) {
	t.Run("zero value is not constructed", func(t *testing.T) {
		var item order.Item

		err := item.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrItemIsNotConstructed, err)
	})

	t.Run("nil is not constructed", func(t *testing.T) {
		var item *order.Item
		require.Error(t, item.Validate())
	})
}
