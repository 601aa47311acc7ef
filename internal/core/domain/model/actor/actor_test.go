package actor_test

import (
	"testing"

	"shoplist/internal/core/domain/model/actor"
	"shoplist/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActor(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("creates active actor", func(t *testing.T) {
		a, err := actor.NewActor(validID, actor.Executor, true)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.True(t, a.ID().IsEqual(validID))
		assert.Equal(t, actor.Executor, a.Role())
		assert.True(t, a.IsActive())
	})

	t.Run("creates inactive actor", func(t *testing.T) {
		a, err := actor.NewActor(validID, actor.Customer, false)

		require.NoError(t, err)
		assert.False(t, a.IsActive())
	})

	t.Run("fails with invalid id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := actor.NewActor(invalidID, actor.Customer, true)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("fails with invalid role", func(t *testing.T) {
		_, err := actor.NewActor(validID, actor.UnknownRole, true)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "role is invalid")
	})
}

func TestActor_Validate(t *testing.T) {
	t.Run("zero value is not constructed", func(t *testing.T) {
		var a actor.Actor

		err := a.Validate()

		require.Error(t, err)
		assert.Equal(t, actor.ErrActorIsNotConstructed, err)
	})
}
