package commands_test

import (
	"testing"

	"shoplist/internal/core/application/usecases/commands"
	"shoplist/internal/core/domain/model/actor"
	"shoplist/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStartOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	executor := newTestActor(t, actor.Executor)

	cmd, err := commands.NewStartOrderCommand(id, executor)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, executor, cmd.Actor())
	assert.NoError(t, cmd.Validate())
}

func TestNewStartOrderCommand_InvalidOrderID(t *testing.T) {
	executor := newTestActor(t, actor.Executor)
	_, err := commands.NewStartOrderCommand(kernel.UUID{}, executor)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewStartOrderCommand_UnconstructedActor(t *testing.T) {
	_, err := commands.NewStartOrderCommand(kernel.NewUUID(), actor.Actor{})
	require.Error(t, err)
}

func TestStartOrderCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.StartOrderCommand{}
	assert.ErrorIs(t, cmd.Validate(), commands.ErrStartOrderCommandIsNotConstructed)
}
