package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	items := []services.RequestedItem{{FoodID: 1, Quantity: 2}, {FoodID: 2, Quantity: 1}}

	cmd, err := commands.NewCreateOrderCommand(1, items)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, int64(1), cmd.UserID())
	assert.Equal(t, items, cmd.Items())
}

func TestNewCreateOrderCommand_MissingUserID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(0, []services.RequestedItem{{FoodID: 1, Quantity: 1}})

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "userId")
}

func TestNewCreateOrderCommand_EmptyItems(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(1, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "items")
}

func TestNewCreateOrderCommand_QuantityIsNotChecked(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(1, []services.RequestedItem{{FoodID: 1, Quantity: 0}})

	require.NoError(t, err)
	assert.Equal(t, 0, cmd.Items()[0].Quantity)
}

func TestCreateOrderCommand_ItemsReturnsCopy(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(1, []services.RequestedItem{{FoodID: 1, Quantity: 1}})
	require.NoError(t, err)

	items := cmd.Items()
	items[0].FoodID = 42

	assert.Equal(t, int64(1), cmd.Items()[0].FoodID)
}

func TestCreateOrderCommand_ZeroValueIsNotConstructed(t *testing.T) {
	var cmd commands.CreateOrderCommand

	assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
