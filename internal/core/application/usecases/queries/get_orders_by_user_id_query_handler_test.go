package queries_test

import (
	"errors"
	"testing"
	"time"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrdersByUserIDQueryHandler_Handle_PassesReaderOrder(t *testing.T) {
	ctx := t.Context()
	now := time.Now()
	newest := restoredOrder(t, 1, now)
	oldest := restoredOrder(t, 1, now.Add(-time.Hour))
	reader := new(MockOrderReader)
	reader.On("GetAllByUser", ctx, int64(1)).Return([]*order.Order{newest, oldest}, nil).Once()

	result, err := queries.NewGetOrdersByUserIDQueryHandler(reader).
		Handle(ctx, queries.NewGetOrdersByUserIDQuery(1))

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Same(t, newest, result[0])
	assert.Same(t, oldest, result[1])
	reader.AssertExpectations(t)
}

func TestGetOrdersByUserIDQueryHandler_Handle_NoOrders(t *testing.T) {
	ctx := t.Context()
	reader := new(MockOrderReader)
	reader.On("GetAllByUser", ctx, int64(42)).Return(nil, nil).Once()

	result, err := queries.NewGetOrdersByUserIDQueryHandler(reader).
		Handle(ctx, queries.NewGetOrdersByUserIDQuery(42))

	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestGetOrdersByUserIDQueryHandler_Handle_ReaderError(t *testing.T) {
	ctx := t.Context()
	expectedError := errors.New("connection reset")
	reader := new(MockOrderReader)
	reader.On("GetAllByUser", ctx, int64(1)).Return(nil, expectedError).Once()

	result, err := queries.NewGetOrdersByUserIDQueryHandler(reader).
		Handle(ctx, queries.NewGetOrdersByUserIDQuery(1))

	assert.Equal(t, expectedError, err)
	assert.Nil(t, result)
}

func TestGetOrdersByUserIDQueryHandler_Handle_InvalidQuery(t *testing.T) {
	reader := new(MockOrderReader)

	_, err := queries.NewGetOrdersByUserIDQueryHandler(reader).Handle(t.Context(), queries.GetOrdersByUserIDQuery{})

	require.ErrorIs(t, err, queries.ErrGetOrdersByUserIDQueryIsNotConstructed)
}
