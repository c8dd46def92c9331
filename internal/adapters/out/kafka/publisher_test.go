package kafka_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	orderkafka "ordering/internal/adapters/out/kafka"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMessageWriter struct {
	mock.Mock
}

func (m *MockMessageWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *MockMessageWriter) Close() error {
	args := m.Called()
	return args.Error(0)
}

func sampleOrder(t *testing.T) *order.Order {
	t.Helper()

	orderID := kernel.NewUUID()
	first, err := order.RestoreItem(kernel.NewUUID(), orderID, 1, 2, kernel.MustMoney("10.99"))
	require.NoError(t, err)
	second, err := order.RestoreItem(kernel.NewUUID(), orderID, 2, 1, kernel.MustMoney("8.99"))
	require.NoError(t, err)

	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	o, err := order.RestoreOrder(orderID, 7, order.Processing, kernel.MustMoney("30.97"),
		[]order.Item{first, second}, createdAt, createdAt.Add(time.Minute))
	require.NoError(t, err)
	return o
}

func TestNewWriter(t *testing.T) {
	writer, err := orderkafka.NewWriter(" kafka-1:9092, ,kafka-2:9092", "order.changed")

	require.NoError(t, err)
	assert.Equal(t, "order.changed", writer.Topic)
	assert.Contains(t, writer.Addr.String(), "kafka-1:9092")
	assert.Contains(t, writer.Addr.String(), "kafka-2:9092")
	assert.IsType(t, &kafka.Hash{}, writer.Balancer)
	assert.Equal(t, 10*time.Millisecond, writer.BatchTimeout)
}

func TestNewWriter_Validation(t *testing.T) {
	_, err := orderkafka.NewWriter(" , ", "order.changed")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = orderkafka.NewWriter("kafka:9092", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewOrderChangedPublisher_NilWriter(t *testing.T) {
	publisher, err := orderkafka.NewOrderChangedPublisher(nil)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Nil(t, publisher)
}

func TestOrderChangedPublisher_PublishOrderChanged(t *testing.T) {
	ctx := context.Background()
	o := sampleOrder(t)

	writer := &MockMessageWriter{}
	var written []kafka.Message
	writer.On("WriteMessages", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			written = args.Get(1).([]kafka.Message)
		}).
		Return(nil).Once()

	publisher, err := orderkafka.NewOrderChangedPublisher(writer)
	require.NoError(t, err)

	require.NoError(t, publisher.PublishOrderChanged(ctx, o))

	writer.AssertExpectations(t)
	require.Len(t, written, 1)
	assert.Equal(t, o.ID().String(), string(written[0].Key))
	assert.False(t, written[0].Time.IsZero())

	var event orderkafka.OrderChangedEvent
	require.NoError(t, json.Unmarshal(written[0].Value, &event))
	assert.Equal(t, o.ID().String(), event.OrderID)
	assert.Equal(t, int64(7), event.UserID)
	assert.Equal(t, "PROCESSING", event.Status)
	assert.Equal(t, "30.97", event.Total)
	assert.Equal(t, []orderkafka.OrderChangedEventItem{
		{FoodID: 1, Quantity: 2, Price: "10.99"},
		{FoodID: 2, Quantity: 1, Price: "8.99"},
	}, event.Items)
	assert.True(t, o.CreatedAt().Equal(event.CreatedAt))
	assert.True(t, written[0].Time.Equal(event.OccurredAt))
}

func TestOrderChangedPublisher_WriteError(t *testing.T) {
	ctx := context.Background()
	writeErr := errors.New("broker unavailable")

	writer := &MockMessageWriter{}
	writer.On("WriteMessages", ctx, mock.Anything).Return(writeErr).Once()

	publisher, err := orderkafka.NewOrderChangedPublisher(writer)
	require.NoError(t, err)

	err = publisher.PublishOrderChanged(ctx, sampleOrder(t))

	require.ErrorIs(t, err, writeErr)
	writer.AssertExpectations(t)
}

func TestOrderChangedPublisher_RejectsUnconstructedOrder(t *testing.T) {
	writer := &MockMessageWriter{}

	publisher, err := orderkafka.NewOrderChangedPublisher(writer)
	require.NoError(t, err)

	err = publisher.PublishOrderChanged(context.Background(), &order.Order{})

	require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	writer.AssertNotCalled(t, "WriteMessages", mock.Anything, mock.Anything)
}

func TestOrderChangedPublisher_Close(t *testing.T) {
	writer := &MockMessageWriter{}
	writer.On("Close").Return(nil).Once()

	publisher, err := orderkafka.NewOrderChangedPublisher(writer)
	require.NoError(t, err)

	require.NoError(t, publisher.Close())
	writer.AssertExpectations(t)
}

func TestNoopPublisher(t *testing.T) {
	assert.NoError(t, orderkafka.NoopPublisher{}.PublishOrderChanged(context.Background(), sampleOrder(t)))
}
