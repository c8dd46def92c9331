package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/jobs"
	"ordering/internal/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const yearly = "0 0 0 1 1 *"

type MockOrderStatusCountsHandler struct {
	mock.Mock
}

func (m *MockOrderStatusCountsHandler) Handle(
	ctx context.Context,
	query queries.GetOrderStatusCountsQuery,
) ([]queries.GetOrderStatusCountsQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.GetOrderStatusCountsQueryResponse), args.Error(1)
}

type MockOrdersByStatusRecorder struct {
	mock.Mock
}

func (m *MockOrdersByStatusRecorder) SetOrdersByStatus(counts map[string]int64) {
	m.Called(counts)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestOrderStatsJob_Run_SetsGauge(t *testing.T) {
	handler := &MockOrderStatusCountsHandler{}
	handler.On("Handle", mock.Anything, mock.Anything).Return([]queries.GetOrderStatusCountsQueryResponse{
		{Status: order.Pending, Count: 3},
		{Status: order.Cancelled, Count: 1},
		{Status: "SHIPPED", Count: 2},
	}, nil).Once()

	m := metrics.New("orders")
	job := jobs.NewOrderStatsJob(handler, m, yearly, discardLogger())

	job.Run()

	handler.AssertExpectations(t)
	assert.Equal(t, 3, testutil.CollectAndCount(m.OrdersByStatus))
	assert.InDelta(t, 3, testutil.ToFloat64(m.OrdersByStatus.WithLabelValues("PENDING")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.OrdersByStatus.WithLabelValues("SHIPPED")), 0)
}

func TestOrderStatsJob_Run_FailureKeepsPreviousValues(t *testing.T) {
	handler := &MockOrderStatusCountsHandler{}
	handler.On("Handle", mock.Anything, mock.Anything).Return(nil, errors.New("database is down")).Once()

	recorder := &MockOrdersByStatusRecorder{}
	job := jobs.NewOrderStatsJob(handler, recorder, yearly, discardLogger())

	job.Run()

	handler.AssertExpectations(t)
	recorder.AssertNotCalled(t, "SetOrdersByStatus", mock.Anything)
}

func TestOrderStatsJob_Start_RefreshesImmediately(t *testing.T) {
	handler := &MockOrderStatusCountsHandler{}
	recorder := &MockOrdersByStatusRecorder{}

	mock.InOrder(
		handler.On("Handle", mock.Anything, mock.Anything).
			Return([]queries.GetOrderStatusCountsQueryResponse{{Status: order.Pending, Count: 1}}, nil).Once(),
		recorder.On("SetOrdersByStatus", map[string]int64{"PENDING": 1}).Once(),
	)

	job := jobs.NewOrderStatsJob(handler, recorder, yearly, discardLogger())

	require.NoError(t, job.Start())
	job.Stop()

	handler.AssertExpectations(t)
	recorder.AssertExpectations(t)
}

func TestOrderStatsJob_Start_InvalidSchedule(t *testing.T) {
	handler := &MockOrderStatusCountsHandler{}
	job := jobs.NewOrderStatsJob(handler, &MockOrdersByStatusRecorder{}, "every minute", discardLogger())

	require.Error(t, job.Start())
	handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestJobManager_StartAllStopAll(t *testing.T) {
	handler := &MockOrderStatusCountsHandler{}
	handler.On("Handle", mock.Anything, mock.Anything).Return([]queries.GetOrderStatusCountsQueryResponse{}, nil).Once()

	recorder := &MockOrdersByStatusRecorder{}
	recorder.On("SetOrdersByStatus", map[string]int64{}).Once()

	manager := jobs.NewJobManager(handler, recorder, yearly, discardLogger())

	require.NoError(t, manager.StartAll())
	manager.StopAll()

	handler.AssertExpectations(t)
	recorder.AssertExpectations(t)
}

func TestJobManager_StartAll_InvalidSchedule(t *testing.T) {
	manager := jobs.NewJobManager(&MockOrderStatusCountsHandler{}, &MockOrdersByStatusRecorder{}, "", discardLogger())

	err := manager.StartAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start order stats job")
}
