package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	orderhttp "ordering/internal/adapters/in/http"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/food"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockGetFoodByIDHandler struct {
	mock.Mock
}

func (m *MockGetFoodByIDHandler) Handle(ctx context.Context, query queries.GetFoodByIDQuery) (*food.Food, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*food.Food), args.Error(1)
}

type MockGetFoodsByIDsHandler struct {
	mock.Mock
}

func (m *MockGetFoodsByIDsHandler) Handle(ctx context.Context, query queries.GetFoodsByIDsQuery) ([]*food.Food, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*food.Food), args.Error(1)
}

func newCatalogEcho(byID *MockGetFoodByIDHandler, byIDs *MockGetFoodsByIDsHandler) *echo.Echo {
	e := newTestEcho()
	orderhttp.NewCatalogServer(byID, byIDs, slog.New(slog.NewJSONHandler(io.Discard, nil))).Register(e)
	return e
}

func storedFood(t *testing.T, id int64, name, price string, available bool) *food.Food {
	t.Helper()

	f, err := food.RestoreFood(id, name, kernel.MustMoney(price), "Pizza", available)
	require.NoError(t, err)
	return f
}

func TestCatalogServer_GetFood(t *testing.T) {
	byID := &MockGetFoodByIDHandler{}
	byID.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetFoodByIDQuery) bool {
		return q.FoodID() == 1
	})).Return(storedFood(t, 1, "Pizza Margherita", "10.99", true), nil).Once()

	rec := serve(newCatalogEcho(byID, &MockGetFoodsByIDsHandler{}), http.MethodGet, "/api/v1/foods/1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"id":1,"name":"Pizza Margherita","price":"10.99","category":"Pizza","available":true}`,
		rec.Body.String(),
	)
	byID.AssertExpectations(t)
}

func TestCatalogServer_GetFood_NotFound(t *testing.T) {
	byID := &MockGetFoodByIDHandler{}
	byID.On("Handle", mock.Anything, mock.Anything).Return(nil, errs.NewObjectNotFoundError("food", int64(99))).Once()

	rec := serve(newCatalogEcho(byID, &MockGetFoodsByIDsHandler{}), http.MethodGet, "/api/v1/foods/99", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "food with id 99 not found", decodeError(t, rec).Message)
}

func TestCatalogServer_GetFood_MalformedID(t *testing.T) {
	byID := &MockGetFoodByIDHandler{}

	rec := serve(newCatalogEcho(byID, &MockGetFoodsByIDsHandler{}), http.MethodGet, "/api/v1/foods/pizza", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	byID.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestCatalogServer_GetFood_StoreFailureIsHidden(t *testing.T) {
	byID := &MockGetFoodByIDHandler{}
	byID.On("Handle", mock.Anything, mock.Anything).Return(nil, errors.New("pq: connection reset")).Once()

	rec := serve(newCatalogEcho(byID, &MockGetFoodsByIDsHandler{}), http.MethodGet, "/api/v1/foods/1", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", decodeError(t, rec).Message)
}

func TestCatalogServer_GetFoods(t *testing.T) {
	byIDs := &MockGetFoodsByIDsHandler{}
	byIDs.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetFoodsByIDsQuery) bool {
		return assert.ObjectsAreEqual([]int64{1, 2, 99}, q.FoodIDs())
	})).Return([]*food.Food{
		storedFood(t, 1, "Pizza Margherita", "10.99", true),
		storedFood(t, 2, "Hamburger", "8.99", false),
	}, nil).Once()

	rec := serve(newCatalogEcho(&MockGetFoodByIDHandler{}, byIDs), http.MethodGet, "/api/v1/foods?ids=1&ids=2&ids=99", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var response []orderhttp.FoodResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response, 2)
	assert.Equal(t, "8.99", response[1].Price)
	assert.False(t, response[1].Available)
	byIDs.AssertExpectations(t)
}

func TestCatalogServer_GetFoods_NoIDs(t *testing.T) {
	byIDs := &MockGetFoodsByIDsHandler{}
	byIDs.On("Handle", mock.Anything, mock.Anything).Return([]*food.Food{}, nil).Once()

	rec := serve(newCatalogEcho(&MockGetFoodByIDHandler{}, byIDs), http.MethodGet, "/api/v1/foods", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCatalogServer_GetFoods_MalformedID(t *testing.T) {
	byIDs := &MockGetFoodsByIDsHandler{}

	rec := serve(newCatalogEcho(&MockGetFoodByIDHandler{}, byIDs), http.MethodGet, "/api/v1/foods?ids=1&ids=x", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid request: ids is invalid", decodeError(t, rec).Message)
	byIDs.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}
