package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"ordering/internal/core/domain/model/food"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"
	"ordering/internal/metrics"
	"ordering/internal/pkg/errs"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

const (
	operationGetFoodByID   = "get_food_by_id"
	operationGetFoodsByIDs = "get_foods_by_ids"
)

var _ ports.FoodCatalog = &Client{}

// LatencyObserver receives the duration and outcome of every catalog call.
type LatencyObserver interface {
	ObserveCatalogRequest(operation, outcome string, duration time.Duration)
}

// FoodResponse is the catalog service representation of a food item.
type FoodResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Category  string          `json:"category"`
	Available bool            `json:"available"`
}

// Client looks food items up in the catalog service over HTTP.
// A call is attempted exactly once; the timeout bounds the whole round trip.
type Client struct {
	http     *resty.Client
	observer LatencyObserver
}

// NewClient creates a catalog client for the service at baseURL.
func NewClient(baseURL string, timeout time.Duration, observer LatencyObserver) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("baseURL", err)
	}
	if timeout <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("timeout", fmt.Errorf("%s is not positive", timeout))
	}
	if observer == nil {
		return nil, errs.NewValueIsRequiredError("observer")
	}

	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetRetryCount(0).
			SetHeader("Accept", "application/json"),
		observer: observer,
	}, nil
}

// GetFoodByID returns the snapshot of one food item.
// A 404 from the catalog is reported as *errs.ObjectNotFoundError.
func (c *Client) GetFoodByID(ctx context.Context, id int64) (food.Snapshot, error) {
	start := time.Now()

	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Get("/api/v1/foods/{id}")
	if err != nil {
		c.observe(operationGetFoodByID, metrics.OutcomeError, start)
		return food.Snapshot{}, fmt.Errorf("HTTP error: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
	case http.StatusNotFound:
		c.observe(operationGetFoodByID, metrics.OutcomeNotFound, start)
		return food.Snapshot{}, errs.NewObjectNotFoundError("food", id)
	default:
		c.observe(operationGetFoodByID, metrics.OutcomeError, start)
		return food.Snapshot{}, fmt.Errorf("catalog service returned status %d: %s", resp.StatusCode(), resp.String())
	}

	var response FoodResponse
	if err = json.Unmarshal(resp.Body(), &response); err != nil {
		c.observe(operationGetFoodByID, metrics.OutcomeError, start)
		return food.Snapshot{}, fmt.Errorf("failed to parse response: %w", err)
	}

	c.observe(operationGetFoodByID, metrics.OutcomeSuccess, start)
	return response.snapshot(), nil
}

// GetFoodsByIDs returns the snapshots of the existing items among ids in a single call.
// Missing ids are omitted by the catalog; an empty id list makes no call.
func (c *Client) GetFoodsByIDs(ctx context.Context, ids []int64) ([]food.Snapshot, error) {
	if len(ids) == 0 {
		return []food.Snapshot{}, nil
	}

	start := time.Now()

	params := url.Values{}
	for _, id := range ids {
		params.Add("ids", strconv.FormatInt(id, 10))
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(params).
		Get("/api/v1/foods")
	if err != nil {
		c.observe(operationGetFoodsByIDs, metrics.OutcomeError, start)
		return nil, fmt.Errorf("HTTP error: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		c.observe(operationGetFoodsByIDs, metrics.OutcomeError, start)
		return nil, fmt.Errorf("catalog service returned status %d: %s", resp.StatusCode(), resp.String())
	}

	var response []FoodResponse
	if err = json.Unmarshal(resp.Body(), &response); err != nil {
		c.observe(operationGetFoodsByIDs, metrics.OutcomeError, start)
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	snapshots := make([]food.Snapshot, 0, len(response))
	for _, item := range response {
		snapshots = append(snapshots, item.snapshot())
	}

	c.observe(operationGetFoodsByIDs, metrics.OutcomeSuccess, start)
	return snapshots, nil
}

func (c *Client) observe(operation, outcome string, start time.Time) {
	c.observer.ObserveCatalogRequest(operation, outcome, time.Since(start))
}

func (r FoodResponse) snapshot() food.Snapshot {
	return food.NewSnapshot(r.ID, kernel.NewMoney(r.Price), r.Available)
}
