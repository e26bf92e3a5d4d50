package restaurant

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"orders-report-service/internal/domain"
	"orders-report-service/internal/platform/httpx"
	"orders-report-service/internal/platform/obs"
)

type ordersResponse struct {
	Results *[]domain.RawOrder `json:"results"`
}

// FetchOrders pulls all current orders for the restaurant.
func (c *Client) FetchOrders(ctx context.Context) (_ []domain.RawOrder, err error) {
	defer obs.Time(ctx, "restaurant.FetchOrders")(&err)

	endpoint := c.baseURL + "/organizations/" + url.PathEscape(c.restaurantID) + "/orders"

	resp, err := httpx.DoWithRetry(ctx, c.session, func() (*http.Request, error) {
		req, err := c.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("viewMode", "restaurant")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}
	defer resp.Body.Close()

	var decoded ordersResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode orders response: %w", err)
	}
	if decoded.Results == nil {
		return nil, &domain.DataShapeError{Entity: "orders response", Field: "results"}
	}

	orders := *decoded.Results
	for i, o := range orders {
		if o.ID == "" {
			return nil, &domain.DataShapeError{Entity: fmt.Sprintf("order at index %d", i), Field: "id"}
		}
		if o.Created == 0 {
			return nil, &domain.DataShapeError{Entity: "order " + o.ID, Field: "created"}
		}
	}

	return orders, nil
}
