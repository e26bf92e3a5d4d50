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

type menuResponse struct {
	Items    *[]domain.RawMenuItem    `json:"items"`
	Sections *[]domain.RawMenuSection `json:"sections"`
}

// FetchMenu pulls the restaurant's current menu (items plus sections).
func (c *Client) FetchMenu(ctx context.Context) (_ domain.RawMenu, err error) {
	defer obs.Time(ctx, "restaurant.FetchMenu")(&err)

	endpoint := c.baseURL + "/organizations/" + url.PathEscape(c.restaurantID) + "/menu"

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
		return domain.RawMenu{}, fmt.Errorf("fetch menu: %w", err)
	}
	defer resp.Body.Close()

	var decoded menuResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.RawMenu{}, fmt.Errorf("decode menu response: %w", err)
	}
	if decoded.Items == nil {
		return domain.RawMenu{}, &domain.DataShapeError{Entity: "menu response", Field: "items"}
	}
	if decoded.Sections == nil {
		return domain.RawMenu{}, &domain.DataShapeError{Entity: "menu response", Field: "sections"}
	}

	return domain.RawMenu{
		Items:    *decoded.Items,
		Sections: *decoded.Sections,
	}, nil
}
