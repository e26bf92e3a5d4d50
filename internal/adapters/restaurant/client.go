package restaurant

import (
	"errors"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.wixrestaurants.com/v2"

// Client implements ports.RestaurantSource against the restaurant platform
// REST API. Both endpoints are authenticated with the raw Authorization
// header value the restaurant obtained from the platform.
//
// The client is safe for concurrent use.
type Client struct {
	session      *http.Client
	baseURL      string
	restaurantID string
	authHeader   string
}

func NewClient(restaurantID, authHeader string) (*Client, error) {
	if restaurantID == "" {
		return nil, errors.New("restaurant id is empty")
	}
	if authHeader == "" {
		return nil, errors.New("auth header is empty")
	}

	return &Client{
		session:      &http.Client{Timeout: 10 * time.Second},
		baseURL:      defaultBaseURL,
		restaurantID: restaurantID,
		authHeader:   authHeader,
	}, nil
}
