package ports

import (
	"context"
	"orders-report-service/internal/domain"
)

// Port: a boundary for pulling order and menu data from the restaurant platform.
type RestaurantSource interface {
	// Retrieve all current orders for the configured restaurant.
	FetchOrders(ctx context.Context) ([]domain.RawOrder, error)
	// Retrieve the current menu (items plus sections).
	FetchMenu(ctx context.Context) (domain.RawMenu, error)
}
