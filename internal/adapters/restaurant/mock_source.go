package restaurant

import (
	"context"
	"orders-report-service/internal/domain"
)

// MockSource serves canned payloads for tests.
type MockSource struct {
	Orders    []domain.RawOrder
	Menu      domain.RawMenu
	OrdersErr error
	MenuErr   error
}

func (m *MockSource) FetchOrders(ctx context.Context) ([]domain.RawOrder, error) {
	if m.OrdersErr != nil {
		return nil, m.OrdersErr
	}
	return m.Orders, nil
}

func (m *MockSource) FetchMenu(ctx context.Context) (domain.RawMenu, error) {
	if m.MenuErr != nil {
		return domain.RawMenu{}, m.MenuErr
	}
	return m.Menu, nil
}
