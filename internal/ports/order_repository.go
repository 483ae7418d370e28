package ports

import (
	"context"
	"delivery-ops-service/internal/domain"
)

// Port: a boundary for Order entity persistence.
type OrderRepository interface {
	// Retrieve all orders with their attached routes resolved.
	// The sequence is ordered by ascending id (creation order); the
	// simulation processes orders in exactly this order, so the ordering
	// is part of the contract, not an implementation detail.
	ListOrdersWithRoutes(ctx context.Context) ([]*domain.Order, error)
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
	CreateOrder(ctx context.Context, o *domain.Order) (int64, error)
	UpdateOrder(ctx context.Context, o *domain.Order) error
	DeleteOrder(ctx context.Context, id int64) error
}
