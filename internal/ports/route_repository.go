package ports

import (
	"context"
	"delivery-ops-service/internal/domain"
)

// Port: a boundary for Route entity persistence.
type RouteRepository interface {
	ListRoutes(ctx context.Context) ([]*domain.Route, error)
	GetRoute(ctx context.Context, id int64) (*domain.Route, error)
	CreateRoute(ctx context.Context, r *domain.Route) (int64, error)
	UpdateRoute(ctx context.Context, r *domain.Route) error
	DeleteRoute(ctx context.Context, id int64) error
}
