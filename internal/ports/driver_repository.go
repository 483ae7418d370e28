package ports

import (
	"context"
	"delivery-ops-service/internal/domain"
)

// Port: a boundary for Driver entity persistence.
type DriverRepository interface {
	// Retrieve all drivers ordered by ascending id (creation order).
	ListDrivers(ctx context.Context) ([]*domain.Driver, error)
	GetDriver(ctx context.Context, id int64) (*domain.Driver, error)
	CreateDriver(ctx context.Context, d *domain.Driver) (int64, error)
	UpdateDriver(ctx context.Context, d *domain.Driver) error
	DeleteDriver(ctx context.Context, id int64) error
}
