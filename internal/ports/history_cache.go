package ports

import (
	"context"
	"delivery-ops-service/internal/domain"
)

// Optional cache for the latest-snapshot dashboard read path.
// A miss is (nil, nil); cache failures must not fail the request.
type HistoryCache interface {
	GetLatest(ctx context.Context) (*domain.HistorySnapshot, error)
	PutLatest(ctx context.Context, s *domain.HistorySnapshot) error
}
