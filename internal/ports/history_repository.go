package ports

import (
	"context"
	"delivery-ops-service/internal/domain"
)

// Port: append-only storage for simulation history snapshots.
type HistoryRepository interface {
	// Append one snapshot and return its new identifier.
	// The append must be atomic per call; snapshots are never updated
	// or deleted afterwards.
	AppendSnapshot(ctx context.Context, s *domain.HistorySnapshot) (int64, error)
	// Return the most recent snapshot, or nil when none exists.
	LatestSnapshot(ctx context.Context) (*domain.HistorySnapshot, error)
}
