package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"delivery-ops-service/internal/domain"
)

// SQL-backed implementation of the HistoryRepository port.
// The simulation_history table is append-only: rows are inserted once and
// never updated or deleted here.
type SQLHistoryRepository struct{ DB *sql.DB }

func NewSQLHistoryRepository(db *sql.DB) *SQLHistoryRepository {
	return &SQLHistoryRepository{DB: db}
}

// Append one snapshot in a single INSERT (atomic per call) and return its
// new id.
func (s *SQLHistoryRepository) AppendSnapshot(ctx context.Context, snap *domain.HistorySnapshot) (int64, error) {
	createdAt := time.Now().UTC()

	var id int64
	err := s.DB.QueryRowContext(ctx, `
	INSERT INTO simulation_history (
		start_time, total_profit, efficiency_score,
		on_time_count, late_count, fuel_cost_high, fuel_cost_low, created_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING id;
	`,
		snap.StartTime, snap.TotalProfit, snap.EfficiencyScore,
		snap.OnTimeCount, snap.LateCount, snap.FuelCostHigh, snap.FuelCostLow,
		createdAt.Format(time.RFC3339),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("append history snapshot: %w", err)
	}

	return id, nil
}

// Return the most recent snapshot, or nil when none has been recorded.
// Recency is by id, which increases monotonically with appends.
func (s *SQLHistoryRepository) LatestSnapshot(ctx context.Context) (*domain.HistorySnapshot, error) {
	var (
		snap      domain.HistorySnapshot
		createdAt string
	)
	err := s.DB.QueryRowContext(ctx, `
	SELECT
		id, start_time, total_profit, efficiency_score,
		on_time_count, late_count, fuel_cost_high, fuel_cost_low, created_at
	FROM simulation_history
	ORDER BY id DESC
	LIMIT 1;
	`).Scan(
		&snap.ID, &snap.StartTime, &snap.TotalProfit, &snap.EfficiencyScore,
		&snap.OnTimeCount, &snap.LateCount, &snap.FuelCostHigh, &snap.FuelCostLow,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest history snapshot: %w", err)
	}

	snap.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &snap, nil
}
