package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"delivery-ops-service/internal/domain"
)

// SQL-backed implementation of the DriverRepository port.
// Queries use $n placeholders, valid on both SQLite and Postgres.
type SQLDriverRepository struct{ DB *sql.DB }

func NewSQLDriverRepository(db *sql.DB) *SQLDriverRepository {
	return &SQLDriverRepository{DB: db}
}

// Return all drivers ordered by ascending id, the selection tie-break
// order the simulation depends on.
func (s *SQLDriverRepository) ListDrivers(ctx context.Context) ([]*domain.Driver, error) {
	query := `
	SELECT id, name, current_shift_hours, past_7day_hours
	FROM drivers
	ORDER BY id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list drivers: query drivers table: %w", err)
	}
	defer rows.Close()

	drivers := make([]*domain.Driver, 0, 16)
	for rows.Next() {
		var d domain.Driver
		if err := rows.Scan(&d.ID, &d.Name, &d.CurrentShiftHours, &d.Past7DayHours); err != nil {
			return nil, fmt.Errorf("list drivers: scan row: %w", err)
		}
		drivers = append(drivers, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list drivers: row iteration: %w", err)
	}

	return drivers, nil
}

func (s *SQLDriverRepository) GetDriver(ctx context.Context, id int64) (*domain.Driver, error) {
	var d domain.Driver
	err := s.DB.QueryRowContext(ctx, `
	SELECT id, name, current_shift_hours, past_7day_hours
	FROM drivers
	WHERE id = $1;
	`, id).Scan(&d.ID, &d.Name, &d.CurrentShiftHours, &d.Past7DayHours)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get driver id=%d: %w", id, err)
	}
	return &d, nil
}

func (s *SQLDriverRepository) CreateDriver(ctx context.Context, d *domain.Driver) (int64, error) {
	var id int64
	err := s.DB.QueryRowContext(ctx, `
	INSERT INTO drivers (name, current_shift_hours, past_7day_hours)
	VALUES ($1, $2, $3)
	RETURNING id;
	`, d.Name, d.CurrentShiftHours, d.Past7DayHours).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create driver: %w", err)
	}
	return id, nil
}

func (s *SQLDriverRepository) UpdateDriver(ctx context.Context, d *domain.Driver) error {
	_, err := s.DB.ExecContext(ctx, `
	UPDATE drivers
	SET name = $1, current_shift_hours = $2, past_7day_hours = $3
	WHERE id = $4;
	`, d.Name, d.CurrentShiftHours, d.Past7DayHours, d.ID)
	if err != nil {
		return fmt.Errorf("update driver id=%d: %w", d.ID, err)
	}
	return nil
}

func (s *SQLDriverRepository) DeleteDriver(ctx context.Context, id int64) error {
	if _, err := s.DB.ExecContext(ctx, `DELETE FROM drivers WHERE id = $1;`, id); err != nil {
		return fmt.Errorf("delete driver id=%d: %w", id, err)
	}
	return nil
}
