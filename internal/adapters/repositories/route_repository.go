package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"delivery-ops-service/internal/domain"
)

// SQL-backed implementation of the RouteRepository port.
type SQLRouteRepository struct{ DB *sql.DB }

func NewSQLRouteRepository(db *sql.DB) *SQLRouteRepository {
	return &SQLRouteRepository{DB: db}
}

func (s *SQLRouteRepository) ListRoutes(ctx context.Context) ([]*domain.Route, error) {
	query := `
	SELECT id, route_id, distance_km, traffic_level, base_time_minutes
	FROM routes
	ORDER BY id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list routes: query routes table: %w", err)
	}
	defer rows.Close()

	routes := make([]*domain.Route, 0, 16)
	for rows.Next() {
		var r domain.Route
		if err := rows.Scan(&r.ID, &r.RouteID, &r.DistanceKm, &r.TrafficLevel, &r.BaseTimeMinutes); err != nil {
			return nil, fmt.Errorf("list routes: scan row: %w", err)
		}
		routes = append(routes, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list routes: row iteration: %w", err)
	}

	return routes, nil
}

func (s *SQLRouteRepository) GetRoute(ctx context.Context, id int64) (*domain.Route, error) {
	var r domain.Route
	err := s.DB.QueryRowContext(ctx, `
	SELECT id, route_id, distance_km, traffic_level, base_time_minutes
	FROM routes
	WHERE id = $1;
	`, id).Scan(&r.ID, &r.RouteID, &r.DistanceKm, &r.TrafficLevel, &r.BaseTimeMinutes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get route id=%d: %w", id, err)
	}
	return &r, nil
}

func (s *SQLRouteRepository) CreateRoute(ctx context.Context, r *domain.Route) (int64, error) {
	var id int64
	err := s.DB.QueryRowContext(ctx, `
	INSERT INTO routes (route_id, distance_km, traffic_level, base_time_minutes)
	VALUES ($1, $2, $3, $4)
	RETURNING id;
	`, r.RouteID, r.DistanceKm, r.TrafficLevel, r.BaseTimeMinutes).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create route %q: %w", r.RouteID, err)
	}
	return id, nil
}

func (s *SQLRouteRepository) UpdateRoute(ctx context.Context, r *domain.Route) error {
	_, err := s.DB.ExecContext(ctx, `
	UPDATE routes
	SET route_id = $1, distance_km = $2, traffic_level = $3, base_time_minutes = $4
	WHERE id = $5;
	`, r.RouteID, r.DistanceKm, r.TrafficLevel, r.BaseTimeMinutes, r.ID)
	if err != nil {
		return fmt.Errorf("update route id=%d: %w", r.ID, err)
	}
	return nil
}

func (s *SQLRouteRepository) DeleteRoute(ctx context.Context, id int64) error {
	if _, err := s.DB.ExecContext(ctx, `DELETE FROM routes WHERE id = $1;`, id); err != nil {
		return fmt.Errorf("delete route id=%d: %w", id, err)
	}
	return nil
}
