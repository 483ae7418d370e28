package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"delivery-ops-service/internal/domain"
)

// SQL-backed implementation of the OrderRepository port.
type SQLOrderRepository struct{ DB *sql.DB }

func NewSQLOrderRepository(db *sql.DB) *SQLOrderRepository {
	return &SQLOrderRepository{DB: db}
}

// Return all orders with their routes resolved, ordered by ascending id.
// This is the engine's assignment order, so the ORDER BY is contractual.
func (s *SQLOrderRepository) ListOrdersWithRoutes(ctx context.Context) ([]*domain.Order, error) {
	query := `
	SELECT
		o.id, o.order_id, o.value_rs, o.route_id, o.driver_id, o.created_at,
		r.id, r.route_id, r.distance_km, r.traffic_level, r.base_time_minutes
	FROM orders o
	LEFT JOIN routes r ON r.id = o.route_id
	ORDER BY o.id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list orders: query orders table: %w", err)
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0, 64)
	for rows.Next() {
		var (
			o         domain.Order
			createdAt string

			routeID      sql.NullInt64
			routeCode    sql.NullString
			distanceKm   sql.NullFloat64
			trafficLevel sql.NullString
			baseTimeMin  sql.NullFloat64
		)
		err := rows.Scan(
			&o.ID, &o.OrderID, &o.ValueRs, &o.RouteID, &o.DriverID, &createdAt,
			&routeID, &routeCode, &distanceKm, &trafficLevel, &baseTimeMin,
		)
		if err != nil {
			return nil, fmt.Errorf("list orders: scan row: %w", err)
		}

		if routeID.Valid {
			o.Route = &domain.Route{
				ID:              routeID.Int64,
				RouteID:         routeCode.String,
				DistanceKm:      distanceKm.Float64,
				TrafficLevel:    trafficLevel.String,
				BaseTimeMinutes: baseTimeMin.Float64,
			}
		}
		o.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)

		orders = append(orders, &o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list orders: row iteration: %w", err)
	}

	return orders, nil
}

func (s *SQLOrderRepository) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	var (
		o         domain.Order
		createdAt string
	)
	err := s.DB.QueryRowContext(ctx, `
	SELECT id, order_id, value_rs, route_id, driver_id, created_at
	FROM orders
	WHERE id = $1;
	`, id).Scan(&o.ID, &o.OrderID, &o.ValueRs, &o.RouteID, &o.DriverID, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get order id=%d: %w", id, err)
	}
	o.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &o, nil
}

func (s *SQLOrderRepository) CreateOrder(ctx context.Context, o *domain.Order) (int64, error) {
	createdAt := o.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	var id int64
	err := s.DB.QueryRowContext(ctx, `
	INSERT INTO orders (order_id, value_rs, route_id, driver_id, created_at)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id;
	`, o.OrderID, o.ValueRs, o.RouteID, o.DriverID, createdAt.Format(time.RFC3339)).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create order %q: %w", o.OrderID, err)
	}
	return id, nil
}

func (s *SQLOrderRepository) UpdateOrder(ctx context.Context, o *domain.Order) error {
	_, err := s.DB.ExecContext(ctx, `
	UPDATE orders
	SET order_id = $1, value_rs = $2, route_id = $3, driver_id = $4
	WHERE id = $5;
	`, o.OrderID, o.ValueRs, o.RouteID, o.DriverID, o.ID)
	if err != nil {
		return fmt.Errorf("update order id=%d: %w", o.ID, err)
	}
	return nil
}

func (s *SQLOrderRepository) DeleteOrder(ctx context.Context, id int64) error {
	if _, err := s.DB.ExecContext(ctx, `DELETE FROM orders WHERE id = $1;`, id); err != nil {
		return fmt.Errorf("delete order id=%d: %w", id, err)
	}
	return nil
}
