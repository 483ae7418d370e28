package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the database schema.
//
// The DDL is shared between SQLite and Postgres except for the generated
// id column, selected by driver name. Statements are idempotent so startup
// can always run them.
func InitSchema(db *sql.DB, driver string) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	idCol := "INTEGER PRIMARY KEY"
	if driver == "pgx" {
		idCol = "BIGSERIAL PRIMARY KEY"
	}

	createUsersQuery := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS users (
		id %s,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	`, idCol)

	createDriversQuery := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS drivers (
		id %s,
		name TEXT NOT NULL,
		current_shift_hours DOUBLE PRECISION NOT NULL DEFAULT 0,
		past_7day_hours DOUBLE PRECISION NOT NULL DEFAULT 0
	);
	`, idCol)

	createRoutesQuery := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS routes (
		id %s,
		route_id TEXT NOT NULL UNIQUE,
		distance_km DOUBLE PRECISION NOT NULL,
		traffic_level TEXT NOT NULL,
		base_time_minutes DOUBLE PRECISION NOT NULL
	);
	`, idCol)

	createOrdersQuery := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS orders (
		id %s,
		order_id TEXT NOT NULL UNIQUE,
		value_rs DOUBLE PRECISION NOT NULL,
		route_id BIGINT,
		driver_id BIGINT,
		created_at TEXT NOT NULL
	);
	`, idCol)

	createHistoryQuery := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS simulation_history (
		id %s,
		start_time TEXT NOT NULL DEFAULT '',
		total_profit DOUBLE PRECISION NOT NULL,
		efficiency_score DOUBLE PRECISION NOT NULL,
		on_time_count INTEGER NOT NULL,
		late_count INTEGER NOT NULL,
		fuel_cost_high DOUBLE PRECISION NOT NULL,
		fuel_cost_low DOUBLE PRECISION NOT NULL,
		created_at TEXT NOT NULL
	);
	`, idCol)

	createOrderRouteIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_orders_route_id
	ON orders(route_id);
	`

	statements := []string{
		createUsersQuery,
		createDriversQuery,
		createRoutesQuery,
		createOrdersQuery,
		createHistoryQuery,
		createOrderRouteIndexQuery,
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
