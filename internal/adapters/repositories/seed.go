package repositories

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// SeedFromCSV loads demo drivers, routes and orders from CSV files in dir
// (drivers.csv, routes.csv, orders.csv). Seeding runs only against an
// empty database: if any drivers exist the call is a no-op, so startup can
// seed unconditionally.
//
// orders.csv references routes by their external route code, resolved to
// row ids during the load; a blank code leaves the order without a route.
func SeedFromCSV(db *sql.DB, dir string) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM drivers;`).Scan(&count); err != nil {
		return fmt.Errorf("seed: count drivers: %w", err)
	}
	if count > 0 {
		return nil
	}

	drivers, err := readCSV(filepath.Join(dir, "drivers.csv"))
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	routes, err := readCSV(filepath.Join(dir, "routes.csv"))
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	orders, err := readCSV(filepath.Join(dir, "orders.csv"))
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, row := range drivers {
		shift, err := parseFloatField(row, "currentShiftHours")
		if err != nil {
			return fmt.Errorf("seed: drivers.csv row %d: %w", i+1, err)
		}
		past, err := parseFloatField(row, "past7DayHours")
		if err != nil {
			return fmt.Errorf("seed: drivers.csv row %d: %w", i+1, err)
		}

		_, err = tx.Exec(
			`INSERT INTO drivers (name, current_shift_hours, past_7day_hours) VALUES ($1, $2, $3);`,
			row["name"], shift, past,
		)
		if err != nil {
			return fmt.Errorf("seed: insert driver %q: %w", row["name"], err)
		}
	}

	routeIDs := make(map[string]int64, len(routes))
	for i, row := range routes {
		code := strings.TrimSpace(row["routeId"])
		if code == "" {
			return fmt.Errorf("seed: routes.csv row %d: routeId cannot be empty", i+1)
		}
		dist, err := parseFloatField(row, "distanceKm")
		if err != nil {
			return fmt.Errorf("seed: routes.csv row %d: %w", i+1, err)
		}
		baseTime, err := parseFloatField(row, "baseTimeMinutes")
		if err != nil {
			return fmt.Errorf("seed: routes.csv row %d: %w", i+1, err)
		}

		var id int64
		err = tx.QueryRow(
			`INSERT INTO routes (route_id, distance_km, traffic_level, base_time_minutes)
			 VALUES ($1, $2, $3, $4) RETURNING id;`,
			code, dist, row["trafficLevel"], baseTime,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("seed: insert route %q: %w", code, err)
		}
		routeIDs[code] = id
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for i, row := range orders {
		code := strings.TrimSpace(row["orderId"])
		if code == "" {
			return fmt.Errorf("seed: orders.csv row %d: orderId cannot be empty", i+1)
		}
		value, err := parseFloatField(row, "valueRs")
		if err != nil {
			return fmt.Errorf("seed: orders.csv row %d: %w", i+1, err)
		}

		var routeID any
		if ref := strings.TrimSpace(row["routeId"]); ref != "" {
			id, ok := routeIDs[ref]
			if !ok {
				return fmt.Errorf("seed: orders.csv row %d: unknown routeId %q", i+1, ref)
			}
			routeID = id
		}

		_, err = tx.Exec(
			`INSERT INTO orders (order_id, value_rs, route_id, created_at) VALUES ($1, $2, $3, $4);`,
			code, value, routeID, now,
		)
		if err != nil {
			return fmt.Errorf("seed: insert order %q: %w", code, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed: commit tx: %w", err)
	}

	return nil
}

// readCSV parses a headered CSV file into one map per data row.
func readCSV(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("parse %q: missing header row", path)
	}

	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[strings.TrimSpace(col)] = rec[i]
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func parseFloatField(row map[string]string, field string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(row[field]), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", field, row[field])
	}
	return v, nil
}
