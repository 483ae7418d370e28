package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"delivery-ops-service/internal/adapters/cache"
	"delivery-ops-service/internal/adapters/repositories"
	"delivery-ops-service/internal/api"
	"delivery-ops-service/internal/config"
	"delivery-ops-service/internal/platform/db"
	"delivery-ops-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (SQLite or Postgres, optional Redis) behind
// ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "5000")
	seedDir := config.Get("SEED_DIR", "data/seeds")

	jwtSecret := os.Getenv("JWT_SECRET")
	if strings.TrimSpace(jwtSecret) == "" {
		log.Fatal("JWT_SECRET is required")
	}

	conn, driver, err := openDatabase()
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	// Initialize schema and seed demo data on startup for local runs.
	// Seeding is a no-op once drivers exist.
	if err := repositories.InitSchema(conn, driver); err != nil {
		log.Fatal(err)
	}
	if err := repositories.SeedFromCSV(conn, seedDir); err != nil {
		log.Fatal(err)
	}

	deps := api.Deps{
		Drivers: repositories.NewSQLDriverRepository(conn),
		Routes:  repositories.NewSQLRouteRepository(conn),
		Orders:  repositories.NewSQLOrderRepository(conn),
		Users:   repositories.NewSQLUserRepository(conn),
		History: repositories.NewSQLHistoryRepository(conn),
		Cache:   openHistoryCache(),
		Auth:    api.NewTokenAuth(jwtSecret),
	}
	router := api.NewRouter(deps)

	log.Printf("Server listening addr=:%s driver=%s", port, driver)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openDatabase prefers Postgres when DATABASE_URL is set, falling back to
// an embedded SQLite file for local runs.
func openDatabase() (*sql.DB, string, error) {
	if databaseURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(databaseURL) != "" {
		conn, err := db.Open(databaseURL)
		return conn, "pgx", err
	}

	conn, err := db.OpenSqlite(config.Get("DB_PATH", "data/app.db"))
	return conn, "sqlite", err
}

// openHistoryCache wires the latest-KPI cache when REDIS_ADDR is set.
// The cache is optional: without it the latest endpoint reads the database.
func openHistoryCache() ports.HistoryCache {
	addr := os.Getenv("REDIS_ADDR")
	if strings.TrimSpace(addr) == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	ttl := 10 * time.Minute
	if v := os.Getenv("HISTORY_CACHE_TTL"); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid HISTORY_CACHE_TTL %q, using default", v)
		} else {
			ttl = parsed
		}
	}

	log.Printf("History cache enabled addr=%s ttl=%s", addr, ttl)
	return cache.NewRedisHistoryCache(client, ttl)
}
