package main

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	_ "github.com/jackc/pgx/v5/stdlib"

	"delivery-ops-service/internal/adapters/repositories"
	"delivery-ops-service/internal/config"
	"delivery-ops-service/internal/platform/db"
)

// dbtool initializes the schema and seeds demo data into a Postgres
// database, for deployments that do not use the embedded SQLite store.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(conn, "pgx"); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	seedDir := config.Get("SEED_DIR", "data/seeds")
	log.Println("Seeding database...")
	if err := repositories.SeedFromCSV(conn, seedDir); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}
