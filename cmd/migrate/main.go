package main

import (
	"log"
	"os"

	migrate "github.com/rubenv/sql-migrate"

	"github.com/meetbrief-team/meetbrief/internal/infrastructure/database"
	"github.com/meetbrief-team/meetbrief/pkg/config"
)

// Applies migrations/ to the configured database. Usage: migrate [up|down]
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	direction := migrate.Up
	if len(os.Args) > 1 && os.Args[1] == "down" {
		direction = migrate.Down
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get db connection: %v", err)
	}

	migrations := &migrate.FileMigrationSource{Dir: "migrations"}
	n, err := migrate.Exec(sqlDB, "postgres", migrations, direction)
	if err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	log.Printf("✅ Applied %d migrations!", n)
}
