package database

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"wastesense-backend/internal/models"
)

// Connect opens and verifies a Postgres connection.
func Connect(dbURL string) (*sqlx.DB, error) {
	log.Println("🔌 Connecting to database...")

	db, err := sqlx.Connect("postgres", dbURL)
	if err != nil {
		log.Println("❌ DATABASE CONNECTION FAILED AT sqlx.Connect()")
		log.Printf("   Error: %v", err)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		log.Println("❌ DATABASE CONNECTION FAILED AT Ping()")
		log.Printf("   Error: %v", err)
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("✅ DATABASE CONNECTION SUCCESSFUL")
	return db, nil
}

// Migrate creates the historical data schema.
func Migrate(db *sqlx.DB) error {
	migrations := []string{
		// Daily city-wide collection totals, one row per calendar day
		`CREATE TABLE IF NOT EXISTS daily_waste_data (
			date TEXT PRIMARY KEY,
			total_organic_kg DOUBLE PRECISION NOT NULL,
			total_recyclable_kg DOUBLE PRECISION NOT NULL,
			total_hazardous_kg DOUBLE PRECISION NOT NULL,
			created_at BIGINT NOT NULL DEFAULT EXTRACT(EPOCH FROM NOW())::BIGINT
		)`,
	}

	for i, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	return nil
}

// SeedDailyWaste loads rows into daily_waste_data if the table is empty.
// Used to import a generated CSV on first boot against a fresh database.
func SeedDailyWaste(db *sqlx.DB, rows []models.DailyWaste) error {
	var count int
	if err := db.Get(&count, "SELECT COUNT(*) FROM daily_waste_data"); err != nil {
		return fmt.Errorf("failed to count daily waste rows: %w", err)
	}
	if count > 0 {
		log.Printf("✅ Daily waste data already seeded (%d rows)", count)
		return nil
	}

	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, row := range rows {
		_, err := tx.Exec(`
			INSERT INTO daily_waste_data (date, total_organic_kg, total_recyclable_kg, total_hazardous_kg)
			VALUES ($1, $2, $3, $4)
		`, row.Date, row.TotalOrganicKg, row.TotalRecyclableKg, row.TotalHazardousKg)
		if err != nil {
			return fmt.Errorf("failed to insert daily waste row %s: %w", row.Date, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	log.Printf("✅ Seeded %d daily waste rows", len(rows))
	return nil
}
