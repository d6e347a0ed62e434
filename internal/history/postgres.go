package history

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"

	"wastesense-backend/internal/models"
)

// PostgresSource reads daily totals from the daily_waste_data table.
type PostgresSource struct {
	db *sqlx.DB
}

// NewPostgresSource creates a source over an open database connection.
func NewPostgresSource(db *sqlx.DB) *PostgresSource {
	log.Println("✅ Initialized historical data manager: postgres")
	return &PostgresSource{db: db}
}

// DailyTotals returns every stored row in date order.
func (s *PostgresSource) DailyTotals() ([]models.DailyWaste, error) {
	var rows []models.DailyWaste
	err := s.db.Select(&rows, `
		SELECT date, total_organic_kg, total_recyclable_kg, total_hazardous_kg
		FROM daily_waste_data
		ORDER BY date ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch daily waste data: %w", err)
	}
	return rows, nil
}
