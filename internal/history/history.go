// Package history supplies the dashboard's daily collection totals:
// historical rows from a pluggable source plus one synthetic row for the
// current day.
package history

import (
	"log"
	"math"
	"math/rand"
	"time"

	"wastesense-backend/internal/models"
)

// Source provides historical daily totals. CSV is the default; Postgres is
// used when a database is configured.
type Source interface {
	DailyTotals() ([]models.DailyWaste, error)
}

// Manager combines a historical source with synthetic current-day data.
type Manager struct {
	source Source
}

// NewManager creates a manager over the given source.
func NewManager(source Source) *Manager {
	return &Manager{source: source}
}

// Historical returns the rows from the underlying source.
func (m *Manager) Historical() ([]models.DailyWaste, error) {
	return m.source.DailyTotals()
}

// Base daily amounts (kg) for a mid-size city; the synthetic row varies
// around these.
const (
	minOrganicKg    = 85.0
	maxOrganicKg    = 155.0
	minRecyclableKg = 55.0
	maxRecyclableKg = 105.0
	minHazardousKg  = 18.0
	maxHazardousKg  = 35.0
)

// GenerateCurrentDay produces a realistic row for today. The device fleet
// reports fill levels, not weights, so today's totals are synthesized until
// collection runs close out the day.
func (m *Manager) GenerateCurrentDay() models.DailyWaste {
	row := models.DailyWaste{
		Date:              time.Now().Format("2006-01-02"),
		TotalOrganicKg:    round1(minOrganicKg + rand.Float64()*(maxOrganicKg-minOrganicKg)),
		TotalRecyclableKg: round1(minRecyclableKg + rand.Float64()*(maxRecyclableKg-minRecyclableKg)),
		TotalHazardousKg:  round1(minHazardousKg + rand.Float64()*(maxHazardousKg-minHazardousKg)),
	}
	log.Printf("📊 Generated dynamic waste data for %s", row.Date)
	return row
}

// DashboardData returns the historical rows with the synthetic current-day
// row appended.
func (m *Manager) DashboardData() ([]models.DailyWaste, error) {
	historical, err := m.source.DailyTotals()
	if err != nil {
		return nil, err
	}

	combined := append(historical, m.GenerateCurrentDay())
	log.Printf("📊 Prepared dashboard data with %d total data points", len(combined))
	return combined, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
