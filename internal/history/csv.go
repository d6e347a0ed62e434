package history

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"

	"wastesense-backend/internal/models"
)

// CSVSource reads daily totals from a CSV file with a
// date,total_organic_kg,total_recyclable_kg,total_hazardous_kg header.
type CSVSource struct {
	Path string
}

// NewCSVSource creates a source over the given file path.
func NewCSVSource(path string) *CSVSource {
	log.Printf("✅ Initialized historical data manager: %s", path)
	return &CSVSource{Path: path}
}

// DailyTotals reads every row from the file. A missing file is not an
// error: the dashboard degrades to current-day data only.
func (s *CSVSource) DailyTotals() ([]models.DailyWaste, error) {
	file, err := os.Open(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("⚠️  Historical data file not found: %s", s.Path)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open %s: %w", s.Path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.Path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	// Map header names to column positions so column order is not assumed.
	columns := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		columns[name] = i
	}
	for _, required := range []string{"date", "total_organic_kg", "total_recyclable_kg", "total_hazardous_kg"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("%s is missing required column %q", s.Path, required)
		}
	}

	rows := make([]models.DailyWaste, 0, len(records)-1)
	for _, record := range records[1:] {
		organic, err := strconv.ParseFloat(record[columns["total_organic_kg"]], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid total_organic_kg in %s: %w", s.Path, err)
		}
		recyclable, err := strconv.ParseFloat(record[columns["total_recyclable_kg"]], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid total_recyclable_kg in %s: %w", s.Path, err)
		}
		hazardous, err := strconv.ParseFloat(record[columns["total_hazardous_kg"]], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid total_hazardous_kg in %s: %w", s.Path, err)
		}

		rows = append(rows, models.DailyWaste{
			Date:              record[columns["date"]],
			TotalOrganicKg:    organic,
			TotalRecyclableKg: recyclable,
			TotalHazardousKg:  hazardous,
		})
	}

	log.Printf("✅ Successfully read %d rows from %s", len(rows), s.Path)
	return rows, nil
}
