package models

// DailyWaste is one day of city-wide collection totals, either read from
// the historical data source or generated for the current day.
type DailyWaste struct {
	Date              string  `json:"date" db:"date"`
	TotalOrganicKg    float64 `json:"total_organic_kg" db:"total_organic_kg"`
	TotalRecyclableKg float64 `json:"total_recyclable_kg" db:"total_recyclable_kg"`
	TotalHazardousKg  float64 `json:"total_hazardous_kg" db:"total_hazardous_kg"`
}

// TotalKg returns the combined weight across all three waste streams.
func (d DailyWaste) TotalKg() float64 {
	return d.TotalOrganicKg + d.TotalRecyclableKg + d.TotalHazardousKg
}
