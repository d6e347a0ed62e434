package handlers

import (
	"log"
	"math"
	"net/http"
	"time"

	"wastesense-backend/internal/history"
	"wastesense-backend/pkg/utils"
)

// GetDashboardData handles GET /dashboard/data: historical daily totals
// merged with the synthetic current-day row, plus summary arithmetic.
func GetDashboardData(manager *history.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Println("📊 Processing dashboard data request")

		dashboardData, err := manager.DashboardData()
		if err != nil {
			log.Printf("❌ Error preparing dashboard data: %v", err)
			utils.RespondError(w, http.StatusInternalServerError, "Internal server error while preparing dashboard data")
			return
		}

		totalPoints := len(dashboardData)
		var totalOrganic, totalRecyclable, totalHazardous float64
		for _, row := range dashboardData {
			totalOrganic += row.TotalOrganicKg
			totalRecyclable += row.TotalRecyclableKg
			totalHazardous += row.TotalHazardousKg
		}

		averages := map[string]float64{}
		if totalPoints > 0 {
			averages["avg_organic_kg"] = round1(totalOrganic / float64(totalPoints))
			averages["avg_recyclable_kg"] = round1(totalRecyclable / float64(totalPoints))
			averages["avg_hazardous_kg"] = round1(totalHazardous / float64(totalPoints))
		}

		utils.JSON(w, http.StatusOK, map[string]interface{}{
			"data": dashboardData,
			"summary": map[string]interface{}{
				"total_data_points":      totalPoints,
				"historical_data_points": totalPoints - 1,
				"dynamic_data_points":    1,
				"date_range": map[string]string{
					"start": dashboardData[0].Date,
					"end":   dashboardData[totalPoints-1].Date,
				},
				"totals": map[string]float64{
					"total_organic_kg":    round1(totalOrganic),
					"total_recyclable_kg": round1(totalRecyclable),
					"total_hazardous_kg":  round1(totalHazardous),
					"grand_total_kg":      round1(totalOrganic + totalRecyclable + totalHazardous),
				},
				"averages": averages,
			},
			"metadata": map[string]interface{}{
				"generated_at":         time.Now().Format(time.RFC3339),
				"includes_current_day": true,
			},
		})
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
