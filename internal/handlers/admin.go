package handlers

import (
	"log"
	"net/http"
	"time"

	"wastesense-backend/internal/history"
	"wastesense-backend/internal/store"
	"wastesense-backend/pkg/utils"
)

// Daily total (kg) boundaries used by the admin dashboard to flag unusual
// collection days.
const (
	peakDayKg = 200.0
	lowDayKg  = 100.0
)

// AdminBins handles GET /admin/bins (token protected).
func AdminBins(binStore *store.BinStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.JSON(w, http.StatusOK, map[string]interface{}{
			"message":   "Administrative access granted",
			"data":      binStore.All(),
			"timestamp": time.Now(),
		})
	}
}

// AdminDashboard handles GET /admin/dashboard (token protected): the
// combined daily rows plus peak/low collection day analytics and the live
// bin state.
func AdminDashboard(binStore *store.BinStore, manager *history.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dashboardData, err := manager.DashboardData()
		if err != nil {
			log.Printf("❌ Error preparing admin dashboard: %v", err)
			utils.RespondError(w, http.StatusInternalServerError, "Internal server error while preparing admin dashboard")
			return
		}

		type flaggedDay struct {
			Date    string  `json:"date"`
			TotalKg float64 `json:"total_kg"`
		}
		peakDays := []flaggedDay{}
		lowDays := []flaggedDay{}

		for _, row := range dashboardData {
			total := row.TotalKg()
			switch {
			case total > peakDayKg:
				peakDays = append(peakDays, flaggedDay{Date: row.Date, TotalKg: round1(total)})
			case total < lowDayKg:
				lowDays = append(lowDays, flaggedDay{Date: row.Date, TotalKg: round1(total)})
			}
		}

		utils.JSON(w, http.StatusOK, map[string]interface{}{
			"message":        "Administrative dashboard access granted",
			"dashboard_data": dashboardData,
			"analytics": map[string]interface{}{
				"collection_analysis": map[string]interface{}{
					"peak_collection_days": peakDays,
					"low_collection_days":  lowDays,
				},
			},
			"bins_status": binStore.All(),
			"timestamp":   time.Now(),
		})
	}
}
