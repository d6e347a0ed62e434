package handlers

import (
	"net/http"
	"os"
	"time"

	"wastesense-backend/internal/store"
	"wastesense-backend/pkg/utils"
)

const apiVersion = "2.0.0"

// Root handles GET /: basic service information.
func Root(binStore *store.BinStore, historicalDataFile string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, statErr := os.Stat(historicalDataFile)
		utils.Respond(w, http.StatusOK, "Smart Waste Management System API is operational",
			map[string]interface{}{
				"version":                   apiVersion,
				"status":                    "healthy",
				"total_bins":                binStore.Count(),
				"historical_data_available": statErr == nil,
			})
	}
}

// Health handles GET /health for monitoring services. No auth.
func Health(binStore *store.BinStore, historicalDataFile string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, statErr := os.Stat(historicalDataFile)
		utils.JSON(w, http.StatusOK, map[string]interface{}{
			"status":                 "healthy",
			"timestamp":              time.Now(),
			"version":                apiVersion,
			"database_status":        "connected",
			"total_bins_monitored":   binStore.Count(),
			"historical_data_file":   historicalDataFile,
			"historical_data_exists": statErr == nil,
		})
	}
}
