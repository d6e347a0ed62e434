package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"wastesense-backend/internal/models"
	"wastesense-backend/internal/store"
	"wastesense-backend/pkg/utils"
)

// GetBinStatus handles GET /status/{bin_id}.
func GetBinStatus(binStore *store.BinStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		binID := chi.URLParam(r, "bin_id")

		record, ok := binStore.Get(binID)
		if !ok {
			utils.RespondError(w, http.StatusNotFound, "Bin with ID '"+binID+"' not found")
			return
		}

		utils.JSON(w, http.StatusOK, record)
	}
}

// GetAllBinsStatus handles GET /status: every record plus a per-band
// summary and the list of bins currently carrying alerts.
func GetAllBinsStatus(binStore *store.BinStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		allBins := binStore.All()

		if len(allBins) == 0 {
			utils.JSON(w, http.StatusOK, map[string]interface{}{
				"message":    "No bins currently monitored",
				"total_bins": 0,
				"bins":       []models.BinRecord{},
			})
			return
		}

		statusSummary := map[models.BinStatusLevel]int{
			models.StatusLow:      0,
			models.StatusMedium:   0,
			models.StatusHigh:     0,
			models.StatusCritical: 0,
		}
		binsWithAlerts := []string{}
		bins := make([]models.BinRecord, 0, len(allBins))

		for _, record := range allBins {
			statusSummary[record.Status]++
			if len(record.Alerts) > 0 {
				binsWithAlerts = append(binsWithAlerts, record.BinID)
			}
			bins = append(bins, record)
		}

		utils.JSON(w, http.StatusOK, map[string]interface{}{
			"total_bins":       len(allBins),
			"status_summary":   statusSummary,
			"bins_with_alerts": binsWithAlerts,
			"bins":             bins,
			"last_updated":     time.Now(),
		})
	}
}
