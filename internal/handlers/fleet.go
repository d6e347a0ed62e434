package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"wastesense-backend/internal/fleet"
	"wastesense-backend/internal/models"
	"wastesense-backend/pkg/utils"
)

// GetFleetBins handles GET /api/bins.
func GetFleetBins() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.JSON(w, http.StatusOK, fleet.Bins())
	}
}

// GetFleetDrivers handles GET /api/drivers.
func GetFleetDrivers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.JSON(w, http.StatusOK, fleet.Drivers())
	}
}

// GetFleetStations handles GET /api/stations.
func GetFleetStations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.JSON(w, http.StatusOK, fleet.Stations())
	}
}

// GetTrips handles GET /api/trips. Trips are not tracked server-side.
func GetTrips() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.JSON(w, http.StatusOK, []models.Trip{})
	}
}

// DispatchTrip handles POST /api/dispatch: acknowledges a trip assignment
// without running any state machine behind it.
func DispatchTrip() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.DispatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		location := "Unknown"
		for _, b := range fleet.Bins() {
			if b.ID == req.BinID {
				location = b.Location
				break
			}
		}

		trip := models.Trip{
			ID:        "TRP-" + uuid.NewString(),
			BinID:     req.BinID,
			Location:  location,
			DriverID:  req.DriverID,
			Driver:    models.TripParty{ID: req.DriverID, Name: fleet.DriverName(req.DriverID)},
			StationID: req.StationID,
			Station:   models.TripParty{ID: req.StationID, Name: fleet.StationName(req.StationID)},
			Status:    "Assigned",
			CreatedAt: time.Now().UnixMilli(),
		}

		log.Printf("🚚 Dispatched trip %s: bin %s -> station %s (driver %s)", trip.ID, req.BinID, req.StationID, req.DriverID)
		utils.JSON(w, http.StatusOK, trip)
	}
}

// UpdateTrip handles PATCH /api/trips/{id}.
func UpdateTrip() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tripID := chi.URLParam(r, "id")

		var req models.UpdateTripRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		status := req.Status
		if status == "" {
			status = "Assigned"
		}

		utils.JSON(w, http.StatusOK, map[string]string{
			"id":     tripID,
			"status": status,
		})
	}
}
