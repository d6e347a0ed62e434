package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"wastesense-backend/internal/models"
	"wastesense-backend/internal/notify"
	"wastesense-backend/internal/store"
	"wastesense-backend/internal/websocket"
	"wastesense-backend/pkg/utils"
)

// ReceiveReading handles POST /data: validates the device reading, stores
// it, runs the notification check and answers with the derived status.
func ReceiveReading(binStore *store.BinStore, notifier *notify.Notifier, hub *websocket.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var reading models.BinReading
		if err := json.NewDecoder(r.Body).Decode(&reading); err != nil {
			utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := reading.Validate(); err != nil {
			log.Printf("❌ Rejected reading for bin %q: %v", reading.BinID, err)
			utils.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}

		log.Printf("📡 Received IoT data from %s for bin %s", r.RemoteAddr, reading.BinID)

		record := binStore.Store(reading)
		notifications := notifier.CheckAndNotify(reading)

		if hub != nil {
			hub.Broadcast(map[string]interface{}{
				"type": "bin_update",
				"data": record,
			})
		}

		utils.Respond(w, http.StatusOK,
			"Data received and processed successfully for bin "+reading.BinID,
			map[string]interface{}{
				"bin_id":             record.BinID,
				"status":             record.Status,
				"notifications_sent": len(notifications),
				"alerts":             notifications,
				"received_at":        record.LastUpdated.Format(time.RFC3339),
			})
	}
}
