// Package notify fans bin alerts out to the municipal side: server log
// always, FCM push and the live monitor feed when those are configured.
package notify

import (
	"log"
	"strings"

	"wastesense-backend/internal/alerts"
	"wastesense-backend/internal/models"
	"wastesense-backend/internal/services"
	"wastesense-backend/internal/websocket"
)

// Notifier delivers threshold-exceeded notifications. FCM and the hub are
// both optional; a nil sink is skipped.
type Notifier struct {
	fcm   *services.FCMService
	hub   *websocket.Hub
	topic string
}

// NewNotifier creates a notifier with the given sinks. topic is the FCM
// topic municipal subscriber apps listen on.
func NewNotifier(fcm *services.FCMService, hub *websocket.Hub, topic string) *Notifier {
	return &Notifier{fcm: fcm, hub: hub, topic: topic}
}

// CheckAndNotify evaluates the reading against the notification threshold
// and delivers one message per exceeded category. It returns the messages
// sent so the ingest response can echo them.
func (n *Notifier) CheckAndNotify(reading models.BinReading) []string {
	notifications := alerts.Notifications(reading)

	for _, message := range notifications {
		severity := "warning"
		if strings.HasPrefix(message, "CRITICAL") {
			severity = "critical"
		}

		if severity == "critical" {
			log.Printf("🚨 %s", message)
		} else {
			log.Printf("⚠️  %s", message)
		}

		if n.fcm != nil {
			if err := n.fcm.SendBinAlert(n.topic, reading.BinID, message, severity); err != nil {
				log.Printf("❌ Failed to push alert for bin %s: %v", reading.BinID, err)
			}
		}

		if n.hub != nil {
			n.hub.Broadcast(map[string]interface{}{
				"type": "bin_alert",
				"data": map[string]interface{}{
					"bin_id":   reading.BinID,
					"severity": severity,
					"message":  message,
				},
			})
		}
	}

	return notifications
}
