package websocket

import (
	"log"
	"net/http"

	"wastesense-backend/internal/token"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins in development
		// TODO: Restrict in production
		return true
	},
}

// HandleWebSocket upgrades the HTTP connection for a dashboard monitor.
// Browsers cannot set an Authorization header on WebSocket connections, so
// the token travels in a query parameter instead.
func HandleWebSocket(hub *Hub, secret string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tokenString := r.URL.Query().Get("token")
		if tokenString == "" {
			log.Println("❌ No token in WebSocket connection request")
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		claims, err := token.Verify(tokenString, secret)
		if err != nil {
			log.Printf("❌ Invalid token in query parameter: %v", err)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		subject, _ := claims["sub"].(string)
		if subject == "" {
			log.Println("❌ Token has no subject claim")
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("❌ WebSocket upgrade failed: %v", err)
			return
		}

		client := NewClient(subject, conn, hub)
		hub.register <- client

		go client.WritePump()
		go client.ReadPump()

		log.Printf("✅ WebSocket connection established for monitor: %s", subject)
	}
}
