package websocket

import (
	"encoding/json"
	"log"
	"sync"
)

// Hub maintains active monitor connections and fans bin events out to all
// of them.
type Hub struct {
	// Registered monitor clients
	clients map[*Client]bool

	// Outbound events for all connected monitors
	broadcast chan []byte

	// Register requests from clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Mutex for thread-safe client map access
	mu sync.RWMutex
}

// NewHub creates a new Hub instance.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run starts the hub's main loop.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			log.Printf("✅ [WEBSOCKET] Monitor connected: %s (total: %d)", client.Subject, h.ClientCount())

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				log.Printf("🔴 [WEBSOCKET] Monitor disconnected: %s (remaining: %d)", client.Subject, len(h.clients))
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Client buffer full, disconnect
					close(client.send)
					delete(h.clients, client)
					log.Printf("⚠️  Monitor buffer full, disconnecting: %s", client.Subject)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast sends an event to every connected monitor. Marshalling failures
// are logged and dropped; a live feed never blocks the request path.
func (h *Hub) Broadcast(data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		log.Printf("❌ Failed to marshal broadcast message: %v", err)
		return
	}

	select {
	case h.broadcast <- payload:
	default:
		log.Println("⚠️  Broadcast channel full, dropping event")
	}
}

// ClientCount returns the number of connected monitors.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
