package websocket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubBroadcastReachesRegisteredClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := NewClient("test_user", nil, hub)
	hub.register <- client

	require.Eventually(t, func() bool {
		return hub.ClientCount() == 1
	}, time.Second, 10*time.Millisecond)

	hub.Broadcast(map[string]string{"type": "bin_update"})

	select {
	case payload := <-client.send:
		assert.Contains(t, string(payload), "bin_update")
	case <-time.After(time.Second):
		t.Fatal("expected broadcast to reach the registered client")
	}
}

func TestHubUnregisterClosesClient(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := NewClient("test_user", nil, hub)
	hub.register <- client
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	hub.unregister <- client
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 10*time.Millisecond)

	_, open := <-client.send
	assert.False(t, open, "send channel must be closed on unregister")
}
