package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wastesense-backend/internal/models"
)

// With no FCM and no hub configured the notifier still evaluates thresholds
// and returns the messages for the ingest response.
func TestCheckAndNotifyWithoutSinks(t *testing.T) {
	n := NewNotifier(nil, nil, "municipal-alerts")

	got := n.CheckAndNotify(models.BinReading{
		BinID:           "BIN-001",
		OrganicLevel:    85,
		RecyclableLevel: 80,
		HazardousLevel:  90.5,
	})

	// recyclable sits exactly on the threshold: no notification for it.
	require.Len(t, got, 2)
	assert.Contains(t, got[0], "Organic")
	assert.Contains(t, got[1], "Hazardous")
	assert.Contains(t, got[1], "CRITICAL")
}

func TestCheckAndNotifyBelowThreshold(t *testing.T) {
	n := NewNotifier(nil, nil, "municipal-alerts")

	got := n.CheckAndNotify(models.BinReading{BinID: "BIN-002", OrganicLevel: 40})
	assert.Empty(t, got)
}
