package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wastesense-backend/internal/notify"
	"wastesense-backend/internal/store"
)

func ingestRouter(binStore *store.BinStore) http.Handler {
	notifier := notify.NewNotifier(nil, nil, "municipal-alerts")

	r := chi.NewRouter()
	r.Post("/data", ReceiveReading(binStore, notifier, nil))
	r.Get("/status", GetAllBinsStatus(binStore))
	r.Get("/status/{bin_id}", GetBinStatus(binStore))
	return r
}

func postJSON(t *testing.T, router http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rr, req)
	return rr
}

func TestReceiveReadingEndToEnd(t *testing.T) {
	binStore := store.NewBinStore()
	router := ingestRouter(binStore)

	rr := postJSON(t, router, "/data",
		`{"bin_id":"BIN-001","organic_level":85,"recyclable_level":10,"hazardous_level":10}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var envelope struct {
		Success bool                   `json:"success"`
		Message string                 `json:"message"`
		Data    map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))

	assert.True(t, envelope.Success)
	assert.Contains(t, envelope.Message, "BIN-001")
	assert.Equal(t, "HIGH", envelope.Data["status"])
	assert.Equal(t, float64(1), envelope.Data["notifications_sent"])

	alerts, ok := envelope.Data["alerts"].([]interface{})
	require.True(t, ok)
	require.Len(t, alerts, 1)
	assert.Contains(t, alerts[0].(string), "Organic")
	assert.NotEmpty(t, envelope.Data["received_at"])

	// The stored record carries the >= 80 alert as well.
	record, ok := binStore.Get("BIN-001")
	require.True(t, ok)
	require.Len(t, record.Alerts, 1)
	assert.Contains(t, record.Alerts[0], "Organic")
}

// A reading at exactly 80% stores an alert but sends no notification.
func TestReceiveReadingAtNotificationBoundary(t *testing.T) {
	binStore := store.NewBinStore()
	router := ingestRouter(binStore)

	rr := postJSON(t, router, "/data",
		`{"bin_id":"BIN-080","organic_level":80,"recyclable_level":0,"hazardous_level":0}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var envelope struct {
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
	assert.Equal(t, float64(0), envelope.Data["notifications_sent"])

	record, _ := binStore.Get("BIN-080")
	assert.Len(t, record.Alerts, 1)
}

func TestReceiveReadingValidation(t *testing.T) {
	router := ingestRouter(store.NewBinStore())

	tests := []struct {
		name string
		body string
	}{
		{"short bin_id", `{"bin_id":"AB","organic_level":10,"recyclable_level":10,"hazardous_level":10}`},
		{"level above 100", `{"bin_id":"BIN-001","organic_level":150,"recyclable_level":10,"hazardous_level":10}`},
		{"negative level", `{"bin_id":"BIN-001","organic_level":10,"recyclable_level":-1,"hazardous_level":10}`},
		{"not json", `{"bin_id"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := postJSON(t, router, "/data", tt.body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Contains(t, rr.Body.String(), `"success":false`)
		})
	}
}

func TestGetBinStatusNotFound(t *testing.T) {
	router := ingestRouter(store.NewBinStore())

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/status/BIN-404", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "BIN-404")
}

func TestGetAllBinsStatusEmpty(t *testing.T) {
	router := ingestRouter(store.NewBinStore())

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/status", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "No bins currently monitored")
}

func TestGetAllBinsStatusSummary(t *testing.T) {
	binStore := store.NewBinStore()
	router := ingestRouter(binStore)

	postJSON(t, router, "/data", `{"bin_id":"BIN-001","organic_level":95,"recyclable_level":0,"hazardous_level":0}`)
	postJSON(t, router, "/data", `{"bin_id":"BIN-002","organic_level":65,"recyclable_level":0,"hazardous_level":0}`)
	postJSON(t, router, "/data", `{"bin_id":"BIN-003","organic_level":10,"recyclable_level":0,"hazardous_level":0}`)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/status", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var payload struct {
		TotalBins      int            `json:"total_bins"`
		StatusSummary  map[string]int `json:"status_summary"`
		BinsWithAlerts []string       `json:"bins_with_alerts"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))

	assert.Equal(t, 3, payload.TotalBins)
	assert.Equal(t, 1, payload.StatusSummary["CRITICAL"])
	assert.Equal(t, 1, payload.StatusSummary["MEDIUM"])
	assert.Equal(t, 1, payload.StatusSummary["LOW"])
	assert.Equal(t, []string{"BIN-001"}, payload.BinsWithAlerts)
}
