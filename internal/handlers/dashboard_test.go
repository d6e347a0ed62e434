package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wastesense-backend/internal/history"
	"wastesense-backend/internal/middleware"
	"wastesense-backend/internal/models"
	"wastesense-backend/internal/store"
	"wastesense-backend/internal/token"
)

type stubSource struct {
	rows []models.DailyWaste
}

func (s stubSource) DailyTotals() ([]models.DailyWaste, error) {
	return s.rows, nil
}

func TestGetDashboardData(t *testing.T) {
	manager := history.NewManager(stubSource{rows: []models.DailyWaste{
		{Date: "2025-09-01", TotalOrganicKg: 100, TotalRecyclableKg: 50, TotalHazardousKg: 10},
		{Date: "2025-09-02", TotalOrganicKg: 120, TotalRecyclableKg: 70, TotalHazardousKg: 20},
	}})

	r := chi.NewRouter()
	r.Get("/dashboard/data", GetDashboardData(manager))

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/dashboard/data", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var payload struct {
		Data    []models.DailyWaste `json:"data"`
		Summary struct {
			TotalDataPoints      int                `json:"total_data_points"`
			HistoricalDataPoints int                `json:"historical_data_points"`
			DynamicDataPoints    int                `json:"dynamic_data_points"`
			DateRange            map[string]string  `json:"date_range"`
			Totals               map[string]float64 `json:"totals"`
			Averages             map[string]float64 `json:"averages"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))

	assert.Len(t, payload.Data, 3)
	assert.Equal(t, 3, payload.Summary.TotalDataPoints)
	assert.Equal(t, 2, payload.Summary.HistoricalDataPoints)
	assert.Equal(t, 1, payload.Summary.DynamicDataPoints)
	assert.Equal(t, "2025-09-01", payload.Summary.DateRange["start"])
	assert.Equal(t, time.Now().Format("2006-01-02"), payload.Summary.DateRange["end"])

	// The two fixed rows contribute 220 organic kg; the synthetic row adds
	// somewhere in [85, 155].
	assert.GreaterOrEqual(t, payload.Summary.Totals["total_organic_kg"], 305.0)
	assert.LessOrEqual(t, payload.Summary.Totals["total_organic_kg"], 375.0)
	assert.InDelta(t,
		payload.Summary.Totals["total_organic_kg"]+
			payload.Summary.Totals["total_recyclable_kg"]+
			payload.Summary.Totals["total_hazardous_kg"],
		payload.Summary.Totals["grand_total_kg"], 0.2)
	assert.InDelta(t, payload.Summary.Totals["total_organic_kg"]/3, payload.Summary.Averages["avg_organic_kg"], 0.2)
}

func TestAdminDashboardFlagsCollectionDays(t *testing.T) {
	manager := history.NewManager(stubSource{rows: []models.DailyWaste{
		{Date: "2025-09-01", TotalOrganicKg: 150, TotalRecyclableKg: 80, TotalHazardousKg: 25},
		{Date: "2025-09-02", TotalOrganicKg: 40, TotalRecyclableKg: 30, TotalHazardousKg: 8},
	}})
	binStore := store.NewBinStore()

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(testSecret))
		r.Get("/admin/dashboard", AdminDashboard(binStore, manager))
	})

	bearer, err := token.Issue(map[string]interface{}{"sub": "test_user"}, testSecret, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+bearer)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var payload struct {
		Analytics struct {
			CollectionAnalysis struct {
				PeakCollectionDays []map[string]interface{} `json:"peak_collection_days"`
				LowCollectionDays  []map[string]interface{} `json:"low_collection_days"`
			} `json:"collection_analysis"`
		} `json:"analytics"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))

	require.NotEmpty(t, payload.Analytics.CollectionAnalysis.PeakCollectionDays)
	assert.Equal(t, "2025-09-01", payload.Analytics.CollectionAnalysis.PeakCollectionDays[0]["date"])
	require.NotEmpty(t, payload.Analytics.CollectionAnalysis.LowCollectionDays)
	assert.Equal(t, "2025-09-02", payload.Analytics.CollectionAnalysis.LowCollectionDays[0]["date"])
}
