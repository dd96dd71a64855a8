package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/xosoviet/xoso-backend/internal/cache"
	"github.com/xosoviet/xoso-backend/internal/models"
	"github.com/xosoviet/xoso-backend/internal/services"
	"github.com/xosoviet/xoso-backend/pkg/upstream"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	// Mock feed: handlers exercise the full resolver path without a network
	svc := services.NewResultService(
		cache.New(10, 0),
		upstream.NewClient("", "", true),
		nil,
	)
	h := NewResultHandler(svc)

	router := gin.New()
	router.GET("/results", h.GetResults)
	router.GET("/schedule/:day", h.GetSchedule)
	return router
}

func TestGetResultsSingleRegion(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/results?date=2024-03-15&region=north", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body struct {
		Date    string           `json:"date"`
		Region  models.Region    `json:"region"`
		Results models.ResultSet `json:"results"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Date != "2024-03-15" || body.Region != models.RegionNorth {
		t.Errorf("echoed date/region = %s/%s", body.Date, body.Region)
	}
	if body.Results[models.RegionNorth].Name != "Miền Bắc" {
		t.Errorf("name = %q, want Miền Bắc", body.Results[models.RegionNorth].Name)
	}
}

func TestGetResultsDefaultsToAll(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/results?date=2024-03-15", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body struct {
		Results models.ResultSet `json:"results"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Results) != 3 {
		t.Errorf("results has %d regions, want 3", len(body.Results))
	}
}

func TestGetResultsBadDate(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/results?date=15-03-2024", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGetResultsUnknownRegionIsEmptyNotError(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/results?date=2024-03-15&region=west", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (unknown region is not an error)", w.Code)
	}
	var body struct {
		Results models.ResultSet `json:"results"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Results) != 0 {
		t.Errorf("results has %d entries, want 0", len(body.Results))
	}
}

func TestGetSchedule(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/schedule/monday?region=south", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body struct {
		Day      string                     `json:"day"`
		Schedule map[models.Region][]string `json:"schedule"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Day != "Monday" {
		t.Errorf("day = %q, want Monday", body.Day)
	}
	if len(body.Schedule[models.RegionSouth]) == 0 {
		t.Error("expected provinces for the southern draw on Monday")
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/schedule/someday", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for an invalid weekday", w.Code)
	}
}
