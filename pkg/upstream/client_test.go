package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/xosoviet/xoso-backend/internal/models"
)

func TestFetchResultsSingleRegion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("region"); got != "north" {
			t.Errorf("region query = %q, want north", got)
		}
		if got := r.URL.Query().Get("date"); got != "2024-03-15" {
			t.Errorf("date query = %q, want 2024-03-15", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name":"Miền Bắc","date":"2024-03-15","prizes":[{"name":"Đặc biệt","numbers":["01234"]}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", false)
	set, err := c.FetchResults(context.Background(), "2024-03-15", models.RegionNorth)
	if err != nil {
		t.Fatalf("FetchResults: %v", err)
	}
	result, ok := set[models.RegionNorth]
	if !ok {
		t.Fatal("expected a north entry")
	}
	if result.Name != "Miền Bắc" {
		t.Errorf("name = %q, want Miền Bắc", result.Name)
	}
	if result.Prizes[0].Numbers[0] != "01234" {
		t.Errorf("leading zero lost: %q", result.Prizes[0].Numbers[0])
	}
}

func TestFetchResultsAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"north":{"name":"Miền Bắc","date":"2024-03-15","prizes":[]},
			"central":{"name":"Miền Trung","date":"2024-03-15","prizes":[]},
			"south":{"name":"Miền Nam","date":"2024-03-15","prizes":[]}
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", false)
	set, err := c.FetchResults(context.Background(), "2024-03-15", models.RegionAll)
	if err != nil {
		t.Fatalf("FetchResults: %v", err)
	}
	if len(set) != 3 {
		t.Fatalf("len = %d, want 3", len(set))
	}
	for _, region := range models.AllRegions() {
		if _, ok := set[region]; !ok {
			t.Errorf("missing region %q", region)
		}
	}
}

func TestFetchResultsNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", false)
	if _, err := c.FetchResults(context.Background(), "2024-03-15", models.RegionNorth); err == nil {
		t.Fatal("expected error on 502 response")
	}
}

func TestFetchResultsMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name": `))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", false)
	if _, err := c.FetchResults(context.Background(), "2024-03-15", models.RegionNorth); err == nil {
		t.Fatal("expected error on malformed body")
	}
}

func TestFetchResultsMockMode(t *testing.T) {
	c := NewClient("http://feed.invalid", "", true)
	set, err := c.FetchResults(context.Background(), "2024-03-15", models.RegionNorth)
	if err != nil {
		t.Fatalf("FetchResults in mock mode: %v", err)
	}
	if set[models.RegionNorth].Name != "Miền Bắc" {
		t.Errorf("name = %q, want Miền Bắc", set[models.RegionNorth].Name)
	}
	if set[models.RegionNorth].Date != "2024-03-15" {
		t.Errorf("date = %q, want the requested date", set[models.RegionNorth].Date)
	}
}

func TestMockResultsAllRegions(t *testing.T) {
	set := MockResults("2024-03-15", models.RegionAll)
	if len(set) != 3 {
		t.Fatalf("len = %d, want 3", len(set))
	}
	want := map[models.Region]string{
		models.RegionNorth:   "Miền Bắc",
		models.RegionCentral: "Miền Trung",
		models.RegionSouth:   "Miền Nam",
	}
	for region, name := range want {
		result, ok := set[region]
		if !ok {
			t.Fatalf("missing region %q", region)
		}
		if result.Name != name {
			t.Errorf("%s name = %q, want %q", region, result.Name, name)
		}
		if len(result.Prizes) == 0 {
			t.Errorf("%s has no prizes", region)
		}
	}
}

func TestMockResultsUnknownRegion(t *testing.T) {
	set := MockResults("2024-03-15", models.Region("west"))
	if len(set) != 0 {
		t.Fatalf("unknown region should yield an empty set, got %d entries", len(set))
	}
}
