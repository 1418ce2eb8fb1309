package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"

	"dealsync/internal/model"
	"dealsync/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeLister struct {
	runs []model.SyncRun
	got  int
}

func (f *fakeLister) ListRuns(_ context.Context, limit int) ([]model.SyncRun, error) {
	f.got = limit
	if limit < len(f.runs) {
		return f.runs[:limit], nil
	}
	return f.runs, nil
}

func newTestServer(t *testing.T, deals []model.Deal, history RunLister) *Server {
	t.Helper()
	dataFile := filepath.Join(t.TempDir(), "deals.json")
	if deals != nil {
		if err := store.Save(dataFile, deals); err != nil {
			t.Fatal(err)
		}
	}
	return New(dataFile, history, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func doRequest(t *testing.T, s *Server, path string) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	s.Router().ServeHTTP(w, req)

	var body map[string]json.RawMessage
	if w.Code == http.StatusOK {
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON response from %s: %v", path, err)
		}
	}
	return w, body
}

func testDeals() []model.Deal {
	return []model.Deal{
		{
			ID:           "slickdeals-f1",
			Title:        "MSI GeForce RTX 4080 Super $899.99",
			MainCategory: "Computers",
			SubCategory:  "GPU's",
			PubDate:      "2024-11-25T14:30:00Z",
		},
		{
			ID:           "slickdeals-f2",
			Title:        "HP Victus 15 Gaming Laptop $449",
			MainCategory: "Computers",
			SubCategory:  "Laptops",
			PubDate:      "2024-11-25T13:00:00Z",
		},
		{
			ID:           "slickdeals-f3",
			Title:        "Keurig K-Cup Coffee Pods $24.99",
			MainCategory: "Grocery",
			SubCategory:  "Drinks & Beverages",
			PubDate:      "2024-11-25T12:00:00Z",
		},
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, nil, nil)
	w, _ := doRequest(t, s, "/healthz")
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestDeals(t *testing.T) {
	s := newTestServer(t, testDeals(), nil)

	tests := []struct {
		name      string
		path      string
		wantCount int
		wantIDs   []string
	}{
		{
			name:      "unfiltered",
			path:      "/api/deals",
			wantCount: 3,
			wantIDs:   []string{"slickdeals-f1", "slickdeals-f2", "slickdeals-f3"},
		},
		{
			name:      "filter by main",
			path:      "/api/deals?main=computers",
			wantCount: 2,
			wantIDs:   []string{"slickdeals-f1", "slickdeals-f2"},
		},
		{
			name:      "filter by main and sub",
			path:      "/api/deals?main=Computers&sub=laptops",
			wantCount: 1,
			wantIDs:   []string{"slickdeals-f2"},
		},
		{
			name:      "filter matching nothing",
			path:      "/api/deals?main=travel",
			wantCount: 0,
			wantIDs:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := doRequest(t, s, tt.path)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", w.Code)
			}

			var count int
			if err := json.Unmarshal(body["count"], &count); err != nil {
				t.Fatal(err)
			}
			if count != tt.wantCount {
				t.Errorf("count = %d, want %d", count, tt.wantCount)
			}

			var deals []model.Deal
			if err := json.Unmarshal(body["deals"], &deals); err != nil {
				t.Fatal(err)
			}
			ids := make([]string, 0, len(deals))
			for _, d := range deals {
				ids = append(ids, d.ID)
			}
			if diff := cmp.Diff(tt.wantIDs, ids); diff != "" {
				t.Errorf("deal ids mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDealsMissingFile(t *testing.T) {
	s := newTestServer(t, nil, nil)
	w, body := doRequest(t, s, "/api/deals")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 for empty baseline", w.Code)
	}
	var count int
	if err := json.Unmarshal(body["count"], &count); err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
}

func TestCategories(t *testing.T) {
	s := newTestServer(t, testDeals(), nil)
	w, body := doRequest(t, s, "/api/categories")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	type category struct {
		Main string   `json:"main"`
		Subs []string `json:"subs"`
	}
	var categories []category
	if err := json.Unmarshal(body["categories"], &categories); err != nil {
		t.Fatal(err)
	}
	want := []category{
		{Main: "Computers", Subs: []string{"GPU's", "Laptops"}},
		{Main: "Grocery", Subs: []string{"Drinks & Beverages"}},
	}
	if diff := cmp.Diff(want, categories); diff != "" {
		t.Errorf("categories mismatch (-want +got):\n%s", diff)
	}
}

func TestRuns(t *testing.T) {
	history := &fakeLister{runs: []model.SyncRun{
		{ID: 2, Trigger: "scheduled", Fetched: 30, Added: 2, Total: 120},
		{ID: 1, Trigger: "manual", Fetched: 30, Added: 5, Total: 118},
	}}
	s := newTestServer(t, nil, history)

	w, body := doRequest(t, s, "/api/runs")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var runs []model.SyncRun
	if err := json.Unmarshal(body["runs"], &runs); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(history.runs, runs); diff != "" {
		t.Errorf("runs mismatch (-want +got):\n%s", diff)
	}
	if history.got != 20 {
		t.Errorf("default limit = %d, want 20", history.got)
	}
}

func TestRunsLimit(t *testing.T) {
	history := &fakeLister{}
	s := newTestServer(t, nil, history)

	if w, _ := doRequest(t, s, "/api/runs?limit=5"); w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if history.got != 5 {
		t.Errorf("limit = %d, want 5", history.got)
	}

	// Out-of-range values fall back to the default.
	if w, _ := doRequest(t, s, "/api/runs?limit=9999"); w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if history.got != 20 {
		t.Errorf("limit = %d, want 20 for out-of-range request", history.got)
	}
}

func TestRunsDisabledWithoutHistory(t *testing.T) {
	s := newTestServer(t, nil, nil)
	w, _ := doRequest(t, s, "/api/runs")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 when history is disabled", w.Code)
	}
}
