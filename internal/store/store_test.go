package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"dealsync/internal/model"
)

func TestLoadMissingFile(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "deals.json"))
	if err != nil {
		t.Fatalf("Load() error = %v, want nil for missing file", err)
	}
	if diff := cmp.Diff(model.Collection{}, c); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deals.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load() error = nil, want parse error")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "deals.json")
	deals := []model.Deal{
		{
			ID:           "slickdeals-f17412345",
			Title:        "MSI GeForce RTX 4080 Super 16GB Graphics Card $899.99",
			Link:         "https://slickdeals.net/f/17412345-msi-geforce-rtx-4080-super?sdtrk=bfsheet",
			MainCategory: "Computers",
			SubCategory:  "GPU's",
			SalePrice:    "$899.99",
			PubDate:      "2024-11-25T14:30:00Z",
		},
		{
			ID:    "sheet-1-imported-deal",
			Title: "Imported Deal",
		},
	}

	if err := Save(path, deals); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(deals, c.Deals); diff != "" {
		t.Errorf("deals mismatch after round trip (-want +got):\n%s", diff)
	}
	if _, err := time.Parse(timeLayout, c.LastUpdated); err != nil {
		t.Errorf("LastUpdated = %q, not a valid timestamp: %v", c.LastUpdated, err)
	}
}

func TestSaveNilDeals(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deals.json")
	if err := Save(path, nil); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), `"deals": null`) {
		t.Error("nil deals serialized as null, want empty array")
	}
	if !strings.Contains(string(data), `"deals": []`) {
		t.Errorf("expected empty deals array in output:\n%s", data)
	}
}

func TestSaveKeepsEmptyFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deals.json")
	if err := Save(path, []model.Deal{{Title: "Sparse Deal"}}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	// Consumers rely on every column being present, empty or not.
	for _, field := range []string{`"id"`, `"salePrice"`, `"originalPrice"`, `"store"`, `"salePeriod"`, `"notes"`} {
		if !strings.Contains(string(data), field) {
			t.Errorf("field %s missing from output", field)
		}
	}
}
