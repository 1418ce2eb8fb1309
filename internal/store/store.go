// Package store persists the deal collection as a JSON document and keeps a
// sqlite ledger of sync runs.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"dealsync/internal/model"
)

const timeLayout = "2006-01-02T15:04:05Z"

// Load reads the collection from path. A missing file is a valid empty
// baseline; a present but malformed file is an error.
func Load(path string) (model.Collection, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from config
	if errors.Is(err, fs.ErrNotExist) {
		return model.Collection{}, nil
	}
	if err != nil {
		return model.Collection{}, fmt.Errorf("read collection: %w", err)
	}

	var c model.Collection
	if err := json.Unmarshal(data, &c); err != nil {
		return model.Collection{}, fmt.Errorf("parse collection: %w", err)
	}
	return c, nil
}

// Save writes the collection to path atomically, stamping LastUpdated with
// the current UTC time. The temp-file-and-rename dance means readers never
// observe a partially written document.
func Save(path string, deals []model.Deal) error {
	c := model.Collection{
		LastUpdated: time.Now().UTC().Format(timeLayout),
		Deals:       deals,
	}
	if c.Deals == nil {
		c.Deals = []model.Deal{}
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode collection: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".deals-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write collection: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace collection: %w", err)
	}
	return nil
}
