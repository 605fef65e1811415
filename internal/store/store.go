// Package store persists finished generation runs as human-readable JSON
// files, one file per run, so the presentation layer can re-fetch and
// export them.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"website_copywriter/internal/copywriter"
	"website_copywriter/internal/utils"
)

// ErrRunNotFound is returned by LoadRun when no exported file matches the
// run ID.
var ErrRunNotFound = errors.New("run not found")

// RunRecord is the exported artifact for one run. Copy keeps the section
// order of the original request.
type RunRecord struct {
	RunID       string             `json:"runId"`
	Product     string             `json:"product"`
	GeneratedAt time.Time          `json:"generatedAt"`
	Copy        *copywriter.Result `json:"copy"`
}

// Store writes run records under a single output directory.
type Store struct {
	dir string
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

// SaveRun writes the record as indented JSON to
// <dir>/<product_slug>_<runID>.json and returns the file path.
func (s *Store) SaveRun(record RunRecord) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode run %s: %w", record.RunID, err)
	}

	name := fmt.Sprintf("%s_%s.json", utils.Slugify(record.Product), record.RunID)
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write run %s: %w", record.RunID, err)
	}

	log.Printf("Run saved: %s", path)
	return path, nil
}

// LoadRun reads back the record for a run ID.
func (s *Store) LoadRun(runID string) (RunRecord, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return RunRecord{}, ErrRunNotFound
		}
		return RunRecord{}, fmt.Errorf("failed to read output directory: %w", err)
	}

	suffix := "_" + runID + ".json"
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), suffix) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			return RunRecord{}, fmt.Errorf("failed to read run %s: %w", runID, err)
		}
		var record RunRecord
		if err := json.Unmarshal(data, &record); err != nil {
			return RunRecord{}, fmt.Errorf("failed to decode run %s: %w", runID, err)
		}
		return record, nil
	}
	return RunRecord{}, ErrRunNotFound
}
