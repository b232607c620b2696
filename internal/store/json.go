package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// JSONStore writes series documents into a flat data directory, one
// pretty-printed JSON file per series.
type JSONStore struct {
	Dir string
}

// NewJSONStore creates the data directory if it does not exist.
func NewJSONStore(dir string) (*JSONStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &JSONStore{Dir: dir}, nil
}

// Write marshals v with two-space indentation and fully replaces the
// destination file.
func (s *JSONStore) Write(filename string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filename, err)
	}
	path := filepath.Join(s.Dir, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	log.Printf("[INFO] wrote %s", path)
	return nil
}
