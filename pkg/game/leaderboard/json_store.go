package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// JSONStore keeps the leaderboard in a JSON file as an array of entries
type JSONStore struct {
	filePath string
	mutex    sync.RWMutex
}

// NewJSONStore creates a store for filePath. The file is created on the first Save.
func NewJSONStore(filePath string) *JSONStore {
	return &JSONStore{filePath: filePath}
}

// Load reads the file. A missing file is an empty leaderboard; an undecodable one wraps ErrCorrupt.
func (js *JSONStore) Load(ctx context.Context) ([]Entry, error) {
	js.mutex.RLock()
	defer js.mutex.RUnlock()

	data, err := os.ReadFile(js.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return []Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", js.filePath, err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, js.filePath, err)
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}

// Save writes the whole list, replacing the file atomically
func (js *JSONStore) Save(ctx context.Context, entries []Entry) error {
	js.mutex.Lock()
	defer js.mutex.Unlock()

	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode leaderboard: %w", err)
	}

	dir := filepath.Dir(js.filePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create leaderboard directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".leaderboard-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), js.filePath); err != nil {
		return fmt.Errorf("failed to replace %s: %w", js.filePath, err)
	}
	return nil
}

// Close does nothing; the file is not held open
func (js *JSONStore) Close() error {
	return nil
}
