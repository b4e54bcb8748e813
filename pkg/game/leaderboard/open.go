package leaderboard

import (
	"fmt"
	"strings"
)

// Store backends accepted by Open
const (
	BackendJSON     = "json"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// DefaultJSONFile is the leaderboard file used when none is configured
const DefaultJSONFile = "leaderboard.json"

// DefaultSQLiteFile is the database file used when none is configured
const DefaultSQLiteFile = "leaderboard.db"

// Open creates the store named by backend. path is the file for json and sqlite, dsn the
// connection string for postgres; empty values fall back to the defaults.
func Open(backend, path, dsn string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendJSON, "":
		if path == "" {
			path = DefaultJSONFile
		}
		return NewJSONStore(path), nil
	case BackendSQLite:
		if path == "" {
			path = DefaultSQLiteFile
		}
		return NewSQLiteStore(path)
	case BackendPostgres:
		if dsn == "" {
			dsn = DefaultPostgresDSN
		}
		return NewPostgresStore(dsn)
	case BackendMemory:
		return NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unknown leaderboard store %q (want json, sqlite, postgres or memory)", backend)
}
