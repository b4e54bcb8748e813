package leaderboard

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// DefaultPostgresDSN is used when no connection string is configured
const DefaultPostgresDSN = "host=localhost user=treasure password=treasure dbname=treasurehunt sslmode=disable"

// PostgresStore keeps the leaderboard in a PostgreSQL table
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore connects to PostgreSQL and initializes the schema
func NewPostgresStore(connectionString string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &PostgresStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

func (ps *PostgresStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS leaderboard (
		place INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		score INTEGER NOT NULL,
		level INTEGER NOT NULL DEFAULT 1,
		treasures_collected INTEGER NOT NULL DEFAULT 0,
		date TEXT NOT NULL DEFAULT '',
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);
	`
	_, err := ps.db.Exec(schema)
	return err
}

// Load returns the entries in rank order
func (ps *PostgresStore) Load(ctx context.Context) ([]Entry, error) {
	rows, err := ps.db.QueryContext(ctx,
		`SELECT name, score, level, treasures_collected, date FROM leaderboard ORDER BY place`)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Name, &e.Score, &e.Level, &e.TreasuresCollected, &e.Date); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}
	return entries, nil
}

// Save replaces every row in one transaction
func (ps *PostgresStore) Save(ctx context.Context, entries []Entry) error {
	tx, err := ps.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM leaderboard`); err != nil {
		return fmt.Errorf("failed to clear leaderboard: %w", err)
	}

	query := `
	INSERT INTO leaderboard (place, name, score, level, treasures_collected, date)
	VALUES ($1, $2, $3, $4, $5, $6)
	`
	for i, e := range entries {
		if _, err := tx.ExecContext(ctx, query, i+1, e.Name, e.Score, e.Level, e.TreasuresCollected, e.Date); err != nil {
			return fmt.Errorf("failed to save entry %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit leaderboard: %w", err)
	}
	return nil
}

// Close closes the database connection
func (ps *PostgresStore) Close() error {
	return ps.db.Close()
}
