// Package leaderboard keeps the top scores. A Board ranks entries and persists the whole
// list through a Store after every submission.
package leaderboard

import (
	"context"
	"errors"
	"io"
	"log"
	"sort"
	"sync"
	"time"
)

// MaxEntries is the number of entries kept on the board
const MaxEntries = 10

// DateLayout is the layout of Entry.Date
const DateLayout = "2006-01-02 15:04"

// ErrCorrupt is returned by a Store whose data cannot be decoded
var ErrCorrupt = errors.New("leaderboard data is corrupt")

// Entry is one ranked score
type Entry struct {
	Name               string `json:"name"`
	Score              int    `json:"score"`
	Level              int    `json:"level"`
	TreasuresCollected int    `json:"treasures_collected"`
	Date               string `json:"date"`
}

// NewEntry creates an entry dated at t
func NewEntry(name string, score, level, treasures int, t time.Time) Entry {
	return Entry{
		Name:               name,
		Score:              score,
		Level:              level,
		TreasuresCollected: treasures,
		Date:               t.Format(DateLayout),
	}
}

// Store persists the ranked list as a whole
type Store interface {
	// Load returns the stored list. A store that was never written returns an empty list.
	Load(ctx context.Context) ([]Entry, error)
	// Save replaces the stored list.
	Save(ctx context.Context, entries []Entry) error
	Close() error
}

// Rank returns entries sorted by descending score and capped at MaxEntries.
// Entries with equal scores keep their relative order.
func Rank(entries []Entry) []Entry {
	ranked := make([]Entry, len(entries))
	copy(ranked, entries)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if len(ranked) > MaxEntries {
		ranked = ranked[:MaxEntries]
	}
	return ranked
}

// Board ranks submissions and writes them through to a Store.
// Store failures are logged and never returned: a board that cannot be read is empty.
type Board struct {
	mu     sync.Mutex
	store  Store
	logger *log.Logger
}

// NewBoard creates a board backed by store. logger may be nil to discard store errors.
func NewBoard(store Store, logger *log.Logger) *Board {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Board{store: store, logger: logger}
}

// Load returns the ranked list
func (b *Board) Load(ctx context.Context) []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.load(ctx)
}

// Submit adds an entry and returns the new ranked list. The new entry ranks below existing
// entries with the same score and is dropped if it does not make the top MaxEntries.
func (b *Board) Submit(ctx context.Context, e Entry) []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()

	ranked := Rank(append(b.load(ctx), e))
	b.save(ctx, ranked)
	return ranked
}

// Save ranks entries and replaces the stored list with them
func (b *Board) Save(ctx context.Context, entries []Entry) []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()

	ranked := Rank(entries)
	b.save(ctx, ranked)
	return ranked
}

// Close closes the underlying store
func (b *Board) Close() error {
	return b.store.Close()
}

func (b *Board) load(ctx context.Context) []Entry {
	entries, err := b.store.Load(ctx)
	if err != nil {
		b.logger.Printf("Cannot load leaderboard, starting empty: %v", err)
		return []Entry{}
	}
	return Rank(entries)
}

func (b *Board) save(ctx context.Context, entries []Entry) {
	if err := b.store.Save(ctx, entries); err != nil {
		b.logger.Printf("Cannot save leaderboard: %v", err)
	}
}
