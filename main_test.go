package main

import (
	"context"
	"errors"
	"os"
	"testing"

	"treasurehunt/pkg/engine/world"
	"treasurehunt/pkg/game/leaderboard"
	"treasurehunt/pkg/game/messages"
	"treasurehunt/pkg/game/renderer"
)

func TestMain(m *testing.M) {
	messages.Init()
	// No renderer: input reads as quit and nothing is drawn.
	renderer.SetRenderer(nil)
	os.Exit(m.Run())
}

// closeCounter counts Close calls on top of an in-memory store
type closeCounter struct {
	*leaderboard.MemoryStore
	closed int
}

func (c *closeCounter) Close() error {
	c.closed++
	return c.MemoryStore.Close()
}

func TestWithBoard_ClosesStore(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name string
		err  error
	}{
		{"success", nil},
		{"failure", boom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := &closeCounter{MemoryStore: leaderboard.NewMemoryStore()}
			board := leaderboard.NewBoard(st, nil)

			err := withBoard(board, func(*leaderboard.Board) error { return tt.err })
			if !errors.Is(err, tt.err) {
				t.Errorf("withBoard = %v, want %v", err, tt.err)
			}
			if st.closed != 1 {
				t.Errorf("store closed %d times, want 1", st.closed)
			}
		})
	}
}

func TestNewSession_Flags(t *testing.T) {
	board := leaderboard.NewBoard(leaderboard.NewMemoryStore(), nil)
	ctx := context.Background()

	tests := []struct {
		name    string
		cfg     config
		rows    int
		shape   world.Shape
		wantErr bool
	}{
		{"hard preset", config{difficulty: "hard", seed: 3}, 7, world.ShapePlus, false},
		{"compact normal", config{difficulty: "normal", seed: 3, compact: true}, 5, world.ShapeSquare, false},
		{"diamond override", config{difficulty: "hard", seed: 3, visibility: "Diamond"}, 7, world.ShapeDiamond, false},
		{"unknown difficulty", config{difficulty: "nightmare"}, 0, 0, true},
		{"unknown shape", config{difficulty: "easy", visibility: "hexagon"}, 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := newSession(ctx, tt.cfg, board)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("newSession: %v", err)
			}
			if s.Grid.Rows() != tt.rows || s.Config.Visibility.Shape != tt.shape {
				t.Errorf("rows %d shape %v, want %d %v", s.Grid.Rows(), s.Config.Visibility.Shape, tt.rows, tt.shape)
			}
		})
	}
}

func TestNewSession_MenuQuit(t *testing.T) {
	board := leaderboard.NewBoard(leaderboard.NewMemoryStore(), nil)
	if _, err := newSession(context.Background(), config{}, board); !errors.Is(err, errQuit) {
		t.Errorf("newSession = %v, want errQuit", err)
	}
}

func TestRun_ReturnsOnQuit(t *testing.T) {
	board := leaderboard.NewBoard(leaderboard.NewMemoryStore(), nil)
	ctx := context.Background()
	s, err := newSession(ctx, config{difficulty: "easy", seed: 1}, board)
	if err != nil {
		t.Fatalf("newSession: %v", err)
	}
	if err := run(ctx, s, board); err != nil {
		t.Errorf("run = %v", err)
	}
}
