// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"treasurehunt/pkg/engine/world"
	"treasurehunt/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// cellSymbol returns the single-character symbol for a cell (no player overlay).
// If revealedOnly is true, cells the player cannot see return '#'.
func cellSymbol(s *state.GameSession, cell *world.Cell, revealedOnly bool) rune {
	if cell == nil {
		return '#'
	}
	if revealedOnly && !s.Revealed.Has(cell.Position()) {
		return '#'
	}
	switch cell.Content {
	case world.Treasure:
		return 'T'
	case world.Coin:
		return 'C'
	case world.Heart:
		return 'H'
	case world.Trap:
		return 'X'
	default:
		return '.'
	}
}

// writeMapGrid writes the board to w with the player overlay
func writeMapGrid(w io.Writer, s *state.GameSession, revealedOnly bool) {
	player := s.Player.Position
	for row := 0; row < s.Grid.Rows(); row++ {
		for col := 0; col < s.Grid.Cols(); col++ {
			if row == player.Row && col == player.Col {
				fmt.Fprint(w, "@")
				continue
			}
			fmt.Fprintf(w, "%c", cellSymbol(s, s.Grid.GetCell(row, col), revealedOnly))
		}
		fmt.Fprintln(w)
	}
}

// DumpBoard writes a debug dump of the session to w: metadata, legend, the revealed map,
// the full map and the positions of every item.
func DumpBoard(w io.Writer, s *state.GameSession) error {
	if s.Grid == nil {
		return fmt.Errorf("no grid")
	}

	bw := bufio.NewWriter(w)
	player := s.Player.Position
	cfg := s.Config

	// --- Metadata ---
	fmt.Fprintln(bw, "=== BOARD DUMP ===")
	fmt.Fprintln(bw, "")
	fmt.Fprintln(bw, "--- Metadata ---")
	fmt.Fprintf(bw, "difficulty: %s\n", s.Difficulty)
	fmt.Fprintf(bw, "seed: %d\n", s.Seed)
	fmt.Fprintf(bw, "level: %d\n", s.Player.Level)
	fmt.Fprintf(bw, "grid_rows: %d\n", s.Grid.Rows())
	fmt.Fprintf(bw, "grid_cols: %d\n", s.Grid.Cols())
	fmt.Fprintf(bw, "coordinate_system: row,col (0-based, row=vertical, col=horizontal)\n")
	fmt.Fprintf(bw, "player_cell: %d,%d\n", player.Row, player.Col)
	fmt.Fprintf(bw, "score: %d\n", s.Player.Score)
	fmt.Fprintf(bw, "lives: %d/%d\n", s.Player.Lives, cfg.MaxLives)
	fmt.Fprintf(bw, "moves_used: %d\n", s.Player.MovesUsed)
	fmt.Fprintf(bw, "move_budget: %d\n", cfg.MoveBudget)
	fmt.Fprintf(bw, "time_budget: %s\n", cfg.TimeBudget)
	fmt.Fprintf(bw, "elapsed: %s\n", s.Elapsed().Truncate(time.Second))
	fmt.Fprintf(bw, "visibility: %s radius %d %s\n", cfg.Visibility.Shape, cfg.Visibility.Radius, cfg.Visibility.Mode)
	fmt.Fprintf(bw, "status: %s\n", s.Status)
	if s.EndReason != state.EndNone {
		fmt.Fprintf(bw, "end_reason: %s\n", s.EndReason)
	}
	fmt.Fprintln(bw, "")

	// --- Legend ---
	fmt.Fprintln(bw, "--- Legend (cell symbols) ---")
	fmt.Fprintln(bw, ". = empty  # = unrevealed  T = treasure  C = coin  H = heart  X = trap  @ = player")
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "--- Map (revealed cells only; unrevealed = #) ---")
	writeMapGrid(bw, s, true)
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "--- Map (fully revealed) ---")
	writeMapGrid(bw, s, false)
	fmt.Fprintln(bw, "")

	// --- Items ---
	fmt.Fprintln(bw, "--- Items (row,col) ---")
	for _, content := range world.SpecialContents() {
		positions := s.Grid.Positions(content)
		fmt.Fprintf(bw, "%s: %d\n", content, len(positions))
		for _, p := range positions {
			fmt.Fprintf(bw, "  row: %d col: %d revealed: %v\n", p.Row, p.Col, s.Revealed.Has(p))
		}
	}
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "=== END BOARD DUMP ===")
	return bw.Flush()
}

// DumpBoardToFile writes DumpBoard output to map.txt in the working directory and returns its path
func DumpBoardToFile(s *state.GameSession) (string, error) {
	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := DumpBoard(f, s); err != nil {
		return absPath, err
	}
	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
