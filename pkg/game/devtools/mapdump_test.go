package devtools

import (
	"bytes"
	"strings"
	"testing"

	"treasurehunt/pkg/engine/world"
	"treasurehunt/pkg/game/rules"
	"treasurehunt/pkg/game/state"
)

func newDumpSession() *state.GameSession {
	s := state.NewGameSession(rules.Normal, 42, nil)
	s.Config = s.ConfigFor(1)
	s.Grid = world.NewGrid(3, 4)
	s.Grid.Place(world.Pos(0, 1), world.Treasure)
	s.Grid.Place(world.Pos(2, 3), world.Trap)
	s.Player.Position = world.Pos(0, 0)
	s.RevealAround()
	return s
}

func TestDumpBoard(t *testing.T) {
	s := newDumpSession()

	var buf bytes.Buffer
	if err := DumpBoard(&buf, s); err != nil {
		t.Fatalf("DumpBoard: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"seed: 42",
		"grid_rows: 3",
		"grid_cols: 4",
		"player_cell: 0,0",
		// revealed map: square radius 1 around the corner
		"@T##\n..##\n####\n",
		// full map
		"@T..\n....\n...X\n",
		"treasure: 1\n  row: 0 col: 1 revealed: true",
		"trap: 1\n  row: 2 col: 3 revealed: false",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q\n%s", want, out)
		}
	}
}

func TestDumpBoard_NoGrid(t *testing.T) {
	s := state.NewGameSession(rules.Easy, 1, nil)
	if err := DumpBoard(&bytes.Buffer{}, s); err == nil {
		t.Error("expected an error for a session without a board")
	}
}

func TestDumpBoardToFile(t *testing.T) {
	t.Chdir(t.TempDir())
	path, err := DumpBoardToFile(newDumpSession())
	if err != nil {
		t.Fatalf("DumpBoardToFile: %v", err)
	}
	if !strings.HasSuffix(path, mapDumpFilename) {
		t.Errorf("path = %q, want suffix %q", path, mapDumpFilename)
	}
}
