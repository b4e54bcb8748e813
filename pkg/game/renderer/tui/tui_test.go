package tui

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/gookit/color"

	"treasurehunt/pkg/engine/world"
	"treasurehunt/pkg/game/gameplay"
	"treasurehunt/pkg/game/leaderboard"
	"treasurehunt/pkg/game/messages"
	"treasurehunt/pkg/game/state"
)

func TestMain(m *testing.M) {
	messages.Init()
	os.Exit(m.Run())
}

func newTestRenderer() (*TUIRenderer, *bytes.Buffer) {
	var buf bytes.Buffer
	r := NewWithWriter(&buf)
	r.Init()
	return r, &buf
}

func contentPtr(c world.CellContent) *world.CellContent {
	return &c
}

// testSnapshot is a 3x3 board with the player in the top-left corner
func testSnapshot() gameplay.Snapshot {
	cells := make([][]gameplay.CellView, 3)
	for i := range cells {
		cells[i] = make([]gameplay.CellView, 3)
	}
	cells[0][0] = gameplay.CellView{Visible: true, Content: contentPtr(world.Empty)}
	cells[0][1] = gameplay.CellView{Visible: true, Content: contentPtr(world.Treasure)}
	cells[1][0] = gameplay.CellView{Visible: true, Content: contentPtr(world.Trap)}
	cells[1][1] = gameplay.CellView{Visible: true, Content: contentPtr(world.Empty)}

	moves := 58
	return gameplay.Snapshot{
		Rows:         3,
		Cols:         3,
		Cells:        cells,
		Player:       world.Pos(0, 0),
		Score:        10,
		Lives:        2,
		MaxLives:     3,
		Level:        1,
		TreasureLeft: 2,
		MovesUsed:    2,
		MovesLeft:    &moves,
		Elapsed:      12,
		Status:       state.Active,
		Messages:     []string{"Found a TREASURE{treasure}! +10"},
	}
}

func TestFormatText_AppliesMarkup(t *testing.T) {
	r, _ := newTestRenderer()
	got := color.ClearCode(r.FormatText("Found a TREASURE{treasure}! +%d, see ACTION{help}", 10))
	if got != "Found a treasure! +10, see help" {
		t.Errorf("FormatText = %q", got)
	}
}

func TestRenderFrame(t *testing.T) {
	r, buf := newTestRenderer()
	r.RenderFrame(testSnapshot())
	out := color.ClearCode(buf.String())

	for _, want := range []string{
		"Treasure Hunt  Level 1",
		PlayerIcon + " " + IconTreasure + " " + IconFog,
		IconTrap + " " + IconEmpty + " " + IconFog,
		"Score 10",
		"Moves 2/60",
		IconHeart + IconHeart + IconLostLife,
		"Found a treasure! +10",
		"# Edge #",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("frame missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "TREASURE{") {
		t.Error("frame contains raw markup")
	}
	if strings.Contains(out, "GAME OVER") {
		t.Error("active frame shows the game over banner")
	}
}

func TestRenderFrame_Banners(t *testing.T) {
	snap := testSnapshot()
	snap.Status = state.GameOver
	snap.EndReason = state.EndLivesExhausted

	r, buf := newTestRenderer()
	r.RenderFrame(snap)
	if out := color.ClearCode(buf.String()); !strings.Contains(out, "GAME OVER (lives exhausted)") {
		t.Errorf("game over banner missing\n%s", out)
	}

	snap = testSnapshot()
	snap.Paused = true
	r, buf = newTestRenderer()
	r.RenderFrame(snap)
	if out := color.ClearCode(buf.String()); !strings.Contains(out, "PAUSED") {
		t.Errorf("pause banner missing\n%s", out)
	}
}

func TestShowScores(t *testing.T) {
	r, buf := newTestRenderer()
	r.ShowScores(nil)
	if !strings.Contains(buf.String(), "No scores yet.") {
		t.Errorf("empty leaderboard output = %q", buf.String())
	}

	r, buf = newTestRenderer()
	r.ShowScores([]leaderboard.Entry{{Name: "Ann", Score: 30, Level: 2, TreasuresCollected: 3, Date: "2024-03-01 12:00"}})
	out := color.ClearCode(buf.String())
	if !strings.Contains(out, " 1. Ann") || !strings.Contains(out, "30 pts") {
		t.Errorf("leaderboard output = %q", out)
	}
}
