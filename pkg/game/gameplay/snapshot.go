package gameplay

import (
	"treasurehunt/pkg/engine/world"
	"treasurehunt/pkg/game/rules"
	"treasurehunt/pkg/game/state"
)

// CellView is what a host may show for one cell. Content is nil while the cell is concealed.
type CellView struct {
	Visible bool               `json:"visible"`
	Content *world.CellContent `json:"content,omitempty"`
}

// Snapshot is a read-only view of a session for renderers and the HTTP API.
// It never carries the content of a concealed cell.
type Snapshot struct {
	Rows  int          `json:"rows"`
	Cols  int          `json:"cols"`
	Cells [][]CellView `json:"cells"`

	Player       world.Position   `json:"player"`
	Score        int              `json:"score"`
	Lives        int              `json:"lives"`
	MaxLives     int              `json:"max_lives"`
	Level        int              `json:"level"`
	Treasures    int              `json:"treasures_collected"`
	TreasureLeft int              `json:"treasure_left"`
	MovesUsed    int              `json:"moves_used"`
	MovesLeft    *int             `json:"moves_left"`
	Elapsed      int              `json:"elapsed_seconds"`
	TimeLeft     *int             `json:"time_left_seconds"`
	Status       state.Status     `json:"status"`
	EndReason    state.EndReason  `json:"end_reason,omitempty"`
	Paused       bool             `json:"paused"`
	Difficulty   rules.Difficulty `json:"difficulty"`
	Visibility   world.Shape      `json:"visibility"`
	Messages     []string         `json:"messages"`
}

// TakeSnapshot captures the session as the player currently sees it
func TakeSnapshot(s *state.GameSession) Snapshot {
	snap := Snapshot{
		Player:       s.Player.Position,
		Score:        s.Player.Score,
		Lives:        s.Player.Lives,
		MaxLives:     s.Config.MaxLives,
		Level:        s.Player.Level,
		Treasures:    s.Player.TreasuresCollected,
		TreasureLeft: s.TreasureRemaining(),
		MovesUsed:    s.Player.MovesUsed,
		Elapsed:      int(s.Elapsed().Seconds()),
		Status:       s.Status,
		EndReason:    s.EndReason,
		Paused:       s.IsPaused(),
		Difficulty:   s.Difficulty,
		Visibility:   s.Config.Visibility.Shape,
		Messages:     append([]string(nil), s.Messages...),
	}
	if left, ok := s.MovesRemaining(); ok {
		snap.MovesLeft = &left
	}
	if left, ok := s.TimeRemaining(); ok {
		secs := int(left.Seconds())
		snap.TimeLeft = &secs
	}

	if s.Grid == nil {
		return snap
	}
	snap.Rows, snap.Cols = s.Grid.Rows(), s.Grid.Cols()
	snap.Cells = make([][]CellView, snap.Rows)
	for row := range snap.Cells {
		snap.Cells[row] = make([]CellView, snap.Cols)
	}
	s.Grid.ForEachCell(func(row, col int, cell *world.Cell) {
		if !s.IsVisible(cell.Position()) {
			return
		}
		content := cell.Content
		snap.Cells[row][col] = CellView{Visible: true, Content: &content}
	})
	return snap
}

// At returns the view of (row, col), or a concealed view when out of range
func (snap Snapshot) At(row, col int) CellView {
	if row < 0 || row >= len(snap.Cells) || col < 0 || col >= len(snap.Cells[row]) {
		return CellView{}
	}
	return snap.Cells[row][col]
}
