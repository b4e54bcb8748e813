package gameplay

import (
	"context"
	"strings"

	"treasurehunt/pkg/game/leaderboard"
	"treasurehunt/pkg/game/rules"
	"treasurehunt/pkg/game/state"
)

// TogglePause pauses or resumes the session clock. Returns true when the session is now paused.
// Game over sessions cannot be paused.
func TogglePause(s *state.GameSession) (bool, error) {
	if _, err := Poll(s); err != nil {
		return false, err
	}
	if s.IsOver() {
		logMessage(s, "IGNORED_GAME_OVER")
		return false, nil
	}

	if s.Clock.Paused() {
		s.Clock.Resume()
		logMessage(s, "RESUMED")
		return false, nil
	}
	s.Clock.Pause()
	logMessage(s, "PAUSED")
	return true, nil
}

// ChangeDifficulty switches to the named preset and restarts. Unknown names leave the
// session untouched and return false.
func ChangeDifficulty(s *state.GameSession, value string) (bool, error) {
	d, ok := rules.ParseDifficulty(value)
	if !ok {
		logMessage(s, "UNKNOWN_DIFFICULTY", value)
		return false, nil
	}
	if err := Restart(s, &d); err != nil {
		return false, err
	}
	return true, nil
}

// SubmitStatus is the result of a score submission
type SubmitStatus int

const (
	SubmitAccepted SubmitStatus = iota
	SubmitRejected
)

// String returns the name of the status
func (st SubmitStatus) String() string {
	if st == SubmitAccepted {
		return "accepted"
	}
	return "rejected"
}

// MarshalText encodes the status by name
func (st SubmitStatus) MarshalText() ([]byte, error) {
	return []byte(st.String()), nil
}

// SubmitResult carries the submitted entry and the leaderboard after submission
type SubmitResult struct {
	Status      SubmitStatus        `json:"status"`
	Entry       leaderboard.Entry   `json:"entry"`
	Leaderboard []leaderboard.Entry `json:"leaderboard"`
}

// SubmitScore records the player's current score under name. Blank names are rejected.
func SubmitScore(ctx context.Context, s *state.GameSession, board *leaderboard.Board, name string) SubmitResult {
	name = strings.TrimSpace(name)
	if name == "" {
		logMessage(s, "NAME_REQUIRED")
		return SubmitResult{Status: SubmitRejected, Leaderboard: board.Load(ctx)}
	}

	entry := leaderboard.NewEntry(name, s.Player.Score, s.Player.Level, s.Player.TreasuresCollected, s.Clock.Now())
	entries := board.Submit(ctx, entry)
	logMessage(s, "SCORE_SAVED", entry.Score, entry.Name)
	return SubmitResult{Status: SubmitAccepted, Entry: entry, Leaderboard: entries}
}
