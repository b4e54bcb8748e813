package gameplay

import (
	"treasurehunt/pkg/engine/world"
	"treasurehunt/pkg/game/state"
)

// Outcome tells whether a command took effect
type Outcome int

const (
	// OutcomeMoved means the player moved and the move was resolved.
	OutcomeMoved Outcome = iota
	// OutcomeBlocked means the target was off the board; nothing changed.
	OutcomeBlocked
	// OutcomeIgnored means the session was paused or over; nothing changed.
	OutcomeIgnored
)

// String returns the name of the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeBlocked:
		return "blocked"
	default:
		return "ignored"
	}
}

// MarshalText encodes the outcome by name
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// MoveResult describes the effect of one Move
type MoveResult struct {
	Outcome  Outcome        `json:"outcome"`
	From     world.Position `json:"from"`
	Position world.Position `json:"position"`
	Events   []Event        `json:"events"`
	// LevelUp is set when the move cleared the last treasure.
	LevelUp bool `json:"level_up"`
	// RoundEnded is set when the board the move started on is gone: level-up, respawn or game over.
	RoundEnded bool            `json:"round_ended"`
	EndReason  state.EndReason `json:"end_reason,omitempty"`
	Status     state.Status    `json:"status"`
}

// CanEnter checks if the player can step onto p
func CanEnter(s *state.GameSession, p world.Position) bool {
	return s.Grid != nil && s.Grid.Contains(p)
}

// Move moves the player one cell and resolves whatever is there.
// Moves while paused or after game over are ignored; moves off the board are blocked.
// Neither changes any state. The error is only set when a new board cannot be generated.
func Move(s *state.GameSession, dir world.Direction) (MoveResult, error) {
	res := MoveResult{
		From:     s.Player.Position,
		Position: s.Player.Position,
		Events:   []Event{},
	}

	expired, err := Poll(s)
	if err != nil {
		return finish(s, res), err
	}
	if len(expired) > 0 {
		res.Outcome = OutcomeIgnored
		res.Events = append(res.Events, expired...)
		res.RoundEnded = true
		return finish(s, res), nil
	}

	if s.IsPaused() {
		res.Outcome = OutcomeIgnored
		logMessage(s, "IGNORED_PAUSED")
		return finish(s, res), nil
	}
	if s.IsOver() || !dir.IsValid() {
		res.Outcome = OutcomeIgnored
		if s.IsOver() {
			logMessage(s, "IGNORED_GAME_OVER")
		}
		return finish(s, res), nil
	}

	target := s.Player.Position.Step(dir)
	if !CanEnter(s, target) {
		res.Outcome = OutcomeBlocked
		logMessage(s, "BLOCKED")
		return finish(s, res), nil
	}

	MoveCell(s, target)
	if ev, ok := resolveContent(s, s.Grid.CellAt(target)); ok {
		res.Events = append(res.Events, ev)
	}

	events, err := checkRoundEnd(s, &res)
	res.Events = append(res.Events, events...)
	return finish(s, res), err
}

// MoveCell places the player on p, counts the move and updates visibility
func MoveCell(s *state.GameSession, p world.Position) {
	s.Player.Position = p
	s.Player.MovesUsed++
	UpdateVisibility(s)
}

// checkRoundEnd runs the post-move checks in order: level-up, lives, then budgets
func checkRoundEnd(s *state.GameSession, res *MoveResult) ([]Event, error) {
	switch {
	case s.TreasureRemaining() == 0:
		res.LevelUp = true
		res.RoundEnded = true
		return []Event{EventLevelUp}, levelUp(s)

	case s.Player.Lives <= 0:
		res.RoundEnded = true
		endGame(s, state.EndLivesExhausted)
		return []Event{EventGameOver}, nil

	case s.Config.HasMoveBudget() && s.Player.MovesUsed >= s.Config.MoveBudget:
		res.RoundEnded = true
		return budgetExhausted(s, state.EndMovesExhausted)

	case s.Config.HasTimeBudget() && s.Elapsed() >= s.Config.TimeBudget:
		res.RoundEnded = true
		return budgetExhausted(s, state.EndTimeExhausted)
	}
	return nil, nil
}

func finish(s *state.GameSession, res MoveResult) MoveResult {
	res.Position = s.Player.Position
	res.Status = s.Status
	res.EndReason = s.EndReason
	return res
}
