// Package gameplay provides the core game logic: movement, item interactions, round
// progression and the commands a host can issue against a GameSession.
package gameplay

import (
	"time"

	"treasurehunt/pkg/engine/world"
	"treasurehunt/pkg/game/generator"
	"treasurehunt/pkg/game/rules"
	"treasurehunt/pkg/game/state"
)

// Options configure a new session
type Options struct {
	Difficulty rules.Difficulty
	// Seed drives board generation; sessions with equal seeds and commands play out identically.
	Seed int64
	// Level is the starting level (for developer testing); values below 1 start at level 1.
	Level int
	// Rows and Cols override the difficulty's board size when both are positive.
	Rows int
	Cols int
	// Policy overrides the difficulty's variant policy when non-nil.
	Policy *rules.Policy
	// Shape overrides the difficulty's field-of-view shape when non-nil.
	Shape *world.Shape
	// Now is the time source; nil uses the wall clock.
	Now func() time.Time
}

// NewSession creates a session and starts its first round
func NewSession(opts Options) (*state.GameSession, error) {
	s := state.NewGameSession(opts.Difficulty, opts.Seed, opts.Now)
	if opts.Rows > 0 && opts.Cols > 0 {
		s.SetGridSize(opts.Rows, opts.Cols)
	}
	if opts.Policy != nil {
		s.SetPolicy(opts.Policy)
	}
	if opts.Shape != nil {
		s.SetVisibilityShape(opts.Shape)
	}

	if err := startGame(s, max(1, opts.Level)); err != nil {
		return nil, err
	}

	s.ClearMessages()
	logMessage(s, "WELCOME")
	showLevelObjectives(s)
	return s, nil
}

// BeginRound installs a board on the session: the player is placed at start, the
// revealed set, move counter and clock are reset, and the start area is revealed.
// Score, lives and level are left untouched.
func BeginRound(s *state.GameSession, cfg rules.RoundConfig, grid *world.Grid, start world.Position) {
	s.Config = cfg
	s.Grid = grid
	s.Player.Position = start
	s.Player.MovesUsed = 0
	s.ResetRevealed()
	s.Clock.Reset()
	UpdateVisibility(s)
}

// startGame resets the player and generates a fresh board at level
func startGame(s *state.GameSession, level int) error {
	cfg := s.ConfigFor(level)
	grid, start, err := generator.Generate(cfg, s.Rng)
	if err != nil {
		return err
	}

	s.Player = state.Player{
		Lives: cfg.MaxLives,
		Level: level,
	}
	s.Status = state.Active
	s.EndReason = state.EndNone
	BeginRound(s, cfg, grid, start)
	return nil
}

// Restart starts a new game from level 1. A non-nil difficulty switches the preset first.
// The score is zeroed unless the policy keeps it.
func Restart(s *state.GameSession, difficulty *rules.Difficulty) error {
	score := s.Player.Score
	if difficulty != nil {
		s.SetDifficulty(*difficulty)
	}

	if err := startGame(s, 1); err != nil {
		return err
	}
	if s.Config.Policy.KeepScoreOnRestart {
		s.Player.Score = score
	}

	s.ClearMessages()
	logMessage(s, "RESTARTED", s.Difficulty.String())
	showLevelObjectives(s)
	return nil
}

// levelUp awards the level bonus and moves the player to a fresh board one level up.
// The player keeps position, score and lives.
func levelUp(s *state.GameSession) error {
	s.Player.Score += s.Config.LevelBonus
	s.Player.Level++
	if err := nextRound(s); err != nil {
		return err
	}
	logMessage(s, "LEVEL_UP", s.Config.LevelBonus, s.Player.Level)
	showLevelObjectives(s)
	return nil
}

// respawn replaces the board with a fresh one on the same level
func respawn(s *state.GameSession) error {
	if err := nextRound(s); err != nil {
		return err
	}
	showLevelObjectives(s)
	return nil
}

// nextRound generates the board for the player's current level, keeping their position free
func nextRound(s *state.GameSession) error {
	cfg := s.ConfigFor(s.Player.Level)
	start := s.Player.Position
	if start.Row >= cfg.Rows || start.Col >= cfg.Cols {
		start = world.Pos(0, 0)
	}

	grid, err := generator.GenerateAround(cfg, s.Rng, start)
	if err != nil {
		return err
	}
	BeginRound(s, cfg, grid, start)
	return nil
}

// endGame freezes the session until the next restart
func endGame(s *state.GameSession, reason state.EndReason) {
	s.Status = state.GameOver
	s.EndReason = reason
	s.Clock.Stop()
	logMessage(s, "GAME_OVER", s.Player.Score, s.Player.Level)
}

// budgetExhausted applies the round's budget policy after moves or time ran out
func budgetExhausted(s *state.GameSession, reason state.EndReason) ([]Event, error) {
	var events []Event
	if reason == state.EndTimeExhausted {
		events = append(events, EventOutOfTime)
		logMessage(s, "OUT_OF_TIME")
	} else {
		events = append(events, EventOutOfMoves)
		logMessage(s, "OUT_OF_MOVES")
	}

	if s.Config.Policy.OnBudgetExhausted == rules.EndGame {
		endGame(s, reason)
		return append(events, EventGameOver), nil
	}

	s.Player.Lives = max(0, s.Player.Lives-1)
	events = append(events, EventLifeLost)
	logMessage(s, "LIFE_LOST", s.Player.Lives)
	if s.Player.Lives <= 0 {
		endGame(s, state.EndLivesExhausted)
		return append(events, EventGameOver), nil
	}
	return events, respawn(s)
}

// Poll applies an expired time budget. Hosts call it before rendering; every command calls
// it first. Returns the resulting events, or nil when nothing changed.
func Poll(s *state.GameSession) ([]Event, error) {
	if s.IsOver() || s.IsPaused() || !s.Config.HasTimeBudget() {
		return nil, nil
	}
	if s.Elapsed() < s.Config.TimeBudget {
		return nil, nil
	}
	return budgetExhausted(s, state.EndTimeExhausted)
}

// showLevelObjectives logs what the player has to find on this board
func showLevelObjectives(s *state.GameSession) {
	logMessage(s, "LEVEL_START", s.Player.Level, s.TreasureRemaining())
}
