// Package state holds the GameSession: everything one player's game needs between commands.
package state

import (
	"math/rand"
	"time"

	"github.com/zyedidia/generic/mapset"

	"treasurehunt/pkg/engine/world"
	"treasurehunt/pkg/game/rules"
)

// Status is the round state of a session
type Status int

// Session statuses. Pause is an overlay on Active, not a status of its own.
const (
	Active Status = iota
	GameOver
)

// String returns the name of the status
func (s Status) String() string {
	if s == GameOver {
		return "game_over"
	}
	return "active"
}

// MarshalText encodes the status by name
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// EndReason records why the game ended
type EndReason int

// End reasons
const (
	EndNone EndReason = iota
	EndLivesExhausted
	EndMovesExhausted
	EndTimeExhausted
)

// String returns the name of the reason
func (r EndReason) String() string {
	switch r {
	case EndLivesExhausted:
		return "lives_exhausted"
	case EndMovesExhausted:
		return "moves_exhausted"
	case EndTimeExhausted:
		return "time_exhausted"
	default:
		return ""
	}
}

// MarshalText encodes the reason by name
func (r EndReason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Player is the player's position and running totals
type Player struct {
	Position           world.Position
	Lives              int
	Score              int
	MovesUsed          int
	Level              int
	TreasuresCollected int
}

// GameSession is one player's game. It is owned by the caller and is not safe for
// concurrent use.
type GameSession struct {
	Difficulty rules.Difficulty

	// Base is the level-1 configuration; every round's Config is derived from it.
	Base rules.RoundConfig
	// Config is the configuration of the current round.
	Config rules.RoundConfig

	// GridRows and GridCols override the difficulty's board size when non-zero.
	GridRows int
	GridCols int
	// Policy overrides the difficulty's variant policy when non-nil.
	Policy *rules.Policy
	// Shape overrides the difficulty's visibility shape when non-nil.
	Shape *world.Shape

	Grid     *world.Grid
	Player   Player
	Revealed world.PositionSet

	Status    Status
	EndReason EndReason
	Clock     *Clock

	Seed int64
	Rng  *rand.Rand

	Messages []string
}

// NewGameSession creates a session without a board. now may be nil to use the wall clock.
func NewGameSession(d rules.Difficulty, seed int64, now func() time.Time) *GameSession {
	s := &GameSession{
		Difficulty: d,
		Base:       rules.Base(d),
		Revealed:   mapset.New[world.Position](),
		Clock:      NewClock(now),
		Seed:       seed,
		Rng:        rand.New(rand.NewSource(seed)),
		Messages:   make([]string, 0),
	}
	s.Config = s.Base
	s.Player = Player{Lives: s.Base.MaxLives, Level: 1}
	return s
}

// SetGridSize overrides the board size of every following round. Zero restores the preset.
func (s *GameSession) SetGridSize(rows, cols int) {
	s.GridRows, s.GridCols = rows, cols
	s.Base = s.baseFor(s.Difficulty)
}

// SetPolicy overrides the variant policy of every following round. nil restores the preset.
func (s *GameSession) SetPolicy(p *rules.Policy) {
	s.Policy = p
	s.Base = s.baseFor(s.Difficulty)
}

// SetVisibilityShape overrides the field-of-view shape of every following round.
// nil restores the preset.
func (s *GameSession) SetVisibilityShape(shape *world.Shape) {
	s.Shape = shape
	s.Base = s.baseFor(s.Difficulty)
}

// SetDifficulty switches the preset used by every following round
func (s *GameSession) SetDifficulty(d rules.Difficulty) {
	s.Difficulty = d
	s.Base = s.baseFor(d)
}

func (s *GameSession) baseFor(d rules.Difficulty) rules.RoundConfig {
	cfg := rules.Base(d)
	if s.GridRows > 0 && s.GridCols > 0 {
		cfg = rules.WithGridSize(cfg, s.GridRows, s.GridCols)
	}
	if s.Policy != nil {
		cfg.Policy = *s.Policy
	}
	if s.Shape != nil {
		cfg.Visibility.Shape = *s.Shape
	}
	return cfg
}

// ConfigFor returns the round configuration for a level
func (s *GameSession) ConfigFor(level int) rules.RoundConfig {
	return rules.Scale(s.Base, level)
}

// IsPaused returns true while the pause overlay is on
func (s *GameSession) IsPaused() bool {
	return s.Clock.Paused()
}

// IsOver returns true once the game has ended
func (s *GameSession) IsOver() bool {
	return s.Status == GameOver
}

// Elapsed returns the active play time of the current round
func (s *GameSession) Elapsed() time.Duration {
	return s.Clock.Elapsed()
}

// TimeRemaining returns the time left in the round. ok is false when time is unlimited.
func (s *GameSession) TimeRemaining() (remaining time.Duration, ok bool) {
	if !s.Config.HasTimeBudget() {
		return 0, false
	}
	return max(0, s.Config.TimeBudget-s.Elapsed()), true
}

// MovesRemaining returns the moves left in the round. ok is false when moves are unlimited.
func (s *GameSession) MovesRemaining() (remaining int, ok bool) {
	if !s.Config.HasMoveBudget() {
		return 0, false
	}
	return max(0, s.Config.MoveBudget-s.Player.MovesUsed), true
}

// IsVisible reports whether the content of p may be shown to the player.
// While paused only the player's own cell is visible.
func (s *GameSession) IsVisible(p world.Position) bool {
	if p == s.Player.Position {
		return true
	}
	if s.IsPaused() {
		return false
	}
	return s.Revealed.Has(p)
}

// RevealAround updates the revealed set from the player's position. In persistent mode the
// field of view is added to it; in transient mode it is replaced by the field of view.
func (s *GameSession) RevealAround() {
	if s.Config.Visibility.Mode == world.RevealTransient {
		s.Revealed = world.VisibleSet(s.Grid, s.Player.Position, s.Config.Visibility)
		return
	}
	world.Reveal(s.Grid, s.Revealed, s.Player.Position, s.Config.Visibility)
}

// ResetRevealed forgets every seen cell
func (s *GameSession) ResetRevealed() {
	s.Revealed = mapset.New[world.Position]()
}

// TreasureRemaining returns how many treasures are still on the board
func (s *GameSession) TreasureRemaining() int {
	if s.Grid == nil {
		return 0
	}
	return s.Grid.Count(world.Treasure)
}

// AddMessage adds a message to the session's message log
func (s *GameSession) AddMessage(msg string) {
	const maxMessages = 5
	s.Messages = append(s.Messages, msg)

	// Keep only the last maxMessages
	if len(s.Messages) > maxMessages {
		s.Messages = s.Messages[len(s.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (s *GameSession) ClearMessages() {
	s.Messages = make([]string, 0)
}
