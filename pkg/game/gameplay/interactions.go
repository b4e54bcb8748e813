package gameplay

import (
	"github.com/leonelquinteros/gotext"

	"treasurehunt/pkg/engine/world"
	"treasurehunt/pkg/game/state"
)

// Event is something that happened while resolving a command
type Event string

// Events reported in MoveResult.Events
const (
	EventTreasure   Event = "treasure"
	EventCoin       Event = "coin"
	EventHeart      Event = "heart"
	EventTrap       Event = "trap"
	EventLevelUp    Event = "level_up"
	EventOutOfMoves Event = "out_of_moves"
	EventOutOfTime  Event = "out_of_time"
	EventLifeLost   Event = "life_lost"
	EventGameOver   Event = "game_over"
)

// resolveContent applies the item on cell to the player and clears the cell.
// Returns false when the cell was empty.
func resolveContent(s *state.GameSession, cell *world.Cell) (Event, bool) {
	if cell == nil {
		return "", false
	}

	cfg := s.Config
	p := &s.Player

	switch cell.Take() {
	case world.Treasure:
		p.Score += cfg.TreasureScore
		p.TreasuresCollected++
		logMessage(s, "FOUND_TREASURE", cfg.TreasureScore)
		return EventTreasure, true

	case world.Coin:
		p.Score += cfg.CoinScore
		logMessage(s, "FOUND_COIN", cfg.CoinScore)
		return EventCoin, true

	case world.Heart:
		p.Lives = min(cfg.MaxLives, p.Lives+1)
		p.Score += cfg.HeartScore
		logMessage(s, "FOUND_HEART", cfg.HeartScore, p.Lives)
		return EventHeart, true

	case world.Trap:
		p.Score -= cfg.TrapPenalty
		if cfg.Policy.ClampScore && p.Score < 0 {
			p.Score = 0
		}
		p.Lives = max(0, p.Lives-1)
		logMessage(s, "HIT_TRAP", cfg.TrapPenalty, p.Lives)
		return EventTrap, true
	}

	return "", false
}

// logMessage adds a catalog message to the session's message log
func logMessage(s *state.GameSession, key string, a ...any) {
	s.AddMessage(gotext.Get(key, a...))
}
