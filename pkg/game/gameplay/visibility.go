package gameplay

import "treasurehunt/pkg/game/state"

// UpdateVisibility reveals the field of view around the player
func UpdateVisibility(s *state.GameSession) {
	if s.Grid == nil {
		return
	}
	s.RevealAround()
}
