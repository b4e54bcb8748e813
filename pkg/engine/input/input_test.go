package input

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		line   string
		action Action
		arg    string
	}{
		{"arrow_up", ActionMoveNorth, ""},
		{"w", ActionMoveNorth, ""},
		{"a", ActionMoveWest, ""},
		{"s", ActionMoveSouth, ""},
		{"d", ActionMoveEast, ""},
		{"h", ActionMoveWest, ""},
		{"j", ActionMoveSouth, ""},
		{"k", ActionMoveNorth, ""},
		{"l", ActionMoveEast, ""},
		{"move left", ActionMoveWest, ""},
		{"  MOVE   Up ", ActionMoveNorth, ""},
		{"go e", ActionMoveEast, ""},
		{"move w", ActionMoveNorth, ""},
		{"move a", ActionMoveWest, ""},
		{"move s", ActionMoveSouth, ""},
		{"move d", ActionMoveEast, ""},
		{"go K", ActionMoveNorth, ""},
		{"move sideways", ActionNone, "move sideways"},
		{"save Ann Smith", ActionSaveScore, "Ann Smith"},
		{"save", ActionSaveScore, ""},
		{"restart hard", ActionRestart, "hard"},
		{"restart", ActionRestart, ""},
		{"difficulty Easy", ActionDifficulty, "Easy"},
		{"pause", ActionPause, ""},
		{"status", ActionStatus, ""},
		{"scores", ActionScores, ""},
		{"dump", ActionDump, ""},
		{"quit", ActionQuit, ""},
		{"", ActionSelect, ""},
		{"enter", ActionSelect, ""},
		{"dance", ActionNone, "dance"},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got := Parse(tt.line)
			if got.Action != tt.action || got.Arg != tt.arg {
				t.Errorf("Parse(%q) = {%s %q}, want {%s %q}", tt.line, ActionName(got.Action), got.Arg, ActionName(tt.action), tt.arg)
			}
		})
	}
}

func TestActionDirection_RoundTrip(t *testing.T) {
	for _, a := range []Action{ActionMoveNorth, ActionMoveSouth, ActionMoveWest, ActionMoveEast} {
		dir, ok := ActionDirection(a)
		if !ok {
			t.Fatalf("ActionDirection(%s) not ok", ActionName(a))
		}
		if back := DirectionAction(dir); back != a {
			t.Errorf("DirectionAction(%v) = %s, want %s", dir, ActionName(back), ActionName(a))
		}
	}
	if _, ok := ActionDirection(ActionPause); ok {
		t.Error("ActionDirection(Pause) reported a direction")
	}
}

func TestArrowCode(t *testing.T) {
	for b, want := range map[byte]string{'A': "arrow_up", 'B': "arrow_down", 'C': "arrow_right", 'D': "arrow_left", 'Z': ""} {
		if got := arrowCode(b); got != want {
			t.Errorf("arrowCode(%q) = %q, want %q", b, got, want)
		}
	}
}
