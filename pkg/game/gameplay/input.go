package gameplay

import (
	"context"
	"strings"

	"github.com/leonelquinteros/gotext"

	engineinput "treasurehunt/pkg/engine/input"
	"treasurehunt/pkg/game/devtools"
	"treasurehunt/pkg/game/leaderboard"
	"treasurehunt/pkg/game/state"
)

// Reply tells the host what to do after an intent was processed
type Reply struct {
	// Quit is set when the player asked to leave.
	Quit bool
	// Move is the result of a movement intent.
	Move *MoveResult
	// Submit is the result of a save intent.
	Submit *SubmitResult
	// ShowScores asks the host to display Scores.
	ShowScores bool
	Scores     []leaderboard.Entry
}

// ProcessIntent handles a high-level input intent from the tiered input system.
// Feedback goes to the session's message log.
func ProcessIntent(ctx context.Context, s *state.GameSession, board *leaderboard.Board, intent engineinput.Intent) (Reply, error) {
	var reply Reply

	if dir, ok := engineinput.ActionDirection(intent.Action); ok {
		res, err := Move(s, dir)
		reply.Move = &res
		return reply, err
	}

	switch intent.Action {
	case engineinput.ActionSelect:
		// a bare Enter just redraws the board

	case engineinput.ActionNone:
		if intent.Arg != "" {
			logMessage(s, "UNKNOWN_COMMAND")
		}

	case engineinput.ActionStatus:
		if _, err := Poll(s); err != nil {
			return reply, err
		}
		s.AddMessage(StatusLine(s))

	case engineinput.ActionRestart:
		if intent.Arg == "" {
			return reply, Restart(s, nil)
		}
		_, err := ChangeDifficulty(s, intent.Arg)
		return reply, err

	case engineinput.ActionDifficulty:
		_, err := ChangeDifficulty(s, intent.Arg)
		return reply, err

	case engineinput.ActionPause:
		_, err := TogglePause(s)
		return reply, err

	case engineinput.ActionSaveScore:
		res := SubmitScore(ctx, s, board, intent.Arg)
		reply.Submit = &res
		reply.ShowScores = res.Status == SubmitAccepted
		reply.Scores = res.Leaderboard

	case engineinput.ActionScores:
		reply.ShowScores = true
		reply.Scores = board.Load(ctx)
		if len(reply.Scores) == 0 {
			logMessage(s, "NO_SCORES")
		}

	case engineinput.ActionHelp:
		logMessage(s, "HELP")

	case engineinput.ActionDump:
		path, err := devtools.DumpBoardToFile(s)
		if err != nil {
			logMessage(s, "MAP_DUMP_FAILED", err)
		} else {
			logMessage(s, "MAP_DUMPED", path)
		}

	case engineinput.ActionQuit:
		reply.Quit = true

	default:
		logMessage(s, "UNKNOWN_COMMAND")
	}

	return reply, nil
}

// StatusLine formats level, score, lives, treasure and the round budgets on one line
func StatusLine(s *state.GameSession) string {
	parts := []string{
		gotext.Get("STATUS_LINE", s.Player.Level, s.Player.Score, s.Player.Lives, s.TreasureRemaining()),
	}

	if s.Config.HasMoveBudget() {
		parts = append(parts, gotext.Get("STATUS_MOVES", s.Player.MovesUsed, s.Config.MoveBudget))
	} else {
		parts = append(parts, gotext.Get("STATUS_MOVES_UNLIMITED", s.Player.MovesUsed))
	}

	elapsed := int(s.Elapsed().Seconds())
	if left, ok := s.TimeRemaining(); ok {
		parts = append(parts, gotext.Get("STATUS_TIME", elapsed, int(left.Seconds())))
	} else {
		parts = append(parts, gotext.Get("STATUS_TIME_UNLIMITED", elapsed))
	}

	return strings.Join(parts, "   ")
}
