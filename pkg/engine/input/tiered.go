package input

import (
	"sort"
	"strings"
	"time"

	"treasurehunt/pkg/engine/world"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
	DeviceHTTP
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// Game commands
	ActionStatus
	ActionRestart
	ActionPause
	ActionSaveScore
	ActionDifficulty
	ActionScores

	// Meta / UI
	ActionSelect
	ActionHelp
	ActionDump
	ActionQuit
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
// Arg carries the rest of the command line, e.g. the name for ActionSaveScore.
type Intent struct {
	Action Action
	Arg    string
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "arrow_up", "move left", "save Ann").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Terminal input is line based, so this only normalizes whitespace.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   strings.TrimSpace(raw.Code),
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (arrows, WASD, Vim, words)
	"arrow_up": ActionMoveNorth,
	"w":        ActionMoveNorth,
	"k":        ActionMoveNorth,
	"up":       ActionMoveNorth,
	"north":    ActionMoveNorth,

	"arrow_down": ActionMoveSouth,
	"s":          ActionMoveSouth,
	"j":          ActionMoveSouth,
	"down":       ActionMoveSouth,
	"south":      ActionMoveSouth,

	"arrow_left": ActionMoveWest,
	"a":          ActionMoveWest,
	"h":          ActionMoveWest,
	"left":       ActionMoveWest,
	"west":       ActionMoveWest,

	"arrow_right": ActionMoveEast,
	"d":           ActionMoveEast,
	"l":           ActionMoveEast,
	"right":       ActionMoveEast,
	"east":        ActionMoveEast,

	// Game commands
	"status":     ActionStatus,
	"restart":    ActionRestart,
	"reset":      ActionRestart,
	"r":          ActionRestart,
	"pause":      ActionPause,
	"resume":     ActionPause,
	"p":          ActionPause,
	"save":       ActionSaveScore,
	"difficulty": ActionDifficulty,
	"scores":     ActionScores,

	"leaderboard": ActionScores,

	// Meta
	"enter":  ActionSelect,
	"select": ActionSelect,
	"help":   ActionHelp,
	"?":      ActionHelp,
	"dump":   ActionDump,
	"quit":   ActionQuit,
	"exit":   ActionQuit,
	"q":      ActionQuit,
}

// moveVerbs introduce a direction argument, as in "move left"
var moveVerbs = map[string]bool{
	"move": true,
	"go":   true,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
// The first word selects the action; the remainder, with its case kept, becomes Arg.
// An empty line is a bare Enter and maps to ActionSelect.
func MapToIntent(ev DebouncedInput) Intent {
	if ev.Code == "" {
		return Intent{Action: ActionSelect}
	}

	verb, arg, _ := strings.Cut(ev.Code, " ")
	verb = strings.ToLower(verb)
	arg = strings.TrimSpace(arg)

	if moveVerbs[verb] {
		word, _, _ := strings.Cut(arg, " ")
		word = strings.ToLower(word)
		// Bound keys win so "move w" goes where a bare "w" goes.
		if act, ok := bindings[word]; ok && IsMove(act) {
			return Intent{Action: act}
		}
		if dir, ok := world.ParseDirection(word); ok {
			return Intent{Action: DirectionAction(dir)}
		}
		return Intent{Action: ActionNone, Arg: ev.Code}
	}

	if act, ok := bindings[verb]; ok {
		return Intent{Action: act, Arg: arg}
	}
	return Intent{Action: ActionNone, Arg: ev.Code}
}

// Parse maps a command line typed by the player to an Intent
func Parse(line string) Intent {
	return MapToIntent(NewDebouncedInput(RawInput{Device: DeviceTerminal, Code: line}))
}

// IsMove returns true for the four movement actions
func IsMove(a Action) bool {
	return a >= ActionMoveNorth && a <= ActionMoveEast
}

// DirectionAction returns the movement action for a direction
func DirectionAction(dir world.Direction) Action {
	switch dir {
	case world.Up:
		return ActionMoveNorth
	case world.Down:
		return ActionMoveSouth
	case world.Left:
		return ActionMoveWest
	case world.Right:
		return ActionMoveEast
	default:
		return ActionNone
	}
}

// ActionDirection returns the direction of a movement action
func ActionDirection(a Action) (world.Direction, bool) {
	switch a {
	case ActionMoveNorth:
		return world.Up, true
	case ActionMoveSouth:
		return world.Down, true
	case ActionMoveWest:
		return world.Left, true
	case ActionMoveEast:
		return world.Right, true
	default:
		return world.Up, false
	}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionStatus:
		return "Status"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionSaveScore:
		return "Save Score"
	case ActionDifficulty:
		return "Difficulty"
	case ActionScores:
		return "Scores"
	case ActionSelect:
		return "Select"
	case ActionHelp:
		return "Help"
	case ActionDump:
		return "Dump Board"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Ensure stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
