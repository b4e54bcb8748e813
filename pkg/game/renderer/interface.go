package renderer

import (
	"fmt"

	"treasurehunt/pkg/engine/input"
	"treasurehunt/pkg/game/gameplay"
	"treasurehunt/pkg/game/leaderboard"
	"treasurehunt/pkg/game/messages"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleFog
	StyleFloor
	StyleAction
	StyleActionShort
	StyleDenied
	StyleItem
	StyleSubtle
	StylePlayer
	StyleTreasure
	StyleCoin
	StyleHeart
	StyleTrap
)

// Renderer defines the interface for game rendering backends.
// The terminal renderer is the only one shipped; the HTTP API serves snapshots as JSON instead.
type Renderer interface {
	// Init initializes the renderer (colors, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete game frame
	// This includes the board, status bar, messages, and input prompt
	RenderFrame(snap gameplay.Snapshot)

	// ShowScores renders the leaderboard
	ShowScores(entries []leaderboard.Entry)

	// GetInput gets the next player command as an Intent
	GetInput() input.Intent

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string

	// ShowMessage displays a message to the user
	ShowMessage(msg string)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame renders a complete game frame
func RenderFrame(snap gameplay.Snapshot) {
	if Current != nil {
		Current.RenderFrame(snap)
	}
}

// ShowScores renders the leaderboard with the current renderer
func ShowScores(entries []leaderboard.Entry) {
	if Current != nil {
		Current.ShowScores(entries)
	}
}

// GetInput gets user input from the current renderer
func GetInput() input.Intent {
	if Current != nil {
		return Current.GetInput()
	}
	return input.Intent{Action: input.ActionQuit}
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

// FormatText formats a message with markup
func FormatText(msg string, args ...any) string {
	if Current != nil {
		return Current.FormatText(msg, args...)
	}
	return messages.Strip(fmt.Sprintf(msg, args...))
}

// ShowMessage displays a message with the current renderer
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}
