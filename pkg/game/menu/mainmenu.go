package menu

import (
	"context"

	"github.com/leonelquinteros/gotext"

	"treasurehunt/pkg/game/leaderboard"
	"treasurehunt/pkg/game/rules"
)

// MainMenuAction represents the action type for main menu items.
type MainMenuAction int

const (
	MainMenuActionPlay MainMenuAction = iota
	MainMenuActionControls
	MainMenuActionLeaderboard
	MainMenuActionQuit
)

// MainMenuItem represents a menu item in the main menu.
type MainMenuItem struct {
	Label      string
	Action     MainMenuAction
	Difficulty rules.Difficulty
}

// GetLabel returns the display label for this menu item.
func (m *MainMenuItem) GetLabel() string {
	return m.Label
}

// IsSelectable returns whether this item can be selected.
func (m *MainMenuItem) IsSelectable() bool {
	return true
}

// GetHelpText returns help text for this menu item.
func (m *MainMenuItem) GetHelpText() string {
	switch m.Action {
	case MainMenuActionPlay:
		cfg := rules.Base(m.Difficulty)
		return gotext.Get("MENU_PLAY_HELP", cfg.Rows, cfg.Cols, cfg.Treasures, cfg.Traps)
	case MainMenuActionControls:
		return gotext.Get("MENU_CONTROLS_HELP")
	case MainMenuActionLeaderboard:
		return gotext.Get("MENU_LEADERBOARD_HELP")
	case MainMenuActionQuit:
		return gotext.Get("MENU_QUIT_HELP")
	default:
		return ""
	}
}

// MainMenuHandler handles the main menu.
type MainMenuHandler struct {
	ctx   context.Context
	board *leaderboard.Board

	selected   *MainMenuItem
	shouldQuit bool
}

// NewMainMenuHandler creates a new main menu handler. board may be nil.
func NewMainMenuHandler(ctx context.Context, board *leaderboard.Board) *MainMenuHandler {
	return &MainMenuHandler{ctx: ctx, board: board}
}

// GetTitle returns the menu title.
func (h *MainMenuHandler) GetTitle() string {
	return gotext.Get("TITLE")
}

// GetInstructions returns the menu instructions.
func (h *MainMenuHandler) GetInstructions(selected MenuItem) string {
	return gotext.Get("MENU_INSTRUCTIONS")
}

// OnSelect is called when an item is selected.
func (h *MainMenuHandler) OnSelect(item MenuItem, index int) {}

// OnActivate is called when an item is activated.
func (h *MainMenuHandler) OnActivate(item MenuItem, index int) (shouldClose bool, helpText string) {
	mainItem, ok := item.(*MainMenuItem)
	if !ok {
		return false, ""
	}

	switch mainItem.Action {
	case MainMenuActionPlay:
		h.selected = mainItem
		return true, ""
	case MainMenuActionControls:
		controls := NewControlsMenuHandler()
		RunMenu(controls.GetMenuItems(), controls)
		return false, ""
	case MainMenuActionLeaderboard:
		return false, h.topScore()
	case MainMenuActionQuit:
		h.shouldQuit = true
		return true, ""
	}
	return false, ""
}

// topScore describes the best leaderboard entry
func (h *MainMenuHandler) topScore() string {
	if h.board == nil {
		return gotext.Get("NO_SCORES")
	}
	entries := h.board.Load(h.ctx)
	if len(entries) == 0 {
		return gotext.Get("NO_SCORES")
	}
	best := entries[0]
	return gotext.Get("MENU_TOP_SCORE", best.Name, best.Score, best.Level)
}

// OnExit is called when the menu is exited.
func (h *MainMenuHandler) OnExit() {
	if h.selected == nil {
		h.shouldQuit = true
	}
}

// ShouldQuit returns true if the player left the menu without picking a game.
func (h *MainMenuHandler) ShouldQuit() bool {
	return h.shouldQuit
}

// GetSelectedDifficulty returns the difficulty the player chose.
func (h *MainMenuHandler) GetSelectedDifficulty() rules.Difficulty {
	if h.selected == nil {
		return rules.Normal
	}
	return h.selected.Difficulty
}

// GetMenuItems returns the menu items for the main menu.
func (h *MainMenuHandler) GetMenuItems() []MenuItem {
	items := []MenuItem{}
	for _, d := range []rules.Difficulty{rules.Easy, rules.Normal, rules.Hard} {
		items = append(items, &MainMenuItem{
			Label:      gotext.Get("MENU_PLAY", d),
			Action:     MainMenuActionPlay,
			Difficulty: d,
		})
	}
	return append(items,
		&MainMenuItem{Label: gotext.Get("MENU_CONTROLS"), Action: MainMenuActionControls},
		&MainMenuItem{Label: gotext.Get("MENU_LEADERBOARD"), Action: MainMenuActionLeaderboard},
		&MainMenuItem{Label: gotext.Get("MENU_QUIT"), Action: MainMenuActionQuit},
	)
}

// RunMainMenu runs the main menu and returns the chosen difficulty.
// ok is false when the player quit instead.
func RunMainMenu(ctx context.Context, board *leaderboard.Board) (d rules.Difficulty, ok bool) {
	handler := NewMainMenuHandler(ctx, board)
	RunMenu(handler.GetMenuItems(), handler)

	if handler.ShouldQuit() {
		return rules.Normal, false
	}
	return handler.GetSelectedDifficulty(), true
}
