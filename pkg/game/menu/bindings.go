package menu

import (
	"strings"

	"github.com/leonelquinteros/gotext"

	engineinput "treasurehunt/pkg/engine/input"
)

// BindingMenuItem lists the codes bound to one action.
type BindingMenuItem struct {
	Action engineinput.Action
}

// GetLabel returns the display label for this binding menu item.
func (b *BindingMenuItem) GetLabel() string {
	codes := engineinput.GetBindingsByAction()[b.Action]
	codeText := strings.Join(codes, ", ")
	if codeText == "" {
		codeText = "(unbound)"
	}
	return gotext.Get("MENU_BINDING", engineinput.ActionName(b.Action), codeText)
}

// IsSelectable returns whether this binding can be selected.
func (b *BindingMenuItem) IsSelectable() bool {
	return false
}

// GetHelpText returns help text for this binding.
func (b *BindingMenuItem) GetHelpText() string {
	return ""
}

// backMenuItem closes the menu it belongs to.
type backMenuItem struct{}

func (backMenuItem) GetLabel() string    { return gotext.Get("MENU_BACK") }
func (backMenuItem) IsSelectable() bool  { return true }
func (backMenuItem) GetHelpText() string { return "" }

// ControlsMenuHandler shows the current bindings, read only.
type ControlsMenuHandler struct {
	actions []engineinput.Action
}

// NewControlsMenuHandler creates a new controls menu handler.
func NewControlsMenuHandler() *ControlsMenuHandler {
	return &ControlsMenuHandler{
		actions: []engineinput.Action{
			engineinput.ActionMoveNorth,
			engineinput.ActionMoveSouth,
			engineinput.ActionMoveWest,
			engineinput.ActionMoveEast,
			engineinput.ActionStatus,
			engineinput.ActionPause,
			engineinput.ActionRestart,
			engineinput.ActionDifficulty,
			engineinput.ActionSaveScore,
			engineinput.ActionScores,
			engineinput.ActionHelp,
			engineinput.ActionDump,
			engineinput.ActionQuit,
		},
	}
}

// GetTitle returns the menu title.
func (h *ControlsMenuHandler) GetTitle() string {
	return gotext.Get("MENU_CONTROLS")
}

// GetInstructions returns the menu instructions.
func (h *ControlsMenuHandler) GetInstructions(selected MenuItem) string {
	return gotext.Get("HELP")
}

// OnSelect is called when an item is selected.
func (h *ControlsMenuHandler) OnSelect(item MenuItem, index int) {}

// OnActivate closes the menu; only the Back item is selectable.
func (h *ControlsMenuHandler) OnActivate(item MenuItem, index int) (shouldClose bool, helpText string) {
	return true, ""
}

// OnExit is called when the menu is exited.
func (h *ControlsMenuHandler) OnExit() {}

// GetMenuItems returns one row per action followed by Back.
func (h *ControlsMenuHandler) GetMenuItems() []MenuItem {
	items := make([]MenuItem, 0, len(h.actions)+1)
	for _, action := range h.actions {
		items = append(items, &BindingMenuItem{Action: action})
	}
	return append(items, backMenuItem{})
}
