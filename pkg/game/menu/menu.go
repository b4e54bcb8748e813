// Package menu provides a generic menu system for the terminal game.
package menu

import (
	engineinput "treasurehunt/pkg/engine/input"
	"treasurehunt/pkg/game/renderer"
)

// MenuItem represents a single item in a menu.
type MenuItem interface {
	// GetLabel returns the display label for this menu item.
	GetLabel() string
	// IsSelectable returns whether this item can be selected.
	IsSelectable() bool
	// GetHelpText returns optional help text for this item.
	GetHelpText() string
}

// MenuHandler handles menu item selection and activation.
type MenuHandler interface {
	// OnSelect is called when an item is selected (navigated to).
	OnSelect(item MenuItem, index int)

	// OnActivate is called when an item is activated (Enter pressed).
	// Returns true if the menu should close, and any help text to display.
	OnActivate(item MenuItem, index int) (shouldClose bool, helpText string)
	// OnExit is called when the menu is exited.
	OnExit()
	// GetTitle returns the menu title.
	GetTitle() string
	// GetInstructions returns the menu instructions.
	GetInstructions(selected MenuItem) string
}

// RunMenu runs a generic menu with the given items and handler until an
// activation closes it or the player quits.
func RunMenu(items []MenuItem, handler MenuHandler) {
	selected := firstSelectable(items)
	helpText := ""

	for {
		renderMenu(items, selected, helpText, handler)

		intent := renderer.GetInput()
		switch intent.Action {
		case engineinput.ActionMoveNorth:
			if i := stepSelection(items, selected, -1); i != selected {
				selected = i
				helpText = ""
				handler.OnSelect(items[selected], selected)
			}
		case engineinput.ActionMoveSouth:
			if i := stepSelection(items, selected, 1); i != selected {
				selected = i
				helpText = ""
				handler.OnSelect(items[selected], selected)
			}
		case engineinput.ActionSelect:
			if selected >= 0 && selected < len(items) && items[selected].IsSelectable() {
				shouldClose, newHelpText := handler.OnActivate(items[selected], selected)
				helpText = newHelpText
				if shouldClose {
					handler.OnExit()
					return
				}
			}
		case engineinput.ActionQuit:
			handler.OnExit()
			return
		default:
			// Ignore other actions while in menu
		}
	}
}

// firstSelectable returns the index of the first selectable item, or 0
func firstSelectable(items []MenuItem) int {
	for i, item := range items {
		if item.IsSelectable() {
			return i
		}
	}
	return 0
}

// stepSelection moves from selected to the next selectable item in direction
// step, wrapping around. It returns selected when nothing else is selectable.
func stepSelection(items []MenuItem, selected, step int) int {
	n := len(items)
	for k := 1; k < n; k++ {
		i := ((selected+step*k)%n + n) % n
		if items[i].IsSelectable() {
			return i
		}
	}
	return selected
}

// renderMenu draws the menu as a plain list through the current renderer
func renderMenu(items []MenuItem, selected int, helpText string, handler MenuHandler) {
	renderer.Clear()
	renderer.ShowMessage(renderer.StyleText(handler.GetTitle(), renderer.StyleAction))
	renderer.ShowMessage("")

	for i, item := range items {
		prefix := "  "
		if i == selected {
			prefix = "> "
		}
		label := item.GetLabel()
		if !item.IsSelectable() {
			label = renderer.StyleText(label, renderer.StyleSubtle)
		}
		renderer.ShowMessage(prefix + label)
	}
	renderer.ShowMessage("")

	var selectedItem MenuItem
	if selected >= 0 && selected < len(items) {
		selectedItem = items[selected]
	}
	if selectedItem != nil && selectedItem.GetHelpText() != "" {
		renderer.ShowMessage(renderer.StyleText(selectedItem.GetHelpText(), renderer.StyleSubtle))
	}
	if instructions := handler.GetInstructions(selectedItem); instructions != "" {
		renderer.ShowMessage(instructions)
	}
	if helpText != "" {
		renderer.ShowMessage(helpText)
	}
}
