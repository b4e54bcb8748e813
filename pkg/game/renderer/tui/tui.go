package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"treasurehunt/pkg/engine/input"
	"treasurehunt/pkg/engine/terminal"
	"treasurehunt/pkg/engine/world"
	"treasurehunt/pkg/game/gameplay"
	"treasurehunt/pkg/game/leaderboard"
	"treasurehunt/pkg/game/messages"
	"treasurehunt/pkg/game/renderer"
	"treasurehunt/pkg/game/state"
)

// Icon constants for Treasure Hunt
const (
	PlayerIcon   = "@"
	IconFog      = "▒"
	IconEmpty    = "·"
	IconTreasure = "◆"
	IconCoin     = "●"
	IconHeart    = "♥"
	IconTrap     = "✖"
	IconLostLife = "♡"
)

// westLabelWidth is the space reserved left of the board for the West label
const westLabelWidth = 12

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out io.Writer

	colorFog         color.Style
	colorFloor       color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorDenied      color.Style
	colorItem        color.Style
	colorSubtle      color.Style
	colorPlayer      color.Style
	colorTreasure    color.Style
	colorCoin        color.Style
	colorHeart       color.Style
	colorTrap        color.Style
}

// New creates a new TUI renderer writing to stdout
func New() *TUIRenderer {
	return NewWithWriter(os.Stdout)
}

// NewWithWriter creates a TUI renderer writing to w
func NewWithWriter(w io.Writer) *TUIRenderer {
	return &TUIRenderer{out: w}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorFog = color.Style{color.FgGray}
	t.colorFloor = color.Style{color.FgGray, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorItem = color.Style{color.FgMagenta}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorTreasure = color.Style{color.FgYellow, color.OpBold}
	t.colorCoin = color.Style{color.FgYellow}
	t.colorHeart = color.Style{color.FgRed}
	t.colorTrap = color.Style{color.FgRed, color.OpBold}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	terminal.Clear(t.out)
}

// GetInput gets user input from the terminal and returns a high-level Intent.
func (t *TUIRenderer) GetInput() input.Intent {
	return input.ReadIntent()
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleFog:
		return t.colorFog.Sprint(text)
	case renderer.StyleFloor:
		return t.colorFloor.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleActionShort:
		return t.colorActionShort.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleItem:
		return t.colorItem.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StylePlayer:
		return t.colorPlayer.Sprint(text)
	case renderer.StyleTreasure:
		return t.colorTreasure.Sprint(text)
	case renderer.StyleCoin:
		return t.colorCoin.Sprint(text)
	case renderer.StyleHeart:
		return t.colorHeart.Sprint(text)
	case renderer.StyleTrap:
		return t.colorTrap.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	return messages.Apply(fmt.Sprintf(msg, args...), t.styleMarkup)
}

// styleMarkup renders one FUNCTION{operand} span
func (t *TUIRenderer) styleMarkup(function, operand string) string {
	switch function {
	case "GT":
		return dynamicGet(operand)
	case "ITEM":
		return t.colorItem.Sprint(operand)
	case "ACTION":
		return t.colorActionShort.Sprint(operand[0:1]) + t.colorAction.Sprint(operand[1:])
	case "DENIED":
		return t.colorDenied.Sprint(operand)
	case "TREASURE":
		return t.colorTreasure.Sprint(operand)
	case "COIN":
		return t.colorCoin.Sprint(operand)
	case "HEART":
		return t.colorHeart.Sprint(operand)
	case "TRAP":
		return t.colorTrap.Sprint(operand)
	default:
		return operand
	}
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, t.FormatText("%s", msg))
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(snap gameplay.Snapshot) {
	// Title and level in top left
	fmt.Fprintln(t.out, t.colorAction.Sprintf("%s  Level %d", gotext.Get("TITLE"), snap.Level))
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(gotext.Get("DIFFICULTY_LABEL", snap.Difficulty)))
	fmt.Fprintln(t.out)

	t.printBoard(snap)
	t.printStatusBar(snap)
	t.printPossibleActions()
	t.printMessagesPane(snap.Messages)

	// Input prompt
	fmt.Fprint(t.out, "\n> ")
}

// ShowScores renders the leaderboard
func (t *TUIRenderer) ShowScores(entries []leaderboard.Entry) {
	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.colorAction.Sprint(gotext.Get("LEADERBOARD")))
	if len(entries) == 0 {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint("  "+gotext.Get("NO_SCORES")))
		return
	}
	for i, e := range entries {
		fmt.Fprintln(t.out, "  "+gotext.Get("LEADERBOARD_ROW", i+1, e.Name, e.Score, e.Level, e.TreasuresCollected, e.Date))
	}
}

// renderCell returns the string representation of a cell
func (t *TUIRenderer) renderCell(snap gameplay.Snapshot, row, col int) string {
	if row == snap.Player.Row && col == snap.Player.Col {
		return t.colorPlayer.Sprint(PlayerIcon)
	}

	view := snap.At(row, col)
	if !view.Visible || view.Content == nil {
		return t.colorFog.Sprint(IconFog)
	}

	switch *view.Content {
	case world.Treasure:
		return t.colorTreasure.Sprint(IconTreasure)
	case world.Coin:
		return t.colorCoin.Sprint(IconCoin)
	case world.Heart:
		return t.colorHeart.Sprint(IconHeart)
	case world.Trap:
		return t.colorTrap.Sprint(IconTrap)
	default:
		return t.colorFloor.Sprint(IconEmpty)
	}
}

// getDirectionActionText returns the action text for a direction
func (t *TUIRenderer) getDirectionActionText(snap gameplay.Snapshot, dir world.Direction) string {
	target := snap.Player.Step(dir)
	if target.Row < 0 || target.Row >= snap.Rows || target.Col < 0 || target.Col >= snap.Cols {
		return t.colorSubtle.Sprint(gotext.Get("EDGE"))
	}
	name := dir.String()
	return t.FormatText("ACTION{%s}", strings.ToUpper(name[:1])+name[1:])
}

// printBoard renders the board with direction labels around it
func (t *TUIRenderer) printBoard(snap gameplay.Snapshot) {
	boardWidth := snap.Cols * 2
	centerIndent := (terminal.GetWidth() - (westLabelWidth*2 + boardWidth)) / 2
	if centerIndent < 0 {
		centerIndent = 0
	}
	indent := strings.Repeat(" ", centerIndent+westLabelWidth)
	mapStartCol := centerIndent + westLabelWidth

	t.printCentered(t.getDirectionActionText(snap, world.Up), mapStartCol, boardWidth)
	fmt.Fprintln(t.out)

	for row := 0; row < snap.Rows; row++ {
		// West label on the player's row
		if row == snap.Player.Row {
			txt := t.getDirectionActionText(snap, world.Left)
			padding := centerIndent + westLabelWidth - len([]rune(color.ClearCode(txt))) - 1
			fmt.Fprint(t.out, strings.Repeat(" ", max(0, padding)), txt, " ")
		} else {
			fmt.Fprint(t.out, indent)
		}

		for col := 0; col < snap.Cols; col++ {
			fmt.Fprint(t.out, t.renderCell(snap, row, col), " ")
		}

		if row == snap.Player.Row {
			fmt.Fprint(t.out, t.getDirectionActionText(snap, world.Right))
		}
		fmt.Fprintln(t.out)
	}

	fmt.Fprintln(t.out)
	t.printCentered(t.getDirectionActionText(snap, world.Down), mapStartCol, boardWidth)
	fmt.Fprintln(t.out)
}

// printCentered prints txt centered over a span of width columns starting at start
func (t *TUIRenderer) printCentered(txt string, start, width int) {
	n := len([]rune(color.ClearCode(txt)))
	fmt.Fprint(t.out, strings.Repeat(" ", max(0, start+(width-n)/2)))
	fmt.Fprintln(t.out, txt)
}

// printPossibleActions prints the available commands
func (t *TUIRenderer) printPossibleActions() {
	fmt.Fprintln(t.out, "- "+t.FormatText("%s", gotext.Get("ACTIONS")))
}

// printStatusBar renders score, lives, treasure left and the round budgets
func (t *TUIRenderer) printStatusBar(snap gameplay.Snapshot) {
	fmt.Fprintln(t.out, gotext.Get("STATUS_LINE", snap.Level, snap.Score, snap.Lives, snap.TreasureLeft))

	lives := t.colorHeart.Sprint(strings.Repeat(IconHeart, max(0, snap.Lives))) +
		t.colorSubtle.Sprint(strings.Repeat(IconLostLife, max(0, snap.MaxLives-snap.Lives)))

	var budgets []string
	if snap.MovesLeft != nil {
		budgets = append(budgets, gotext.Get("STATUS_MOVES", snap.MovesUsed, snap.MovesUsed+*snap.MovesLeft))
	} else {
		budgets = append(budgets, gotext.Get("STATUS_MOVES_UNLIMITED", snap.MovesUsed))
	}
	if snap.TimeLeft != nil {
		budgets = append(budgets, gotext.Get("STATUS_TIME", snap.Elapsed, *snap.TimeLeft))
	} else {
		budgets = append(budgets, gotext.Get("STATUS_TIME_UNLIMITED", snap.Elapsed))
	}
	fmt.Fprintln(t.out, lives+"   "+t.colorSubtle.Sprint(strings.Join(budgets, "   ")))

	switch {
	case snap.Status == state.GameOver:
		reason := strings.ReplaceAll(snap.EndReason.String(), "_", " ")
		fmt.Fprintln(t.out, t.FormatText("%s", gotext.Get("BANNER_GAME_OVER", reason)))
	case snap.Paused:
		fmt.Fprintln(t.out, t.FormatText("%s", gotext.Get("BANNER_PAUSED")))
	}
	fmt.Fprintln(t.out)
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(msgs []string) {
	width := terminal.GetWidth()

	label := " " + gotext.Get("MESSAGES") + " "
	labelLen := len(label)
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}

	leftDashes := strings.Repeat("─", sideLen)
	rightDashes := strings.Repeat("─", max(1, width-sideLen-labelLen))

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(leftDashes+label+rightDashes))

	if len(msgs) == 0 {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint("  "+gotext.Get("NO_MESSAGES")))
	} else {
		for _, msg := range msgs {
			fmt.Fprintf(t.out, "  %s\n", t.FormatText("%s", msg))
		}
	}

	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", width)))
}
