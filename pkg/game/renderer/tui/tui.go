// Package tui renders the game into the terminal with ANSI colors.
package tui

import (
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"selvaoscura/pkg/engine/world"
	"selvaoscura/pkg/game/entities"
	"selvaoscura/pkg/game/level"
	"selvaoscura/pkg/game/state"
)

// Icon constants
const (
	PlayerIcon       = "@"
	IconWall         = "▒"
	IconPath         = "·"
	IconStart        = "△"
	IconExitLocked   = "▣" // Exit while objectives remain
	IconExitUnlocked = "⌂" // Exit once unlocked
	IconGuide        = "☺" // Virgilio
	IconFragment     = "✦" // Memory fragment
)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorWall     color.Style
	colorPath     color.Style
	colorPlayer   color.Style
	colorGuide    color.Style
	colorFragment color.Style
	colorExitOpen color.Style
	colorDenied   color.Style
	colorSubtle   color.Style
	colorAction   color.Style
	colorTitle    color.Style

	regexpStringFunctions *regexp.Regexp
}

// New creates a new TUI renderer
func New() *TUIRenderer {
	return &TUIRenderer{}
}

// Init initializes the TUI renderer colors
func (t *TUIRenderer) Init() {
	t.colorWall = color.Style{color.FgGray}
	t.colorPath = color.Style{color.FgGray, color.OpBold}
	t.colorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorGuide = color.Style{color.FgCyan, color.OpBold}
	t.colorFragment = color.Style{color.FgYellow, color.OpBold}
	t.colorExitOpen = color.Style{color.FgGreen}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorTitle = color.Style{color.FgBlue, color.OpBold}

	t.regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:]+)}`)
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "ITEM":
			val = t.colorFragment.Sprint(operand)
		case "GUIDE":
			val = t.colorGuide.Sprint(operand)
		case "LEVEL":
			val = t.colorTitle.Sprint(operand)
		case "ACTION":
			val = t.colorAction.Sprint(operand)
		default:
			ret = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// ShowMessage prints a one-off message line
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Println(t.FormatText(msg))
}

// renderCell returns the styled icon for one map position
func (t *TUIRenderer) renderCell(g *state.Game, x, y int) string {
	if g.Player.X == x && g.Player.Y == y {
		return t.colorPlayer.Sprint(PlayerIcon)
	}

	if e := g.Maze.Entities.At(x, y); e != nil {
		switch e.Kind {
		case entities.Guide:
			return t.colorGuide.Sprint(IconGuide)
		case entities.Fragment:
			return t.colorFragment.Sprint(IconFragment)
		}
	}

	switch g.Maze.Grid.CellAt(x, y) {
	case world.Wall:
		return t.colorWall.Sprint(IconWall)
	case world.Start:
		return t.colorSubtle.Sprint(IconStart)
	case world.Exit:
		if g.Tracker.Status().ExitUnlocked {
			return t.colorExitOpen.Sprint(IconExitUnlocked)
		}
		return t.colorDenied.Sprint(IconExitLocked)
	default:
		return t.colorPath.Sprint(IconPath)
	}
}

// RenderFrame renders the full game frame
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	t.Clear()

	fmt.Println(t.colorTitle.Sprintf("%s %d: %s", gotext.Get("CIRCLE"), g.Level, level.Name(g.Level)))
	fmt.Println()

	grid := g.Maze.Grid
	for y := 0; y < grid.Height(); y++ {
		var line strings.Builder
		for x := 0; x < grid.Width(); x++ {
			line.WriteString(t.renderCell(g, x, y))
		}
		fmt.Println(line.String())
	}

	fmt.Println()
	t.printStatusBar(g)
	t.printMessages(g)
	t.printDialogue(g)

	fmt.Println(t.colorSubtle.Sprint(gotext.Get("HINT_KEYS")))
}

// printStatusBar shows the objective summary for the current level
func (t *TUIRenderer) printStatusBar(g *state.Game) {
	status := g.Tracker.Status()

	parts := []string{
		fmt.Sprintf("%s %d/%d", gotext.Get("STATUS_FRAGMENTS"), status.FragmentsCollected, status.TotalFragments),
	}
	if g.Tracker.GuideRequired() {
		if status.GuideFound {
			parts = append(parts, t.colorGuide.Sprint(gotext.Get("STATUS_GUIDE_FOUND")))
		} else {
			parts = append(parts, t.colorDenied.Sprint(gotext.Get("STATUS_GUIDE_MISSING")))
		}
	}
	if status.ExitUnlocked {
		parts = append(parts, t.colorExitOpen.Sprint(gotext.Get("STATUS_EXIT_OPEN")))
	} else {
		parts = append(parts, t.colorSubtle.Sprint(gotext.Get("STATUS_EXIT_SEALED")))
	}

	fmt.Println(strings.Join(parts, "  |  "))
	fmt.Println()
}

// printMessages shows the rolling message log
func (t *TUIRenderer) printMessages(g *state.Game) {
	for _, msg := range g.Messages {
		fmt.Println(t.FormatText(msg))
	}
	if len(g.Messages) > 0 {
		fmt.Println()
	}
}

// printDialogue shows the next pending narrative line, if any
func (t *TUIRenderer) printDialogue(g *state.Game) {
	if g.Dialogue.Pending() == 0 {
		return
	}
	if e, ok := g.Dialogue.Advance(); ok {
		fmt.Println(t.colorGuide.Sprint("» " + e.Text))
		fmt.Println()
	}
}
