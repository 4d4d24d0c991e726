package tui

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gookit/color"

	"lightbot/pkg/engine/terminal"
	"lightbot/pkg/engine/world"
	"lightbot/pkg/game/program"
	"lightbot/pkg/game/renderer"
	"lightbot/pkg/game/state"
)

// Icon constants
const (
	IconVoid         = " "
	IconFloor        = "·"
	IconGoal         = "○"
	IconGoalLit      = "◉"
	IconDoorOpen     = "□"
	IconDoorClosed   = "▣"
	IconSwitch       = "◇"
	IconTeleport     = "◎"
	IconCracked      = "░"
	IconCrackedBroke = "╳"
)

// Robot icons by heading
var robotIcons = map[world.Direction]string{
	world.North: "▲",
	world.East:  "▶",
	world.South: "▼",
	world.West:  "◀",
}

// Foreground colours for tile colours used by IF_COLOR blocks
var tileColors = map[string]color.Color{
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"blue":    color.FgBlue,
	"yellow":  color.FgYellow,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
}

const maxPaneWidth = 60

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out   io.Writer
	isTTY bool

	colorTile       color.Style
	colorRobot      color.Style
	colorGoal       color.Style
	colorGoalLit    color.Style
	colorDoorOpen   color.Style
	colorDoorClosed color.Style
	colorSwitch     color.Style
	colorTeleport   color.Style
	colorCracked    color.Style
	colorBroken     color.Style
	colorAction     color.Style
	colorDenied     color.Style
	colorSubtle     color.Style
}

// New creates a new TUI renderer writing to out, or to standard output when out is nil
func New(out io.Writer) *TUIRenderer {
	if out == nil {
		out = os.Stdout
	}
	return &TUIRenderer{out: out}
}

// Init initializes the TUI renderer. Colours and screen clearing are only
// used when the output is a terminal.
func (t *TUIRenderer) Init() {
	if f, ok := t.out.(*os.File); ok {
		t.isTTY = terminal.IsTerminal(f)
	}
	color.Enable = t.isTTY

	t.colorTile = color.Style{color.FgGray}
	t.colorRobot = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorGoal = color.Style{color.FgYellow}
	t.colorGoalLit = color.Style{color.FgYellow, color.OpBold}
	t.colorDoorOpen = color.Style{color.FgGreen}
	t.colorDoorClosed = color.Style{color.FgYellow, color.OpBold}
	t.colorSwitch = color.Style{color.FgMagenta}
	t.colorTeleport = color.Style{color.FgCyan}
	t.colorCracked = color.Style{color.FgYellow}
	t.colorBroken = color.Style{color.FgRed}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	if t.isTTY {
		fmt.Fprint(t.out, "\033[H\033[2J")
	}
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleTile:
		return t.colorTile.Sprint(text)
	case renderer.StyleRobot:
		return t.colorRobot.Sprint(text)
	case renderer.StyleGoal:
		return t.colorGoal.Sprint(text)
	case renderer.StyleGoalLit:
		return t.colorGoalLit.Sprint(text)
	case renderer.StyleDoorOpen:
		return t.colorDoorOpen.Sprint(text)
	case renderer.StyleDoorClosed:
		return t.colorDoorClosed.Sprint(text)
	case renderer.StyleSwitch:
		return t.colorSwitch.Sprint(text)
	case renderer.StyleTeleport:
		return t.colorTeleport.Sprint(text)
	case renderer.StyleCracked:
		return t.colorCracked.Sprint(text)
	case renderer.StyleBroken:
		return t.colorBroken.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	default:
		return text
	}
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, msg)
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	if g.Level == nil {
		t.printMessagesPane(g)
		return
	}

	fmt.Fprintf(t.out, "%s %s\n\n", t.colorAction.Sprintf("Level %d", g.Level.ID), g.Level.Title)

	t.printMap(g)
	t.printStatusBar(g)
	t.printMessagesPane(g)
}

// printMap renders the grid, one row per line, two columns per tile
func (t *TUIRenderer) printMap(g *state.Game) {
	size := g.Level.Grid().Size()
	for y := 0; y < size; y++ {
		var sb strings.Builder
		sb.WriteString("  ")
		for x := 0; x < size; x++ {
			sb.WriteString(t.renderTile(g, world.Pos(x, y)))
			sb.WriteString(" ")
		}
		fmt.Fprintln(t.out, strings.TrimRight(sb.String(), " "))
	}
	fmt.Fprintln(t.out)
}

// renderTile returns the string representation of a tile
func (t *TUIRenderer) renderTile(g *state.Game, p world.Position) string {
	if g.Robot.Position == p {
		icon, ok := robotIcons[g.Robot.Dir]
		if !ok {
			icon = "?"
		}
		return t.colorRobot.Sprint(icon)
	}

	tile := g.Level.Grid().TileAt(p.X, p.Y)
	if tile == nil || tile.IsVoid() {
		return IconVoid
	}

	if g.Level.IsGoal(p) {
		if g.LitGoals.Has(p) {
			return t.colorGoalLit.Sprint(IconGoalLit)
		}
		return t.colorGoal.Sprint(IconGoal)
	}

	switch tile.Type {
	case world.TileDoor:
		if open, _ := g.Interactive.Get(tile.ID); open {
			return t.colorDoorOpen.Sprint(IconDoorOpen)
		}
		return t.colorDoorClosed.Sprint(IconDoorClosed)
	case world.TileSwitch:
		return t.colorSwitch.Sprint(IconSwitch)
	case world.TileTeleport:
		return t.colorTeleport.Sprint(IconTeleport)
	case world.TileCracked:
		if safe, ok := g.Interactive.Get(tile.ID); ok && !safe {
			return t.colorBroken.Sprint(IconCrackedBroke)
		}
		return t.colorCracked.Sprint(IconCracked)
	}

	icon := IconFloor
	if tile.Height > 0 {
		icon = strconv.Itoa(tile.Height % 10)
	}
	if c, ok := tileColors[tile.Color]; ok {
		return color.Style{c}.Sprint(icon)
	}
	return t.colorTile.Sprint(icon)
}

// printStatusBar renders run status, lit goals and the executing block
func (t *TUIRenderer) printStatusBar(g *state.Game) {
	status := g.Status.String()
	if g.Status.IsFinished() {
		style := t.colorDenied
		if g.Status == state.StatusWin {
			style = t.colorDoorOpen
		}
		status = style.Sprint(status)
	}

	fmt.Fprintf(t.out, "Status: %s  Lights: %d/%d  Blocks: %d/%d\n",
		status, g.LitGoals.Size(), len(g.Level.Goals), g.ProgramLength(), g.Level.MaxCommands)

	if len(g.CurrentPath) > 0 {
		parts := make([]string, len(g.CurrentPath))
		for i, idx := range g.CurrentPath {
			parts[i] = strconv.Itoa(idx + 1)
		}
		fmt.Fprintf(t.out, "Block %s %s\n", strings.Join(parts, "."), t.colorAction.Sprint(activeLabel(g)))
	}
}

// activeLabel names the executing block, falling back to the last command
// when the path is not in the loaded program
func activeLabel(g *state.Game) string {
	b := g.Program.At(g.CurrentPath)
	if b == nil {
		return string(g.ActiveCommand)
	}
	switch b.Type {
	case program.TypeLoop:
		return fmt.Sprintf("LOOP %d", b.Iterations)
	case program.TypeIfColor:
		return "IF " + b.ConditionColor
	}
	return string(b.Command)
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(g *state.Game) {
	width := terminal.GetWidth()
	if width > maxPaneWidth {
		width = maxPaneWidth
	}

	label := " Messages "
	labelLen := len(label)
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}

	leftDashes := strings.Repeat("─", sideLen)
	rightDashes := strings.Repeat("─", max(width-sideLen-labelLen, 1))

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(leftDashes+label+rightDashes))

	if len(g.Messages) == 0 {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint("  (no messages)"))
	} else {
		for _, msg := range g.Messages {
			fmt.Fprintf(t.out, "  %s\n", msg)
		}
	}

	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", width)))
}
