// Package console plays the game from a terminal: the player edits the
// program one command at a time and watches every run step by step.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"lightbot/pkg/engine/input"
	"lightbot/pkg/game/gameplay"
	"lightbot/pkg/game/messages"
	"lightbot/pkg/game/program"
	"lightbot/pkg/game/renderer"
	"lightbot/pkg/game/state"
)

// Console is an interactive session over one executor
type Console struct {
	game *state.Game
	exec *gameplay.Executor
	msgs *messages.Catalog
	keys input.Bindings
	in   *input.Reader
	out  io.Writer
}

// New creates a console. Frames are drawn with the current renderer; prompts
// and program listings go to out.
func New(exec *gameplay.Executor, msgs *messages.Catalog, keys input.Bindings, in *input.Reader, out io.Writer) *Console {
	if keys == nil {
		keys = input.DefaultBindings()
	}
	return &Console{
		game: exec.Game(),
		exec: exec,
		msgs: msgs,
		keys: keys,
		in:   in,
		out:  out,
	}
}

// Loop reads and handles commands until the player quits or the input ends
func (c *Console) Loop(ctx context.Context) error {
	for {
		renderer.Clear()
		renderer.RenderFrame(c.game)
		fmt.Fprint(c.out, "\n> ")

		line, err := c.in.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(c.out)
				return nil
			}
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if !c.Handle(ctx, c.keys.MapToIntent(line)) {
			fmt.Fprintln(c.out, c.msgs.Get(messages.Goodbye))
			return nil
		}
	}
}

// Handle applies one intent. Returns false when the player quits.
func (c *Console) Handle(ctx context.Context, in input.Intent) bool {
	g := c.game

	switch in.Action {
	case input.ActionQuit:
		return false

	case input.ActionAddMove:
		c.add(string(program.CommandMove))
	case input.ActionAddTurnLeft:
		c.add(string(program.CommandTurnL))
	case input.ActionAddTurnRight:
		c.add(string(program.CommandTurnR))
	case input.ActionAddJump:
		c.add(string(program.CommandJump))
	case input.ActionAddLight:
		c.add(string(program.CommandLight))
	case input.ActionAddBlock:
		c.add(strings.ToUpper(in.Arg))

	case input.ActionUndo:
		if n := len(g.Program); n > 0 && g.RemoveBlock(g.Program[n-1].ID) {
			g.AddMessage(c.msgs.Get(messages.BlockRemoved))
		}
	case input.ActionClear:
		g.ClearProgram()
		g.AddMessage(c.msgs.Get(messages.ProgramCleared))
	case input.ActionScript:
		c.loadScript(in.Arg)
	case input.ActionShow:
		fmt.Fprint(c.out, program.Format(g.Program))

	case input.ActionRun:
		c.run(ctx)
	case input.ActionReset:
		gameplay.ResetLevel(g, c.msgs)
	case input.ActionNextLevel:
		gameplay.AdvanceLevel(g, c.msgs)
	case input.ActionLoadLevel:
		c.loadLevel(in.Arg)

	case input.ActionHelp:
		g.AddMessage(c.msgs.Get(messages.ConsoleHelp))
		c.printBindings()
	default:
		if in.Arg != "" {
			g.AddMessage(c.msgs.Getf(messages.UnknownCommand, in.Arg))
		}
	}
	return true
}

// add appends a palette block to the end of the program
func (c *Console) add(kind string) {
	g := c.game
	if g.Level == nil {
		g.AddMessage(c.msgs.Get(messages.NoLevel))
		return
	}
	if !g.Level.Allows(kind) {
		g.AddMessage(c.msgs.Getf(messages.BlockNotAllowed, kind))
		return
	}
	if _, ok := g.AddBlock(kind); !ok {
		g.AddMessage(c.msgs.Getf(messages.BlockRefused, kind))
		return
	}
	g.AddMessage(c.msgs.Getf(messages.BlockAdded, kind, g.ProgramLength(), g.Level.MaxCommands))
}

// printBindings lists every action with the codes bound to it
func (c *Console) printBindings() {
	byAction := c.keys.ByAction()
	for a := input.ActionAddMove; a <= input.ActionQuit; a++ {
		if codes, ok := byAction[a]; ok {
			fmt.Fprintf(c.out, "  %-12s %s\n", input.ActionName(a), strings.Join(codes, ", "))
		}
	}
}

func (c *Console) loadScript(src string) {
	p, err := program.Parse(src)
	if err != nil {
		c.game.AddMessage(err.Error())
		return
	}
	c.game.SetProgram(p)
	c.game.AddMessage(c.msgs.Getf(messages.ProgramLoaded, p.Len()))
}

func (c *Console) loadLevel(arg string) {
	id, err := strconv.Atoi(arg)
	if err != nil || !c.game.LoadLevel(id) {
		c.game.AddMessage(c.msgs.Get(messages.NoLevel))
		return
	}
	c.game.ClearMessages()
	gameplay.ShowLevelObjectives(c.game, c.msgs)
}

func (c *Console) run(ctx context.Context) {
	_, err := c.exec.Run(ctx, c.game.Program)
	switch {
	case err == nil:
	case errors.Is(err, gameplay.ErrNoLevel), errors.Is(err, gameplay.ErrEmptyProgram):
		// already reported to the player
	default:
		c.game.AddMessage(err.Error())
	}
}
