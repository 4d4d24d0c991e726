// Package state holds the mutable session of one player: the loaded level,
// the robot, the program being edited and the outcome of the last run.
package state

import (
	"slices"

	"github.com/zyedidia/generic/mapset"

	"lightbot/pkg/engine/world"
	"lightbot/pkg/game/level"
	"lightbot/pkg/game/program"
)

const maxMessages = 5

// Game is one play session. During a run only the executor mutates it.
type Game struct {
	Levels level.Repository
	Level  *level.Level

	Robot       Robot
	Program     program.Program
	Status      Status
	LitGoals    mapset.Set[world.Position]
	Interactive *InteractiveState

	// CurrentPath is the index path of the block being executed, nil when idle
	CurrentPath   []int
	ActiveCommand program.Command

	Messages []string
}

// Snapshot is a copy of the per-attempt state, safe to hand to other goroutines
type Snapshot struct {
	LevelID     int              `json:"level_id"`
	Robot       Robot            `json:"robot"`
	LitGoals    []world.Position `json:"lit_goals"`
	Interactive map[string]bool  `json:"interactive"`
	Status      Status           `json:"status"`
	Path        []int            `json:"path,omitempty"`
}

// NewGame creates a session over a level repository. No level is loaded yet.
func NewGame(levels level.Repository) *Game {
	return &Game{
		Levels:      levels,
		LitGoals:    mapset.New[world.Position](),
		Interactive: NewInteractiveState(),
		Messages:    make([]string, 0),
	}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// LoadLevel makes the level with the given id current, clearing the program
// and every per-attempt state. Returns false if the level does not exist.
func (g *Game) LoadLevel(id int) bool {
	if g.Levels == nil {
		return false
	}
	l, ok := g.Levels.Level(id)
	if !ok {
		return false
	}

	g.Level = l
	g.Program = nil
	g.Reset()
	return true
}

// LevelID returns the id of the loaded level, or 0
func (g *Game) LevelID() int {
	if g.Level == nil {
		return 0
	}
	return g.Level.ID
}

// HasNextLevel returns true if a level follows the current one
func (g *Game) HasNextLevel() bool {
	_, ok := g.nextLevelID()
	return ok
}

// NextLevel loads the level following the current one
func (g *Game) NextLevel() bool {
	id, ok := g.nextLevelID()
	if !ok {
		return false
	}
	return g.LoadLevel(id)
}

func (g *Game) nextLevelID() (int, bool) {
	if g.Levels == nil {
		return 0, false
	}
	for _, id := range g.Levels.IDs() {
		if g.Level == nil || id > g.Level.ID {
			return id, true
		}
	}
	return 0, false
}

// Reset puts the session back to the level start and the IDLE status.
// The program is kept.
func (g *Game) Reset() {
	g.ResetPosition()
	g.Status = StatusIdle
}

// ResetPosition puts the robot back on the level start and restores the lit
// goals and interactive tiles, leaving the status alone.
func (g *Game) ResetPosition() {
	if g.Interactive == nil {
		g.Interactive = NewInteractiveState()
	}

	g.LitGoals = mapset.New[world.Position]()
	g.CurrentPath = nil
	g.ActiveCommand = program.CommandNone

	if g.Level == nil {
		g.Robot = Robot{}
		g.Interactive.Initialize(nil)
		return
	}

	g.Robot = Robot{Position: g.Level.Start.Position(), Dir: g.Level.Start.Dir}
	g.Interactive.Initialize(g.Level.Layout)
}

// LightCell lights the robot's cell if it is a goal. Returns true when a goal
// was newly lit.
func (g *Game) LightCell() bool {
	if g.Level == nil || !g.Level.IsGoal(g.Robot.Position) {
		return false
	}
	if g.LitGoals.Has(g.Robot.Position) {
		return false
	}
	g.LitGoals.Put(g.Robot.Position)
	return true
}

// IsWin returns true when every goal of the level is lit
func (g *Game) IsWin() bool {
	return g.Level != nil && g.UnlitGoals() == 0
}

// UnlitGoals counts the goals not lit yet
func (g *Game) UnlitGoals() int {
	if g.Level == nil {
		return 0
	}
	count := 0
	for _, goal := range g.Level.Goals {
		if !g.LitGoals.Has(goal) {
			count++
		}
	}
	return count
}

// LitGoalList returns the lit goals in row order
func (g *Game) LitGoalList() []world.Position {
	out := make([]world.Position, 0, g.LitGoals.Size())
	g.LitGoals.Each(func(p world.Position) {
		out = append(out, p)
	})
	slices.SortFunc(out, func(a, b world.Position) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})
	return out
}

// CanExecute returns true if a run could start now
func (g *Game) CanExecute() bool {
	return g.Level != nil && len(g.Program) > 0 && g.Status != StatusRunning
}

// ProgramLength counts every block of the program, nested ones included
func (g *Game) ProgramLength() int {
	return g.Program.Len()
}

// AddBlock appends the block a palette entry stands for to the program.
// Nothing is added when no level is loaded, while running, or once the
// program holds the level's maximum number of blocks.
func (g *Game) AddBlock(kind string) (*program.Block, bool) {
	if g.Level == nil || g.Status == StatusRunning {
		return nil, false
	}
	if g.ProgramLength() >= g.Level.MaxCommands {
		return nil, false
	}
	b := program.NewPaletteBlock(kind)
	g.Program = append(g.Program, b)
	return b, true
}

// RemoveBlock removes the block with the given id, wherever it is nested
func (g *Game) RemoveBlock(id string) bool {
	if g.Status == StatusRunning {
		return false
	}
	return program.Remove(&g.Program, id)
}

// SetProgram replaces the program with a copy of p
func (g *Game) SetProgram(p program.Program) {
	g.Program = p.Clone()
}

// ClearProgram empties the program
func (g *Game) ClearProgram() {
	g.Program = nil
}

// Snapshot copies the per-attempt state
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		LevelID:     g.LevelID(),
		Robot:       g.Robot,
		LitGoals:    g.LitGoalList(),
		Interactive: g.Interactive.Snapshot(),
		Status:      g.Status,
		Path:        slices.Clone(g.CurrentPath),
	}
}
