// Package level holds the immutable level definitions the game is played on.
package level

import (
	"errors"
	"fmt"
	"sync"

	"lightbot/pkg/engine/world"
)

// Start is the robot pose at the beginning of every attempt
type Start struct {
	X   int             `json:"x"`
	Y   int             `json:"y"`
	Dir world.Direction `json:"dir"`
}

// Position returns the start coordinates
func (s Start) Position() world.Position {
	return world.Position{X: s.X, Y: s.Y}
}

// Level is a puzzle definition. It is read-only once loaded; gameplay state
// lives in state.Game.
type Level struct {
	ID              int              `json:"id"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	GridSize        int              `json:"gridSize"`
	Layout          []world.Tile     `json:"layout"`
	Start           Start            `json:"start"`
	Goals           []world.Position `json:"goals"`
	AvailableBlocks []string         `json:"availableBlocks"`
	MaxCommands     int              `json:"maxCommands"`

	gridOnce sync.Once
	grid     *world.Grid
}

// Grid returns the tile index for this level, built on first use
func (l *Level) Grid() *world.Grid {
	if l == nil {
		return nil
	}
	l.gridOnce.Do(func() {
		l.grid = world.NewGrid(l.GridSize, l.Layout)
	})
	return l.grid
}

// IsGoal returns true if the position is one of the level goals
func (l *Level) IsGoal(p world.Position) bool {
	if l == nil {
		return false
	}
	for _, g := range l.Goals {
		if g == p {
			return true
		}
	}
	return false
}

// Allows returns true if the palette entry (a command or block type) is available in this level
func (l *Level) Allows(kind string) bool {
	if l == nil {
		return false
	}
	for _, b := range l.AvailableBlocks {
		if b == kind {
			return true
		}
	}
	return false
}

// Validate checks the level rules a schema cannot express
func (l *Level) Validate() error {
	if l == nil {
		return errors.New("nil level")
	}

	var errs []error

	if l.GridSize < 1 {
		errs = append(errs, fmt.Errorf("gridSize %d must be positive", l.GridSize))
	}
	if l.MaxCommands < 1 {
		errs = append(errs, fmt.Errorf("maxCommands %d must be positive", l.MaxCommands))
	}
	if !l.Start.Dir.IsValid() {
		errs = append(errs, fmt.Errorf("start direction %d is invalid", int(l.Start.Dir)))
	}

	grid := l.Grid()
	for _, r := range grid.Rejected() {
		errs = append(errs, errors.New(r))
	}

	grid.ForEachTile(func(t *world.Tile) {
		if !t.Type.IsValid() {
			errs = append(errs, fmt.Errorf("tile at %v has unknown type %q", t.Position(), t.Type))
		}
	})

	for _, g := range l.Goals {
		if t := grid.TileAt(g.X, g.Y); t == nil || t.IsVoid() {
			errs = append(errs, fmt.Errorf("goal %v has no tile", g))
		}
	}

	start := grid.TileAt(l.Start.X, l.Start.Y)
	switch {
	case start == nil || start.IsVoid():
		errs = append(errs, fmt.Errorf("start %v has no walkable tile", l.Start.Position()))
	case start.Type == world.TileDoor && (start.State == nil || !*start.State):
		errs = append(errs, fmt.Errorf("start %v is a closed door", l.Start.Position()))
	case start.Type == world.TileCracked && start.State != nil && !*start.State:
		errs = append(errs, fmt.Errorf("start %v is a broken tile", l.Start.Position()))
	}

	if len(errs) > 0 {
		return fmt.Errorf("level %d: %w", l.ID, errors.Join(errs...))
	}
	return nil
}
