// Package gameplay runs player programs against a game session: grid
// queries, tile triggers, robot movement and the block executor.
package gameplay

import (
	"lightbot/pkg/engine/world"
	"lightbot/pkg/game/state"
)

// TileAt returns the tile of the loaded level at (x, y), or nil
func TileAt(g *state.Game, x, y int) *world.Tile {
	if g == nil || g.Level == nil {
		return nil
	}
	return g.Level.Grid().TileAt(x, y)
}

// IsWalkable reports whether the robot may stand on (x, y) given the live
// interactive state. Doors need to be open; cracked tiles are walkable unless
// explicitly broken.
func IsWalkable(g *state.Game, x, y int) bool {
	t := TileAt(g, x, y)
	if t == nil || t.IsVoid() {
		return false
	}

	switch t.Type {
	case world.TileDoor:
		open, ok := g.Interactive.Get(t.ID)
		return ok && open
	case world.TileCracked:
		safe, ok := g.Interactive.Get(t.ID)
		return !ok || safe
	}
	return true
}

// IsGoal returns true if (x, y) is a goal of the loaded level
func IsGoal(g *state.Game, x, y int) bool {
	if g == nil {
		return false
	}
	return g.Level.IsGoal(world.Pos(x, y))
}

func heightAt(g *state.Game, p world.Position) int {
	if t := TileAt(g, p.X, p.Y); t != nil {
		return t.Height
	}
	return 0
}
