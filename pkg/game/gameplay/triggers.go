package gameplay

import (
	"lightbot/pkg/engine/world"
	"lightbot/pkg/game/state"
)

// HandleEnter fires the trigger of the tile the robot just entered.
// A switch toggles the tile named by its target; a teleport moves the robot
// onto the tile named by its target without firing that tile's own triggers.
func HandleEnter(g *state.Game, p world.Position) {
	t := TileAt(g, p.X, p.Y)
	if t == nil || t.TargetID == "" {
		return
	}

	switch t.Type {
	case world.TileSwitch:
		g.Interactive.Toggle(t.TargetID)
	case world.TileTeleport:
		if dest := g.Level.Grid().TileByID(t.TargetID); dest != nil {
			g.Robot.Position = dest.Position()
		}
	}
}

// HandleLeave fires the trigger of the tile the robot just left.
// A cracked tile breaks every time it is left.
func HandleLeave(g *state.Game, p world.Position) {
	t := TileAt(g, p.X, p.Y)
	if t == nil {
		return
	}

	if t.Type == world.TileCracked && t.ID != "" {
		g.Interactive.Set(t.ID, false)
	}
}
