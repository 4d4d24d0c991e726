package gameplay

import (
	"fmt"

	"lightbot/pkg/game/level"
	"lightbot/pkg/game/messages"
	"lightbot/pkg/game/state"
)

// BuildGame creates a session over levels and loads startLevel, or the first
// level when startLevel is 0.
func BuildGame(levels level.Repository, startLevel int, msgs *messages.Catalog) (*state.Game, error) {
	g := state.NewGame(levels)

	if startLevel == 0 {
		ids := levels.IDs()
		if len(ids) == 0 {
			return nil, ErrNoLevel
		}
		startLevel = ids[0]
	}

	if !g.LoadLevel(startLevel) {
		return nil, fmt.Errorf("level %d: %w", startLevel, ErrNoLevel)
	}

	g.ClearMessages()
	ShowLevelObjectives(g, msgs)
	return g, nil
}

// ResetLevel puts the current level back to its start, keeping the program
func ResetLevel(g *state.Game, msgs *messages.Catalog) {
	g.Reset()

	g.ClearMessages()
	g.AddMessage(msgs.Get(messages.LevelReset))
	ShowLevelObjectives(g, msgs)
}

// AdvanceLevel loads the next level. Returns false when the current level is the last one.
func AdvanceLevel(g *state.Game, msgs *messages.Catalog) bool {
	if !g.NextLevel() {
		g.AddMessage(msgs.Get(messages.AllLevelsDone))
		return false
	}

	g.ClearMessages()
	ShowLevelObjectives(g, msgs)
	return true
}

// ShowLevelObjectives displays the title and objectives for the current level
func ShowLevelObjectives(g *state.Game, msgs *messages.Catalog) {
	if g.Level == nil {
		g.AddMessage(msgs.Get(messages.NoLevel))
		return
	}
	g.AddMessage(msgs.Getf(messages.LevelLoaded, g.Level.ID, g.Level.Title))
	g.AddMessage(msgs.Getf(messages.LevelGoals, len(g.Level.Goals), g.Level.MaxCommands))
}
