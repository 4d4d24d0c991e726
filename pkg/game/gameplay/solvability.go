package gameplay

import (
	"sort"
	"strconv"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"lightbot/pkg/engine/world"
	"lightbot/pkg/game/level"
	"lightbot/pkg/game/program"
	"lightbot/pkg/game/state"
)

// searchNode is a robot position together with the interactive tile states
// it was reached with. Facing is left out since turning is always possible.
type searchNode struct {
	pos         world.Position
	interactive map[string]bool
}

func (n searchNode) key() string {
	ids := make([]string, 0, len(n.interactive))
	for id := range n.interactive {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var sb strings.Builder
	sb.WriteString(strconv.Itoa(n.pos.X))
	sb.WriteByte(',')
	sb.WriteString(strconv.Itoa(n.pos.Y))
	for _, id := range ids {
		sb.WriteByte(' ')
		sb.WriteString(id)
		if n.interactive[id] {
			sb.WriteString("=1")
		} else {
			sb.WriteString("=0")
		}
	}
	return sb.String()
}

// restore puts the search node back into g, facing dir
func (n searchNode) restore(g *state.Game, dir world.Direction) {
	g.Robot = state.Robot{Position: n.pos, Dir: dir}
	g.Interactive = state.NewInteractiveState()
	for id, v := range n.interactive {
		g.Interactive.Set(id, v)
	}
}

// Reachable returns every position the robot can stand on in l, exploring
// MOVE and JUMP in every direction from the start pose under the same rules
// the executor applies. Switches, teleports and cracked tiles are followed
// through their state changes.
func Reachable(l *level.Level) (mapset.Set[world.Position], error) {
	reached := mapset.New[world.Position]()

	store, err := level.NewStore(l)
	if err != nil {
		return reached, err
	}
	g := state.NewGame(store)
	if !g.LoadLevel(l.ID) {
		return reached, ErrNoLevel
	}

	seen := mapset.New[string]()
	queue := []searchNode{{pos: g.Robot.Position, interactive: g.Interactive.Snapshot()}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		key := current.key()
		if seen.Has(key) {
			continue
		}
		seen.Put(key)
		reached.Put(current.pos)

		for _, dir := range world.AllDirections() {
			for _, cmd := range []program.Command{program.CommandMove, program.CommandJump} {
				current.restore(g, dir)
				if ok, _ := RunCommand(g, cmd); !ok {
					continue
				}
				queue = append(queue, searchNode{pos: g.Robot.Position, interactive: g.Interactive.Snapshot()})
			}
		}
	}

	return reached, nil
}

// UnreachableGoals returns the goals of l the robot can never stand on, sorted.
// A level with unreachable goals cannot be won.
func UnreachableGoals(l *level.Level) ([]world.Position, error) {
	reached, err := Reachable(l)
	if err != nil {
		return nil, err
	}

	var out []world.Position
	for _, goal := range l.Goals {
		if !reached.Has(goal) {
			out = append(out, goal)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out, nil
}
