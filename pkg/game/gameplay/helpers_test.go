package gameplay

import (
	"context"
	"testing"

	"lightbot/pkg/engine/world"
	"lightbot/pkg/game/level"
	"lightbot/pkg/game/program"
	"lightbot/pkg/game/state"
)

// groundRow returns n ground tiles on row 0
func groundRow(n int) []world.Tile {
	tiles := make([]world.Tile, n)
	for x := range tiles {
		tiles[x] = world.Tile{X: x, Y: 0, Type: world.TileGround}
	}
	return tiles
}

// loadGame wraps tiles into a single valid level and loads it
func loadGame(t *testing.T, size int, tiles []world.Tile, start level.Start, goals ...world.Position) *state.Game {
	t.Helper()
	lv := &level.Level{
		ID:              1,
		Title:           "test",
		GridSize:        size,
		Layout:          tiles,
		Start:           start,
		Goals:           goals,
		AvailableBlocks: []string{"MOVE", "TURN_L", "TURN_R", "JUMP", "LIGHT", "LOOP", "IF_COLOR"},
		MaxCommands:     20,
	}
	store, err := level.NewStore(lv)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	g := state.NewGame(store)
	if !g.LoadLevel(1) {
		t.Fatal("LoadLevel(1) = false")
	}
	return g
}

// rowGame is a 5 wide ground row, robot at (0,0) facing east, goal at (2,0)
func rowGame(t *testing.T) *state.Game {
	t.Helper()
	return loadGame(t, 5, groundRow(5), level.Start{X: 0, Y: 0, Dir: world.East}, world.Pos(2, 0))
}

func mustParse(t *testing.T, src string) program.Program {
	t.Helper()
	p, err := program.Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return p
}

// runScript runs src on g with default options and fails the test on a start error
func runScript(t *testing.T, g *state.Game, src string) RunResult {
	t.Helper()
	return runWith(t, g, src, DefaultOptions())
}

func runWith(t *testing.T, g *state.Game, src string, opts Options) RunResult {
	t.Helper()
	res, err := NewExecutor(g, opts).Run(context.Background(), mustParse(t, src))
	if err != nil {
		t.Fatalf("Run(%q): %v", src, err)
	}
	return res
}

// recorder collects run events
type recorder struct {
	events []Event
}

func (r *recorder) OnEvent(e Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(kind EventKind) int {
	n := 0
	for _, e := range r.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
