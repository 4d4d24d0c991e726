package gameplay

import (
	"reflect"
	"testing"

	"lightbot/pkg/engine/world"
	"lightbot/pkg/game/level"
)

var eastStart = level.Start{X: 0, Y: 0, Dir: world.East}

func TestUnreachableGoals_Wall(t *testing.T) {
	tiles := groundRow(5)
	tiles[2].Height = 2
	g := loadGame(t, 5, tiles, eastStart, world.Pos(1, 0), world.Pos(4, 0))

	got, err := UnreachableGoals(g.Level)
	if err != nil {
		t.Fatalf("UnreachableGoals: %v", err)
	}
	if want := []world.Position{world.Pos(4, 0)}; !reflect.DeepEqual(got, want) {
		t.Errorf("UnreachableGoals = %v, want %v", got, want)
	}

	reached, _ := Reachable(g.Level)
	if reached.Size() != 2 || !reached.Has(world.Pos(1, 0)) {
		t.Errorf("reached %d positions, want (0,0) and (1,0)", reached.Size())
	}
}

func TestUnreachableGoals_StepUpNeedsJump(t *testing.T) {
	tiles := groundRow(3)
	tiles[1].Height = 1
	tiles[2].Height = 2
	g := loadGame(t, 3, tiles, eastStart, world.Pos(2, 0))

	if got, _ := UnreachableGoals(g.Level); len(got) != 0 {
		t.Errorf("UnreachableGoals = %v, want none", got)
	}
}

func TestUnreachableGoals_DoorAndSwitch(t *testing.T) {
	locked := groundRow(4)
	locked[2] = world.Tile{X: 2, Y: 0, Type: world.TileDoor, ID: "D", State: world.Bool(false)}
	g := loadGame(t, 4, locked, eastStart, world.Pos(3, 0))
	if got, _ := UnreachableGoals(g.Level); len(got) != 1 {
		t.Errorf("goal behind a closed door without a switch: unreachable = %v", got)
	}

	switched := groundRow(4)
	switched[1] = world.Tile{X: 1, Y: 0, Type: world.TileSwitch, TargetID: "D"}
	switched[2] = world.Tile{X: 2, Y: 0, Type: world.TileDoor, ID: "D", State: world.Bool(false)}
	g = loadGame(t, 4, switched, eastStart, world.Pos(3, 0))
	if got, _ := UnreachableGoals(g.Level); len(got) != 0 {
		t.Errorf("goal behind a switched door: unreachable = %v", got)
	}
}

func TestUnreachableGoals_Teleport(t *testing.T) {
	tiles := []world.Tile{
		{X: 0, Y: 0, Type: world.TileGround},
		{X: 1, Y: 0, Type: world.TileTeleport, TargetID: "far"},
		{X: 4, Y: 4, Type: world.TileGround, ID: "far"},
	}
	g := loadGame(t, 5, tiles, eastStart, world.Pos(4, 4))

	if got, _ := UnreachableGoals(g.Level); len(got) != 0 {
		t.Errorf("goal past a teleport: unreachable = %v", got)
	}
}

func TestUnreachableGoals_ShippedLevels(t *testing.T) {
	store, err := level.Default()
	if err != nil {
		t.Fatalf("Default(): %v", err)
	}
	for _, id := range store.IDs() {
		l, _ := store.Level(id)
		got, err := UnreachableGoals(l)
		if err != nil {
			t.Fatalf("level %d: %v", id, err)
		}
		if len(got) != 0 {
			t.Errorf("level %d: unreachable goals %v", id, got)
		}
	}
}
