package gameplay

import (
	"context"
	"testing"

	"lightbot/pkg/game/level"
	"lightbot/pkg/game/messages"
	"lightbot/pkg/game/program"
	"lightbot/pkg/game/state"
)

var shippedSolutions = map[int]string{
	1: "MOVE MOVE LIGHT",
	2: "MOVE MOVE TURN_R MOVE MOVE LIGHT",
	3: "LOOP 2 { MOVE MOVE LIGHT }",
	4: "JUMP JUMP JUMP LIGHT",
	5: "MOVE MOVE MOVE LIGHT",
	6: "MOVE MOVE LIGHT",
	7: "MOVE MOVE LIGHT TURN_R MOVE TURN_R MOVE MOVE LIGHT",
	8: "LOOP 4 { MOVE IF red { LIGHT } }",
}

func usesOnlyPalette(l *level.Level, p program.Program) bool {
	for _, b := range p {
		kind := string(b.Command)
		if b.IsContainer() {
			kind = string(b.Type)
		}
		if !l.Allows(kind) || !usesOnlyPalette(l, b.Children) {
			return false
		}
	}
	return true
}

func TestShippedLevels_AreSolvable(t *testing.T) {
	store, err := level.Default()
	if err != nil {
		t.Fatalf("Default(): %v", err)
	}

	for _, id := range store.IDs() {
		src, ok := shippedSolutions[id]
		if !ok {
			t.Errorf("level %d has no known solution", id)
			continue
		}
		g := state.NewGame(store)
		if !g.LoadLevel(id) {
			t.Fatalf("LoadLevel(%d) = false", id)
		}

		p := mustParse(t, src)
		if p.Len() > g.Level.MaxCommands {
			t.Errorf("level %d: solution has %d blocks, max is %d", id, p.Len(), g.Level.MaxCommands)
		}
		if !usesOnlyPalette(g.Level, p) {
			t.Errorf("level %d: solution uses blocks outside the palette", id)
		}

		res, err := NewExecutor(g, DefaultOptions()).Run(context.Background(), p)
		if err != nil {
			t.Fatalf("level %d: %v", id, err)
		}
		if res.Outcome != OutcomeWin {
			t.Errorf("level %d: %q ended %v (%v) with robot %v", id, src, res.Outcome, res.Reason, g.Robot)
		}
	}
}

func TestShippedLevels_DoorNeedsSwitch(t *testing.T) {
	store, err := level.Default()
	if err != nil {
		t.Fatalf("Default(): %v", err)
	}
	g := state.NewGame(store)
	g.LoadLevel(5)

	// Toggling the switch twice closes the door again.
	res, err := NewExecutor(g, DefaultOptions()).Run(context.Background(),
		mustParse(t, "MOVE TURN_R TURN_R MOVE TURN_R TURN_R MOVE MOVE MOVE LIGHT"))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Outcome != OutcomeFail || res.Reason != ReasonBlocked {
		t.Errorf("result = %+v, want FAIL blocked at the closed door", res)
	}
}

func TestLifecycle(t *testing.T) {
	store, err := level.Default()
	if err != nil {
		t.Fatalf("Default(): %v", err)
	}
	msgs := DefaultOptions().Messages

	g, err := BuildGame(store, 0, msgs)
	if err != nil {
		t.Fatalf("BuildGame: %v", err)
	}
	if g.LevelID() != 1 || len(g.Messages) != 2 {
		t.Errorf("BuildGame loaded level %d with messages %v", g.LevelID(), g.Messages)
	}

	if _, err := BuildGame(store, 99, msgs); err == nil {
		t.Error("BuildGame(99) = nil error, want error")
	}

	g.SetProgram(mustParse(t, "MOVE"))
	g.Robot.Position.X = 3
	ResetLevel(g, msgs)
	if g.Robot.Position.X != 0 || g.ProgramLength() != 1 {
		t.Errorf("ResetLevel: robot %v, program length %d", g.Robot, g.ProgramLength())
	}

	for AdvanceLevel(g, msgs) {
	}
	last := store.IDs()[len(store.IDs())-1]
	if g.LevelID() != last {
		t.Errorf("AdvanceLevel stopped at %d, want %d", g.LevelID(), last)
	}
	if g.Messages[len(g.Messages)-1] != msgs.Get(messages.AllLevelsDone) {
		t.Errorf("last message = %q, want the all-done message", g.Messages[len(g.Messages)-1])
	}
}
