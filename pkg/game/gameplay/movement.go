package gameplay

import (
	"lightbot/pkg/game/program"
	"lightbot/pkg/game/state"
)

// RunCommand executes a single robot command. Unknown commands succeed
// without effect.
func RunCommand(g *state.Game, cmd program.Command) (bool, Reason) {
	switch cmd {
	case program.CommandMove:
		return Move(g)
	case program.CommandJump:
		return Jump(g)
	case program.CommandTurnL:
		g.Robot.Dir = g.Robot.Dir.TurnLeft()
	case program.CommandTurnR:
		g.Robot.Dir = g.Robot.Dir.TurnRight()
	case program.CommandLight:
		g.LightCell()
	}
	return true, ReasonNone
}

// Move steps the robot forward onto a walkable tile of the same height
func Move(g *state.Game) (bool, Reason) {
	return step(g, 0, ReasonBlocked)
}

// Jump steps the robot forward onto a walkable tile at most one level higher or lower
func Jump(g *state.Game) (bool, Reason) {
	return step(g, 1, ReasonJumpImpossible)
}

func step(g *state.Game, maxRise int, failure Reason) (bool, Reason) {
	if g == nil || g.Level == nil {
		return false, failure
	}

	from := g.Robot.Position
	to := g.Robot.Ahead()

	if !IsWalkable(g, to.X, to.Y) {
		return false, failure
	}
	if abs(heightAt(g, to)-heightAt(g, from)) > maxRise {
		return false, failure
	}

	g.Robot.Position = to
	// Enter first: a teleport relocates the robot and the old tile must
	// still see its leave trigger afterwards.
	HandleEnter(g, to)
	HandleLeave(g, from)
	return true, ReasonNone
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
