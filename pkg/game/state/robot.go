package state

import (
	"fmt"

	"lightbot/pkg/engine/world"
)

// Robot is the pose of the robot on the grid
type Robot struct {
	Position world.Position  `json:"position"`
	Dir      world.Direction `json:"dir"`
}

// Ahead returns the position one step in front of the robot
func (r Robot) Ahead() world.Position {
	return r.Position.Step(r.Dir)
}

func (r Robot) String() string {
	return fmt.Sprintf("%v facing %v", r.Position, r.Dir)
}
