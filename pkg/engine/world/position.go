package world

import "fmt"

// Position is a grid coordinate. y grows southward.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pos is a shorthand constructor for Position
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Step returns the position one cell away in the given direction
func (p Position) Step(dir Direction) Position {
	dx, dy := dir.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Less orders positions row by row, then by column
func (p Position) Less(o Position) bool {
	if p.Y != o.Y {
		return p.Y < o.Y
	}
	return p.X < o.X
}

// String returns the position as "(x,y)"
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
