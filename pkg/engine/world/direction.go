package world

import "fmt"

// Direction represents a cardinal heading
type Direction int

// Direction constants, in clockwise order
const (
	North Direction = iota
	East
	South
	West
)

// AllDirections returns all valid directions in turning order
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// ParseDirection parses the single-letter form used by level files (N, E, S, W)
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "N":
		return North, nil
	case "E":
		return East, nil
	case "S":
		return South, nil
	case "W":
		return West, nil
	default:
		return North, fmt.Errorf("unknown direction %q", s)
	}
}

// String returns the single-letter form of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return "?"
	}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// TurnLeft returns the direction one step counter-clockwise.
// Anything that is not a valid direction turns to North.
func (d Direction) TurnLeft() Direction {
	if !d.IsValid() {
		return North
	}
	return (d + 3) % 4
}

// TurnRight returns the direction one step clockwise.
// Anything that is not a valid direction turns to North.
func (d Direction) TurnRight() Direction {
	if !d.IsValid() {
		return North
	}
	return (d + 1) % 4
}

// Delta returns the x and y offsets for this direction. y grows southward.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// MarshalText implements encoding.TextMarshaler
func (d Direction) MarshalText() ([]byte, error) {
	if !d.IsValid() {
		return nil, fmt.Errorf("invalid direction %d", int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
