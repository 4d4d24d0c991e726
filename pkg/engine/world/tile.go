// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

// TileType is the kind of a grid tile
type TileType string

// Tile types
const (
	TileGround   TileType = "ground"
	TileVoid     TileType = "void"
	TileSwitch   TileType = "switch"
	TileDoor     TileType = "door"
	TileTeleport TileType = "teleport"
	TileCracked  TileType = "cracked"
)

// IsValid returns true for the known tile types
func (t TileType) IsValid() bool {
	switch t {
	case TileGround, TileVoid, TileSwitch, TileDoor, TileTeleport, TileCracked:
		return true
	}
	return false
}

// Tile is the static descriptor of one grid cell
type Tile struct {
	X      int      `json:"x"`
	Y      int      `json:"y"`
	Type   TileType `json:"type"`
	Height int      `json:"height"`

	// Color is matched by IF_COLOR blocks
	Color string `json:"color,omitempty"`

	// Interactive linkage: ID names this tile, TargetID names the tile a
	// switch toggles or a teleport sends to, State is the initial value
	// (open for doors, safe for cracked tiles).
	ID       string `json:"id,omitempty"`
	TargetID string `json:"targetId,omitempty"`
	State    *bool  `json:"state,omitempty"`
}

// Position returns the tile coordinates
func (t *Tile) Position() Position {
	return Position{X: t.X, Y: t.Y}
}

// IsVoid returns true if the tile cannot be stood on at all
func (t *Tile) IsVoid() bool {
	return t == nil || t.Type == TileVoid
}

// IsInteractive returns true if the tile carries tracked state
func (t *Tile) IsInteractive() bool {
	return t != nil && t.ID != "" && t.State != nil
}

// Bool returns a pointer to v, for building tiles with a declared state
func Bool(v bool) *bool {
	return &v
}
