package world

import "fmt"

// Grid represents a level map with encapsulated tile storage.
// Positions without a tile are void.
type Grid struct {
	tileMap map[int]map[int]*Tile
	tileDir map[string]*Tile
	size    int

	rejected []string
}

// NewGrid indexes the given layout on a size x size grid.
// Tiles outside the grid, or on a position already taken by an earlier tile,
// are left out and reported by Rejected.
func NewGrid(size int, layout []Tile) *Grid {
	g := &Grid{}
	g.Build(size, layout)
	return g
}

// Size returns the number of rows (and columns) in the grid
func (g *Grid) Size() int {
	return g.size
}

// IsValidPosition checks if an x/y position is within grid bounds
func (g *Grid) IsValidPosition(x, y int) bool {
	return x >= 0 && x < g.size && y >= 0 && y < g.size
}

// TileAt returns the tile at the given position, or nil if there is none
func (g *Grid) TileAt(x, y int) *Tile {
	if g == nil || !g.IsValidPosition(x, y) {
		return nil
	}

	if g.tileMap == nil {
		return nil
	}

	row, found := g.tileMap[y]
	if !found {
		return nil
	}

	return row[x]
}

// TileByID returns the tile carrying the given id, or nil if not found
func (g *Grid) TileByID(id string) *Tile {
	if g == nil || g.tileDir == nil || id == "" {
		return nil
	}
	return g.tileDir[id]
}

// Rejected describes the layout entries that were left out when building
func (g *Grid) Rejected() []string {
	return g.rejected
}

// Build initializes the grid from a layout
func (g *Grid) Build(size int, layout []Tile) {
	if size < 0 {
		size = 0
	}

	g.size = size
	g.tileMap = make(map[int]map[int]*Tile, size)
	g.tileDir = make(map[string]*Tile)
	g.rejected = nil

	for i := range layout {
		t := layout[i]

		if !g.IsValidPosition(t.X, t.Y) {
			g.rejected = append(g.rejected, fmt.Sprintf("tile %d at %v is outside the %dx%d grid", i, t.Position(), size, size))
			continue
		}

		row, found := g.tileMap[t.Y]
		if !found {
			row = make(map[int]*Tile)
			g.tileMap[t.Y] = row
		}
		if _, taken := row[t.X]; taken {
			g.rejected = append(g.rejected, fmt.Sprintf("tile %d duplicates position %v", i, t.Position()))
			continue
		}

		row[t.X] = &t

		if t.ID != "" {
			if _, taken := g.tileDir[t.ID]; taken {
				g.rejected = append(g.rejected, fmt.Sprintf("tile %d duplicates id %q", i, t.ID))
				continue
			}
			g.tileDir[t.ID] = &t
		}
	}
}

// ForEachTile iterates over all tiles row by row, calling the provided function for each
func (g *Grid) ForEachTile(fn func(t *Tile)) {
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			if t := g.TileAt(x, y); t != nil {
				fn(t)
			}
		}
	}
}
