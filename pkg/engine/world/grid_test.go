package world

import "testing"

func TestGrid_TileAt(t *testing.T) {
	g := NewGrid(3, []Tile{
		{X: 0, Y: 0, Type: TileGround},
		{X: 2, Y: 1, Type: TileDoor, ID: "door_A", State: Bool(false)},
	})

	if tile := g.TileAt(0, 0); tile == nil || tile.Type != TileGround {
		t.Errorf("TileAt(0,0) = %v, want ground tile", tile)
	}
	if tile := g.TileAt(2, 1); tile == nil || tile.ID != "door_A" {
		t.Errorf("TileAt(2,1) = %v, want door_A", tile)
	}
	if tile := g.TileAt(1, 1); tile != nil {
		t.Errorf("TileAt(1,1) = %v, want nil (no tile)", tile)
	}
	if tile := g.TileAt(-1, 0); tile != nil {
		t.Errorf("TileAt(-1,0) = %v, want nil (out of bounds)", tile)
	}
}

func TestGrid_TileByID(t *testing.T) {
	g := NewGrid(2, []Tile{
		{X: 1, Y: 1, Type: TileTeleport, ID: "tp_B"},
	})
	tile := g.TileByID("tp_B")
	if tile == nil || tile.Position() != Pos(1, 1) {
		t.Errorf("TileByID(tp_B) = %v, want tile at (1,1)", tile)
	}
	if tile := g.TileByID("missing"); tile != nil {
		t.Errorf("TileByID(missing) = %v, want nil", tile)
	}
	if tile := g.TileByID(""); tile != nil {
		t.Errorf("TileByID(\"\") = %v, want nil", tile)
	}
}

func TestGrid_RejectsOutOfBoundsAndDuplicates(t *testing.T) {
	g := NewGrid(2, []Tile{
		{X: 0, Y: 0, Type: TileGround, Height: 1},
		{X: 0, Y: 0, Type: TileVoid},
		{X: 5, Y: 0, Type: TileGround},
	})
	if n := len(g.Rejected()); n != 2 {
		t.Fatalf("len(Rejected()) = %d, want 2 (%v)", n, g.Rejected())
	}
	if tile := g.TileAt(0, 0); tile == nil || tile.Height != 1 {
		t.Errorf("TileAt(0,0) = %v, want the first tile declared", tile)
	}
}

func TestGrid_CopiesLayout(t *testing.T) {
	layout := []Tile{{X: 0, Y: 0, Type: TileGround}}
	g := NewGrid(1, layout)
	layout[0].Height = 7
	if h := g.TileAt(0, 0).Height; h != 0 {
		t.Errorf("grid tile height = %d after mutating layout, want 0", h)
	}
}

func TestGrid_NilSafe(t *testing.T) {
	var g *Grid
	if tile := g.TileAt(0, 0); tile != nil {
		t.Errorf("nil grid TileAt = %v, want nil", tile)
	}
	if tile := g.TileByID("x"); tile != nil {
		t.Errorf("nil grid TileByID = %v, want nil", tile)
	}
}

func TestGrid_ForEachTileRowOrder(t *testing.T) {
	g := NewGrid(2, []Tile{
		{X: 1, Y: 1, Type: TileGround},
		{X: 1, Y: 0, Type: TileGround},
		{X: 0, Y: 1, Type: TileGround},
	})
	var got []Position
	g.ForEachTile(func(tile *Tile) {
		got = append(got, tile.Position())
	})
	want := []Position{Pos(1, 0), Pos(0, 1), Pos(1, 1)}
	if len(got) != len(want) {
		t.Fatalf("ForEachTile visited %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ForEachTile visited %v, want %v", got, want)
			break
		}
	}
}
