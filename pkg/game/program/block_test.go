package program

import "testing"

func sampleProgram() Program {
	return Program{
		&Block{ID: "a", Type: TypeCommand, Command: CommandMove},
		&Block{ID: "b", Type: TypeLoop, Iterations: 2, Children: []*Block{
			{ID: "c", Type: TypeCommand, Command: CommandMove},
			{ID: "d", Type: TypeIfColor, ConditionColor: "red", Children: []*Block{
				{ID: "e", Type: TypeCommand, Command: CommandLight},
			}},
		}},
	}
}

func TestProgram_LenCountsNestedBlocks(t *testing.T) {
	if got := sampleProgram().Len(); got != 5 {
		t.Errorf("Len() = %d, want 5", got)
	}
	if got := (Program{}).Len(); got != 0 {
		t.Errorf("empty Len() = %d, want 0", got)
	}
}

func TestProgram_Find(t *testing.T) {
	p := sampleProgram()
	if b := p.Find("e"); b == nil || b.Command != CommandLight {
		t.Errorf("Find(e) = %v, want the nested LIGHT block", b)
	}
	if b := p.Find("zzz"); b != nil {
		t.Errorf("Find(zzz) = %v, want nil", b)
	}
}

func TestProgram_At(t *testing.T) {
	p := sampleProgram()
	if b := p.At([]int{1, 1, 0}); b == nil || b.ID != "e" {
		t.Errorf("At([1 1 0]) = %v, want block e", b)
	}
	if b := p.At([]int{3}); b != nil {
		t.Errorf("At([3]) = %v, want nil", b)
	}
	if b := p.At(nil); b != nil {
		t.Errorf("At(nil) = %v, want nil", b)
	}
}

func TestProgram_CloneIsDeep(t *testing.T) {
	p := sampleProgram()
	c := p.Clone()
	c[1].Children[0].Command = CommandJump
	if p[1].Children[0].Command != CommandMove {
		t.Error("mutating the clone changed the original program")
	}
}

func TestRemove_TopLevel(t *testing.T) {
	p := sampleProgram()
	if !Remove(&p, "a") {
		t.Fatal("Remove(a) = false, want true")
	}
	if len(p) != 1 || p[0].ID != "b" {
		t.Errorf("after Remove(a) program = %v, want [b]", p)
	}
}

func TestRemove_Nested(t *testing.T) {
	p := sampleProgram()
	if !Remove(&p, "e") {
		t.Fatal("Remove(e) = false, want true")
	}
	if got := p.Len(); got != 4 {
		t.Errorf("Len() after nested remove = %d, want 4", got)
	}
	if b := p.Find("e"); b != nil {
		t.Error("block e still present after Remove")
	}
}

func TestRemove_Missing(t *testing.T) {
	p := sampleProgram()
	if Remove(&p, "nope") {
		t.Error("Remove(nope) = true, want false")
	}
	if Remove(nil, "a") {
		t.Error("Remove(nil, a) = true, want false")
	}
}

func TestNewPaletteBlock(t *testing.T) {
	loop := NewPaletteBlock("LOOP")
	if loop.Type != TypeLoop || loop.Iterations != DefaultIterations || len(loop.Children) != 0 {
		t.Errorf("NewPaletteBlock(LOOP) = %+v, want empty loop with default iterations", loop)
	}
	cond := NewPaletteBlock("IF_COLOR")
	if cond.Type != TypeIfColor || cond.ConditionColor != DefaultColor {
		t.Errorf("NewPaletteBlock(IF_COLOR) = %+v, want IF_COLOR with default color", cond)
	}
	move := NewPaletteBlock("MOVE")
	if move.Type != TypeCommand || move.Command != CommandMove {
		t.Errorf("NewPaletteBlock(MOVE) = %+v, want MOVE command", move)
	}
	if move.ID == "" || move.ID == loop.ID {
		t.Errorf("palette blocks share or lack ids: %q %q", move.ID, loop.ID)
	}
}
