package program

import (
	"github.com/google/uuid"
)

// NewID returns a fresh block identifier
func NewID() string {
	return uuid.NewString()
}

// NewCommand creates a COMMAND block
func NewCommand(cmd Command) *Block {
	return &Block{
		ID:      NewID(),
		Type:    TypeCommand,
		Command: cmd,
	}
}

// NewLoop creates a LOOP block repeating children the given number of times
func NewLoop(iterations int, children ...*Block) *Block {
	return &Block{
		ID:         NewID(),
		Type:       TypeLoop,
		Iterations: iterations,
		Children:   children,
	}
}

// NewIfColor creates an IF_COLOR block running children when the robot stands on color
func NewIfColor(color string, children ...*Block) *Block {
	return &Block{
		ID:             NewID(),
		Type:           TypeIfColor,
		ConditionColor: color,
		Children:       children,
	}
}

// NewPaletteBlock creates the block a palette entry stands for. Palette entries
// are either a block type (LOOP, IF_COLOR) or a command name. Containers start
// empty with the editor defaults.
func NewPaletteBlock(kind string) *Block {
	switch BlockType(kind) {
	case TypeLoop:
		return NewLoop(DefaultIterations)
	case TypeIfColor:
		return NewIfColor(DefaultColor)
	}
	return NewCommand(Command(kind))
}

// Remove deletes the block with the given id wherever it is nested.
// Returns false if no block has that id.
func Remove(p *Program, id string) bool {
	if p == nil {
		return false
	}
	blocks := *p
	for i, b := range blocks {
		if b != nil && b.ID == id {
			*p = append(blocks[:i:i], blocks[i+1:]...)
			return true
		}
	}
	for _, b := range blocks {
		if b == nil || len(b.Children) == 0 {
			continue
		}
		children := Program(b.Children)
		if Remove(&children, id) {
			b.Children = children
			return true
		}
	}
	return false
}
