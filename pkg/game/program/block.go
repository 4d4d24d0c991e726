// Package program defines the block tree a player builds to drive the robot.
package program

// BlockType discriminates program blocks
type BlockType string

// Block types
const (
	TypeCommand BlockType = "COMMAND"
	TypeLoop    BlockType = "LOOP"
	TypeIfColor BlockType = "IF_COLOR"
)

// Command is a single robot instruction carried by a COMMAND block
type Command string

// Robot commands
const (
	CommandMove  Command = "MOVE"
	CommandTurnL Command = "TURN_L"
	CommandTurnR Command = "TURN_R"
	CommandJump  Command = "JUMP"
	CommandLight Command = "LIGHT"
	CommandNone  Command = ""
)

// Defaults for containers added from the editor palette
const (
	DefaultColor      = "red"
	DefaultIterations = 2
)

// Commands returns the commands the robot understands
func Commands() []Command {
	return []Command{CommandMove, CommandTurnL, CommandTurnR, CommandJump, CommandLight}
}

// IsKnown returns true if the robot understands the command
func (c Command) IsKnown() bool {
	switch c {
	case CommandMove, CommandTurnL, CommandTurnR, CommandJump, CommandLight:
		return true
	}
	return false
}

// Block is one node of a program. Which fields matter depends on Type:
// COMMAND uses Command, LOOP uses Iterations and Children, IF_COLOR uses
// ConditionColor and Children.
type Block struct {
	ID   string    `json:"id"`
	Type BlockType `json:"type"`

	Command Command `json:"command,omitempty"`

	Children       []*Block `json:"children,omitempty"`
	Iterations     int      `json:"iterations,omitempty"`
	ConditionColor string   `json:"conditionColor,omitempty"`
}

// IsContainer returns true for blocks that hold children
func (b *Block) IsContainer() bool {
	return b != nil && (b.Type == TypeLoop || b.Type == TypeIfColor)
}

// Program is an ordered sequence of top-level blocks
type Program []*Block

// Len counts every block of the program, nested ones included
func (p Program) Len() int {
	count := 0
	for _, b := range p {
		if b == nil {
			continue
		}
		count++
		count += Program(b.Children).Len()
	}
	return count
}

// Find returns the block with the given id, searching depth first
func (p Program) Find(id string) *Block {
	for _, b := range p {
		if b == nil {
			continue
		}
		if b.ID == id {
			return b
		}
		if found := Program(b.Children).Find(id); found != nil {
			return found
		}
	}
	return nil
}

// At follows a block path (one index per nesting level) and returns the block, or nil
func (p Program) At(path []int) *Block {
	blocks := p
	var b *Block
	for _, i := range path {
		if i < 0 || i >= len(blocks) {
			return nil
		}
		b = blocks[i]
		if b == nil {
			return nil
		}
		blocks = b.Children
	}
	return b
}

// Clone returns a deep copy of the program
func (p Program) Clone() Program {
	if p == nil {
		return nil
	}
	out := make(Program, len(p))
	for i, b := range p {
		if b == nil {
			continue
		}
		c := *b
		c.Children = Program(b.Children).Clone()
		out[i] = &c
	}
	return out
}
