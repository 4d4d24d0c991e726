package ws

import (
	"encoding/json"

	"lightbot/pkg/game/gameplay"
	"lightbot/pkg/game/program"
	"lightbot/pkg/game/state"
)

// Message types
const (
	TypeRun    = "RUN"
	TypeCancel = "CANCEL"
	TypeReset  = "RESET"

	TypeEvent  = "EVENT"
	TypeResult = "RESULT"
	TypeState  = "STATE"
	TypeError  = "ERROR"
)

// BaseMsg carries the type every message starts with
type BaseMsg struct {
	Type string `json:"type"`
}

// RunMsg starts a run. The program is given either as a block tree or as a script.
type RunMsg struct {
	Type    string          `json:"type"`
	LevelID int             `json:"level_id"`
	Program program.Program `json:"program,omitempty"`
	Script  string          `json:"script,omitempty"`
}

// EventMsg forwards one step of a run
type EventMsg struct {
	Type  string         `json:"type"`
	Event gameplay.Event `json:"event"`
}

// ResultMsg ends a run
type ResultMsg struct {
	Type     string           `json:"type"`
	Outcome  gameplay.Outcome `json:"outcome"`
	Reason   gameplay.Reason  `json:"reason,omitempty"`
	Path     []int            `json:"path,omitempty"`
	Messages []string         `json:"messages"`
	State    state.Snapshot   `json:"state"`
}

// StateMsg answers RESET with the state of the session
type StateMsg struct {
	Type  string         `json:"type"`
	State state.Snapshot `json:"state"`
}

// ErrorMsg reports a rejected request
type ErrorMsg struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// DecodeBase reads the type of a raw message
func DecodeBase(raw []byte) (BaseMsg, error) {
	var b BaseMsg
	err := json.Unmarshal(raw, &b)
	return b, err
}
