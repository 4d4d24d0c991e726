package gameplay

import (
	"lightbot/pkg/game/program"
	"lightbot/pkg/game/state"
)

// EventKind names a step of a run
type EventKind string

// Run events, in the order a run emits them
const (
	EventRunStarted      EventKind = "RUN_STARTED"
	EventBlockStarted    EventKind = "BLOCK_STARTED"
	EventCommandFinished EventKind = "COMMAND_FINISHED"
	EventRunFinished     EventKind = "RUN_FINISHED"
)

// Event describes one observable step of a run together with a copy of the
// session state right after it.
type Event struct {
	Kind      EventKind         `json:"kind"`
	Path      []int             `json:"path,omitempty"`
	BlockID   string            `json:"block_id,omitempty"`
	BlockType program.BlockType `json:"block_type,omitempty"`
	Command   program.Command   `json:"command,omitempty"`
	OK        bool              `json:"ok"`
	Reason    Reason            `json:"reason,omitempty"`
	Outcome   Outcome           `json:"outcome,omitempty"`
	State     state.Snapshot    `json:"state"`
}

// Observer receives run events on the goroutine executing the run
type Observer interface {
	OnEvent(Event)
}

// ObserverFunc adapts a function to Observer
type ObserverFunc func(Event)

// OnEvent calls f(e)
func (f ObserverFunc) OnEvent(e Event) {
	f(e)
}

// Observers fans events out to several observers
type Observers []Observer

// OnEvent forwards e to every observer in order
func (o Observers) OnEvent(e Event) {
	for _, obs := range o {
		if obs != nil {
			obs.OnEvent(e)
		}
	}
}
