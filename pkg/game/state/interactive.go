package state

import (
	"maps"

	"lightbot/pkg/engine/world"
)

// InteractiveState holds the live boolean state of interactive tiles, keyed by
// tile id. Doors are open when true, cracked tiles are safe when true.
type InteractiveState struct {
	values map[string]bool
}

// NewInteractiveState creates an empty store
func NewInteractiveState() *InteractiveState {
	return &InteractiveState{values: make(map[string]bool)}
}

// Initialize replaces the store contents with the declared state of every
// tile that has both an id and a state.
func (s *InteractiveState) Initialize(layout []world.Tile) {
	s.values = make(map[string]bool, len(layout))
	for i := range layout {
		if t := &layout[i]; t.IsInteractive() {
			s.values[t.ID] = *t.State
		}
	}
}

// Set stores the state of a tile
func (s *InteractiveState) Set(id string, value bool) {
	if s.values == nil {
		s.values = make(map[string]bool)
	}
	s.values[id] = value
}

// Get returns the state of a tile and whether it is tracked
func (s *InteractiveState) Get(id string) (value, ok bool) {
	if s == nil {
		return false, false
	}
	value, ok = s.values[id]
	return value, ok
}

// Toggle flips the state of a tile, treating an untracked tile as false, and
// returns the new value.
func (s *InteractiveState) Toggle(id string) bool {
	value, _ := s.Get(id)
	s.Set(id, !value)
	return !value
}

// Len returns the number of tracked tiles
func (s *InteractiveState) Len() int {
	if s == nil {
		return 0
	}
	return len(s.values)
}

// Snapshot returns a copy of the store contents
func (s *InteractiveState) Snapshot() map[string]bool {
	out := make(map[string]bool, s.Len())
	if s != nil {
		maps.Copy(out, s.values)
	}
	return out
}
