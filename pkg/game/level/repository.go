package level

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
)

// Repository supplies validated level definitions
type Repository interface {
	// Level returns the level with the given id
	Level(id int) (*Level, bool)

	// IDs returns every level id in play order
	IDs() []int
}

//go:embed data/levels.json
var defaultLevels []byte

// Store is an in-memory Repository
type Store struct {
	byID map[int]*Level
	ids  []int
}

// NewStore validates the given levels and indexes them by id.
// Levels are played in ascending id order.
func NewStore(levels ...*Level) (*Store, error) {
	s := &Store{byID: make(map[int]*Level, len(levels))}
	for _, l := range levels {
		if l == nil {
			continue
		}
		if err := l.Validate(); err != nil {
			return nil, err
		}
		if _, dup := s.byID[l.ID]; dup {
			return nil, fmt.Errorf("duplicate level id %d", l.ID)
		}
		s.byID[l.ID] = l
		s.ids = append(s.ids, l.ID)
	}
	sort.Ints(s.ids)
	return s, nil
}

// Level returns the level with the given id
func (s *Store) Level(id int) (*Level, bool) {
	if s == nil {
		return nil, false
	}
	l, ok := s.byID[id]
	return l, ok
}

// IDs returns every level id in play order
func (s *Store) IDs() []int {
	if s == nil {
		return nil
	}
	out := make([]int, len(s.ids))
	copy(out, s.ids)
	return out
}

// Len returns the number of levels
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ids)
}

// LoadJSON reads a JSON array of levels, checks it against the level schema
// and validates every level.
func LoadJSON(r io.Reader) (*Store, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read levels: %w", err)
	}

	if err := ValidateSchema(raw); err != nil {
		return nil, err
	}

	var levels []*Level
	if err := json.Unmarshal(raw, &levels); err != nil {
		return nil, fmt.Errorf("decode levels: %w", err)
	}

	return NewStore(levels...)
}

// LoadFile loads levels from a JSON file
func LoadFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := LoadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Default returns the levels shipped with the game
func Default() (*Store, error) {
	return LoadJSON(bytes.NewReader(defaultLevels))
}
