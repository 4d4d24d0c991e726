package input

import (
	"fmt"
	"sort"
	"strings"
)

// Action is what the player wants the program editor to do
type Action int

const (
	ActionNone Action = iota

	// Program editing
	ActionAddMove
	ActionAddTurnLeft
	ActionAddTurnRight
	ActionAddJump
	ActionAddLight
	ActionAddBlock // argument names a palette entry
	ActionUndo
	ActionClear
	ActionScript // argument is a program in script form
	ActionShow

	// Running
	ActionRun
	ActionReset
	ActionNextLevel
	ActionLoadLevel // argument is a level id

	// Meta
	ActionHelp
	ActionQuit
)

// Intent is a decoded command: an action and whatever followed its keyword
type Intent struct {
	Action Action
	Arg    string
}

// Bindings maps input codes to actions. Multiple codes may point to the same Action.
type Bindings map[string]Action

// reserved codes keep their action whatever the configuration says
var reserved = map[string]Action{
	"arrow_up":    ActionAddMove,
	"arrow_left":  ActionAddTurnLeft,
	"arrow_right": ActionAddTurnRight,
	"arrow_down":  ActionUndo,
	"quit":        ActionQuit,
}

// DefaultBindings returns the built-in key map
func DefaultBindings() Bindings {
	b := Bindings{
		"move":  ActionAddMove,
		"m":     ActionAddMove,
		"left":  ActionAddTurnLeft,
		"l":     ActionAddTurnLeft,
		"right": ActionAddTurnRight,
		"r":     ActionAddTurnRight,
		"jump":  ActionAddJump,
		"j":     ActionAddJump,
		"light": ActionAddLight,
		"x":     ActionAddLight,
		"add":   ActionAddBlock,

		"undo":   ActionUndo,
		"u":      ActionUndo,
		"clear":  ActionClear,
		"script": ActionScript,
		"show":   ActionShow,

		"run":   ActionRun,
		"go":    ActionRun,
		"reset": ActionReset,
		"next":  ActionNextLevel,
		"n":     ActionNextLevel,
		"level": ActionLoadLevel,

		"help": ActionHelp,
		"?":    ActionHelp,
		"q":    ActionQuit,
		"exit": ActionQuit,
	}
	for code, act := range reserved {
		b[code] = act
	}
	return b
}

// MapToIntent decodes a line of input. The first word picks the action,
// case-insensitively; the rest of the line is the argument.
func (b Bindings) MapToIntent(line string) Intent {
	line = strings.TrimSpace(line)
	if line == "" {
		return Intent{Action: ActionNone}
	}
	code, arg, _ := strings.Cut(line, " ")
	if act, ok := b[strings.ToLower(code)]; ok {
		return Intent{Action: act, Arg: strings.TrimSpace(arg)}
	}
	return Intent{Action: ActionNone, Arg: line}
}

var actionNames = map[Action]string{
	ActionAddMove:      "move",
	ActionAddTurnLeft:  "turn_left",
	ActionAddTurnRight: "turn_right",
	ActionAddJump:      "jump",
	ActionAddLight:     "light",
	ActionAddBlock:     "add",
	ActionUndo:         "undo",
	ActionClear:        "clear",
	ActionScript:       "script",
	ActionShow:         "show",
	ActionRun:          "run",
	ActionReset:        "reset",
	ActionNextLevel:    "next_level",
	ActionLoadLevel:    "load_level",
	ActionHelp:         "help",
	ActionQuit:         "quit",
}

// ActionName returns the configuration name of an action
func ActionName(a Action) string {
	if n, ok := actionNames[a]; ok {
		return n
	}
	return "none"
}

// ActionByName is the inverse of ActionName
func ActionByName(name string) (Action, bool) {
	for a, n := range actionNames {
		if n == name {
			return a, true
		}
	}
	return ActionNone, false
}

// ByAction returns the bindings grouped by action, codes sorted
func (b Bindings) ByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range b {
		result[act] = append(result[act], code)
	}
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all bindings for the given action with a single
// code. Reserved codes cannot be rebound or removed.
func (b Bindings) SetSingleBinding(action Action, code string) error {
	code = strings.ToLower(strings.TrimSpace(code))
	if _, ok := reserved[code]; ok {
		return fmt.Errorf("code %q is reserved", code)
	}
	if code == "" || strings.ContainsAny(code, " \t") {
		return fmt.Errorf("invalid code %q", code)
	}

	for c, a := range b {
		if _, ok := reserved[c]; ok {
			continue
		}
		if a == action {
			delete(b, c)
		}
	}
	b[code] = action
	return nil
}

// Apply rebinds actions from a name to code map, as found in the settings file
func (b Bindings) Apply(overrides map[string]string) error {
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		act, ok := ActionByName(name)
		if !ok {
			return fmt.Errorf("unknown action %q", name)
		}
		if err := b.SetSingleBinding(act, overrides[name]); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}
