// Package renderer defines how a game session is presented to the player.
package renderer

import (
	"lightbot/pkg/game/gameplay"
	"lightbot/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleTile
	StyleRobot
	StyleGoal
	StyleGoalLit
	StyleDoorOpen
	StyleDoorClosed
	StyleSwitch
	StyleTeleport
	StyleCracked
	StyleBroken
	StyleAction
	StyleDenied
	StyleSubtle
)

// Renderer defines the interface for game rendering backends
type Renderer interface {
	// Init initializes the renderer (colors, terminal detection)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders the board, the status line and the message log
	RenderFrame(g *state.Game)

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// ShowMessage displays a message to the user
	ShowMessage(msg string)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the screen
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame renders a complete game frame
func RenderFrame(g *state.Game) {
	if Current != nil {
		Current.RenderFrame(g)
	}
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

// ShowMessage displays a message with the current renderer
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}

// Follow returns an observer redrawing g with the current renderer after
// every executed command and at both ends of a run. It must be used on the
// goroutine running the program, which is where observers are called.
func Follow(g *state.Game) gameplay.Observer {
	return gameplay.ObserverFunc(func(e gameplay.Event) {
		switch e.Kind {
		case gameplay.EventRunStarted, gameplay.EventCommandFinished, gameplay.EventRunFinished:
			if Current != nil {
				Current.Clear()
				Current.RenderFrame(g)
			}
		}
	})
}
