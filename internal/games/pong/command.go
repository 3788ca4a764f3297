package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Command is an input delivered to the Driver. Frontends translate their own
// controls (keys, buttons, mouse) into commands.
type Command interface {
	command()
}

// Start begins or resumes the rally.
type Start struct{}

// Pause suspends the frame loop, keeping all match data.
type Pause struct{}

// Restart resets the match to 0-0 and waits for Start.
type Restart struct{}

// PointerMove carries a pointer position in field units.
type PointerMove struct {
	X, Y float64
}

func (Start) command()       {}
func (Pause) command()       {}
func (Restart) command()     {}
func (PointerMove) command() {}

// CommandFor maps a frontend action to the command it triggers.
// Actions handled by the frontend itself (quit, help, screenshots) return false.
func CommandFor(a core.Action) (Command, bool) {
	switch a {
	case core.ActionStart:
		return Start{}, true
	case core.ActionPause:
		return Pause{}, true
	case core.ActionRestart:
		return Restart{}, true
	default:
		return nil, false
	}
}
