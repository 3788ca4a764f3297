package core

// Action represents a semantic frontend action, abstracted from physical key presses.
// Terminal and window frontends map their own key events onto the same actions.
type Action int

const (
	ActionNone       Action = iota
	ActionStart             // Space, Enter - start or resume the rally
	ActionPause             // P - pause the frame loop
	ActionRestart           // R - reset scores and ball
	ActionQuit              // Q, Ctrl+C - exit
	ActionScreenshot        // Ctrl+S - save the current frame as text
	ActionCopy              // Ctrl+Y - copy the current frame to the clipboard
	ActionHelp              // ? - toggle the full help view
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	case ActionCopy:
		return "Copy"
	case ActionHelp:
		return "Help"
	default:
		return "Unknown"
	}
}
