package pong

// EventKind classifies a Driver notification.
type EventKind int

const (
	EventPhase      EventKind = iota // the driver entered a new phase
	EventWallBounce                  // ball reflected off the top or bottom edge
	EventPaddleHit                   // a paddle returned the ball
	EventPoint                       // a side scored
	EventGameOver                    // a side reached the winning score
)

// String returns the event name used in logs.
func (k EventKind) String() string {
	switch k {
	case EventPhase:
		return "phase"
	case EventWallBounce:
		return "wall"
	case EventPaddleHit:
		return "paddle"
	case EventPoint:
		return "point"
	case EventGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Event is delivered to observers registered with WithObserver.
type Event struct {
	Kind  EventKind
	Phase Phase   // phase after the event
	Side  Side    // paddle, scorer or winner, when relevant
	Score [2]int  // left and right scores after the event
	Speed float64 // ball speed after the event
	Stats Stats   // match totals so far
}

// Observer receives Driver events on the game's thread. It must not call back into
// the Driver.
type Observer func(Event)
