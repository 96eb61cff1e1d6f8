package core

// EventKind identifies what happened during a simulation tick.
type EventKind int

const (
	EventNone           EventKind = iota
	EventLevelStarted             // Blocks regenerated, balls parked
	EventLaunched                 // Parked balls set in motion
	EventBlockDestroyed           // A ball destroyed a block
	EventBallsCollided            // Two balls exchanged an impulse
	EventBallFell                 // A ball crossed the floor
	EventStageClear               // Last block destroyed
	EventGameOver                 // Last moving ball fell
	EventPaused
	EventResumed
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "none"
	case EventLevelStarted:
		return "level_started"
	case EventLaunched:
		return "launched"
	case EventBlockDestroyed:
		return "block_destroyed"
	case EventBallsCollided:
		return "balls_collided"
	case EventBallFell:
		return "ball_fell"
	case EventStageClear:
		return "stage_clear"
	case EventGameOver:
		return "game_over"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	default:
		return "unknown"
	}
}

// Event is a typed notification emitted by a game during Step.
// Presentation layers (audio, logging) consume events; the simulation
// never calls into them directly.
type Event struct {
	Kind  EventKind
	Ball  int // Index of the ball involved, -1 if none
	Other int // Index of the second ball for collisions, -1 if none
	Block int // Block ID for block events, -1 if none
	Score int // Score after the event
	Level int // Level after the event
}
