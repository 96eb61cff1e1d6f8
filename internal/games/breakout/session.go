package breakout

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when a phase change is not allowed.
var ErrInvalidTransition = errors.New("invalid phase transition")

// Phase is the session's position in the game lifecycle.
type Phase int

const (
	PhaseIdle       Phase = iota // No session started
	PhaseServing                 // Balls parked, waiting for launch
	PhasePlaying                 // Balls in flight
	PhasePaused                  // Frozen; remembers the phase to resume
	PhaseStageClear              // All blocks destroyed, waiting for next level
	PhaseGameOver                // All balls fell, waiting for restart
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseServing:
		return "serving"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseStageClear:
		return "stage_clear"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Running reports whether the phase advances the simulation.
func (p Phase) Running() bool {
	return p == PhaseServing || p == PhasePlaying
}

// SessionState holds phase, level and score.
type SessionState struct {
	Phase  Phase
	Level  int
	Score  int
	resume Phase // Phase to return to from PhasePaused
}

// Transition moves the session to the next phase.
// Illegal transitions leave the state unchanged.
func (s *SessionState) Transition(to Phase) error {
	if !s.canTransition(to) {
		return fmt.Errorf("breakout: %w: %s -> %s", ErrInvalidTransition, s.Phase, to)
	}
	switch {
	case to == PhasePaused:
		s.resume = s.Phase
	case s.Phase == PhasePaused:
		// Resuming may only go back where it came from.
		s.resume = PhaseIdle
	}
	s.Phase = to
	return nil
}

// ResumePhase returns the phase a paused session resumes to.
func (s *SessionState) ResumePhase() Phase {
	return s.resume
}

func (s *SessionState) canTransition(to Phase) bool {
	switch s.Phase {
	case PhaseIdle:
		return to == PhaseServing
	case PhaseServing:
		return to == PhasePlaying || to == PhasePaused
	case PhasePlaying:
		return to == PhasePaused || to == PhaseStageClear || to == PhaseGameOver
	case PhasePaused:
		return to == s.resume
	case PhaseStageClear, PhaseGameOver:
		return to == PhaseServing
	}
	return false
}
