package breakout

import (
	"errors"
	"testing"
)

func TestSessionTransitions(t *testing.T) {
	tests := []struct {
		name  string
		from  Phase
		to    Phase
		legal bool
	}{
		{"idle to serving", PhaseIdle, PhaseServing, true},
		{"serving to playing", PhaseServing, PhasePlaying, true},
		{"serving to paused", PhaseServing, PhasePaused, true},
		{"playing to paused", PhasePlaying, PhasePaused, true},
		{"playing to stage clear", PhasePlaying, PhaseStageClear, true},
		{"playing to game over", PhasePlaying, PhaseGameOver, true},
		{"stage clear to serving", PhaseStageClear, PhaseServing, true},
		{"game over to serving", PhaseGameOver, PhaseServing, true},

		{"idle to playing", PhaseIdle, PhasePlaying, false},
		{"serving to stage clear", PhaseServing, PhaseStageClear, false},
		{"serving to game over", PhaseServing, PhaseGameOver, false},
		{"playing to serving", PhasePlaying, PhaseServing, false},
		{"stage clear to playing", PhaseStageClear, PhasePlaying, false},
		{"stage clear to paused", PhaseStageClear, PhasePaused, false},
		{"game over to paused", PhaseGameOver, PhasePaused, false},
		{"game over to stage clear", PhaseGameOver, PhaseStageClear, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := SessionState{Phase: tc.from, Level: 3, Score: 40}
			err := s.Transition(tc.to)

			if tc.legal {
				if err != nil {
					t.Fatalf("expected legal transition, got %v", err)
				}
				if s.Phase != tc.to {
					t.Errorf("Phase = %s, expected %s", s.Phase, tc.to)
				}
				return
			}

			if !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("expected ErrInvalidTransition, got %v", err)
			}
			if s.Phase != tc.from || s.Level != 3 || s.Score != 40 {
				t.Errorf("illegal transition changed state: %+v", s)
			}
		})
	}
}

func TestSessionPauseResumesToOrigin(t *testing.T) {
	for _, origin := range []Phase{PhaseServing, PhasePlaying} {
		t.Run(origin.String(), func(t *testing.T) {
			s := SessionState{Phase: origin}

			if err := s.Transition(PhasePaused); err != nil {
				t.Fatalf("pause failed: %v", err)
			}
			if s.ResumePhase() != origin {
				t.Errorf("ResumePhase = %s, expected %s", s.ResumePhase(), origin)
			}

			// Only the remembered phase is reachable
			for _, other := range []Phase{PhaseIdle, PhaseServing, PhasePlaying, PhaseStageClear, PhaseGameOver} {
				if other == origin {
					continue
				}
				if err := s.Transition(other); !errors.Is(err, ErrInvalidTransition) {
					t.Errorf("paused -> %s should be illegal, got %v", other, err)
				}
			}

			if err := s.Transition(origin); err != nil {
				t.Fatalf("resume failed: %v", err)
			}
			if s.Phase != origin {
				t.Errorf("Phase = %s, expected %s", s.Phase, origin)
			}
		})
	}
}

func TestPhaseRunning(t *testing.T) {
	running := map[Phase]bool{
		PhaseIdle:       false,
		PhaseServing:    true,
		PhasePlaying:    true,
		PhasePaused:     false,
		PhaseStageClear: false,
		PhaseGameOver:   false,
	}
	for p, want := range running {
		if p.Running() != want {
			t.Errorf("%s.Running() = %v, expected %v", p, p.Running(), want)
		}
	}
}
