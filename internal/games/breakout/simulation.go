package breakout

import (
	"github.com/vovakirdan/multiball/internal/config"
	"github.com/vovakirdan/multiball/internal/core"
)

// Simulation advances balls, paddle and blocks one frame at a time.
// It owns every entity; the caller supplies the area and input per frame
// and consumes the returned events.
type Simulation struct {
	cfg    config.BreakoutConfig
	balls  []*Ball
	paddle *Paddle
	blocks Blocks
	state  SessionState
	rng    *core.SimpleRNG

	baseSpeed float64 // Configured speed, restored on restart
	events    []core.Event
}

// NewSimulation creates an idle simulation with cfg.Ball.Count balls.
// Balls alternate their initial horizontal direction.
func NewSimulation(cfg config.BreakoutConfig, blocks Blocks, seed int64) *Simulation {
	s := &Simulation{
		cfg:       cfg,
		blocks:    blocks,
		rng:       core.NewSimpleRNG(seed),
		baseSpeed: cfg.Ball.BaseSpeed,
		paddle: &Paddle{
			Width:        cfg.Paddle.Width,
			Height:       cfg.Paddle.Height,
			Speed:        cfg.Paddle.Speed,
			BottomOffset: cfg.Paddle.BottomOffset,
		},
	}

	count := max(cfg.Ball.Count, 1)
	s.balls = make([]*Ball, count)
	for i := range s.balls {
		vx := float64(launchSpeedX)
		if i%2 == 1 {
			vx = -vx
		}
		s.balls[i] = NewBall(cfg.Ball.Size, cfg.Ball.BaseSpeed, cfg.Ball.LaunchOffset, vx)
	}
	return s
}

// Balls returns the balls in update order.
func (s *Simulation) Balls() []*Ball {
	return s.balls
}

// Paddle returns the paddle.
func (s *Simulation) Paddle() *Paddle {
	return s.paddle
}

// Blocks returns the block registry.
func (s *Simulation) Blocks() Blocks {
	return s.blocks
}

// State returns a copy of the session state.
func (s *Simulation) State() SessionState {
	return s.state
}

// RNG returns the simulation's random source.
func (s *Simulation) RNG() *core.SimpleRNG {
	return s.rng
}

// Start begins a new session from any phase: level 1, score 0, fresh
// blocks, parked balls and a centered paddle.
func (s *Simulation) Start(area core.Rect) []core.Event {
	s.events = s.events[:0]
	s.state = SessionState{Phase: PhaseServing, Level: 1}
	s.paddle.Center(area)
	s.beginLevel(area, s.baseSpeed)
	return s.events
}

// Step advances one frame. The returned slice is reused by the next call.
func (s *Simulation) Step(in core.InputFrame, area core.Rect) []core.Event {
	s.events = s.events[:0]

	if in.Has(core.ActionPause) {
		s.togglePause()
	}

	switch s.state.Phase {
	case PhaseStageClear:
		if in.Has(core.ActionNext) {
			s.nextLevel(area)
		}
		return s.events
	case PhaseGameOver:
		if in.Has(core.ActionRestart) {
			s.restart(area)
		}
		return s.events
	}

	if !s.state.Phase.Running() {
		return s.events
	}

	if s.state.Phase == PhaseServing && in.Has(core.ActionLaunch) {
		s.launch()
	}

	s.paddle.Update(in.Has(core.ActionLeft), in.Has(core.ActionRight), area.W)

	if s.state.Phase != PhasePlaying {
		return s.events
	}

	if done := s.updateBalls(area); done {
		return s.events
	}
	s.collideBalls(area)

	return s.events
}

// Relayout fits the paddle and every ball into a resized area without
// touching the session. Balls waiting for launch are parked again.
func (s *Simulation) Relayout(area core.Rect) {
	s.paddle.Update(false, false, area.W)

	parked := s.state.Phase == PhaseServing ||
		(s.state.Phase == PhasePaused && s.state.ResumePhase() == PhaseServing)
	for _, b := range s.balls {
		b.Fit(area, parked)
	}
}

// NextLevel moves a cleared stage to the next level.
func (s *Simulation) NextLevel(area core.Rect) []core.Event {
	s.events = s.events[:0]
	s.nextLevel(area)
	return s.events
}

// Restart starts over after a game over.
func (s *Simulation) Restart(area core.Rect) []core.Event {
	s.events = s.events[:0]
	s.restart(area)
	return s.events
}

func (s *Simulation) nextLevel(area core.Rect) {
	if s.state.Phase != PhaseStageClear {
		return
	}
	if err := s.state.Transition(PhaseServing); err != nil {
		return
	}
	s.state.Level++
	s.beginLevel(area, -1)
	for _, b := range s.balls {
		b.SpeedUp(s.cfg.Ball.LevelSpeedUp)
	}
}

func (s *Simulation) restart(area core.Rect) {
	if s.state.Phase != PhaseGameOver {
		return
	}
	if err := s.state.Transition(PhaseServing); err != nil {
		return
	}
	s.state.Level = 1
	s.state.Score = 0
	s.beginLevel(area, s.baseSpeed)
}

// beginLevel regenerates blocks and parks every ball. A non-negative speed
// replaces each ball's base speed.
func (s *Simulation) beginLevel(area core.Rect, speed float64) {
	s.blocks.Generate(area)
	for _, b := range s.balls {
		b.Reset(area, s.rng)
		if speed >= 0 {
			b.SetBaseSpeed(speed)
		}
	}
	s.emit(core.EventLevelStarted, -1, -1, -1)
}

func (s *Simulation) togglePause() {
	switch {
	case s.state.Phase.Running():
		if s.state.Transition(PhasePaused) == nil {
			s.emit(core.EventPaused, -1, -1, -1)
		}
	case s.state.Phase == PhasePaused:
		if s.state.Transition(s.state.ResumePhase()) == nil {
			s.emit(core.EventResumed, -1, -1, -1)
		}
	}
}

func (s *Simulation) launch() {
	if s.state.Transition(PhasePlaying) != nil {
		return
	}
	for _, b := range s.balls {
		b.Start()
	}
	s.emit(core.EventLaunched, -1, -1, -1)
}

// updateBalls moves every ball and resolves block hits.
// Returns true when the frame ended in stage clear or game over.
func (s *Simulation) updateBalls(area core.Rect) bool {
	paddle := s.paddle.Rect(area)

	for i, b := range s.balls {
		res := b.Update(area, paddle)

		if res.Fallen {
			s.emit(core.EventBallFell, i, -1, -1)
			if s.movingBalls() == 0 {
				if s.state.Transition(PhaseGameOver) == nil {
					s.emit(core.EventGameOver, i, -1, -1)
				}
				return true
			}
			continue
		}
		if !res.Active {
			continue
		}

		// First hit only; one block per ball per frame.
		for _, blk := range s.blocks.Live(area) {
			if !res.NextRect.Intersects(blk.Rect) {
				continue
			}
			s.blocks.Destroy(blk.ID)
			b.HandleBlockCollision()
			s.state.Score += s.cfg.Gameplay.BlockPoints
			s.emit(core.EventBlockDestroyed, i, -1, blk.ID)

			if s.blocks.Remaining() == 0 {
				s.stageClear(i)
				return true
			}
			break
		}
	}
	return false
}

func (s *Simulation) stageClear(ball int) {
	for _, b := range s.balls {
		b.Stop()
	}
	if s.state.Transition(PhaseStageClear) == nil {
		s.emit(core.EventStageClear, ball, -1, -1)
	}
}

// collideBalls resolves every moving pair once, in index order.
func (s *Simulation) collideBalls(area core.Rect) {
	for i := 0; i < len(s.balls); i++ {
		for j := i + 1; j < len(s.balls); j++ {
			a, b := s.balls[i], s.balls[j]
			if !a.CheckBallCollision(b) {
				continue
			}
			if a.HandleBallCollision(b, area) {
				s.emit(core.EventBallsCollided, i, j, -1)
			}
		}
	}
}

func (s *Simulation) movingBalls() int {
	n := 0
	for _, b := range s.balls {
		if b.Moving {
			n++
		}
	}
	return n
}

func (s *Simulation) emit(kind core.EventKind, ball, other, block int) {
	s.events = append(s.events, core.Event{
		Kind:  kind,
		Ball:  ball,
		Other: other,
		Block: block,
		Score: s.state.Score,
		Level: s.state.Level,
	})
}
