package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/multiball/internal/core"
	"github.com/vovakirdan/multiball/internal/registry"
)

// helpRows is the number of terminal rows reserved for the key help line.
const helpRows = 1

// EffectPlayer plays the sound effects triggered by game events.
// *audio.SoundManager implements it.
type EffectPlayer interface {
	PlayBlockDestroy()
	PlayBallCollision()
}

// Options configures a game session.
type Options struct {
	Logger    *log.Logger
	Sound     EffectPlayer // nil disables sound
	HoldTicks int          // Ticks a direction key stays held after a press
}

// Model is the Bubble Tea model for running a game mode.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       GameKeyMap
	help       help.Model
	latch      *HoldLatch
	sound      EffectPlayer
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg describes the whole terminal; one row is kept for key help.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.ScreenH = max(cfg.ScreenH-helpRows, 1)

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keys:       DefaultGameKeyMap(),
		help:       help.New(),
		latch:      NewHoldLatch(opts.HoldTicks),
		sound:      opts.Sound,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "mode", m.game.ID(), "seed", m.config.Seed,
		"width", m.config.ScreenW, "height", m.config.ScreenH)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("game quit", "mode", m.game.ID(), "score", m.gameState.Score, "level", m.gameState.Level)
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight:
		m.latch.Press(action)
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	w, h := msg.Width, max(msg.Height-helpRows, 1)
	m.config.ScreenW = w
	m.config.ScreenH = h
	m.screen.Resize(w, h)
	m.help.Width = w

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(w, h)
	} else {
		m.game.Reset(m.config)
	}
	m.logger.Debug("resized", "width", w, "height", h)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.latch.Apply(&m.inputFrame)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.dispatch(result.Events)

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// dispatch forwards the events of one frame to audio and the logger.
func (m Model) dispatch(events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case core.EventBlockDestroyed:
			if m.sound != nil {
				m.sound.PlayBlockDestroy()
			}
			m.logger.Debug("block destroyed", "ball", e.Ball, "block", e.Block, "score", e.Score)
		case core.EventBallsCollided:
			if m.sound != nil {
				m.sound.PlayBallCollision()
			}
			m.logger.Debug("balls collided", "ball", e.Ball, "other", e.Other)
		case core.EventBallFell:
			m.logger.Debug("ball fell", "ball", e.Ball)
		case core.EventStageClear, core.EventGameOver:
			// A held direction must not carry into the next level.
			m.latch.Release()
			m.logger.Info(e.Kind.String(), "level", e.Level, "score", e.Score)
		case core.EventLevelStarted:
			m.logger.Info(e.Kind.String(), "level", e.Level, "score", e.Score)
		case core.EventPaused:
			m.latch.Release()
			m.logger.Debug(e.Kind.String(), "level", e.Level)
		default:
			m.logger.Debug(e.Kind.String(), "level", e.Level)
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".multiball", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot dir", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
