package breakout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/multiball/internal/config"
	"github.com/vovakirdan/multiball/internal/core"
	"github.com/vovakirdan/multiball/internal/registry"
)

// Visual characters for rendering
const (
	PaddleChar = '='
	BallChar   = '●'
	BlockChar  = '█'
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// Minimum screen size in cells.
const (
	minScreenW = 30
	minScreenH = 12
)

// Mode ball counts.
const (
	singleBallCount = 1
	multiBallCount  = 3
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// ballCountOverride replaces the mode's ball count when positive
var ballCountOverride int

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
// Unknown names clear the preset.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetBallCount overrides the number of balls for every mode. Zero restores
// the mode defaults.
func SetBallCount(n int) {
	ballCountOverride = max(n, 0)
}

// Game adapts a Simulation to the registry.Game interface: it derives the
// world area from the screen size and projects world state onto cells.
type Game struct {
	id        string
	title     string
	ballCount int

	sim  *Simulation
	grid *BlockGrid
	cfg  config.BreakoutConfig

	runtime        core.RuntimeConfig
	area           core.Rect
	tickCount      int
	screenTooSmall bool
}

// New creates a single-ball game.
func New() *Game {
	return &Game{id: "breakout", title: "Breakout", ballCount: singleBallCount}
}

// NewMultiball creates a game with several balls in play.
func NewMultiball() *Game {
	return &Game{id: "multiball", title: "Multiball", ballCount: multiBallCount}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset starts a new session at level 1.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config; the CLI has already reported a broken custom path.
	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.DefaultBreakoutConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}

	cfg.Ball.Count = g.ballCount
	if ballCountOverride > 0 {
		cfg.Ball.Count = ballCountOverride
	}
	g.cfg = cfg

	g.tickCount = 0
	g.layout(runtime.ScreenW, runtime.ScreenH)

	g.grid = NewBlockGrid(cfg.Blocks)
	g.sim = NewSimulation(cfg, g.grid, runtime.Seed)
	g.sim.Start(g.area)
}

// Resize relayouts for a new screen size, keeping the session.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.layout(width, height)
	if g.sim != nil {
		g.sim.Relayout(g.area)
	}
}

// layout converts the screen size to the world area.
func (g *Game) layout(screenW, screenH int) {
	g.screenTooSmall = screenW < minScreenW || screenH < minScreenH

	rows := max(screenH-hudRows, 0)
	g.area = core.NewRect(0, 0,
		float64(screenW)*g.cfg.Field.CellWidth,
		float64(rows)*g.cfg.Field.CellHeight)
}

// Area returns the current world area.
func (g *Game) Area() core.Rect {
	return g.area
}

// Config returns the effective configuration of the current session.
func (g *Game) Config() config.BreakoutConfig {
	return g.cfg
}

// Simulation returns the underlying simulation.
func (g *Game) Simulation() *Simulation {
	return g.sim
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tickCount++

	var events []core.Event
	if !g.screenTooSmall {
		// The simulation reuses its buffer between frames.
		events = append(events, g.sim.Step(in, g.area)...)
	}

	return core.StepResult{
		State:  g.State(),
		Events: events,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.sim.State()
	return core.GameState{
		Score:    st.Score,
		Level:    st.Level,
		GameOver: st.Phase == PhaseGameOver,
		Paused:   st.Phase == PhasePaused,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", minScreenW, minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)
	g.renderBlocks(dst)
	g.renderPaddle(dst)
	g.renderBalls(dst)
	g.renderOverlay(dst)
}

// renderHUD draws level, balls in play and score.
func (g *Game) renderHUD(dst *core.Screen) {
	st := g.sim.State()

	levelText := fmt.Sprintf("LEVEL %03d", st.Level)
	dst.DrawTextColored(1, 0, levelText, core.ColorBrightCyan)

	ballsText := fmt.Sprintf("BALLS %d/%d", g.liveBalls(), len(g.sim.Balls()))
	dst.DrawTextCentered(0, ballsText)

	scoreText := fmt.Sprintf("SCORE %05d", st.Score)
	dst.DrawTextColored(dst.Width()-len(scoreText)-1, 0, scoreText, core.ColorBrightYellow)
}

func (g *Game) liveBalls() int {
	n := 0
	for _, b := range g.sim.Balls() {
		if b.Visible {
			n++
		}
	}
	return n
}

// renderBlocks draws every live block, colored by row hue.
func (g *Game) renderBlocks(dst *core.Screen) {
	for _, blk := range g.grid.Live(g.area) {
		x0, x1 := g.cellSpanX(blk.Rect.X, blk.Rect.Right())
		y0, y1 := g.cellSpanY(blk.Rect.Y, blk.Rect.Bottom())
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				dst.SetColored(x, y, BlockChar, blk.Color)
			}
		}
	}
}

// renderPaddle draws the player's paddle.
func (g *Game) renderPaddle(dst *core.Screen) {
	r := g.sim.Paddle().Rect(g.area)
	x0, x1 := g.cellSpanX(r.X, r.Right())
	y := g.cellY(r.Y)
	for x := x0; x < x1; x++ {
		dst.SetColored(x, y, PaddleChar, core.ColorBrightWhite)
	}
}

// renderBalls draws every visible ball at the cell under its center.
func (g *Game) renderBalls(dst *core.Screen) {
	for _, b := range g.sim.Balls() {
		if !b.Visible {
			continue
		}
		c := b.Center()
		dst.SetColored(g.cellX(c.X), g.cellY(c.Y), BallChar, core.ColorBrightYellow)
	}
}

// renderOverlay draws phase messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	st := g.sim.State()
	switch st.Phase {
	case PhaseServing:
		dst.DrawTextCentered(dst.Height()-1, "Press SPACE to launch")

	case PhasePaused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case PhaseStageClear:
		subtitle := fmt.Sprintf("Score %05d  |  Press N for level %03d", st.Score, st.Level+1)
		drawCenteredBox(dst, "STAGE CLEAR", subtitle)

	case PhaseGameOver:
		subtitle := fmt.Sprintf("Score %05d  |  Press R to restart", st.Score)
		drawCenteredBox(dst, "GAME OVER", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title)
	dst.DrawHLine(boxX+1, boxY+2, boxW-2, '─')
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}

// cellX maps a world X coordinate to a screen column.
func (g *Game) cellX(x float64) int {
	return int(math.Floor(x / g.cfg.Field.CellWidth))
}

// cellY maps a world Y coordinate to a screen row below the HUD.
func (g *Game) cellY(y float64) int {
	return int(math.Floor(y/g.cfg.Field.CellHeight)) + hudRows
}

// cellSpanX returns the half-open column range covered by [x0, x1).
// Partial trailing cells are dropped so gaps stay visible, but a non-empty
// span always covers at least one column.
func (g *Game) cellSpanX(x0, x1 float64) (int, int) {
	from := g.cellX(x0)
	to := g.cellX(x1)
	if x1 > x0 && to <= from {
		to = from + 1
	}
	return from, to
}

// cellSpanY returns the half-open row range covered by [y0, y1).
func (g *Game) cellSpanY(y0, y1 float64) (int, int) {
	from := g.cellY(y0)
	to := g.cellY(y1)
	if y1 > y0 && to <= from {
		to = from + 1
	}
	return from, to
}

// Register the modes with the registry
func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
	registry.Register("multiball", func() registry.Game {
		return NewMultiball()
	})
}
