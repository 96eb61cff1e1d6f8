// Package breakout implements a multi-ball breakout game: ball kinematics,
// wall, paddle, block and ball-ball collisions, driven one frame at a time.
package breakout

import (
	"math"

	"github.com/vovakirdan/multiball/internal/config"
	"github.com/vovakirdan/multiball/internal/core"
)

// Block is a live block as seen by the simulation for one frame.
type Block struct {
	ID    int
	Row   int
	Col   int
	Rect  core.Rect
	Hue   int
	Color core.Color
}

// Blocks is the block registry consulted by the simulation.
// Rectangles are derived from the area on every call, so a resized area
// relayouts the remaining blocks.
type Blocks interface {
	Generate(area core.Rect)
	Live(area core.Rect) []Block
	Destroy(id int) bool
	Remaining() int
	Total() int
}

// BlockGrid lays blocks out in rows and columns between the side margins.
// Each row shares one hue.
type BlockGrid struct {
	cfg       config.BlocksConfig
	destroyed []bool
	remaining int
}

// NewBlockGrid creates an empty grid. Call Generate to fill it.
func NewBlockGrid(cfg config.BlocksConfig) *BlockGrid {
	return &BlockGrid{cfg: cfg}
}

// Generate restores every block.
func (g *BlockGrid) Generate(_ core.Rect) {
	total := g.cfg.Rows * g.cfg.Columns
	g.destroyed = make([]bool, total)
	g.remaining = total
}

// Live returns the blocks that have not been destroyed, in ID order.
func (g *BlockGrid) Live(area core.Rect) []Block {
	blocks := make([]Block, 0, g.remaining)
	for id, gone := range g.destroyed {
		if gone {
			continue
		}
		blocks = append(blocks, g.block(id, area))
	}
	return blocks
}

// Destroy marks a block as destroyed.
// Returns false for unknown or already destroyed IDs.
func (g *BlockGrid) Destroy(id int) bool {
	if id < 0 || id >= len(g.destroyed) || g.destroyed[id] {
		return false
	}
	g.destroyed[id] = true
	g.remaining--
	return true
}

// Remaining returns the number of live blocks.
func (g *BlockGrid) Remaining() int {
	return g.remaining
}

// Total returns the number of blocks in a fresh grid.
func (g *BlockGrid) Total() int {
	return len(g.destroyed)
}

// Destroyed reports whether the block with the given ID is gone.
func (g *BlockGrid) Destroyed(id int) bool {
	return id >= 0 && id < len(g.destroyed) && g.destroyed[id]
}

// BlockWidth returns the width of every block for the given area.
func (g *BlockGrid) BlockWidth(area core.Rect) float64 {
	cols := float64(g.cfg.Columns)
	usable := area.W - 2*g.cfg.SideMargin - (cols-1)*g.cfg.Gap
	return math.Max(0, usable/cols)
}

func (g *BlockGrid) block(id int, area core.Rect) Block {
	row := id / g.cfg.Columns
	col := id % g.cfg.Columns
	w := g.BlockWidth(area)

	x := g.cfg.SideMargin + float64(col)*(w+g.cfg.Gap)
	y := g.cfg.TopMargin + float64(row)*(g.cfg.Height+g.cfg.Gap)
	hue := g.cfg.BaseHue - row*g.cfg.HueStep

	return Block{
		ID:    id,
		Row:   row,
		Col:   col,
		Rect:  core.NewRect(x, y, w, g.cfg.Height),
		Hue:   hue,
		Color: HueColor(hue),
	}
}

// HueColor maps an HSL hue in degrees to the nearest terminal color.
func HueColor(hue int) core.Color {
	hue %= 360
	if hue < 0 {
		hue += 360
	}
	switch {
	case hue < 15 || hue >= 345:
		return core.ColorRed
	case hue < 45:
		return core.ColorOrange
	case hue < 75:
		return core.ColorYellow
	case hue < 150:
		return core.ColorGreen
	case hue < 185:
		return core.ColorCyan
	case hue < 200:
		return core.ColorSky
	case hue < 215:
		return core.ColorAzure
	case hue < 260:
		return core.ColorBlue
	case hue < 300:
		return core.ColorMagenta
	default:
		return core.ColorBrightMagenta
	}
}
