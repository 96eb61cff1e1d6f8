package breakout

import (
	"math"

	"github.com/vovakirdan/multiball/internal/core"
)

// Paddle represents the player's paddle.
// Only the horizontal position is state; the row follows the Area.
type Paddle struct {
	X            float64 // Left edge
	Width        float64
	Height       float64
	Speed        float64 // Displacement per tick while a direction is held
	BottomOffset float64 // Gap between the paddle's bottom edge and the floor
}

// Rect returns the paddle's bounding box within area.
func (p *Paddle) Rect(area core.Rect) core.Rect {
	return core.NewRect(p.X, area.H-p.BottomOffset-p.Height, p.Width, p.Height)
}

// Center places the paddle in the middle of area.
func (p *Paddle) Center(area core.Rect) {
	p.X = math.Max(0, (area.W-p.Width)/2)
}

// Update moves the paddle for one tick. Both moves start from the position
// at the beginning of the tick; when both are held the rightward result is
// assigned last and wins.
func (p *Paddle) Update(left, right bool, areaW float64) {
	start := p.X
	maxX := math.Max(0, areaW-p.Width)

	if left {
		p.X = math.Max(0, start-p.Speed)
	}
	if right {
		p.X = math.Min(maxX, start+p.Speed)
	}
	// Keep the paddle inside even when the area shrank under it.
	p.X = core.ClampF(p.X, 0, maxX)
}
