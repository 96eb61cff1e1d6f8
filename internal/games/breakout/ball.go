package breakout

import (
	"math"

	"github.com/vovakirdan/multiball/internal/core"
)

// Launch direction components before normalization.
const (
	launchSpeedX = 4
	launchSpeedY = -4
)

// paddleSteer scales the paddle-offset rebound relative to BaseSpeed.
const paddleSteer = 0.8

// Ball is a single ball with authoritative numeric position and velocity.
// Position is the top-left of its square bounding box, relative to the Area.
type Ball struct {
	X, Y         float64 // Position (top-left)
	VX, VY       float64 // Velocity per tick
	BaseSpeed    float64 // Target velocity magnitude
	Size         float64 // Bounding box width and height
	LaunchOffset float64 // Distance from the floor to the top edge when parked
	Moving       bool    // In flight; parked or fallen balls never collide
	Visible      bool    // Rendered; cleared when the ball falls out
}

// UpdateResult reports what happened to a ball during one Update.
type UpdateResult struct {
	Active   bool      // Ball is in flight after this tick
	Fallen   bool      // Ball crossed the floor this tick
	NextRect core.Rect // Bounding box at the tentative next position
	NewLeft  float64   // Tentative next X, before clamping
	NewTop   float64   // Tentative next Y, before clamping
}

// NewBall creates a parked ball. The sign of initialVX picks the horizontal
// launch direction that Reset keeps.
func NewBall(size, baseSpeed, launchOffset, initialVX float64) *Ball {
	return &Ball{
		Size:         size,
		BaseSpeed:    baseSpeed,
		LaunchOffset: launchOffset,
		VX:           initialVX,
		VY:           launchSpeedY,
		Visible:      true,
	}
}

// Rect returns the ball's current bounding box.
func (b *Ball) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.Size, b.Size)
}

// Center returns the center of the ball's bounding box.
func (b *Ball) Center() core.Vec2 {
	return b.Rect().Center()
}

// Radius returns half the bounding box width.
func (b *Ball) Radius() float64 {
	return b.Size / 2
}

// Velocity returns the velocity as a vector.
func (b *Ball) Velocity() core.Vec2 {
	return core.Vec2{X: b.VX, Y: b.VY}
}

// Speed returns the current velocity magnitude.
func (b *Ball) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}

// Reset parks the ball at a random horizontal position above the paddle and
// restores the launch direction, keeping the previous horizontal sign.
func (b *Ball) Reset(area core.Rect, rng *core.SimpleRNG) {
	span := math.Max(0, area.W-b.Size)
	b.X = rng.Float64() * span
	b.Y = math.Max(0, area.H-b.LaunchOffset)

	if b.VX > 0 {
		b.VX = launchSpeedX
	} else {
		b.VX = -launchSpeedX
	}
	b.VY = launchSpeedY
	b.Moving = false
	b.Visible = true
	b.NormalizeSpeed()
}

// Start puts a parked ball in flight.
func (b *Ball) Start() {
	b.Moving = true
}

// Stop halts the ball in place.
func (b *Ball) Stop() {
	b.Moving = false
}

// NormalizeSpeed rescales the velocity to BaseSpeed, keeping its direction.
// A ball at rest stays at rest.
func (b *Ball) NormalizeSpeed() {
	v := b.Velocity().WithLen(b.BaseSpeed)
	b.VX, b.VY = v.X, v.Y
}

// SpeedUp raises BaseSpeed by delta and renormalizes.
func (b *Ball) SpeedUp(delta float64) {
	b.BaseSpeed += delta
	b.NormalizeSpeed()
}

// SetBaseSpeed replaces BaseSpeed and renormalizes.
func (b *Ball) SetBaseSpeed(speed float64) {
	b.BaseSpeed = speed
	b.NormalizeSpeed()
}

// Update advances the ball by one tick against the area walls and the
// paddle. Block collisions are left to the caller, which tests NextRect.
func (b *Ball) Update(area, paddle core.Rect) UpdateResult {
	if !b.Moving {
		return UpdateResult{}
	}

	newLeft := b.X + b.VX
	newTop := b.Y + b.VY

	// Walls: both axes are checked independently and may flip together.
	if newLeft <= 0 || newLeft >= area.W-b.Size {
		b.VX = -b.VX
		b.NormalizeSpeed()
	}
	if newTop <= 0 {
		b.VY = -b.VY
		b.NormalizeSpeed()
	}

	// Floor: the ball is retired until the next Reset.
	if newTop >= area.H {
		b.Moving = false
		b.Visible = false
		return UpdateResult{Fallen: true}
	}

	next := core.NewRect(newLeft, newTop, b.Size, b.Size)

	if next.Intersects(paddle) {
		b.bounceOffPaddle(next, paddle)
	}

	b.X = core.ClampF(newLeft, 0, area.W-b.Size)
	b.Y = math.Max(0, newTop)

	return UpdateResult{
		Active:   true,
		NextRect: next,
		NewLeft:  newLeft,
		NewTop:   newTop,
	}
}

// bounceOffPaddle always sends the ball upward. The horizontal component is
// replaced by the hit offset from the paddle center: edges give steep
// angles, the center a vertical rebound.
func (b *Ball) bounceOffPaddle(next, paddle core.Rect) {
	b.VY = -math.Abs(b.VY)

	halfWidth := paddle.W / 2
	if halfWidth > 0 {
		offset := (next.Center().X - paddle.Center().X) / halfWidth
		b.VX = offset * b.BaseSpeed * paddleSteer
	}
	b.NormalizeSpeed()
}

// HandleBlockCollision reflects the ball vertically. The horizontal
// component is kept regardless of which block face was hit.
func (b *Ball) HandleBlockCollision() {
	b.VY = -b.VY
	b.NormalizeSpeed()
}

// CheckBallCollision reports whether both balls are moving and their
// centers are closer than two radii.
func (b *Ball) CheckBallCollision(other *Ball) bool {
	if !b.Moving || !other.Moving {
		return false
	}
	dist := other.Center().Sub(b.Center()).Len()
	return dist < b.Radius()*2
}

// HandleBallCollision resolves an equal-mass elastic collision between b and
// other, then pushes overlapping balls apart inside area. It returns false
// without touching either ball when the centers coincide or the balls are
// already separating.
func (b *Ball) HandleBallCollision(other *Ball, area core.Rect) bool {
	delta := other.Center().Sub(b.Center())
	dist := delta.Len()
	if dist == 0 {
		return false
	}
	normal := delta.Scale(1 / dist)

	// Relative velocity along the normal; positive means separating.
	speed := other.Velocity().Sub(b.Velocity()).Dot(normal)
	if speed > 0 {
		return false
	}

	// Equal masses: the impulse is the normal relative speed itself.
	impulse := normal.Scale(speed)
	b.VX += impulse.X
	b.VY += impulse.Y
	other.VX -= impulse.X
	other.VY -= impulse.Y

	b.NormalizeSpeed()
	other.NormalizeSpeed()

	overlap := b.Radius() + other.Radius() - dist
	if overlap > 0 {
		sep := normal.Scale(overlap / 2)
		b.moveWithin(-sep.X, -sep.Y, area)
		other.moveWithin(sep.X, sep.Y, area)
	}
	return true
}

// Fit brings the ball back inside a resized area. A parked ball returns to
// launch height; any other ball is clamped to the walls and floor.
func (b *Ball) Fit(area core.Rect, parked bool) {
	b.X = core.ClampF(b.X, 0, area.W-b.Size)
	if parked {
		b.Y = math.Max(0, area.H-b.LaunchOffset)
		return
	}
	b.Y = core.ClampF(b.Y, 0, area.H-b.Size)
}

// moveWithin displaces the ball, keeping its bounding box inside area.
func (b *Ball) moveWithin(dx, dy float64, area core.Rect) {
	b.X = core.ClampF(b.X+dx, 0, area.W-b.Size)
	b.Y = core.ClampF(b.Y+dy, 0, area.H-b.Size)
}
