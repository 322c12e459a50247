package gamemath

import "math"

// Body is the kinematic state of one character. X is the left edge and Y
// the feet; W and H are whole tiles.
type Body struct {
	X, Y   float64
	VX, VY float64
	W, H   int

	Grounded   bool
	GroundType Collision
	Facing     Facing

	// Dropping is set while falling through the single-way row DropRow.
	Dropping bool
	DropRow  int
}

// StepResult reports what stopped each axis during a step.
type StepResult struct {
	X, Y Collision
}

func NewBody(x, y float64, w, h int) Body {
	return Body{X: x, Y: y, W: w, H: h, Facing: FacingRight}
}

// Bounds returns the top-left corner and size of the footprint in world units.
func (b *Body) Bounds() (x, y, w, h float64) {
	w = float64(b.W) * cell
	h = float64(b.H) * cell
	return b.X, b.Y - h, w, h
}

// Center returns the middle of the footprint.
func (b *Body) Center() (x, y float64) {
	bx, by, bw, bh := b.Bounds()
	return bx + bw/2, by + bh/2
}

func (b *Body) ignoreRow() int {
	if b.Dropping {
		return b.DropRow
	}
	return NoRow
}

// Step advances the body by one frame against grid.
func (b *Body) Step(grid Occupancy, p Params) StepResult {
	b.VX = ApplyDeadZone(b.VX, p.DeadZone)
	switch {
	case b.VX > 0:
		b.Facing = FacingRight
	case b.VX < 0:
		b.Facing = FacingLeft
	}
	b.VX = ClampSpeed(b.VX, p.MaxSpeed)

	dx := HorizontalStep(b.VX)
	dy := b.VY

	var res StepResult
	b.X, res.X = ResolveX(grid, Query{
		From: b.X, To: b.X + dx, Across: b.Y,
		W: b.W, H: b.H, VY: b.VY, IgnoreRow: NoRow,
	})
	b.Y, res.Y = ResolveY(grid, Query{
		From: b.Y, To: b.Y + dy, Across: b.X,
		W: b.W, H: b.H, VY: b.VY, IgnoreRow: b.ignoreRow(),
	})

	if res.Y != CollisionNone {
		b.VY = 0
	}
	if dy > 0 && res.Y != CollisionNone {
		b.Grounded = true
		b.GroundType = res.Y
		b.Dropping = false
	} else {
		b.Grounded = false
		b.GroundType = CollisionNone
	}
	if b.Dropping && b.topRow() > b.DropRow {
		b.Dropping = false
	}

	b.VY += p.Gravity
	b.VX = ApplyDrag(b.VX, p.Deceleration)
	return res
}

func (b *Body) topRow() int {
	return int(math.Floor((b.Y - float64(b.H)*cell) / cell))
}

// Jump launches the body upward, but only from the ground.
func (b *Body) Jump(force float64) bool {
	if !b.Grounded {
		return false
	}
	b.VY = -force
	b.Grounded = false
	b.GroundType = CollisionNone
	return true
}

// DropThrough nudges a body standing on a single-way platform down into it
// and lets it fall through that platform row. Solid ground never drops.
func (b *Body) DropThrough(nudge float64) bool {
	if !b.Grounded || b.GroundType != CollisionSingleWay {
		return false
	}
	b.DropRow = int(math.Floor(b.Y / cell))
	b.Dropping = true
	b.Y += nudge
	b.Grounded = false
	b.GroundType = CollisionNone
	return true
}

// Teleport places the body at (x, y) at rest and airborne.
func (b *Body) Teleport(x, y float64) {
	b.X, b.Y = x, y
	b.VX, b.VY = 0, 0
	b.Grounded = false
	b.GroundType = CollisionNone
	b.Dropping = false
}
