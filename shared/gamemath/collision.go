package gamemath

import (
	"math"

	"github.com/automoto/ingotown/shared/tilemap"
)

const cell = float64(tilemap.CellSize)

// NoRow disables the single-way drop-through exemption.
const NoRow = math.MinInt

// Collision is the kind of cell that stopped a move.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionSolid
	CollisionSingleWay
)

func (c Collision) String() string {
	switch c {
	case CollisionSolid:
		return "solid"
	case CollisionSingleWay:
		return "single_way"
	}
	return "none"
}

// Occupancy answers tile queries for the collision layers.
type Occupancy interface {
	Occupied(layer tilemap.Layer, cx, cy int) bool
}

// Query describes a move along one axis. Positions follow the body anchor:
// X is the left edge and Y is the feet (bottom edge), so a body of W×H
// tiles covers [X, X+W*8) × [Y-H*8, Y).
type Query struct {
	From, To  float64 // position on the resolved axis before and after the move
	Across    float64 // position on the other axis
	W, H      int     // footprint in tiles
	VY        float64 // vertical velocity, gates single-way platforms
	IgnoreRow int     // single-way row being dropped through, or NoRow
}

// Span returns the first and last cell index covered by a run of tiles
// starting at pos. A run that starts on a cell boundary covers exactly
// tiles cells; otherwise it straddles one more.
func Span(pos float64, tiles int) (lo, hi int) {
	lo = int(math.Floor(pos / cell))
	hi = int(math.Ceil(pos/cell)) + tiles - 1
	return lo, hi
}

// Overlaps reports whether a body at (x, y) intersects a solid cell.
func Overlaps(grid Occupancy, x, y float64, w, h int) bool {
	return solidAt(grid, x, y, w, h)
}

func solidAt(grid Occupancy, x, y float64, w, h int) bool {
	x0, x1 := Span(x, w)
	y0, y1 := Span(y-float64(h)*cell, h)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			if grid.Occupied(tilemap.LayerSolid, cx, cy) {
				return true
			}
		}
	}
	return false
}

// ResolveX moves a body horizontally. Only solid cells block sideways.
func ResolveX(grid Occupancy, q Query) (float64, Collision) {
	return resolveAxis(q, func(x float64) Collision {
		if solidAt(grid, x, q.Across, q.W, q.H) {
			return CollisionSolid
		}
		return CollisionNone
	})
}

// ResolveY moves a body vertically. Single-way cells block only a falling
// body whose lowest tile row started above the platform row.
func ResolveY(grid Occupancy, q Query) (float64, Collision) {
	ref := (q.From - cell) / cell
	return resolveAxis(q, func(y float64) Collision {
		if solidAt(grid, q.Across, y, q.W, q.H) {
			return CollisionSolid
		}
		if q.VY <= 0 {
			return CollisionNone
		}
		x0, x1 := Span(q.Across, q.W)
		y0, y1 := Span(y-float64(q.H)*cell, q.H)
		for cy := y0; cy <= y1; cy++ {
			if cy == q.IgnoreRow || ref >= float64(cy) {
				continue
			}
			for cx := x0; cx <= x1; cx++ {
				if grid.Occupied(tilemap.LayerSingleWay, cx, cy) {
					return CollisionSingleWay
				}
			}
		}
		return CollisionNone
	})
}

// resolveAxis snaps a blocked move to the cell boundary on the side it came
// from. When the snapped spot is itself blocked (the move skipped a cell or
// more) it backs off a cell at a time toward the start, whose aligned
// position is always free.
func resolveAxis(q Query, blocked func(pos float64) Collision) (float64, Collision) {
	if q.To == q.From {
		return q.From, CollisionNone
	}

	c := blocked(q.To)
	if c == CollisionNone {
		return q.To, CollisionNone
	}

	if q.To < q.From {
		pos := math.Ceil(q.To/cell) * cell
		limit := math.Ceil(q.From/cell) * cell
		for pos < limit && blocked(pos) != CollisionNone {
			pos += cell
		}
		return pos, c
	}

	pos := math.Floor(q.To/cell) * cell
	limit := math.Floor(q.From/cell) * cell
	for pos > limit && blocked(pos) != CollisionNone {
		pos -= cell
	}
	return pos, c
}
