// Package tilemap provides the static tile grids a location is built from.
// It has no dependencies on ebitengine or donburi, pure data only.
package tilemap

import "fmt"

// CellSize is the edge length of one tile in world units.
const CellSize = 8

// Empty is the tile id of an unoccupied cell.
const Empty = -1

// Layer identifies one of the grids of a location.
type Layer int

const (
	LayerSolid Layer = iota
	LayerSingleWay
	LayerDecoration
)

func (l Layer) String() string {
	switch l {
	case LayerSolid:
		return "solid"
	case LayerSingleWay:
		return "single_way"
	case LayerDecoration:
		return "decoration"
	}
	return fmt.Sprintf("layer(%d)", int(l))
}

// Grid is a rectangular, read-only table of tile ids indexed by cell.
type Grid struct {
	tiles  []int
	width  int
	height int
}

// NewGrid copies rows (row-major, one row per grid line) into a Grid.
// Every row must have the same length.
func NewGrid(rows [][]int) (*Grid, error) {
	g := &Grid{height: len(rows)}
	if g.height == 0 {
		return g, nil
	}

	g.width = len(rows[0])
	g.tiles = make([]int, 0, g.width*g.height)
	for y, row := range rows {
		if len(row) != g.width {
			return nil, fmt.Errorf("row %d has %d cells, want %d", y, len(row), g.width)
		}
		g.tiles = append(g.tiles, row...)
	}
	return g, nil
}

// Tile returns the tile id at (cx, cy), or Empty outside the grid.
func (g *Grid) Tile(cx, cy int) int {
	if g == nil || cx < 0 || cy < 0 || cx >= g.width || cy >= g.height {
		return Empty
	}
	return g.tiles[cy*g.width+cx]
}

// Occupied reports whether the cell holds a tile.
func (g *Grid) Occupied(cx, cy int) bool {
	return g.Tile(cx, cy) != Empty
}

func (g *Grid) Width() int {
	if g == nil {
		return 0
	}
	return g.width
}

func (g *Grid) Height() int {
	if g == nil {
		return 0
	}
	return g.height
}

// Map holds the grids of one location. A missing layer answers every
// query with "empty".
type Map struct {
	Solid      *Grid
	SingleWay  *Grid
	Decoration *Grid
}

// Grid returns the grid for a layer, which may be nil.
func (m *Map) Grid(layer Layer) *Grid {
	if m == nil {
		return nil
	}
	switch layer {
	case LayerSolid:
		return m.Solid
	case LayerSingleWay:
		return m.SingleWay
	case LayerDecoration:
		return m.Decoration
	}
	return nil
}

// Occupied is the collision query used by the resolver.
func (m *Map) Occupied(layer Layer, cx, cy int) bool {
	return m.Grid(layer).Occupied(cx, cy)
}

// Width returns the width in cells of the widest layer.
func (m *Map) Width() int {
	w := 0
	for _, l := range []Layer{LayerSolid, LayerSingleWay, LayerDecoration} {
		w = max(w, m.Grid(l).Width())
	}
	return w
}

// Height returns the height in cells of the tallest layer.
func (m *Map) Height() int {
	h := 0
	for _, l := range []Layer{LayerSolid, LayerSingleWay, LayerDecoration} {
		h = max(h, m.Grid(l).Height())
	}
	return h
}

// PixelWidth is the map width in world units.
func (m *Map) PixelWidth() int {
	return m.Width() * CellSize
}

// PixelHeight is the map height in world units.
func (m *Map) PixelHeight() int {
	return m.Height() * CellSize
}
