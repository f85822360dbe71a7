package physics

import "math"

// SpatialGrid is a uniform grid for broad-phase collision detection on a bounded play field.
// Entities are inserted by origin and index, then candidates near an origin can be queried
// via a 3x3 neighborhood lookup. Positions outside the field are clamped into the border
// cells, so entities staged above the screen still land in the grid.
//
// Cell size must be >= the largest sprite dimension of anything that can collide,
// otherwise overlapping pairs may fall outside each other's neighborhood.
type SpatialGrid struct {
	cellSize    float64
	invCellSize float64
	cols        int
	rows        int
	cells       []gridCell
}

// gridCell stores the indices of entities whose origin falls within the cell.
// The slice is reused between frames (reset to [:0]) to avoid allocations.
type gridCell struct {
	items []int
}

// NewSpatialGrid creates a spatial grid covering a fieldW x fieldH play field.
func NewSpatialGrid(fieldW, fieldH, cellSize float64) *SpatialGrid {
	if cellSize < 1 {
		cellSize = 1
	}
	cols := int(math.Ceil(fieldW / cellSize))
	rows := int(math.Ceil(fieldH / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	return &SpatialGrid{
		cellSize:    cellSize,
		invCellSize: 1.0 / cellSize,
		cols:        cols,
		rows:        rows,
		cells:       make([]gridCell, cols*rows),
	}
}

// CellSize returns the edge length of a grid cell.
func (g *SpatialGrid) CellSize() float64 {
	return g.cellSize
}

// Clear removes all items from the grid without deallocating cell memory.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i].items = g.cells[i].items[:0]
	}
}

// Insert adds an item (identified by index) at the given origin.
func (g *SpatialGrid) Insert(x, y float64, index int) {
	col, row := g.posToCell(x, y)
	idx := row*g.cols + col
	g.cells[idx].items = append(g.cells[idx].items, index)
}

// QueryAround calls fn for each item index in the 3x3 cell neighborhood around the
// given origin. Neighbors past the field edge are skipped, the field does not wrap.
// If fn returns true, iteration stops early.
func (g *SpatialGrid) QueryAround(x, y float64, fn func(index int) bool) {
	col, row := g.posToCell(x, y)

	for r := row - 1; r <= row+1; r++ {
		if r < 0 || r >= g.rows {
			continue
		}
		rowOffset := r * g.cols

		for c := col - 1; c <= col+1; c++ {
			if c < 0 || c >= g.cols {
				continue
			}
			for _, itemIdx := range g.cells[rowOffset+c].items {
				if fn(itemIdx) {
					return
				}
			}
		}
	}
}

// posToCell converts an origin to grid cell coordinates, clamped to the field.
func (g *SpatialGrid) posToCell(x, y float64) (col, row int) {
	col = int(math.Floor(x * g.invCellSize))
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}

	row = int(math.Floor(y * g.invCellSize))
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}

	return col, row
}
