package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/utils"
)

// Grid represents one generation of the universe
type Grid struct {
	width  int
	height int
	cells  [][]bool
}

// NewGrid creates a new all-dead grid with the specified dimensions
func NewGrid(width, height int) *Grid {
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// NewGridFromRows builds a grid from row-major cell states. Every row must
// have the width of the first one.
func NewGridFromRows(rows [][]bool) (*Grid, error) {
	width := 0
	if len(rows) > 0 {
		width = len(rows[0])
	}

	g := NewGrid(width, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, errors.Wrapf(utils.ErrMalformedGrid,
				"[NewGridFromRows] row %d has %d cells, expected %d", y, len(row), width)
		}
		copy(g.cells[y], row)
	}
	return g, nil
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Reset resets the grid to new dimensions, all cells dead
func (g *Grid) Reset(width, height int) {
	g.width = width
	g.height = height

	// Resize cells if needed
	if len(g.cells) != height {
		g.cells = make([][]bool, height)
	}
	for i := range g.cells {
		if len(g.cells[i]) != width {
			g.cells[i] = make([]bool, width)
		} else {
			clear(g.cells[i])
		}
	}
}

// Clear clears all cells
func (g *Grid) Clear() {
	for y := range g.height {
		clear(g.cells[y])
	}
}

// Set sets a cell to alive (true) or dead (false); writes outside the grid are ignored
func (g *Grid) Set(column, row int, alive bool) {
	if column >= 0 && column < g.width && row >= 0 && row < g.height {
		g.cells[row][column] = alive
	}
}

// IsAlive returns the state of a cell. Reading outside the grid is a
// programming error reported as ErrOutOfBounds.
func (g *Grid) IsAlive(column, row int) (bool, error) {
	if column < 0 || column >= g.width {
		return false, errors.Wrapf(utils.ErrOutOfBounds,
			"[IsAlive] invalid column %d, width is %d", column, g.width)
	}
	if row < 0 || row >= g.height {
		return false, errors.Wrapf(utils.ErrOutOfBounds,
			"[IsAlive] invalid row %d, height is %d", row, g.height)
	}
	return g.cells[row][column], nil
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				count++
			}
		}
	}
	return
}

// Rows returns a copy of the cell states, row by row
func (g *Grid) Rows() [][]bool {
	rows := make([][]bool, g.height)
	for y := range g.height {
		rows[y] = make([]bool, g.width)
		copy(rows[y], g.cells[y])
	}
	return rows
}

// Equal reports whether both grids have the same dimensions and cell states
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// Hash returns an MD5 hash of the grid state
func (g *Grid) Hash() string {
	h := md5.New()
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
