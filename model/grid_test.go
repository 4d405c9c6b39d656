package model

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/utils"
)

// gridFromStrings builds a grid from rows of '.' and '*'
func gridFromStrings(t testing.TB, rows ...string) *Grid {
	t.Helper()
	cells := make([][]bool, len(rows))
	for y, row := range rows {
		cells[y] = make([]bool, len(row))
		for x := range row {
			cells[y][x] = row[x] == '*'
		}
	}
	g, err := NewGridFromRows(cells)
	if err != nil {
		t.Fatalf("gridFromStrings: %v", err)
	}
	return g
}

// gridStrings renders a grid back to rows of '.' and '*'
func gridStrings(g *Grid) []string {
	rows := make([]string, 0, g.GetHeight())
	for _, row := range g.Rows() {
		b := make([]byte, len(row))
		for x, alive := range row {
			b[x] = '.'
			if alive {
				b[x] = '*'
			}
		}
		rows = append(rows, string(b))
	}
	return rows
}

func TestNewGridFromRows(t *testing.T) {
	g := gridFromStrings(t, "*..", ".*.")
	if g.GetWidth() != 3 || g.GetHeight() != 2 {
		t.Fatalf("got %dx%d grid, want 3x2", g.GetWidth(), g.GetHeight())
	}
	if got := g.CountLivingCells(); got != 2 {
		t.Errorf("CountLivingCells = %d, want 2", got)
	}

	empty, err := NewGridFromRows(nil)
	if err != nil {
		t.Fatalf("empty grid: unexpected error: %v", err)
	}
	if empty.GetWidth() != 0 || empty.GetHeight() != 0 {
		t.Errorf("empty grid is %dx%d", empty.GetWidth(), empty.GetHeight())
	}
}

func TestNewGridFromRowsRejectsJaggedRows(t *testing.T) {
	_, err := NewGridFromRows([][]bool{
		{true, false, true},
		{true, false},
	})
	if !errors.Is(err, utils.ErrMalformedGrid) {
		t.Fatalf("got error %v, want ErrMalformedGrid", err)
	}
}

func TestNewGridFromRowsCopiesInput(t *testing.T) {
	rows := [][]bool{{false, false}}
	g, err := NewGridFromRows(rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rows[0][0] = true
	if alive, _ := g.IsAlive(0, 0); alive {
		t.Errorf("grid shares storage with its input rows")
	}
}

func TestIsAliveBounds(t *testing.T) {
	g := gridFromStrings(t, "*.", ".*", "..")

	tests := []struct {
		column, row int
		want        bool
		outOfBounds bool
	}{
		{0, 0, true, false},
		{1, 0, false, false},
		{1, 1, true, false},
		{1, 2, false, false},
		{-1, 0, false, true},
		{2, 0, false, true},
		{0, -1, false, true},
		{0, 3, false, true},
	}
	for _, tt := range tests {
		got, err := g.IsAlive(tt.column, tt.row)
		if tt.outOfBounds {
			if !errors.Is(err, utils.ErrOutOfBounds) {
				t.Errorf("IsAlive(%d, %d): got error %v, want ErrOutOfBounds", tt.column, tt.row, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("IsAlive(%d, %d): unexpected error %v", tt.column, tt.row, err)
		}
		if got != tt.want {
			t.Errorf("IsAlive(%d, %d) = %v, want %v", tt.column, tt.row, got, tt.want)
		}
	}
}

func TestSetIgnoresOutOfRange(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(1, 0, true)
	g.Set(2, 0, true)
	g.Set(0, -1, true)
	if got := g.CountLivingCells(); got != 1 {
		t.Errorf("CountLivingCells = %d, want 1", got)
	}
}

func TestEqualAndHash(t *testing.T) {
	a := gridFromStrings(t, ".*", "*.")
	b := gridFromStrings(t, ".*", "*.")
	c := gridFromStrings(t, "*.", "*.")
	d := gridFromStrings(t, ".*.", "*..")

	if !a.Equal(b) || a.Hash() != b.Hash() {
		t.Errorf("identical grids compare unequal")
	}
	if a.Equal(c) || a.Hash() == c.Hash() {
		t.Errorf("different grids compare equal")
	}
	if a.Equal(d) || a.Equal(nil) {
		t.Errorf("grids of different shape compare equal")
	}
}

func TestGridPoolResetsRecycledGrids(t *testing.T) {
	pool := NewGridPool()
	g := pool.Get(3, 2)
	g.Set(1, 1, true)
	GridToPool(g, pool)

	next := pool.Get(4, 4)
	if next.GetWidth() != 4 || next.GetHeight() != 4 {
		t.Fatalf("got %dx%d grid, want 4x4", next.GetWidth(), next.GetHeight())
	}
	if got := next.CountLivingCells(); got != 0 {
		t.Errorf("pooled grid has %d living cells, want 0", got)
	}

	// a nil pool is a no-op
	GridToPool(next, nil)
}
