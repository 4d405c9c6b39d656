package rules

import "fmt"

// Cells is the read-only view of a generation that the rules evaluate against
type Cells interface {
	GetWidth() int
	GetHeight() int
	IsAlive(column, row int) (bool, error)
}

// Rule decides whether the cell at (column, row) is alive in the next generation
type Rule func(c Cells, column, row int) (bool, error)

// Topology selects how the grid edges are treated
type Topology int

const (
	TopologyBounded Topology = iota
	TopologyToroidal
)

func (t Topology) String() string {
	switch t {
	case TopologyBounded:
		return "bounded"
	case TopologyToroidal:
		return "toroidal"
	}
	return fmt.Sprintf("Topology(%d)", int(t))
}

// ForTopology returns the rule for the given topology, bounded for unknown values
func ForTopology(t Topology) Rule {
	if t == TopologyToroidal {
		return Toroidal
	}
	return Bounded
}

// Bounded counts only the neighbors that exist inside the grid, so edge cells
// have 5 and corner cells 3
func Bounded(c Cells, column, row int) (bool, error) {
	width, height := c.GetWidth(), c.GetHeight()
	neighbors := 0

	for y := row - 1; y <= row+1; y++ {
		for x := column - 1; x <= column+1; x++ {
			if x == column && y == row {
				continue
			}
			if x < 0 || x >= width || y < 0 || y >= height {
				continue
			}
			alive, err := c.IsAlive(x, y)
			if err != nil {
				return false, err
			}
			if alive {
				neighbors++
			}
		}
	}

	return nextState(c, column, row, neighbors)
}

// Toroidal wraps every neighbor coordinate to the opposite edge
func Toroidal(c Cells, column, row int) (bool, error) {
	width, height := c.GetWidth(), c.GetHeight()
	neighbors := 0

	for y := row - 1; y <= row+1; y++ {
		for x := column - 1; x <= column+1; x++ {
			if x == column && y == row {
				continue
			}
			alive, err := c.IsAlive(Wrap(x, width), Wrap(y, height))
			if err != nil {
				return false, err
			}
			if alive {
				neighbors++
			}
		}
	}

	return nextState(c, column, row, neighbors)
}

// Wrap reduces v into [0, n), mapping negative values from the top, so Wrap(-1, n) == n-1
func Wrap(v, n int) int {
	return (v%n + n) % n
}

func nextState(c Cells, column, row, neighbors int) (bool, error) {
	alive, err := c.IsAlive(column, row)
	if err != nil {
		return false, err
	}
	return ApplyConwayRules(neighbors, alive), nil
}
