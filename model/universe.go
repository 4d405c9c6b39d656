package model

import (
	"slices"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
	"github.com/sheikhrachel/go-life/utils"
)

// recentStates is how many pre-step grid hashes are kept for stagnation checks
const recentStates = 5

// UniverseOptions tunes resource use of a Universe
type UniverseOptions struct {
	// MaxHistory caps the number of recorded generations, 0 means unlimited
	MaxHistory int
	// Pool recycles grids between generations when set
	Pool *GridPool
	// TrackStagnation hashes every replaced generation so IsStagnant can
	// answer; without it IsStagnant always reports false
	TrackStagnation bool
}

// Universe is the whole simulation state: the current generation, how many
// steps have completed and the live-cell count of every replaced generation.
// It is owned by a single goroutine.
type Universe struct {
	grid               *Grid
	generation         int
	alivePerGeneration []int
	recent             []string

	maxHistory      int
	pool            *GridPool
	trackStagnation bool
}

// NewUniverse starts a universe at generation 0 from the given grid, which it takes ownership of
func NewUniverse(grid *Grid, opts UniverseOptions) *Universe {
	return &Universe{
		grid:            grid,
		maxHistory:      opts.MaxHistory,
		pool:            opts.Pool,
		trackStagnation: opts.TrackStagnation,
	}
}

// Grid returns the current generation. With a pool configured the grid is
// recycled by the next Evolve, so callers must not keep it across steps.
func (u *Universe) Grid() *Grid {
	return u.grid
}

// Generation returns the number of completed evolution steps
func (u *Universe) Generation() int {
	return u.generation
}

// AlivePerGeneration returns a copy of the live-cell count recorded for every
// replaced generation, indexed by generation
func (u *Universe) AlivePerGeneration() []int {
	return slices.Clone(u.alivePerGeneration)
}

// Evolve advances the universe by one generation using rule. Every cell is
// computed from the previous generation only. On error the universe is left
// untouched.
func (u *Universe) Evolve(rule rules.Rule) error {
	if err := u.reserveHistory(); err != nil {
		return err
	}

	next := u.newGrid()
	alive := 0
	for row := range u.grid.height {
		for col := range u.grid.width {
			nextAlive, err := rule(u.grid, col, row)
			if err != nil {
				GridToPool(next, u.pool)
				return errors.Wrapf(err, "[Evolve] generation %d, cell (%d,%d)", u.generation, col, row)
			}
			next.cells[row][col] = nextAlive
			if u.grid.cells[row][col] {
				alive++
			}
		}
	}

	u.alivePerGeneration = append(u.alivePerGeneration, alive)
	if u.trackStagnation {
		u.remember(u.grid.Hash())
	}

	prev := u.grid
	u.grid = next
	GridToPool(prev, u.pool)
	u.generation++
	return nil
}

// IsStagnant reports whether the current grid repeats one of the last three
// generations: a still life or an oscillator of period three or less.
// It needs UniverseOptions.TrackStagnation.
func (u *Universe) IsStagnant() bool {
	if !u.trackStagnation || len(u.recent) == 0 {
		return false
	}

	current := u.grid.Hash()
	for i := len(u.recent) - 1; i >= 0 && i >= len(u.recent)-3; i-- {
		if u.recent[i] == current {
			return true
		}
	}
	return false
}

// reserveHistory makes room for one more history entry, doubling capacity
func (u *Universe) reserveHistory() error {
	n := len(u.alivePerGeneration)
	if n < cap(u.alivePerGeneration) {
		return nil
	}
	if u.maxHistory > 0 && n >= u.maxHistory {
		return errors.Wrapf(utils.ErrResourceExhausted,
			"[Evolve] generation history is full at %d entries", n)
	}

	size := max(1, 2*n)
	if u.maxHistory > 0 {
		size = min(size, u.maxHistory)
	}
	grown := make([]int, n, size)
	copy(grown, u.alivePerGeneration)
	u.alivePerGeneration = grown
	return nil
}

func (u *Universe) newGrid() *Grid {
	if u.pool != nil {
		return u.pool.Get(u.grid.width, u.grid.height)
	}
	return NewGrid(u.grid.width, u.grid.height)
}

// remember keeps the hashes of the last few replaced generations
func (u *Universe) remember(hash string) {
	u.recent = append(u.recent, hash)
	if len(u.recent) > recentStates {
		u.recent = u.recent[1:]
	}
}
