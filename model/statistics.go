package model

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/utils"
)

// ComputeStatistics returns the percentage of live cells in the current
// generation and the average percentage over generation+1 samples: every
// recorded pre-step count plus the current grid.
func ComputeStatistics(u *Universe) (current, average float64, err error) {
	cells := float64(u.grid.width) * float64(u.grid.height)
	if cells == 0 {
		return 0, 0, errors.Wrapf(utils.ErrMalformedGrid,
			"[ComputeStatistics] empty %dx%d grid has no percentages", u.grid.width, u.grid.height)
	}

	current = float64(u.grid.CountLivingCells()) / cells * 100
	sum := current
	for _, alive := range u.alivePerGeneration[:u.generation] {
		sum += float64(alive) / cells * 100
	}
	average = sum / float64(u.generation+1)
	return current, average, nil
}
