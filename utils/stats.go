package utils

import (
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
)

const (
	currentSuffix = "of cells currently alive"
	averageSuffix = "of cells alive on average"
)

// Stats for the population report and performance monitoring
type Stats struct {
	CurrentPercent       float64
	AveragePercent       float64
	TotalGenerations     int
	GenerationsPerSecond float64
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records how many generations have completed since StartTime
func (s *Stats) Update(generation int, elapsed time.Duration) {
	s.TotalGenerations = generation
	if elapsed > 0 {
		s.GenerationsPerSecond = float64(generation) / elapsed.Seconds()
	}
}

// SetPercentages stores the live-cell percentages to be reported
func (s *Stats) SetPercentages(current, average float64) {
	s.CurrentPercent = current
	s.AveragePercent = average
}

// Report writes the two percentage lines
func (s *Stats) Report(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%3.3f%% %s\n", s.CurrentPercent, currentSuffix); err != nil {
		return errors.Wrap(err, "[Report] failed to write current percentage")
	}
	if _, err := fmt.Fprintf(w, "%3.3f%% %s\n", s.AveragePercent, averageSuffix); err != nil {
		return errors.Wrap(err, "[Report] failed to write average percentage")
	}
	return nil
}
