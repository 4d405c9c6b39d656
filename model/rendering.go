package model

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/utils"
)

const (
	cellAlive = '*'
	cellDead  = '.'
)

// ReadLimits bounds the grid accepted by ReadGrid
type ReadLimits struct {
	MaxWidth  int
	MaxHeight int
}

// ReadGrid loads a grid written one row per line with '*' for live and '.'
// for dead cells. All rows must have the same length.
func ReadGrid(r io.Reader, limits ReadLimits) (*Grid, error) {
	scanner := bufio.NewScanner(r)
	// room for the widest row plus a trailing '\r'
	scanner.Buffer(make([]byte, 0, min(limits.MaxWidth+2, 4096)), limits.MaxWidth+2)

	var rows [][]bool
	for scanner.Scan() {
		y := len(rows)
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if len(line) > limits.MaxWidth {
			return nil, errors.Wrapf(utils.ErrMalformedGrid,
				"[ReadGrid] row %d exceeds maximum column count of %d", y, limits.MaxWidth)
		}
		if y >= limits.MaxHeight {
			return nil, errors.Wrapf(utils.ErrMalformedGrid,
				"[ReadGrid] grid exceeds maximum row count of %d", limits.MaxHeight)
		}
		if y > 0 && len(line) != len(rows[0]) {
			return nil, errors.Wrapf(utils.ErrMalformedGrid,
				"[ReadGrid] row %d has length %d, expected %d", y, len(line), len(rows[0]))
		}

		row := make([]bool, len(line))
		for x := 0; x < len(line); x++ {
			switch line[x] {
			case cellAlive:
				row[x] = true
			case cellDead:
			default:
				return nil, errors.Wrapf(utils.ErrMalformedGrid,
					"[ReadGrid] bad character %q on row %d, column %d", line[x], y, x)
			}
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, errors.Wrapf(utils.ErrMalformedGrid,
				"[ReadGrid] row %d exceeds maximum column count of %d", len(rows), limits.MaxWidth)
		}
		return nil, errors.Wrap(err, "[ReadGrid] failed to read input")
	}

	return NewGridFromRows(rows)
}

// WriteGrid writes the grid in the format read by ReadGrid, one newline per row
func WriteGrid(w io.Writer, g *Grid) error {
	bw := bufio.NewWriter(w)
	for y := range g.height {
		for x := range g.width {
			c := byte(cellDead)
			if g.cells[y][x] {
				c = cellAlive
			}
			if err := bw.WriteByte(c); err != nil {
				return errors.Wrap(err, "[WriteGrid] failed to write cell")
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return errors.Wrap(err, "[WriteGrid] failed to write row")
		}
	}
	return errors.Wrap(bw.Flush(), "[WriteGrid] failed to flush output")
}
