package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/rules"
	"github.com/sheikhrachel/go-life/utils"
)

// runStreams are where a run reads the grid and writes its results
type runStreams struct {
	in       io.Reader
	out      io.Writer
	statsOut io.Writer
}

// initializeUniverse loads the initial generation and wraps it in a universe
func initializeUniverse(config utils.Config, in io.Reader) (*model.Universe, error) {
	grid, err := model.ReadGrid(in, model.ReadLimits{
		MaxWidth:  config.MaxWidth,
		MaxHeight: config.MaxHeight,
	})
	if err != nil {
		return nil, err
	}

	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}

	return model.NewUniverse(grid, model.UniverseOptions{
		MaxHistory:      config.MaxHistory,
		Pool:            pool,
		TrackStagnation: config.Verbose,
	}), nil
}

// evolveUniverse runs the configured number of generations, stopping between
// steps when ctx is cancelled
func evolveUniverse(ctx context.Context, u *model.Universe, config utils.Config, stats *utils.Stats, log *utils.Logger) error {
	rule := rules.ForTopology(config.Topology())
	stagnantSince := -1

	for range config.Generations {
		if err := ctx.Err(); err != nil {
			return errors.Wrapf(err, "[evolveUniverse] interrupted after %d of %d generations",
				u.Generation(), config.Generations)
		}
		if err := u.Evolve(rule); err != nil {
			return err
		}

		if stagnantSince < 0 && u.IsStagnant() {
			stagnantSince = u.Generation()
			log.Infof("universe settled into a repeating pattern at generation %d", stagnantSince)
		}
		stats.Update(u.Generation(), time.Since(stats.StartTime))
	}

	log.Infof("evolved %d generations (%s) in %s, %.1f gen/sec",
		u.Generation(), config.Topology(), time.Since(stats.StartTime).Round(time.Millisecond),
		stats.GenerationsPerSecond)
	return nil
}

// reportStatistics prints the current and average live-cell percentages
func reportStatistics(u *model.Universe, stats *utils.Stats, w io.Writer) error {
	current, average, err := model.ComputeStatistics(u)
	if err != nil {
		return err
	}
	stats.SetPercentages(current, average)
	return stats.Report(w)
}

// runGame loads, evolves and writes one universe
func runGame(ctx context.Context, config utils.Config, streams runStreams, log *utils.Logger) error {
	u, err := initializeUniverse(config, &contextReader{ctx: ctx, r: streams.in})
	if err != nil {
		return err
	}
	log.Infof("loaded %dx%d grid with %d living cells",
		u.Grid().GetWidth(), u.Grid().GetHeight(), u.Grid().CountLivingCells())

	stats := utils.NewStats()
	if err = evolveUniverse(ctx, u, config, stats, log); err != nil {
		return err
	}

	if err = model.WriteGrid(streams.out, u.Grid()); err != nil {
		return err
	}

	if config.PrintStats {
		return reportStatistics(u, stats, streams.statsOut)
	}
	return nil
}

// contextReader gives up on a blocked Read once ctx is cancelled. The
// abandoned Read keeps its goroutine until the underlying reader returns.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

type readResult struct {
	n   int
	err error
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, errors.Wrap(err, "[contextReader] interrupted while reading input")
	}

	buf := make([]byte, len(p))
	done := make(chan readResult, 1)
	go func() {
		n, err := c.r.Read(buf)
		done <- readResult{n, err}
	}()

	select {
	case <-c.ctx.Done():
		return 0, errors.Wrap(c.ctx.Err(), "[contextReader] interrupted while reading input")
	case res := <-done:
		copy(p, buf[:res.n])
		return res.n, res.err
	}
}

// runWithFiles resolves the configured paths to streams and runs the game.
// The output file is only created once the evolution has succeeded.
func runWithFiles(ctx context.Context, config utils.Config, log *utils.Logger) (err error) {
	streams := runStreams{in: os.Stdin, out: os.Stdout, statsOut: os.Stdout}

	if config.InputPath != "" {
		f, err := os.Open(config.InputPath)
		if err != nil {
			return errors.Wrapf(utils.ErrInvalidArgs, "[runWithFiles] input file could not be opened: %v", err)
		}
		defer f.Close()
		streams.in = f
	}

	if config.OutputPath != "" {
		out := &lazyFile{path: config.OutputPath}
		defer func() {
			if err == nil {
				err = out.touch()
			}
			if cerr := out.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		streams.out = out
	}

	return runGame(ctx, config, streams, log)
}

// lazyFile creates its file on first write so a failed run leaves no partial output
type lazyFile struct {
	path string
	f    *os.File
}

func (l *lazyFile) Write(p []byte) (int, error) {
	if err := l.touch(); err != nil {
		return 0, err
	}
	return l.f.Write(p)
}

// touch creates the file if nothing has been written yet
func (l *lazyFile) touch() error {
	if l.f != nil {
		return nil
	}
	f, err := os.Create(l.path)
	if err != nil {
		return errors.Wrapf(utils.ErrInvalidArgs, "[lazyFile] output file could not be opened: %v", err)
	}
	l.f = f
	return nil
}

func (l *lazyFile) Close() error {
	if l.f == nil {
		return nil
	}
	return errors.Wrapf(l.f.Close(), "[lazyFile] failed to close %s", l.path)
}
