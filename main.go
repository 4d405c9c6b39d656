package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/utils"
)

const version = "1.0.0"

func main() {
	log := utils.NewLogger(os.Stderr, false, true)

	config, err := initConfig(os.Args[1:])
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(utils.ExitCode(err))
	}
	log = utils.NewLogger(os.Stderr, config.Verbose, !config.NoColor)

	if err = execute(config, log); err != nil {
		log.Errorf("%v", err)
	}
	os.Exit(utils.ExitCode(err))
}

// execute runs the game while watching for SIGINT/SIGTERM. A signal stops
// the run between two generations or while the grid is being read; a second
// signal terminates the process.
func execute(config utils.Config, log *utils.Logger) error {
	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithCancel(sigCtx)
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		defer cancel()
		return runWithFiles(ctx, config, log)
	})
	eg.Go(func() error {
		return watchInterrupt(ctx, sigCtx, stop, log)
	})

	return eg.Wait()
}

// watchInterrupt waits for the run to end. If it ended because of a signal,
// the signal handler is released so the next one gets the default behaviour.
func watchInterrupt(ctx, sigCtx context.Context, stop context.CancelFunc, log *utils.Logger) error {
	<-ctx.Done()
	if sigCtx.Err() != nil {
		stop()
		log.Warnf("interrupt received, stopping (interrupt again to force)")
	}
	return nil
}

// initConfig builds the run configuration: defaults, then the optional JSON
// config file, then the command line flags
func initConfig(args []string) (utils.Config, error) {
	config := utils.DefaultConfig()
	var configPath string
	if err := parseFlags(args, &config, &configPath); err != nil {
		return config, err
	}

	if configPath != "" {
		loaded, err := utils.LoadConfig(configPath)
		if err != nil {
			return config, err
		}
		// flags win over the file, so apply them again on top of it
		config = loaded
		if err = parseFlags(args, &config, &configPath); err != nil {
			return config, err
		}
	}

	return config, config.Validate()
}

// flags that take a value, by short and long name
var valueFlags = map[string]bool{
	"i": true, "input": true,
	"o": true, "output": true,
	"g": true, "generations": true,
	"c": true, "config": true,
}

// switchFlags are the boolean flags plus the ones flaggy handles itself
var switchFlags = map[string]bool{
	"s": true, "stats": true,
	"t": true, "torus": true,
	"v": true, "verbose": true,
	"h": true, "help": true,
	"version":  true,
	"no-color": true,
}

func parseFlags(args []string, config *utils.Config, configPath *string) error {
	if err := checkArgs(args); err != nil {
		return err
	}

	var generations string
	p := newParser(config, configPath, &generations)
	if err := p.ParseArgs(args); err != nil {
		return errors.Wrapf(utils.ErrInvalidArgs, "[parseFlags] %v", err)
	}
	if len(p.TrailingArguments) > 0 {
		return errors.Wrapf(utils.ErrInvalidArgs, "[parseFlags] unexpected arguments %q", p.TrailingArguments)
	}

	if generations != "" {
		n, err := strconv.Atoi(generations)
		if err != nil {
			return errors.Wrapf(utils.ErrInvalidArgs,
				"[parseFlags] invalid number %q given with -g, expected -g <int>", generations)
		}
		config.Generations = n
	}
	return nil
}

// checkArgs rejects unknown flags and stray positional arguments
func checkArgs(args []string) error {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			if i+1 < len(args) {
				return errors.Wrapf(utils.ErrInvalidArgs, "[checkArgs] unexpected arguments %q", args[i+1:])
			}
			return nil
		}
		if len(arg) < 2 || arg[0] != '-' {
			return errors.Wrapf(utils.ErrInvalidArgs, "[checkArgs] bad argument %q", arg)
		}

		name, _, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		switch {
		case valueFlags[name]:
			if !hasValue {
				if i+1 >= len(args) {
					return errors.Wrapf(utils.ErrInvalidArgs, "[checkArgs] flag %q requires a value", arg)
				}
				i++
			}
		case switchFlags[name]:
		default:
			return errors.Wrapf(utils.ErrInvalidArgs, "[checkArgs] unknown flag %q", arg)
		}
	}
	return nil
}

func newParser(config *utils.Config, configPath, generations *string) *flaggy.Parser {
	p := flaggy.NewParser("gol")
	p.Description = "Evolves a Game of Life grid of '.' and '*' cells"
	p.Version = version
	p.ShowHelpOnUnexpected = false

	p.String(&config.InputPath, "i", "input", "Read the initial grid from this file instead of stdin")
	p.String(&config.OutputPath, "o", "output", "Write the final grid to this file instead of stdout")
	p.String(generations, "g", "generations", "Number of generations to evolve")
	p.Bool(&config.PrintStats, "s", "stats", "Print live cell percentages after the run")
	p.Bool(&config.Torus, "t", "torus", "Wrap the grid edges around (toroidal topology)")
	p.String(configPath, "c", "config", "JSON configuration file, overridden by flags")
	p.Bool(&config.Verbose, "v", "verbose", "Log progress to stderr")
	p.Bool(&config.NoColor, "", "no-color", "Disable colored log output")
	return p
}
