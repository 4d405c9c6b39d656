package utils

import (
	"fmt"
	"io"
	"sync"

	"github.com/logrusorgru/aurora"
)

// Logger writes diagnostics to stderr, keeping stdout for the grid itself
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	verbose bool
	au      aurora.Aurora
}

func NewLogger(out io.Writer, verbose, color bool) *Logger {
	return &Logger{
		out:     out,
		verbose: verbose,
		au:      aurora.NewAurora(color),
	}
}

// Infof is only printed in verbose mode
func (l *Logger) Infof(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.write(l.au.Cyan("info").String(), format, args...)
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.write(l.au.Yellow("warn").String(), format, args...)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.write(l.au.Red("error").Bold().String(), format, args...)
}

func (l *Logger) write(level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "%s: %s\n", level, fmt.Sprintf(format, args...))
}
