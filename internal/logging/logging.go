// Package logging provides the console logger for vault runs.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Logger writes run progress to a single destination. In verbose mode every
// line carries a timestamp and level; otherwise lines are bare messages.
// Color is applied only when writing to a terminal.
type Logger struct {
	mu      sync.Mutex
	w       io.Writer
	verbose bool
	color   bool
}

// New creates a Logger writing to w. A nil writer discards all output.
func New(w io.Writer, verbose bool) *Logger {
	if w == nil {
		w = io.Discard
	}
	return &Logger{w: w, verbose: verbose, color: isTerminal(w)}
}

// isTerminal reports whether w is the process stdout or stderr with color
// support. Any other writer gets plain text so captured output stays clean.
func isTerminal(w io.Writer) bool {
	if w == os.Stdout || w == os.Stderr {
		return !color.NoColor
	}
	return false
}

// Verbose reports whether debug output is enabled.
func (l *Logger) Verbose() bool {
	return l.verbose
}

// Info logs a plain informational message.
func (l *Logger) Info(format string, args ...any) {
	l.log("INFO", nil, format, args...)
}

// Success logs an informational message rendered green on terminals.
func (l *Logger) Success(format string, args ...any) {
	l.log("INFO", color.New(color.FgGreen), format, args...)
}

// Warn logs a warning, rendered yellow on terminals.
func (l *Logger) Warn(format string, args ...any) {
	l.log("WARNING", color.New(color.FgYellow), format, args...)
}

// Error logs an error, rendered red on terminals.
func (l *Logger) Error(format string, args ...any) {
	l.log("ERROR", color.New(color.FgRed), format, args...)
}

// Debug logs only in verbose mode, rendered cyan on terminals.
func (l *Logger) Debug(format string, args ...any) {
	if !l.verbose {
		return
	}
	l.log("DEBUG", color.New(color.FgCyan), format, args...)
}

func (l *Logger) log(level string, c *color.Color, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	l.mu.Lock()
	defer l.mu.Unlock()

	line := msg
	if l.verbose {
		line = fmt.Sprintf("%s - %s - %s", time.Now().Format("2006-01-02 15:04:05"), level, msg)
	}
	if l.color && c != nil {
		line = c.Sprint(line)
	}
	fmt.Fprintln(l.w, line)
}
