// Package logging provides the leveled console logger used by every batch
// stage, with optional ANSI color and an optional plain-text file sink.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors.
)

// Options configures a Logger.
type Options struct {
	Verbose bool
	Color   ColorMode
	LogFile string // Optional file sink; appended to.
}

// Logger writes timestamped, leveled lines to stdout (errors to stderr) and
// optionally to a log file. Safe for use from multiple goroutines even though
// the batch itself is sequential.
type Logger struct {
	mu      sync.Mutex
	verbose bool
	colors  map[string]string
	reset   string
	file    *os.File
}

// New builds a Logger from opts, opening the log file if one was requested.
// Call Close when done if LogFile was set.
func New(opts Options) (*Logger, error) {
	l := &Logger{verbose: opts.Verbose}

	enable := false
	switch opts.Color {
	case ColorAlways:
		enable = true
	case ColorNever:
		enable = false
	default:
		enable = isTerminal(os.Stdout) && os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
	if enable {
		l.colors = map[string]string{
			"INFO":    "\033[1;94m",
			"SUCCESS": "\033[1;92m",
			"WARN":    "\033[1;93m",
			"ERROR":   "\033[1;91m",
			"DEBUG":   "\033[1;96m",
		}
		l.reset = "\033[0m"
	}

	if opts.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(opts.LogFile), 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		l.file = f
	}
	return l, nil
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// Close closes the file sink if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

func (l *Logger) line(level, text string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	defer l.mu.Unlock()

	plain := ts + " [" + level + "] " + text + "\n"
	out := os.Stdout
	if level == "ERROR" {
		out = os.Stderr
	}
	if c := l.colors[level]; c != "" {
		_, _ = io.WriteString(out, ts+" "+c+"["+level+"]"+l.reset+" "+text+"\n")
	} else {
		_, _ = io.WriteString(out, plain)
	}
	if l.file != nil {
		_, _ = io.WriteString(l.file, plain)
	}
}

// Info logs at INFO level.
func (l *Logger) Info(format string, args ...interface{}) {
	l.line("INFO", fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level.
func (l *Logger) Success(format string, args ...interface{}) {
	l.line("SUCCESS", fmt.Sprintf(format, args...))
}

// Warn logs at WARN level.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line("WARN", fmt.Sprintf(format, args...))
}

// Error logs at ERROR level, routed to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line("ERROR", fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level; no-op unless the logger is verbose.
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.line("DEBUG", fmt.Sprintf(format, args...))
}
