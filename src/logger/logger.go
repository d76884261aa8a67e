// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/H0llyW00dzZ/trust-chain-inspector/src/internal/helper/gc"
)

// Supported values for the --log-format flag.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrUnknownFormat is returned by [New] for an unsupported log format.
var ErrUnknownFormat = errors.New("logger: unknown log format")

// Logger defines the interface for logging operations.
// It provides methods for formatted output on the diagnostic stream.
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// New creates a Logger for the given format writing to w.
//
// Parameters:
//   - format: [FormatText] or [FormatJSON]; empty selects [FormatText]
//   - w: Destination writer, nil selects os.Stderr
//   - quiet: Suppress all output
//
// Returns:
//   - Logger: The configured logger
//   - error: [ErrUnknownFormat] for any other format
func New(format string, w io.Writer, quiet bool) (Logger, error) {
	if w == nil {
		w = os.Stderr
	}
	if quiet {
		w = io.Discard
	}

	switch format {
	case "", FormatText:
		l := NewCLILogger()
		l.SetOutput(w)
		return l, nil
	case FormatJSON:
		return NewJSONLogger(w, quiet), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// CLILogger implements Logger using the standard log package.
// It's designed for command-line interface output with human-readable formatting.
type CLILogger struct{ logger *log.Logger }

// NewCLILogger creates a new CLI logger with timestamps disabled writing to stderr.
func NewCLILogger() *CLILogger {
	l := log.New(os.Stderr, "", 0)
	return &CLILogger{logger: l}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// JSONLogger implements Logger with one JSON object per line.
// It is meant for wrappers that collect the diagnostic stream of many runs.
//
// JSONLogger is safe for concurrent use by multiple goroutines.
type JSONLogger struct {
	mu     sync.Mutex
	writer io.Writer
	silent bool
}

// NewJSONLogger creates a new structured logger.
// A nil writer discards output; silent suppresses every message.
func NewJSONLogger(writer io.Writer, silent bool) *JSONLogger {
	if writer == nil {
		writer = io.Discard
	}
	return &JSONLogger{
		writer: writer,
		silent: silent,
	}
}

// Printf formats and logs a structured message.
func (j *JSONLogger) Printf(format string, v ...any) {
	if j.silent {
		return
	}
	j.write(fmt.Sprintf(format, v...))
}

// Println logs a structured message.
func (j *JSONLogger) Println(v ...any) {
	if j.silent {
		return
	}
	j.write(fmt.Sprint(v...))
}

func (j *JSONLogger) write(msg string) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	// Encoder appends the newline.
	if err := json.NewEncoder(buf).Encode(map[string]any{
		"level":   "info",
		"message": msg,
	}); err != nil {
		return
	}

	j.mu.Lock()
	_, _ = buf.WriteTo(j.writer)
	j.mu.Unlock()
}

// SetOutput sets the output destination for the JSON logger.
//
// SetOutput is safe for concurrent use by multiple goroutines.
func (j *JSONLogger) SetOutput(w io.Writer) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if w == nil {
		j.writer = io.Discard
	} else {
		j.writer = w
	}
}
