// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/H0llyW00dzZ/trust-chain-inspector/src/internal/helper/gc"
)

// Output formats accepted by the --output flag.
const (
	FormatJSON  = "json"
	FormatTable = "table"
)

// Indent is the indentation of emitted JSON documents.
const Indent = "    "

// ErrUnknownFormat is returned by [ParseFormat] for an unsupported output format.
var ErrUnknownFormat = errors.New("report: unknown output format")

// ParseFormat validates an --output value. Empty selects [FormatJSON].
func ParseFormat(s string) (string, error) {
	switch s {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatTable:
		return FormatTable, nil
	default:
		return "", fmt.Errorf("%w: %q (want %q or %q)", ErrUnknownFormat, s, FormatJSON, FormatTable)
	}
}

// WriteJSON encodes v as an indented JSON document followed by a newline.
//
// Map keys are emitted in sorted order and struct fields in declaration order,
// so callers get deterministic output by keying entities in maps and keeping
// nested lists sorted. HTML characters are not escaped. The document is
// rendered into a pooled buffer and written with a single call, so a failed
// encode leaves w untouched.
//
// Parameters:
//   - w: Destination, usually stdout
//   - v: Value to encode
//
// Returns:
//   - error: Encoding or write failure
func WriteJSON(w io.Writer, v any) error {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	enc := json.NewEncoder(buf)
	enc.SetIndent("", Indent)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// WriteText writes s followed by a newline when s lacks one.
func WriteText(w io.Writer, s string) error {
	if len(s) == 0 || s[len(s)-1] != '\n' {
		s += "\n"
	}
	_, err := io.WriteString(w, s)
	return err
}
