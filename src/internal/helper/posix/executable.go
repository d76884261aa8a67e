// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"path/filepath"
	"strings"
)

// GetExecutableName returns the executable name without extension, cross-platform compatible.
// It extracts the base name from os.Args[0] and removes the .exe suffix used on Windows.
//
//   - Linux/macOS: "dnsseccheck" from "/usr/local/bin/dnsseccheck"
//   - Windows: "certcheck" from "C:\bin\certcheck.exe"
//   - Fallback: fallback when os.Args[0] is unavailable
//
// Parameters:
//   - fallback: Name returned when os.Args carries no program name
//
// Returns:
//   - string: Clean executable name suitable for CLI usage
func GetExecutableName(fallback string) string {
	if len(os.Args) == 0 || os.Args[0] == "" {
		return fallback
	}

	name := filepath.Base(os.Args[0])

	// Foreign separators (a Windows path seen on Unix or the reverse) survive filepath.Base.
	if strings.Contains(name, "\\") || (strings.Contains(name, "/") && !strings.Contains(name, string(filepath.Separator))) {
		parts := strings.FieldsFunc(name, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			name = parts[len(parts)-1]
		}
	}

	return strings.TrimSuffix(name, ".exe")
}
