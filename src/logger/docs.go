// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides abstraction and implementation for diagnostic logging.
// It defines the Logger interface and provides two implementations: CLILogger for
// human-readable lines and JSONLogger for structured JSON lines. Both write to the
// diagnostic stream (stderr by default) because stdout carries the JSON report.
// Both implementations are thread-safe; JSONLogger renders through pooled buffers.
package logger
