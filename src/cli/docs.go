// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interfaces of the trust chain inspector.
// It implements Cobra-based commands for three tools:
//   - dnsseccheck: cross-validates DS records against the DNSKEY set of each name.
//   - certcheck: enumerates the certificate chain a TLS server presents.
//   - namecheck: resolves names and prints their records in a stable order.
//
// Every tool writes a single JSON document keyed by its arguments to stdout
// and diagnostics to stderr. Per-name and per-host failures are part of the
// document; only usage and configuration errors fail the command.
package cli
