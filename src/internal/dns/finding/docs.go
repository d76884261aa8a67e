// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package finding defines the typed error entries accumulated while inspecting
// a DNS name. Lookups and the DNSSEC cross-check record structured [Finding]
// values; the human-readable text is produced only when a report is rendered.
package finding
