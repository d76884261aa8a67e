// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// dnsseccheck cross-validates the DNSSEC delegation of domain names.
//
// For each name it queries the DNSKEY and DS record sets, labels every key as
// KSK or ZSK, and recomputes the digest of every DS record from the matching
// Key-Signing Key. The result is a JSON document keyed by name with sorted
// records, so two runs against an unchanged zone produce identical output.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/trust-chain-inspector/cmd/dnsseccheck@latest
//
// # Usage
//
//	dnsseccheck [FLAGS] NAME...
//
// # Flags
//
//	-c, --config        Configuration file (.json, .yaml, .yml)
//	    --resolv-conf   resolv.conf-format nameserver list (default /etc/resolv.conf)
//	-o, --output        Output format: json or table (default json)
//	    --log-format    Diagnostic format on stderr: text or json (default text)
//	-q, --quiet         Suppress diagnostics
//
// # Examples
//
// Check two zones:
//
//	dnsseccheck example.com example.org
//
// Use a specific resolver through the configuration file:
//
//	dnsseccheck --config inspector.yaml example.com
//
// Review the result as a markdown table:
//
//	dnsseccheck --output table example.com
package main
