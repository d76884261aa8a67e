// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// namecheck resolves names and prints their A records in a stable order.
//
// Record lines are sorted and carry a zero TTL, which makes the output usable
// as a fixture that only changes when the zone does.
//
// # Usage
//
//	namecheck [FLAGS] NAME...
//
// # Flags
//
//	-c, --config        Configuration file (.json, .yaml, .yml)
//	    --resolv-conf   resolv.conf-format nameserver list (default /etc/resolv.conf)
//	    --log-format    Diagnostic format on stderr: text or json (default text)
//	-q, --quiet         Suppress diagnostics
package main
