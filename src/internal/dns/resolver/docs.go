// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package resolver implements the DNS client used by the inspectors.
// It provides capabilities to:
//   - Query a configured set of recursive resolvers with a bounded per-attempt timeout.
//   - Retry timed-out attempts up to a fixed ceiling, warning on the diagnostic stream.
//   - Map NOERROR/NODATA, NXDOMAIN and other failures into typed findings.
//   - Normalize answers (zeroed TTLs, record text without the header) so that
//     two lookups of an unchanged zone render identically.
//
// The transport sits behind the [Exchanger] interface; [github.com/miekg/dns.Client]
// satisfies it, and tests substitute fakes to simulate timeouts without delay.
package resolver
