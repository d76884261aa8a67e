// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package dnssec

import (
	"context"
	"sort"

	"github.com/H0llyW00dzZ/trust-chain-inspector/src/internal/dns/resolver"
	"github.com/miekg/dns"
)

// Lookuper performs a single DNS lookup. [resolver.Resolver] implements it.
type Lookuper interface {
	Lookup(ctx context.Context, name string, qtype uint16) *resolver.Result
}

// Inspector runs the lookup and cross-check pipeline for names.
type Inspector struct {
	lookup Lookuper
}

// NewInspector creates an Inspector using l for lookups.
func NewInspector(l Lookuper) *Inspector { return &Inspector{lookup: l} }

// Inspect looks up DNSKEY then DS records for name and cross-checks them.
//
// Errors are accumulated in lookup order: DNSKEY lookup, key classification,
// DS lookup, DS cross-check. A name that does not exist yields a report holding
// only that finding and no DS lookup is attempted.
//
// Parameters:
//   - ctx: Context for cancellation
//   - name: Name under inspection, as given on the command line
//
// Returns:
//   - *Report: Per-name report
func (in *Inspector) Inspect(ctx context.Context, name string) *Report {
	rep := NewReport()

	keys := in.lookup.Lookup(ctx, name, dns.TypeDNSKEY)
	rep.Errors = append(rep.Errors, keys.Findings...)
	if keys.NotFound() {
		return rep
	}

	entries, ksks, keyFindings := ClassifyKeys(name, keys.Records)
	rep.DNSKEYRecords = entries
	rep.Errors = append(rep.Errors, keyFindings...)

	ds := in.lookup.Lookup(ctx, name, dns.TypeDS)
	rep.Errors = append(rep.Errors, ds.Findings...)
	if ds.NotFound() {
		return rep
	}

	dsEntries, dsFindings := CrossCheckDS(name, ds.Records, ksks)
	rep.DSRecords = dsEntries
	rep.Errors = append(rep.Errors, dsFindings...)

	return rep
}

// InspectAll inspects every name sequentially in sorted order.
// Repeated names are inspected once.
//
// Returns:
//   - map[string]*Report: Reports keyed by the names as given
func (in *Inspector) InspectAll(ctx context.Context, names []string) map[string]*Report {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)

	out := make(map[string]*Report, len(sorted))
	for _, name := range sorted {
		if _, done := out[name]; done {
			continue
		}
		out[name] = in.Inspect(ctx, name)
	}
	return out
}
