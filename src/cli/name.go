// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/H0llyW00dzZ/trust-chain-inspector/src/internal/dns/resolver"
	"github.com/H0llyW00dzZ/trust-chain-inspector/src/internal/report"
	"github.com/H0llyW00dzZ/trust-chain-inspector/src/logger"
	"github.com/miekg/dns"
	"github.com/spf13/cobra"
)

// NewNameCommand creates the namecheck command.
//
// For every NAME it resolves the A record set and lists the whole answer
// section, CNAMEs included, as sorted presentation lines with TTLs zeroed,
// so the output only changes when the zone does.
//
// Parameters:
//   - version: Version reported by --version
//   - log: Diagnostic logger used for text output
//
// Returns:
//   - *cobra.Command: Configured command; callers set args and streams
func NewNameCommand(version string, log logger.Logger) *cobra.Command {
	o := &options{}
	cmd := newCommand("namecheck", "NAME...", "Resolve names and print their records in a stable order", version)
	cmd.Args = requireArgs(ErrNameRequired)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := o.load()
		if err != nil {
			return err
		}
		diag, err := o.diagnostics(cmd, log)
		if err != nil {
			return err
		}
		res, err := newResolver(cfg, diag)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		out := ResolveNames(ctx, res, args)
		if err := ctx.Err(); err != nil {
			return err
		}
		return report.WriteJSON(cmd.OutOrStdout(), out)
	}

	o.bindCommon(cmd)
	o.bindResolver(cmd)
	return cmd
}

// Lookuper performs a single DNS lookup. [resolver.Resolver] implements it.
type Lookuper interface {
	Lookup(ctx context.Context, name string, qtype uint16) *resolver.Result
}

// ResolveNames looks up the A records of every name in sorted order.
//
// A resolved name maps to every record of the answer section, so aliases
// followed on the way to the addresses are kept. A name that does not exist
// maps to a single "No DNS records found for" line; other lookup failures,
// including an answer without A records, map to their finding messages.
//
// Returns:
//   - map[string][]string: Sorted record lines keyed by name
func ResolveNames(ctx context.Context, l Lookuper, names []string) map[string][]string {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)

	out := make(map[string][]string, len(sorted))
	for _, name := range sorted {
		if _, done := out[name]; done {
			continue
		}

		res := l.Lookup(ctx, name, dns.TypeA)
		switch {
		case res.NotFound():
			out[name] = []string{fmt.Sprintf("No DNS records found for: %s", name)}
		case len(res.Records) == 0:
			out[name] = res.Findings.Strings()
		default:
			out[name] = resolver.RecordLines(res.Answer)
		}
	}
	return out
}

// ExecuteName runs namecheck with the process arguments.
func ExecuteName(ctx context.Context, version string, log logger.Logger) error {
	return NewNameCommand(version, log).ExecuteContext(ctx)
}
