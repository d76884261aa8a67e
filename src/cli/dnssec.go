// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"

	"github.com/H0llyW00dzZ/trust-chain-inspector/src/internal/dns/dnssec"
	"github.com/H0llyW00dzZ/trust-chain-inspector/src/internal/report"
	"github.com/H0llyW00dzZ/trust-chain-inspector/src/logger"
	"github.com/spf13/cobra"
)

// NewDNSSECCommand creates the dnsseccheck command.
//
// For every NAME it queries the DNSKEY and DS record sets, classifies keys
// and checks every DS digest against the Key-Signing Keys. The report map is
// written to the command's output stream.
//
// Parameters:
//   - version: Version reported by --version
//   - log: Diagnostic logger used for text output
//
// Returns:
//   - *cobra.Command: Configured command; callers set args and streams
func NewDNSSECCommand(version string, log logger.Logger) *cobra.Command {
	o := &options{}
	cmd := newCommand("dnsseccheck", "NAME...", "Cross-validate DNSSEC DNSKEY and DS records", version)
	cmd.Args = requireArgs(ErrNameRequired)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		format, err := report.ParseFormat(o.output)
		if err != nil {
			return err
		}
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
		reports := dnssec.NewInspector(res).InspectAll(ctx, args)
		if err := ctx.Err(); err != nil {
			return err
		}

		if format == report.FormatTable {
			return report.WriteText(cmd.OutOrStdout(), dnssec.RenderTable(reports))
		}
		return report.WriteJSON(cmd.OutOrStdout(), reports)
	}

	o.bindCommon(cmd)
	o.bindResolver(cmd)
	o.bindOutput(cmd)
	return cmd
}

// ExecuteDNSSEC runs dnsseccheck with the process arguments.
func ExecuteDNSSEC(ctx context.Context, version string, log logger.Logger) error {
	return NewDNSSECCommand(version, log).ExecuteContext(ctx)
}
