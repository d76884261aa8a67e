// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"

	"github.com/H0llyW00dzZ/trust-chain-inspector/src/internal/report"
	x509chain "github.com/H0llyW00dzZ/trust-chain-inspector/src/internal/x509/chain"
	"github.com/H0llyW00dzZ/trust-chain-inspector/src/logger"
	"github.com/spf13/cobra"
)

// NewCertCommand creates the certcheck command.
//
// For every HOST[:PORT] it completes a TLS handshake with SNI set to the host
// and records the leaf expiration and the presented chain. Hosts that cannot
// be reached get an error entry instead. Saved bundles given with --file are
// enumerated the same way without connecting, keyed by their path.
//
// Parameters:
//   - version: Version reported by --version
//   - log: Diagnostic logger used for text output
//
// Returns:
//   - *cobra.Command: Configured command; callers set args and streams
func NewCertCommand(version string, log logger.Logger) *cobra.Command {
	o := &options{}
	var (
		files   []string
		saveDir string
	)

	cmd := newCommand("certcheck", "HOST[:PORT]...", "Enumerate the certificate chain presented by TLS servers", version)
	cmd.Args = func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 && len(files) == 0 {
			return ErrHostRequired
		}
		return nil
	}
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

		ctx := cmd.Context()
		in := x509chain.NewInspector(cfg.TLSTimeout(), cfg.TLS.DefaultPort, diag)
		reports := in.InspectAll(ctx, args)
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, path := range files {
			reports[path] = in.InspectBundle(path)
		}

		if saveDir != "" {
			written, err := x509chain.SaveChains(saveDir, reports)
			for _, path := range written {
				diag.Printf("Saved certificate chain to %s", path)
			}
			if err != nil {
				diag.Printf("Error: unable to save certificate chains: %v", err)
			}
		}

		if format == report.FormatTable {
			return report.WriteText(cmd.OutOrStdout(), x509chain.RenderTable(reports))
		}
		return report.WriteJSON(cmd.OutOrStdout(), reports)
	}

	cmd.Flags().StringArrayVarP(&files, "file", "f", nil, "enumerate a saved PEM, DER or PKCS#7 bundle (repeatable)")
	cmd.Flags().StringVar(&saveDir, "save-chain", "", "write each presented chain as a PEM bundle into this existing directory")
	o.bindCommon(cmd)
	o.bindOutput(cmd)
	return cmd
}

// ExecuteCert runs certcheck with the process arguments.
func ExecuteCert(ctx context.Context, version string, log logger.Logger) error {
	return NewCertCommand(version, log).ExecuteContext(ctx)
}
