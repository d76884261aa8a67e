// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"crypto/x509"
	"fmt"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// RenderTable renders host reports as a formatted markdown table.
//
// It displays one row per presented certificate with its role, subject,
// issuer, serial, expiry and key size, and one row per failed host. Hosts
// appear in sorted order and certificates in presented order.
//
// Parameters:
//   - reports: Reports keyed by host argument
//
// Returns:
//   - string: Markdown table representation of the reports
func RenderTable(reports map[string]*Report) string {
	if len(reports) == 0 {
		return "No certificates to display"
	}

	hosts := make([]string, 0, len(reports))
	for host := range reports {
		hosts = append(hosts, host)
	}
	sort.Strings(hosts)

	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header([]string{"Host", "#", "Role", "Subject", "Issuer", "Serial", "Valid Until", "Key Size"})

	var rows [][]string
	for _, host := range hosts {
		rep := reports[host]
		if rep.Error != "" {
			rows = append(rows, []string{host, "", "error", rep.Error, "", "", "", ""})
			continue
		}

		certs := rep.Certificates()
		for i, cert := range certs {
			rows = append(rows, []string{
				host,
				fmt.Sprintf("%d", i+1),
				certificateRole(i, len(certs)),
				SubjectOf(cert),
				IssuerOf(cert),
				cert.SerialNumber.String(),
				cert.NotAfter.UTC().Format("2006-01-02"),
				keySize(cert),
			})
		}
	}

	table.Bulk(rows)
	table.Render()
	return buf.String()
}

// certificateRole determines the role of a certificate by its position in the
// presented chain.
func certificateRole(index, total int) string {
	switch {
	case total == 1:
		return "Self-Signed Certificate"
	case index == 0:
		return "End-Entity (Server/Leaf) Certificate"
	case index == total-1:
		return "Top Presented CA Certificate"
	default:
		return "Intermediate CA Certificate"
	}
}

func keySize(cert *x509.Certificate) string {
	switch key := cert.PublicKey.(type) {
	case *rsa.PublicKey:
		return fmt.Sprintf("%d-bit RSA", key.Size()*8)
	case *ecdsa.PublicKey:
		return fmt.Sprintf("%d-bit ECDSA", key.Curve.Params().BitSize)
	case ed25519.PublicKey:
		return "Ed25519"
	default:
		return "unknown"
	}
}
