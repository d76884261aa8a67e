// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain

import (
	"context"
	"crypto/x509"
	"math/big"
	"sort"
	"time"

	x509certs "github.com/H0llyW00dzZ/trust-chain-inspector/src/internal/x509/certs"
	"github.com/H0llyW00dzZ/trust-chain-inspector/src/logger"
)

// ExpirationLayout is the leaf expiration format: ISO-8601 in UTC without a
// zone designator.
const ExpirationLayout = "2006-01-02T15:04:05"

// Entry describes one presented certificate, keyed by its subject.
type Entry struct {
	Serial *big.Int `json:"serial"`
	Issuer string   `json:"issuer"`
}

// Report is the per-host result. A host that could not be inspected carries
// only Error.
type Report struct {
	Expiration string           `json:"expiration,omitempty"`
	Chain      map[string]Entry `json:"chain,omitempty"`
	Error      string           `json:"error,omitempty"`

	certs []*x509.Certificate
}

// Certificates returns the chain the report was built from, in presented order.
func (r *Report) Certificates() []*x509.Certificate { return r.certs }

// Enumerate maps every certificate's one-line subject to its serial number and
// one-line issuer. Certificates are visited in presented order, so a later
// certificate with an identical subject replaces an earlier one.
//
// Every call returns a new map.
//
// Parameters:
//   - certs: Certificates as presented by the server
//
// Returns:
//   - map[string]Entry: Chain keyed by subject
func Enumerate(certs []*x509.Certificate) map[string]Entry {
	chain := make(map[string]Entry, len(certs))
	for _, cert := range certs {
		chain[SubjectOf(cert)] = Entry{
			Serial: cert.SerialNumber,
			Issuer: IssuerOf(cert),
		}
	}
	return chain
}

// SubjectOf returns the one-line subject of cert.
func SubjectOf(cert *x509.Certificate) string {
	if s, err := FormatName(cert.RawSubject); err == nil {
		return s
	}
	return cert.Subject.String()
}

// IssuerOf returns the one-line issuer of cert.
func IssuerOf(cert *x509.Certificate) string {
	if s, err := FormatName(cert.RawIssuer); err == nil {
		return s
	}
	return cert.Issuer.String()
}

// Expiration formats the NotAfter time of cert with [ExpirationLayout].
func Expiration(cert *x509.Certificate) string {
	return cert.NotAfter.UTC().Format(ExpirationLayout)
}

// NewReport builds the report of a presented chain.
//
// Parameters:
//   - leaf: End-entity certificate whose expiration is reported
//   - certs: Chain in presented order
//
// Returns:
//   - *Report: Report with expiration and chain set
func NewReport(leaf *x509.Certificate, certs []*x509.Certificate) *Report {
	return &Report{
		Expiration: Expiration(leaf),
		Chain:      Enumerate(certs),
		certs:      certs,
	}
}

// Inspector connects to hosts and builds their chain reports.
type Inspector struct {
	timeout     time.Duration
	defaultPort int
	log         logger.Logger
}

// NewInspector creates an Inspector.
//
// Parameters:
//   - timeout: Connect plus handshake bound per host
//   - defaultPort: Port used for targets without one
//   - log: Destination for per-host failure diagnostics
func NewInspector(timeout time.Duration, defaultPort int, log logger.Logger) *Inspector {
	return &Inspector{timeout: timeout, defaultPort: defaultPort, log: log}
}

// Inspect connects to target and enumerates the presented chain.
// Failures are recorded in the report's Error field and logged; they never
// abort the caller.
//
// Parameters:
//   - ctx: Context for cancellation
//   - target: "host[:port]" as given on the command line
//
// Returns:
//   - *Report: Per-host report
func (in *Inspector) Inspect(ctx context.Context, target string) *Report {
	host, port, err := ParseTarget(target, in.defaultPort)
	if err != nil {
		return in.failed(target, err)
	}

	var rep *Report
	err = WithPeer(ctx, host, port, in.timeout, func(p *Peer) error {
		rep = NewReport(p.Leaf(), p.Certificates())
		return nil
	})
	if err != nil {
		return in.failed(target, err)
	}
	return rep
}

// InspectAll inspects every target sequentially in sorted order.
// Repeated targets are inspected once.
func (in *Inspector) InspectAll(ctx context.Context, targets []string) map[string]*Report {
	sorted := append([]string(nil), targets...)
	sort.Strings(sorted)

	out := make(map[string]*Report, len(sorted))
	for _, target := range sorted {
		if _, done := out[target]; done {
			continue
		}
		out[target] = in.Inspect(ctx, target)
	}
	return out
}

// InspectBundle builds the report of a chain stored on disk, in PEM, DER or
// PKCS#7 form, without connecting anywhere.
//
// Parameters:
//   - path: Bundle file; the first certificate is taken as the leaf
//
// Returns:
//   - *Report: Report keyed by the caller under path
func (in *Inspector) InspectBundle(path string) *Report {
	certs, err := x509certs.New().ReadChain(path)
	if err != nil {
		return in.failed(path, err)
	}
	return NewReport(certs[0], certs)
}

func (in *Inspector) failed(target string, err error) *Report {
	in.log.Printf("Error: unable to inspect %s: %v", target, err)
	return &Report{Error: err.Error()}
}
