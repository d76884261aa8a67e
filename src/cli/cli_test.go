// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"path/filepath"
	"testing"

	"github.com/H0llyW00dzZ/trust-chain-inspector/src/cli"
	"github.com/H0llyW00dzZ/trust-chain-inspector/src/internal/report"
	x509chain "github.com/H0llyW00dzZ/trust-chain-inspector/src/internal/x509/chain"
	"github.com/H0llyW00dzZ/trust-chain-inspector/src/logger"
	"github.com/miekg/dns"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type commandFactory func(version string, log logger.Logger) *cobra.Command

// run executes the command built by newCmd with args and returns stdout,
// stderr and the error.
func run(t *testing.T, newCmd commandFactory, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr, diag bytes.Buffer

	cmd := newCmd(version, bufferLogger(&diag))
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String() + diag.String(), err
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name    string
		newCmd  commandFactory
		wantErr error
	}{
		{name: "dnsseccheck", newCmd: cli.NewDNSSECCommand, wantErr: cli.ErrNameRequired},
		{name: "namecheck", newCmd: cli.NewNameCommand, wantErr: cli.ErrNameRequired},
		{name: "certcheck", newCmd: cli.NewCertCommand, wantErr: cli.ErrHostRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := run(t, tt.newCmd)
			assert.ErrorIs(t, err, tt.wantErr)
			// cobra writes usage to the output stream set in the test
			assert.Contains(t, stdout, "Usage:")
		})
	}
}

func TestConfigurationErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")

	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "Missing config file",
			testFunc: func(t *testing.T) {
				stdout, _, err := run(t, cli.NewDNSSECCommand, "--config", missing, "example.com")
				assert.ErrorContains(t, err, "failed to read config file")
				assert.Empty(t, stdout)
			},
		},
		{
			name: "Unknown output format",
			testFunc: func(t *testing.T) {
				_, _, err := run(t, cli.NewCertCommand, "--output", "xml", "example.com")
				assert.ErrorIs(t, err, report.ErrUnknownFormat)
			},
		},
		{
			name: "Unknown log format",
			testFunc: func(t *testing.T) {
				_, _, err := run(t, cli.NewCertCommand, "--log-format", "xml", "example.com")
				assert.ErrorIs(t, err, logger.ErrUnknownFormat)
			},
		},
		{
			name: "Unreadable resolv.conf",
			testFunc: func(t *testing.T) {
				_, _, err := run(t, cli.NewNameCommand, "--resolv-conf", missing, "example.com")
				assert.ErrorContains(t, err, "failed to read resolver configuration")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TRUST_CHAIN_CONFIG_FILE", "")
			tt.testFunc(t)
		})
	}
}

func TestDNSSECCommand(t *testing.T) {
	ksk := newKey(t, "signed.example.", 257)
	zsk := newKey(t, "signed.example.", 256)
	for zsk.KeyTag() == ksk.KeyTag() {
		zsk = newKey(t, "signed.example.", 256)
	}
	ds := ksk.ToDS(dns.SHA256)

	server := serveDNS(t, &zone{
		records: map[string]map[uint16][]dns.RR{
			"signed.example.": {
				dns.TypeDNSKEY: {ksk, zsk},
				dns.TypeDS:     {ds},
			},
		},
		nx: map[string]bool{"missing.example.": true},
	})
	conf := writeConfig(t, server)

	t.Run("JSON", func(t *testing.T) {
		stdout, _, err := run(t, cli.NewDNSSECCommand, "--config", conf, "signed.example", "missing.example")
		require.NoError(t, err)

		var doc map[string]struct {
			Errors []string            `json:"_errors"`
			Keys   [][]json.RawMessage `json:"dnskey_records"`
			DS     [][]json.RawMessage `json:"ds_records"`
		}
		require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
		require.Len(t, doc, 2)

		signed := doc["signed.example"]
		assert.Empty(t, signed.Errors)
		assert.Len(t, signed.Keys, 2)
		require.Len(t, signed.DS, 1)
		assert.JSONEq(t, fmt.Sprintf("%q", fmt.Sprintf("%d_SHA256", ksk.KeyTag())), string(signed.DS[0][0]))

		var detail map[string]any
		require.NoError(t, json.Unmarshal(signed.DS[0][1], &detail))
		assert.Equal(t, true, detail["valid_key_digest"])

		missing := doc["missing.example"]
		assert.Equal(t, []string{"Domain not found: missing.example"}, missing.Errors)
		assert.Empty(t, missing.Keys)
		assert.Empty(t, missing.DS)
	})

	t.Run("Repeat runs are identical", func(t *testing.T) {
		first, _, err := run(t, cli.NewDNSSECCommand, "--config", conf, "signed.example")
		require.NoError(t, err)
		second, _, err := run(t, cli.NewDNSSECCommand, "--config", conf, "signed.example")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("Table", func(t *testing.T) {
		stdout, _, err := run(t, cli.NewDNSSECCommand, "--config", conf, "--output", "table", "signed.example")
		require.NoError(t, err)
		assert.Contains(t, stdout, "KSK")
		assert.Contains(t, stdout, "valid digest")
	})
}

func TestNameCommand(t *testing.T) {
	a := func(ip string) dns.RR {
		return &dns.A{
			Hdr: dns.RR_Header{Name: "www.example.", Rrtype: dns.TypeA, Class: dns.ClassINET, Ttl: 300},
			A:   net.ParseIP(ip),
		}
	}
	alias := &dns.CNAME{
		Hdr:    dns.RR_Header{Name: "alias.example.", Rrtype: dns.TypeCNAME, Class: dns.ClassINET, Ttl: 60},
		Target: "www.example.",
	}
	dangling := &dns.CNAME{
		Hdr:    dns.RR_Header{Name: "dangling.example.", Rrtype: dns.TypeCNAME, Class: dns.ClassINET, Ttl: 60},
		Target: "gone.example.",
	}
	server := serveDNS(t, &zone{
		records: map[string]map[uint16][]dns.RR{
			"www.example.":      {dns.TypeA: {a("192.0.2.20"), a("192.0.2.10")}},
			"alias.example.":    {dns.TypeA: {alias, a("192.0.2.10")}},
			"dangling.example.": {dns.TypeA: {dangling}},
		},
		nx: map[string]bool{"missing.example.": true},
	})

	stdout, _, err := run(t, cli.NewNameCommand, "--config", writeConfig(t, server),
		"www.example", "missing.example", "empty.example", "alias.example", "dangling.example")
	require.NoError(t, err)

	var doc map[string][]string
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	assert.Equal(t, map[string][]string{
		"www.example": {
			"www.example.\t0\tIN\tA\t192.0.2.10",
			"www.example.\t0\tIN\tA\t192.0.2.20",
		},
		"alias.example": {
			"alias.example.\t0\tIN\tCNAME\twww.example.",
			"www.example.\t0\tIN\tA\t192.0.2.10",
		},
		"missing.example":  {"No DNS records found for: missing.example"},
		"empty.example":    {"No A records found for empty.example"},
		"dangling.example": {"No A records found for dangling.example"},
	}, doc)
}

func TestCertCommand(t *testing.T) {
	addr := serveTLS(t)
	_, port, err := net.SplitHostPort(addr)
	require.NoError(t, err)
	down := "127.0.0.1:1"

	t.Run("JSON", func(t *testing.T) {
		t.Setenv("TRUST_CHAIN_CONFIG_FILE", "")
		stdout, diag, err := run(t, cli.NewCertCommand, addr, down)
		require.NoError(t, err)

		var doc map[string]json.RawMessage
		require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
		require.Len(t, doc, 2)

		assert.JSONEq(t, `{
			"expiration": "2030-03-04T05:06:07",
			"chain": {
				"/CN=leaf.example": {"serial": 4242, "issuer": "/C=US/O=Let's Encrypt/CN=R3"},
				"/C=US/O=Let's Encrypt/CN=R3": {"serial": 3, "issuer": "/C=US/O=Let's Encrypt/CN=R3"}
			}
		}`, string(doc["127.0.0.1:"+port]))

		var failed map[string]string
		require.NoError(t, json.Unmarshal(doc[down], &failed))
		assert.Contains(t, failed["error"], "connection failed")
		assert.Contains(t, diag, "unable to inspect "+down)
	})

	t.Run("JSON diagnostics", func(t *testing.T) {
		t.Setenv("TRUST_CHAIN_CONFIG_FILE", "")
		_, stderr, err := run(t, cli.NewCertCommand, "--log-format", "json", down)
		require.NoError(t, err)
		assert.Contains(t, stderr, `"message":`)
	})

	t.Run("Quiet", func(t *testing.T) {
		t.Setenv("TRUST_CHAIN_CONFIG_FILE", "")
		stdout, stderr, err := run(t, cli.NewCertCommand, "--quiet", down)
		require.NoError(t, err)
		assert.Empty(t, stderr)
		assert.Contains(t, stdout, `"error"`)
	})
}

func TestCertCommandBundles(t *testing.T) {
	t.Setenv("TRUST_CHAIN_CONFIG_FILE", "")
	addr := serveTLS(t)
	dir := t.TempDir()

	live, diag, err := run(t, cli.NewCertCommand, "--save-chain", dir, addr)
	require.NoError(t, err)
	assert.Contains(t, diag, "Saved certificate chain to")

	saved := x509chain.BundlePath(dir, addr)
	offline, _, err := run(t, cli.NewCertCommand, "--file", saved)
	require.NoError(t, err)

	var liveDoc, offlineDoc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(live), &liveDoc))
	require.NoError(t, json.Unmarshal([]byte(offline), &offlineDoc))
	assert.JSONEq(t, string(liveDoc[addr]), string(offlineDoc[saved]))
}

func TestCertCommandSaveFailureKeepsReport(t *testing.T) {
	t.Setenv("TRUST_CHAIN_CONFIG_FILE", "")
	addr := serveTLS(t)
	missing := filepath.Join(t.TempDir(), "missing")

	stdout, diag, err := run(t, cli.NewCertCommand, "--save-chain", missing, addr)
	require.NoError(t, err)
	assert.Contains(t, diag, "unable to save certificate chains")
	assert.NotContains(t, diag, "Saved certificate chain to")

	var doc map[string]map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	require.Contains(t, doc, addr)
	assert.Contains(t, doc[addr], "chain")
	assert.NotContains(t, doc[addr], "error")
}
