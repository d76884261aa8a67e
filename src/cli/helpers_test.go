// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli_test

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"fmt"
	"io"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/H0llyW00dzZ/trust-chain-inspector/src/logger"
	"github.com/miekg/dns"
	"github.com/stretchr/testify/require"
)

const version = "1.3.3.7-testing"

// zone holds the records served by the test name server, keyed by owner
// name and type. Names absent from NX answer NXDOMAIN.
type zone struct {
	records map[string]map[uint16][]dns.RR
	nx      map[string]bool
}

func (z *zone) ServeDNS(w dns.ResponseWriter, r *dns.Msg) {
	m := new(dns.Msg)
	m.SetReply(r)
	q := r.Question[0]
	if z.nx[q.Name] {
		m.Rcode = dns.RcodeNameError
	} else {
		m.Answer = z.records[q.Name][q.Qtype]
	}
	w.WriteMsg(m)
}

// serveDNS starts a UDP name server for z and returns its address.
func serveDNS(t *testing.T, z *zone) string {
	t.Helper()
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)

	started := make(chan struct{})
	srv := &dns.Server{PacketConn: pc, Handler: z, NotifyStartedFunc: func() { close(started) }}
	go srv.ActivateAndServe()
	<-started
	t.Cleanup(func() { srv.Shutdown() })

	return pc.LocalAddr().String()
}

// writeConfig writes a YAML configuration pointing the resolver at server.
func writeConfig(t *testing.T, server string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inspector.yaml")
	body := fmt.Sprintf("dns:\n  servers: [%q]\n  timeoutSeconds: 2\n  attempts: 1\ntls:\n  timeoutSeconds: 5\n", server)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func newKey(t *testing.T, name string, flags uint16) *dns.DNSKEY {
	t.Helper()
	k := &dns.DNSKEY{
		Hdr:       dns.RR_Header{Name: name, Rrtype: dns.TypeDNSKEY, Class: dns.ClassINET, Ttl: 3600},
		Flags:     flags,
		Protocol:  3,
		Algorithm: dns.ECDSAP256SHA256,
	}
	_, err := k.Generate(256)
	require.NoError(t, err)
	return k
}

func bufferLogger(buf *bytes.Buffer) logger.Logger {
	log := logger.NewCLILogger()
	log.SetOutput(buf)
	return log
}

// serveTLS starts a TLS listener presenting a leaf for leaf.example issued by
// a "/C=US/O=Let's Encrypt/CN=R3" intermediate, and returns its address.
func serveTLS(t *testing.T) string {
	t.Helper()

	caKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	ca := &x509.Certificate{
		SerialNumber:          big.NewInt(3),
		Subject:               pkix.Name{Country: []string{"US"}, Organization: []string{"Let's Encrypt"}, CommonName: "R3"},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(24 * time.Hour),
		KeyUsage:              x509.KeyUsageCertSign,
		BasicConstraintsValid: true,
		IsCA:                  true,
	}
	caDER, err := x509.CreateCertificate(rand.Reader, ca, ca, caKey.Public(), caKey)
	require.NoError(t, err)

	leafKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	leaf := &x509.Certificate{
		SerialNumber: big.NewInt(4242),
		Subject:      pkix.Name{CommonName: "leaf.example"},
		DNSNames:     []string{"leaf.example"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Date(2030, time.March, 4, 5, 6, 7, 0, time.UTC),
	}
	leafDER, err := x509.CreateCertificate(rand.Reader, leaf, ca, leafKey.Public(), caKey)
	require.NoError(t, err)

	ln, err := tls.Listen("tcp", "127.0.0.1:0", &tls.Config{
		Certificates: []tls.Certificate{{Certificate: [][]byte{leafDER, caDER}, PrivateKey: leafKey}},
	})
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go func(c net.Conn) {
				defer c.Close()
				if err := c.(*tls.Conn).Handshake(); err != nil {
					return
				}
				io.Copy(io.Discard, c)
			}(conn)
		}
	}()

	return ln.Addr().String()
}
