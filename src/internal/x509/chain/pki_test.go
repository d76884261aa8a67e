// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain_test

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"io"
	"math/big"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// leafExpiry is a fixed NotAfter so expirations are predictable. It lies in
// the past; enumeration does not validate.
var leafExpiry = time.Date(2020, time.January, 2, 3, 4, 5, 0, time.UTC)

type issued struct {
	cert *x509.Certificate
	key  crypto.Signer
}

func issue(t *testing.T, tmpl *x509.Certificate, parent *issued) *issued {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	parentCert, parentKey := tmpl, crypto.Signer(key)
	if parent != nil {
		parentCert, parentKey = parent.cert, parent.key
	}

	der, err := x509.CreateCertificate(rand.Reader, tmpl, parentCert, key.Public(), parentKey)
	require.NoError(t, err)
	cert, err := x509.ParseCertificate(der)
	require.NoError(t, err)
	return &issued{cert: cert, key: key}
}

func caTemplate(serial int64, name pkix.Name) *x509.Certificate {
	return &x509.Certificate{
		SerialNumber:          big.NewInt(serial),
		Subject:               name,
		NotBefore:             time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC),
		NotAfter:              time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC),
		KeyUsage:              x509.KeyUsageCertSign,
		BasicConstraintsValid: true,
		IsCA:                  true,
	}
}

// testChain is a root, an intermediate and a leaf for leaf.example.
type testChain struct {
	root, intermediate, leaf *issued
}

func newTestChain(t *testing.T) *testChain {
	t.Helper()
	root := issue(t, caTemplate(1, pkix.Name{Country: []string{"US"}, Organization: []string{"Test"}, CommonName: "Test Root"}), nil)
	intermediate := issue(t, caTemplate(2, pkix.Name{Country: []string{"US"}, Organization: []string{"Let's Encrypt"}, CommonName: "R3"}), root)
	leaf := issue(t, &x509.Certificate{
		SerialNumber: new(big.Int).SetUint64(0xdeadbeefcafe1234),
		Subject:      pkix.Name{CommonName: "leaf.example"},
		DNSNames:     []string{"leaf.example"},
		NotBefore:    time.Date(2019, time.June, 1, 0, 0, 0, 0, time.UTC),
		NotAfter:     leafExpiry,
		KeyUsage:     x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
	}, intermediate)
	return &testChain{root: root, intermediate: intermediate, leaf: leaf}
}

// serveTLS starts a TLS listener presenting leaf then intermediate and returns
// its address.
func serveTLS(t *testing.T, tc *testChain) string {
	t.Helper()
	ln, err := tls.Listen("tcp", "127.0.0.1:0", &tls.Config{
		Certificates: []tls.Certificate{{
			Certificate: [][]byte{tc.leaf.cert.Raw, tc.intermediate.cert.Raw},
			PrivateKey:  tc.leaf.key,
		}},
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

// silentServer accepts TCP connections and never answers.
func silentServer(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	var held []net.Conn
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			held = append(held, conn)
		}
	}()
	t.Cleanup(func() {
		ln.Close()
		<-done
		for _, c := range held {
			c.Close()
		}
	})

	return ln.Addr().String()
}

// closedAddr returns an address nothing listens on.
func closedAddr(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return addr
}
