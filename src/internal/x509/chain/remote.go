// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrConnectionFailed is returned when the TCP connection or TLS handshake fails.
	ErrConnectionFailed = errors.New("x509chain: connection failed")
	// ErrNoPeerCertificates is returned when the server completes a handshake
	// without presenting any certificate.
	ErrNoPeerCertificates = errors.New("x509chain: no certificates received from server")
	// ErrInvalidTarget is returned for a target that cannot be split into host and port.
	ErrInvalidTarget = errors.New("x509chain: invalid target")
)

// ParseTarget splits a "host[:port]" argument. IPv6 literals are accepted
// bare ("::1") or bracketed with a port ("[::1]:8443").
//
// Parameters:
//   - target: Host argument as given on the command line
//   - defaultPort: Port used when target carries none
//
// Returns:
//   - string: Host name or address, without brackets
//   - int: Port number
//   - error: ErrInvalidTarget when the host is empty or the port is not a valid number
func ParseTarget(target string, defaultPort int) (string, int, error) {
	host, port := target, defaultPort

	if h, p, err := net.SplitHostPort(target); err == nil {
		n, err := strconv.Atoi(p)
		if err != nil || n < 1 || n > 65535 {
			return "", 0, fmt.Errorf("%w %q: bad port %q", ErrInvalidTarget, target, p)
		}
		host, port = h, n
	}

	host = strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")
	if host == "" {
		return "", 0, fmt.Errorf("%w %q: empty host", ErrInvalidTarget, target)
	}
	return host, port, nil
}

// Peer is an established TLS session with a remote server.
type Peer struct {
	conn *tls.Conn
}

// Dial establishes a TLS connection to host:port and completes the handshake.
//
// The server name indication is set to host. Chain verification is disabled
// because the chain is only enumerated, never trusted. The whole connect and
// handshake sequence is bounded by timeout; there is no retry.
//
// Parameters:
//   - ctx: Context for cancellation
//   - host: Host name sent as SNI and dialed
//   - port: TCP port
//   - timeout: Upper bound for connect plus handshake
//
// Returns:
//   - *Peer: Connected peer; the caller must Close it
//   - error: Wrapped ErrConnectionFailed or ErrNoPeerCertificates
func Dial(ctx context.Context, host string, port int, timeout time.Duration) (*Peer, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	dialer := &tls.Dialer{
		NetDialer: &net.Dialer{Timeout: timeout},
		Config: &tls.Config{
			ServerName: host,
			// We just want the cert chain, not to verify
			InsecureSkipVerify: true,
		},
	}

	addr := net.JoinHostPort(host, strconv.Itoa(port))
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConnectionFailed, addr, err)
	}

	tlsConn := conn.(*tls.Conn)
	if len(tlsConn.ConnectionState().PeerCertificates) == 0 {
		tlsConn.Close()
		return nil, fmt.Errorf("%w: %s", ErrNoPeerCertificates, addr)
	}

	return &Peer{conn: tlsConn}, nil
}

// Leaf returns the end-entity certificate presented by the server.
func (p *Peer) Leaf() *x509.Certificate {
	return p.conn.ConnectionState().PeerCertificates[0]
}

// Certificates returns the chain in the order the server presented it.
func (p *Peer) Certificates() []*x509.Certificate {
	return p.conn.ConnectionState().PeerCertificates
}

// Close releases the underlying connection.
func (p *Peer) Close() error {
	return p.conn.Close()
}

// WithPeer dials host:port, runs fn with the connected peer and closes the
// connection on every path, including a failing fn.
//
// Parameters:
//   - ctx: Context for cancellation
//   - host: Host name sent as SNI and dialed
//   - port: TCP port
//   - timeout: Upper bound for connect plus handshake
//   - fn: Work to perform while connected
//
// Returns:
//   - error: Dial error or the error returned by fn
func WithPeer(ctx context.Context, host string, port int, timeout time.Duration, fn func(*Peer) error) error {
	peer, err := Dial(ctx, host, port, timeout)
	if err != nil {
		return err
	}
	defer peer.Close()

	return fn(peer)
}
