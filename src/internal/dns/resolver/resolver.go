// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package resolver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/H0llyW00dzZ/trust-chain-inspector/src/internal/dns/finding"
	"github.com/H0llyW00dzZ/trust-chain-inspector/src/logger"
	"github.com/avast/retry-go/v4"
	"github.com/miekg/dns"
)

var (
	// ErrNoServers indicates that no resolver address is configured.
	ErrNoServers = errors.New("resolver: no nameservers configured")

	// ErrUnexpectedRcode wraps any response code other than NOERROR and NXDOMAIN.
	ErrUnexpectedRcode = errors.New("resolver: unexpected response code")
)

// Exchanger sends a DNS message to a server and returns the reply.
// [dns.Client] implements it.
type Exchanger interface {
	ExchangeContext(ctx context.Context, m *dns.Msg, address string) (*dns.Msg, time.Duration, error)
}

// Config holds the resolver settings.
type Config struct {
	Servers    []string      // "host:port" addresses, tried in rotation across attempts
	Timeout    time.Duration // per-attempt timeout
	Attempts   uint          // attempt ceiling for timed-out lookups
	RetryDelay time.Duration // pause between timed-out attempts
	UDPSize    uint16        // advertised EDNS0 buffer size
}

// Resolver issues lookups against the configured servers.
// It is used sequentially; one lookup is in flight at a time.
type Resolver struct {
	servers  []string
	timeout  time.Duration
	attempts uint
	delay    time.Duration
	udpSize  uint16
	udp      Exchanger
	tcp      Exchanger
	log      logger.Logger
}

// New creates a Resolver backed by [dns.Client] over UDP with TCP fallback.
//
// Parameters:
//   - cfg: Resolver settings; zero Attempts is treated as 1
//   - log: Diagnostic logger receiving retry warnings
//
// Returns:
//   - *Resolver: New resolver
//   - error: [ErrNoServers] when cfg lists no servers
func New(cfg Config, log logger.Logger) (*Resolver, error) {
	if len(cfg.Servers) == 0 {
		return nil, ErrNoServers
	}
	if cfg.Attempts == 0 {
		cfg.Attempts = 1
	}
	if cfg.UDPSize == 0 {
		cfg.UDPSize = dns.DefaultMsgSize
	}

	return &Resolver{
		servers:  append([]string(nil), cfg.Servers...),
		timeout:  cfg.Timeout,
		attempts: cfg.Attempts,
		delay:    cfg.RetryDelay,
		udpSize:  cfg.UDPSize,
		udp:      &dns.Client{Net: "udp", Timeout: cfg.Timeout, UDPSize: cfg.UDPSize},
		tcp:      &dns.Client{Net: "tcp", Timeout: cfg.Timeout},
		log:      log,
	}, nil
}

// WithExchangers replaces the UDP and TCP transports. A nil tcp disables the
// truncation fallback. It returns r for chaining.
func (r *Resolver) WithExchangers(udp, tcp Exchanger) *Resolver {
	r.udp = udp
	r.tcp = tcp
	return r
}

// Result is the outcome of a single lookup.
type Result struct {
	Records  []dns.RR         // answer records of the queried type, TTLs zeroed
	Answer   []dns.RR         // whole answer section including CNAMEs, TTLs zeroed
	Findings finding.Findings // at most one entry describing why Records is empty
}

// NotFound reports whether the name does not exist.
func (res *Result) NotFound() bool { return res.Findings.Has(finding.DomainNotFound) }

// Lookup queries name for records of qtype.
//
// Timed-out attempts are retried up to the configured ceiling with a warning per
// failed attempt; afterwards the lookup degrades to an empty result with a
// [finding.LookupTimeout]. NODATA, NXDOMAIN and other failures are returned as
// findings on an empty result, never as errors.
//
// Parameters:
//   - ctx: Context for cancellation
//   - name: Domain name, with or without the trailing dot
//   - qtype: Record type such as [dns.TypeDNSKEY] or [dns.TypeDS]
//
// Returns:
//   - *Result: Records and findings for this lookup
func (r *Resolver) Lookup(ctx context.Context, name string, qtype uint16) *Result {
	res := &Result{Records: []dns.RR{}}
	if err := ctx.Err(); err != nil {
		res.Findings = append(res.Findings, finding.Finding{Kind: finding.ProtocolError, Name: name, QType: qtype, Err: err})
		return res
	}

	typeName := dns.TypeToString[qtype]
	fqdn := dns.Fqdn(name)

	var (
		in      *dns.Msg
		lastErr error
		tries   uint
	)

	err := retry.Do(
		func() error {
			server := r.servers[int(tries)%len(r.servers)]
			tries++

			msg, err := r.exchange(ctx, fqdn, qtype, server)
			if err != nil {
				lastErr = err
				return err
			}
			in = msg
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(r.attempts),
		retry.Delay(r.delay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isTimeout),
		retry.OnRetry(func(n uint, err error) {
			r.log.Printf("Warning: Retrying %s lookup for %s (%d): %v", typeName, name, n, err)
		}),
	)

	if err != nil || in == nil {
		f := finding.Finding{Name: name, QType: qtype}
		switch {
		case ctx.Err() != nil:
			f.Kind = finding.ProtocolError
			f.Err = ctx.Err()
		case isTimeout(lastErr):
			f.Kind = finding.LookupTimeout
			f.Attempts = tries
		default:
			f.Kind = finding.ProtocolError
			f.Err = lastErr
			if f.Err == nil {
				f.Err = err
			}
		}
		res.Findings = append(res.Findings, f)
		return res
	}

	switch in.Rcode {
	case dns.RcodeSuccess:
	case dns.RcodeNameError:
		res.Findings = append(res.Findings, finding.Finding{Kind: finding.DomainNotFound, Name: name, QType: qtype})
		return res
	default:
		res.Findings = append(res.Findings, finding.Finding{
			Kind:  finding.ProtocolError,
			Name:  name,
			QType: qtype,
			Err:   fmt.Errorf("%w: %s", ErrUnexpectedRcode, dns.RcodeToString[in.Rcode]),
		})
		return res
	}

	for _, rr := range in.Answer {
		// Zero out the TTLs for consistency
		rr.Header().Ttl = 0
		res.Answer = append(res.Answer, rr)
		if rr.Header().Rrtype == qtype {
			res.Records = append(res.Records, rr)
		}
	}

	if len(res.Records) == 0 {
		res.Findings = append(res.Findings, finding.Finding{Kind: finding.NoAnswer, Name: name, QType: qtype})
	}

	return res
}

// exchange performs one attempt against server, re-asking over TCP when the
// UDP reply is truncated.
func (r *Resolver) exchange(ctx context.Context, fqdn string, qtype uint16, server string) (*dns.Msg, error) {
	m := new(dns.Msg)
	m.SetQuestion(fqdn, qtype)
	m.RecursionDesired = true
	m.SetEdns0(r.udpSize, false)

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	in, _, err := r.udp.ExchangeContext(ctx, m, server)
	if err != nil {
		return nil, err
	}

	if in.Truncated && r.tcp != nil {
		in, _, err = r.tcp.ExchangeContext(ctx, m, server)
		if err != nil {
			return nil, err
		}
	}

	return in, nil
}

// isTimeout reports whether err is a transient timeout worth retrying.
func isTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
