// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package resolver

import (
	"fmt"
	"net"
	"sort"
	"strings"

	"github.com/miekg/dns"
)

// RecordText returns the presentation form of rr's data, without the owner,
// TTL, class and type columns. For a DNSKEY this is "257 3 13 <key>".
func RecordText(rr dns.RR) string {
	return strings.TrimPrefix(rr.String(), rr.Header().String())
}

// RecordLines returns the full presentation form of each record, sorted.
// Records are expected to be TTL-normalized already, so the output is stable
// across runs against an unchanged zone.
func RecordLines(rrs []dns.RR) []string {
	lines := make([]string, 0, len(rrs))
	for _, rr := range rrs {
		lines = append(lines, strings.Split(rr.String(), "\n")...)
	}
	sort.Strings(lines)
	return lines
}

// ServersFromFile reads nameserver addresses from a resolv.conf-format file.
//
// Parameters:
//   - path: Path to the resolver configuration, e.g. /etc/resolv.conf
//
// Returns:
//   - []string: "host:port" addresses in file order
//   - error: If the file cannot be read or lists no nameservers
func ServersFromFile(path string) ([]string, error) {
	cc, err := dns.ClientConfigFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resolver configuration %s: %w", path, err)
	}
	if len(cc.Servers) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoServers, path)
	}

	servers := make([]string, 0, len(cc.Servers))
	for _, s := range cc.Servers {
		servers = append(servers, net.JoinHostPort(s, cc.Port))
	}
	return servers, nil
}
