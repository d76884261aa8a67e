// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package dnssec

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/H0llyW00dzZ/trust-chain-inspector/src/internal/dns/finding"
	"github.com/H0llyW00dzZ/trust-chain-inspector/src/internal/dns/resolver"
	"github.com/miekg/dns"
)

// DNSKEY flag values distinguishing key roles.
const (
	FlagsZSK uint16 = 256
	FlagsKSK uint16 = 257
)

// Role is the function of a DNSKEY derived from its flags.
type Role string

const (
	RoleKSK     Role = "KSK"
	RoleZSK     Role = "ZSK"
	RoleUnknown Role = ""
)

// RoleOf maps DNSKEY flags to a role.
func RoleOf(flags uint16) Role {
	switch flags {
	case FlagsKSK:
		return RoleKSK
	case FlagsZSK:
		return RoleZSK
	default:
		return RoleUnknown
	}
}

// DigestName returns the report name of a DS digest type.
// Type 3 is GOST R 34.11-94, not SHA-384, and is reported as UNKNOWN.
func DigestName(digestType uint8) string {
	switch digestType {
	case dns.SHA1:
		return "SHA1"
	case dns.SHA256:
		return "SHA256"
	case dns.SHA384:
		return "SHA384"
	default:
		return "UNKNOWN"
	}
}

// KeyDetail describes one DNSKEY in a report.
type KeyDetail struct {
	Value string `json:"value"`
	Type  Role   `json:"type,omitempty"`
}

// KeyEntry pairs a key identifier with its detail.
// It serializes as a two-element array: [id, detail].
type KeyEntry struct {
	ID     uint16
	Detail KeyDetail
}

// MarshalJSON renders the entry as [id, detail].
func (e KeyEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{e.ID, e.Detail})
}

// DSDetail describes one DS record in a report. Exactly one of ValidKeyDigest
// and Dangling is set.
type DSDetail struct {
	Value          string `json:"value"`
	ValidKeyDigest *bool  `json:"valid_key_digest,omitempty"`
	Dangling       bool   `json:"dangling,omitempty"`
}

// DSEntry pairs a DS identity ("<key tag>_<digest name>") with its detail.
// It serializes as a two-element array: [id, detail].
type DSEntry struct {
	ID     string
	KeyTag uint16
	Detail DSDetail
}

// MarshalJSON renders the entry as [id, detail].
func (e DSEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{e.ID, e.Detail})
}

// Report is the per-name DNSSEC result. Field order is the JSON key order.
type Report struct {
	Errors        finding.Findings `json:"_errors"`
	DNSKEYRecords []KeyEntry       `json:"dnskey_records"`
	DSRecords     []DSEntry        `json:"ds_records"`
}

// NewReport returns an empty report whose collections serialize as [].
func NewReport() *Report {
	return &Report{
		Errors:        finding.Findings{},
		DNSKEYRecords: []KeyEntry{},
		DSRecords:     []DSEntry{},
	}
}

// KSKSet maps a key identifier to the Key-Signing Key carrying it.
// It is scoped to a single name.
type KSKSet map[uint16]*dns.DNSKEY

// ClassifyKeys sorts DNSKEY records into roles.
//
// Records that are not DNSKEYs are ignored. Keys with flags other than 256 and
// 257 are listed without a role and produce an UnknownFlags finding; the
// remaining keys are still processed. When two keys share an identifier the
// later one is listed.
//
// Parameters:
//   - name: Name under inspection, used in findings
//   - records: DNSKEY answer records
//
// Returns:
//   - []KeyEntry: Keys sorted by identifier
//   - KSKSet: Key-Signing Keys by identifier
//   - finding.Findings: UnknownFlags findings in arrival order
func ClassifyKeys(name string, records []dns.RR) ([]KeyEntry, KSKSet, finding.Findings) {
	details := make(map[uint16]KeyDetail)
	ksks := make(KSKSet)
	var findings finding.Findings

	for _, rr := range records {
		key, ok := rr.(*dns.DNSKEY)
		if !ok {
			continue
		}

		id := key.KeyTag()
		role := RoleOf(key.Flags)
		details[id] = KeyDetail{Value: resolver.RecordText(key), Type: role}

		switch role {
		case RoleKSK:
			ksks[id] = key
		case RoleUnknown:
			findings = append(findings, finding.Finding{
				Kind:   finding.UnknownFlags,
				Name:   name,
				KeyTag: id,
				Flags:  key.Flags,
			})
		}
	}

	entries := make([]KeyEntry, 0, len(details))
	for id, d := range details {
		entries = append(entries, KeyEntry{ID: id, Detail: d})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })

	return entries, ksks, findings
}

// CrossCheckDS matches DS records against the zone's Key-Signing Keys.
//
// Each DS record is identified by key tag and digest name. A repeated identity
// yields a DuplicateRecord finding and is dropped; the first occurrence wins.
// A DS record whose key tag has a KSK gets valid_key_digest set from comparing
// it with the digest recomputed from that KSK, plus a DigestMismatch finding
// when they differ. Without a KSK the record is dangling.
//
// Parameters:
//   - name: Name under inspection, used in findings
//   - records: DS answer records
//   - ksks: Key-Signing Keys of the same name
//
// Returns:
//   - []DSEntry: DS records sorted by identity
//   - finding.Findings: Validation findings in arrival order
func CrossCheckDS(name string, records []dns.RR, ksks KSKSet) ([]DSEntry, finding.Findings) {
	seen := make(map[string]DSEntry)
	var findings finding.Findings

	for _, rr := range records {
		ds, ok := rr.(*dns.DS)
		if !ok {
			continue
		}

		digestName := DigestName(ds.DigestType)
		id := fmt.Sprintf("%d_%s", ds.KeyTag, digestName)

		if _, dup := seen[id]; dup {
			findings = append(findings, finding.Finding{
				Kind:   finding.DuplicateRecord,
				Name:   name,
				KeyTag: ds.KeyTag,
				Digest: digestName,
			})
			continue
		}

		entry := DSEntry{ID: id, KeyTag: ds.KeyTag, Detail: DSDetail{Value: resolver.RecordText(ds)}}

		if ksk, ok := ksks[ds.KeyTag]; ok {
			valid := DigestMatches(ksk, ds)
			entry.Detail.ValidKeyDigest = &valid
			if !valid {
				findings = append(findings, finding.Finding{Kind: finding.DigestMismatch, Name: name, KeyTag: ds.KeyTag})
			}
		} else {
			entry.Detail.Dangling = true
			findings = append(findings, finding.Finding{Kind: finding.DanglingDS, Name: name, KeyTag: ds.KeyTag})
		}

		seen[id] = entry
	}

	entries := make([]DSEntry, 0, len(seen))
	for _, e := range seen {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })

	return entries, findings
}

// DigestMatches recomputes the DS record of ksk with the digest type declared
// by ds and compares every DS field. Unsupported digest types never match.
func DigestMatches(ksk *dns.DNSKEY, ds *dns.DS) bool {
	want := ksk.ToDS(ds.DigestType)
	if want == nil {
		return false
	}
	return want.KeyTag == ds.KeyTag &&
		want.Algorithm == ds.Algorithm &&
		want.DigestType == ds.DigestType &&
		strings.EqualFold(want.Digest, ds.Digest)
}

// Validate classifies keys and cross-checks DS records for a single name.
// It is pure: the same input always yields the same report.
//
// Parameters:
//   - name: Name under inspection
//   - keys: DNSKEY records of the name
//   - ds: DS records of the name
//
// Returns:
//   - *Report: Sorted report with key findings followed by DS findings
func Validate(name string, keys, ds []dns.RR) *Report {
	rep := NewReport()

	entries, ksks, keyFindings := ClassifyKeys(name, keys)
	rep.DNSKEYRecords = entries
	rep.Errors = append(rep.Errors, keyFindings...)

	dsEntries, dsFindings := CrossCheckDS(name, ds, ksks)
	rep.DSRecords = dsEntries
	rep.Errors = append(rep.Errors, dsFindings...)

	return rep
}
