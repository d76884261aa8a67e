// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package finding

import (
	"encoding/json"
	"fmt"

	"github.com/miekg/dns"
)

// Kind classifies a [Finding].
type Kind int

const (
	// NoAnswer: the name exists but holds no records of the queried type.
	NoAnswer Kind = iota + 1
	// DomainNotFound: the resolver answered NXDOMAIN.
	DomainNotFound
	// ProtocolError: any other resolver or transport failure.
	ProtocolError
	// LookupTimeout: every attempt of a lookup timed out.
	LookupTimeout
	// DuplicateRecord: a DS record repeats an earlier (key tag, digest) identity.
	DuplicateRecord
	// DanglingDS: a DS record references a key tag with no KSK in the zone.
	DanglingDS
	// DigestMismatch: the DS digest differs from the one computed from its KSK.
	DigestMismatch
	// UnknownFlags: a DNSKEY carries flags other than 256 or 257.
	UnknownFlags
)

var kindNames = map[Kind]string{
	NoAnswer:        "NoAnswer",
	DomainNotFound:  "DomainNotFound",
	ProtocolError:   "ProtocolError",
	LookupTimeout:   "LookupTimeout",
	DuplicateRecord: "DuplicateRecord",
	DanglingDS:      "DanglingDS",
	DigestMismatch:  "DigestMismatch",
	UnknownFlags:    "UnknownFlags",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Finding is a single structured error entry of a per-name report.
// Only the fields relevant to its Kind are populated.
type Finding struct {
	Kind     Kind
	Name     string // name under inspection, as given on the command line
	QType    uint16 // queried record type (lookup kinds)
	KeyTag   uint16 // DNSKEY key identifier or DS key tag
	Flags    uint16 // DNSKEY flags (UnknownFlags)
	Digest   string // DS digest algorithm name (DuplicateRecord)
	Attempts uint   // attempts made (LookupTimeout)
	Err      error  // underlying failure (ProtocolError)
}

// String renders the finding as the message shown in the report.
func (f Finding) String() string {
	qtype := dns.TypeToString[f.QType]
	switch f.Kind {
	case NoAnswer:
		if f.QType == dns.TypeDS {
			return fmt.Sprintf("No DS records found for %s - DNSSEC not active for zone", f.Name)
		}
		return fmt.Sprintf("No %s records found for %s", qtype, f.Name)
	case DomainNotFound:
		return fmt.Sprintf("Domain not found: %s", f.Name)
	case ProtocolError:
		return fmt.Sprintf("%s error for %s: %v", qtype, f.Name, f.Err)
	case LookupTimeout:
		return fmt.Sprintf("%s lookup for %s timed out after %d attempts", qtype, f.Name, f.Attempts)
	case DuplicateRecord:
		return fmt.Sprintf("Duplicate DS record with digest %s in %s for %d", f.Digest, f.Name, f.KeyTag)
	case DanglingDS:
		return fmt.Sprintf("DS record in %s for key ID %d does not match a DNSKEY!", f.Name, f.KeyTag)
	case DigestMismatch:
		return fmt.Sprintf("Invalid DS key digest value in %s for key ID %d", f.Name, f.KeyTag)
	case UnknownFlags:
		return fmt.Sprintf("Unknown DNSKEY flags for %s key ID %d: %d", f.Name, f.KeyTag, f.Flags)
	default:
		return fmt.Sprintf("%s for %s", f.Kind, f.Name)
	}
}

// MarshalJSON renders the finding as its message string.
func (f Finding) MarshalJSON() ([]byte, error) { return json.Marshal(f.String()) }

// Findings is an ordered list of findings.
type Findings []Finding

// Has reports whether any finding is of kind k.
func (fs Findings) Has(k Kind) bool {
	for _, f := range fs {
		if f.Kind == k {
			return true
		}
	}
	return false
}

// Strings renders every finding in order.
func (fs Findings) Strings() []string {
	out := make([]string, 0, len(fs))
	for _, f := range fs {
		out = append(out, f.String())
	}
	return out
}

// MarshalJSON renders an empty list as [] rather than null.
func (fs Findings) MarshalJSON() ([]byte, error) { return json.Marshal(fs.Strings()) }
