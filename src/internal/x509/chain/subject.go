// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain

import (
	"crypto/x509/pkix"
	"encoding/asn1"
	"fmt"
	"strings"
)

// attributeNames holds the OpenSSL short names of common distinguished name
// attributes. Unlisted attributes are rendered by dotted OID.
var attributeNames = map[string]string{
	"2.5.4.3":                    "CN",
	"2.5.4.4":                    "SN",
	"2.5.4.5":                    "serialNumber",
	"2.5.4.6":                    "C",
	"2.5.4.7":                    "L",
	"2.5.4.8":                    "ST",
	"2.5.4.9":                    "street",
	"2.5.4.10":                   "O",
	"2.5.4.11":                   "OU",
	"2.5.4.12":                   "title",
	"2.5.4.15":                   "businessCategory",
	"2.5.4.17":                   "postalCode",
	"2.5.4.42":                   "GN",
	"2.5.4.43":                   "initials",
	"2.5.4.44":                   "generationQualifier",
	"2.5.4.46":                   "dnQualifier",
	"2.5.4.65":                   "pseudonym",
	"2.5.4.97":                   "organizationIdentifier",
	"0.9.2342.19200300.100.1.1":  "UID",
	"0.9.2342.19200300.100.1.25": "DC",
	"1.2.840.113549.1.9.1":       "emailAddress",
	"1.3.6.1.4.1.311.60.2.1.1":   "jurisdictionL",
	"1.3.6.1.4.1.311.60.2.1.2":   "jurisdictionST",
	"1.3.6.1.4.1.311.60.2.1.3":   "jurisdictionC",
}

// FormatName renders a DER-encoded distinguished name in OpenSSL one-line
// form, e.g. "/C=US/O=Let's Encrypt/CN=R3".
//
// Attributes keep their encoded order. Multi-valued RDNs are joined with "+".
// An empty name renders as "".
//
// Parameters:
//   - raw: DER-encoded Name, such as [x509.Certificate.RawSubject]
//
// Returns:
//   - string: One-line name
//   - error: If raw is not a valid Name encoding
func FormatName(raw []byte) (string, error) {
	var rdns pkix.RDNSequence
	rest, err := asn1.Unmarshal(raw, &rdns)
	if err != nil {
		return "", fmt.Errorf("failed to parse distinguished name: %w", err)
	}
	if len(rest) > 0 {
		return "", fmt.Errorf("failed to parse distinguished name: %d trailing bytes", len(rest))
	}

	var b strings.Builder
	for _, rdn := range rdns {
		if len(rdn) == 0 {
			continue
		}
		b.WriteByte('/')
		for i, atv := range rdn {
			if i > 0 {
				b.WriteByte('+')
			}
			b.WriteString(attributeName(atv.Type))
			b.WriteByte('=')
			b.WriteString(attributeValue(atv.Value))
		}
	}
	return b.String(), nil
}

func attributeName(oid asn1.ObjectIdentifier) string {
	key := oid.String()
	if name, ok := attributeNames[key]; ok {
		return name
	}
	return key
}

func attributeValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	default:
		return fmt.Sprint(val)
	}
}
