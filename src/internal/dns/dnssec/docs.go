// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package dnssec cross-checks a zone's DNSKEY set against its DS records.
//
// For every name it classifies DNSKEYs as Key-Signing Keys (flags 257) or
// Zone-Signing Keys (flags 256), recomputes the DS digest of each KSK with the
// digest algorithm declared by the DS record and flags mismatching, dangling
// and duplicate DS records. It is a consistency spot check, not a validator:
// RRSIG signatures and NSEC/NSEC3 proofs are not examined.
//
// Reports are plain data sorted by record identity, so two runs against an
// unchanged zone serialize to byte-identical JSON.
package dnssec
