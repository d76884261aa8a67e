// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509chain enumerates the [X.509] certificate chain a TLS server
// presents during the handshake.
// It provides capabilities to:
//   - Connect to a host over TLS with SNI and a bounded handshake timeout.
//   - Render certificate subject and issuer names in OpenSSL one-line form.
//   - Build per-host reports holding the leaf expiration and the chain keyed by subject.
//   - Render reports as a markdown table.
//
// No trust validation is performed: certificates are reported exactly as
// presented, so expired or self-signed chains are enumerated like any other.
//
// [X.509]: https://grokipedia.com/page/X.509
package x509chain
