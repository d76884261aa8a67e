// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// certcheck enumerates the certificate chain presented by TLS servers.
//
// For each HOST[:PORT] it completes a TLS handshake with SNI set to the host
// and reports the leaf expiration together with every presented certificate,
// keyed by subject. The chain is not validated. Saved bundles are enumerated
// the same way without connecting.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/trust-chain-inspector/cmd/certcheck@latest
//
// # Usage
//
//	certcheck [FLAGS] HOST[:PORT]...
//
// # Flags
//
//	-f, --file          Enumerate a saved PEM, DER or PKCS#7 bundle (repeatable)
//	    --save-chain    Write each presented chain as PEM into an existing directory
//	-c, --config        Configuration file (.json, .yaml, .yml)
//	-o, --output        Output format: json or table (default json)
//	    --log-format    Diagnostic format on stderr: text or json (default text)
//	-q, --quiet         Suppress diagnostics
//
// # Examples
//
// Inspect a web server and a mail submission port:
//
//	certcheck example.com mail.example.com:465
//
// Save the chain now and compare it offline later:
//
//	certcheck --save-chain ./chains example.com
//	certcheck --file ./chains/example.com.pem
//
// IPv6 literals take brackets when a port is given:
//
//	certcheck '[2001:db8::1]:8443'
package main
