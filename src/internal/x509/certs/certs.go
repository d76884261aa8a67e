// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"

	"github.com/cloudflare/cfssl/crypto/pkcs7"
)

var (
	// ErrInvalidBlockType indicates a PEM block that is not a certificate.
	ErrInvalidBlockType = errors.New("x509certs: invalid block type")

	// ErrParseCertificate indicates a failure to parse a certificate from the provided data.
	ErrParseCertificate = errors.New("x509certs: failed to parse certificate")

	// ErrNoCertificates indicates input that decoded cleanly but held no certificate.
	ErrNoCertificates = errors.New("x509certs: no certificates found")
)

// blockType is the PEM block type of a certificate.
const blockType = "CERTIFICATE"

// Codec reads and writes certificate bundles as they are stored on disk:
// concatenated PEM blocks, concatenated DER, or a PKCS#7 certificate bag.
type Codec struct{}

// New creates a new Codec.
func New() *Codec { return &Codec{} }

// IsPEM checks if the data is in PEM format.
func (c *Codec) IsPEM(data []byte) bool {
	block, _ := pem.Decode(data)
	return block != nil
}

// DecodeChain decodes every certificate in data, keeping their order.
//
// PEM input must consist of CERTIFICATE blocks only. Binary input is tried as
// concatenated DER first and then as PKCS#7 signed data.
//
// Parameters:
//   - data: Bundle contents
//
// Returns:
//   - []*x509.Certificate: Certificates in bundle order, never empty on success
//   - error: ErrInvalidBlockType, ErrParseCertificate or ErrNoCertificates
func (c *Codec) DecodeChain(data []byte) ([]*x509.Certificate, error) {
	if c.IsPEM(data) {
		return c.decodePEM(data)
	}

	if certs, err := x509.ParseCertificates(data); err == nil && len(certs) > 0 {
		return certs, nil
	}

	// Attempt to parse as PKCS7 using Cloudflare's library
	p, err := pkcs7.ParsePKCS7(data)
	if err != nil {
		return nil, fmt.Errorf("%w: not DER or PKCS#7: %w", ErrParseCertificate, err)
	}
	if len(p.Content.SignedData.Certificates) == 0 {
		return nil, ErrNoCertificates
	}
	return p.Content.SignedData.Certificates, nil
}

func (c *Codec) decodePEM(data []byte) ([]*x509.Certificate, error) {
	var certs []*x509.Certificate
	for {
		block, rest := pem.Decode(data)
		if block == nil {
			break
		}
		if block.Type != blockType {
			return nil, fmt.Errorf("%w: %s", ErrInvalidBlockType, block.Type)
		}

		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParseCertificate, err)
		}
		certs = append(certs, cert)
		data = rest
	}

	if len(certs) == 0 {
		return nil, ErrNoCertificates
	}
	return certs, nil
}

// ReadChain reads and decodes the bundle stored at path.
func (c *Codec) ReadChain(path string) ([]*x509.Certificate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read certificate bundle: %w", err)
	}
	return c.DecodeChain(data)
}

// EncodePEM encodes certificates as concatenated PEM blocks, in order.
func (c *Codec) EncodePEM(certs []*x509.Certificate) []byte {
	var data []byte
	for _, cert := range certs {
		data = append(data, pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: cert.Raw})...)
	}
	return data
}

// WriteChain stores certificates as a PEM bundle at path.
func (c *Codec) WriteChain(path string, certs []*x509.Certificate) error {
	if err := os.WriteFile(path, c.EncodePEM(certs), 0o644); err != nil {
		return fmt.Errorf("failed to write certificate bundle: %w", err)
	}
	return nil
}
