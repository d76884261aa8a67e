// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	x509certs "github.com/H0llyW00dzZ/trust-chain-inspector/src/internal/x509/certs"
)

// bundleName maps a target such as "[2001:db8::1]:8443" to a file name
// without path separators or brackets.
var bundleName = strings.NewReplacer(":", "_", "/", "_", "\\", "_", "[", "", "]", "")

// BundlePath returns the file a target's chain is saved to inside dir.
func BundlePath(dir, target string) string {
	return filepath.Join(dir, bundleName.Replace(target)+".pem")
}

// SaveChains writes the presented chain of every successful report as a PEM
// bundle in dir, visiting targets in sorted order. Failed reports are skipped.
// A write failure does not stop the remaining bundles from being written.
//
// Parameters:
//   - dir: Existing destination directory
//   - reports: Reports keyed by target
//
// Returns:
//   - []string: Written files, in target order
//   - error: Every write failure joined, or nil
func SaveChains(dir string, reports map[string]*Report) ([]string, error) {
	codec := x509certs.New()

	targets := make([]string, 0, len(reports))
	for target := range reports {
		targets = append(targets, target)
	}
	sort.Strings(targets)

	var (
		written []string
		errs    []error
	)
	for _, target := range targets {
		rep := reports[target]
		if rep == nil || len(rep.certs) == 0 {
			continue
		}
		path := BundlePath(dir, target)
		if err := codec.WriteChain(path, rep.certs); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", target, err))
			continue
		}
		written = append(written, path)
	}
	return written, errors.Join(errs...)
}
