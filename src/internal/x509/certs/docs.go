// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509certs reads and writes [X.509] certificate bundles.
// It supports [PEM], concatenated DER and [PKCS7] input and writes PEM.
// certcheck uses it to enumerate saved chains offline and to save the chains
// it observes.
//
// [X.509]: https://grokipedia.com/page/X.509
// [PKCS7]: https://grokipedia.com/page/PKCS_7
// [PEM]: https://grokipedia.com/page/PEM#privacy-enhanced-mail
package x509certs
