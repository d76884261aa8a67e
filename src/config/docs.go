// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads the optional JSON or YAML configuration shared by the
// inspector binaries: resolver endpoints and retry bounds for DNS lookups, and
// the connect timeout and default port for TLS peers.
package config
