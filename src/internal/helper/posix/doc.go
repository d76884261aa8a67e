// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX]-compliant helper functions for cross-platform compatibility.
//
// Key functions:
//   - GetExecutableName: Returns the executable name without extension for CLI usage
//
// Each binary passes its own canonical name as the fallback, so the usage line of
// dnsseccheck, certcheck and namecheck stays meaningful even when os.Args[0] is empty:
//
//	cmd := &cobra.Command{
//	    Use: posix.GetExecutableName("dnsseccheck") + " NAME...",
//	}
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
