// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package report serializes inspection results. A run emits exactly one
// document after every entity has been processed; nothing is streamed.
package report
