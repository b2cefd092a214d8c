// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package search filters note lists against a free-text query and splits
// note text into highlighted and plain runs for rendering.
//
// Everything here is synchronous and keeps no state between calls. Matching
// is a literal, case-insensitive substring test: no tokenization, no fuzzy
// matching, and pattern metacharacters in the query are matched as-is.
//
// The engine never returns errors. When matching fails internally the result
// is flagged Degraded, the input is returned unmodified and the failure is
// logged. Callers that care can inspect the flag.
package search
