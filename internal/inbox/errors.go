// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package inbox

import "errors"

var (
	// ErrInboxDisabled is returned by New when no directory is configured.
	ErrInboxDisabled = errors.New("audio inbox is disabled")

	ErrInvalidPattern = errors.New("invalid inbox pattern")
)
