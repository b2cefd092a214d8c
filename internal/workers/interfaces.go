// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the server's background jobs next to its transports.
package workers

import "context"

// Worker runs until ctx is cancelled, returning nil in that case, or until it
// fails.
type Worker interface {
	Run(ctx context.Context) error
}
