// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the voice notes transports.
//
// [Servers.Run] starts the HTTP API, the gRPC watch service and the background
// workers, waits for a signal or a failing transport, then stops all of them
// within the shutdown timeout.
package server
