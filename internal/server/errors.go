// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoTransports means the handlers carry neither an HTTP nor a gRPC
// handler, so there is nothing to listen on.
var errNoTransports = errors.New("server: no HTTP or gRPC handler to serve")
