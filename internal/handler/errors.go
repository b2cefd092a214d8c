// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoTransports is returned by NewHandlers when both listen addresses are
// empty.
var errNoTransports = errors.New("handler: neither SERVER_HTTP_ADDRESS nor SERVER_GRPC_ADDRESS is set")
