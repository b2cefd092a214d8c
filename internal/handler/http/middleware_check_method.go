// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// methodNotAllowed is registered with [chi.Mux.MethodNotAllowed]. chi only
// calls it when the path exists but the method does not, and it answers 404
// so an unsupported method does not reveal the path. chi copies it into
// every sub-router, so it must never hand the request back to a router.
func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}
