// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// CheckHTTPMethod is meant for [chi.Mux.MethodNotAllowed]. chi answers 405
// when a path exists under another method; this handler answers 404 instead,
// so probing with the wrong method does not reveal which routes exist.
//
// chi only calls it after routing failed for r.Method, so the request is
// never dispatched again.
func CheckHTTPMethod(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, errRouteNotFound)
}
