// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// chi calls it only after routing found the path but no handler for the
// method, so it answers 404 with the same {"error":"not found"} body as an
// unknown path, instead of chi's 405. It never dispatches back into the
// router.
//
//	router.MethodNotAllowed(CheckHTTPMethod)
func CheckHTTPMethod(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("method not served on this path")
	writeError(w, r, errRouteNotFound)
}
