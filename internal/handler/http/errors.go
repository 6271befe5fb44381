// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// errUnauthorized is the only reason reported to clients for any
	// authentication failure.
	errUnauthorized = errors.New("unauthorized")

	errInvalidJSON   = errors.New("invalid JSON was passed")
	errInvalidDelay  = errors.New("delay must be a non-negative number of milliseconds")
	errRouteNotFound = errors.New("not found")

	errInternal = errors.New("internal server error")
)
