// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks item input before it reaches storage.
//
// Every rejection wraps ErrValidation so callers can map the whole family
// to a single client error with errors.Is. Validators accept optional field
// names that narrow the check to a subset of fields; without them a default
// set per model is validated.
package validators

import "context"

// Validator validates an arbitrary model, optionally restricted to the
// named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
