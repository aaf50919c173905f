// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the shape of incoming selector requests before
// they reach the services.
//
// A Validator inspects a value and, optionally, only the named fields of it.
// Validation is purely syntactic: whether a section exists is decided by the
// source, not here.
package validators

import "context"

// Validator validates the provided input and optionally restricts
// validation to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
