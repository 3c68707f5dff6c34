// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches the directory.
//
// A Validator accepts a value and an optional list of field names. With no
// fields every rule of the value's type is applied; otherwise only the named
// ones, in order, and the first failure is returned.
package validators

import "context"

// Validator validates arbitrary input, optionally restricted to named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
