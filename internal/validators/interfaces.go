// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides the field-level constraint primitives used
// while resolving the service configuration.
//
// Core concepts:
//   - Constraint: a declared rule (length, numeric range, enum membership,
//     required/optional) applied to one untyped raw value. Applying it
//     coerces the value, trims strings, and either returns the normalized
//     value or a [ConstraintViolation].
//   - Validator: validates an already-typed record, optionally scoped to a
//     subset of its fields. Used for rules that span sibling fields.
//
// Every failure is a [*ConstraintViolation] naming the field, the violated
// rule, and the offending value.
package validators

import "context"

// Constraint coerces and checks a single raw value.
type Constraint[T any] interface {
	// Apply returns the normalized value or a *ConstraintViolation.
	Apply(raw any) (T, error)
}

// Validator defines a generic validation interface for typed records.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
