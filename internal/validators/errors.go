// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedType is returned by a [Validator] that does not know how
	// to validate the dynamic type it was given.
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrConstraintViolation is the sentinel every [ConstraintViolation]
	// unwraps to, so callers can match the whole class with errors.Is.
	ErrConstraintViolation = errors.New("constraint violation")
)

// ConstraintViolation reports a single raw value that failed its declared
// rule.
type ConstraintViolation struct {
	// Field is the dotted setting name, e.g. "port" or "docs.openapi_url".
	Field string

	// Rule is the violated rule in validator tag form, e.g. "gte=80",
	// "max=128", "oneof=http https" or "type=int" for coercion failures.
	Rule string

	// Value is the offending value as it was seen by the rule.
	Value any
}

func (e *ConstraintViolation) Error() string {
	return fmt.Sprintf("%s: value %#v violates rule %q", e.Field, e.Value, e.Rule)
}

func (e *ConstraintViolation) Unwrap() error {
	return ErrConstraintViolation
}
