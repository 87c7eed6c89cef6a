// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/apiconf/internal/validators"
)

// layered reads a setting from the explicit raw values first and falls back
// to the declarative defaults.
type layered struct {
	raw      RawSettings
	defaults RawSettings
}

func (l layered) get(path string) any {
	if v, ok := l.raw.Lookup(path); ok {
		return v
	}
	v, _ := l.defaults.Lookup(path)
	return v
}

// explicit reports whether path was provided by a source rather than
// taken from the defaults.
func (l layered) explicit(path string) bool {
	return l.raw.Has(path)
}

// checkGroup fails when a nested group was provided as something other
// than a mapping, which would otherwise silently hide its values.
func (l layered) checkGroup(path string) error {
	v, ok := l.raw.Lookup(path)
	if !ok {
		return nil
	}
	if _, isMap := asMap(v); !isMap {
		return fmt.Errorf("%w: %w", ErrInvalidGroup,
			&validators.ConstraintViolation{Field: path, Rule: "type=group", Value: v})
	}
	return nil
}
