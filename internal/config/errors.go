// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

// Resolution errors. Every failure returned by [Resolver.Resolve] is a
// *ResolutionError wrapping one of the typed errors below or a
// *validators.ConstraintViolation, so errors.Is works against these
// sentinels and against validators.ErrConstraintViolation.
var (
	// ErrMalformedLaunchArgument indicates a launch flag whose value could not
	// be parsed (for example, a non-integer --port).
	ErrMalformedLaunchArgument = errors.New("malformed launch argument")
	// ErrUnresolvedPlaceholder indicates a placeholder token that is still
	// present after cross-field expansion.
	ErrUnresolvedPlaceholder = errors.New("unresolved placeholder")
	// ErrAlreadyResolved is returned when a Resolver is run a second time.
	ErrAlreadyResolved = errors.New("configuration already resolved")
	// ErrInvalidGroup indicates a nested group (dev, security, docs, paths)
	// that was provided but is not a mapping.
	ErrInvalidGroup = errors.New("invalid settings group")
)

// MalformedLaunchArgument reports a launch flag that is expected to carry
// an integer but does not.
type MalformedLaunchArgument struct {
	// Flag is the flag name, e.g. "--port".
	Flag string
	// Value is the raw text that failed to parse.
	Value string
	// Err is the underlying parse error.
	Err error
}

func (e *MalformedLaunchArgument) Error() string {
	return fmt.Sprintf("launch argument %s: value %q is not an integer", e.Flag, e.Value)
}

func (e *MalformedLaunchArgument) Unwrap() []error {
	return []error{ErrMalformedLaunchArgument, e.Err}
}

// UnresolvedPlaceholder reports a template setting that still contains a
// placeholder token once its expansion step has run.
type UnresolvedPlaceholder struct {
	// Field is the dotted setting name, e.g. "paths.uploads_dir".
	Field string
	// Token is the placeholder left in the value, e.g. "{tmp_dir}".
	Token string
	// Value is the setting value after expansion.
	Value string
}

func (e *UnresolvedPlaceholder) Error() string {
	return fmt.Sprintf("%s: placeholder %s left unexpanded in %q", e.Field, e.Token, e.Value)
}

func (e *UnresolvedPlaceholder) Unwrap() error {
	return ErrUnresolvedPlaceholder
}

// ResolutionError wraps the first failure of a resolution pass with the
// stage the resolver had reached and the step that failed.
type ResolutionError struct {
	Stage Stage
	Step  string
	Err   error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve config: stage %s, step %s: %v", e.Stage, e.Step, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}
