// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// settingTag is the struct tag holding the setting name of a record field.
// Violations are reported with these names instead of Go field names.
const settingTag = "setting"

// StructValidator implements [Validator] for records annotated with
// `validate` tags. It is meant for rules that relate sibling fields, such
// as "cert_file is required when enabled is true".
type StructValidator struct {
	prefix string
	v      *validator.Validate
}

// NewStructValidator constructs a StructValidator whose violations are
// named "<prefix>.<setting path>".
func NewStructValidator(prefix string) Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get(settingTag), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &StructValidator{
		prefix: prefix,
		v:      v,
	}
}

// Validate runs the struct rules of obj. When fields are given, only those
// (Go field names, dotted for nested records) are checked.
//
// Returns ErrUnsupportedType when obj is not a struct or a pointer to one,
// or the first rule failure as a *ConstraintViolation.
func (s *StructValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = s.v.StructCtx(ctx, obj)
	} else {
		err = s.v.StructPartialCtx(ctx, obj, fields...)
	}
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return violationFrom(s.fieldName(fe.Namespace()), fe)
	}

	return err
}

// fieldName drops the struct type from a validator namespace
// ("draft.ssl.cert_file") and applies the prefix.
func (s *StructValidator) fieldName(namespace string) string {
	_, rest, found := strings.Cut(namespace, ".")
	if !found {
		rest = namespace
	}
	if s.prefix == "" {
		return rest
	}
	return s.prefix + "." + rest
}
