// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"
)

// validate is the package-level validator used for single-value rules.
var validate = validator.New()

// String declares a rule for a string setting. The raw value is coerced to
// a string and trimmed before length and enum checks run.
type String struct {
	Field string

	// Required rejects missing and empty values. Optional values that are
	// empty after trimming skip every other rule.
	Required bool

	// MinLen and MaxLen bound the length in runes. Zero means unbounded.
	MinLen int
	MaxLen int

	// OneOf restricts the value to an enum set.
	OneOf []string
}

// Apply implements [Constraint].
func (c String) Apply(raw any) (string, error) {
	if raw == nil {
		if c.Required {
			return "", &ConstraintViolation{Field: c.Field, Rule: "required", Value: raw}
		}
		return "", nil
	}

	s, err := cast.ToStringE(raw)
	if err != nil {
		return "", &ConstraintViolation{Field: c.Field, Rule: "type=string", Value: raw}
	}
	s = strings.TrimSpace(s)

	if err := check(c.Field, s, c.tag()); err != nil {
		return "", err
	}
	return s, nil
}

func (c String) tag() string {
	rules := make([]string, 0, 4)
	if c.Required {
		rules = append(rules, "required")
	} else {
		rules = append(rules, "omitempty")
	}
	if c.MinLen > 0 {
		rules = append(rules, "min="+strconv.Itoa(c.MinLen))
	}
	if c.MaxLen > 0 {
		rules = append(rules, "max="+strconv.Itoa(c.MaxLen))
	}
	if len(c.OneOf) > 0 {
		rules = append(rules, "oneof="+strings.Join(c.OneOf, " "))
	}
	return strings.Join(rules, ",")
}

// Int declares a numeric range for an integer setting. The lower bound is
// always closed; the upper bound is closed unless MaxExclusive is set.
type Int struct {
	Field string

	Min int
	Max int

	// MaxExclusive turns the range into [Min, Max).
	MaxExclusive bool
}

// Apply implements [Constraint].
func (c Int) Apply(raw any) (int, error) {
	if s, ok := raw.(string); ok {
		raw = strings.TrimSpace(s)
		if raw == "" {
			return 0, &ConstraintViolation{Field: c.Field, Rule: "required", Value: s}
		}
	}
	if raw == nil {
		return 0, &ConstraintViolation{Field: c.Field, Rule: "required", Value: raw}
	}

	n, ok := toInt(raw)
	if !ok {
		return 0, &ConstraintViolation{Field: c.Field, Rule: "type=int", Value: raw}
	}

	if err := check(c.Field, n, c.tag()); err != nil {
		return 0, err
	}
	return n, nil
}

func (c Int) tag() string {
	tag := "gte=" + strconv.Itoa(c.Min)
	switch {
	case c.MaxExclusive:
		tag += ",lt=" + strconv.Itoa(c.Max)
	case c.Max != 0:
		tag += ",lte=" + strconv.Itoa(c.Max)
	}
	return tag
}

// Bool declares a boolean setting. Strings accepted by strconv.ParseBool
// and the numbers 0 and 1 are coerced.
type Bool struct {
	Field string
}

// Apply implements [Constraint].
func (c Bool) Apply(raw any) (bool, error) {
	if s, ok := raw.(string); ok {
		raw = strings.ToLower(strings.TrimSpace(s))
	}
	if raw == nil || raw == "" {
		return false, &ConstraintViolation{Field: c.Field, Rule: "required", Value: raw}
	}

	b, ok := toBool(raw)
	if !ok {
		return false, &ConstraintViolation{Field: c.Field, Rule: "type=bool", Value: raw}
	}
	return b, nil
}

// toInt accepts integers, base-10 integer strings and whole floats.
// Prefixed bases, leading-zero octal and fractional values are rejected
// rather than reinterpreted.
func toInt(raw any) (int, bool) {
	switch v := raw.(type) {
	case bool:
		return 0, false
	case string:
		n, err := strconv.Atoi(v)
		return n, err == nil
	case json.Number:
		if n, err := strconv.Atoi(v.String()); err == nil {
			return n, true
		}
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return wholeFloat(f)
	case float64:
		return wholeFloat(v)
	case float32:
		return wholeFloat(float64(v))
	}

	n, err := cast.ToIntE(raw)
	return n, err == nil
}

func wholeFloat(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > 1<<53 {
		return 0, false
	}
	return int(f), true
}

// toBool accepts booleans, strconv.ParseBool strings and the numbers 0
// and 1.
func toBool(raw any) (bool, bool) {
	switch v := raw.(type) {
	case bool:
		return v, true
	case string:
		b, err := strconv.ParseBool(v)
		return b, err == nil
	}

	n, ok := toInt(raw)
	if !ok || (n != 0 && n != 1) {
		return false, false
	}
	return n == 1, true
}

// Strings declares a list setting. A raw string is split on commas, which
// is how lists arrive from the environment. Items are trimmed and empty
// items dropped.
type Strings struct {
	Field string

	MinItems int
	MaxItems int

	// ItemMaxLen bounds every item. Zero means unbounded.
	ItemMaxLen int

	// ItemRule is an extra validator tag applied to every item,
	// e.g. "ip|cidr".
	ItemRule string
}

// Apply implements [Constraint].
func (c Strings) Apply(raw any) ([]string, error) {
	var items []string
	switch v := raw.(type) {
	case nil:
	case string:
		items = strings.Split(v, ",")
	default:
		var err error
		items, err = cast.ToStringSliceE(raw)
		if err != nil {
			return nil, &ConstraintViolation{Field: c.Field, Rule: "type=[]string", Value: raw}
		}
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	if err := check(c.Field, out, c.tag()); err != nil {
		return nil, err
	}
	return out, nil
}

func (c Strings) tag() string {
	rules := make([]string, 0, 6)
	if c.MinItems > 0 {
		rules = append(rules, "min="+strconv.Itoa(c.MinItems))
	}
	if c.MaxItems > 0 {
		rules = append(rules, "max="+strconv.Itoa(c.MaxItems))
	}
	rules = append(rules, "dive", "required")
	if c.ItemMaxLen > 0 {
		rules = append(rules, "max="+strconv.Itoa(c.ItemMaxLen))
	}
	if c.ItemRule != "" {
		rules = append(rules, c.ItemRule)
	}
	return strings.Join(rules, ",")
}

// check runs tag against value and converts the first failure into a
// *ConstraintViolation for field.
func check(field string, value any, tag string) error {
	err := validate.Var(value, tag)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		name := field
		if f := fe.Field(); strings.HasPrefix(f, "[") {
			name += f
		}
		return violationFrom(name, fe)
	}

	return fmt.Errorf("%s: %w", field, err)
}

func violationFrom(field string, fe validator.FieldError) *ConstraintViolation {
	rule := fe.Tag()
	if p := fe.Param(); p != "" {
		rule += "=" + p
	}
	return &ConstraintViolation{Field: field, Rule: rule, Value: fe.Value()}
}
