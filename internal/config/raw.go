// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// RawSettings maps setting names to untyped values as collected by a
// [Source]. Nested groups (dev, security, docs, paths) are nested maps.
// The presence of a key means the value was explicitly provided.
type RawSettings map[string]any

// Lookup returns the value stored under a dotted path such as
// "security.ssl.enabled".
func (r RawSettings) Lookup(path string) (any, bool) {
	var cur map[string]any = r
	keys := strings.Split(path, ".")
	for i, key := range keys {
		v, ok := cur[key]
		if !ok {
			return nil, false
		}
		if i == len(keys)-1 {
			return v, true
		}
		if cur, ok = asMap(v); !ok {
			return nil, false
		}
	}
	return nil, false
}

// Has reports whether path was explicitly provided.
func (r RawSettings) Has(path string) bool {
	_, ok := r.Lookup(path)
	return ok
}

// Set stores v under a dotted path, creating intermediate groups as
// needed. A non-map value sitting on the way is replaced by a group.
func (r RawSettings) Set(path string, v any) {
	var cur map[string]any = r
	keys := strings.Split(path, ".")
	for _, key := range keys[:len(keys)-1] {
		next, ok := asMap(cur[key])
		if !ok {
			next = map[string]any{}
			cur[key] = next
		}
		cur = next
	}
	cur[keys[len(keys)-1]] = v
}

// Delete removes path. Missing paths are ignored.
func (r RawSettings) Delete(path string) {
	var cur map[string]any = r
	keys := strings.Split(path, ".")
	for _, key := range keys[:len(keys)-1] {
		next, ok := asMap(cur[key])
		if !ok {
			return
		}
		cur = next
	}
	delete(cur, keys[len(keys)-1])
}

// Clone returns a deep copy of the group structure. Leaf values are shared,
// except slices of strings and of any, which are copied.
func (r RawSettings) Clone() RawSettings {
	if r == nil {
		return RawSettings{}
	}
	return RawSettings(cloneMap(r))
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		switch tv := v.(type) {
		case RawSettings:
			out[k] = cloneMap(tv)
		case map[string]any:
			out[k] = cloneMap(tv)
		case []string:
			out[k] = append([]string(nil), tv...)
		case []any:
			out[k] = append([]any(nil), tv...)
		default:
			out[k] = v
		}
	}
	return out
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case RawSettings:
		return m, m != nil
	case map[string]any:
		return m, m != nil
	default:
		return nil, false
	}
}
