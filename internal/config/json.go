// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// JSONSource reads settings from a JSON file whose top-level object uses
// the setting names as keys, with nested objects for the groups:
//
//	{"name": "Orders API", "port": 8080, "docs": {"enabled": false}}
type JSONSource struct {
	path string
}

// NewJSONSource returns a Source over the file at path. An empty path
// yields no settings.
func NewJSONSource(path string) *JSONSource {
	return &JSONSource{path: path}
}

// Load implements [Source].
func (s *JSONSource) Load() (RawSettings, error) {
	if s.path == "" {
		return RawSettings{}, nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}

	var raw RawSettings
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err = dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}
	if raw == nil {
		raw = RawSettings{}
	}
	return raw, nil
}
