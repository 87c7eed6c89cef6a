// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/MKhiriev/apiconf/internal/validators"

// Dev holds development and runtime flags. The resolver treats the group
// as opaque; it is only validated and carried through.
type Dev struct {
	debug    bool
	reload   bool
	logLevel string
}

// Debug reports whether debug behaviour (verbose errors, debug logging)
// is requested.
func (d Dev) Debug() bool { return d.debug }

// Reload reports whether the server should reload on code changes.
func (d Dev) Reload() bool { return d.reload }

// LogLevel returns the minimum log level name.
func (d Dev) LogLevel() string { return d.logLevel }

var devRules = struct {
	debug    validators.Bool
	reload   validators.Bool
	logLevel validators.String
}{
	debug:  validators.Bool{Field: "dev.debug"},
	reload: validators.Bool{Field: "dev.reload"},
	logLevel: validators.String{
		Field:    "dev.log_level",
		Required: true,
		OneOf:    []string{"trace", "debug", "info", "warn", "error"},
	},
}

type devDraft struct {
	debug    bool
	reload   bool
	logLevel string
}

func loadDev(s layered) (devDraft, error) {
	var (
		d   devDraft
		err error
	)
	if err = s.checkGroup(KeyDev); err != nil {
		return d, err
	}
	if d.debug, err = devRules.debug.Apply(s.get("dev.debug")); err != nil {
		return d, err
	}
	if d.reload, err = devRules.reload.Apply(s.get("dev.reload")); err != nil {
		return d, err
	}
	if d.logLevel, err = devRules.logLevel.Apply(s.get("dev.log_level")); err != nil {
		return d, err
	}
	return d, nil
}

func (d devDraft) freeze() Dev {
	return Dev(d)
}
