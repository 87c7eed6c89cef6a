// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

//go:generate mockgen -source=interfaces.go -destination=../mock/source_mock.go -package=mock

// Source produces one layer of raw settings. Only keys the source actually
// found are present in the returned mapping.
type Source interface {
	Load() (RawSettings, error)
}
