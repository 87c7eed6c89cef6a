// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

var slugReplacer = strings.NewReplacer(" ", "-", "_", "-", ".", "-")

// deriveSlug turns a display name into a URL and filesystem friendly
// identifier: "Service API" becomes "service-api".
func deriveSlug(name string) string {
	return slugReplacer.Replace(strings.ToLower(strings.TrimSpace(name)))
}
