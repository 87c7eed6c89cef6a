// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// knownTokens are the placeholders no resolved template may still hold.
var knownTokens = []string{TokenAPIVersion, TokenAPIPrefix, TokenAPISlug, TokenTmpDir}

// expandToken substitutes value for every occurrence of token in template.
// The substitution is a single pass: text coming from value is never
// scanned for tokens again.
func expandToken(template, token, value string) string {
	if template == "" || !strings.Contains(template, token) {
		return template
	}
	return strings.ReplaceAll(template, token, value)
}

// checkExpanded fails with *UnresolvedPlaceholder when value still holds
// any of tokens.
func checkExpanded(field, value string, tokens ...string) error {
	for _, token := range tokens {
		if strings.Contains(value, token) {
			return &UnresolvedPlaceholder{Field: field, Token: token, Value: value}
		}
	}
	return nil
}

func containsToken(value, token string) bool {
	return strings.Contains(value, token)
}
