// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/MKhiriev/apiconf/internal/validators"

// Docs controls exposure of the API description and its interactive
// documentation pages. URLs are final: any {api_prefix} token has been
// replaced by the resolved route prefix when exposure is enabled.
type Docs struct {
	enabled           bool
	title             string
	description       string
	openAPIURL        string
	docsURL           string
	redocURL          string
	oauth2RedirectURL string
}

// Enabled reports whether the documentation routes are served.
func (d Docs) Enabled() bool { return d.enabled }

// Title returns the documentation title; empty means the service name.
func (d Docs) Title() string { return d.title }

// Description returns the API description shown in the documentation.
func (d Docs) Description() string { return d.description }

// OpenAPIURL returns the URL of the OpenAPI document.
func (d Docs) OpenAPIURL() string { return d.openAPIURL }

// DocsURL returns the URL of the Swagger UI page.
func (d Docs) DocsURL() string { return d.docsURL }

// RedocURL returns the URL of the ReDoc page.
func (d Docs) RedocURL() string { return d.redocURL }

// OAuth2RedirectURL returns the URL of the Swagger UI OAuth2 redirect page.
func (d Docs) OAuth2RedirectURL() string { return d.oauth2RedirectURL }

var docsRules = struct {
	enabled     validators.Bool
	title       validators.String
	description validators.String
	url         func(field string) validators.String
}{
	enabled:     validators.Bool{Field: "docs.enabled"},
	title:       validators.String{Field: "docs.title", MaxLen: 128},
	description: validators.String{Field: "docs.description", MaxLen: 1024},
	url: func(field string) validators.String {
		return validators.String{Field: field, MaxLen: 256}
	},
}

// docsDraft is the mutable form of Docs used while placeholders are
// expanded.
type docsDraft struct {
	enabled           bool
	title             string
	description       string
	openAPIURL        string
	docsURL           string
	redocURL          string
	oauth2RedirectURL string
}

// docsURL pairs a URL template with its setting name.
type docsURL struct {
	field string
	value *string
}

func (d *docsDraft) urls() []docsURL {
	return []docsURL{
		{field: "docs.openapi_url", value: &d.openAPIURL},
		{field: "docs.docs_url", value: &d.docsURL},
		{field: "docs.redoc_url", value: &d.redocURL},
		{field: "docs.swagger_ui_oauth2_redirect_url", value: &d.oauth2RedirectURL},
	}
}

func loadDocs(s layered) (docsDraft, error) {
	var (
		d   docsDraft
		err error
	)
	if err = s.checkGroup(KeyDocs); err != nil {
		return d, err
	}
	if d.enabled, err = docsRules.enabled.Apply(s.get("docs.enabled")); err != nil {
		return d, err
	}
	if d.title, err = docsRules.title.Apply(s.get("docs.title")); err != nil {
		return d, err
	}
	if d.description, err = docsRules.description.Apply(s.get("docs.description")); err != nil {
		return d, err
	}
	for _, u := range d.urls() {
		if *u.value, err = docsRules.url(u.field).Apply(s.get(u.field)); err != nil {
			return d, err
		}
	}
	return d, nil
}

// expand substitutes prefix into every URL template holding TokenAPIPrefix.
// Templates without the token are left untouched.
func (d *docsDraft) expand(prefix string) {
	for _, u := range d.urls() {
		*u.value = expandToken(*u.value, TokenAPIPrefix, prefix)
	}
}

func (d *docsDraft) checkExpanded() error {
	for _, u := range d.urls() {
		if err := checkExpanded(u.field, *u.value, knownTokens...); err != nil {
			return err
		}
	}
	return nil
}

func (d docsDraft) freeze() Docs {
	return Docs(d)
}
