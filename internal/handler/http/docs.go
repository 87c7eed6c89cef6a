// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"html/template"
	"net/http"
)

const openAPIVersion = "3.1.0"

type openAPIDocument struct {
	OpenAPI string                         `json:"openapi"`
	Info    openAPIInfo                    `json:"info"`
	Servers []openAPIServer                `json:"servers,omitempty"`
	Paths   map[string]map[string]apiRoute `json:"paths"`
}

type openAPIInfo struct {
	Title       string `json:"title"`
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`
}

type openAPIServer struct {
	URL string `json:"url"`
}

type apiRoute struct {
	Summary   string                     `json:"summary"`
	Responses map[string]openAPIResponse `json:"responses"`
}

type openAPIResponse struct {
	Description string `json:"description"`
}

// docsTitle is the documentation title, falling back to the service name.
func (h *Handler) docsTitle() string {
	if title := h.cfg.Docs().Title(); title != "" {
		return title
	}
	return h.cfg.Name()
}

func (h *Handler) openAPIDocument() openAPIDocument {
	ok := map[string]openAPIResponse{"200": {Description: "OK"}}
	prefix := h.cfg.Prefix()

	return openAPIDocument{
		OpenAPI: openAPIVersion,
		Info: openAPIInfo{
			Title:       h.docsTitle(),
			Version:     h.cfg.Version(),
			Description: h.cfg.Docs().Description(),
		},
		Paths: map[string]map[string]apiRoute{
			routePath(prefix, "health"):  {"get": {Summary: "Liveness check", Responses: ok}},
			routePath(prefix, "version"): {"get": {Summary: "API version", Responses: ok}},
		},
	}
}

func (h *Handler) getOpenAPI(w http.ResponseWriter, r *http.Request) {
	if _, err := writeJSON(w, h.openAPIDocument(), http.StatusOK); err != nil {
		h.logger.Error().Err(err).Msg("error encoding openapi document")
	}
}

var swaggerUIPage = template.Must(template.New("swagger").Parse(`<!DOCTYPE html>
<html>
<head>
<title>{{.Title}} - Swagger UI</title>
<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
<script>
SwaggerUIBundle({
  url: {{.OpenAPIURL}},
  dom_id: "#swagger-ui",
  oauth2RedirectUrl: window.location.origin + {{.OAuth2RedirectURL}},
});
</script>
</body>
</html>
`))

var redocPage = template.Must(template.New("redoc").Parse(`<!DOCTYPE html>
<html>
<head>
<title>{{.Title}} - ReDoc</title>
</head>
<body>
<redoc spec-url="{{.OpenAPIURL}}"></redoc>
<script src="https://cdn.jsdelivr.net/npm/redoc@2/bundles/redoc.standalone.js"></script>
</body>
</html>
`))

// oauth2RedirectPage hands the authorization response back to the Swagger
// UI window that opened it.
const oauth2RedirectPage = `<!DOCTYPE html>
<html>
<head><title>Swagger UI: OAuth2 Redirect</title></head>
<body>
<script>
if (window.opener && window.opener.swaggerUIRedirectOauth2) {
  window.opener.swaggerUIRedirectOauth2.callback({auth: window.opener.swaggerUIRedirectOauth2.auth, redirectUrl: window.location.href});
}
window.close();
</script>
</body>
</html>
`

type docsPage struct {
	Title             string
	OpenAPIURL        string
	OAuth2RedirectURL string
}

func (h *Handler) docsPage() docsPage {
	docs := h.cfg.Docs()
	return docsPage{
		Title:             h.docsTitle(),
		OpenAPIURL:        docs.OpenAPIURL(),
		OAuth2RedirectURL: docs.OAuth2RedirectURL(),
	}
}

func (h *Handler) getSwaggerUI(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, swaggerUIPage)
}

func (h *Handler) getRedoc(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, redocPage)
}

func (h *Handler) getOAuth2Redirect(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(oauth2RedirectPage))
}

func (h *Handler) renderPage(w http.ResponseWriter, page *template.Template) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Execute(w, h.docsPage()); err != nil {
		h.logger.Error().Err(err).Str("page", page.Name()).Msg("error rendering docs page")
	}
}
