// Package swagger serves the OpenAPI document of the advisory API together
// with a ReDoc page that renders it.
package swagger

import (
	"bytes"
	"context"
	"net/http"
	"time"
)

const (
	docsPath = "/api-docs"
	specPath = "/openapi.yaml"
)

// Register mounts read-only handlers for the ReDoc page and the raw
// document. Other methods get 405 from the mux.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("swagger: nil mux")
	}
	mux.Handle(http.MethodGet+" "+docsPath, static("text/html; charset=utf-8", []byte(docsPage)))
	mux.Handle(http.MethodGet+" "+specPath, static("application/yaml; charset=utf-8", OpenAPI))
}

// static serves body as-is. ServeContent answers HEAD and range requests.
func static(contentType string, body []byte) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		http.ServeContent(w, r, "", time.Time{}, bytes.NewReader(body))
	})
}

const docsPage = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8">
    <title>lineup API</title>
    <style>body{margin:0;padding:0}</style>
  </head>
  <body>
    <redoc spec-url="` + specPath + `"></redoc>
    <script src="https://cdn.redoc.ly/redoc/latest/bundles/redoc.standalone.js"></script>
  </body>
</html>`
