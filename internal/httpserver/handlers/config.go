package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/khulnasoft/startpage/internal/httpserver/deps"
	"github.com/khulnasoft/startpage/internal/landing"
	"github.com/khulnasoft/startpage/internal/logger"
)

// encoded is a pre-rendered representation of the document.
// The document never changes after startup, so each encoding is computed once.
type encoded struct {
	body        []byte
	etag        string
	contentType string
}

func encode(d deps.Deps, name, contentType string, fn func(*landing.Document) ([]byte, error)) (*encoded, error) {
	body, err := fn(d.Document)
	if err != nil {
		d.Logger.Error("failed to encode document",
			logger.String("format", name),
			logger.Error(err))
		return nil, err
	}
	sum := sha256.Sum256(body)
	return &encoded{
		body:        body,
		etag:        `"` + hex.EncodeToString(sum[:8]) + `"`,
		contentType: contentType,
	}, nil
}

func (e *encoded) serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", e.contentType)
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("ETag", e.etag)

	if etagMatches(r.Header.Get("If-None-Match"), e.etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	_, _ = w.Write(e.body)
}

// etagMatches reports whether an If-None-Match header value matches etag
// using weak comparison: "*" matches anything and a W/ prefix is ignored.
func etagMatches(header, etag string) bool {
	for _, tag := range strings.Split(header, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "*" {
			return true
		}
		if strings.TrimPrefix(tag, "W/") == etag {
			return true
		}
	}
	return false
}

// ConfigJSON serves the landing document as JSON.
func ConfigJSON(d deps.Deps) http.HandlerFunc {
	enc, err := encode(d, "json", "application/json", landing.EncodeJSON)
	return func(w http.ResponseWriter, r *http.Request) {
		if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		enc.serve(w, r)
	}
}

// ConfigScript serves the landing document as `const CONFIG = {...};`
// for the browser-side page.
func ConfigScript(d deps.Deps) http.HandlerFunc {
	enc, err := encode(d, "script", "application/javascript; charset=utf-8", landing.EncodeScript)
	return func(w http.ResponseWriter, r *http.Request) {
		if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		enc.serve(w, r)
	}
}
