package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/khulnasoft/startpage/internal/httpserver/deps"
	"github.com/khulnasoft/startpage/internal/httpserver/handlers"
	"github.com/khulnasoft/startpage/internal/httpserver/mw"
)

func init() { Register("config", registerConfig) }

// /config.js feeds the browser-side page, /api/config is the same document as JSON.
func registerConfig(r chi.Router, d deps.Deps) {
	guarded := r.With(mw.EnforceHost(d.AllowedHosts, d.Logger))
	guarded.Get("/config.js", handlers.ConfigScript(d))
	guarded.Get("/api/config", handlers.ConfigJSON(d))
}
