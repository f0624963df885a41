package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/khulnasoft/startpage/internal/httpserver/deps"
	"github.com/khulnasoft/startpage/internal/httpserver/handlers"
	"github.com/khulnasoft/startpage/internal/httpserver/mw"
)

func init() { Register("index", registerIndex) }

func registerIndex(r chi.Router, d deps.Deps) {
	r.With(mw.EnforceHost(d.AllowedHosts, d.Logger)).Get("/", handlers.Index(d))
}
