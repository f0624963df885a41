package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/khulnasoft/startpage/internal/httpserver/deps"
	"github.com/khulnasoft/startpage/internal/httpserver/handlers"
	"github.com/khulnasoft/startpage/internal/httpserver/mw"
)

func init() { Register("readyz", registerReadyz) }

// readyz is an ops endpoint, restricted like /infra.
func registerReadyz(r chi.Router, d deps.Deps) {
	r.With(mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger)).Get("/readyz", handlers.Readyz(d))
}
