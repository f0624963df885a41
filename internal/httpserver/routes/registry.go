package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/khulnasoft/startpage/internal/httpserver/deps"
)

type (
	Registrar  func(r chi.Router, d deps.Deps)
	Middleware = func(http.Handler) http.Handler
)

type entry struct {
	name string
	reg  Registrar
	mws  []Middleware
}

var registry []entry

// Register adds a named route group, applied with optional shared middlewares.
// Route files call it from init.
func Register(name string, reg Registrar, mws ...Middleware) {
	registry = append(registry, entry{name: name, reg: reg, mws: mws})
}

// RegisterAll mounts every registered group on r and returns their names
// in registration order.
func RegisterAll(r chi.Router, d deps.Deps) []string {
	names := make([]string, 0, len(registry))
	for _, e := range registry {
		target := r
		if len(e.mws) > 0 {
			target = r.With(e.mws...)
		}
		e.reg(target, d)
		names = append(names, e.name)
	}
	return names
}
