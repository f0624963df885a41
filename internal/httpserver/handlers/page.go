package handlers

import (
	"net/http"

	"github.com/khulnasoft/startpage/internal/httpserver/deps"
	"github.com/khulnasoft/startpage/internal/logger"
)

// Index renders the landing page.
func Index(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := d.Renderer.Render(d.Now())
		if err != nil {
			d.Logger.Error("failed to render landing page", logger.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		if _, err := w.Write(page); err != nil {
			d.Logger.Debug("failed to write response", logger.Error(err))
		}
	}
}
