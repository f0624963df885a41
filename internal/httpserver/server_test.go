package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khulnasoft/startpage/internal/config"
	"github.com/khulnasoft/startpage/internal/httpserver/deps"
	"github.com/khulnasoft/startpage/internal/landing"
	"github.com/khulnasoft/startpage/internal/logger"
	"github.com/khulnasoft/startpage/internal/render"
)

func newTestRouter(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()

	doc := landing.Default()
	renderer, err := render.New(doc, render.Options{CacheTTL: time.Minute}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(renderer.Close)

	d := deps.Deps{
		Logger:         logger.Nop(),
		StartTime:      time.Now(),
		TimeNow:        time.Now,
		AllowedHosts:   cfg.AllowedHosts,
		AllowedCIDRS:   cfg.AllowedCIDRS,
		TrustProxy:     cfg.TrustProxy,
		Document:       doc,
		DocumentSource: "built-in",
		Renderer:       renderer,
	}
	return NewRouter(cfg, logger.Nop(), d)
}

func serve(h http.Handler, method, target, host, remote string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if host != "" {
		req.Host = host
	}
	if remote != "" {
		req.RemoteAddr = remote
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouterServesAllRoutes(t *testing.T) {
	h := newTestRouter(t, &config.Config{RateLimitBurst: 100, RateLimitPerMin: 100})

	for _, path := range []string{"/", "/config.js", "/api/config", "/healthz", "/readyz", "/infra"} {
		t.Run(path, func(t *testing.T) {
			rec := serve(h, http.MethodGet, path, "", "")
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Limit"))
		})
	}

	assert.Equal(t, http.StatusNotFound, serve(h, http.MethodGet, "/nope", "", "").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, serve(h, http.MethodPost, "/", "", "").Code)
}

func TestRouterHeadUsesGet(t *testing.T) {
	h := newTestRouter(t, &config.Config{RateLimitBurst: 10, RateLimitPerMin: 10})

	rec := serve(h, http.MethodHead, "/api/config", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterGuards(t *testing.T) {
	h := newTestRouter(t, &config.Config{
		RateLimitBurst:  100,
		RateLimitPerMin: 100,
		AllowedHosts:    []string{"cyberpot.local"},
		AllowedCIDRS:    []string{"127.0.0.1/32"},
	})

	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/", "cyberpot.local:64297", "").Code)
	assert.Equal(t, http.StatusForbidden, serve(h, http.MethodGet, "/", "evil.example", "").Code)
	assert.Equal(t, http.StatusForbidden, serve(h, http.MethodGet, "/config.js", "evil.example", "").Code)

	// Health stays open, ops endpoints follow the CIDR list.
	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/healthz", "evil.example", "192.0.2.1:1234").Code)
	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/infra", "", "127.0.0.1:1234").Code)
	assert.Equal(t, http.StatusForbidden, serve(h, http.MethodGet, "/infra", "", "192.0.2.1:1234").Code)
	assert.Equal(t, http.StatusForbidden, serve(h, http.MethodGet, "/readyz", "", "192.0.2.1:1234").Code)
}

func TestRouterRateLimits(t *testing.T) {
	h := newTestRouter(t, &config.Config{RateLimitBurst: 2, RateLimitPerMin: 1})

	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/healthz", "", "").Code)
	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/healthz", "", "").Code)

	rec := serve(h, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}
