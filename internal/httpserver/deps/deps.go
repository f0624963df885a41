package deps

import (
	"time"

	"github.com/khulnasoft/startpage/internal/landing"
	"github.com/khulnasoft/startpage/internal/logger"
	"github.com/khulnasoft/startpage/internal/render"
	redisstore "github.com/khulnasoft/startpage/internal/store/redis"
)

type Deps struct {
	Logger         logger.Logger
	StartTime      time.Time
	Version        string
	Commit         string
	BuildDate      string
	GoVersion      string
	TimeNow        func() time.Time  // for testing, defaults to time.Now
	AllowedHosts   []string          // Host headers allowed to access the page
	AllowedCIDRS   []string          // IPs allowed to access readyz/infra endpoints
	TrustProxy     bool              // true if running behind a trusted reverse proxy (e.g., cloudflared)
	Document       *landing.Document // The landing document, loaded once at startup
	DocumentSource string            // File the document came from, or "built-in"
	Renderer       *render.Renderer  // HTML renderer for the landing page
	Store          *redisstore.Store // Snapshot store, nil when Redis is disabled
}

// Now returns the current time through TimeNow when set.
func (d Deps) Now() time.Time {
	if d.TimeNow != nil {
		return d.TimeNow()
	}
	return time.Now()
}
