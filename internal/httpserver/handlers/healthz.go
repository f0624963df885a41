package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/khulnasoft/startpage/internal/httpserver/deps"
)

type buildInfo struct {
	Version   string `json:"version,omitempty"`
	Commit    string `json:"commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
	GoVersion string `json:"go_version,omitempty"`
}

type healthzResponse struct {
	Status        string    `json:"status"`
	StartedAt     string    `json:"started_at"`
	UptimeSeconds float64   `json:"uptime_seconds"`
	Build         buildInfo `json:"build"`
}

// Healthz reports liveness. It never touches the document or Redis.
func Healthz(d deps.Deps) http.HandlerFunc {
	build := buildInfo{
		Version:   d.Version,
		Commit:    d.Commit,
		BuildDate: d.BuildDate,
		GoVersion: d.GoVersion,
	}
	startedAt := d.StartTime.UTC().Format(time.RFC3339)

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(healthzResponse{
			Status:        "ok",
			StartedAt:     startedAt,
			UptimeSeconds: d.Now().Sub(d.StartTime).Seconds(),
			Build:         build,
		})
	}
}
