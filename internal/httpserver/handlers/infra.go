package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/khulnasoft/startpage/internal/httpserver/deps"
	"github.com/khulnasoft/startpage/internal/landing"
	"github.com/khulnasoft/startpage/internal/render"
	redisstore "github.com/khulnasoft/startpage/internal/store/redis"
)

const redisCheckTimeout = 2 * time.Second

type componentStatus struct {
	OK          bool          `json:"ok"`
	Source      string        `json:"source,omitempty"`
	Links       *int          `json:"links,omitempty"`
	Mode        string        `json:"mode,omitempty"`
	PublishedAt string        `json:"published_at,omitempty"`
	InSync      *bool         `json:"in_sync,omitempty"`
	Cache       *render.Stats `json:"cache,omitempty"`
	Error       string        `json:"error,omitempty"`
}

type infraResponse struct {
	Status     string                     `json:"status"`
	Components map[string]componentStatus `json:"components"`
}

// Infra reports the state of the document, the renderer and Redis.
func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		components := map[string]componentStatus{
			"document": documentStatus(d),
			"renderer": rendererStatus(d),
			"redis":    redisStatus(r.Context(), d),
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(infraResponse{
			Status:     overallStatus(components),
			Components: components,
		})
	}
}

func documentStatus(d deps.Deps) componentStatus {
	if d.Document == nil {
		return componentStatus{OK: false, Error: "document not loaded"}
	}
	links := d.Document.LinkCount()
	return componentStatus{
		OK:     true,
		Source: d.DocumentSource,
		Links:  &links,
	}
}

func rendererStatus(d deps.Deps) componentStatus {
	if d.Renderer == nil {
		return componentStatus{OK: false, Error: "renderer not initialized"}
	}
	stats := d.Renderer.Stats()
	return componentStatus{OK: true, Cache: &stats}
}

func redisStatus(ctx context.Context, d deps.Deps) componentStatus {
	if d.Store == nil {
		return componentStatus{OK: true, Mode: "disabled"}
	}

	ctx, cancel := context.WithTimeout(ctx, redisCheckTimeout)
	defer cancel()

	if err := d.Store.Ping(ctx); err != nil {
		return componentStatus{OK: false, Mode: "degraded", Error: "unreachable"}
	}

	snap, err := d.Store.GetSnapshot(ctx)
	switch {
	case errors.Is(err, redisstore.ErrNotPublished):
		return componentStatus{OK: false, Mode: "degraded", Error: "snapshot not published"}
	case err != nil:
		return componentStatus{OK: false, Mode: "degraded", Error: err.Error()}
	}

	status := componentStatus{
		OK:          true,
		Mode:        "published",
		Source:      snap.Source,
		Links:       &snap.Links,
		PublishedAt: snap.PublishedAt.Format(time.RFC3339),
	}

	inSync, err := snapshotInSync(ctx, d)
	if err != nil {
		status.OK = false
		status.Mode = "degraded"
		status.Error = err.Error()
		return status
	}
	status.InSync = &inSync
	if !inSync {
		status.OK = false
		status.Error = "published snapshot differs from served document"
	}
	return status
}

// snapshotInSync compares the published document with the one being served.
func snapshotInSync(ctx context.Context, d deps.Deps) (bool, error) {
	published, err := d.Store.GetDocument(ctx)
	if err != nil {
		return false, err
	}
	if d.Document == nil {
		return false, nil
	}

	want, err := landing.EncodeJSON(d.Document)
	if err != nil {
		return false, err
	}
	got, err := landing.EncodeJSON(published)
	if err != nil {
		return false, err
	}
	return bytes.Equal(want, got), nil
}

// overallStatus is "critical" without a document, "degraded" when an
// optional component is unhealthy, "ok" otherwise.
func overallStatus(components map[string]componentStatus) string {
	if doc, ok := components["document"]; ok && !doc.OK {
		return "critical"
	}
	for _, c := range components {
		if !c.OK {
			return "degraded"
		}
	}
	return "ok"
}
