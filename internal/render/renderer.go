package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/dgraph-io/ristretto/v2"

	"github.com/khulnasoft/startpage/internal/landing"
	"github.com/khulnasoft/startpage/internal/logger"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const (
	// DefaultTitle is the <title> of the landing page.
	DefaultTitle = "CyberPot"
	// DefaultCacheTTL bounds how long a rendered minute stays cached.
	DefaultCacheTTL = time.Minute

	cacheNumCounters = 1e4
	cacheMaxCost     = 8 << 20 // bytes of rendered HTML
	cacheBufferItems = 64
)

// Options tunes the renderer.
type Options struct {
	Title    string
	CacheTTL time.Duration // 0 disables the render cache
}

// Renderer turns the landing document into HTML.
// The output only depends on the wall-clock minute, so pages are cached per minute.
type Renderer struct {
	doc    *landing.Document
	title  string
	ttl    time.Duration
	tmpl   *template.Template
	cache  *ristretto.Cache[string, []byte]
	logger logger.Logger
}

// Stats reports render cache usage.
type Stats struct {
	Enabled bool   `json:"enabled"`
	Hits    uint64 `json:"hits"`
	Misses  uint64 `json:"misses"`
}

// New parses the embedded template and prepares the render cache.
func New(doc *landing.Document, opts Options, log logger.Logger) (*Renderer, error) {
	if doc == nil {
		return nil, fmt.Errorf("renderer requires a document")
	}

	tmpl, err := template.ParseFS(templateFS, "templates/index.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}

	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}

	r := &Renderer{
		doc:    doc,
		title:  title,
		ttl:    opts.CacheTTL,
		tmpl:   tmpl,
		logger: log,
	}

	if opts.CacheTTL > 0 {
		cache, err := ristretto.NewCache(&ristretto.Config[string, []byte]{
			NumCounters: cacheNumCounters,
			MaxCost:     cacheMaxCost,
			BufferItems: cacheBufferItems,
			Metrics:     true,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create render cache: %w", err)
		}
		r.cache = cache
	}

	return r, nil
}

// Render returns the landing page as it looks at time t.
func (r *Renderer) Render(t time.Time) ([]byte, error) {
	key := cacheKey(t)
	if r.cache != nil {
		if page, ok := r.cache.Get(key); ok {
			return page, nil
		}
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, Build(r.doc, r.title, t)); err != nil {
		return nil, fmt.Errorf("failed to render page: %w", err)
	}
	page := buf.Bytes()

	if r.cache != nil {
		r.cache.SetWithTTL(key, page, int64(len(page)), r.ttl)
		r.logger.Debug("rendered landing page",
			logger.String("minute", key),
			logger.Int("bytes", len(page)))
	}
	return page, nil
}

// Stats returns cache hit/miss counters.
func (r *Renderer) Stats() Stats {
	if r.cache == nil {
		return Stats{}
	}
	return Stats{
		Enabled: true,
		Hits:    r.cache.Metrics.Hits(),
		Misses:  r.cache.Metrics.Misses(),
	}
}

// Close releases the render cache.
func (r *Renderer) Close() {
	if r.cache != nil {
		r.cache.Close()
	}
}

// wait blocks until buffered cache writes are applied. Used by tests.
func (r *Renderer) wait() {
	if r.cache != nil {
		r.cache.Wait()
	}
}

func cacheKey(t time.Time) string {
	return t.Format("2006-01-02T15:04Z07:00")
}
