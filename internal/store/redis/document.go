package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/khulnasoft/startpage/internal/landing"
)

// ErrNotPublished is returned when no snapshot exists in Redis.
var ErrNotPublished = errors.New("document snapshot not published")

// Store publishes the landing document to Redis so other dashboard
// components can read the same links.
type Store struct {
	client *redis.Client
}

// Snapshot is the metadata stored alongside a published document.
type Snapshot struct {
	Source      string    `json:"source"`
	Links       int       `json:"links"`
	PublishedAt time.Time `json:"published_at"`
}

// NewStore creates a new Redis store
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// PublishDocument writes the document snapshot and its metadata in one pipeline.
func (s *Store) PublishDocument(ctx context.Context, doc *landing.Document, source string, now time.Time) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, DocumentKey(), data, 0)
	pipe.HSet(ctx, DocumentMetaKey(),
		MetaSource, source,
		MetaLinks, doc.LinkCount(),
		MetaPublishedAt, now.UTC().Format(time.RFC3339),
	)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to publish document: %w", err)
	}
	return nil
}

// GetDocument reads the published document back.
func (s *Store) GetDocument(ctx context.Context) (*landing.Document, error) {
	data, err := s.client.Get(ctx, DocumentKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotPublished
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	var doc landing.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	return &doc, nil
}

// GetSnapshot returns the metadata of the published document.
func (s *Store) GetSnapshot(ctx context.Context) (Snapshot, error) {
	fields, err := s.client.HGetAll(ctx, DocumentMetaKey()).Result()
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to get snapshot metadata: %w", err)
	}
	if len(fields) == 0 {
		return Snapshot{}, ErrNotPublished
	}
	return parseSnapshot(fields)
}

// Ping checks the connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func parseSnapshot(fields map[string]string) (Snapshot, error) {
	snap := Snapshot{Source: fields[MetaSource]}

	if v := fields[MetaLinks]; v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Snapshot{}, fmt.Errorf("invalid %s field %q: %w", MetaLinks, v, err)
		}
		snap.Links = n
	}
	if v := fields[MetaPublishedAt]; v != "" {
		ts, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return Snapshot{}, fmt.Errorf("invalid %s field %q: %w", MetaPublishedAt, v, err)
		}
		snap.PublishedAt = ts
	}
	return snap, nil
}
