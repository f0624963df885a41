package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/khulnasoft/startpage/internal/config"
	"github.com/khulnasoft/startpage/internal/httpserver"
	"github.com/khulnasoft/startpage/internal/httpserver/deps"
	"github.com/khulnasoft/startpage/internal/landing"
	"github.com/khulnasoft/startpage/internal/logger"
	"github.com/khulnasoft/startpage/internal/redis"
	"github.com/khulnasoft/startpage/internal/render"
	"github.com/khulnasoft/startpage/internal/sources/document"
	redisstore "github.com/khulnasoft/startpage/internal/store/redis"
	"github.com/khulnasoft/startpage/internal/utils"
	"github.com/khulnasoft/startpage/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	renderer    *render.Renderer
	redisClient *goredis.Client
	doc         *landing.Document
	source      string
	closeOnce   sync.Once
}

// New loads the landing document and wires every component around it.
// A document that fails to load or validate aborts startup. Redis is optional
// and never fatal.
func New(cfg *config.Config) (*App, error) {
	return newWithLogger(cfg, logger.New(cfg.LogLevel, cfg.PrettyLog))
}

func newWithLogger(cfg *config.Config, loggerClient logger.Logger) (*App, error) {
	doc, source, err := document.Resolve(cfg.DocumentFile)
	if err != nil {
		loggerClient.Error("failed to load landing document", logger.Error(err))
		return nil, fmt.Errorf("failed to load landing document: %w", err)
	}
	loggerClient.Info("landing document loaded",
		logger.String("source", source),
		logger.Int("first_list", len(doc.Lists.FirstList)),
		logger.Int("second_list", len(doc.Lists.SecondList)))

	renderer, err := render.New(doc, render.Options{
		Title:    cfg.PageTitle,
		CacheTTL: cfg.RenderCacheTTL,
	}, loggerClient)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize renderer: %w", err)
	}

	a := &App{
		cfg:      cfg,
		logger:   loggerClient,
		renderer: renderer,
		doc:      doc,
		source:   source,
	}

	var store *redisstore.Store
	if cfg.RedisEnabled() {
		store = a.connectRedis(context.Background())
	} else {
		loggerClient.Info("redis not configured, snapshot publishing disabled")
	}

	d := deps.Deps{
		Logger:         loggerClient,
		StartTime:      time.Now(),
		Version:        version.Version,
		Commit:         version.Commit,
		BuildDate:      version.BuildDate,
		GoVersion:      version.GoVersion,
		TimeNow:        time.Now,
		AllowedHosts:   cfg.AllowedHosts,
		AllowedCIDRS:   cfg.AllowedCIDRS,
		TrustProxy:     cfg.TrustProxy,
		Document:       doc,
		DocumentSource: source,
		Renderer:       renderer,
		Store:          store,
	}

	a.server = httpserver.New(cfg, loggerClient, d)
	return a, nil
}

// connectRedis connects and publishes the document snapshot once.
// It returns nil when Redis cannot be reached.
func (a *App) connectRedis(ctx context.Context) *redisstore.Store {
	client, err := redis.New(ctx, redis.ConnectOptions{
		Addr:           a.cfg.RedisAddr,
		User:           a.cfg.RedisUser,
		Password:       a.cfg.RedisPassword,
		RedisDB:        a.cfg.RedisDB,
		DialTimeout:    a.cfg.RedisDT,
		ReadTimeout:    a.cfg.RedisRT,
		WriteTimeout:   a.cfg.RedisWT,
		PoolSize:       a.cfg.RedisPoolSize,
		ConnectTimeout: a.cfg.RedisConnectTimeout,
		RetryInterval:  a.cfg.RedisRetryInterval,
		MaxWait:        a.cfg.RedisMaxWait,
		PingTimeout:    a.cfg.RedisPingTimeout,
		WarnThreshold:  a.cfg.RedisWarnThreshold,
	}, a.logger)
	if err != nil {
		a.logger.Warn("redis unavailable, continuing without snapshot publishing", logger.Error(err))
		return nil
	}
	a.redisClient = client

	store := redisstore.NewStore(client)
	pubCtx, cancel := context.WithTimeout(ctx, a.cfg.RedisWT+a.cfg.RedisPingTimeout)
	defer cancel()
	if err := store.PublishDocument(pubCtx, a.doc, a.source, time.Now()); err != nil {
		a.logger.Warn("failed to publish document snapshot", logger.Error(err))
	} else {
		a.logger.Info("document snapshot published",
			logger.String("key", redisstore.DocumentKey()),
			logger.Int("links", a.doc.LinkCount()))
	}
	return store
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting startpage %s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Info(version.String())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()
	defer a.close()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

// shutdown stops the HTTP server within ShutdownTimeout. Resources are
// released by Run's deferred close whatever the outcome.
func (a *App) shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	a.logger.Info("✅ startpage stopped cleanly")
	return nil
}

// close releases the render cache and the Redis client. Safe to call twice.
func (a *App) close() {
	a.closeOnce.Do(func() {
		a.renderer.Close()
		if a.redisClient != nil {
			utils.MustClose(a.redisClient, "redis", a.logger)
		}
		_ = a.logger.Sync()
	})
}
