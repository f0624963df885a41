package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	DocumentFile   string        // path to a YAML/JSON landing document, empty = built-in default
	PageTitle      string        // <title> of the rendered page
	RenderCacheTTL time.Duration // how long a rendered minute is cached, 0 = no cache

	// Access restrictions
	AllowedHosts []string // optional, restrict access to specific Host headers
	AllowedCIDRS []string // optional, restrict ops endpoints to specific IPs/CIDRs
	TrustProxy   bool     // true => trust X-Forwarded-For headers (e.g. cloudflared)

	RateLimitBurst  int // per-IP bucket size
	RateLimitPerMin int // per-IP refill rate

	// Redis (optional, empty RedisAddr = snapshot publishing disabled)
	RedisAddr             string        // ex: "localhost:6379"
	RedisUser             string        // optional
	RedisPassword         string        // optional
	RedisPasswordRequired bool          // true => require password when Redis is enabled
	RedisDB               int           // Redis DB number
	RedisDT               time.Duration // Redis dial timeout (ex: 5s)
	RedisRT               time.Duration // Redis read timeout (ex: 3s)
	RedisWT               time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait          time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout      time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize         int           // Redis connection pool size
	RedisConnectTimeout   time.Duration // total time to retry connecting (ex: 30s)
	RedisRetryInterval    time.Duration // initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold    int           // warn after this many attempts
}

// RedisEnabled reports whether a Redis address was configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("STARTPAGE_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("STARTPAGE_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("STARTPAGE_LOG_LEVEL", "info"),
		PrettyLog: mustBool("STARTPAGE_PRETTY_LOG", true),

		// Document & rendering
		DocumentFile:   getenv("STARTPAGE_DOCUMENT_FILE", ""),
		PageTitle:      getenv("STARTPAGE_PAGE_TITLE", "CyberPot"),
		RenderCacheTTL: mustDuration("STARTPAGE_RENDER_CACHE_TTL", time.Minute),

		// Access restrictions
		AllowedHosts: splitAndTrim(getenv("STARTPAGE_ALLOWED_HOSTS", "")),
		AllowedCIDRS: splitAndTrim(getenv("STARTPAGE_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("STARTPAGE_TRUST_PROXY", true),

		RateLimitBurst:  getenvInt("STARTPAGE_RATE_LIMIT_BURST", 60),
		RateLimitPerMin: getenvInt("STARTPAGE_RATE_LIMIT_PER_MIN", 120),

		// Redis settings
		RedisAddr:             getenv("STARTPAGE_REDIS_ADDR", ""),
		RedisUser:             getenv("STARTPAGE_REDIS_USERNAME", "default"),
		RedisPasswordRequired: mustBool("STARTPAGE_REDIS_PASSWORD_REQUIRED", false),
		RedisPassword:         getenv("STARTPAGE_REDIS_PASSWORD", ""),
		RedisDB:               getenvInt("STARTPAGE_REDIS_DB", 0),
		RedisDT:               mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:               mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:               mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:          mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:      mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:         getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout:   mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:    mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:    getenvInt("REDIS_WARN_THRESHOLD", 3),
	}

	if err := cfg.validate(); err != nil {
		panic(fmt.Sprintf("❌ FATAL: %v", err))
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		cfgCopy.RedisPassword = "***REDACTED***"
		if cfg.RedisUser != "" {
			cfgCopy.RedisUser = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

func (c *Config) validate() error {
	if c.RedisEnabled() && c.RedisPasswordRequired && c.RedisPassword == "" {
		return fmt.Errorf("STARTPAGE_REDIS_PASSWORD is required when STARTPAGE_REDIS_PASSWORD_REQUIRED=true")
	}
	if c.RateLimitBurst < 1 {
		return fmt.Errorf("STARTPAGE_RATE_LIMIT_BURST must be >= 1, got %d", c.RateLimitBurst)
	}
	if c.RateLimitPerMin < 1 {
		return fmt.Errorf("STARTPAGE_RATE_LIMIT_PER_MIN must be >= 1, got %d", c.RateLimitPerMin)
	}
	if c.RenderCacheTTL < 0 {
		return fmt.Errorf("STARTPAGE_RENDER_CACHE_TTL must be >= 0, got %v", c.RenderCacheTTL)
	}
	return nil
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
