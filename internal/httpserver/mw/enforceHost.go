package mw

import (
	"net/http"
	"strings"

	"github.com/khulnasoft/startpage/internal/logger"
	"github.com/khulnasoft/startpage/internal/utils"
)

// EnforceHost allows requests only if the Host header matches one of the allowed hosts.
// Patterns may carry a port ("10.0.0.5:64297") or a wildcard ("*.cyberpot.local").
// If allowedHosts is empty, it acts as a passthrough.
func EnforceHost(allowedHosts []string, log logger.Logger) func(http.Handler) http.Handler {
	if len(allowedHosts) == 0 {
		log.Debug("EnforceHost: empty allowedHosts, passthrough mode")
		return func(next http.Handler) http.Handler { return next }
	}

	patterns := make([]string, 0, len(allowedHosts))
	for _, h := range allowedHosts {
		patterns = append(patterns, strings.ToLower(h))
	}
	log.Debug("EnforceHost: initialized", logger.Strings("hosts", patterns))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			host := strings.ToLower(r.Host)

			for _, pattern := range patterns {
				if matchHost(host, pattern) {
					next.ServeHTTP(w, r)
					return
				}
			}

			log.Debugf("EnforceHost: Host %s REJECTED", host)
			w.WriteHeader(http.StatusForbidden)
		})
	}
}

// matchHost checks host against pattern. A pattern without a port matches
// the host on any port.
func matchHost(host, pattern string) bool {
	if host == pattern {
		return true
	}

	if !strings.Contains(strings.TrimPrefix(pattern, "*."), ":") {
		host = utils.ParseHostNoPort(host)
		if host == pattern {
			return true
		}
	}

	// Wildcard: *.example.com matches sub.example.com but not example.com
	if strings.HasPrefix(pattern, "*.") {
		return strings.HasSuffix(host, pattern[1:])
	}

	return false
}
