package middleware

import (
	"net/http"
	"net/url"
	"strings"
)

// HSTS adds a Strict-Transport-Security header. Only applied when the
// process terminates TLS itself.
func HSTS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		next.ServeHTTP(w, r)
	})
}

// IsHostAllowed reports whether a request host matches the configured allow
// list. Ports are ignored unless the allow list entry carries one. An empty
// allow list permits everything.
func IsHostAllowed(host string, allowedHosts []string) bool {
	if len(allowedHosts) == 0 {
		return true
	}

	hostname := host
	if idx := strings.Index(host, ":"); idx != -1 {
		hostname = host[:idx]
	}
	hostname = strings.ToLower(hostname)

	for _, allowed := range allowedHosts {
		allowed = strings.ToLower(strings.TrimSpace(allowed))
		if allowed == "" {
			continue
		}
		if allowed == strings.ToLower(host) || allowed == hostname {
			return true
		}
	}
	return false
}

// IsOriginAllowed reports whether a CORS origin's host is in the allow list.
func IsOriginAllowed(origin string, allowedHosts []string) bool {
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return false
	}
	return IsHostAllowed(u.Host, allowedHosts)
}
