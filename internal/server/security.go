package server

import (
	"net/http"
	"strings"
)

// SecurityConfig controls the hardening headers and CORS behaviour of the
// observability endpoints.
type SecurityConfig struct {
	// EnableCORS toggles cross-origin response headers.
	EnableCORS bool
	// AllowedOrigins lists origins granted access; "*" matches any.
	AllowedOrigins []string
	// AllowedMethods lists the HTTP methods advertised to browsers.
	AllowedMethods []string
}

// DefaultSecurityConfig permits read-only cross-origin access, which suits a
// metrics endpoint scraped by dashboards.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		EnableCORS:     true,
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
	}
}

// SecurityMiddleware sets hardening headers on every response, answers CORS
// preflight requests, and then delegates to next.
func SecurityMiddleware(config SecurityConfig, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-XSS-Protection", "1; mode=block")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		if config.EnableCORS {
			if origin := matchOrigin(config.AllowedOrigins, r.Header.Get("Origin")); origin != "" {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
				h.Set("Access-Control-Allow-Headers", "Content-Type")
				h.Set("Access-Control-Max-Age", "86400")
			}
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next(w, r)
	}
}

// matchOrigin returns the value for Access-Control-Allow-Origin, or empty
// when the request origin is not allowed. A wildcard entry matches even
// requests without an Origin header.
func matchOrigin(allowed []string, origin string) string {
	for _, a := range allowed {
		if a == "*" {
			return "*"
		}
		if origin != "" && a == origin {
			return origin
		}
	}
	return ""
}
