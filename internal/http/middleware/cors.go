package middleware

import (
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/cors"
)

const corsMaxAge = 5 * time.Minute

// CORS allows the configured origins. A "*" entry allows any origin and turns
// credentials off; browsers reject credentialed replies to a wildcard.
func CORS(allowedOrigins []string, allowCredentials bool) func(http.Handler) http.Handler {
	wildcard := slices.Contains(allowedOrigins, "*")

	return cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		// Accept-Language picks the label language of /feed and auth errors
		AllowedHeaders: []string{"Authorization", "Content-Type", "Accept-Language"},
		// Retry-After comes with 429 from the auth rate limit
		ExposedHeaders:   []string{"X-Request-Id", "Retry-After"},
		AllowCredentials: allowCredentials && !wildcard,
		MaxAge:           int(corsMaxAge / time.Second),
	})
}
