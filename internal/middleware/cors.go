package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// NewCORSHandler returns a middleware allowing cross-origin requests from the
// given origins (scheme + host, no trailing slash). The method list covers
// the whole trip API surface, including PATCH for day updates; preflight
// results are cached for five minutes to cut down on OPTIONS traffic from
// the web client.
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         300,
	})
	return func(next http.Handler) http.Handler {
		return c.Handler(next)
	}
}
