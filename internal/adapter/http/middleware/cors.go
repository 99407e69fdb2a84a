package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// NewCORS allows the mobile and web clients to call the API from the given origins.
func NewCORS(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", IdempotencyKeyHeader, OwnerHeader},
		ExposedHeaders: []string{"X-Idempotency-Replay", "X-Request-Id"},
		MaxAge:         300,
	})

	return c.Handler
}
