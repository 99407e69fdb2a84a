package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/hishabkitab/backend/internal/infrastructure/auth"
	"github.com/hishabkitab/backend/internal/infrastructure/logger"
)

// ContextKey is the type for context keys
type ContextKey string

const (
	// OwnerContextKey is the context key for the resolved owner ID
	OwnerContextKey ContextKey = "owner"

	// OwnerHeader names the owner when authentication is disabled.
	OwnerHeader = "X-Owner-ID"
)

// OwnerConfig controls how the owner of a request is resolved.
type OwnerConfig struct {
	JWT            *auth.JWTManager
	AuthEnabled    bool
	DefaultOwnerID string
}

// Owner resolves the business owner of every request. With authentication
// enabled the owner is the user_id claim of a bearer token; otherwise it is
// taken from X-Owner-ID, falling back to the configured default.
func Owner(cfg OwnerConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var ownerID string

			if cfg.AuthEnabled {
				authHeader := r.Header.Get("Authorization")
				if authHeader == "" {
					writeError(w, http.StatusUnauthorized, "unauthorized", "missing authorization header")
					return
				}

				parts := strings.SplitN(authHeader, " ", 2)
				if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
					writeError(w, http.StatusUnauthorized, "unauthorized", "invalid authorization header format")
					return
				}

				claims, err := cfg.JWT.Verify(parts[1])
				if err != nil {
					writeError(w, http.StatusUnauthorized, "unauthorized", err.Error())
					return
				}
				ownerID = claims.UserID
			} else {
				ownerID = strings.TrimSpace(r.Header.Get(OwnerHeader))
				if ownerID == "" {
					ownerID = cfg.DefaultOwnerID
				}
			}

			ctx := context.WithValue(r.Context(), OwnerContextKey, ownerID)
			ctx = logger.WithOwner(ctx, ownerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OwnerFromContext returns the owner resolved by Owner.
func OwnerFromContext(ctx context.Context) (string, bool) {
	ownerID, ok := ctx.Value(OwnerContextKey).(string)
	return ownerID, ok && ownerID != ""
}
