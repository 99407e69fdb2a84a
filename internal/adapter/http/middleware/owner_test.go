package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hishabkitab/backend/internal/domain"
	"github.com/hishabkitab/backend/internal/infrastructure/auth"
)

func captureOwner(t *testing.T, mw func(http.Handler) http.Handler, req *http.Request) (string, *httptest.ResponseRecorder) {
	t.Helper()

	var owner string
	rec := httptest.NewRecorder()
	mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		owner, _ = OwnerFromContext(r.Context())
	})).ServeHTTP(rec, req)

	return owner, rec
}

func TestOwner_AuthDisabled(t *testing.T) {
	mw := Owner(OwnerConfig{DefaultOwnerID: "default"})

	req := httptest.NewRequest(http.MethodGet, "/customers", nil)
	owner, _ := captureOwner(t, mw, req)
	assert.Equal(t, "default", owner)

	req = httptest.NewRequest(http.MethodGet, "/customers", nil)
	req.Header.Set(OwnerHeader, "shop-42")
	owner, _ = captureOwner(t, mw, req)
	assert.Equal(t, "shop-42", owner)
}

func TestOwner_AuthEnabled(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	token, err := jwtManager.Generate(domain.Owner{ID: "shop-1", Email: "a@b.c"})
	require.NoError(t, err)

	mw := Owner(OwnerConfig{JWT: jwtManager, AuthEnabled: true, DefaultOwnerID: "default"})

	t.Run("valid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/customers", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set(OwnerHeader, "someone-else")

		owner, rec := captureOwner(t, mw, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "shop-1", owner)
	})

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic abc"},
		{"bad token", "Bearer not-a-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/customers", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			owner, rec := captureOwner(t, mw, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Empty(t, owner)
			assert.Contains(t, rec.Body.String(), `"error":"unauthorized"`)
		})
	}
}
