package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hishabkitab/backend/internal/domain"
)

func TestJWTManagerGenerateAndVerify(t *testing.T) {
	t.Parallel()

	manager := NewJWTManager("super-secret", time.Minute)
	owner := domain.Owner{ID: "owner-123", Email: "shop@example.com"}

	token, err := manager.Generate(owner)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	claims, err := manager.Verify(token)
	if err != nil {
		t.Fatalf("expected token to verify, got %v", err)
	}

	if claims.Owner() != owner {
		t.Fatalf("expected claims to match owner, got %+v", claims)
	}
	if claims.Subject != owner.ID {
		t.Fatalf("expected subject %q, got %q", owner.ID, claims.Subject)
	}
}

func TestJWTManagerGenerateRequiresOwner(t *testing.T) {
	t.Parallel()

	_, err := NewJWTManager("secret", time.Minute).Generate(domain.Owner{})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestJWTManagerVerifyErrors(t *testing.T) {
	t.Parallel()

	manager := NewJWTManager("secret", time.Minute)
	owner := domain.Owner{ID: "owner-1"}

	expired := NewJWTManager("secret", time.Minute)
	expired.now = func() time.Time { return time.Now().Add(-time.Hour) }
	expiredToken, err := expired.Generate(owner)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	otherKey, err := NewJWTManager("other-secret", time.Minute).Generate(owner)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "owner-1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("failed to sign none token: %v", err)
	}

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"expired", expiredToken, domain.ErrExpiredToken},
		{"wrong key", otherKey, domain.ErrInvalidToken},
		{"unsigned", noneToken, domain.ErrInvalidToken},
		{"garbage", "not-a-token", domain.ErrInvalidToken},
	}

	for _, tt := range tests {
		if _, err := manager.Verify(tt.token); !errors.Is(err, tt.wantErr) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.wantErr, err)
		}
	}
}
