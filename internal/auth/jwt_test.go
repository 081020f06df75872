package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndParseToken(t *testing.T) {
	issuer, err := NewTokenIssuer("secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenIssuer failed: %v", err)
	}

	token, err := issuer.GenerateToken("admin")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := issuer.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if claims.Subject != "admin" {
		t.Errorf("expected subject admin, got %s", claims.Subject)
	}
	if claims.ExpiresAt == nil {
		t.Error("expected an expiry")
	}
}

func TestParseToken_Rejected(t *testing.T) {
	issuer, _ := NewTokenIssuer("secret", time.Minute)
	other, _ := NewTokenIssuer("other-secret", time.Minute)

	foreign, _ := other.GenerateToken("admin")

	expired, _ := issuer.GenerateToken("admin")
	issuer.now = func() time.Time { return time.Now().Add(time.Hour) }

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Issuer: "inventory", Subject: "admin"})
	unsigned, _ := none.SignedString(jwt.UnsafeAllowNoneSignatureType)

	tests := []struct {
		name  string
		token string
	}{
		{name: "Wrong secret", token: foreign},
		{name: "Expired", token: expired},
		{name: "Unsigned", token: unsigned},
		{name: "Garbage", token: "not-a-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := issuer.ParseToken(tt.token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestNewTokenIssuer_EmptySecret(t *testing.T) {
	if _, err := NewTokenIssuer("", time.Hour); !errors.Is(err, ErrMissingSecret) {
		t.Errorf("expected ErrMissingSecret, got %v", err)
	}
}

func TestSubjectContext(t *testing.T) {
	ctx := WithSubject(context.Background(), "ops")
	if got := SubjectFromContext(ctx); got != "ops" {
		t.Errorf("expected subject ops, got %q", got)
	}
	if got := SubjectFromContext(context.Background()); got != "" {
		t.Errorf("expected empty subject, got %q", got)
	}
}
