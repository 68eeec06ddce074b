package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/contractdocs/docservice/internal/auth"
)

func TestTokenIssueAndVerify(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", 30*time.Minute)

	token, err := tokens.Issue("alice")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	subject, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if subject != "alice" {
		t.Errorf("Expected subject 'alice', got %q", subject)
	}
}

func TestTokenExpiry(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Millisecond)

	token, err := tokens.Issue("alice")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	if _, err := tokens.Verify(token); !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("Expected ErrInvalidToken for an expired token, got %v", err)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := auth.NewTokenService("secret-one", 30*time.Minute)
	verifier := auth.NewTokenService("secret-two", 30*time.Minute)

	token, err := issuer.Issue("alice")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("Expected ErrInvalidToken for a foreign signature, got %v", err)
	}
}

func TestTokenMalformed(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", 30*time.Minute)

	for _, bad := range []string{"", "garbage", "a.b.c"} {
		if _, err := tokens.Verify(bad); !errors.Is(err, auth.ErrInvalidToken) {
			t.Errorf("Expected ErrInvalidToken for %q, got %v", bad, err)
		}
	}
}

func TestTokenDefaultTTL(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", 0)
	if tokens.TTL() != 30*time.Minute {
		t.Errorf("Expected 30m default TTL, got %v", tokens.TTL())
	}
}
