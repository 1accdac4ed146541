package utils

import (
	"strings"
	"testing"
	"time"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	tok, err := NewAccessToken("secret", "amy@example.com", "USER", 15)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	if tok.Token == "" {
		t.Fatal("empty token string")
	}
	if !tok.Exp.After(time.Now()) {
		t.Fatalf("expiry not in the future: %v", tok.Exp)
	}

	email, role, err := ParseAccessToken("secret", tok.Token)
	if err != nil {
		t.Fatalf("ParseAccessToken: %v", err)
	}
	if email != "amy@example.com" || role != "USER" {
		t.Fatalf("got claims %q/%q", email, role)
	}
}

func TestParseAccessTokenWrongSecret(t *testing.T) {
	tok, err := NewAccessToken("secret-a", "amy@example.com", "USER", 15)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	if _, _, err := ParseAccessToken("secret-b", tok.Token); err != ErrInvalidToken {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
}

func TestParseAccessTokenExpired(t *testing.T) {
	tok, err := NewAccessToken("secret", "amy@example.com", "USER", -1)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	if _, _, err := ParseAccessToken("secret", tok.Token); err != ErrInvalidToken {
		t.Fatalf("want ErrInvalidToken for expired token, got %v", err)
	}
}

func TestParseAccessTokenTampered(t *testing.T) {
	tok, err := NewAccessToken("secret", "amy@example.com", "USER", 15)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	parts := strings.Split(tok.Token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %d parts", len(parts))
	}
	tampered := parts[0] + "." + parts[1] + "." + "AAAA"
	if _, _, err := ParseAccessToken("secret", tampered); err != ErrInvalidToken {
		t.Fatalf("want ErrInvalidToken for tampered token, got %v", err)
	}
}

func TestParseAccessTokenGarbage(t *testing.T) {
	if _, _, err := ParseAccessToken("secret", "not-a-jwt"); err != ErrInvalidToken {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
}
