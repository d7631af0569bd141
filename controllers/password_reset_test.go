package controllers

import (
	"errors"
	"testing"
	"time"
)

func TestResetTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := createResetToken("user@example.com", time.Now())
	if err != nil {
		t.Fatalf("createResetToken failed: %v", err)
	}

	email, err := parseResetToken(token)
	if err != nil {
		t.Fatalf("parseResetToken failed: %v", err)
	}
	if email != "user@example.com" {
		t.Errorf("email = %q, want user@example.com", email)
	}
}

func TestResetTokenExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	issued := time.Now().Add(-2 * resetTokenTTL)
	token, err := createResetToken("user@example.com", issued)
	if err != nil {
		t.Fatalf("createResetToken failed: %v", err)
	}

	if _, err := parseResetToken(token); !errors.Is(err, errInvalidResetToken) {
		t.Fatalf("expired token: got %v, want errInvalidResetToken", err)
	}
}

func TestResetTokenMalformed(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := parseResetToken(token); !errors.Is(err, errInvalidResetToken) {
			t.Errorf("token %q: got %v, want errInvalidResetToken", token, err)
		}
	}
}

func TestResetTokenWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := createResetToken("user@example.com", time.Now())
	if err != nil {
		t.Fatalf("createResetToken failed: %v", err)
	}

	t.Setenv("JWT_SECRET", "other-secret")
	if _, err := parseResetToken(token); !errors.Is(err, errInvalidResetToken) {
		t.Fatalf("token signed with other secret: got %v, want errInvalidResetToken", err)
	}
}
