package util

import (
	"testing"
	"time"
)

func TestAdminJWTRoundTrip(t *testing.T) {
	token, err := GenerateAdminJWT("secret-1", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ParseAdminJWT(token, "secret-1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Role != RoleAdmin {
		t.Errorf("role = %q, want %q", claims.Role, RoleAdmin)
	}
	if claims.Subject != "admin" {
		t.Errorf("subject = %q, want admin", claims.Subject)
	}
}

func TestAdminJWTWrongSecret(t *testing.T) {
	token, err := GenerateAdminJWT("secret-1", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ParseAdminJWT(token, "secret-2"); err == nil {
		t.Fatal("token parsed with wrong secret")
	}
}

func TestAdminJWTExpired(t *testing.T) {
	token, err := GenerateAdminJWT("secret-1", -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ParseAdminJWT(token, "secret-1"); err == nil {
		t.Fatal("expired token accepted")
	}
}
