package utils

import (
	"testing"
	"time"
)

func TestGenerateAndExtractToken(t *testing.T) {
	token, err := GenerateToken("user-123", "amina@example.com", "patient", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	sub, role, err := ExtractClaimsFromToken(token)
	if err != nil {
		t.Fatalf("ExtractClaimsFromToken failed: %v", err)
	}
	if sub != "user-123" {
		t.Errorf("sub = %q, want user-123", sub)
	}
	if role != "patient" {
		t.Errorf("role = %q, want patient", role)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-123", "amina@example.com", "patient", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, _, err := ExtractClaimsFromToken(token); err == nil {
		t.Error("expected error for expired token, got nil")
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	if _, _, err := ExtractClaimsFromToken("not.a.token"); err == nil {
		t.Error("expected error for malformed token, got nil")
	}
}
