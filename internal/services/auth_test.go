package services

import (
	"testing"
)

func TestGenerateRefreshToken(t *testing.T) {
	token, hash, err := generateRefreshToken()
	if err != nil {
		t.Fatalf("generateRefreshToken returned error: %v", err)
	}

	if len(token) != 64 {
		t.Errorf("token length = %d, expected 64 hex chars", len(token))
	}
	if len(hash) != 64 {
		t.Errorf("hash length = %d, expected 64 hex chars", len(hash))
	}
	if token == hash {
		t.Error("token and hash must differ")
	}
	if hashRefreshToken(token) != hash {
		t.Error("hash should match hashRefreshToken(token)")
	}
}

func TestGenerateRefreshToken_Unique(t *testing.T) {
	a, _, err := generateRefreshToken()
	if err != nil {
		t.Fatal(err)
	}
	b, _, err := generateRefreshToken()
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("two generated tokens should not collide")
	}
}

func TestHashRefreshToken_Deterministic(t *testing.T) {
	if hashRefreshToken("abc") != hashRefreshToken("abc") {
		t.Error("hash must be deterministic")
	}
	if hashRefreshToken("abc") == hashRefreshToken("abd") {
		t.Error("different tokens should hash differently")
	}
}

func TestLoginRequest_DefaultAuthType(t *testing.T) {
	req := LoginRequest{
		Username: "webmaster",
		Password: "pass",
	}

	if req.AuthType != "" {
		t.Errorf("AuthType should be empty by default, got %q", req.AuthType)
	}
}
