package token

import (
	"brand_site/internal/model"
	"testing"
	"time"
)

func TestAccessTokenCarriesUserID(t *testing.T) {
	secret := []byte("secret")
	tok, err := GenerateAccessToken(&model.User{ID: "8d9f6c1e-0000-4000-8000-000000000001"}, secret, time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := VerifyToken(tok, secret)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Subject != "8d9f6c1e-0000-4000-8000-000000000001" {
		t.Fatalf("expected subject to be user id, got %q", claims.Subject)
	}
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	tok, err := GenerateAccessToken(&model.User{ID: "u1"}, []byte("a"), time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := VerifyToken(tok, []byte("b")); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	tok, err := GenerateAccessToken(&model.User{ID: "u1"}, []byte("a"), -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := VerifyToken(tok, []byte("a")); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestRefreshTokenHashRoundTrip(t *testing.T) {
	rt, err := GenerateRefreshToken()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	hash := HashRefreshToken(rt)
	if !VerifyRefreshToken(rt, hash) {
		t.Fatal("expected refresh token to match its hash")
	}
	if VerifyRefreshToken(rt+"x", hash) {
		t.Fatal("expected tampered refresh token to be rejected")
	}
}
