package rest

import (
	"testing"

	"github.com/google/uuid"
	"github.com/pooller/pooller-api/config"
)

func newTestAPI() *API {
	return &API{
		Config: &config.Config{
			JwtSecret:     "test-access-secret",
			JwtExpires:    "15m",
			RefreshSecret: "test-refresh-secret",
			RefreshExpiry: "168h",
			SignInURL:     "/signin",
		},
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	api := newTestAPI()
	userID := uuid.New().String()

	token, expiresAt, err := api.createToken(userID)
	if err != nil {
		t.Fatalf("createToken: %v", err)
	}
	if expiresAt.IsZero() {
		t.Fatal("createToken returned zero expiry")
	}

	claims, err := api.verifyToken(token, false)
	if err != nil {
		t.Fatalf("verifyToken: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("claims.UserID = %q; want %q", claims.UserID, userID)
	}
	if claims.Type != "access" {
		t.Errorf("claims.Type = %q; want access", claims.Type)
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	api := newTestAPI()
	userID := uuid.New().String()

	token, _, err := api.createRefreshToken(userID)
	if err != nil {
		t.Fatalf("createRefreshToken: %v", err)
	}

	claims, err := api.verifyToken(token, true)
	if err != nil {
		t.Fatalf("verifyToken: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("claims.UserID = %q; want %q", claims.UserID, userID)
	}
	if claims.Type != "refresh" {
		t.Errorf("claims.Type = %q; want refresh", claims.Type)
	}
}

func TestVerifyTokenRejectsWrongType(t *testing.T) {
	api := newTestAPI()
	userID := uuid.New().String()

	refresh, _, err := api.createRefreshToken(userID)
	if err != nil {
		t.Fatalf("createRefreshToken: %v", err)
	}

	// A refresh token must never pass as an access token. The secrets differ,
	// so the signature check fails before the typ claim is even consulted.
	if _, err := api.verifyToken(refresh, false); err == nil {
		t.Error("refresh token accepted as access token")
	}

	access, _, err := api.createToken(userID)
	if err != nil {
		t.Fatalf("createToken: %v", err)
	}
	if _, err := api.verifyToken(access, true); err == nil {
		t.Error("access token accepted as refresh token")
	}
}

func TestVerifyTokenExpired(t *testing.T) {
	api := newTestAPI()
	api.Config.JwtExpires = "-1h"

	token, _, err := api.createToken(uuid.New().String())
	if err != nil {
		t.Fatalf("createToken: %v", err)
	}

	_, err = api.verifyToken(token, false)
	if err == nil {
		t.Fatal("expired token accepted")
	}
	if err.Error() != "token expired" {
		t.Errorf("err = %q; want %q", err.Error(), "token expired")
	}
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	api := newTestAPI()

	token, _, err := api.createToken(uuid.New().String())
	if err != nil {
		t.Fatalf("createToken: %v", err)
	}

	api.Config.JwtSecret = "another-secret"
	if _, err := api.verifyToken(token, false); err == nil {
		t.Error("token signed with a different secret accepted")
	}
}

func TestVerifyTokenGarbage(t *testing.T) {
	api := newTestAPI()
	if _, err := api.verifyToken("not-a-jwt", false); err == nil {
		t.Error("malformed token accepted")
	}
}
