// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func makeJWT(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return signed
}

func TestInspectTokenClaims(t *testing.T) {
	issued := time.Now().Add(-time.Minute).Truncate(time.Second)
	expires := time.Now().Add(time.Hour).Truncate(time.Second)

	tok := makeJWT(t, jwt.MapClaims{
		"sub":   "42",
		"email": "staff@campus.edu",
		"iat":   issued.Unix(),
		"exp":   expires.Unix(),
	})

	info, err := InspectToken(tok)
	if err != nil {
		t.Fatalf("InspectToken failed: %v", err)
	}
	if info.Subject != "42" {
		t.Errorf("unexpected subject: %s", info.Subject)
	}
	if info.Email != "staff@campus.edu" {
		t.Errorf("unexpected email: %s", info.Email)
	}
	if !info.ExpiresAt.Equal(expires) {
		t.Errorf("unexpected expiry: %v", info.ExpiresAt)
	}
	if !info.HasExpiry() {
		t.Error("expected HasExpiry to be true")
	}
	if info.ExpiredAt(time.Now()) {
		t.Error("token should not be expired yet")
	}
	if !info.ExpiredAt(expires.Add(time.Second)) {
		t.Error("token should be expired after its exp claim")
	}
}

func TestInspectTokenOpaque(t *testing.T) {
	_, err := InspectToken("9f86d081884c7d659a2feaa0c55ad015")
	if !errors.Is(err, ErrOpaqueToken) {
		t.Errorf("expected ErrOpaqueToken, got %v", err)
	}
}

func TestInspectTokenNoExpiry(t *testing.T) {
	tok := makeJWT(t, jwt.MapClaims{"sub": "7"})
	info, err := InspectToken(tok)
	if err != nil {
		t.Fatal(err)
	}
	if info.HasExpiry() {
		t.Error("expected no expiry claim")
	}
	if info.ExpiredAt(time.Now().Add(24 * time.Hour)) {
		t.Error("tokens without exp never report expired")
	}
}
