// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo holds display-oriented claims extracted from a session token.
// All fields are optional; opaque (non-JWT) tokens yield a zero TokenInfo.
type TokenInfo struct {
	Subject   string
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// HasExpiry reports whether the token carried an expiry claim.
func (t TokenInfo) HasExpiry() bool {
	return !t.ExpiresAt.IsZero()
}

// ExpiredAt reports whether the token's expiry claim has passed at now.
// Tokens without an expiry claim never report expired here; the session
// clock governs their lifetime instead.
func (t TokenInfo) ExpiredAt(now time.Time) bool {
	return t.HasExpiry() && now.After(t.ExpiresAt)
}

// ErrOpaqueToken indicates the token is not a JWT and carries no
// inspectable claims.
var ErrOpaqueToken = errors.New("token is opaque")

// InspectToken extracts claims from a JWT session token WITHOUT verifying
// its signature. The backend is the authority on token validity; this is
// for local display only (the status command and the status bar) and must
// never gate access to anything.
func InspectToken(token string) (TokenInfo, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return TokenInfo{}, ErrOpaqueToken
	}

	var info TokenInfo
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if email, ok := claims["email"].(string); ok {
		info.Email = email
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		info.IssuedAt = iat.Time
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	return info, nil
}
