// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jeranaias/campus-tui/internal/access"
)

// LoginRequest carries credentials for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the successful login payload: a session token plus the
// authenticated user's identity.
type LoginResponse struct {
	Token string          `json:"token"`
	User  access.Identity `json:"user"`
}

// SignupRequest carries the fields for account registration.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// ForgotPasswordRequest carries the email for a password reset request.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// Login authenticates with the backend and installs the returned session
// token on the client.
//
// A 401 response maps to ErrInvalidCredentials so callers can distinguish
// bad credentials from an unreachable backend.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	// Client-side throttle on credential submissions.
	if err := c.loginLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	var resp LoginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login/", LoginRequest{
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if resp.Token == "" {
		return nil, fmt.Errorf("login succeeded but no token returned")
	}

	c.SetToken(resp.Token)
	return &resp, nil
}

// Signup registers a new account. The backend assigns STUDENT or STAFF per
// the requested role; admin accounts are provisioned server-side only.
func (c *Client) Signup(ctx context.Context, req SignupRequest) error {
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return fmt.Errorf("%w: name, email, and password are required", ErrValidation)
	}
	return c.do(ctx, http.MethodPost, "/auth/signup/", req, nil)
}

// ForgotPassword requests a password reset email for the given address.
// The backend responds identically whether or not the address exists.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	return c.do(ctx, http.MethodPost, "/auth/forgot-password/", ForgotPasswordRequest{Email: email}, nil)
}

// Logout invalidates the session token server-side and clears it from the
// client. A token the server no longer recognizes is treated as success;
// the local session is gone either way.
func (c *Client) Logout(ctx context.Context) error {
	err := c.RevokeToken(ctx, c.token)
	c.SetToken("")
	return err
}

// RevokeToken invalidates a specific session token server-side without
// touching the client's own state. Teardown paths that clear the local
// session first snapshot the token and revoke it through here afterwards.
func (c *Client) RevokeToken(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	scoped := *c
	scoped.token = token
	err := scoped.do(ctx, http.MethodPost, "/auth/logout/", nil, nil)
	if err != nil && !errors.Is(err, ErrUnauthorized) {
		return err
	}
	return nil
}
