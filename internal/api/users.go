// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/jeranaias/campus-tui/internal/model"
)

// CreateUserRequest carries the fields for admin-side user creation.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// ListUsers fetches the user roster. Restricted to staff and admins; the
// backend answers 403 for students.
func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) {
	if !c.IsAuthenticated() {
		return nil, ErrUnauthorized
	}
	var users []model.User
	if err := c.doWithRetry(ctx, http.MethodGet, "/users/", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser creates a user account. Admin only.
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*model.User, error) {
	if !c.IsAuthenticated() {
		return nil, ErrUnauthorized
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: name, email, and password are required", ErrValidation)
	}
	req.Role = model.NormalizeRole(req.Role)

	var user model.User
	if err := c.do(ctx, http.MethodPost, "/users/", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
