// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jeranaias/campus-tui/internal/model"
)

// ListResources fetches all bookable resources.
func (c *Client) ListResources(ctx context.Context) ([]model.Resource, error) {
	if !c.IsAuthenticated() {
		return nil, ErrUnauthorized
	}
	var resources []model.Resource
	if err := c.doWithRetry(ctx, http.MethodGet, "/resources/", nil, &resources); err != nil {
		return nil, err
	}
	return resources, nil
}

// GetResource fetches a single resource by ID.
func (c *Client) GetResource(ctx context.Context, id int) (*model.Resource, error) {
	if !c.IsAuthenticated() {
		return nil, ErrUnauthorized
	}
	var resource model.Resource
	path := fmt.Sprintf("/resources/%d/", id)
	if err := c.doWithRetry(ctx, http.MethodGet, path, nil, &resource); err != nil {
		return nil, err
	}
	return &resource, nil
}
