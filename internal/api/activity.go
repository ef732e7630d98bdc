// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"net/http"

	"github.com/jeranaias/campus-tui/internal/model"
)

// ListActivity fetches the recent activity feed, newest first.
// Restricted to staff and admins.
func (c *Client) ListActivity(ctx context.Context) ([]model.ActivityRecord, error) {
	if !c.IsAuthenticated() {
		return nil, ErrUnauthorized
	}
	var records []model.ActivityRecord
	if err := c.doWithRetry(ctx, http.MethodGet, "/activity/", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}
