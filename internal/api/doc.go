// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the campus booking backend.
//
// The backend exposes a token-authenticated REST API for authentication,
// resources, bookings, users, and the activity feed. This package implements
// the client for communicating with that API, including retry logic for
// transient errors, response size limits, and secure logging that never
// exposes tokens or credentials.
package api
