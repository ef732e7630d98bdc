// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app provides the Bubble Tea application for the campus TUI.
//
// The application is a small state machine over screens: the login portal
// (with signup and forgot-password), and the main view whose tabs are the
// dashboard, resources, bookings, users, and activity screens. Which tabs
// exist and which actions are offered follows the access package; the
// fifteen minute session clock runs underneath every screen for timed roles
// and forces a return to login when it expires.
package app
