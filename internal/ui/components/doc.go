// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the campus TUI:
// the header, sidebar navigation, status bar with the session countdown,
// non-blocking toasts, and the session-expiry overlay.
package components
