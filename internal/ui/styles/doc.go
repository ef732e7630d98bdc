// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the campus TUI.
//
// All colors use Lip Gloss AdaptiveColor so screens render correctly on both
// light and dark terminals. The Theme type bundles the styles the screens
// share: header, sidebar navigation, stat cards, tables, forms, the status
// bar, and the session-expiry overlay. Each role carries an accent color so
// the login portal and header make the active portal obvious at a glance.
package styles
