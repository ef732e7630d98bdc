// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package access resolves an authenticated identity to a view variant and a
// visibility set.
//
// # Key Types
//
//   - Identity: the authenticated user's role and email
//   - Variant: one of AdminView, GeneralView, FallbackView
//   - NavItem: a navigation entry gated per variant
//
// # Resolution
//
// Resolution is a pure function with fixed precedence: the system
// administrator (by role or by the distinguished admin email) gets AdminView,
// students and staff get GeneralView, anything else falls back to a
// read-only view. IsSystemAdmin is the single shared predicate for the
// dual role-or-email admin check; call sites must not re-derive it.
package access
