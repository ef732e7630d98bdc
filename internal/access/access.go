// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package access resolves an authenticated identity to a view variant and a
// visibility set.
package access

import (
	"strings"

	"github.com/jeranaias/campus-tui/internal/model"
)

// SystemAdminEmail is the distinguished operator account. Its role attribute
// in the backend is indistinguishable from ordinary staff, so admin
// resolution falls back to an exact email match as a secondary signal.
const SystemAdminEmail = "admin123@gmail.com"

// =============================================================================
// IDENTITY
// =============================================================================

// Identity is the authenticated user's privilege-relevant attributes.
// It is read-only within a rendering cycle; the auth layer owns it.
type Identity struct {
	UserID int    `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// NormalizedRole returns the identity's role upper-cased and trimmed.
func (id Identity) NormalizedRole() string {
	return model.NormalizeRole(id.Role)
}

// IsSystemAdmin is the shared predicate for "is this the system
// administrator". The check is role OR distinguished email; every caller
// that needs admin privilege consults this one function. The email match
// is exact: a case variant of the address carries no privilege.
func IsSystemAdmin(id Identity) bool {
	if id.NormalizedRole() == model.RoleAdmin {
		return true
	}
	return strings.TrimSpace(id.Email) == SystemAdminEmail
}

// SessionTimed reports whether this identity's session is subject to the
// inactivity countdown. Admin identities are exempt; only students and
// staff are timed. The asymmetry is inherited from the source system and
// preserved deliberately.
func SessionTimed(id Identity) bool {
	if IsSystemAdmin(id) {
		return false
	}
	role := id.NormalizedRole()
	return role == model.RoleStudent || role == model.RoleStaff
}

// =============================================================================
// VARIANT
// =============================================================================

// Variant is one of the three role-driven view/permission profiles.
type Variant int

const (
	// FallbackView is the read-only profile for unrecognized roles.
	FallbackView Variant = iota
	// GeneralView is the student/staff profile: booking creation, no approval.
	GeneralView
	// AdminView is the system administrator profile: full visibility plus
	// approve/reject affordances.
	AdminView
)

// String returns the display name of the variant.
func (v Variant) String() string {
	switch v {
	case AdminView:
		return "Admin"
	case GeneralView:
		return "General"
	default:
		return "Fallback"
	}
}

// ResolveVariant maps an identity to its view variant. Precedence is fixed,
// first match wins, role comparison is case-insensitive:
//
//  1. system admin (role ADMIN or distinguished email) -> AdminView
//  2. role STUDENT or STAFF                            -> GeneralView
//  3. anything else                                    -> FallbackView
func ResolveVariant(id Identity) Variant {
	if IsSystemAdmin(id) {
		return AdminView
	}
	switch id.NormalizedRole() {
	case model.RoleStudent, model.RoleStaff:
		return GeneralView
	}
	return FallbackView
}

// =============================================================================
// VISIBILITY SET
// =============================================================================

// NavItem is a navigation entry in the sidebar.
type NavItem int

const (
	NavDashboard NavItem = iota
	NavResources
	NavBookings
	NavUsers
	NavActivity
)

// String returns the display label of the navigation entry.
func (n NavItem) String() string {
	switch n {
	case NavDashboard:
		return "Dashboard"
	case NavResources:
		return "Resources"
	case NavBookings:
		return "Bookings"
	case NavUsers:
		return "Users"
	case NavActivity:
		return "Activity"
	default:
		return "Unknown"
	}
}

// navVisibility gates navigation entries per identity. Users (and the
// activity roster behind it) are staff/admin only; everything else is
// visible to every signed-in identity.
func navVisible(id Identity, item NavItem) bool {
	switch item {
	case NavUsers, NavActivity:
		if IsSystemAdmin(id) {
			return true
		}
		return id.NormalizedRole() == model.RoleStaff
	default:
		return true
	}
}

// VisibleNav returns the navigation entries this identity may see, in
// display order. Identical identities always yield identical slices.
func VisibleNav(id Identity) []NavItem {
	all := []NavItem{NavDashboard, NavResources, NavBookings, NavUsers, NavActivity}
	items := make([]NavItem, 0, len(all))
	for _, item := range all {
		if navVisible(id, item) {
			items = append(items, item)
		}
	}
	return items
}

// CanApproveBookings reports whether this identity may approve or reject
// pending bookings. Approval is an AdminView-only affordance.
func CanApproveBookings(id Identity) bool {
	return ResolveVariant(id) == AdminView
}

// CanCreateBookings reports whether this identity may create bookings.
// The fallback profile is read-only.
func CanCreateBookings(id Identity) bool {
	switch ResolveVariant(id) {
	case AdminView, GeneralView:
		return true
	}
	return false
}

// CanListUsers reports whether this identity may view the user roster.
func CanListUsers(id Identity) bool {
	return navVisible(id, NavUsers)
}
