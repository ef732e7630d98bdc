// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package access

import "testing"

func TestResolveVariant_Precedence(t *testing.T) {
	tests := []struct {
		name string
		id   Identity
		want Variant
	}{
		{"staff role with admin email is AdminView", Identity{Role: "STAFF", Email: "admin123@gmail.com"}, AdminView},
		{"plain staff is GeneralView", Identity{Role: "STAFF", Email: "x@y.com"}, GeneralView},
		{"admin role with any email is AdminView", Identity{Role: "ADMIN", Email: "anything"}, AdminView},
		{"unknown role is FallbackView", Identity{Role: "GUEST", Email: "x@y.com"}, FallbackView},
		{"student is GeneralView", Identity{Role: "STUDENT", Email: "s@campus.edu"}, GeneralView},
		{"role comparison is case-insensitive", Identity{Role: "staff", Email: "x@y.com"}, GeneralView},
		{"admin email match is exact, not folded", Identity{Role: "STAFF", Email: "Admin123@Gmail.com"}, GeneralView},
		{"empty identity is FallbackView", Identity{}, FallbackView},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveVariant(tt.id); got != tt.want {
				t.Errorf("ResolveVariant(%+v) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestResolveVariant_Deterministic(t *testing.T) {
	id := Identity{Role: "staff", Email: "staff@campus.edu"}
	first := ResolveVariant(id)
	for i := 0; i < 100; i++ {
		if got := ResolveVariant(id); got != first {
			t.Fatalf("resolution changed between calls: %v then %v", first, got)
		}
	}
}

func TestIsSystemAdmin_SharedPredicate(t *testing.T) {
	if !IsSystemAdmin(Identity{Role: "admin"}) {
		t.Error("admin role must satisfy the predicate")
	}
	if !IsSystemAdmin(Identity{Role: "STAFF", Email: SystemAdminEmail}) {
		t.Error("distinguished email must satisfy the predicate")
	}
	if IsSystemAdmin(Identity{Role: "STAFF", Email: "staff@campus.edu"}) {
		t.Error("ordinary staff must not satisfy the predicate")
	}
	if IsSystemAdmin(Identity{Role: "STUDENT", Email: "ADMIN123@GMAIL.COM"}) {
		t.Error("a case variant of the distinguished email must not satisfy the predicate")
	}
}

func TestSessionTimed(t *testing.T) {
	tests := []struct {
		id   Identity
		want bool
	}{
		{Identity{Role: "STUDENT"}, true},
		{Identity{Role: "staff", Email: "staff@campus.edu"}, true},
		{Identity{Role: "ADMIN"}, false},
		{Identity{Role: "STAFF", Email: SystemAdminEmail}, false}, // admin by email is exempt too
		{Identity{Role: "GUEST"}, false},
	}
	for _, tt := range tests {
		if got := SessionTimed(tt.id); got != tt.want {
			t.Errorf("SessionTimed(%+v) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestVisibleNav_GatesUsersEntry(t *testing.T) {
	student := Identity{Role: "STUDENT", Email: "s@campus.edu"}
	for _, item := range VisibleNav(student) {
		if item == NavUsers || item == NavActivity {
			t.Errorf("student nav must not include %v", item)
		}
	}

	staff := Identity{Role: "STAFF", Email: "staff@campus.edu"}
	found := false
	for _, item := range VisibleNav(staff) {
		if item == NavUsers {
			found = true
		}
	}
	if !found {
		t.Error("staff nav must include Users")
	}

	// Dashboard, Resources, Bookings visible to everyone.
	fallback := Identity{Role: "GUEST"}
	nav := VisibleNav(fallback)
	want := []NavItem{NavDashboard, NavResources, NavBookings}
	if len(nav) != len(want) {
		t.Fatalf("fallback nav = %v, want %v", nav, want)
	}
	for i := range want {
		if nav[i] != want[i] {
			t.Errorf("fallback nav[%d] = %v, want %v", i, nav[i], want[i])
		}
	}
}

func TestApprovalIsAdminOnly(t *testing.T) {
	staff := Identity{Role: "staff", Email: "staff@campus.edu"}
	if CanApproveBookings(staff) {
		t.Error("GeneralView must exclude booking approval")
	}
	if !CanCreateBookings(staff) {
		t.Error("GeneralView must allow booking creation")
	}

	admin := Identity{Role: "STAFF", Email: SystemAdminEmail}
	if !CanApproveBookings(admin) {
		t.Error("AdminView must allow booking approval")
	}

	guest := Identity{Role: "GUEST"}
	if CanCreateBookings(guest) || CanApproveBookings(guest) {
		t.Error("FallbackView is read-only")
	}
}
