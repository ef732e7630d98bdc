// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"
	"time"

	"github.com/jeranaias/campus-tui/internal/access"
	"github.com/jeranaias/campus-tui/internal/ui/styles"
)

func testTheme() *styles.Theme {
	return styles.NewTheme()
}

func studentIdentity() access.Identity {
	return access.Identity{UserID: 1, Name: "Sam Student", Email: "student@campus.edu", Role: "STUDENT"}
}

func staffIdentity() access.Identity {
	return access.Identity{UserID: 2, Name: "Pat Staff", Email: "staff@campus.edu", Role: "STAFF"}
}

func adminIdentity() access.Identity {
	return access.Identity{UserID: 3, Name: "Ada Admin", Email: "admin123@gmail.com", Role: "ADMIN"}
}

// =============================================================================
// NAV
// =============================================================================

func TestNavVisibilityByRole(t *testing.T) {
	studentNav := NewNav(testTheme(), studentIdentity())
	for _, item := range studentNav.Items() {
		if item == access.NavUsers || item == access.NavActivity {
			t.Errorf("student nav must not contain %s", item)
		}
	}

	staffNav := NewNav(testTheme(), staffIdentity())
	if !staffNav.Select(access.NavUsers) {
		t.Error("staff should be able to select Users")
	}

	adminNav := NewNav(testTheme(), adminIdentity())
	if !adminNav.Select(access.NavActivity) {
		t.Error("admin should be able to select Activity")
	}
}

func TestNavSelectHiddenItemIgnored(t *testing.T) {
	nav := NewNav(testTheme(), studentIdentity())
	before := nav.Selected()
	if nav.Select(access.NavUsers) {
		t.Error("selecting a hidden item must fail")
	}
	if nav.Selected() != before {
		t.Error("failed select must not change the selection")
	}
}

func TestNavWrapAround(t *testing.T) {
	nav := NewNav(testTheme(), studentIdentity())
	n := len(nav.Items())
	for i := 0; i < n; i++ {
		nav.Next()
	}
	if nav.Selected() != nav.Items()[0] {
		t.Error("Next should wrap back to the first item")
	}
	nav.Prev()
	if nav.Selected() != nav.Items()[n-1] {
		t.Error("Prev should wrap to the last item")
	}
}

// =============================================================================
// STATUS BAR
// =============================================================================

func TestStatusBarShowsCountdownForTimedRoles(t *testing.T) {
	bar := NewStatusBar(testTheme())
	bar.SetWidth(100)
	bar.SetIdentity(studentIdentity())
	bar.SetRemaining(9*time.Minute + 5*time.Second)

	out := bar.View()
	if !strings.Contains(out, "9:05") {
		t.Errorf("expected countdown 9:05 in status bar, got %q", out)
	}
	if !strings.Contains(out, "Sam Student") {
		t.Errorf("expected identity in status bar, got %q", out)
	}
}

func TestStatusBarHidesCountdownForAdmin(t *testing.T) {
	bar := NewStatusBar(testTheme())
	bar.SetWidth(100)
	bar.SetIdentity(adminIdentity())
	bar.SetRemaining(5 * time.Minute)

	if strings.Contains(bar.View(), "session") {
		t.Error("admin sessions are untimed; no countdown should render")
	}
}

func TestStatusBarSignedOut(t *testing.T) {
	bar := NewStatusBar(testTheme())
	bar.SetWidth(80)
	if !strings.Contains(bar.View(), "not signed in") {
		t.Error("signed-out bar should say so")
	}
}

func TestStatusBarOfflineIndicator(t *testing.T) {
	bar := NewStatusBar(testTheme())
	bar.SetWidth(100)
	bar.SetIdentity(staffIdentity())
	bar.SetOffline(true)
	if !strings.Contains(bar.View(), "offline") {
		t.Error("offline indicator missing")
	}
}

// =============================================================================
// SESSION OVERLAY
// =============================================================================

func TestOverlayHiddenOutsideThreshold(t *testing.T) {
	o := NewSessionOverlay(testTheme())
	o.UpdateRemaining(10 * time.Minute)
	if o.IsVisible() {
		t.Error("overlay should stay hidden with 10 minutes left")
	}
	if o.View() != "" {
		t.Error("hidden overlay should render nothing")
	}
}

func TestOverlayWarnsInsideThreshold(t *testing.T) {
	o := NewSessionOverlay(testTheme())
	o.SetSize(80, 24)
	o.UpdateRemaining(90 * time.Second)
	if !o.IsVisible() {
		t.Fatal("overlay should be visible inside the warning threshold")
	}
	if o.IsExpired() {
		t.Error("overlay should not be expired yet")
	}
	if !strings.Contains(o.View(), "1:30") {
		t.Error("warning should show the M:SS countdown")
	}
}

func TestOverlayExpired(t *testing.T) {
	o := NewSessionOverlay(testTheme())
	o.SetSize(80, 24)
	o.ShowExpired()
	if !o.IsVisible() || !o.IsExpired() {
		t.Fatal("expired overlay should be visible and expired")
	}
	if !strings.Contains(o.View(), "Session Expired") {
		t.Error("expired overlay should carry the expiry title")
	}
}

func TestOverlayHidesWhenSessionRestarts(t *testing.T) {
	o := NewSessionOverlay(testTheme())
	o.UpdateRemaining(time.Minute)
	if !o.IsVisible() {
		t.Fatal("precondition: warning visible")
	}
	o.UpdateRemaining(15 * time.Minute)
	if o.IsVisible() {
		t.Error("a fresh session should hide the warning")
	}
}

// =============================================================================
// HEADER + TOASTS
// =============================================================================

func TestHeaderPortalLabels(t *testing.T) {
	h := NewHeader(testTheme())
	h.SetWidth(80)

	h.SetIdentity(adminIdentity())
	if !strings.Contains(h.View(), "Admin Portal") {
		t.Error("admin identity should show Admin Portal")
	}

	h.SetIdentity(studentIdentity())
	if !strings.Contains(h.View(), "Student Portal") {
		t.Error("student identity should show Student Portal")
	}

	h.SetIdentity(access.Identity{Role: "VISITOR"})
	if !strings.Contains(h.View(), "Campus Portal") {
		t.Error("unknown role should fall back to Campus Portal")
	}
}

func TestToastKindsAndIDs(t *testing.T) {
	a := NewToast(ToastKindError, "boom")
	b := NewToast(ToastKindSuccess, "saved")
	if a.ID == b.ID {
		t.Error("toast IDs must be unique")
	}
	if a.Duration != ErrorToastDuration {
		t.Error("error toasts use the longer duration")
	}
	if b.Duration != DefaultToastDuration {
		t.Error("success toasts use the default duration")
	}
	if !strings.Contains(a.View(testTheme()), "boom") {
		t.Error("toast view should carry its message")
	}
}
