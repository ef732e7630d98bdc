// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/campus-tui/internal/access"
	"github.com/jeranaias/campus-tui/internal/api"
	"github.com/jeranaias/campus-tui/internal/model"
	"github.com/jeranaias/campus-tui/internal/ui/components"
	"github.com/jeranaias/campus-tui/internal/ui/styles"
	"github.com/jeranaias/campus-tui/internal/util"
)

// =============================================================================
// MAIN SCREEN - Tabbed dashboard/resources/bookings/users/activity
// =============================================================================

func (a *App) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Logout):
		cmd := a.logoutCmd()
		a.teardownSession("Signed out.")
		return a, cmd

	case key.Matches(msg, a.keys.NextTab):
		a.nav.Next()
		return a, nil

	case key.Matches(msg, a.keys.PrevTab):
		a.nav.Prev()
		return a, nil

	case key.Matches(msg, a.keys.Refresh):
		a.loading = true
		return a, a.refreshCmd()

	case key.Matches(msg, a.keys.Up):
		a.moveCursor(-1)
		return a, nil

	case key.Matches(msg, a.keys.Down):
		a.moveCursor(1)
		return a, nil

	case key.Matches(msg, a.keys.New):
		if access.CanCreateBookings(a.identity) &&
			(a.nav.Selected() == access.NavResources || a.nav.Selected() == access.NavBookings) {
			if len(a.resources) == 0 {
				a.pushToast(components.NewToast(components.ToastKindWarning, "No resources to book"))
				return a, a.lastToastCmd()
			}
			a.initBookingForm()
			a.screen = ScreenNewBooking
		}
		return a, nil

	case key.Matches(msg, a.keys.Approve):
		return a.decideSelected(true)

	case key.Matches(msg, a.keys.Reject):
		return a.decideSelected(false)
	}

	return a, nil
}

// decideSelected approves or rejects the selected booking. The capability
// check runs here as well as server-side; the key simply does nothing for
// identities that cannot approve.
func (a *App) decideSelected(approve bool) (tea.Model, tea.Cmd) {
	if a.nav.Selected() != access.NavBookings || !a.canApprove {
		return a, nil
	}
	if len(a.bookings) == 0 {
		return a, nil
	}
	b := a.bookings[a.bookingCursor]
	if !b.IsPending() {
		a.pushToast(components.NewToast(components.ToastKindWarning, "Only pending bookings can be decided"))
		return a, a.lastToastCmd()
	}
	a.loading = true
	if approve {
		return a, a.approveCmd(b.ID)
	}
	return a, a.rejectCmd(b.ID)
}

func (a *App) moveCursor(delta int) {
	switch a.nav.Selected() {
	case access.NavResources:
		a.resourceCursor = clamp(a.resourceCursor+delta, len(a.resources))
	case access.NavBookings:
		a.bookingCursor = clamp(a.bookingCursor+delta, len(a.bookings))
	case access.NavUsers:
		a.userCursor = clamp(a.userCursor+delta, len(a.users))
	case access.NavActivity:
		a.activityCursor = clamp(a.activityCursor+delta, len(a.activity))
	}
}

// =============================================================================
// NEW BOOKING FORM
// =============================================================================

func (a *App) updateNewBooking(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Back):
		a.screen = ScreenMain
		a.formError = ""
		return a, nil

	case msg.String() == "tab", msg.String() == "down":
		a.bookingFocusField((a.bookingFocus + 1) % len(a.bookingInputs))
		return a, nil

	case msg.String() == "shift+tab", msg.String() == "up":
		a.bookingFocusField((a.bookingFocus - 1 + len(a.bookingInputs)) % len(a.bookingInputs))
		return a, nil

	case msg.String() == "ctrl+t":
		if len(a.resources) > 0 {
			a.bookingResource = (a.bookingResource + 1) % len(a.resources)
		}
		return a, nil

	case key.Matches(msg, a.keys.Submit):
		req := api.CreateBookingRequest{
			ResourceID:  a.resources[a.bookingResource].ID,
			BookingDate: strings.TrimSpace(a.bookingInputs[0].Value()),
			TimeSlot:    strings.TrimSpace(a.bookingInputs[1].Value()),
			Purpose:     strings.TrimSpace(a.bookingInputs[2].Value()),
		}
		if req.BookingDate == "" || req.TimeSlot == "" {
			a.formError = "Date and time slot are required"
			return a, nil
		}
		a.loading = true
		a.formError = ""
		return a, a.createBookingCmd(req)
	}

	var cmd tea.Cmd
	a.bookingInputs[a.bookingFocus], cmd = a.bookingInputs[a.bookingFocus].Update(msg)
	return a, cmd
}

func (a *App) bookingFocusField(i int) {
	for j := range a.bookingInputs {
		a.bookingInputs[j].Blur()
	}
	a.bookingInputs[i].Focus()
	a.bookingFocus = i
}

func (a *App) viewNewBooking() string {
	theme := a.theme
	var b strings.Builder

	b.WriteString(theme.HeaderTitle.Render("Request a Booking") + "\n\n")

	res := a.resources[a.bookingResource]
	b.WriteString(theme.FormLabel.Render("Resource") + "  " +
		theme.NavSelected.Render(" "+res.Name+" ") +
		theme.MutedStyle.Render("  C-t next resource") + "\n\n")

	labels := []string{"Date", "Time slot", "Purpose"}
	for i, in := range a.bookingInputs {
		b.WriteString(theme.FormLabel.Render(labels[i]) + "\n")
		box := theme.FormInput
		if i == a.bookingFocus {
			box = theme.FormInputFocus
		}
		b.WriteString(box.Render(in.View()) + "\n")
	}
	b.WriteString("\n")

	if a.formError != "" {
		b.WriteString(theme.FormError.Render(a.formError) + "\n\n")
	}
	if a.loading {
		b.WriteString(theme.MutedStyle.Render("Submitting...") + "\n\n")
	}

	b.WriteString(theme.MutedStyle.Render("Enter submit   Esc cancel"))
	return a.centerBox(b.String(), styles.VariantAccent(a.variant))
}

// =============================================================================
// TAB VIEWS
// =============================================================================

func (a *App) viewDashboard() string {
	theme := a.theme
	var b strings.Builder

	switch a.variant {
	case access.AdminView:
		b.WriteString(theme.HeaderTitle.Render("Welcome back, "+a.identity.Name) + "\n")
		b.WriteString(theme.MutedStyle.Render("Administrator dashboard") + "\n\n")
		b.WriteString(a.statCards([][2]string{
			{fmt.Sprintf("%d", a.stats.TotalBookings), "total bookings"},
			{fmt.Sprintf("%d", a.stats.PendingBookings), "pending approval"},
			{fmt.Sprintf("%d", a.stats.TotalResources), "resources"},
			{fmt.Sprintf("%d", a.stats.TotalUsers), "users"},
		}))
	case access.GeneralView:
		b.WriteString(theme.HeaderTitle.Render("Hello, "+a.identity.Name) + "\n")
		b.WriteString(theme.MutedStyle.Render(titleLabel(a.identity.Role)+" dashboard") + "\n\n")
		b.WriteString(a.statCards([][2]string{
			{fmt.Sprintf("%d", a.stats.TotalBookings), "my bookings"},
			{fmt.Sprintf("%d", a.stats.PendingBookings), "awaiting approval"},
			{fmt.Sprintf("%d", a.stats.ApprovedBookings), "approved"},
			{fmt.Sprintf("%d", a.stats.TotalResources), "resources"},
		}))
	default:
		b.WriteString(theme.HeaderTitle.Render("Campus Resource Booking") + "\n\n")
		b.WriteString(theme.MutedStyle.Render("Your account has no portal assigned. Contact an administrator.") + "\n\n")
		b.WriteString(a.statCards([][2]string{
			{fmt.Sprintf("%d", a.stats.TotalResources), "resources"},
			{fmt.Sprintf("%d", a.stats.TotalBookings), "bookings"},
		}))
	}

	if !a.fetchedAt.IsZero() {
		b.WriteString("\n" + theme.MutedStyle.Render("Last updated "+a.fetchedAt.Format("15:04:05")))
		if a.offline {
			b.WriteString(" " + theme.WarningStyle.Render("(cached)"))
		}
	}
	return b.String()
}

func (a *App) statCards(cards [][2]string) string {
	theme := a.theme
	var rendered []string
	for _, c := range cards {
		content := theme.StatValue.Render(c[0]) + "\n" + theme.StatLabel.Render(c[1])
		rendered = append(rendered, theme.StatCard.Render(content))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (a *App) viewResources() string {
	theme := a.theme
	if len(a.resources) == 0 {
		return theme.MutedStyle.Render("No resources found.")
	}

	var b strings.Builder
	header := util.PadWidth("Name", 26) + util.PadWidth("Type", 14) +
		util.PadWidth("Location", 18) + util.PadWidth("Status", 18)
	b.WriteString(theme.TableHeader.Render(header) + "\n")

	for i, r := range a.resources {
		display := model.ResourceDisplayStatus(r, a.bookings, a.identity.UserID)
		statusStyle := lipgloss.NewStyle().Foreground(styles.DisplayStatusColor(display))

		row := util.PadWidth(util.TruncateWidth(r.Name, 24), 26) +
			util.PadWidth(util.TruncateWidth(r.Type, 12), 14) +
			util.PadWidth(util.TruncateWidth(r.Location, 16), 18)
		line := row + statusStyle.Render(string(display))

		if i == a.resourceCursor {
			b.WriteString(theme.TableRowSelected.Render("> ") + line + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}

	if access.CanCreateBookings(a.identity) {
		b.WriteString("\n" + theme.MutedStyle.Render("n book selected resource"))
	}
	return b.String()
}

func (a *App) viewBookings() string {
	theme := a.theme
	if len(a.bookings) == 0 {
		return theme.MutedStyle.Render("No bookings yet.")
	}

	var b strings.Builder
	header := util.PadWidth("Resource", 24) + util.PadWidth("Date", 12) +
		util.PadWidth("Slot", 14)
	if a.canApprove {
		header += util.PadWidth("Requested by", 20)
	}
	header += "Status"
	b.WriteString(theme.TableHeader.Render(header) + "\n")

	for i, bk := range a.bookings {
		statusStyle := lipgloss.NewStyle().Foreground(styles.BookingStatusColor(bk.Status))

		name := bk.ResourceName
		if name == "" {
			name = fmt.Sprintf("#%d", bk.ResourceID)
		}
		row := util.PadWidth(util.TruncateWidth(name, 22), 24) +
			util.PadWidth(bk.Date, 12) +
			util.PadWidth(util.TruncateWidth(bk.TimeSlot, 12), 14)
		if a.canApprove {
			row += util.PadWidth(util.TruncateWidth(bk.UserName, 18), 20)
		}
		line := row + statusStyle.Render(model.BookingStatusLabel(bk.Status))

		if i == a.bookingCursor {
			b.WriteString(theme.TableRowSelected.Render("> ") + line + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}

	hints := "n new booking"
	if a.canApprove {
		hints = "a approve   x reject   " + hints
	}
	b.WriteString("\n" + theme.MutedStyle.Render(hints))
	return b.String()
}

func (a *App) viewUsers() string {
	theme := a.theme
	if len(a.users) == 0 {
		return theme.MutedStyle.Render("No users found.")
	}

	var b strings.Builder
	header := util.PadWidth("Name", 24) + util.PadWidth("Email", 30) +
		util.PadWidth("Role", 10) + "Status"
	b.WriteString(theme.TableHeader.Render(header) + "\n")

	for i, u := range a.users {
		status := u.Status
		if status == "" {
			status = model.UserActive
		}
		row := util.PadWidth(util.TruncateWidth(u.Name, 22), 24) +
			util.PadWidth(util.TruncateWidth(u.Email, 28), 30) +
			util.PadWidth(u.Role, 10) + status

		if i == a.userCursor {
			b.WriteString(theme.TableRowSelected.Render("> ") + row + "\n")
		} else {
			b.WriteString("  " + row + "\n")
		}
	}
	return b.String()
}

func (a *App) viewActivity() string {
	theme := a.theme
	if len(a.activity) == 0 {
		return theme.MutedStyle.Render("No recent activity.")
	}

	var b strings.Builder
	header := util.PadWidth("User", 24) + util.PadWidth("Role", 10) +
		util.PadWidth("Login", 18) + "Logout"
	b.WriteString(theme.TableHeader.Render(header) + "\n")

	for i, rec := range a.activity {
		logout := "still signed in"
		if rec.LogoutTime != nil {
			logout = rec.LogoutTime.Format("Jan 02 15:04")
		}
		row := util.PadWidth(util.TruncateWidth(rec.UserName, 22), 24) +
			util.PadWidth(rec.UserRole, 10) +
			util.PadWidth(rec.LoginTime.Format("Jan 02 15:04"), 18) +
			logout

		if i == a.activityCursor {
			b.WriteString(theme.TableRowSelected.Render("> ") + row + "\n")
		} else {
			b.WriteString("  " + row + "\n")
		}
	}
	return b.String()
}
