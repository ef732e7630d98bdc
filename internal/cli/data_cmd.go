// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// data_cmd.go - listing commands: resources, bookings, users, activity.
//
// Each command fetches live data, falls back to the local cache when the
// backend is unreachable, and renders either a table or the JSON envelope.
package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jeranaias/campus-tui/internal/access"
	"github.com/jeranaias/campus-tui/internal/api"
	"github.com/jeranaias/campus-tui/internal/model"
	"github.com/jeranaias/campus-tui/internal/util"
)

// HandleResources lists resources with their derived availability.
func HandleResources(deps *Deps, args Args) error {
	state, err := deps.SignedIn()
	if err != nil {
		return commandError("resources", args, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	resources, cached, err := fetchResources(ctx, deps)
	if err != nil {
		return commandError("resources", args, err)
	}
	// Bookings feed the availability column; without them every resource
	// reads Available or Maintenance, which is still correct for the
	// resource's own status.
	bookings, _, _ := fetchBookings(ctx, deps)

	if args.JSON {
		return NewJSONResponse("resources", resources).Print()
	}

	if cached && !args.Quiet {
		Warnf("Backend unreachable: showing cached data")
	}
	if len(resources) == 0 {
		fmt.Println("No resources")
		return nil
	}

	fmt.Println(renderResourceTable(resources, bookings, state.Identity.UserID))
	return nil
}

// HandleBookings lists bookings visible to the signed-in user.
func HandleBookings(deps *Deps, args Args) error {
	state, err := deps.SignedIn()
	if err != nil {
		return commandError("bookings", args, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	bookings, cached, err := fetchBookings(ctx, deps)
	if err != nil {
		return commandError("bookings", args, err)
	}

	if NewArgParser(args.Raw).BoolFlag("pending") {
		kept := bookings[:0]
		for _, b := range bookings {
			if b.IsPending() {
				kept = append(kept, b)
			}
		}
		bookings = kept
	}

	if args.JSON {
		return NewJSONResponse("bookings", bookings).Print()
	}

	if cached && !args.Quiet {
		Warnf("Backend unreachable: showing cached data")
	}
	if len(bookings) == 0 {
		fmt.Println("No bookings")
		return nil
	}

	fmt.Println(renderBookingTable(bookings, access.CanApproveBookings(state.Identity)))
	return nil
}

// HandleUsers lists the user roster. Staff and admin only; the check runs
// client-side for a clear message and server-side for enforcement.
func HandleUsers(deps *Deps, args Args) error {
	state, err := deps.SignedIn()
	if err != nil {
		return commandError("users", args, err)
	}
	if !access.CanListUsers(state.Identity) {
		return commandError("users", args, api.ErrForbidden)
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	users, cached, err := fetchUsers(ctx, deps)
	if err != nil {
		return commandError("users", args, err)
	}

	if args.JSON {
		return NewJSONResponse("users", users).Print()
	}

	if cached && !args.Quiet {
		Warnf("Backend unreachable: showing cached data")
	}
	if len(users) == 0 {
		fmt.Println("No users")
		return nil
	}

	fmt.Println(renderUserTable(users))
	return nil
}

// HandleActivity shows the login/logout activity log. Staff and admin only.
func HandleActivity(deps *Deps, args Args) error {
	state, err := deps.SignedIn()
	if err != nil {
		return commandError("activity", args, err)
	}
	if !access.CanListUsers(state.Identity) {
		return commandError("activity", args, api.ErrForbidden)
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	records, cached, err := fetchActivity(ctx, deps)
	if err != nil {
		return commandError("activity", args, err)
	}

	if args.JSON {
		return NewJSONResponse("activity", records).Print()
	}

	if cached && !args.Quiet {
		Warnf("Backend unreachable: showing cached data")
	}
	if len(records) == 0 {
		fmt.Println("No activity")
		return nil
	}

	fmt.Println(renderActivityTable(records))
	return nil
}

// =============================================================================
// FETCH WITH CACHE FALLBACK
// =============================================================================

func fetchResources(ctx context.Context, deps *Deps) ([]model.Resource, bool, error) {
	resources, err := deps.Client.ListResources(ctx)
	if err == nil {
		if deps.Cache != nil {
			deps.Cache.PutResources(resources, time.Now())
		}
		return resources, false, nil
	}
	if errors.Is(err, api.ErrUnavailable) && deps.Cache != nil {
		if cached, _, cerr := deps.Cache.GetResources(); cerr == nil {
			return cached, true, nil
		}
	}
	return nil, false, err
}

func fetchBookings(ctx context.Context, deps *Deps) ([]model.Booking, bool, error) {
	bookings, err := deps.Client.ListBookings(ctx)
	if err == nil {
		if deps.Cache != nil {
			deps.Cache.PutBookings(bookings, time.Now())
		}
		return bookings, false, nil
	}
	if errors.Is(err, api.ErrUnavailable) && deps.Cache != nil {
		if cached, _, cerr := deps.Cache.GetBookings(); cerr == nil {
			return cached, true, nil
		}
	}
	return nil, false, err
}

func fetchUsers(ctx context.Context, deps *Deps) ([]model.User, bool, error) {
	users, err := deps.Client.ListUsers(ctx)
	if err == nil {
		if deps.Cache != nil {
			deps.Cache.PutUsers(users, time.Now())
		}
		return users, false, nil
	}
	if errors.Is(err, api.ErrUnavailable) && deps.Cache != nil {
		if cached, _, cerr := deps.Cache.GetUsers(); cerr == nil {
			return cached, true, nil
		}
	}
	return nil, false, err
}

func fetchActivity(ctx context.Context, deps *Deps) ([]model.ActivityRecord, bool, error) {
	records, err := deps.Client.ListActivity(ctx)
	if err == nil {
		if deps.Cache != nil {
			deps.Cache.PutActivity(records, time.Now())
		}
		return records, false, nil
	}
	if errors.Is(err, api.ErrUnavailable) && deps.Cache != nil {
		if cached, _, cerr := deps.Cache.GetActivity(); cerr == nil {
			return cached, true, nil
		}
	}
	return nil, false, err
}

// =============================================================================
// TABLE RENDERING
// =============================================================================

func renderResourceTable(resources []model.Resource, bookings []model.Booking, viewerID int) string {
	var b strings.Builder
	b.WriteString(tableRow([]string{"ID", "NAME", "TYPE", "LOCATION", "STATUS"}, resourceWidths))
	for _, r := range resources {
		status := string(model.ResourceDisplayStatus(r, bookings, viewerID))
		b.WriteString(tableRow([]string{
			util.IntToString(r.ID), r.Name, r.Type, r.Location, status,
		}, resourceWidths))
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderBookingTable(bookings []model.Booking, showRequester bool) string {
	widths := bookingWidths
	headers := []string{"ID", "RESOURCE", "DATE", "SLOT", "STATUS"}
	if showRequester {
		headers = append(headers, "REQUESTED BY")
		widths = bookingWidthsAdmin
	}

	var b strings.Builder
	b.WriteString(tableRow(headers, widths))
	for _, bk := range bookings {
		row := []string{
			util.IntToString(bk.ID), bk.ResourceName, bk.Date, bk.TimeSlot,
			model.BookingStatusLabel(bk.Status),
		}
		if showRequester {
			row = append(row, bk.UserName)
		}
		b.WriteString(tableRow(row, widths))
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderUserTable(users []model.User) string {
	var b strings.Builder
	b.WriteString(tableRow([]string{"ID", "NAME", "EMAIL", "ROLE", "STATUS"}, userWidths))
	for _, u := range users {
		b.WriteString(tableRow([]string{
			util.IntToString(u.ID), u.Name, u.Email, u.Role, u.Status,
		}, userWidths))
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderActivityTable(records []model.ActivityRecord) string {
	var b strings.Builder
	b.WriteString(tableRow([]string{"USER", "ROLE", "LOGIN", "LOGOUT"}, activityWidths))
	for _, r := range records {
		logout := "still signed in"
		if r.LogoutTime != nil {
			logout = r.LogoutTime.Local().Format("2006-01-02 15:04")
		}
		b.WriteString(tableRow([]string{
			r.UserName, r.UserRole,
			r.LoginTime.Local().Format("2006-01-02 15:04"), logout,
		}, activityWidths))
	}
	return strings.TrimRight(b.String(), "\n")
}

var (
	resourceWidths     = []int{5, 24, 12, 16, 17}
	bookingWidths      = []int{5, 24, 11, 12, 10}
	bookingWidthsAdmin = []int{5, 20, 11, 12, 10, 18}
	userWidths         = []int{5, 20, 28, 9, 9}
	activityWidths     = []int{20, 9, 17, 17}
)

// tableRow pads each cell to its column width, truncating overlong values.
func tableRow(cells []string, widths []int) string {
	var b strings.Builder
	for i, cell := range cells {
		w := widths[i]
		b.WriteString(util.PadWidth(util.TruncateWidth(cell, w), w))
		if i < len(cells)-1 {
			b.WriteString("  ")
		}
	}
	b.WriteString("\n")
	return b.String()
}

// commandError reports a handler error in the requested output mode.
func commandError(command string, args Args, err error) error {
	if args.JSON {
		return NewJSONErrorResponse(command, err).Print()
	}
	return err
}
