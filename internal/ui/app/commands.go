// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/campus-tui/internal/api"
	"github.com/jeranaias/campus-tui/internal/model"
)

// =============================================================================
// ASYNC MESSAGES
// =============================================================================

// loginResultMsg carries the outcome of a login attempt.
type loginResultMsg struct {
	resp *api.LoginResponse
	err  error
}

// signupResultMsg carries the outcome of a signup attempt.
type signupResultMsg struct {
	err error
}

// forgotResultMsg carries the outcome of a password reset request.
type forgotResultMsg struct {
	err error
}

// dataLoadedMsg carries a refreshed snapshot of the collections a screen
// needs. Collections an identity cannot fetch stay nil. fromCache marks a
// snapshot served by the local cache because the backend was unreachable.
type dataLoadedMsg struct {
	resources []model.Resource
	bookings  []model.Booking
	users     []model.User
	activity  []model.ActivityRecord
	fetchedAt time.Time
	fromCache bool
	err       error
}

// bookingActionMsg carries the outcome of an approve/reject/create.
type bookingActionMsg struct {
	booking *model.Booking
	action  string
	err     error
}

// logoutDoneMsg signals the logout call finished (best-effort).
type logoutDoneMsg struct{}

// =============================================================================
// COMMANDS
// =============================================================================

const requestTimeout = 15 * time.Second

func (a *App) loginCmd(email, password string) tea.Cmd {
	client := a.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		resp, err := client.Login(ctx, email, password)
		return loginResultMsg{resp: resp, err: err}
	}
}

func (a *App) signupCmd(req api.SignupRequest) tea.Cmd {
	client := a.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return signupResultMsg{err: client.Signup(ctx, req)}
	}
}

func (a *App) forgotCmd(email string) tea.Cmd {
	client := a.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return forgotResultMsg{err: client.ForgotPassword(ctx, email)}
	}
}

func (a *App) logoutCmd() tea.Cmd {
	// The token is snapshotted here: teardown clears the client before
	// the command runs, so the revocation carries its own copy.
	return a.revokeTokenCmd(a.client.Token())
}

// revokeTokenCmd revokes a session token server-side. Best-effort: the
// local session is torn down regardless of the outcome.
func (a *App) revokeTokenCmd(token string) tea.Cmd {
	if token == "" {
		return nil
	}
	client := a.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		_ = client.RevokeToken(ctx, token)
		return logoutDoneMsg{}
	}
}

// refreshCmd fetches every collection the identity can see. On a connection
// failure it falls back to the local cache when one is configured.
func (a *App) refreshCmd() tea.Cmd {
	client := a.client
	cache := a.cache
	canRoster := a.canListUsers
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var out dataLoadedMsg
		out.fetchedAt = time.Now()

		var err error
		out.resources, err = client.ListResources(ctx)
		if err == nil {
			out.bookings, err = client.ListBookings(ctx)
		}
		if err == nil && canRoster {
			out.users, err = client.ListUsers(ctx)
			if err == nil {
				out.activity, err = client.ListActivity(ctx)
			}
		}

		if err == nil {
			if cache != nil {
				cache.PutResources(out.resources, out.fetchedAt)
				cache.PutBookings(out.bookings, out.fetchedAt)
				if canRoster {
					cache.PutUsers(out.users, out.fetchedAt)
					cache.PutActivity(out.activity, out.fetchedAt)
				}
			}
			return out
		}

		if errors.Is(err, api.ErrUnavailable) && cache != nil {
			cached := dataLoadedMsg{fromCache: true}
			var at time.Time
			cached.resources, at, _ = cache.GetResources()
			cached.fetchedAt = at
			cached.bookings, _, _ = cache.GetBookings()
			if canRoster {
				cached.users, _, _ = cache.GetUsers()
				cached.activity, _, _ = cache.GetActivity()
			}
			if cached.resources != nil || cached.bookings != nil {
				return cached
			}
		}

		return dataLoadedMsg{err: err}
	}
}

func (a *App) approveCmd(bookingID int) tea.Cmd {
	client := a.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		b, err := client.ApproveBooking(ctx, bookingID)
		return bookingActionMsg{booking: b, action: "approved", err: err}
	}
}

func (a *App) rejectCmd(bookingID int) tea.Cmd {
	client := a.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		b, err := client.RejectBooking(ctx, bookingID)
		return bookingActionMsg{booking: b, action: "rejected", err: err}
	}
}

func (a *App) createBookingCmd(req api.CreateBookingRequest) tea.Cmd {
	client := a.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		b, err := client.CreateBooking(ctx, req)
		return bookingActionMsg{booking: b, action: "requested", err: err}
	}
}
