// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/campus-tui/internal/access"
	"github.com/jeranaias/campus-tui/internal/api"
	"github.com/jeranaias/campus-tui/internal/model"
	"github.com/jeranaias/campus-tui/internal/session"
	"github.com/jeranaias/campus-tui/internal/ui/components"
)

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.header.SetWidth(msg.Width)
		a.status.SetWidth(msg.Width)
		a.overlay.SetSize(msg.Width, msg.Height)
		return a, nil

	case session.TickMsg:
		return a.handleSessionTick(msg)

	case tea.KeyMsg:
		return a.handleKey(msg)

	case loginResultMsg:
		return a.handleLoginResult(msg)

	case signupResultMsg:
		a.loading = false
		if msg.err != nil {
			a.formError = friendlyError(msg.err)
			return a, nil
		}
		a.notice = "Account created. Sign in to continue."
		a.formError = ""
		a.screen = ScreenLogin
		a.resetLoginForm()
		return a, nil

	case forgotResultMsg:
		a.loading = false
		if msg.err != nil {
			a.formError = friendlyError(msg.err)
			return a, nil
		}
		a.forgotSent = true
		a.formError = ""
		return a, nil

	case dataLoadedMsg:
		return a.handleDataLoaded(msg)

	case bookingActionMsg:
		return a.handleBookingAction(msg)

	case logoutDoneMsg:
		return a, nil

	case components.ToastExpiredMsg:
		a.dropToast(msg.ID)
		return a, nil
	}

	return a, a.updateFocusedInput(msg)
}

// =============================================================================
// SESSION CLOCK
// =============================================================================

func (a *App) handleSessionTick(msg session.TickMsg) (tea.Model, tea.Cmd) {
	if !a.clock.Current(msg) {
		// Stale tick from a stopped or restarted session.
		return a, nil
	}

	now := time.Now()
	remaining := a.clock.RemainingAt(now)
	a.status.SetRemaining(remaining)
	a.overlay.UpdateRemaining(remaining)

	if a.clock.ExpiredAt(now) && a.clock.FireExpiry(now) {
		cmd := a.logoutCmd()
		a.teardownSession("Your 15 minute session ended. Please sign in again.")
		a.overlay.ShowExpired()
		return a, cmd
	}

	return a, a.clock.TickCmd()
}

// =============================================================================
// KEY DISPATCH
// =============================================================================

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.Quit) {
		return a, tea.Quit
	}

	// The expired overlay swallows the next key and returns to login.
	if a.overlay.IsVisible() && a.overlay.IsExpired() {
		a.overlay.Hide()
		return a, nil
	}

	switch a.screen {
	case ScreenLogin:
		return a.updateLogin(msg)
	case ScreenSignup:
		return a.updateSignup(msg)
	case ScreenForgot:
		return a.updateForgot(msg)
	case ScreenNewBooking:
		return a.updateNewBooking(msg)
	default:
		return a.updateMain(msg)
	}
}

// updateFocusedInput forwards non-key messages (cursor blinks) to whichever
// text input currently has focus.
func (a *App) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.screen {
	case ScreenLogin:
		a.loginInputs[a.loginFocus], cmd = a.loginInputs[a.loginFocus].Update(msg)
	case ScreenSignup:
		a.signupInputs[a.signupFocus], cmd = a.signupInputs[a.signupFocus].Update(msg)
	case ScreenForgot:
		a.forgotInput, cmd = a.forgotInput.Update(msg)
	case ScreenNewBooking:
		if len(a.bookingInputs) > 0 {
			a.bookingInputs[a.bookingFocus], cmd = a.bookingInputs[a.bookingFocus].Update(msg)
		}
	}
	return cmd
}

// =============================================================================
// RESULT HANDLERS
// =============================================================================

func (a *App) handleLoginResult(msg loginResultMsg) (tea.Model, tea.Cmd) {
	a.loading = false
	if msg.err != nil {
		a.formError = friendlyError(msg.err)
		return a, nil
	}

	id := msg.resp.User
	a.installIdentity(id)
	a.formError = ""
	a.notice = ""
	a.screen = ScreenMain
	a.loading = true

	var cmds []tea.Cmd
	cmds = append(cmds, a.refreshCmd())

	state := session.State{
		Token:    msg.resp.Token,
		Identity: id,
	}
	if access.SessionTimed(id) {
		now := time.Now()
		a.clock.Start(now)
		state.SetStartEpochMillis(a.clock.StartEpochMillis())
		a.status.SetRemaining(a.clock.RemainingAt(now))
		cmds = append(cmds, a.clock.TickCmd())
	} else {
		a.clock.Stop()
	}
	if a.store != nil {
		if err := a.store.Save(state); err != nil {
			a.pushToast(components.NewToast(components.ToastKindWarning,
				"Could not persist session: "+err.Error()))
			cmds = append(cmds, a.lastToastCmd())
		}
	}

	return a, tea.Batch(cmds...)
}

func (a *App) handleDataLoaded(msg dataLoadedMsg) (tea.Model, tea.Cmd) {
	a.loading = false
	if msg.err != nil {
		if errors.Is(msg.err, api.ErrUnauthorized) {
			a.teardownSession("Your session is no longer valid. Please sign in again.")
			return a, nil
		}
		a.pushToast(components.NewToast(components.ToastKindError, friendlyError(msg.err)))
		return a, a.lastToastCmd()
	}

	a.resources = msg.resources
	a.bookings = msg.bookings
	a.users = msg.users
	a.activity = msg.activity
	a.fetchedAt = msg.fetchedAt
	a.offline = msg.fromCache
	a.status.SetOffline(msg.fromCache)
	a.stats = model.ComputeStats(a.bookings, a.resources, a.users)

	a.clampCursors()

	var cmds []tea.Cmd
	if a.screen == ScreenNewBooking && len(a.resources) == 0 {
		// A refresh can land while the booking form is open. With no
		// resources left there is nothing to book against.
		a.screen = ScreenMain
		a.formError = ""
		a.pushToast(components.NewToast(components.ToastKindWarning, "No resources to book"))
		cmds = append(cmds, a.lastToastCmd())
	}
	if msg.fromCache {
		a.pushToast(components.NewToast(components.ToastKindWarning,
			"Backend unreachable: showing cached data"))
		cmds = append(cmds, a.lastToastCmd())
	}
	return a, tea.Batch(cmds...)
}

func (a *App) handleBookingAction(msg bookingActionMsg) (tea.Model, tea.Cmd) {
	a.loading = false
	if msg.err != nil {
		if errors.Is(msg.err, api.ErrUnauthorized) {
			a.teardownSession("Your session is no longer valid. Please sign in again.")
			return a, nil
		}
		a.pushToast(components.NewToast(components.ToastKindError, friendlyError(msg.err)))
		return a, a.lastToastCmd()
	}

	a.pushToast(components.NewToast(components.ToastKindSuccess, "Booking "+msg.action))
	if a.screen == ScreenNewBooking {
		a.screen = ScreenMain
	}
	a.loading = true
	return a, tea.Batch(a.lastToastCmd(), a.refreshCmd())
}

// =============================================================================
// HELPERS
// =============================================================================

func (a *App) pushToast(t components.Toast) {
	a.toasts = append(a.toasts, t)
	if len(a.toasts) > 3 {
		a.toasts = a.toasts[len(a.toasts)-3:]
	}
}

func (a *App) lastToastCmd() tea.Cmd {
	if len(a.toasts) == 0 {
		return nil
	}
	return a.toasts[len(a.toasts)-1].DismissCmd()
}

func (a *App) dropToast(id int64) {
	kept := a.toasts[:0]
	for _, t := range a.toasts {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	a.toasts = kept
}

func (a *App) clampCursors() {
	a.resourceCursor = clamp(a.resourceCursor, len(a.resources))
	a.bookingCursor = clamp(a.bookingCursor, len(a.bookings))
	a.userCursor = clamp(a.userCursor, len(a.users))
	a.activityCursor = clamp(a.activityCursor, len(a.activity))
	a.bookingResource = clamp(a.bookingResource, len(a.resources))
}

func clamp(cursor, n int) int {
	if n == 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	if cursor < 0 {
		return 0
	}
	return cursor
}

// friendlyError maps API sentinel errors to user-facing text.
func friendlyError(err error) string {
	switch {
	case errors.Is(err, api.ErrInvalidCredentials):
		return "Invalid email or password"
	case errors.Is(err, api.ErrForbidden):
		return "You do not have permission to do that"
	case errors.Is(err, api.ErrInvalidTransition):
		return "Only pending bookings can be decided"
	case errors.Is(err, api.ErrValidation):
		return "Please check the highlighted fields"
	case errors.Is(err, api.ErrUnavailable):
		return "Cannot reach the booking backend"
	case errors.Is(err, api.ErrRateLimited):
		return "Too many requests: slow down a little"
	default:
		return err.Error()
	}
}
