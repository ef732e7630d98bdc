// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/campus-tui/internal/session"
	"github.com/jeranaias/campus-tui/internal/ui/styles"
)

// =============================================================================
// SESSION OVERLAY - Countdown warning and expiry notice
// =============================================================================

// WarningThreshold is the remaining time at which the warning overlay
// becomes visible.
const WarningThreshold = 2 * time.Minute

// SessionOverlay displays a warning when the session is about to expire and
// a terminal notice once it has. The session clock owns the actual timing;
// this component only renders what it is told.
type SessionOverlay struct {
	visible   bool
	expired   bool
	remaining time.Duration

	width  int
	height int
	theme  *styles.Theme
}

// NewSessionOverlay creates a session overlay.
func NewSessionOverlay(theme *styles.Theme) SessionOverlay {
	return SessionOverlay{theme: theme}
}

// SetSize sets the overlay dimensions.
func (o *SessionOverlay) SetSize(width, height int) {
	o.width = width
	o.height = height
}

// UpdateRemaining feeds the overlay the current countdown. The warning shows
// itself inside the threshold and hides again if the session restarts with
// more time.
func (o *SessionOverlay) UpdateRemaining(remaining time.Duration) {
	o.remaining = remaining
	o.visible = remaining > 0 && remaining <= WarningThreshold
}

// ShowExpired switches the overlay to its terminal expired state.
func (o *SessionOverlay) ShowExpired() {
	o.visible = true
	o.expired = true
	o.remaining = 0
}

// Hide hides the overlay.
func (o *SessionOverlay) Hide() {
	o.visible = false
	o.expired = false
}

// IsVisible returns whether the overlay is currently visible.
func (o *SessionOverlay) IsVisible() bool {
	return o.visible
}

// IsExpired returns whether the session has expired.
func (o *SessionOverlay) IsExpired() bool {
	return o.expired
}

// View renders the overlay, or an empty string when hidden.
func (o SessionOverlay) View() string {
	if !o.visible {
		return ""
	}
	if o.expired {
		return o.viewExpired()
	}
	return o.viewWarning()
}

func (o SessionOverlay) boxWidth() int {
	maxWidth := o.width - 8
	if maxWidth < 40 {
		maxWidth = 40
	}
	if maxWidth > 60 {
		maxWidth = 60
	}
	return maxWidth
}

func (o SessionOverlay) place(box string) string {
	width := o.width
	if width == 0 {
		width = 60
	}
	height := o.height
	if height == 0 {
		height = 24
	}
	return lipgloss.Place(
		width, height,
		lipgloss.Center, lipgloss.Center,
		box,
		lipgloss.WithWhitespaceBackground(styles.SurfaceDim),
	)
}

// viewWarning renders the countdown warning before expiry.
func (o SessionOverlay) viewWarning() string {
	maxWidth := o.boxWidth()

	timeStr := session.FormatRemaining(o.remaining)

	var parts []string
	parts = append(parts, o.theme.OverlayTitle.Render(
		styles.StatusIndicators.Warning+" Session Ending Soon"))
	parts = append(parts, "")

	msgStyle := o.theme.OverlayMessage.Copy().
		Width(maxWidth - 4).
		Align(lipgloss.Center)
	parts = append(parts, msgStyle.Render(
		"Your session ends in "+o.theme.WarningStyle.Render(timeStr)))
	parts = append(parts, "")

	hintStyle := o.theme.MutedStyle.Copy().
		Italic(true).
		Align(lipgloss.Center)
	parts = append(parts, hintStyle.Render("Sign in again to start a fresh session"))

	content := lipgloss.JoinVertical(lipgloss.Center, parts...)
	box := o.theme.OverlayBox.Copy().Width(maxWidth).Render(content)
	return o.place(box)
}

// viewExpired renders the expired session notice.
func (o SessionOverlay) viewExpired() string {
	maxWidth := o.boxWidth()

	var parts []string
	titleStyle := lipgloss.NewStyle().
		Foreground(styles.Rose).
		Bold(true)
	parts = append(parts, titleStyle.Render(
		styles.StatusIndicators.Error+" Session Expired"))
	parts = append(parts, "")

	msgStyle := o.theme.OverlayMessage.Copy().
		Width(maxWidth - 4).
		Align(lipgloss.Center)
	parts = append(parts, msgStyle.Render("Your 15 minute session has ended."))
	parts = append(parts, "")

	exitStyle := o.theme.MutedStyle.Copy().Align(lipgloss.Center)
	parts = append(parts, exitStyle.Render("You have been signed out. Press any key to return to login."))

	content := lipgloss.JoinVertical(lipgloss.Center, parts...)
	box := o.theme.OverlayBox.Copy().
		BorderForeground(styles.Rose).
		Width(maxWidth).
		Render(content)
	return o.place(box)
}
