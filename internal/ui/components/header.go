// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/campus-tui/internal/access"
	"github.com/jeranaias/campus-tui/internal/ui/styles"
)

// =============================================================================
// HEADER COMPONENT - Title bar with portal branding
// =============================================================================

// Header is the title bar component. It shows the application name, the
// current screen, and which portal (role) is signed in.
type Header struct {
	Title   string // Main title (default: "campus")
	Section string // Current screen name
	Portal  string // Portal label (Student/Staff/Admin Portal)
	Width   int
	theme   *styles.Theme
}

// NewHeader creates a new Header component with default values.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Title: "campus",
		Width: 80,
		theme: theme,
	}
}

// SetWidth updates the available width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// SetSection updates the current screen name.
func (h *Header) SetSection(section string) {
	h.Section = section
}

// SetIdentity updates the portal label from the signed-in identity.
func (h *Header) SetIdentity(id access.Identity) {
	switch access.ResolveVariant(id) {
	case access.AdminView:
		h.Portal = "Admin Portal"
	case access.GeneralView:
		h.Portal = titleCase(id.Role) + " Portal"
	default:
		h.Portal = "Campus Portal"
	}
}

// View renders the header bar.
func (h *Header) View() string {
	title := h.theme.HeaderTitle.Render(h.Title)
	if h.Section != "" {
		title += h.theme.HeaderSubtitle.Render(" / " + h.Section)
	}

	right := ""
	if h.Portal != "" {
		right = h.theme.HeaderSubtitle.Render(h.Portal)
	}

	gap := h.Width - lipgloss.Width(title) - lipgloss.Width(right) - 4
	if gap < 1 {
		gap = 1
	}

	line := title + strings.Repeat(" ", gap) + right
	return h.theme.Header.Width(h.Width - 2).Render(line)
}

// titleCase renders a role constant like STUDENT as Student.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
