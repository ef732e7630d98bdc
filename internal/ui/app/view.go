// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/campus-tui/internal/access"
	"github.com/jeranaias/campus-tui/internal/ui/components"
)

// View implements tea.Model.
func (a *App) View() string {
	// The session overlay replaces the screen while visible: the warning
	// during the final countdown, the expiry notice after teardown.
	if a.overlay.IsVisible() {
		return a.overlay.View()
	}

	switch a.screen {
	case ScreenLogin:
		return a.viewLogin()
	case ScreenSignup:
		return a.viewSignup()
	case ScreenForgot:
		return a.viewForgot()
	case ScreenNewBooking:
		return a.viewNewBooking()
	default:
		return a.viewMain()
	}
}

func (a *App) viewMain() string {
	a.header.SetSection(a.nav.Selected().String())

	var body string
	switch a.nav.Selected() {
	case access.NavResources:
		body = a.viewResources()
	case access.NavBookings:
		body = a.viewBookings()
	case access.NavUsers:
		body = a.viewUsers()
	case access.NavActivity:
		body = a.viewActivity()
	default:
		body = a.viewDashboard()
	}

	if a.loading {
		body += "\n\n" + a.theme.MutedStyle.Render("Loading...")
	}

	a.status.SetShortcuts(a.mainShortcuts())

	sections := []string{
		a.header.View(),
		a.theme.Container.Render(a.nav.View()),
		a.theme.Container.Render(body),
	}

	if toastLine := a.viewToasts(); toastLine != "" {
		sections = append(sections, a.theme.Container.Render(toastLine))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	// Pin the status bar to the bottom edge.
	gap := a.height - lipgloss.Height(content) - 1
	if gap > 0 {
		content += strings.Repeat("\n", gap)
	}
	return content + "\n" + a.status.View()
}

func (a *App) mainShortcuts() []components.Shortcut {
	shortcuts := []components.Shortcut{
		{Key: "Tab", Desc: "switch"},
		{Key: "r", Desc: "refresh"},
	}
	if a.nav.Selected() == access.NavBookings && a.canApprove {
		shortcuts = append(shortcuts, components.Shortcut{Key: "a/x", Desc: "decide"})
	}
	shortcuts = append(shortcuts, components.Shortcut{Key: "C-l", Desc: "sign out"})
	return shortcuts
}

func (a *App) viewToasts() string {
	if len(a.toasts) == 0 {
		return ""
	}
	var lines []string
	for _, t := range a.toasts {
		lines = append(lines, t.View(a.theme))
	}
	return strings.Join(lines, "\n")
}
