// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/campus-tui/internal/api"
	"github.com/jeranaias/campus-tui/internal/model"
	"github.com/jeranaias/campus-tui/internal/ui/styles"
)

// =============================================================================
// LOGIN SCREEN
// =============================================================================

func (a *App) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "tab", msg.String() == "down":
		a.focusLoginField((a.loginFocus + 1) % len(a.loginInputs))
		return a, nil

	case msg.String() == "shift+tab", msg.String() == "up":
		a.focusLoginField((a.loginFocus - 1 + len(a.loginInputs)) % len(a.loginInputs))
		return a, nil

	case msg.String() == "ctrl+t":
		a.loginTab = (a.loginTab + 1) % len(loginRoles)
		return a, nil

	case key.Matches(msg, a.keys.Demo):
		creds := demoCredentials[loginRoles[a.loginTab]]
		a.loginInputs[0].SetValue(creds[0])
		a.loginInputs[1].SetValue(creds[1])
		return a, nil

	case key.Matches(msg, a.keys.Submit):
		email := strings.TrimSpace(a.loginInputs[0].Value())
		password := a.loginInputs[1].Value()
		if email == "" || password == "" {
			a.formError = "Email and password are required"
			return a, nil
		}
		a.loading = true
		a.formError = ""
		return a, a.loginCmd(email, password)

	case msg.String() == "ctrl+s":
		a.screen = ScreenSignup
		a.formError = ""
		a.signupFocusField(0)
		return a, nil

	case msg.String() == "ctrl+f":
		a.screen = ScreenForgot
		a.formError = ""
		a.forgotSent = false
		a.forgotInput.SetValue("")
		a.forgotInput.Focus()
		return a, nil
	}

	var cmd tea.Cmd
	a.loginInputs[a.loginFocus], cmd = a.loginInputs[a.loginFocus].Update(msg)
	return a, cmd
}

func (a *App) focusLoginField(i int) {
	for j := range a.loginInputs {
		a.loginInputs[j].Blur()
	}
	a.loginInputs[i].Focus()
	a.loginFocus = i
}

func (a *App) viewLogin() string {
	accent := styles.RoleAccent(loginRoles[a.loginTab])
	theme := a.baseTheme.WithAccent(accent)

	var b strings.Builder

	title := lipgloss.NewStyle().Bold(true).Foreground(accent).
		Render("Campus Resource Booking")
	b.WriteString(title + "\n\n")

	// Role tabs
	var tabs []string
	for i, role := range loginRoles {
		label := " " + titleLabel(role) + " "
		if i == a.loginTab {
			tabs = append(tabs, theme.NavSelected.Render(label))
		} else {
			tabs = append(tabs, theme.NavItem.Render(label))
		}
	}
	b.WriteString(strings.Join(tabs, " ") + "\n\n")

	// Fields
	labels := []string{"Email", "Password"}
	for i, in := range a.loginInputs {
		b.WriteString(theme.FormLabel.Render(labels[i]) + "\n")
		box := theme.FormInput
		if i == a.loginFocus {
			box = theme.FormInputFocus
		}
		b.WriteString(box.Render(in.View()) + "\n")
	}
	b.WriteString("\n")

	if a.formError != "" {
		b.WriteString(theme.FormError.Render(a.formError) + "\n\n")
	} else if a.notice != "" {
		b.WriteString(theme.InfoStyle.Render(a.notice) + "\n\n")
	}

	if a.loading {
		b.WriteString(theme.MutedStyle.Render("Signing in...") + "\n\n")
	}

	hints := theme.MutedStyle.Render(
		"Enter sign in   C-t switch portal   C-d demo credentials   C-s sign up   C-f forgot password   C-c quit")
	b.WriteString(hints)

	return a.centerBox(b.String(), accent)
}

// =============================================================================
// SIGNUP SCREEN
// =============================================================================

func (a *App) updateSignup(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Back):
		a.screen = ScreenLogin
		a.formError = ""
		return a, nil

	case msg.String() == "tab", msg.String() == "down":
		a.signupFocusField((a.signupFocus + 1) % len(a.signupInputs))
		return a, nil

	case msg.String() == "shift+tab", msg.String() == "up":
		a.signupFocusField((a.signupFocus - 1 + len(a.signupInputs)) % len(a.signupInputs))
		return a, nil

	case msg.String() == "ctrl+t":
		// Toggle between the two self-service roles.
		a.signupRole = 1 - a.signupRole
		return a, nil

	case key.Matches(msg, a.keys.Submit):
		req := api.SignupRequest{
			Name:     strings.TrimSpace(a.signupInputs[0].Value()),
			Email:    strings.TrimSpace(a.signupInputs[1].Value()),
			Password: a.signupInputs[2].Value(),
			Role:     signupRoles()[a.signupRole],
		}
		if req.Name == "" || req.Email == "" || req.Password == "" {
			a.formError = "All fields are required"
			return a, nil
		}
		a.loading = true
		a.formError = ""
		return a, a.signupCmd(req)
	}

	var cmd tea.Cmd
	a.signupInputs[a.signupFocus], cmd = a.signupInputs[a.signupFocus].Update(msg)
	return a, cmd
}

// signupRoles are the roles an account can self-register as. Admin accounts
// are provisioned server-side only.
func signupRoles() []string {
	return []string{model.RoleStudent, model.RoleStaff}
}

func (a *App) signupFocusField(i int) {
	for j := range a.signupInputs {
		a.signupInputs[j].Blur()
	}
	a.signupInputs[i].Focus()
	a.signupFocus = i
}

func (a *App) viewSignup() string {
	theme := a.baseTheme
	var b strings.Builder

	b.WriteString(theme.HeaderTitle.Render("Create Account") + "\n\n")

	labels := []string{"Full name", "Email", "Password"}
	for i, in := range a.signupInputs {
		b.WriteString(theme.FormLabel.Render(labels[i]) + "\n")
		box := theme.FormInput
		if i == a.signupFocus {
			box = theme.FormInputFocus
		}
		b.WriteString(box.Render(in.View()) + "\n")
	}

	b.WriteString("\n" + theme.FormLabel.Render("Role") + "  ")
	for i, role := range signupRoles() {
		label := " " + titleLabel(role) + " "
		if i == a.signupRole {
			b.WriteString(theme.NavSelected.Render(label) + " ")
		} else {
			b.WriteString(theme.NavItem.Render(label) + " ")
		}
	}
	b.WriteString("\n\n")

	if a.formError != "" {
		b.WriteString(theme.FormError.Render(a.formError) + "\n\n")
	}
	if a.loading {
		b.WriteString(theme.MutedStyle.Render("Creating account...") + "\n\n")
	}

	b.WriteString(theme.MutedStyle.Render("Enter submit   C-t choose role   Esc back to login"))
	return a.centerBox(b.String(), styles.Cyan)
}

// =============================================================================
// FORGOT PASSWORD SCREEN
// =============================================================================

func (a *App) updateForgot(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Back):
		a.screen = ScreenLogin
		a.formError = ""
		return a, nil

	case key.Matches(msg, a.keys.Submit):
		if a.forgotSent {
			a.screen = ScreenLogin
			return a, nil
		}
		email := strings.TrimSpace(a.forgotInput.Value())
		if email == "" {
			a.formError = "Email is required"
			return a, nil
		}
		a.loading = true
		a.formError = ""
		return a, a.forgotCmd(email)
	}

	var cmd tea.Cmd
	a.forgotInput, cmd = a.forgotInput.Update(msg)
	return a, cmd
}

func (a *App) viewForgot() string {
	theme := a.baseTheme
	var b strings.Builder

	b.WriteString(theme.HeaderTitle.Render("Reset Password") + "\n\n")

	if a.forgotSent {
		b.WriteString(styles.RenderSuccess("If that address exists, a reset email is on its way.") + "\n\n")
		b.WriteString(theme.MutedStyle.Render("Enter back to login"))
		return a.centerBox(b.String(), styles.Cyan)
	}

	b.WriteString(theme.FormLabel.Render("Email") + "\n")
	b.WriteString(theme.FormInputFocus.Render(a.forgotInput.View()) + "\n\n")

	if a.formError != "" {
		b.WriteString(theme.FormError.Render(a.formError) + "\n\n")
	}
	if a.loading {
		b.WriteString(theme.MutedStyle.Render("Sending...") + "\n\n")
	}

	b.WriteString(theme.MutedStyle.Render("Enter send reset email   Esc back to login"))
	return a.centerBox(b.String(), styles.Cyan)
}

// =============================================================================
// SHARED
// =============================================================================

// centerBox places a bordered form box in the middle of the screen.
func (a *App) centerBox(content string, accent lipgloss.AdaptiveColor) string {
	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(1, 3).
		Render(content)

	return lipgloss.Place(
		a.width, a.height,
		lipgloss.Center, lipgloss.Center,
		box,
	)
}

// titleLabel renders a role constant like STUDENT as Student.
func titleLabel(s string) string {
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
