// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/campus-tui/internal/ui/styles"
)

// =============================================================================
// TOASTS - Non-blocking corner notifications
// =============================================================================

// ToastKind represents the type of toast notification.
type ToastKind int

const (
	// ToastKindStatus is an informational toast
	ToastKindStatus ToastKind = iota
	// ToastKindError is an error toast
	ToastKindError
	// ToastKindWarning is a warning toast
	ToastKindWarning
	// ToastKindSuccess is a success toast
	ToastKindSuccess
)

// DefaultToastDuration is the auto-dismiss duration for status toasts.
const DefaultToastDuration = 4 * time.Second

// ErrorToastDuration is the auto-dismiss duration for error toasts (longer to read).
const ErrorToastDuration = 8 * time.Second

var toastCounter atomic.Int64

// Toast is a non-blocking notification that auto-dismisses.
type Toast struct {
	ID        int64
	Message   string
	Kind      ToastKind
	CreatedAt time.Time
	Duration  time.Duration
}

// ToastExpiredMsg signals that a toast's display window has elapsed.
type ToastExpiredMsg struct {
	ID int64
}

// NewToast creates a toast of the given kind.
func NewToast(kind ToastKind, message string) Toast {
	duration := DefaultToastDuration
	if kind == ToastKindError {
		duration = ErrorToastDuration
	}
	return Toast{
		ID:        toastCounter.Add(1),
		Message:   message,
		Kind:      kind,
		CreatedAt: time.Now(),
		Duration:  duration,
	}
}

// DismissCmd returns a command that fires when the toast should disappear.
func (t Toast) DismissCmd() tea.Cmd {
	id := t.ID
	return tea.Tick(t.Duration, func(time.Time) tea.Msg {
		return ToastExpiredMsg{ID: id}
	})
}

// View renders the toast line.
func (t Toast) View(theme *styles.Theme) string {
	var style lipgloss.Style
	var icon string
	switch t.Kind {
	case ToastKindError:
		style = theme.ErrorStyle
		icon = styles.StatusIndicators.Error
	case ToastKindWarning:
		style = theme.WarningStyle
		icon = styles.StatusIndicators.Warning
	case ToastKindSuccess:
		style = theme.SuccessStyle
		icon = styles.StatusIndicators.Success
	default:
		style = theme.InfoStyle
		icon = styles.StatusIndicators.Info
	}
	return style.Render(icon + " " + t.Message)
}
