// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/campus-tui/internal/access"
	"github.com/jeranaias/campus-tui/internal/session"
	"github.com/jeranaias/campus-tui/internal/ui/styles"
	"github.com/jeranaias/campus-tui/internal/util"
)

// =============================================================================
// STATUS BAR COMPONENT - Bottom bar with identity and session countdown
// =============================================================================

// countdownWarning is the remaining time below which the countdown switches
// to the warning style.
const countdownWarning = 2 * time.Minute

// Shortcut is a key hint shown on the right side of the status bar.
type Shortcut struct {
	Key  string
	Desc string
}

// StatusBar is the bottom status bar: signed-in identity on the left, the
// session countdown in the middle, key hints on the right.
type StatusBar struct {
	identity  access.Identity
	signedIn  bool
	remaining time.Duration
	timed     bool
	offline   bool
	shortcuts []Shortcut
	width     int
	theme     *styles.Theme
}

// NewStatusBar creates a status bar.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{
		width: 80,
		theme: theme,
	}
}

// SetWidth updates the available width.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// SetIdentity installs the signed-in identity. Whether the countdown shows
// at all follows access.SessionTimed: the system admin runs untimed.
func (s *StatusBar) SetIdentity(id access.Identity) {
	s.identity = id
	s.signedIn = true
	s.timed = access.SessionTimed(id)
}

// ClearIdentity returns the bar to its signed-out state.
func (s *StatusBar) ClearIdentity() {
	s.identity = access.Identity{}
	s.signedIn = false
	s.timed = false
	s.remaining = 0
}

// SetRemaining updates the session countdown.
func (s *StatusBar) SetRemaining(remaining time.Duration) {
	s.remaining = remaining
}

// SetOffline marks whether the backend is unreachable and cached data is
// being shown.
func (s *StatusBar) SetOffline(offline bool) {
	s.offline = offline
}

// SetShortcuts replaces the key hints.
func (s *StatusBar) SetShortcuts(shortcuts []Shortcut) {
	s.shortcuts = shortcuts
}

// View renders the status bar.
func (s *StatusBar) View() string {
	left := s.leftSegment()
	mid := s.clockSegment()
	right := s.shortcutSegment()

	gapTotal := s.width - lipgloss.Width(left) - lipgloss.Width(mid) - lipgloss.Width(right) - 2
	if gapTotal < 2 {
		// Narrow terminal: drop the hints first.
		right = ""
		gapTotal = s.width - lipgloss.Width(left) - lipgloss.Width(mid) - 2
		if gapTotal < 2 {
			gapTotal = 2
		}
	}
	gapLeft := gapTotal / 2
	gapRight := gapTotal - gapLeft

	line := left + strings.Repeat(" ", gapLeft) + mid + strings.Repeat(" ", gapRight) + right
	return s.theme.StatusBar.Width(s.width).Render(line)
}

func (s *StatusBar) leftSegment() string {
	if !s.signedIn {
		return s.theme.MutedStyle.Render("not signed in")
	}
	name := util.TruncateWidth(s.identity.Name, 24)
	seg := s.theme.StatusIdent.Render(name) +
		s.theme.MutedStyle.Render(" ("+s.identity.Role+")")
	if s.offline {
		seg += " " + s.theme.WarningStyle.Render(styles.StatusIndicators.Warning+" offline")
	}
	return seg
}

func (s *StatusBar) clockSegment() string {
	if !s.signedIn || !s.timed {
		return ""
	}
	text := "session " + session.FormatRemaining(s.remaining)
	if s.remaining <= countdownWarning {
		return s.theme.StatusWarning.Render(text)
	}
	return s.theme.StatusClock.Render(text)
}

func (s *StatusBar) shortcutSegment() string {
	if len(s.shortcuts) == 0 {
		return ""
	}
	var parts []string
	for _, sc := range s.shortcuts {
		parts = append(parts, s.theme.ShortcutKey.Render(sc.Key)+" "+s.theme.ShortcutDesc.Render(sc.Desc))
	}
	return strings.Join(parts, "  ")
}
