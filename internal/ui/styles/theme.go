// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style

	// ==========================================================================
	// NAVIGATION STYLES
	// ==========================================================================

	Nav         lipgloss.Style
	NavItem     lipgloss.Style
	NavSelected lipgloss.Style

	// ==========================================================================
	// STAT CARD STYLES
	// ==========================================================================

	StatCard  lipgloss.Style
	StatValue lipgloss.Style
	StatLabel lipgloss.Style

	// ==========================================================================
	// TABLE STYLES
	// ==========================================================================

	TableHeader      lipgloss.Style
	TableRow         lipgloss.Style
	TableRowSelected lipgloss.Style
	TableCellMuted   lipgloss.Style

	// ==========================================================================
	// FORM STYLES
	// ==========================================================================

	FormLabel       lipgloss.Style
	FormInput       lipgloss.Style
	FormInputFocus  lipgloss.Style
	FormHint        lipgloss.Style
	FormError       lipgloss.Style
	Button          lipgloss.Style
	ButtonActive    lipgloss.Style
	ButtonDanger    lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar     lipgloss.Style
	StatusIdent   lipgloss.Style
	StatusClock   lipgloss.Style
	StatusWarning lipgloss.Style
	ShortcutKey   lipgloss.Style
	ShortcutDesc  lipgloss.Style

	// ==========================================================================
	// OVERLAY STYLES
	// ==========================================================================

	OverlayBox     lipgloss.Style
	OverlayTitle   lipgloss.Style
	OverlayMessage lipgloss.Style

	// ==========================================================================
	// SEMANTIC STATUS STYLES
	// ==========================================================================

	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	InfoStyle    lipgloss.Style
	MutedStyle   lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
func NewTheme() *Theme {
	colorProfile := termenv.ColorProfile()
	hasTrueColor := colorProfile == termenv.TrueColor
	isDark := termenv.HasDarkBackground()

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: hasTrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// App container
	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Blue).
		Background(SurfaceDim).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Blue).
		Padding(0, 2)
	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)
	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(TextSecondary)

	// Navigation
	t.Nav = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)
	t.NavItem = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Padding(0, 1)
	t.NavSelected = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextInverse).
		Background(Blue).
		Padding(0, 1)

	// Stat cards
	t.StatCard = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 2).
		Margin(0, 1)
	t.StatValue = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)
	t.StatLabel = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Tables
	t.TableHeader = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextSecondary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Overlay)
	t.TableRow = lipgloss.NewStyle().
		Foreground(TextPrimary)
	t.TableRowSelected = lipgloss.NewStyle().
		Bold(true).
		Background(SelectionBg).
		Foreground(TextPrimary)
	t.TableCellMuted = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Forms
	t.FormLabel = lipgloss.NewStyle().
		Foreground(TextSecondary)
	t.FormInput = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)
	t.FormInputFocus = t.FormInput.Copy().
		BorderForeground(FocusRing)
	t.FormHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)
	t.FormError = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)
	t.Button = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Padding(0, 3).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay)
	t.ButtonActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextInverse).
		Background(Blue).
		Padding(0, 3).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Blue)
	t.ButtonDanger = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextInverse).
		Background(Rose).
		Padding(0, 3).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Rose)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)
	t.StatusIdent = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)
	t.StatusClock = lipgloss.NewStyle().
		Foreground(Cyan)
	t.StatusWarning = lipgloss.NewStyle().
		Bold(true).
		Foreground(Amber)
	t.ShortcutKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan)
	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Overlays
	t.OverlayBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(Amber).
		Padding(1, 3).
		Align(lipgloss.Center)
	t.OverlayTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Amber)
	t.OverlayMessage = lipgloss.NewStyle().
		Foreground(TextPrimary)

	// Semantic styles
	t.SuccessStyle = lipgloss.NewStyle().Bold(true).Foreground(Emerald)
	t.ErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(Rose)
	t.WarningStyle = lipgloss.NewStyle().Bold(true).Foreground(Amber)
	t.InfoStyle = lipgloss.NewStyle().Foreground(Cyan)
	t.MutedStyle = lipgloss.NewStyle().Foreground(TextMuted)
}

// SetSize updates the theme's layout dimensions.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// WithAccent recolors the navigation, header, and button styles with the
// given accent so each portal gets its role color.
func (t *Theme) WithAccent(accent lipgloss.AdaptiveColor) *Theme {
	out := *t
	out.Header = t.Header.Copy().Foreground(accent).BorderForeground(accent)
	out.NavSelected = t.NavSelected.Copy().Background(accent)
	out.ButtonActive = t.ButtonActive.Copy().Background(accent).BorderForeground(accent)
	return &out
}
