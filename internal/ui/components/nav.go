// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/jeranaias/campus-tui/internal/access"
	"github.com/jeranaias/campus-tui/internal/ui/styles"
)

// =============================================================================
// NAVIGATION COMPONENT - Role-gated sidebar tabs
// =============================================================================

// Nav renders the navigation tabs for the screens the signed-in identity is
// allowed to see. Visibility comes from access.VisibleNav, never from local
// role checks.
type Nav struct {
	items    []access.NavItem
	selected access.NavItem
	theme    *styles.Theme
}

// NewNav creates a navigation component for the given identity.
func NewNav(theme *styles.Theme, id access.Identity) *Nav {
	items := access.VisibleNav(id)
	n := &Nav{
		items: items,
		theme: theme,
	}
	if len(items) > 0 {
		n.selected = items[0]
	}
	return n
}

// Items returns the visible navigation items in display order.
func (n *Nav) Items() []access.NavItem {
	return n.items
}

// Selected returns the currently selected item.
func (n *Nav) Selected() access.NavItem {
	return n.selected
}

// Select moves the selection to item if it is visible. Hidden items are
// ignored so key handlers cannot navigate somewhere the role cannot see.
func (n *Nav) Select(item access.NavItem) bool {
	for _, it := range n.items {
		if it == item {
			n.selected = item
			return true
		}
	}
	return false
}

// Next moves the selection forward, wrapping at the end.
func (n *Nav) Next() {
	n.move(1)
}

// Prev moves the selection backward, wrapping at the start.
func (n *Nav) Prev() {
	n.move(-1)
}

func (n *Nav) move(delta int) {
	if len(n.items) == 0 {
		return
	}
	idx := 0
	for i, it := range n.items {
		if it == n.selected {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(n.items)) % len(n.items)
	n.selected = n.items[idx]
}

// View renders the navigation tabs as a single row.
func (n *Nav) View() string {
	var parts []string
	for _, item := range n.items {
		label := item.String()
		if item == n.selected {
			parts = append(parts, n.theme.NavSelected.Render(label))
		} else {
			parts = append(parts, n.theme.NavItem.Render(label))
		}
	}
	return strings.Join(parts, " ")
}
