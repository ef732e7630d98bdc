// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// status.go - display status derivation for resources and bookings.
package model

import "strings"

// =============================================================================
// RESOURCE DISPLAY STATUS
// =============================================================================

// DisplayStatus is the label shown for a resource in the browse grid.
type DisplayStatus string

const (
	StatusMaintenance     DisplayStatus = "Maintenance"
	StatusBooked          DisplayStatus = "Booked"
	StatusPendingApproval DisplayStatus = "Pending Approval"
	StatusRequested       DisplayStatus = "Requested"
	StatusAvailable       DisplayStatus = "Available"
)

// ResourceDisplayStatus derives the display label for a resource as seen by
// viewerID. Precedence is fixed and evaluation stops at the first match:
//
//  1. Resource globally UNAVAILABLE            -> Maintenance
//  2. Viewer's own booking APPROVED            -> Booked
//     Viewer's own booking PENDING             -> Pending Approval
//  3. Any APPROVED booking for the resource    -> Booked
//  4. Any PENDING booking for the resource     -> Requested
//  5. Otherwise                                -> Available
//
// A globally unavailable resource reads Maintenance regardless of any
// booking state.
func ResourceDisplayStatus(r Resource, bookings []Booking, viewerID int) DisplayStatus {
	if r.IsUnavailable() {
		return StatusMaintenance
	}

	// Viewer's own live booking takes priority over the global roster.
	for _, b := range bookings {
		if b.ResourceID != r.ID || b.UserID != viewerID {
			continue
		}
		if b.IsApproved() {
			return StatusBooked
		}
		if b.IsPending() {
			return StatusPendingApproval
		}
	}

	for _, b := range bookings {
		if b.ResourceID == r.ID && b.IsApproved() {
			return StatusBooked
		}
	}
	for _, b := range bookings {
		if b.ResourceID == r.ID && b.IsPending() {
			return StatusRequested
		}
	}

	return StatusAvailable
}

// =============================================================================
// BOOKING STATUS LABEL
// =============================================================================

// BookingStatusLabel maps a raw booking status to its display label.
// Unknown statuses are passed through title-cased rather than hidden.
func BookingStatusLabel(status string) string {
	switch strings.ToUpper(status) {
	case BookingPending:
		return "Pending"
	case BookingApproved:
		return "Approved"
	case BookingRejected:
		return "Rejected"
	default:
		if status == "" {
			return "Unknown"
		}
		return strings.ToUpper(status[:1]) + strings.ToLower(status[1:])
	}
}
