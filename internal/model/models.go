// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model defines the domain records exchanged with the campus
// booking backend.
package model

import (
	"strings"
	"time"
)

// =============================================================================
// USER
// =============================================================================

// Role constants as stored by the backend. Comparisons are case-insensitive;
// use NormalizeRole before comparing raw backend values.
const (
	RoleStudent = "STUDENT"
	RoleStaff   = "STAFF"
	RoleAdmin   = "ADMIN"
)

// User status constants.
const (
	UserActive   = "ACTIVE"
	UserInactive = "INACTIVE"
)

// User represents a roster entry.
type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	Status    string    `json:"status,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// NormalizeRole upper-cases and trims a backend role value.
func NormalizeRole(role string) string {
	return strings.ToUpper(strings.TrimSpace(role))
}

// =============================================================================
// RESOURCE
// =============================================================================

// Resource operational status constants.
const (
	ResourceAvailable   = "AVAILABLE"
	ResourceUnavailable = "UNAVAILABLE"
)

// Resource represents a bookable campus resource.
type Resource struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
	Capacity    int    `json:"capacity,omitempty"`
	Status      string `json:"status"`
}

// IsUnavailable reports whether the resource is globally marked out of
// service, regardless of booking state.
func (r Resource) IsUnavailable() bool {
	return strings.EqualFold(r.Status, ResourceUnavailable)
}

// =============================================================================
// BOOKING
// =============================================================================

// Booking status constants.
const (
	BookingPending  = "PENDING"
	BookingApproved = "APPROVED"
	BookingRejected = "REJECTED"
)

// Booking represents a reservation of a resource for a date and time slot.
//
// ResourceName and UserName/UserRole are display snippets the backend embeds
// in list responses so the client can render the table without extra lookups.
type Booking struct {
	ID         int    `json:"id"`
	ResourceID int    `json:"resource"`
	UserID     int    `json:"user"`
	Date       string `json:"booking_date"` // YYYY-MM-DD
	TimeSlot   string `json:"time_slot"`    // e.g. "10AM-12PM"
	Status     string `json:"status"`

	ResourceName string `json:"resource_name,omitempty"`
	UserName     string `json:"user_name,omitempty"`
	UserRole     string `json:"user_role,omitempty"`
}

// IsPending reports whether the booking is awaiting a decision.
func (b Booking) IsPending() bool {
	return strings.EqualFold(b.Status, BookingPending)
}

// IsApproved reports whether the booking has been approved.
func (b Booking) IsApproved() bool {
	return strings.EqualFold(b.Status, BookingApproved)
}

// =============================================================================
// ACTIVITY
// =============================================================================

// ActivityRecord is one login/logout event from the activity roster.
// LogoutTime is nil while the session is still open.
type ActivityRecord struct {
	UserName   string     `json:"user_name"`
	UserEmail  string     `json:"user_email"`
	UserRole   string     `json:"user_role"`
	LoginTime  time.Time  `json:"login_time"`
	LogoutTime *time.Time `json:"logout_time,omitempty"`
}

// =============================================================================
// DASHBOARD STATS
// =============================================================================

// Stats holds the dashboard summary counts computed client-side from the
// fetched collections.
type Stats struct {
	TotalBookings    int
	PendingBookings  int
	ApprovedBookings int
	TotalResources   int
	TotalUsers       int
}

// ComputeStats derives dashboard counts from the fetched collections.
// Users may be nil for identities that cannot list the roster.
func ComputeStats(bookings []Booking, resources []Resource, users []User) Stats {
	s := Stats{
		TotalBookings:  len(bookings),
		TotalResources: len(resources),
		TotalUsers:     len(users),
	}
	for _, b := range bookings {
		switch {
		case b.IsPending():
			s.PendingBookings++
		case b.IsApproved():
			s.ApprovedBookings++
		}
	}
	return s
}
