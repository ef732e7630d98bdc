// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "testing"

func TestResourceDisplayStatus_MaintenanceWinsOverBookings(t *testing.T) {
	r := Resource{ID: 1, Name: "Chem Lab", Status: ResourceUnavailable}
	bookings := []Booking{
		{ID: 10, ResourceID: 1, UserID: 7, Status: BookingApproved},
		{ID: 11, ResourceID: 1, UserID: 8, Status: BookingPending},
	}

	got := ResourceDisplayStatus(r, bookings, 7)
	if got != StatusMaintenance {
		t.Errorf("expected Maintenance regardless of booking state, got %q", got)
	}
}

func TestResourceDisplayStatus_OwnBookingBeatsGlobal(t *testing.T) {
	r := Resource{ID: 2, Status: ResourceAvailable}

	tests := []struct {
		name     string
		bookings []Booking
		viewerID int
		want     DisplayStatus
	}{
		{
			name: "own pending shows Pending Approval over someone else's approved",
			bookings: []Booking{
				{ResourceID: 2, UserID: 9, Status: BookingApproved},
				{ResourceID: 2, UserID: 5, Status: BookingPending},
			},
			viewerID: 5,
			want:     StatusPendingApproval,
		},
		{
			name: "own approved shows Booked",
			bookings: []Booking{
				{ResourceID: 2, UserID: 5, Status: BookingApproved},
			},
			viewerID: 5,
			want:     StatusBooked,
		},
		{
			name: "someone else's approved shows Booked",
			bookings: []Booking{
				{ResourceID: 2, UserID: 9, Status: BookingApproved},
			},
			viewerID: 5,
			want:     StatusBooked,
		},
		{
			name: "someone else's pending shows Requested",
			bookings: []Booking{
				{ResourceID: 2, UserID: 9, Status: BookingPending},
			},
			viewerID: 5,
			want:     StatusRequested,
		},
		{
			name:     "no bookings shows Available",
			bookings: nil,
			viewerID: 5,
			want:     StatusAvailable,
		},
		{
			name: "rejected bookings are ignored",
			bookings: []Booking{
				{ResourceID: 2, UserID: 5, Status: BookingRejected},
			},
			viewerID: 5,
			want:     StatusAvailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResourceDisplayStatus(r, tt.bookings, tt.viewerID)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResourceDisplayStatus_OtherResourceBookingsIgnored(t *testing.T) {
	r := Resource{ID: 3, Status: ResourceAvailable}
	bookings := []Booking{
		{ResourceID: 4, UserID: 5, Status: BookingApproved},
	}
	if got := ResourceDisplayStatus(r, bookings, 5); got != StatusAvailable {
		t.Errorf("booking for another resource should not affect status, got %q", got)
	}
}

func TestBookingStatusLabel(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{"PENDING", "Pending"},
		{"APPROVED", "Approved"},
		{"REJECTED", "Rejected"},
		{"pending", "Pending"},
		{"", "Unknown"},
		{"CANCELLED", "Cancelled"},
	}
	for _, tt := range tests {
		if got := BookingStatusLabel(tt.status); got != tt.want {
			t.Errorf("BookingStatusLabel(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestNormalizeRole(t *testing.T) {
	if NormalizeRole("  staff ") != RoleStaff {
		t.Error("NormalizeRole should trim and upper-case")
	}
}

func TestComputeStats(t *testing.T) {
	bookings := []Booking{
		{Status: BookingPending},
		{Status: BookingPending},
		{Status: BookingApproved},
		{Status: BookingRejected},
	}
	resources := []Resource{{ID: 1}, {ID: 2}}
	users := []User{{ID: 1}}

	s := ComputeStats(bookings, resources, users)
	if s.TotalBookings != 4 || s.PendingBookings != 2 || s.ApprovedBookings != 1 {
		t.Errorf("unexpected booking counts: %+v", s)
	}
	if s.TotalResources != 2 || s.TotalUsers != 1 {
		t.Errorf("unexpected roster counts: %+v", s)
	}
}
