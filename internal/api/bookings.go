// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jeranaias/campus-tui/internal/model"
)

// CreateBookingRequest carries the fields for a new booking request.
// Field names match the backend's serializer.
type CreateBookingRequest struct {
	ResourceID  int    `json:"resource"`
	BookingDate string `json:"booking_date"`
	TimeSlot    string `json:"time_slot"`
	Purpose     string `json:"purpose,omitempty"`
}

// bookingStatusRequest carries a booking status change.
type bookingStatusRequest struct {
	Status string `json:"status"`
}

// ListBookings fetches bookings visible to the authenticated user.
// Admins see all bookings; other roles see their own.
func (c *Client) ListBookings(ctx context.Context) ([]model.Booking, error) {
	if !c.IsAuthenticated() {
		return nil, ErrUnauthorized
	}
	var bookings []model.Booking
	if err := c.doWithRetry(ctx, http.MethodGet, "/bookings/", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// CreateBooking submits a new booking request. New bookings always start in
// PENDING status regardless of who creates them.
func (c *Client) CreateBooking(ctx context.Context, req CreateBookingRequest) (*model.Booking, error) {
	if !c.IsAuthenticated() {
		return nil, ErrUnauthorized
	}
	if req.ResourceID <= 0 {
		return nil, fmt.Errorf("%w: resource is required", ErrValidation)
	}
	if req.BookingDate == "" || req.TimeSlot == "" {
		return nil, fmt.Errorf("%w: booking date and time slot are required", ErrValidation)
	}

	var booking model.Booking
	if err := c.do(ctx, http.MethodPost, "/bookings/", req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// ApproveBooking transitions a pending booking to APPROVED.
// Only admins may call this; the backend enforces the permission and
// rejects transitions from non-pending states with ErrInvalidTransition.
func (c *Client) ApproveBooking(ctx context.Context, id int) (*model.Booking, error) {
	return c.setBookingStatus(ctx, id, model.BookingApproved)
}

// RejectBooking transitions a pending booking to REJECTED.
func (c *Client) RejectBooking(ctx context.Context, id int) (*model.Booking, error) {
	return c.setBookingStatus(ctx, id, model.BookingRejected)
}

func (c *Client) setBookingStatus(ctx context.Context, id int, status string) (*model.Booking, error) {
	if !c.IsAuthenticated() {
		return nil, ErrUnauthorized
	}
	if id <= 0 {
		return nil, fmt.Errorf("%w: booking id is required", ErrValidation)
	}

	var booking model.Booking
	path := fmt.Sprintf("/bookings/%d/status/", id)
	if err := c.do(ctx, http.MethodPatch, path, bookingStatusRequest{Status: status}, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}
