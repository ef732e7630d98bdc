// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jeranaias/campus-tui/internal/access"
	"github.com/jeranaias/campus-tui/internal/model"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := NewClient(srv.URL)
	c.SetToken("test-token")
	return c, srv
}

func TestLoginSuccess(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("bad request body: %v", err)
		}
		if req.Email != "student@campus.edu" {
			t.Errorf("unexpected email: %s", req.Email)
		}
		json.NewEncoder(w).Encode(LoginResponse{
			Token: "fresh-token",
			User:  identityFixture("STUDENT"),
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewClient(srv.URL)
	resp, err := c.Login(context.Background(), "student@campus.edu", "student123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.Token != "fresh-token" {
		t.Errorf("unexpected token: %s", resp.Token)
	}
	if c.Token() != "fresh-token" {
		t.Error("token not installed on client after login")
	}
	if resp.User.Role != "STUDENT" {
		t.Errorf("unexpected role: %s", resp.User.Role)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Login(context.Background(), "student@campus.edu", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
	if c.IsAuthenticated() {
		t.Error("client should not be authenticated after failed login")
	}
}

func TestLoginRequiresFields(t *testing.T) {
	c := NewClient("http://example.invalid")
	if _, err := c.Login(context.Background(), "", "pw"); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for empty email, got %v", err)
	}
	if _, err := c.Login(context.Background(), "a@b.c", ""); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for empty password, got %v", err)
	}
}

func TestAuthHeaderSent(t *testing.T) {
	var gotAuth string
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]model.Resource{})
	}))
	defer srv.Close()

	if _, err := c.ListResources(context.Background()); err != nil {
		t.Fatalf("ListResources failed: %v", err)
	}
	if gotAuth != "Token test-token" {
		t.Errorf("unexpected Authorization header: %q", gotAuth)
	}
}

func TestRequestIDHeaderSent(t *testing.T) {
	var gotID string
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get("X-Request-ID")
		json.NewEncoder(w).Encode([]model.Resource{})
	}))
	defer srv.Close()

	if _, err := c.ListResources(context.Background()); err != nil {
		t.Fatal(err)
	}
	if gotID == "" {
		t.Error("expected X-Request-ID header to be set")
	}
}

func TestUnauthenticatedRequestsFailClosed(t *testing.T) {
	c := NewClient("http://example.invalid")

	if _, err := c.ListResources(context.Background()); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("ListResources: expected ErrUnauthorized, got %v", err)
	}
	if _, err := c.ListBookings(context.Background()); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("ListBookings: expected ErrUnauthorized, got %v", err)
	}
	if _, err := c.ListUsers(context.Background()); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("ListUsers: expected ErrUnauthorized, got %v", err)
	}
	if _, err := c.ListActivity(context.Background()); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("ListActivity: expected ErrUnauthorized, got %v", err)
	}
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"unauthorized", http.StatusUnauthorized, ErrUnauthorized},
		{"forbidden", http.StatusForbidden, ErrForbidden},
		{"not found", http.StatusNotFound, ErrNotFound},
		{"conflict", http.StatusConflict, ErrInvalidTransition},
		{"bad request", http.StatusBadRequest, ErrValidation},
		{"rate limited", http.StatusTooManyRequests, ErrRateLimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(map[string]string{"error": tt.name})
			}))
			defer srv.Close()

			// Use a single-attempt client so retryable statuses
			// surface directly.
			c.WithMaxRetries(1)
			_, err := c.GetResource(context.Background(), 1)
			if !errors.Is(err, tt.want) {
				t.Errorf("status %d: expected %v, got %v", tt.status, tt.want, err)
			}
		})
	}
}

func TestRetryOnServerError(t *testing.T) {
	attempts := 0
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode([]model.Resource{{ID: 1, Name: "Lab A"}})
	}))
	defer srv.Close()

	resources, err := c.ListResources(context.Background())
	if err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}
	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}
	if len(resources) != 1 || resources[0].Name != "Lab A" {
		t.Errorf("unexpected resources: %+v", resources)
	}
}

func TestNoRetryOnValidationError(t *testing.T) {
	attempts := 0
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "bad date"})
	}))
	defer srv.Close()

	_, err := c.ListBookings(context.Background())
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
	if attempts != 1 {
		t.Errorf("validation errors must not retry, got %d attempts", attempts)
	}
}

func TestCreateBookingValidation(t *testing.T) {
	c := NewClient("http://example.invalid")
	c.SetToken("tok")

	_, err := c.CreateBooking(context.Background(), CreateBookingRequest{})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for missing resource, got %v", err)
	}

	_, err = c.CreateBooking(context.Background(), CreateBookingRequest{ResourceID: 1})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for missing date, got %v", err)
	}
}

func TestApproveBooking(t *testing.T) {
	var gotPath, gotStatus string
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		var req bookingStatusRequest
		json.NewDecoder(r.Body).Decode(&req)
		gotStatus = req.Status
		json.NewEncoder(w).Encode(model.Booking{ID: 7, Status: model.BookingApproved})
	}))
	defer srv.Close()

	booking, err := c.ApproveBooking(context.Background(), 7)
	if err != nil {
		t.Fatalf("ApproveBooking failed: %v", err)
	}
	if gotPath != "/bookings/7/status/" {
		t.Errorf("unexpected path: %s", gotPath)
	}
	if gotStatus != model.BookingApproved {
		t.Errorf("unexpected status sent: %s", gotStatus)
	}
	if !booking.IsApproved() {
		t.Error("expected returned booking to be approved")
	}
}

func TestRejectAlreadyRejected(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "booking is not pending"})
	}))
	defer srv.Close()

	if _, err := c.RejectBooking(context.Background(), 3); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestLogoutClearsToken(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	if err := c.Logout(context.Background()); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if c.IsAuthenticated() {
		t.Error("token should be cleared after logout")
	}
}

func TestLogoutToleratesStaleToken(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid token"})
	}))
	defer srv.Close()

	if err := c.Logout(context.Background()); err != nil {
		t.Errorf("stale token logout should succeed locally, got %v", err)
	}
	if c.IsAuthenticated() {
		t.Error("token should be cleared even when the server rejects it")
	}
}

func TestBackendUnavailable(t *testing.T) {
	c := NewClient("http://127.0.0.1:1") // nothing listens here
	c.SetToken("tok")
	c.WithMaxRetries(1).WithTimeout(2 * time.Second)

	_, err := c.ListResources(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestTokenFingerprintNeverExposesToken(t *testing.T) {
	c := NewClient("")
	if c.TokenFingerprint() != "none" {
		t.Errorf("empty token fingerprint should be none, got %s", c.TokenFingerprint())
	}
	c.SetToken("super-secret-session-token")
	fp := c.TokenFingerprint()
	if len(fp) != 8 {
		t.Errorf("expected 8 hex chars, got %q", fp)
	}
	if fp == "super-se" {
		t.Error("fingerprint must not be a token prefix")
	}
}

func identityFixture(role string) access.Identity {
	return access.Identity{
		UserID: 1,
		Name:   "Test User",
		Email:  "test@campus.edu",
		Role:   role,
	}
}
