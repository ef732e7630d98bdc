// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// status_cmd.go - the status command: session state and configuration at a
// glance.
package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/jeranaias/campus-tui/internal/access"
	"github.com/jeranaias/campus-tui/internal/api"
	"github.com/jeranaias/campus-tui/internal/session"
)

// statusReport is the data payload of the status command.
type statusReport struct {
	SignedIn     bool   `json:"signed_in"`
	Email        string `json:"email,omitempty"`
	Role         string `json:"role,omitempty"`
	Portal       string `json:"portal,omitempty"`
	Timed        bool   `json:"timed"`
	Remaining    string `json:"remaining,omitempty"`
	TokenExpires string `json:"token_expires,omitempty"`
	BaseURL      string `json:"base_url"`
	Cache        bool   `json:"cache_enabled"`
}

// HandleStatus reports the stored session and active configuration.
func HandleStatus(deps *Deps, args Args) error {
	report := statusReport{
		BaseURL: deps.Config.API.BaseURL,
		Cache:   deps.Config.Cache.Enabled,
	}

	state, err := deps.SignedIn()
	switch {
	case err == nil:
		report.SignedIn = true
		report.Email = state.Identity.Email
		report.Role = state.Identity.NormalizedRole()
		report.Portal = access.ResolveVariant(state.Identity).String()
		report.Timed = access.SessionTimed(state.Identity)
		if report.Timed {
			clock := session.NewClock()
			clock.Resume(state.StartEpochMillis())
			report.Remaining = session.FormatRemaining(clock.RemainingAt(time.Now()))
		}
		// Display only; the backend decides token validity.
		if info, ierr := api.InspectToken(state.Token); ierr == nil && info.HasExpiry() {
			report.TokenExpires = info.ExpiresAt.UTC().Format(time.RFC3339)
		}
	case errors.Is(err, ErrSessionExpired):
		// Reported as signed out; the stale state is already cleared.
	case errors.Is(err, ErrNotSignedIn):
	default:
		return err
	}

	if args.JSON {
		return NewJSONResponse("status", report).Print()
	}

	if report.SignedIn {
		Successf("Signed in as %s (%s)", report.Email, report.Role)
		fmt.Printf("  Portal:    %s\n", report.Portal)
		if report.Timed {
			fmt.Printf("  Remaining: %s\n", report.Remaining)
		} else {
			fmt.Println("  Remaining: unlimited")
		}
		if report.TokenExpires != "" {
			fmt.Printf("  Token:     expires %s\n", report.TokenExpires)
		}
	} else {
		fmt.Println("Not signed in")
	}
	fmt.Printf("  Backend:   %s\n", report.BaseURL)
	if report.Cache {
		fmt.Println("  Cache:     enabled")
	} else {
		fmt.Println("  Cache:     disabled")
	}
	return nil
}
