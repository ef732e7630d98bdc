// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session tracks the bounded-duration authenticated period on the
// client: a start timestamp plus a fixed 15-minute quota.
//
// # Key Types
//
//   - Clock: the owned countdown handle; started at login, stopped at
//     teardown, signals expiry exactly once
//   - Store: atomic persistence of the session state (token, identity,
//     start timestamp) across process restarts
//
// # Lifecycle
//
// Start a clock at login:
//
//	clk := session.NewClock()
//	clk.Start(time.Now())
//	defer clk.Stop()
//
// On restart, reconcile against the persisted start timestamp:
//
//	clk.Resume(state.StartEpochMillis())
//	if clk.ExpiredAt(time.Now()) {
//	    // same teardown as live expiry, no grace tick
//	}
//
// Unreadable persisted state is treated as an already-expired session
// (fail closed), never as an infinite one.
package session
