// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session tracks the bounded-duration authenticated period on the
// client.
package session

import (
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Session quota constants. The quota is fixed; it is not extended by
// activity and not configurable above the limit.
const (
	// Duration is the session quota: 15 minutes from login.
	Duration = 15 * time.Minute

	// DurationMillis is the quota in epoch-millisecond arithmetic.
	DurationMillis = int64(Duration / time.Millisecond)

	// TickInterval is the countdown recompute cadence.
	TickInterval = time.Second
)

// =============================================================================
// SESSION CLOCK
// =============================================================================

// Clock derives remaining session time from a start timestamp and the fixed
// quota. It is an owned handle: Start returns it running, Stop is required
// on teardown. Ticks carry a generation number so a tick scheduled before
// Stop is discarded instead of firing against a dead session.
type Clock struct {
	mu sync.Mutex

	startEpochMillis int64
	running          bool
	fired            bool
	gen              uint64
}

// NewClock creates a stopped clock.
func NewClock() *Clock {
	return &Clock{}
}

// Start records now as the session start and arms the clock.
// Any previously armed generation is invalidated.
func (c *Clock) Start(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.startEpochMillis = now.UnixMilli()
	c.running = true
	c.fired = false
	c.gen++
}

// Resume arms the clock against a persisted start timestamp instead of a
// fresh one, so a restarted process continues with the remaining budget
// rather than a new full quota. A zero or garbage timestamp yields an
// immediately expired clock.
func (c *Clock) Resume(startEpochMillis int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.startEpochMillis = startEpochMillis
	c.running = true
	c.fired = false
	c.gen++
}

// Stop disarms the clock. Ticks from the stopped generation are ignored,
// and expiry can no longer fire.
func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.running = false
	c.gen++
}

// Running reports whether the clock is armed.
func (c *Clock) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// StartEpochMillis returns the armed start timestamp.
func (c *Clock) StartEpochMillis() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.startEpochMillis
}

// RemainingAt returns max(0, quota - elapsed) at the given instant.
// Pure with respect to the armed start timestamp; no side effect.
func (c *Clock) RemainingAt(now time.Time) time.Duration {
	c.mu.Lock()
	start := c.startEpochMillis
	c.mu.Unlock()
	return remainingAt(start, now)
}

// ExpiredAt reports whether the quota is exhausted at the given instant.
func (c *Clock) ExpiredAt(now time.Time) bool {
	return c.RemainingAt(now) <= 0
}

// FireExpiry returns true exactly once per armed generation: the first call
// on a running, expired clock claims the expiry signal and stops the clock.
// Every later call returns false, so teardown cannot run twice.
func (c *Clock) FireExpiry(now time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running || c.fired {
		return false
	}
	if remainingAt(c.startEpochMillis, now) > 0 {
		return false
	}
	c.fired = true
	c.running = false
	c.gen++
	return true
}

// remainingAt is the pure countdown kernel, in wall-clock arithmetic.
func remainingAt(startEpochMillis int64, now time.Time) time.Duration {
	elapsed := now.UnixMilli() - startEpochMillis
	left := DurationMillis - elapsed
	if left < 0 {
		left = 0
	}
	return time.Duration(left) * time.Millisecond
}

// =============================================================================
// BUBBLE TEA INTEGRATION
// =============================================================================

// TickMsg is delivered once per second while a timed identity is active.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// TickCmd schedules the next countdown tick for the clock's current
// generation. Ticks from older generations are stale and must be dropped
// by Current.
func (c *Clock) TickCmd() tea.Cmd {
	c.mu.Lock()
	gen := c.gen
	running := c.running
	c.mu.Unlock()
	if !running {
		return nil
	}
	return tea.Tick(TickInterval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

// Current reports whether a tick belongs to the clock's live generation.
// Stale ticks (scheduled before a Stop or re-Start) must be discarded by
// the caller without rescheduling.
func (c *Clock) Current(msg TickMsg) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running && msg.Gen == c.gen
}

// =============================================================================
// FORMATTING
// =============================================================================

// FormatRemaining renders a countdown as M:SS - no leading zero on the
// minutes, seconds zero-padded to two digits.
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	totalSecs := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", totalSecs/60, totalSecs%60)
}
