// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/jeranaias/campus-tui/internal/config"
	"github.com/jeranaias/campus-tui/internal/model"
	"github.com/jeranaias/campus-tui/internal/session"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want Command
	}{
		{"empty defaults to TUI", nil, CmdTUI},
		{"explicit tui", []string{"tui"}, CmdTUI},
		{"login", []string{"login", "a@b.c"}, CmdLogin},
		{"logout", []string{"logout"}, CmdLogout},
		{"status", []string{"status"}, CmdStatus},
		{"status alias", []string{"s"}, CmdStatus},
		{"resources", []string{"resources"}, CmdResources},
		{"resource singular", []string{"resource"}, CmdResources},
		{"bookings", []string{"bookings"}, CmdBookings},
		{"users", []string{"users"}, CmdUsers},
		{"activity", []string{"activity"}, CmdActivity},
		{"config", []string{"config", "show"}, CmdConfig},
		{"version", []string{"version"}, CmdVersion},
		{"help", []string{"help"}, CmdHelp},
		{"unknown", []string{"frobnicate"}, CmdHelp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _ := ParseArgs(tt.argv)
			if cmd != tt.want {
				t.Errorf("ParseArgs(%v) = %d, want %d", tt.argv, cmd, tt.want)
			}
		})
	}
}

func TestParseArgsGlobalFlags(t *testing.T) {
	cmd, args := ParseArgs([]string{"--json", "resources", "--quiet"})
	if cmd != CmdResources {
		t.Fatalf("expected resources command, got %d", cmd)
	}
	if !args.JSON || !args.Quiet {
		t.Errorf("global flags not parsed: %+v", args)
	}
	if len(args.Raw) != 0 {
		t.Errorf("global flags should not leak into Raw: %v", args.Raw)
	}
}

func TestParseArgsRawPassthrough(t *testing.T) {
	_, args := ParseArgs([]string{"bookings", "--pending"})
	p := NewArgParser(args.Raw)
	if !p.BoolFlag("pending") {
		t.Error("command flags should survive in Raw")
	}
}

func TestArgParser(t *testing.T) {
	p := NewArgParser([]string{"set", "api.url", "http://host/api", "--password", "secret", "--force", "--limit=25", "--color=false"})

	if p.Subcommand() != "set" {
		t.Errorf("Subcommand() = %q", p.Subcommand())
	}
	if p.Positional(1) != "api.url" || p.Positional(2) != "http://host/api" {
		t.Error("positional arguments misparsed")
	}
	if p.Positional(99) != "" {
		t.Error("out-of-range positional should be empty")
	}
	if p.Flag("password") != "secret" {
		t.Errorf("Flag(password) = %q", p.Flag("password"))
	}
	if !p.BoolFlag("force") {
		t.Error("--force should be a boolean flag")
	}
	if p.FlagIntOrDefault("limit", 0) != 25 {
		t.Errorf("FlagIntOrDefault(limit) = %d", p.FlagIntOrDefault("limit", 0))
	}
	if p.BoolFlag("color") {
		t.Error("--color=false should parse as false")
	}
	if p.FlagOrDefault("missing", "fallback") != "fallback" {
		t.Error("FlagOrDefault should fall back")
	}
}

func TestApplyConfigKey(t *testing.T) {
	cfg := config.Default()

	if err := applyConfigKey(cfg, "api.url", "http://example.edu/api"); err != nil {
		t.Fatal(err)
	}
	if cfg.API.BaseURL != "http://example.edu/api" {
		t.Errorf("api.url not applied: %q", cfg.API.BaseURL)
	}

	if err := applyConfigKey(cfg, "api.timeout_secs", "60"); err != nil {
		t.Fatal(err)
	}
	if cfg.API.TimeoutSecs != 60 {
		t.Errorf("timeout not applied: %d", cfg.API.TimeoutSecs)
	}

	if err := applyConfigKey(cfg, "cache.enabled", "false"); err != nil {
		t.Fatal(err)
	}
	if cfg.Cache.Enabled {
		t.Error("cache.enabled not applied")
	}

	if err := applyConfigKey(cfg, "api.timeout_secs", "lots"); err == nil {
		t.Error("non-numeric timeout should be rejected")
	}
	if err := applyConfigKey(cfg, "nonsense.key", "v"); err == nil {
		t.Error("unknown key should be rejected")
	}
}

func TestRenderResourceTable(t *testing.T) {
	resources := []model.Resource{
		{ID: 1, Name: "Lecture Hall A", Type: "HALL", Location: "Bldg 2", Status: model.ResourceAvailable},
		{ID: 2, Name: "Projector", Type: "EQUIPMENT", Status: model.ResourceUnavailable},
	}
	bookings := []model.Booking{
		{ID: 7, ResourceID: 1, UserID: 42, Status: model.BookingPending},
	}

	out := renderResourceTable(resources, bookings, 42)

	if !strings.Contains(out, "Lecture Hall A") {
		t.Error("resource name missing from table")
	}
	if !strings.Contains(out, "Pending Approval") {
		t.Error("viewer's own pending booking should read Pending Approval")
	}
	if !strings.Contains(out, "Maintenance") {
		t.Error("unavailable resource should read Maintenance")
	}
}

func TestRenderBookingTableRequesterColumn(t *testing.T) {
	bookings := []model.Booking{
		{ID: 1, ResourceName: "Lab 3", Date: "2026-09-01", TimeSlot: "10AM-12PM",
			Status: model.BookingPending, UserName: "Sam Student"},
	}

	plain := renderBookingTable(bookings, false)
	if strings.Contains(plain, "Sam Student") {
		t.Error("requester column should be hidden for non-approvers")
	}

	admin := renderBookingTable(bookings, true)
	if !strings.Contains(admin, "Sam Student") {
		t.Error("approvers should see the requester column")
	}
	if !strings.Contains(admin, "REQUESTED BY") {
		t.Error("requester header missing")
	}
}

func TestSessionExpiry(t *testing.T) {
	var state session.State
	if sessionExpiry(state) != "" {
		t.Error("untimed session has no expiry")
	}

	start := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	state.SetStartEpochMillis(start.UnixMilli())
	got := sessionExpiry(state)
	if got != "2026-08-31T12:15:00Z" {
		t.Errorf("sessionExpiry = %q", got)
	}
}

func TestTableRowTruncatesOverlongCells(t *testing.T) {
	row := tableRow([]string{"123456", "x"}, []int{4, 3})
	cells := strings.Split(strings.TrimRight(row, "\n"), "  ")
	if len(cells[0]) > 4 {
		t.Errorf("cell not truncated to width: %q", cells[0])
	}
}
