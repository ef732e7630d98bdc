// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - command parsing and usage text for the campus binary.
package cli

import (
	"fmt"
	"os"
	"runtime"
	"strings"
)

// Version information (can be overridden at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdLogin
	CmdLogout
	CmdStatus
	CmdResources
	CmdBookings
	CmdUsers
	CmdActivity
	CmdConfig
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	JSON    bool
	Quiet   bool
	Verbose bool

	// Raw args remaining after the command name and global flags.
	Raw []string
}

const usageText = `campus - terminal client for the campus resource booking system

Usage:
  campus                     Start the TUI (default)
  campus login [email]       Sign in and store the session
    --password PASS          Password (prompted when omitted)
  campus logout              Sign out and clear the stored session
  campus status              Show session and configuration status
  campus resources           List resources with availability
  campus bookings            List bookings
    --pending                Show only pending bookings
  campus users               List the user roster (staff and admin)
  campus activity            Show the login activity log (staff and admin)
  campus config [show|set|path]
                             Manage configuration
  campus version             Show version information

Global flags:
  --json                     Machine-readable JSON output
  --quiet                    Suppress informational messages
  --verbose                  Verbose logging

Examples:
  campus login student@campus.edu
  campus resources --json | jq '.data[].name'
  campus bookings --pending
  campus config set api.url http://127.0.0.1:8000/api

Sessions for students and staff expire 15 minutes after sign-in.
Configuration lives in ~/.campus/config.toml.
`

// Parse reads os.Args and returns the command to run with its arguments.
func Parse() (Command, Args) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses an argument vector. Split from Parse for testing.
func ParseArgs(argv []string) (Command, Args) {
	remaining, args := parseGlobalFlags(argv)

	if len(remaining) == 0 {
		return CmdTUI, args
	}

	cmd := strings.ToLower(remaining[0])
	args.Raw = remaining[1:]

	switch cmd {
	case "tui":
		return CmdTUI, args
	case "login":
		return CmdLogin, args
	case "logout":
		return CmdLogout, args
	case "status", "s":
		return CmdStatus, args
	case "resources", "resource":
		return CmdResources, args
	case "bookings", "booking":
		return CmdBookings, args
	case "users", "user":
		return CmdUsers, args
	case "activity", "log":
		return CmdActivity, args
	case "config":
		return CmdConfig, args
	case "version", "-v", "--version":
		return CmdVersion, args
	case "help", "-h", "--help":
		return CmdHelp, args
	default:
		Errorf("unknown command: %s", cmd)
		return CmdHelp, args
	}
}

// parseGlobalFlags strips global flags from anywhere in the argument vector
// and returns the rest in order.
func parseGlobalFlags(argv []string) ([]string, Args) {
	var args Args
	var remaining []string

	for _, a := range argv {
		switch a {
		case "--json":
			args.JSON = true
		case "--quiet", "-q":
			args.Quiet = true
		case "--verbose":
			args.Verbose = true
		default:
			remaining = append(remaining, a)
		}
	}
	return remaining, args
}

// PrintUsage writes the usage text to stdout.
func PrintUsage() {
	fmt.Print(usageText)
}

// HandleVersion prints version information.
func HandleVersion(args Args) error {
	if args.JSON {
		return NewJSONResponse("version", map[string]string{
			"version":    Version,
			"git_commit": GitCommit,
			"build_date": BuildDate,
			"go_version": runtime.Version(),
			"platform":   runtime.GOOS + "/" + runtime.GOARCH,
		}).Print()
	}
	fmt.Printf("campus %s (%s, built %s, %s %s/%s)\n",
		Version, GitCommit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return nil
}
