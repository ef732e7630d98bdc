// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the non-interactive command surface of campus:
// argument parsing, terminal helpers, and the handlers behind the
// login/status/listing subcommands. Running the binary with no command
// starts the TUI instead.
package cli
