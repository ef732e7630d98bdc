// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// auth_cmd.go - login and logout command handlers.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jeranaias/campus-tui/internal/access"
	"github.com/jeranaias/campus-tui/internal/session"
)

const commandTimeout = 30 * time.Second

// HandleLogin signs in and persists the session so later commands and the
// TUI pick it up. Email comes from the first positional argument or a
// prompt; the password from --password or a no-echo prompt.
func HandleLogin(deps *Deps, args Args) error {
	p := NewArgParser(args.Raw)

	email := strings.TrimSpace(p.Positional(0))
	if email == "" {
		if !IsTTY() {
			return fmt.Errorf("email required: campus login <email>")
		}
		fmt.Fprint(os.Stderr, "Email: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return fmt.Errorf("read email: %w", err)
		}
		email = strings.TrimSpace(line)
	}

	password := p.Flag("password")
	if password == "" {
		if !IsTTY() {
			return fmt.Errorf("password required: use --password or run interactively")
		}
		var err error
		password, err = ReadPassword("Password: ")
		if err != nil {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	resp, err := deps.Client.Login(ctx, email, password)
	if err != nil {
		if args.JSON {
			return NewJSONErrorResponse("login", err).Print()
		}
		return err
	}

	state := session.State{Token: resp.Token, Identity: resp.User}
	if access.SessionTimed(resp.User) {
		state.SetStartEpochMillis(time.Now().UnixMilli())
	}
	if err := deps.Store.Save(state); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	variant := access.ResolveVariant(resp.User)
	if args.JSON {
		return NewJSONResponse("login", map[string]interface{}{
			"user":    resp.User,
			"portal":  variant.String(),
			"timed":   access.SessionTimed(resp.User),
			"expires": sessionExpiry(state),
		}).Print()
	}

	Successf("Signed in as %s (%s)", resp.User.Email, resp.User.Role)
	if access.SessionTimed(resp.User) {
		Mutedf("Session expires in 15:00")
	}
	return nil
}

// HandleLogout clears the stored session. The server-side logout is best
// effort: local state is cleared even when the backend is unreachable.
func HandleLogout(deps *Deps, args Args) error {
	state, err := deps.Store.Load()
	if err == nil && state.Token != "" {
		deps.Client.SetToken(state.Token)
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		if err := deps.Client.Logout(ctx); err != nil && !args.Quiet {
			Warnf("Backend logout failed: %v", err)
		}
		cancel()
	}

	deps.Store.Clear()
	if deps.Cache != nil {
		deps.Cache.Clear()
	}

	if args.JSON {
		return NewJSONResponse("logout", map[string]bool{"signed_out": true}).Print()
	}
	Successf("Signed out")
	return nil
}

// sessionExpiry returns the expiry timestamp for a timed session, or ""
// for untimed sessions.
func sessionExpiry(state session.State) string {
	start := state.StartEpochMillis()
	if start == 0 {
		return ""
	}
	return time.UnixMilli(start).Add(session.Duration).UTC().Format(time.RFC3339)
}
