// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// deps.go - shared collaborators for the CLI command handlers.
package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/jeranaias/campus-tui/internal/access"
	"github.com/jeranaias/campus-tui/internal/api"
	"github.com/jeranaias/campus-tui/internal/config"
	"github.com/jeranaias/campus-tui/internal/session"
	"github.com/jeranaias/campus-tui/internal/storage"
)

// ErrSessionExpired indicates the stored session ran past its 15 minute
// quota. The handler clears the state and asks the user to sign in again.
var ErrSessionExpired = errors.New("session expired, sign in again with 'campus login'")

// ErrNotSignedIn indicates no usable stored session.
var ErrNotSignedIn = errors.New("not signed in, run 'campus login' first")

// Deps carries everything the command handlers need. The TUI builds the
// same set in main, so CLI commands and the TUI share one session file and
// one cache.
type Deps struct {
	Config *config.Config
	Client *api.Client
	Store  *session.Store
	Cache  *storage.Cache // nil when caching is disabled
}

// NewDeps loads configuration and wires the client, session store, and
// cache. A cache open failure degrades to no cache rather than failing the
// command.
func NewDeps() (*Deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	client := api.NewClient(cfg.API.BaseURL).
		WithTimeout(time.Duration(cfg.API.TimeoutSecs) * time.Second).
		WithMaxRetries(cfg.API.MaxRetries)

	store, err := session.NewStore()
	if err != nil {
		return nil, fmt.Errorf("session store: %w", err)
	}

	d := &Deps{Config: cfg, Client: client, Store: store}

	if cfg.Cache.Enabled {
		path, err := cfg.CachePath()
		if err == nil {
			if cache, err := storage.Open(path); err == nil {
				d.Cache = cache
			}
		}
	}

	return d, nil
}

// Close releases held resources.
func (d *Deps) Close() {
	if d.Cache != nil {
		d.Cache.Close()
	}
}

// SignedIn loads the stored session, enforces the session quota for timed
// roles, and installs the token on the client. Corrupt or expired state
// fails closed: it is cleared and the caller gets an error, never a
// signed-in client.
func (d *Deps) SignedIn() (session.State, error) {
	state, err := d.Store.Load()
	if err != nil {
		return session.State{}, ErrNotSignedIn
	}

	if access.SessionTimed(state.Identity) {
		clock := session.NewClock()
		clock.Resume(state.StartEpochMillis())
		if clock.ExpiredAt(time.Now()) {
			d.Store.Clear()
			if d.Cache != nil {
				d.Cache.Clear()
			}
			return session.State{}, ErrSessionExpired
		}
	}

	d.Client.SetToken(state.Token)
	return state, nil
}
