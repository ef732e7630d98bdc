// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// store.go - persistence of the client session state across restarts.
package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jeranaias/campus-tui/internal/access"
	"github.com/jeranaias/campus-tui/internal/util"
)

// ErrNoSession indicates no usable session state is persisted. Corrupt
// state maps to this error as well: unreadable session state is treated as
// "no session", never as a fatal fault.
var ErrNoSession = errors.New("no stored session")

// =============================================================================
// SESSION STATE
// =============================================================================

// State is the persisted client session: the bearer token, the identity it
// was issued for, and the session start timestamp.
//
// StartEpoch is stored as a decimal string, matching how the source system
// persisted it. A missing or garbage value parses to 0, which compares as
// already expired against any realistic clock (fail closed).
type State struct {
	Token      string          `json:"token"`
	Identity   access.Identity `json:"identity"`
	StartEpoch string          `json:"session_start"`
}

// StartEpochMillis parses the persisted start timestamp. Malformed input
// yields 0 rather than an error: a session whose start cannot be read is
// an expired session, not an infinite one.
func (s State) StartEpochMillis() int64 {
	ms, err := strconv.ParseInt(s.StartEpoch, 10, 64)
	if err != nil || ms < 0 {
		return 0
	}
	return ms
}

// SetStartEpochMillis records the start timestamp.
func (s *State) SetStartEpochMillis(ms int64) {
	s.StartEpoch = strconv.FormatInt(ms, 10)
}

// =============================================================================
// STORE
// =============================================================================

// Store persists session state as a JSON file. The file carries the bearer
// token, so it is written 0600 and replaced atomically.
type Store struct {
	// Path is the session state file. Default: ~/.campus/session.json.
	Path string
}

// NewStore creates a store rooted in the user's config directory.
func NewStore() (*Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return &Store{Path: filepath.Join(home, ".campus", "session.json")}, nil
}

// NewStoreWithPath creates a store with an explicit file path.
func NewStoreWithPath(path string) *Store {
	return &Store{Path: path}
}

// Save persists the session state atomically with owner-only permissions.
func (st *Store) Save(state State) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	return util.AtomicWriteFile(st.Path, data, 0600)
}

// Load reads the persisted session state. A missing file, an unreadable
// file, an unparseable blob, or a state without a token all return
// ErrNoSession; the caller treats every one of those as "not signed in".
func (st *Store) Load() (State, error) {
	data, err := os.ReadFile(st.Path)
	if err != nil {
		return State{}, ErrNoSession
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		// Corrupt state file. Fail closed: discard it.
		_ = os.Remove(st.Path)
		return State{}, ErrNoSession
	}
	if state.Token == "" {
		return State{}, ErrNoSession
	}
	return state, nil
}

// Clear removes the persisted session state. Clearing an absent file is
// not an error; teardown must always succeed locally.
func (st *Store) Clear() error {
	err := os.Remove(st.Path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
