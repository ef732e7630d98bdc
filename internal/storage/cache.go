// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/jeranaias/campus-tui/internal/model"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrCacheMiss indicates the requested collection has never been cached.
	ErrCacheMiss = errors.New("not in cache")

	// ErrDatabaseError wraps low-level SQLite failures.
	ErrDatabaseError = errors.New("database error")
)

// Collection keys for the cache.
const (
	CollectionResources = "resources"
	CollectionBookings  = "bookings"
	CollectionUsers     = "users"
	CollectionActivity  = "activity"
)

// schema holds each cached collection as a single JSON document keyed by
// collection name. Per-row storage buys nothing here: collections are small
// and always read whole.
const schema = `
CREATE TABLE IF NOT EXISTS collections (
	name       TEXT PRIMARY KEY,
	payload    TEXT NOT NULL,
	fetched_at INTEGER NOT NULL
);
`

// =============================================================================
// CACHE
// =============================================================================

// Cache is the local roster cache backed by SQLite.
type Cache struct {
	db *sql.DB
	mu sync.RWMutex
}

// Open opens (creating if necessary) the cache database at path.
func Open(path string) (*Cache, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA temp_store=MEMORY",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close closes the cache and releases resources.
func (c *Cache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// put stores a collection payload, replacing any previous snapshot.
func (c *Cache) put(name string, v interface{}, fetchedAt time.Time) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	_, err = c.db.Exec(
		`INSERT INTO collections (name, payload, fetched_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, fetched_at = excluded.fetched_at`,
		name, string(payload), fetchedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	return nil
}

// get loads a collection payload into out and returns its fetch time.
func (c *Cache) get(name string, out interface{}) (time.Time, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var payload string
	var fetchedAt int64
	err := c.db.QueryRow(
		"SELECT payload, fetched_at FROM collections WHERE name = ?", name,
	).Scan(&payload, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, ErrCacheMiss
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}

	if err := json.Unmarshal([]byte(payload), out); err != nil {
		// A snapshot that no longer decodes is useless; treat as a miss.
		return time.Time{}, ErrCacheMiss
	}
	return time.UnixMilli(fetchedAt), nil
}

// =============================================================================
// TYPED ACCESSORS
// =============================================================================

// PutResources caches the resource list.
func (c *Cache) PutResources(resources []model.Resource, fetchedAt time.Time) error {
	return c.put(CollectionResources, resources, fetchedAt)
}

// GetResources returns the cached resource list and its fetch time.
func (c *Cache) GetResources() ([]model.Resource, time.Time, error) {
	var resources []model.Resource
	at, err := c.get(CollectionResources, &resources)
	return resources, at, err
}

// PutBookings caches the booking list.
func (c *Cache) PutBookings(bookings []model.Booking, fetchedAt time.Time) error {
	return c.put(CollectionBookings, bookings, fetchedAt)
}

// GetBookings returns the cached booking list and its fetch time.
func (c *Cache) GetBookings() ([]model.Booking, time.Time, error) {
	var bookings []model.Booking
	at, err := c.get(CollectionBookings, &bookings)
	return bookings, at, err
}

// PutUsers caches the user roster.
func (c *Cache) PutUsers(users []model.User, fetchedAt time.Time) error {
	return c.put(CollectionUsers, users, fetchedAt)
}

// GetUsers returns the cached user roster and its fetch time.
func (c *Cache) GetUsers() ([]model.User, time.Time, error) {
	var users []model.User
	at, err := c.get(CollectionUsers, &users)
	return users, at, err
}

// PutActivity caches the activity feed.
func (c *Cache) PutActivity(records []model.ActivityRecord, fetchedAt time.Time) error {
	return c.put(CollectionActivity, records, fetchedAt)
}

// GetActivity returns the cached activity feed and its fetch time.
func (c *Cache) GetActivity() ([]model.ActivityRecord, time.Time, error) {
	var records []model.ActivityRecord
	at, err := c.get(CollectionActivity, &records)
	return records, at, err
}

// Clear drops all cached collections. Used on logout so the next account
// never sees the previous account's data.
func (c *Cache) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := c.db.Exec("DELETE FROM collections"); err != nil {
		return fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	return nil
}
