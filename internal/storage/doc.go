// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides the local roster cache.
//
// Collections fetched from the booking backend (resources, bookings, users,
// activity) are cached in a SQLite database under ~/.campus so the last
// known state can still be shown when the backend is unreachable. The cache
// is advisory: it never substitutes for a live fetch when one succeeds, and
// stale entries are labeled with their fetch time.
package storage
