// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the campus-tui application.
//
// This package contains common helper functions used throughout the
// application for string display, type conversion, and file operations.
//
// # Key Functions
//
// String Utilities:
//   - TruncateWidth, PadWidth: display-width aware cell formatting
//
// Type Conversion:
//   - IntToString: numeric to string conversion
//
// File Operations:
//   - AtomicWriteFile: crash-safe file writing with fsync
//
// # Usage
//
//	// Clamp long strings to a fixed-width table cell
//	cell := util.PadWidth(longText, 24)
//
//	// Write files atomically to prevent data loss
//	err := util.AtomicWriteFile(path, data, 0600)
package util
