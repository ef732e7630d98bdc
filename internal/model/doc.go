// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model defines the domain records exchanged with the campus
// booking backend and the pure presentation mappings derived from them.
//
// # Key Types
//
//   - User: a roster entry (student, staff, or admin)
//   - Resource: a bookable campus resource (lab, classroom, equipment)
//   - Booking: a reservation of a resource for a date and time slot
//   - ActivityRecord: a login/logout event from the activity roster
//
// # Derivations
//
// ResourceDisplayStatus computes the label shown for a resource from its
// operational status and the booking roster, with a fixed precedence order.
// These mappings are pure: identical inputs always produce identical output.
package model
