// SPDX-License-Identifier: MIT
// Package vector: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the vector
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions.
// Panics are reserved for programmer errors in option constructors.

package vector

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "vector: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrNilVector indicates that a nil Vector (receiver or argument) was used.
	ErrNilVector = errors.New("vector: nil vector")

	// ErrOutOfRange indicates that an element index is outside [0, Size()).
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrBadLength is returned when a requested length, extension or capacity
	// is negative. Resize/Extend/Reserve must validate before any mutation.
	ErrBadLength = errors.New("vector: invalid length")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required by the numeric policy (Set, Scale).
	ErrNaNInf = errors.New("vector: NaN or Inf encountered")
)
