// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep accessors minimal by delegating nil/index/length/finite checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap
//     uniformly with their own context tags.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//
// Note:
//   - Each validator describes what it validates and what it assumes
//     (e.g. no nil check on the length validators).

package vector

import "math"

// ValidateNotNil ensures the vector reference is non-nil.
// Returns ErrNilVector if v == nil. Complexity: O(1).
func ValidateNotNil(v Vector) error {
	// A nil interface value fails with the unified sentinel.
	if v == nil {
		return ErrNilVector
	}

	return nil
}

// ValidateIndex ensures 0 <= i < size.
// Assumes size >= 0. Returns ErrOutOfRange on violation. Complexity: O(1).
func ValidateIndex(i, size int) error {
	if i < 0 || i >= size {
		return ErrOutOfRange
	}

	return nil
}

// ValidateLength ensures a requested length/extension/capacity is non-negative.
// Returns ErrBadLength on violation. Complexity: O(1).
func ValidateLength(n int) error {
	if n < 0 {
		return ErrBadLength
	}

	return nil
}

// ValidateFinite ensures x is neither NaN nor ±Inf.
// Returns ErrNaNInf on violation. Complexity: O(1).
func ValidateFinite(x float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return ErrNaNInf
	}

	return nil
}
