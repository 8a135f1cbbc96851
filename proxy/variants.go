// SPDX-License-Identifier: MIT

// Package proxy: stock restriction-predicate variants.
//
// Purpose:
//   - Cover the common view kinds without forcing every caller to write a
//     predicate: always-writable full views, immutable aliases, and views
//     whose writability flips on an external event.
//   - Each variant is a plain value implementing Restricter; the forwarding
//     proxy depends only on the interface, never on these concrete types.
package proxy

import "github.com/katalvlaran/vecview/vector"

// ReadWrite is the full-view predicate: mutation is never forbidden.
type ReadWrite struct{}

// IsRestricted always reports false. Complexity: O(1).
func (ReadWrite) IsRestricted() bool { return false }

// ReadOnly is the immutable-alias predicate: mutation is always forbidden.
// Read-only paths (Size/Capacity/NonZeros/Values) remain fully available.
type ReadOnly struct{}

// IsRestricted always reports true. Complexity: O(1).
func (ReadOnly) IsRestricted() bool { return true }

// Latch is a toggleable predicate for views whose writability changes over
// time — e.g. a view that becomes writable once some external setup
// completes. The zero value is unrestricted.
//
// Concurrency: a plain flag; flipping it concurrently with proxy operations
// requires external synchronization, same as every representee access.
type Latch struct {
	restricted bool // current answer; false in the zero value
}

// Restrict forbids mutation through proxies guarded by this latch.
func (l *Latch) Restrict() { l.restricted = true }

// Release permits mutation through proxies guarded by this latch.
func (l *Latch) Release() { l.restricted = false }

// IsRestricted reports the current latch state. Complexity: O(1).
func (l *Latch) IsRestricted() bool { return l.restricted }

// Compile-time assertions: every stock variant satisfies Restricter.
var (
	_ Restricter = ReadWrite{}
	_ Restricter = ReadOnly{}
	_ Restricter = (*Latch)(nil)
	_ Restricter = RestrictFunc(nil)
)

// NewWritable wraps target in an always-writable full view.
// Shorthand for New(target, ReadWrite{}). Complexity: O(1).
func NewWritable(target vector.Vector) (*VectorProxy, error) {
	return New(target, ReadWrite{})
}

// NewFrozen wraps target in an immutable alias: every mutating operation is
// denied with ErrAccessRestricted, reads stay available.
// Shorthand for New(target, ReadOnly{}). Complexity: O(1).
func NewFrozen(target vector.Vector) (*VectorProxy, error) {
	return New(target, ReadOnly{})
}
