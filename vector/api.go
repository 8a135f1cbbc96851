// SPDX-License-Identifier: MIT
// Package vector — public API facades (free-function dispatch layer).
//
// Purpose:
//   - Let generic algorithms invoke every vector operation through standalone
//     functions, without caring whether the value at hand is a concrete
//     *Dense or an access proxy: both implement Vector.
//   - Avoid any logic duplication — each facade is a pure one-line forwarder
//     to the same-named method and carries no state of its own.
//   - In particular, facades NEVER re-implement or bypass any restriction
//     check a proxy performs inside the forwarded method.
//
// Determinism & Policy:
//   - Facades never change the semantics, error values or complexity of the
//     underlying methods; results and failures pass through unchanged.
//
// AI-Hints:
//   - Prefer these facades in generic helpers so the same code path serves
//     raw containers and restricted views alike.

package vector

// Size returns v.Size(). Complexity: O(1).
func Size(v Vector) int { return v.Size() }

// Capacity returns v.Capacity(). Complexity: O(1).
func Capacity(v Vector) int { return v.Capacity() }

// NonZeros returns v.NonZeros(). Complexity: O(n).
func NonZeros(v Vector) int { return v.NonZeros() }

// At returns v.At(i). Complexity: O(1).
func At(v Vector, i int) (float64, error) { return v.At(i) }

// Set forwards to v.Set(i, x). Complexity: O(1).
func Set(v Vector, i int, x float64) error { return v.Set(i, x) }

// Data returns v.Data(). Complexity: O(1).
func Data(v Vector) ([]float64, error) { return v.Data() }

// IterOf returns v.Iter(), the mutable cursor. Complexity: O(1).
func IterOf(v Vector) (*Iter, error) { return v.Iter() }

// ValuesOf returns v.Values(), the read-only cursor. Complexity: O(1).
func ValuesOf(v Vector) *ConstIter { return v.Values() }

// Reset forwards to v.Reset(). Complexity: O(n).
func Reset(v Vector) { v.Reset() }

// Clear forwards to v.Clear(). Complexity: O(1).
func Clear(v Vector) { v.Clear() }

// Resize forwards to v.Resize(n, preserve). Complexity: O(n) worst case.
func Resize(v Vector, n int, preserve bool) error { return v.Resize(n, preserve) }

// Extend forwards to v.Extend(delta, preserve). Complexity: O(n) worst case.
func Extend(v Vector, delta int, preserve bool) error { return v.Extend(delta, preserve) }

// Reserve forwards to v.Reserve(n). Complexity: O(n) on reallocation.
func Reserve(v Vector, n int) error { return v.Reserve(n) }

// Scale forwards to v.Scale(s). Complexity: O(n).
func Scale(v Vector, s float64) error { return v.Scale(s) }
