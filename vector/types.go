// SPDX-License-Identifier: MIT

// Package vector: domain types shared by the concrete container and views.
// This file intentionally contains ONLY the public Vector interface and its
// contract. Errors and options live in dedicated files (errors.go,
// options.go) per the global conventions.
//
// Rationale for a shared interface:
//   - Generic numeric code is written once against Vector and works
//     identically on a concrete *Dense and on any access proxy wrapping one.
//   - Operations that a proxy may deny carry an error return even where the
//     concrete container cannot fail; the container simply returns nil.
package vector

// Vector is the complete operation surface of a dense, vector-shaped
// container. Both *Dense and access proxies implement it, so algorithms
// never specialize on which one they hold.
//
// Error discipline: methods that can be denied by a restricted view return
// an error; pure reads (Size/Capacity/NonZeros/Values) cannot fail and do
// not. Reset and Clear delegate unconditionally on every implementation and
// therefore carry no error either.
//
// Complexity notes: all methods are O(1) except NonZeros, Reset, Scale
// (O(n)) and Resize/Extend/Reserve (O(n) on reallocation).
type Vector interface {
	// Size returns the current number of elements.
	// Complexity: O(1).
	Size() int

	// Capacity returns the maximum number of elements the current storage
	// can hold without reallocation. Invariant: Size() <= Capacity().
	// Complexity: O(1).
	Capacity() int

	// NonZeros returns the number of elements different from zero.
	// Always <= Size(). Complexity: O(n).
	NonZeros() int

	// At retrieves the element at index i.
	// Returns ErrOutOfRange if i < 0 or i >= Size().
	// Complexity: O(1).
	At(i int) (float64, error)

	// Set assigns the value v at index i.
	// Returns ErrOutOfRange for invalid indices and ErrNaNInf when the
	// numeric policy rejects non-finite values.
	// Complexity: O(1).
	Set(i int, v float64) error

	// Data exposes the backing storage of the current elements. The returned
	// slice aliases the container: writes through it are visible to every
	// other accessor. It is invalidated by Resize/Extend/Reserve/Clear.
	// Complexity: O(1).
	Data() ([]float64, error)

	// Iter returns a mutable cursor over the elements. Writes through the
	// cursor are visible to every other accessor.
	// Complexity: O(1) to obtain, O(1) per step.
	Iter() (*Iter, error)

	// Values returns a read-only cursor over the elements. It is always
	// available, regardless of any view restriction.
	// Complexity: O(1) to obtain, O(1) per step.
	Values() *ConstIter

	// Reset sets every element to zero. Size and capacity are unchanged.
	// Complexity: O(n).
	Reset()

	// Clear empties the container: Size() becomes 0, capacity is retained.
	// Complexity: O(1).
	Clear()

	// Resize changes the number of elements to n.
	// Returns ErrBadLength if n < 0. With preserve=true, elements at indices
	// valid both before and after keep their values; any newly addressable
	// elements hold unspecified values. May reallocate when n > Capacity().
	// Complexity: O(n) worst case.
	Resize(n int, preserve bool) error

	// Extend grows the container by delta additional elements.
	// Returns ErrBadLength if delta < 0. Equivalent to
	// Resize(Size()+delta, preserve). Complexity: O(n) worst case.
	Extend(delta int, preserve bool) error

	// Reserve grows the capacity to at least n elements. Size and every
	// element value are preserved. Returns ErrBadLength if n < 0.
	// Complexity: O(n) on reallocation, O(1) otherwise.
	Reserve(n int) error

	// Scale multiplies every element by s in place.
	// Returns ErrNaNInf when the numeric policy rejects a non-finite s.
	// Complexity: O(n).
	Scale(s float64) error
}
