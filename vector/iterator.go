// SPDX-License-Identifier: MIT

// Package vector: element cursors.
//
// Purpose:
//   - Provide sequential element access in the scanner idiom (Next/Index/
//     Value), one mutable flavor and one read-only flavor.
//   - A cursor aliases the backing storage at creation time: it never copies
//     elements, and writes through Iter.Set are visible to every other
//     accessor immediately.
//
// Invalidation:
//   - Any operation that reallocates or shrinks the storage
//     (Resize/Extend/Reserve/Clear) invalidates live cursors; using one
//     afterwards reads stale memory. Obtain cursors per loop, do not persist.
package vector

// Iter is a mutable cursor over vector elements.
// Usage: for it.Next() { ... it.Value() ... it.Set(x) ... }.
// The zero value is not usable; obtain cursors via Vector.Iter.
type Iter struct {
	data []float64 // aliased live elements of the source vector
	pos  int       // current position; -1 before the first Next
}

// Next advances the cursor. Returns false once the elements are exhausted.
// Complexity: O(1).
func (it *Iter) Next() bool {
	it.pos++

	return it.pos < len(it.data)
}

// Index returns the index of the current element.
// Valid only after a true Next. Complexity: O(1).
func (it *Iter) Index() int {
	return it.pos
}

// Value returns the current element.
// Valid only after a true Next. Complexity: O(1).
func (it *Iter) Value() float64 {
	return it.data[it.pos]
}

// Set overwrites the current element in the source vector.
// Valid only after a true Next. Complexity: O(1).
func (it *Iter) Set(v float64) {
	it.data[it.pos] = v
}

// ConstIter is a read-only cursor over vector elements.
// Usage mirrors Iter minus Set; obtain via Vector.Values.
type ConstIter struct {
	data []float64 // aliased live elements of the source vector
	pos  int       // current position; -1 before the first Next
}

// Next advances the cursor. Returns false once the elements are exhausted.
// Complexity: O(1).
func (it *ConstIter) Next() bool {
	it.pos++

	return it.pos < len(it.data)
}

// Index returns the index of the current element.
// Valid only after a true Next. Complexity: O(1).
func (it *ConstIter) Index() int {
	return it.pos
}

// Value returns the current element.
// Valid only after a true Next. Complexity: O(1).
func (it *ConstIter) Value() float64 {
	return it.data[it.pos]
}
