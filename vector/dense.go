// SPDX-License-Identifier: MIT

// Package vector - Dense storage (flat slice) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly flat float64 buffer with an explicit logical
//     length and capacity (invariant: n <= cap(data)).
//   - Guarantee safety at the public surface: At/Set return errors instead of
//     panicking.
//   - Keep algorithmic determinism (fixed loop orders, exact-size
//     reallocation, no hidden growth factors).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single
//     source of truth (options.go).
//
// AI-Hints:
//   - Prefer Data() in hot loops: operate on the flat slice directly.
//   - Reserve() is the capacity-planning tool; Resize never over-allocates.
//   - DefaultValidateNaNInf is on; insert only finite values unless you
//     explicitly disable it via WithValidateNaNInf(false).
//
// Complexity quicksheet:
//   - NewDense: O(n) zero-init; At/Set: O(1); NonZeros/Reset/Scale: O(n);
//     Resize/Extend/Reserve: O(n) on reallocation; Clear: O(1); Clone: O(n).

package vector

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"      // method tag used in error wrappers
	ctxSet     = "Set"     // method tag used in error wrappers
	ctxResize  = "Resize"  // method tag used in error wrappers
	ctxExtend  = "Extend"  // method tag used in error wrappers
	ctxReserve = "Reserve" // method tag used in error wrappers
	ctxScale   = "Scale"   // method tag used in error wrappers
)

// ---------- Formatting literals ----------

const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite index.
// Stable, human-friendly messages; preserves the sentinel via %w.
// Complexity: O(1).
func denseErrorf(method string, i int, err error) error {
	return fmt.Errorf("Dense.%s(%d): %w", method, i, err)
}

// Dense is a concrete dense vector.
//   - n holds the logical element count (0 <= n <= cap(data)).
//   - data is the flat backing buffer; the live elements are data[:n].
//   - validateNaNInf enables optional NaN/Inf rejection in Set/Scale
//     (policy default from options.go).
type Dense struct {
	n              int       // logical length (size)
	data           []float64 // flat backing storage, len(data) == cap in use
	validateNaNInf bool      // numeric guard: reject NaN/Inf when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Vector       = (*Dense)(nil) // *Dense implements the public Vector interface
	_ fmt.Stringer = (*Dense)(nil) // *Dense implements fmt.Stringer
)

// NewDense creates a zero-initialized dense vector of length n.
// Stage 1 (Validate): ensure n >= 0 (and option sanity, via panics).
// Stage 2 (Prepare): allocate the flat backing slice, honoring WithCapacity.
// Stage 3 (Finalize): return the new Dense or ErrBadLength.
// Complexity: O(max(n, capacity)) time and memory.
func NewDense(n int, opts ...Option) (*Dense, error) {
	// Validate requested length.
	if n < 0 {
		return nil, ErrBadLength
	}
	// Resolve effective options (capacity request, numeric policy).
	o := gatherOptions(opts...)

	// Clamp the capacity request up to the length.
	c := o.capacity
	if c < n {
		c = n
	}
	// Allocate the full capacity up front; live elements are data[:n].
	data := make([]float64, c)

	// Return the initialized vector.
	return &Dense{n: n, data: data, validateNaNInf: o.validateNaNInf}, nil
}

// NewDenseFrom creates a dense vector holding a copy of vals.
// The input slice is copied; the vector never aliases caller memory.
// Complexity: O(len(vals)) time and memory.
func NewDenseFrom(vals []float64, opts ...Option) (*Dense, error) {
	// Allocate through the strict constructor to share validation and policy.
	d, err := NewDense(len(vals), opts...)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	// Copy caller values into the fresh backing storage.
	copy(d.data, vals)

	return d, nil
}

// Size returns the current number of elements.
// Complexity: O(1).
func (d *Dense) Size() int {
	return d.n // return stored logical length
}

// Capacity returns the number of elements the backing storage can hold.
// Complexity: O(1).
func (d *Dense) Capacity() int {
	return len(d.data) // full backing length is the usable capacity
}

// NonZeros returns the number of elements different from zero.
// The count is always <= Size(). Complexity: O(n).
func (d *Dense) NonZeros() int {
	nz := 0
	for i := 0; i < d.n; i++ { // fixed index order, no hidden iteration
		if d.data[i] != 0 {
			nz++
		}
	}

	return nz
}

// At retrieves the element at index i.
// Stage 1 (Validate): bounds check.
// Stage 2 (Execute): read from the flat slice.
// Complexity: O(1).
func (d *Dense) At(i int) (float64, error) {
	// Validate the index against the logical length.
	if err := ValidateIndex(i, d.n); err != nil {
		return 0, denseErrorf(ctxAt, i, err)
	}

	// Return the stored value.
	return d.data[i], nil
}

// Set assigns value v at index i.
// Stage 1 (Validate): bounds check, then numeric policy.
// Stage 2 (Execute): write into the flat slice.
// Complexity: O(1).
func (d *Dense) Set(i int, v float64) error {
	// Validate the index against the logical length.
	if err := ValidateIndex(i, d.n); err != nil {
		return denseErrorf(ctxSet, i, err)
	}
	// Enforce the numeric policy before any mutation.
	if d.validateNaNInf {
		if err := ValidateFinite(v); err != nil {
			return denseErrorf(ctxSet, i, err)
		}
	}
	// Assign the value.
	d.data[i] = v

	return nil
}

// Data exposes the live elements of the backing storage without copying.
// The returned slice aliases the vector: writes through it are visible to
// every other accessor. Invalidated by Resize/Extend/Reserve/Clear.
// The error return exists for Vector conformance; *Dense never fails here.
// Complexity: O(1).
func (d *Dense) Data() ([]float64, error) {
	return d.data[:d.n:d.n], nil // full-slice expression caps hidden append growth
}

// Iter returns a mutable cursor over the live elements.
// The error return exists for Vector conformance; *Dense never fails here.
// Complexity: O(1).
func (d *Dense) Iter() (*Iter, error) {
	return &Iter{data: d.data[:d.n], pos: -1}, nil
}

// Values returns a read-only cursor over the live elements.
// Complexity: O(1).
func (d *Dense) Values() *ConstIter {
	return &ConstIter{data: d.data[:d.n], pos: -1}
}

// Reset sets every element to zero. Size and capacity are unchanged.
// Complexity: O(n).
func (d *Dense) Reset() {
	for i := 0; i < d.n; i++ { // fixed index order
		d.data[i] = 0
	}
}

// Clear empties the vector: Size() becomes 0, capacity is retained.
// Complexity: O(1).
func (d *Dense) Clear() {
	d.n = 0 // drop the logical length; storage stays allocated
}

// Resize changes the number of elements to n.
// Stage 1 (Validate): ensure n >= 0.
// Stage 2 (Execute): adjust the logical length in place when capacity
// suffices; otherwise reallocate to exactly n elements.
// Stage 3 (Finalize): with preserve=true the surviving prefix keeps its
// values; newly addressable elements hold unspecified values.
// Complexity: O(n) on reallocation, O(1) otherwise.
func (d *Dense) Resize(n int, preserve bool) error {
	// Validate the requested length.
	if err := ValidateLength(n); err != nil {
		return denseErrorf(ctxResize, n, err)
	}
	// Fast path: the current storage already holds n elements.
	if n <= len(d.data) {
		d.n = n

		return nil
	}
	// Reallocate to exactly the requested length (deterministic, no growth factor).
	fresh := make([]float64, n)
	if preserve {
		copy(fresh, d.data[:d.n]) // keep the surviving prefix
	}
	d.data = fresh
	d.n = n

	return nil
}

// Extend grows the vector by delta additional elements.
// Equivalent to Resize(Size()+delta, preserve); delta < 0 is rejected.
// Complexity: O(n) on reallocation, O(1) otherwise.
func (d *Dense) Extend(delta int, preserve bool) error {
	// Validate the extension before delegating.
	if err := ValidateLength(delta); err != nil {
		return denseErrorf(ctxExtend, delta, err)
	}

	// Delegate to Resize with the grown length.
	return d.Resize(d.n+delta, preserve)
}

// Reserve grows the capacity to at least n elements.
// Size and every element value are preserved.
// Complexity: O(n) on reallocation, O(1) otherwise.
func (d *Dense) Reserve(n int) error {
	// Validate the requested capacity.
	if err := ValidateLength(n); err != nil {
		return denseErrorf(ctxReserve, n, err)
	}
	// Nothing to do when the storage is already large enough.
	if n <= len(d.data) {
		return nil
	}
	// Reallocate and preserve all current values.
	fresh := make([]float64, n)
	copy(fresh, d.data[:d.n])
	d.data = fresh

	return nil
}

// Scale multiplies every element by s in place.
// Stage 1 (Validate): numeric policy on the scalar.
// Stage 2 (Execute): single fixed-order pass over the live elements.
// Complexity: O(n).
func (d *Dense) Scale(s float64) error {
	// Enforce the numeric policy before any mutation.
	if d.validateNaNInf {
		if err := ValidateFinite(s); err != nil {
			return denseErrorf(ctxScale, 0, err)
		}
	}
	// Multiply each live element.
	for i := 0; i < d.n; i++ { // fixed index order
		d.data[i] *= s
	}

	return nil
}

// Clone returns a deep copy of the vector (same length, values and policy;
// capacity shrinks to the logical length).
// Complexity: O(n) time and memory.
func (d *Dense) Clone() *Dense {
	// Allocate a fresh slice and copy the live elements.
	fresh := make([]float64, d.n)
	copy(fresh, d.data[:d.n])

	return &Dense{n: d.n, data: fresh, validateNaNInf: d.validateNaNInf}
}

// String implements fmt.Stringer for easy debugging, e.g. "[1, 2, 3]".
// Complexity: O(n) for string construction.
func (d *Dense) String() string {
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for i := 0; i < d.n; i++ { // iterate live elements in index order
		if i > 0 {
			b.WriteString(_fmtSep) // separate values with a comma
		}
		b.WriteString(fmt.Sprintf("%g", d.data[i]))
	}
	b.WriteString(_fmtClose)

	return b.String()
}
