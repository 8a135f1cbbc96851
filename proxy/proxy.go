// SPDX-License-Identifier: MIT

// Package proxy - capability-gated forwarding onto a dense vector.
//
// Purpose:
//   - Present the complete vector.Vector surface for a vector the proxy does
//     not own, forwarding every call to the representee.
//   - Gate the fixed set of mutating operations behind the restriction
//     predicate; a denied call returns ErrAccessRestricted and never touches
//     the representee (no partial mutation).
//   - Add NO semantics of its own beyond the gate: representee failures
//     (out-of-range, invalid length, numeric policy) propagate unchanged,
//     and indexing gets no extra bounds check here.
//
// Gating table (fixed, do not extend ad hoc):
//   - gated:   At, Set, Data, Iter, Resize, Extend, Reserve, Scale
//   - ungated: Size, Capacity, NonZeros, Values, Reset, Clear
//
// Reset and Clear mutate element values / the element count, yet delegate
// without a check: they do not change which elements are addressable nor
// hand out write capability. This asymmetry is part of the contract and is
// pinned by tests.
//
// AI-Hints:
//   - The predicate is re-read on every gated call; wrap time-varying state
//     in a Latch or RestrictFunc rather than rebuilding proxies.
//   - A proxy is a plain borrow: it must not outlive its representee.

package proxy

import (
	"fmt"

	"github.com/katalvlaran/vecview/vector"
)

// ---------- denied-operation tags ----------

const (
	opAt      = "At"      // operation tag carried by gate denials
	opSet     = "Set"     // operation tag carried by gate denials
	opData    = "Data"    // operation tag carried by gate denials
	opIter    = "Iter"    // operation tag carried by gate denials
	opResize  = "Resize"  // operation tag carried by gate denials
	opExtend  = "Extend"  // operation tag carried by gate denials
	opReserve = "Reserve" // operation tag carried by gate denials
	opScale   = "Scale"   // operation tag carried by gate denials
)

// proxyErrorf wraps a sentinel with the denied operation name.
// Stable, human-friendly messages; preserves the sentinel via %w.
// Complexity: O(1).
func proxyErrorf(op string, err error) error {
	return fmt.Errorf("VectorProxy.%s: %w", op, err)
}

// VectorProxy is a non-owning handle onto a vector.Vector. It forwards the
// full vector surface to the representee and gates mutating operations
// behind a Restricter.
//
// Lifetime: a VectorProxy borrows its representee; validity is exactly the
// representee's validity. Proxies are cheap, typically created per call
// site and discarded, not persisted.
//
// Concurrency: no locking is performed; the proxy assumes exclusive access
// to the representee for the duration of any single operation. Sharing one
// representee across goroutines requires external synchronization.
type VectorProxy struct {
	target vector.Vector // the represented vector (never nil after New)
	guard  Restricter    // restriction predicate (never nil after New)
}

// Compile-time assertion: the proxy offers the full vector surface.
var _ vector.Vector = (*VectorProxy)(nil)

// New constructs a proxy standing for target, gated by guard.
// Stage 1 (Validate): a proxy is never valid without a representee or a
// predicate — reject nil inputs with the dedicated sentinels.
// Stage 2 (Finalize): return the handle; no storage is allocated or copied.
// Complexity: O(1).
func New(target vector.Vector, guard Restricter) (*VectorProxy, error) {
	// Reject a handle with nothing to stand for.
	if err := vector.ValidateNotNil(target); err != nil {
		return nil, ErrNilRepresentee
	}
	// Reject a handle with no gating policy; ReadWrite{} is the explicit
	// "never restricted" choice.
	if guard == nil {
		return nil, ErrNilPredicate
	}

	return &VectorProxy{target: target, guard: guard}, nil
}

// gate evaluates the restriction predicate for one gated operation.
// Returns nil when the operation may proceed, or the wrapped
// ErrAccessRestricted denial. The predicate is consulted fresh on every
// call — no caching. Complexity: O(1) plus the predicate itself.
func (p *VectorProxy) gate(op string) error {
	if p.guard.IsRestricted() {
		return proxyErrorf(op, ErrAccessRestricted)
	}

	return nil
}

// ---------- gated operations ----------

// At retrieves the element at index i through the view.
// Gated: indexed access grants write capability on the same path, so even
// reads through it are denied on a restricted view; use Values for the
// always-available read path. Out-of-range behavior is representee-defined.
func (p *VectorProxy) At(i int) (float64, error) {
	// Deny before touching the representee.
	if err := p.gate(opAt); err != nil {
		return 0, err
	}

	// Forward verbatim; representee errors propagate unchanged.
	return p.target.At(i)
}

// Set assigns value v at index i through the view.
// Gated: direct write capability.
func (p *VectorProxy) Set(i int, v float64) error {
	// Deny before touching the representee.
	if err := p.gate(opSet); err != nil {
		return err
	}

	// Forward verbatim; representee errors propagate unchanged.
	return p.target.Set(i, v)
}

// Data exposes the representee's backing storage.
// Gated: the raw slice is unmediated write capability.
func (p *VectorProxy) Data() ([]float64, error) {
	// Deny before touching the representee.
	if err := p.gate(opData); err != nil {
		return nil, err
	}

	// Forward verbatim.
	return p.target.Data()
}

// Iter returns the representee's mutable cursor.
// Gated: a cursor obtained this way permits writes.
func (p *VectorProxy) Iter() (*vector.Iter, error) {
	// Deny before touching the representee.
	if err := p.gate(opIter); err != nil {
		return nil, err
	}

	// Forward verbatim.
	return p.target.Iter()
}

// Resize changes the representee's size.
// Gated: changes capacity/contents, a write capability.
func (p *VectorProxy) Resize(n int, preserve bool) error {
	// Deny before touching the representee.
	if err := p.gate(opResize); err != nil {
		return err
	}

	// Forward verbatim; representee errors propagate unchanged.
	return p.target.Resize(n, preserve)
}

// Extend grows the representee by delta elements.
// Gated: changes capacity/contents, a write capability.
func (p *VectorProxy) Extend(delta int, preserve bool) error {
	// Deny before touching the representee.
	if err := p.gate(opExtend); err != nil {
		return err
	}

	// Forward verbatim; representee errors propagate unchanged.
	return p.target.Extend(delta, preserve)
}

// Reserve raises the representee's capacity.
// Gated: changes capacity, a write capability.
func (p *VectorProxy) Reserve(n int) error {
	// Deny before touching the representee.
	if err := p.gate(opReserve); err != nil {
		return err
	}

	// Forward verbatim; representee errors propagate unchanged.
	return p.target.Reserve(n)
}

// Scale multiplies every representee element by s.
// Gated: mutates every element.
func (p *VectorProxy) Scale(s float64) error {
	// Deny before touching the representee.
	if err := p.gate(opScale); err != nil {
		return err
	}

	// Forward verbatim; representee errors propagate unchanged.
	return p.target.Scale(s)
}

// ---------- ungated operations ----------

// Size returns the representee's element count. Pure read, never gated.
func (p *VectorProxy) Size() int {
	return p.target.Size()
}

// Capacity returns the representee's capacity. Pure read, never gated.
func (p *VectorProxy) Capacity() int {
	return p.target.Capacity()
}

// NonZeros returns the representee's non-zero count. Pure read, never gated.
func (p *VectorProxy) NonZeros() int {
	return p.target.NonZeros()
}

// Values returns the representee's read-only cursor. A read-only cursor
// cannot violate a restriction, so it is always available.
func (p *VectorProxy) Values() *vector.ConstIter {
	return p.target.Values()
}

// Reset zeroes the representee's elements. Direct delegation, no gate:
// Reset does not change which elements are addressable and hands out no
// write capability.
func (p *VectorProxy) Reset() {
	p.target.Reset()
}

// Clear empties the representee. Direct delegation, no gate: Clear drops
// the element count to zero and hands out no write capability.
func (p *VectorProxy) Clear() {
	p.target.Clear()
}
