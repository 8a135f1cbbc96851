// Package proxy_test contains unit tests for VectorProxy: the gating table,
// the no-partial-mutation guarantee, and verbatim delegation.
package proxy_test

import (
	"testing"

	"github.com/katalvlaran/vecview/proxy"
	"github.com/katalvlaran/vecview/vector"
	"github.com/stretchr/testify/require"
)

// snapshot captures the observable state of a vector for before/after checks.
type snapshot struct {
	size     int
	capacity int
	nonZeros int
	elems    []float64
}

// snap reads the full observable state of v.
func snap(t *testing.T, v *vector.Dense) snapshot {
	t.Helper()
	raw, err := v.Data() // direct access to the representee, no proxy involved
	require.NoError(t, err)
	elems := append([]float64(nil), raw...) // copy, the raw slice stays live

	return snapshot{size: v.Size(), capacity: v.Capacity(), nonZeros: v.NonZeros(), elems: elems}
}

// TestNewRejectsNilInputs ensures a proxy cannot exist without a representee
// or a predicate.
func TestNewRejectsNilInputs(t *testing.T) {
	v, err := vector.NewDense(1)
	require.NoError(t, err)

	_, err = proxy.New(nil, proxy.ReadWrite{})           // no representee
	require.ErrorIs(t, err, proxy.ErrNilRepresentee)     // rejected with the sentinel

	_, err = proxy.New(v, nil)                       // no predicate
	require.ErrorIs(t, err, proxy.ErrNilPredicate)   // rejected with the sentinel
}

// TestRestrictedGateDeniesEveryMutatingOp drives each gated operation on a
// frozen view and verifies (a) the AccessRestricted sentinel and (b) that
// the representee is left byte-for-byte unchanged.
func TestRestrictedGateDeniesEveryMutatingOp(t *testing.T) {
	v, err := vector.NewDenseFrom([]float64{1, 2, 3}, vector.WithCapacity(4)) // seed [1,2,3]
	require.NoError(t, err)
	p, err := proxy.NewFrozen(v) // immutable alias
	require.NoError(t, err)

	before := snap(t, v) // observable state before any denial

	// Each case invokes one gated operation through the frozen view.
	cases := []struct {
		name string
		call func() error
	}{
		{"At", func() error { _, err := p.At(0); return err }},
		{"Set", func() error { return p.Set(0, 9) }},
		{"Data", func() error { _, err := p.Data(); return err }},
		{"Iter", func() error { _, err := p.Iter(); return err }},
		{"Resize", func() error { return p.Resize(5, true) }},
		{"Extend", func() error { return p.Extend(2, true) }},
		{"Reserve", func() error { return p.Reserve(10) }},
		{"Scale", func() error { return p.Scale(2) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.call()                                      // invoke the gated operation
			require.ErrorIs(t, err, proxy.ErrAccessRestricted)    // denied with the sentinel
			require.Equal(t, before, snap(t, v))                  // representee untouched
		})
	}
}

// TestRestrictedReadsStayAvailable verifies that pure reads succeed on a
// frozen view and agree with direct calls on the representee.
func TestRestrictedReadsStayAvailable(t *testing.T) {
	v, err := vector.NewDenseFrom([]float64{1, 0, 3}, vector.WithCapacity(6)) // seed [1,0,3]
	require.NoError(t, err)
	p, err := proxy.NewFrozen(v) // immutable alias
	require.NoError(t, err)

	require.Equal(t, v.Size(), p.Size())         // size agrees with direct access
	require.Equal(t, v.Capacity(), p.Capacity()) // capacity agrees
	require.Equal(t, v.NonZeros(), p.NonZeros()) // non-zero count agrees

	it := p.Values() // the read-only cursor is never gated
	var got []float64
	for it.Next() {
		got = append(got, it.Value())
	}
	require.Equal(t, []float64{1, 0, 3}, got) // full read access despite the restriction
}

// TestRestrictedResetAndClearBypassGate pins the intentional asymmetry:
// Reset and Clear mutate element values / the element count, yet delegate
// directly even on a frozen view. Known quirk, preserved deliberately.
func TestRestrictedResetAndClearBypassGate(t *testing.T) {
	v, err := vector.NewDenseFrom([]float64{1, 2, 3}) // seed [1,2,3]
	require.NoError(t, err)
	p, err := proxy.NewFrozen(v) // fully restricted view
	require.NoError(t, err)

	p.Reset()                         // not gated: succeeds on a frozen view
	require.Equal(t, 0, v.NonZeros()) // the representee really was zeroed
	require.Equal(t, 3, v.Size())     // size untouched by Reset

	p.Clear()                     // not gated either
	require.Equal(t, 0, v.Size()) // the representee really was emptied
}

// TestUnrestrictedRoundTrip writes through a writable proxy and reads back
// directly from the representee.
func TestUnrestrictedRoundTrip(t *testing.T) {
	v, err := vector.NewDense(3) // zeros [0,0,0]
	require.NoError(t, err)
	p, err := proxy.NewWritable(v) // full view
	require.NoError(t, err)

	for i := 0; i < v.Size(); i++ { // every valid index
		want := float64(i) + 0.5
		require.NoError(t, p.Set(i, want)) // write through the proxy

		got, err := v.At(i) // read directly from the representee
		require.NoError(t, err)
		require.Equal(t, want, got) // the write landed
	}
}

// TestUnrestrictedForwardingMatchesDirectCalls drives the full surface of a
// writable proxy and compares against the same operations on a twin vector.
func TestUnrestrictedForwardingMatchesDirectCalls(t *testing.T) {
	v, err := vector.NewDenseFrom([]float64{1, 2, 3}) // proxied vector
	require.NoError(t, err)
	twin := v.Clone() // same values, operated on directly
	p, err := proxy.NewWritable(v)
	require.NoError(t, err)

	require.NoError(t, p.Scale(2))    // through the proxy
	require.NoError(t, twin.Scale(2)) // directly

	require.NoError(t, p.Resize(5, true)) // through the proxy
	require.NoError(t, twin.Resize(5, true))

	require.NoError(t, p.Reserve(8)) // through the proxy
	require.NoError(t, twin.Reserve(8))

	require.Equal(t, twin.Size(), p.Size())         // identical sizes
	require.Equal(t, twin.Capacity(), p.Capacity()) // identical capacities
	for i := 0; i < 3; i++ {                        // identical surviving elements
		want, err := twin.At(i)
		require.NoError(t, err)
		got, err := p.At(i)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

// TestScaleThroughProxyAndDenial covers the scale example end to end:
// writable proxy doubles [1,2,3]; frozen proxy leaves it unchanged.
func TestScaleThroughProxyAndDenial(t *testing.T) {
	v, err := vector.NewDenseFrom([]float64{1, 2, 3}) // seed [1,2,3]
	require.NoError(t, err)

	writable, err := proxy.NewWritable(v)
	require.NoError(t, err)
	require.NoError(t, writable.Scale(2)) // doubles every element

	raw, err := v.Data()
	require.NoError(t, err)
	require.Equal(t, []float64{2, 4, 6}, raw) // [2,4,6]

	frozen, err := proxy.NewFrozen(v)
	require.NoError(t, err)
	require.ErrorIs(t, frozen.Scale(3), proxy.ErrAccessRestricted) // denied

	raw, err = v.Data()
	require.NoError(t, err)
	require.Equal(t, []float64{2, 4, 6}, raw) // unchanged after the denial
}

// TestDelegatedFailuresPassThroughUnwrapped ensures representee errors cross
// the proxy unchanged: the vector sentinels still match with errors.Is and
// no proxy sentinel is attached.
func TestDelegatedFailuresPassThroughUnwrapped(t *testing.T) {
	v, err := vector.NewDense(2)
	require.NoError(t, err)
	p, err := proxy.NewWritable(v)
	require.NoError(t, err)

	_, err = p.At(7)                                        // representee-defined failure
	require.ErrorIs(t, err, vector.ErrOutOfRange)           // vector sentinel intact
	require.NotErrorIs(t, err, proxy.ErrAccessRestricted)   // no proxy semantics added

	err = p.Resize(-1, true)                      // invalid length, detected by the representee
	require.ErrorIs(t, err, vector.ErrBadLength)  // passes through unmodified
}

// TestIterThroughWritableProxyWrites ensures the mutable cursor obtained via
// an unrestricted proxy writes into the representee.
func TestIterThroughWritableProxyWrites(t *testing.T) {
	v, err := vector.NewDenseFrom([]float64{1, 2}) // seed [1,2]
	require.NoError(t, err)
	p, err := proxy.NewWritable(v)
	require.NoError(t, err)

	it, err := p.Iter() // gated, allowed on a writable view
	require.NoError(t, err)
	for it.Next() {
		it.Set(0) // zero every element through the cursor
	}
	require.Equal(t, 0, v.NonZeros()) // the representee saw the writes
}

// TestDataThroughWritableProxyAliases ensures Data() via a writable proxy
// exposes the representee's live storage.
func TestDataThroughWritableProxyAliases(t *testing.T) {
	v, err := vector.NewDenseFrom([]float64{1, 2}) // seed [1,2]
	require.NoError(t, err)
	p, err := proxy.NewWritable(v)
	require.NoError(t, err)

	raw, err := p.Data() // gated, allowed here
	require.NoError(t, err)
	raw[0] = 42 // write through the raw storage

	got, err := v.At(0) // visible directly on the representee
	require.NoError(t, err)
	require.Equal(t, 42.0, got)
}
