// Package vector provides a dense, flat-storage float64 vector and the
// shared operation surface used by access proxies.
//
// The vector package provides:
//
//   - Dense — a concrete vector with explicit size/capacity bookkeeping,
//     safe indexed access (errors, not panics) and an optional NaN/Inf
//     rejection policy.
//   - Vector — the interface both Dense and access proxies implement, so
//     generic numeric code never specializes on which one it holds.
//   - Free-function facades (Size, At, Set, Resize, Scale, ...) mirroring
//     every method, for algorithms written in a free-function style.
//   - Iter / ConstIter — mutable and read-only element cursors.
//
// Operations that a restricted view may deny carry an error return across
// the whole interface; on a concrete Dense those errors are limited to
// index/length/numeric-policy violations (ErrOutOfRange, ErrBadLength,
// ErrNaNInf), matchable with errors.Is.
//
// See the examples in this package and in proxy for usage patterns.
package vector
