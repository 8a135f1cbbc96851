// SPDX-License-Identifier: MIT

// Package proxy: the restriction-predicate extension point.
// This file intentionally contains ONLY the Restricter contract and its
// function adapter. Errors live in errors.go, concrete predicate variants
// in variants.go, the forwarding proxy in proxy.go.
package proxy

// Restricter is the single capability a concrete proxy variant must supply:
// "is mutation currently forbidden through this handle?".
//
// Contract:
//   - Pure: no side effects, safe to call repeatedly.
//   - Callable at any time the proxy is alive.
//   - Re-evaluated on every gated call (the proxy never caches the answer),
//     so predicates whose answer legitimately changes between calls — e.g.
//     a view that becomes writable after an external event — are supported
//     by construction.
//   - Stable within a single operation: the answer must not change between
//     the check and the forwarded call (no check-then-act races inside one
//     call); this is a caller/implementor responsibility, not something the
//     proxy mediates.
type Restricter interface {
	// IsRestricted reports whether mutating access is currently forbidden.
	// Complexity: O(1) expected; must be side-effect-free.
	IsRestricted() bool
}

// RestrictFunc adapts an ordinary function to the Restricter interface,
// for predicates defined at the call site.
type RestrictFunc func() bool

// IsRestricted invokes the wrapped predicate.
func (f RestrictFunc) IsRestricted() bool { return f() }
