// SPDX-License-Identifier: MIT
// Package proxy: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the proxy
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions.

package proxy

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "proxy: ..." for consistency and to allow
// easy grepping across logs. Gated operations wrap ErrAccessRestricted with
// the denied operation name via proxyErrorf; callers still match the
// sentinel with errors.Is.

var (
	// ErrAccessRestricted is returned by every gated operation invoked while
	// the restriction predicate reports true. The representee is guaranteed
	// untouched when this error is returned. Not retryable by the proxy
	// layer itself — retry only makes sense once the restriction lifts.
	ErrAccessRestricted = errors.New("proxy: access to restricted vector")

	// ErrNilRepresentee indicates an attempt to construct a proxy without a
	// vector to stand for. A proxy is never valid on its own.
	ErrNilRepresentee = errors.New("proxy: nil representee")

	// ErrNilPredicate indicates an attempt to construct a proxy without a
	// restriction predicate. Use ReadWrite{} for an always-writable view.
	ErrNilPredicate = errors.New("proxy: nil restriction predicate")
)
