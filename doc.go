// Package vecview is a small, dependency-light toolkit for exposing
// restricted-access views onto dense numeric vectors — without copying
// their storage.
//
// 🚀 What is vecview?
//
//	A pure-Go library built around two pieces:
//		• vector/ — a dense, flat-storage float64 vector (the "representee")
//		  plus the shared Vector interface and free-function facades, so
//		  generic code never cares whether it holds a container or a view
//		• proxy/  — non-owning access proxies that forward the full vector
//		  surface while gating mutating operations behind a restriction
//		  predicate (read-only aliases, conditionally writable views, ...)
//
// ✨ Why choose vecview?
//
//   - Predictable guarantees – a fixed, documented set of gated operations;
//     a denied call never touches the underlying vector
//   - Errors, not panics – every user-triggered failure is a sentinel
//     matchable with errors.Is
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – implement one method (IsRestricted) to define a new
//     proxy variant
//
// Quick sketch:
//
//	    caller ──► proxy.VectorProxy ──► gate? ──► vector.Dense
//	                      │                            ▲
//	                      └── Restricter.IsRestricted ─┘
//
// Dive into the package docs of vector and proxy for the exact gating
// table and usage examples.
//
//	go get github.com/katalvlaran/vecview
package vecview
