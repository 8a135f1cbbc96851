// Package proxy provides restricted-access views onto dense vectors.
//
// A VectorProxy is a non-owning handle standing for a vector.Vector. It
// forwards the complete vector surface to the vector it represents and
// inserts exactly one piece of behavior: operations that mutate the vector
// or expose mutable access are gated behind a restriction predicate
// (Restricter). When the predicate reports true, a gated call fails with
// ErrAccessRestricted before the underlying vector is touched.
//
// Gated operations: At, Set, Data, Iter, Resize, Extend, Reserve, Scale.
// Ungated operations: Size, Capacity, NonZeros, Values — pure reads — and
// Reset, Clear, which delegate directly even though they mutate values;
// they change no addressability and hand out no write capability.
//
// The proxy adds nothing else: representee errors pass through unchanged,
// and it performs no bounds checking of its own.
//
// Stock predicates cover the common view kinds:
//
//	p, _ := proxy.NewWritable(v)  // full view, all operations forwarded
//	p, _ := proxy.NewFrozen(v)    // immutable alias, mutation denied
//	var l proxy.Latch             // writability flips at runtime
//	p, _ := proxy.New(v, &l)
//	p, _ := proxy.New(v, proxy.RestrictFunc(func() bool { ... }))
//
// Lifetime & concurrency: a proxy is a plain borrow — it must not outlive
// the vector it stands for — and performs no locking; exclusive access per
// operation is the caller's responsibility.
package proxy
