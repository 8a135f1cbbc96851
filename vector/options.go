// SPDX-License-Identifier: MIT

// Package vector: functional configuration for Dense construction and
// numeric policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
package vector

// DEFAULTS - single source of truth for zero-value behavior.
// These constants MUST reflect the intended defaults in defaultOptions.
const (
	// DefaultValidateNaNInf toggles strict finite-value validation in Set
	// and Scale. When enabled, NaN and ±Inf are rejected with ErrNaNInf.
	DefaultValidateNaNInf = true

	// DefaultExtraCapacity is the spare capacity allocated beyond the
	// requested length when no WithCapacity option is supplied (none).
	DefaultExtraCapacity = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicCapacityInvalid = "vector: WithCapacity: capacity must be >= 0"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally unexported state; public entry points accept
// `...Option` and internally resolve them via gatherOptions.
type Options struct {
	capacity       int  // requested minimum capacity; clamped up to length
	validateNaNInf bool // numeric guard: reject NaN/Inf in Set/Scale when true
}

// WithCapacity requests a minimum backing capacity for the new vector.
// Values below the requested length are clamped up to the length at
// construction time. Panics if capacity < 0 (programmer error).
func WithCapacity(capacity int) Option {
	if capacity < 0 {
		panic(panicCapacityInvalid)
	}
	return func(o *Options) { o.capacity = capacity }
}

// WithValidateNaNInf toggles rejection of NaN/±Inf values in Set and Scale.
// Disable only when ingesting data already validated upstream.
func WithValidateNaNInf(enabled bool) Option {
	return func(o *Options) { o.validateNaNInf = enabled }
}

// gatherOptions applies setters over documented defaults and returns the
// effective configuration. Internal; callers never see Options directly.
func gatherOptions(opts ...Option) Options {
	o := Options{
		capacity:       DefaultExtraCapacity,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
