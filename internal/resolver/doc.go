// Package resolver maps a selected section of a configuration source to the
// serialized record and a fixed-arity projection of typed slots.
//
// A [Resolver] is stateless between calls: every operation loads a fresh
// snapshot from its [store.SourceLoader]. It never fails. An unavailable
// source degrades to a single "default" section and an unknown section to
// an all-empty projection, so a host graph evaluation never aborts because
// of a missing or malformed profile.
package resolver
