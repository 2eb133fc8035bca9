// Package builder assembles fully populated entities for tests without
// duplicating production construction logic.
//
// A fixture definition supplies the default value for every field, the
// test overrides just what it cares about, and Build merges the two with
// overrides always winning. Builders chain copy-on-write: every setter
// returns a new builder, so branching two chains off one base yields
// independent results.
//
// Programmer errors in a definition or test, like setting an unknown
// field, panic immediately with a matchable sentinel error instead of
// surfacing later at Build time.
package builder
