// Package authority implements the reference quiz session authority.
//
// The authority owns the quiz content, the session clock and scoring. Sessions
// live in memory and are keyed by UUIDv7 identifiers. Remaining time is always
// derived from the session start time and the injected clock, so clients only
// ever see the authoritative value.
//
// Finishing is idempotent: the Result is computed once and repeated calls
// return the stored copy.
package authority
