// Package booking contains the booking draft, its field identifiers and the
// per-step validation rules.
//
// Allowed here:
// - draft data and typed field access
// - validation rules and field-level error messages
//
// Not allowed here:
// - step sequencing (see internal/wizard)
// - rendering or logging
package booking
