// Package models owns the request-side domain objects consumed by the
// outgoing message encoders.
//
// Ownership boundary:
// - contract, order, execution-filter, scanner-subscription shapes
// - contract serialization variants used by the encoders
//
// Optional numeric fields are pointers; nil means the field is unset and
// encodes as an empty wire token, never as a placeholder number.
package models
