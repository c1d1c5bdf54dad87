// Package protocol owns the outgoing wire contract primitives.
//
// Ownership boundary:
// - token values and their ASCII wire encoding
// - nested field flattening
// - the NUL token terminator
package protocol
