// Package outgoing owns the closed set of client-to-gateway message kinds.
//
// Ownership boundary:
// - message kind registry (id, protocol version, encode procedure)
// - enumeration tables and pre-encode validation
// - the send dispatcher
//
// Each kind encodes to id, version, the subject identifier when the
// payload carries one, then its protocol-mandated field list. The field
// count and order per (id, version) pair is a hard contract with the
// remote gateway; there is no schema negotiation.
package outgoing
