// Package transport owns the gateway connection collaborator.
//
// Ownership boundary:
// - TCP dial and the version handshake
// - whole-message writes onto the stream
// - redial pacing
//
// Message encoding lives in internal/messages/outgoing; this package only
// moves finished byte sequences.
package transport
