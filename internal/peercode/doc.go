// Package peercode generates and validates short pairing codes.
//
// Codes are drawn from a 31-character unambiguous alphabet (no 0/O,
// no 1/I/L) with rejection sampling, so every alphabet position is
// equally likely. Codes are routing hints for pairing, not secrets.
package peercode
