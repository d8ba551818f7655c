// Package store persists the local identity and peer key pins on disk.
//
// The identity is encrypted at rest with a key derived from the user's
// passphrase (Argon2id) under ChaCha20-Poly1305. Peer pins are plain
// JSON: they hold public keys only. All writes go through a temp file
// and rename.
package store
