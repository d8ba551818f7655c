package domain

import (
	"errors"
	"fmt"
)

// ErrKeyLength is returned when a key buffer is not exactly
// PublicKeyLength bytes.
var ErrKeyLength = errors.New("public key must be exactly 32 bytes")

// KeyMismatchError reports a trust-on-first-use violation: the peer
// presented an identity key that differs from the previously pinned
// one. The session must be aborted.
type KeyMismatchError struct {
	PeerCode PeerCode
	Expected X25519Public
	Received X25519Public
}

// Error implements the error interface.
func (e *KeyMismatchError) Error() string {
	return fmt.Sprintf("identity key mismatch for peer %s", e.PeerCode)
}
