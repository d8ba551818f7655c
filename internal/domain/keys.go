package domain

// X25519Public is a Curve25519 public key.
type X25519Public [32]byte

// Slice returns the key as a []byte.
func (p X25519Public) Slice() []byte { return p[:] }

// X25519Private is a Curve25519 private key.
type X25519Private [32]byte

// Slice returns the key as a []byte.
func (k X25519Private) Slice() []byte { return k[:] }

// Identity holds the long-term X25519 key pair. Identity keys are
// persistent across sessions; ephemeral keys are generated per session
// with the same shape and discarded afterwards.
type Identity struct {
	Pub  X25519Public  `json:"pub"`
	Priv X25519Private `json:"priv"`
}
