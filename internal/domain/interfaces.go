package domain

// IdentityStore persists the long-term identity keys encrypted at rest.
type IdentityStore interface {
	SaveIdentity(passphrase string, id Identity) error
	LoadIdentity(passphrase string) (Identity, error)
}

// PinStore records the first identity key seen for each peer code
// (trust on first use).
type PinStore interface {
	SavePin(code PeerCode, key X25519Public) error
	LoadPin(code PeerCode) (X25519Public, bool, error)
}

// IdentityService creates, retrieves, and inspects identity keys.
type IdentityService interface {
	GenerateIdentity(passphrase string) (Identity, Fingerprint, error)
	LoadIdentity(passphrase string) (Identity, error)
	FingerprintIdentity(passphrase string) (Fingerprint, error)

	// VerifyPeer pins key on first sight of code and returns a
	// *KeyMismatchError if a later key differs from the pin.
	VerifyPeer(code PeerCode, key X25519Public) error
}
