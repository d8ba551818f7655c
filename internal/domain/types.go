package domain

// PeerCode is a short human-shareable pairing code. It is a routing
// hint for the pairing workflow, not an authentication secret, and is
// never persisted.
type PeerCode string

// String returns the string form of the peer code.
func (c PeerCode) String() string { return string(c) }

// SAS is a short authentication string: six uppercase hex characters
// derived from both peers' public keys, compared out-of-band by the
// users and then discarded.
type SAS string

// String returns the string form of the SAS.
func (s SAS) String() string { return string(s) }

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// FileDigest is a SHA-256 content digest rendered as 64 lowercase hex
// characters, compared against sender-declared transfer metadata.
type FileDigest string

// String returns the string form of the digest.
func (d FileDigest) String() string { return string(d) }
