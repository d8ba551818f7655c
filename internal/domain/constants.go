package domain

// Protocol constants. Both endpoints of a transfer must agree on every
// value here bit-for-bit; drift breaks cross-validation of peer codes,
// SAS strings and file digests.
const (
	// PublicKeyLength is the X25519 public key length in bytes.
	PublicKeyLength = 32

	// PeerCodeAlphabet is the unambiguous base36 subset used for peer
	// codes: no 0/O and no 1/I/L.
	PeerCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

	// PeerCodeLength is the length of a short peer code in symbols.
	PeerCodeLength = 6

	// LongPeerCodeLength is the length of a long peer code in symbols,
	// excluding the display dash.
	LongPeerCodeLength = 8

	// SASLength is the SAS length in hex characters.
	SASLength = 6

	// SASEntropyBits is the entropy carried by a SAS.
	SASEntropyBits = 24

	// FileHashLength is the SHA-256 digest length in bytes.
	FileHashLength = 32

	// FileHashAlgorithm identifies the digest in transfer metadata.
	FileHashAlgorithm = "SHA-256"

	// DefaultChunkSize is the default file transfer chunk size in bytes.
	DefaultChunkSize = 16384

	// TransferIDLength is the transfer identifier length in bytes.
	TransferIDLength = 16
)
