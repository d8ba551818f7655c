package crypto

import (
	"encoding/hex"

	"bolt/internal/domain"
)

// ToHex returns the lowercase hex encoding of b.
func ToHex(b []byte) string { return hex.EncodeToString(b) }

// FromHex decodes a lowercase or uppercase hex string.
func FromHex(s string) ([]byte, error) { return hex.DecodeString(s) }

// PublicKeyFromHex decodes a hex-encoded X25519 public key, enforcing
// the exact key length.
func PublicKeyFromHex(s string) (domain.X25519Public, error) {
	var pub domain.X25519Public
	b, err := hex.DecodeString(s)
	if err != nil {
		return pub, err
	}
	if len(b) != domain.PublicKeyLength {
		return pub, domain.ErrKeyLength
	}
	copy(pub[:], b)
	return pub, nil
}
