package sas

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"bolt/internal/domain"
)

// Compute derives the SAS from both peers' identity and ephemeral
// public keys. Each argument must be exactly 32 bytes; anything else is
// rejected with domain.ErrKeyLength before any hashing happens.
//
// The digest input is sort32(identityA, identityB) followed by
// sort32(ephemeralA, ephemeralB) (128 bytes in total), so
// Compute(A, B, eA, eB) == Compute(B, A, eB, eA) for all valid inputs.
// The SAS is the first 3 digest bytes as uppercase hex.
func Compute(identityA, identityB, ephemeralA, ephemeralB []byte) (domain.SAS, error) {
	for _, k := range [][]byte{identityA, identityB, ephemeralA, ephemeralB} {
		if len(k) != domain.PublicKeyLength {
			return "", domain.ErrKeyLength
		}
	}

	combined := make([]byte, 0, 4*domain.PublicKeyLength)
	combined = appendSorted(combined, identityA, identityB)
	combined = appendSorted(combined, ephemeralA, ephemeralB)

	sum := sha256.Sum256(combined)
	display := hex.EncodeToString(sum[:domain.SASEntropyBits/8])
	return domain.SAS(strings.ToUpper(display)), nil
}

// ComputeKeys is Compute for callers that already hold typed keys, so
// the length contract is enforced by the type system.
func ComputeKeys(identityA, identityB, ephemeralA, ephemeralB domain.X25519Public) domain.SAS {
	s, _ := Compute(identityA.Slice(), identityB.Slice(), ephemeralA.Slice(), ephemeralB.Slice())
	return s
}

// appendSorted appends a and b to dst in canonical order: byte-wise
// unsigned lexicographic, smaller first. Identical keys are appended
// as given. Canonical ordering replaces any notion of local/remote
// role with a pure value-level rule.
func appendSorted(dst, a, b []byte) []byte {
	if bytes.Compare(a, b) <= 0 {
		return append(append(dst, a...), b...)
	}
	return append(append(dst, b...), a...)
}
