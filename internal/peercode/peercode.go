package peercode

import (
	"crypto/rand"
	"strings"

	"bolt/internal/domain"
)

// rejectionMax is the largest multiple of the alphabet size that fits
// in a byte: floor(256/31)*31 = 248. Random bytes >= rejectionMax are
// discarded before the modulo reduction to eliminate modulo bias.
const rejectionMax = (256 / len(domain.PeerCodeAlphabet)) * len(domain.PeerCodeAlphabet)

// fillUnbiased returns count unbiased alphabet symbols via rejection
// sampling. Bytes are requested in small batches; survivors are mapped
// with byte % 31. The loop has no fixed iteration bound but terminates
// with probability 1 under a uniform byte source. A failing source is
// reported, never substituted with a biased fallback.
func fillUnbiased(count int) (string, error) {
	var b strings.Builder
	b.Grow(count)
	for b.Len() < count {
		batch := make([]byte, count-b.Len()+4)
		if _, err := rand.Read(batch); err != nil {
			return "", err
		}
		for _, c := range batch {
			if b.Len() >= count {
				break
			}
			if int(c) < rejectionMax {
				b.WriteByte(domain.PeerCodeAlphabet[int(c)%len(domain.PeerCodeAlphabet)])
			}
		}
	}
	return b.String(), nil
}

// Generate returns a cryptographically secure 6-character peer code.
func Generate() (domain.PeerCode, error) {
	s, err := fillUnbiased(domain.PeerCodeLength)
	if err != nil {
		return "", err
	}
	return domain.PeerCode(s), nil
}

// GenerateLong returns an 8-character peer code formatted XXXX-XXXX.
// The dash is a presentation artifact and carries no entropy.
func GenerateLong() (domain.PeerCode, error) {
	s, err := fillUnbiased(domain.LongPeerCodeLength)
	if err != nil {
		return "", err
	}
	return domain.PeerCode(s[:4] + "-" + s[4:]), nil
}

// IsValid reports whether code is a well-formed peer code: 6 or 8
// symbols after dash removal, every symbol in the alphabet
// (case-insensitive). User-typed codes are frequently malformed, so
// this never errors.
func IsValid(code string) bool {
	normalized := string(Normalize(code))
	if len(normalized) != domain.PeerCodeLength && len(normalized) != domain.LongPeerCodeLength {
		return false
	}
	for _, r := range normalized {
		if !strings.ContainsRune(domain.PeerCodeAlphabet, r) {
			return false
		}
	}
	return true
}

// Normalize removes dashes and uppercases the code. It is idempotent
// and must be applied before any equality comparison of codes.
func Normalize(code string) domain.PeerCode {
	return domain.PeerCode(strings.ToUpper(strings.ReplaceAll(code, "-", "")))
}
