package domain_test

import (
	"testing"

	"bolt/internal/domain"
)

// TestConstants pins every interoperability constant. Both transfer
// endpoints must agree on these bit-for-bit; a failure here means the
// cross-validation contract changed.
func TestConstants(t *testing.T) {
	if domain.PublicKeyLength != 32 {
		t.Errorf("PublicKeyLength = %d", domain.PublicKeyLength)
	}
	if domain.PeerCodeAlphabet != "ABCDEFGHJKMNPQRSTUVWXYZ23456789" {
		t.Errorf("PeerCodeAlphabet = %q", domain.PeerCodeAlphabet)
	}
	if domain.PeerCodeLength != 6 || domain.LongPeerCodeLength != 8 {
		t.Errorf("peer code lengths = %d, %d", domain.PeerCodeLength, domain.LongPeerCodeLength)
	}
	if domain.SASLength != 6 || domain.SASEntropyBits != 24 {
		t.Errorf("SAS shape = %d chars, %d bits", domain.SASLength, domain.SASEntropyBits)
	}
	if domain.FileHashLength != 32 || domain.FileHashAlgorithm != "SHA-256" {
		t.Errorf("file hash = %d bytes, %q", domain.FileHashLength, domain.FileHashAlgorithm)
	}
	if domain.DefaultChunkSize != 16384 {
		t.Errorf("DefaultChunkSize = %d", domain.DefaultChunkSize)
	}
	if domain.TransferIDLength != 16 {
		t.Errorf("TransferIDLength = %d", domain.TransferIDLength)
	}
}
