package integrity

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"

	"bolt/internal/domain"
)

// Sum computes the SHA-256 digest of data as a single atomic operation
// over the full buffer.
func Sum(data []byte) [domain.FileHashLength]byte {
	return sha256.Sum256(data)
}

// SumHex computes the SHA-256 digest of data as a FileDigest.
func SumHex(data []byte) domain.FileDigest {
	sum := Sum(data)
	return domain.FileDigest(ToHex(sum[:]))
}

// ToHex encodes b as lowercase hex, two digits per byte in buffer order.
func ToHex(b []byte) string { return hex.EncodeToString(b) }

// HashReader digests everything readable from r.
func HashReader(r io.Reader) (domain.FileDigest, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return domain.FileDigest(ToHex(h.Sum(nil))), nil
}

// HashFile digests the full contents of the file at path.
func HashFile(path string) (domain.FileDigest, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return HashReader(f)
}
