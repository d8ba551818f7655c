// Package crypto exposes the minimal key primitives used by bolt.
//
// Contents
//
//   - X25519 key generation and clamping (GenerateX25519)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//   - Hex encoding helpers shared by the CLI (ToHex, FromHex)
//
// # Notes
//
// All functions return fixed-size array types defined in internal/domain
// to avoid accidental reallocations. Callers should treat private keys
// as sensitive and rely on memzero.Zero when practical to reduce their
// lifetime in memory.
package crypto
