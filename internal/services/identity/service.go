package identity

import (
	"fmt"
	"unicode"

	"bolt/internal/crypto"
	"bolt/internal/domain"
)

const (
	// minPassphraseLength defines the minimum number of characters required for a passphrase.
	minPassphraseLength = 12
)

var (
	// ErrWeakPassphrase is returned when the passphrase fails the strength policy.
	ErrWeakPassphrase = fmt.Errorf(
		"passphrase is too weak (must be at least %d characters and include upper, lower, "+
			"number, and symbol)",
		minPassphraseLength,
	)
)

// Service manages identity key creation, access and peer pinning using
// backing stores.
type Service struct {
	store domain.IdentityStore
	pins  domain.PinStore
}

// New returns an identity service backed by the given stores.
func New(s domain.IdentityStore, p domain.PinStore) *Service {
	return &Service{store: s, pins: p}
}

// GenerateIdentity creates a new identity, saves it encrypted with the
// passphrase, and returns the identity plus a short fingerprint of the
// public key.
func (s *Service) GenerateIdentity(passphrase string) (domain.Identity, domain.Fingerprint, error) {
	if !isSecurePassphrase(passphrase) {
		return domain.Identity{}, "", ErrWeakPassphrase
	}

	priv, pub, err := crypto.GenerateX25519()
	if err != nil {
		return domain.Identity{}, "", err
	}

	id := domain.Identity{Pub: pub, Priv: priv}
	if err := s.store.SaveIdentity(passphrase, id); err != nil {
		return domain.Identity{}, "", err
	}
	return id, crypto.Fingerprint(id.Pub.Slice()), nil
}

// LoadIdentity decrypts and returns the local identity.
func (s *Service) LoadIdentity(passphrase string) (domain.Identity, error) {
	return s.store.LoadIdentity(passphrase)
}

// FingerprintIdentity returns a short fingerprint of the local public key.
func (s *Service) FingerprintIdentity(passphrase string) (domain.Fingerprint, error) {
	id, err := s.store.LoadIdentity(passphrase)
	if err != nil {
		return "", err
	}
	return crypto.Fingerprint(id.Pub.Slice()), nil
}

// VerifyPeer checks key against the pin recorded for code. The first
// key seen for a code is pinned; a later key that differs yields a
// *domain.KeyMismatchError and the session must be aborted.
func (s *Service) VerifyPeer(code domain.PeerCode, key domain.X25519Public) error {
	pinned, ok, err := s.pins.LoadPin(code)
	if err != nil {
		return err
	}
	if !ok {
		return s.pins.SavePin(code, key)
	}
	if pinned != key {
		return &domain.KeyMismatchError{PeerCode: code, Expected: pinned, Received: key}
	}
	return nil
}

// isSecurePassphrase enforces a basic strength policy.
func isSecurePassphrase(passphrase string) bool {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	if len(passphrase) < minPassphraseLength {
		return false
	}
	for _, r := range passphrase {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}

// Compile-time assertion that Service implements domain.IdentityService.
var _ domain.IdentityService = (*Service)(nil)
