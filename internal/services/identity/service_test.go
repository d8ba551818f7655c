package identity_test

import (
	"errors"
	"testing"

	"bolt/internal/domain"
	"bolt/internal/services/identity"
	"bolt/internal/store"
)

const strongPass = "Str0ng-Passphrase!"

func newService(t *testing.T) *identity.Service {
	t.Helper()
	fs := store.NewFileStore(t.TempDir())
	return identity.New(fs, fs)
}

func TestGenerateIdentity_OK(t *testing.T) {
	svc := newService(t)

	id, fp, err := svc.GenerateIdentity(strongPass)
	if err != nil {
		t.Fatalf("GenerateIdentity: %v", err)
	}
	if id.Pub == (domain.X25519Public{}) {
		t.Fatal("zero public key")
	}
	if len(fp) != 20 {
		t.Fatalf("fingerprint length %d, want 20 hex chars", len(fp))
	}

	loaded, err := svc.LoadIdentity(strongPass)
	if err != nil {
		t.Fatalf("LoadIdentity: %v", err)
	}
	if loaded.Pub != id.Pub {
		t.Fatal("loaded identity differs from generated one")
	}

	got, err := svc.FingerprintIdentity(strongPass)
	if err != nil {
		t.Fatalf("FingerprintIdentity: %v", err)
	}
	if got != fp {
		t.Fatalf("fingerprint %q differs from generation-time %q", got, fp)
	}
}

func TestGenerateIdentity_WeakPassphrase(t *testing.T) {
	svc := newService(t)

	weak := []string{
		"short1!A",
		"alllowercase1!",
		"ALLUPPERCASE1!",
		"NoDigitsHere!",
		"NoSymbolsHere1",
	}
	for _, pass := range weak {
		if _, _, err := svc.GenerateIdentity(pass); !errors.Is(err, identity.ErrWeakPassphrase) {
			t.Errorf("passphrase %q: err = %v, want ErrWeakPassphrase", pass, err)
		}
	}
}

func TestVerifyPeer_PinsFirstKey(t *testing.T) {
	svc := newService(t)

	code := domain.PeerCode("ABCDEF")
	key := domain.X25519Public{0x07}

	if err := svc.VerifyPeer(code, key); err != nil {
		t.Fatalf("first VerifyPeer: %v", err)
	}
	if err := svc.VerifyPeer(code, key); err != nil {
		t.Fatalf("repeat VerifyPeer with same key: %v", err)
	}
}

func TestVerifyPeer_RejectsChangedKey(t *testing.T) {
	svc := newService(t)

	code := domain.PeerCode("ABCDEF")
	pinned := domain.X25519Public{0x07}
	imposter := domain.X25519Public{0x64}

	if err := svc.VerifyPeer(code, pinned); err != nil {
		t.Fatalf("pin key: %v", err)
	}

	err := svc.VerifyPeer(code, imposter)
	var mismatch *domain.KeyMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("err = %v, want *KeyMismatchError", err)
	}
	if mismatch.PeerCode != code || mismatch.Expected != pinned || mismatch.Received != imposter {
		t.Fatalf("mismatch fields wrong: %+v", mismatch)
	}
}

func TestVerifyPeer_CodesAreIndependent(t *testing.T) {
	svc := newService(t)

	if err := svc.VerifyPeer("ABCDEF", domain.X25519Public{1}); err != nil {
		t.Fatalf("pin first code: %v", err)
	}
	if err := svc.VerifyPeer("GHJKMN", domain.X25519Public{2}); err != nil {
		t.Fatalf("pin second code: %v", err)
	}
}
