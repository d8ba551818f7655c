package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"

	"bolt/internal/domain"
	"bolt/internal/util/memzero"
)

const (
	idFile   = "identity.enc"
	pinsFile = "pins.json" // map[peer code]pinned public key
)

const saltBytes = 16

// FileStore stores the identity and peer pins in a directory.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore returns a store rooted at dir.
func NewFileStore(dir string) *FileStore { return &FileStore{dir: dir} }

// ---------- Identity ----------

// SaveIdentity encrypts id with the passphrase and writes it to disk.
func (s *FileStore) SaveIdentity(passphrase string, id domain.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(id)
	if err != nil {
		return err
	}
	blob, err := seal(passphrase, raw)
	memzero.Zero(raw)
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(s.dir, idFile), blob, 0o600)
}

// LoadIdentity decrypts and returns the stored identity.
func (s *FileStore) LoadIdentity(passphrase string) (domain.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := os.ReadFile(filepath.Join(s.dir, idFile))
	if err != nil {
		return domain.Identity{}, err
	}
	raw, err := open(passphrase, blob)
	if err != nil {
		return domain.Identity{}, err
	}
	var id domain.Identity
	err = json.Unmarshal(raw, &id)
	memzero.Zero(raw)
	if err != nil {
		return domain.Identity{}, err
	}
	return id, nil
}

// ---------- Peer pins (trust on first use) ----------

// SavePin records the identity key pinned for a peer code.
func (s *FileStore) SavePin(code domain.PeerCode, key domain.X25519Public) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := make(map[string]domain.X25519Public)
	if err := readJSON(filepath.Join(s.dir, pinsFile), &m); err != nil {
		return err
	}
	m[code.String()] = key
	return writeJSON(filepath.Join(s.dir, pinsFile), m, 0o600)
}

// LoadPin returns the pinned key for a peer code, if any.
func (s *FileStore) LoadPin(code domain.PeerCode) (domain.X25519Public, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := make(map[string]domain.X25519Public)
	if err := readJSON(filepath.Join(s.dir, pinsFile), &m); err != nil {
		return domain.X25519Public{}, false, err
	}
	key, ok := m[code.String()]
	return key, ok, nil
}

// ---------- passphrase envelope ----------

// argon2id parameters for the key-encryption key.
func kekParams() (time, memory uint32, threads uint8) { return 1, 1 << 16, 1 }

type envelope struct {
	Salt  []byte `json:"salt"`
	Nonce []byte `json:"nonce"`
	CT    []byte `json:"ct"`
}

func kek(passphrase string, salt []byte) []byte {
	t, m, p := kekParams()
	return argon2.IDKey([]byte(passphrase), salt, t, m, p, chacha20poly1305.KeySize)
}

func seal(passphrase string, plaintext []byte) ([]byte, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	key := kek(passphrase, salt)
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	ct := aead.Seal(nil, nonce, plaintext, salt)
	return json.Marshal(envelope{Salt: salt, Nonce: nonce, CT: ct})
}

func open(passphrase string, blob []byte) ([]byte, error) {
	var env envelope
	if err := json.Unmarshal(blob, &env); err != nil {
		return nil, err
	}
	key := kek(passphrase, env.Salt)
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	return aead.Open(nil, env.Nonce, env.CT, env.Salt)
}

// ---------- helpers ----------

// readJSON best-effort reads path into out; a missing file is not an error.
func readJSON(path string, out any) error {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

// writeJSON writes JSON via a temp file then rename.
func writeJSON(path string, v any, mode os.FileMode) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return writeFile(path, b, mode)
}

func writeFile(path string, b []byte, mode os.FileMode) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, mode); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
