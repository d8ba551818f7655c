// Package identity manages creation, encryption and loading of the
// local identity, and trust-on-first-use pinning of peer keys.
//
// It enforces passphrase policy, generates the X25519 key pair, and
// persists it via the domain.IdentityStore.
package identity
