// Package cryptox implements the password-to-key scheme used by signin and
// signup: the client derives a master key from the password and a per-user
// salt, and only a verifier digest of that key ever reaches the server.
package cryptox

import (
	"crypto/sha256"

	"golang.org/x/crypto/argon2"
)

// DeriveMasterKey stretches a password with argon2id into a 32-byte key.
func DeriveMasterKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// MakeVerifier returns the digest of a master key that is stored server-side
// and compared on login. The key itself never leaves the client.
func MakeVerifier(masterKey []byte) []byte {
	hash := sha256.Sum256(masterKey)
	return hash[:]
}

// Wipe overwrites sensitive byte slices (passwords, keys) after use.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
