// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// PassphraseService defines the interface for enrollment passphrase hashing
// and verification.
type PassphraseService interface {
	// HashPassphrase hashes a plain text passphrase using bcrypt.
	HashPassphrase(passphrase string) (string, error)

	// VerifyPassphrase compares a plain text passphrase with a hashed one.
	VerifyPassphrase(hashedPassphrase, passphrase string) error
}
