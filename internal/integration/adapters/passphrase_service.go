// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/Somebud0180/rInventory-sub001/internal/application/adapter"
)

// bcryptCost is the cost factor for bcrypt hashing.
const bcryptCost = 12

// passphraseService implements the adapter.PassphraseService interface.
type passphraseService struct{}

// NewPassphraseService creates a new passphrase service instance.
func NewPassphraseService() adapter.PassphraseService {
	return &passphraseService{}
}

// HashPassphrase hashes a plain text passphrase using bcrypt with cost 12.
func (s *passphraseService) HashPassphrase(passphrase string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(passphrase), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// VerifyPassphrase compares a plain text passphrase with a hashed one.
func (s *passphraseService) VerifyPassphrase(hashedPassphrase, passphrase string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassphrase), []byte(passphrase))
}
