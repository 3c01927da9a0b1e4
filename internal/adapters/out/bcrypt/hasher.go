// Package bcrypt implements ports.PasswordHasher with golang.org/x/crypto/bcrypt.
package bcrypt

import (
	"errors"

	"procurement/internal/core/ports"

	"golang.org/x/crypto/bcrypt"
)

// Hasher hashes passwords with a fixed bcrypt cost.
type Hasher struct {
	cost int
}

// NewHasher returns a hasher using bcrypt.DefaultCost when cost is out of bcrypt's range.
func NewHasher(cost int) Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return Hasher{cost: cost}
}

func (h Hasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Compare returns ports.ErrPasswordMismatch for a wrong password.
func (h Hasher) Compare(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ports.ErrPasswordMismatch
	}
	return err
}
