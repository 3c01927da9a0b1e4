package ports

import "errors"

// ErrPasswordMismatch is returned by PasswordHasher.Compare for a wrong password.
var ErrPasswordMismatch = errors.New("password does not match")

// PasswordHasher turns plain passwords into storable hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Compare returns ErrPasswordMismatch when password does not produce hash.
	Compare(hash, password string) error
}
