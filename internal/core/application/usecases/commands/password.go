package commands

import (
	"procurement/internal/pkg/errs"
)

// bcrypt ignores everything past 72 bytes.
const (
	minPasswordLength = 8
	maxPasswordLength = 72
)

func checkPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	if n := len(password); n < minPasswordLength || n > maxPasswordLength {
		return errs.NewValueIsOutOfRangeError("password length", n, minPasswordLength, maxPasswordLength)
	}
	return nil
}
