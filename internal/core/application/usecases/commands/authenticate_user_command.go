package commands

import (
	"errors"
	"strings"

	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

var (
	ErrAuthenticateUserCommandIsNotConstructed = errors.New(
		"AuthenticateUserCommand must be created via NewAuthenticateUserCommand constructor",
	)
	// ErrInvalidCredentials covers unknown emails, wrong passwords and inactive
	// accounts alike.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type AuthenticateUserCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

func NewAuthenticateUserCommand(email, password string) (AuthenticateUserCommand, error) {
	cmd := AuthenticateUserCommand{
		email:    strings.ToLower(strings.TrimSpace(email)),
		password: password,
		guard:    guard.NewConstructorGuard(),
	}

	var err error
	if cmd.email == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("email"))
	}
	if cmd.password == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("password"))
	}
	if err != nil {
		return AuthenticateUserCommand{}, err
	}

	return cmd, nil
}

func (c AuthenticateUserCommand) Validate() error {
	return c.guard.Validate(ErrAuthenticateUserCommandIsNotConstructed)
}

func (c AuthenticateUserCommand) Email() string {
	return c.email
}

func (c AuthenticateUserCommand) Password() string {
	return c.password
}
