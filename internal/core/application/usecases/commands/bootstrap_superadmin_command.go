package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrBootstrapSuperadminCommandIsNotConstructed = errors.New(
	"BootstrapSuperadminCommand must be created via NewBootstrapSuperadminCommand constructor",
)

// BootstrapSuperadminCommand creates the first account of an empty user directory.
type BootstrapSuperadminCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	name     string
	email    string
	password string

	guard guard.ConstructorGuard
}

func NewBootstrapSuperadminCommand(
	userID kernel.UUID,
	name string,
	email string,
	password string,
) (BootstrapSuperadminCommand, error) {
	cmd := BootstrapSuperadminCommand{
		name:  name,
		email: email,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setID(&cmd.userID, userID),
		checkPassword(password),
	); err != nil {
		return BootstrapSuperadminCommand{}, err
	}
	cmd.password = password

	return cmd, nil
}

func (c BootstrapSuperadminCommand) Validate() error {
	return c.guard.Validate(ErrBootstrapSuperadminCommandIsNotConstructed)
}

func (c BootstrapSuperadminCommand) UserID() kernel.UUID {
	return c.userID
}

func (c BootstrapSuperadminCommand) Name() string {
	return c.name
}

func (c BootstrapSuperadminCommand) Email() string {
	return c.email
}

func (c BootstrapSuperadminCommand) Password() string {
	return c.password
}
