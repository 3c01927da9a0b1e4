package commands

import (
	"errors"

	"procurement/internal/core/domain/model/identity"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrUpdateUserCommandIsNotConstructed = errors.New(
	"UpdateUserCommand must be created via NewUpdateUserCommand constructor",
)

// UpdateUserCommand replaces a user's profile. An empty password keeps the current one.
type UpdateUserCommand struct { //nolint:recvcheck //using for validation
	actorID  kernel.UUID
	userID   kernel.UUID
	profile  identity.Profile
	password string

	guard guard.ConstructorGuard
}

func NewUpdateUserCommand(
	actorID kernel.UUID,
	userID kernel.UUID,
	profile identity.Profile,
	password string,
) (UpdateUserCommand, error) {
	cmd := UpdateUserCommand{
		profile: profile,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setID(&cmd.actorID, actorID),
		setID(&cmd.userID, userID),
		cmd.setPassword(password),
	); err != nil {
		return UpdateUserCommand{}, err
	}

	return cmd, nil
}

func (c UpdateUserCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserCommandIsNotConstructed)
}

func (c UpdateUserCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c UpdateUserCommand) UserID() kernel.UUID {
	return c.userID
}

func (c UpdateUserCommand) Profile() identity.Profile {
	return c.profile
}

// Password returns the new clear-text password, or "" when it stays unchanged.
func (c UpdateUserCommand) Password() string {
	return c.password
}

func (c UpdateUserCommand) ChangesPassword() bool {
	return c.password != ""
}

func (c *UpdateUserCommand) setPassword(password string) error {
	if password == "" {
		return nil
	}
	if err := checkPassword(password); err != nil {
		return err
	}

	c.password = password
	return nil
}
