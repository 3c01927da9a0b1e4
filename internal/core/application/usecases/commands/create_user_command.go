package commands

import (
	"errors"

	"procurement/internal/core/domain/model/identity"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrCreateUserCommandIsNotConstructed = errors.New(
	"CreateUserCommand must be created via NewCreateUserCommand constructor",
)

// CreateUserCommand registers a new account. The password is given in clear text and
// hashed by the handler.
type CreateUserCommand struct { //nolint:recvcheck //using for validation
	actorID  kernel.UUID
	userID   kernel.UUID
	profile  identity.Profile
	password string

	guard guard.ConstructorGuard
}

func NewCreateUserCommand(
	actorID kernel.UUID,
	userID kernel.UUID,
	profile identity.Profile,
	password string,
) (CreateUserCommand, error) {
	cmd := CreateUserCommand{
		profile: profile,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setID(&cmd.actorID, actorID),
		setID(&cmd.userID, userID),
		cmd.setPassword(password),
	); err != nil {
		return CreateUserCommand{}, err
	}

	return cmd, nil
}

func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

func (c CreateUserCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c CreateUserCommand) UserID() kernel.UUID {
	return c.userID
}

func (c CreateUserCommand) Profile() identity.Profile {
	return c.profile
}

func (c CreateUserCommand) Password() string {
	return c.password
}

func (c *CreateUserCommand) setPassword(password string) error {
	if err := checkPassword(password); err != nil {
		return err
	}

	c.password = password
	return nil
}
