package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrDeleteUserCommandIsNotConstructed = errors.New(
	"DeleteUserCommand must be created via NewDeleteUserCommand constructor",
)

type DeleteUserCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	userID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteUserCommand(actorID, userID kernel.UUID) (DeleteUserCommand, error) {
	cmd := DeleteUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setID(&cmd.actorID, actorID),
		setID(&cmd.userID, userID),
	); err != nil {
		return DeleteUserCommand{}, err
	}

	return cmd, nil
}

func (c DeleteUserCommand) Validate() error {
	return c.guard.Validate(ErrDeleteUserCommandIsNotConstructed)
}

func (c DeleteUserCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c DeleteUserCommand) UserID() kernel.UUID {
	return c.userID
}
