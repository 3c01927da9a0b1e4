package commands

import (
	"context"

	"procurement/internal/core/domain/model/identity"
	"procurement/internal/pkg/errs"
)

// DeleteUserCommandHandler removes accounts.
//
// Checks run in a fixed order: the capability, then self-deletion, then existence,
// then references from purchase orders or cost estimates. A user who still appears
// as creator, validator, completer or approver is kept.
type DeleteUserCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewDeleteUserCommandHandler(uowFactory UserUoWFactory) DeleteUserCommandHandler {
	return DeleteUserCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h DeleteUserCommandHandler) Handle(ctx context.Context, cmd DeleteUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	actor, err := authorizeActor(ctx, userRepo, cmd.ActorID(), identity.ManageUsers)
	if err != nil {
		return err
	}

	if actor.ID().IsEqual(cmd.UserID()) {
		return errs.NewSelfDeleteError(cmd.UserID().String())
	}

	user, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	referenced, err := userRepo.IsReferenced(ctx, user.ID())
	if err != nil {
		return err
	}
	if referenced {
		return errs.NewHasDependentsError("user", user.ID().String())
	}

	if err = userRepo.Delete(ctx, user.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
