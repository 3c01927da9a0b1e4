package commands

import (
	"context"
	"errors"

	"procurement/internal/core/domain/model/identity"
	"procurement/internal/core/ports"
	"procurement/internal/pkg/errs"
)

// CreateUserCommandHandler lets user managers register accounts with a unique email.
type CreateUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	clock      ports.Clock
}

func NewCreateUserCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	clock ports.Clock,
) CreateUserCommandHandler {
	return CreateUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		clock:      clock,
	}
}

func (h CreateUserCommandHandler) Handle(ctx context.Context, cmd CreateUserCommand) (*identity.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	if _, err := authorizeActor(ctx, userRepo, cmd.ActorID(), identity.ManageUsers); err != nil {
		return nil, err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, err
	}

	user, err := identity.NewUser(cmd.UserID(), cmd.Profile(), hash, h.clock.Now())
	if err != nil {
		return nil, err
	}

	if err = ensureEmailIsFree(ctx, userRepo, user); err != nil {
		return nil, err
	}

	if err = userRepo.Add(ctx, user); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return user, nil
}

// ensureEmailIsFree fails with an ObjectAlreadyExistsError when another account
// already uses the user's email.
func ensureEmailIsFree(ctx context.Context, users ports.UserRepository, user *identity.User) error {
	existing, err := users.GetByEmail(ctx, user.Email())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if !existing.ID().IsEqual(user.ID()) {
		return errs.NewObjectAlreadyExistsError("email", user.Email())
	}
	return nil
}
